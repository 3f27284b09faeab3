package checks

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sccache-tools/sccache-dist-check/pkg/report"
)

// TimeoutExpired is returned verbatim as command output when a probed
// command exceeds its deadline; operators grep for it in reports.
const TimeoutExpired = "Timeout expired"

// statusTimeout bounds the sccache status/auth queries, which hang when
// the client cannot reach the scheduler. Installation probes run
// unbounded since a --version call either answers or the binary is
// missing.
const statusTimeout = 10 * time.Second

// Runner executes an external command and returns its combined stdout and
// stderr, trimmed. A timeout of zero means no deadline. Tests substitute
// a stub.
type Runner func(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error)

// Run is the production Runner, backed by exec.CommandContext.
func Run(ctx context.Context, timeout time.Duration, name string, args ...string) (string, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return TimeoutExpired, nil
	}
	return strings.TrimSpace(string(out)), err
}

// SccacheOutput runs `sccache <flag>` with the status timeout and returns
// whatever it printed, folding invocation errors into the returned text.
// The output is dumped raw for the operator; it is not tallied.
func SccacheOutput(ctx context.Context, run Runner, flag string) string {
	out, err := run(ctx, statusTimeout, "sccache", flag)
	if err != nil {
		return fmt.Sprintf("Error running sccache %s: %v", flag, err)
	}
	return out
}

// CheckDistInstalled reports whether the sccache-dist binary is installed
// and executable on the host.
func CheckDistInstalled(ctx context.Context, run Runner) bool {
	_, err := run(ctx, 0, "sccache-dist", "--version")
	return report.Status("sccache-dist is installed", err == nil)
}

// CheckDistProcesses reports whether any sccache-dist process is running
// locally. pgrep exits non-zero when nothing matches; on top of that we
// drop empty lines from its output, so an empty match list never counts
// as a running process.
func CheckDistProcesses(ctx context.Context, run Runner) bool {
	out, err := run(ctx, 0, "pgrep", "-f", "sccache-dist")
	if err != nil {
		return report.Status("sccache-dist processes are running", false, err.Error())
	}
	return report.Status("sccache-dist processes are running", len(splitLines(out)) > 0)
}

// splitLines splits command output on newlines, dropping empty entries.
func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
