package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	passMarker = color.New(color.FgGreen).SprintFunc()
	failMarker = color.New(color.FgRed).SprintFunc()
)

// Out is where check lines go. The diagnosis report stays on stdout even
// when logging is redirected; tests swap in a buffer.
var Out io.Writer = os.Stdout

// Status prints one `* <label>: PASS|FAIL` line, with the observed value
// appended as `(=value)` when given, and returns ok unchanged so callers
// can tally it.
func Status(label string, ok bool, observed ...string) bool {
	marker := failMarker("FAIL")
	if ok {
		marker = passMarker("PASS")
	}

	if len(observed) > 0 {
		fmt.Fprintf(Out, "* %s (=%s): %s\n", label, observed[0], marker)
	} else {
		fmt.Fprintf(Out, "* %s: %s\n", label, marker)
	}

	return ok
}

// Section prints a group header.
func Section(title string) {
	fmt.Fprintf(Out, "\n## %s:\n", title)
}

// Info prints an informational line. Informational output never affects
// the tally.
func Info(format string, args ...any) {
	fmt.Fprintf(Out, format+"\n", args...)
}

// Optional echoes an optional variable for operator visibility.
func Optional(name, value string) {
	fmt.Fprintf(Out, "* Optional: %s=%s\n", name, value)
}

// Tally accumulates pass/attempt counts across the tallied check groups.
type Tally struct {
	passed    int
	attempted int
}

// Add folds one group of results into the tally.
func (t *Tally) Add(results []bool) {
	for _, ok := range results {
		t.attempted++
		if ok {
			t.passed++
		}
	}
}

func (t *Tally) Passed() int    { return t.passed }
func (t *Tally) Attempted() int { return t.attempted }

// AllPassed reports whether every attempted check passed.
func (t *Tally) AllPassed() bool {
	return t.passed == t.attempted
}

// Summary prints the final count line.
func (t *Tally) Summary() {
	Section("Summary")
	fmt.Fprintf(Out, "Passed %d out of %d checks.\n", t.passed, t.attempted)
}
