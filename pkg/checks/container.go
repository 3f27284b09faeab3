package checks

import (
	"context"
	"fmt"
	"os"

	"github.com/sccache-tools/sccache-dist-check/pkg/report"
)

const (
	// tokenFilePath holds the distributed-auth token the container was
	// provisioned with.
	tokenFilePath = "/root/.sccache_dist_token"
	// toolchainDirPath is where toolchains are staged for remote builds.
	toolchainDirPath = "/tmp/toolchains"
)

// ContainerInspector runs checks inside the container hosting the
// scheduler and builder. The container is located by exact name so a
// leftover container with a prefixed name can never satisfy the checks.
type ContainerInspector struct {
	Name string
	Run  Runner
}

// Running reports whether a container with exactly the configured name is
// up.
func (c *ContainerInspector) Running(ctx context.Context) bool {
	out, err := c.Run(ctx, 0, "docker", "ps",
		"--filter", fmt.Sprintf("name=^/%s$", c.Name),
		"--format", "{{.Names}}")
	if err != nil {
		return false
	}
	return out == c.Name
}

// Exec runs a command inside the container, short-circuiting when the
// container is not running.
func (c *ContainerInspector) Exec(ctx context.Context, args ...string) (string, error) {
	if !c.Running(ctx) {
		return "", fmt.Errorf("container %q is not running", c.Name)
	}
	full := append([]string{"exec", c.Name}, args...)
	return c.Run(ctx, 0, "docker", full...)
}

// Token returns the distributed-auth token staged inside the container.
func (c *ContainerInspector) Token(ctx context.Context) (string, error) {
	return c.Exec(ctx, "cat", tokenFilePath)
}

// CheckToken retrieves the in-container token and compares it against the
// local environment and the local config file, each as an independently
// reported check.
func (c *ContainerInspector) CheckToken(ctx context.Context, cfg *SchedulerConfig) {
	token, err := c.Token(ctx)
	if err != nil {
		report.Status("Retrieve "+tokenFilePath+" from container", false, err.Error())
		return
	}
	report.Status("Retrieve "+tokenFilePath+" from container", true, token)

	report.Status("Container token matches local SCCACHE_DIST_TOKEN",
		token == os.Getenv("SCCACHE_DIST_TOKEN"))

	if cfg == nil {
		report.Status("Container token matches sccache config token", false, "config file not loaded")
		return
	}
	report.Status("Container token matches sccache config token", token == cfg.AuthToken)
}

// CheckBubblewrap verifies the sandboxing helper inside the container is
// new enough for remote build isolation.
func (c *ContainerInspector) CheckBubblewrap(ctx context.Context) bool {
	out, err := c.Exec(ctx, "bwrap", "--version")
	if err != nil {
		return report.Status("Bubblewrap is installed in container", false, err.Error())
	}
	return report.Status("Bubblewrap version >= 0.3.0 in container",
		BubblewrapAtLeast(out, minBubblewrap), out)
}

// CheckToolchainDir verifies the toolchain cache directory is writable
// inside the container. The shell test prints exactly OK on success.
func (c *ContainerInspector) CheckToolchainDir(ctx context.Context) bool {
	out, err := c.Exec(ctx, "sh", "-c",
		fmt.Sprintf("test -w %s && echo OK || echo NO", toolchainDirPath))
	if err != nil {
		return report.Status("Toolchain cache directory is accessible inside container", false, err.Error())
	}
	return report.Status("Toolchain cache directory is accessible inside container", out == "OK")
}

// CheckDockerInstalled reports whether the docker CLI works on the host
// at all.
func CheckDockerInstalled(ctx context.Context, run Runner) bool {
	out, err := run(ctx, 0, "docker", "--version")
	if err != nil {
		return report.Status("Docker is installed", false, err.Error())
	}
	return report.Status("Docker is installed", true, out)
}
