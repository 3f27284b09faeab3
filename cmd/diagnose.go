package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sccache-tools/sccache-dist-check/pkg/checks"
	"github.com/sccache-tools/sccache-dist-check/pkg/report"
)

var diagnoseCommand = &cobra.Command{ // nolint:gochecknoglobals
	Use:          "diagnose",
	Short:        "Runs the full sccache-dist deployment diagnosis",
	SilenceUsage: true,
	RunE:         runDiagnosis,
}

// runDiagnosis walks the fixed check sequence once: container
// introspection, local binaries, raw status dumps, then the three tallied
// groups (environment, config, runtime) and the summary. Only the tallied
// groups decide the exit code.
func runDiagnosis(cmd *cobra.Command, args []string) error {
	switch checks.Mode(modeFlag) {
	case checks.ModeReachability, checks.ModeLocalPorts:
		checkConfig.Mode = checks.Mode(modeFlag)
	default:
		return fmt.Errorf("unknown check mode %q (options: %s, %s)",
			modeFlag, checks.ModeReachability, checks.ModeLocalPorts)
	}

	ctx := cmd.Context()
	run := checks.Runner(checks.Run)
	inspector := &checks.ContainerInspector{Name: checkConfig.ContainerName, Run: run}

	// The config file is consulted twice (container token comparison and
	// the config group), so load it once up front.
	confPath := checks.ConfigPath(checkConfig.ConfPath)
	cfg, rawConf, loadErr := checks.LoadConfig(confPath)
	if loadErr != nil {
		log.WithError(loadErr).WithField("path", confPath).Debug("could not load sccache config")
	}

	report.Section("Container-based checks (inside docker)")
	running := report.Status(fmt.Sprintf("Docker container '%s' is running", checkConfig.ContainerName),
		inspector.Running(ctx))
	if running {
		inspector.CheckToken(ctx, cfg)
		inspector.CheckBubblewrap(ctx)
		inspector.CheckToolchainDir(ctx)
	} else {
		report.Info("Skipping in-container checks because container is not running.")
	}

	report.Section("Checking local sccache-dist installation & processes")
	checks.CheckDistInstalled(ctx, run)
	checks.CheckDistProcesses(ctx, run)

	report.Section("Checking sccache distributed setup outside container")
	checks.CheckDockerInstalled(ctx, run)

	report.Section("Checking sccache --dist-status")
	report.Info("%s", checks.SccacheOutput(ctx, run, "--dist-status"))

	report.Section("Checking sccache --dist-auth")
	report.Info("%s", checks.SccacheOutput(ctx, run, "--dist-auth"))

	report.Section("Configs from docker container")
	if token, err := inspector.Token(ctx); err == nil {
		report.Info("Container AUTH token: %s", token)
		report.Info("")
		report.Info("Consider adding the following to your .bashrc:")
		report.Info(`export SCCACHE_DIST_TOKEN="$(docker exec %s cat /root/.sccache_dist_token)"`,
			checkConfig.ContainerName)
		report.Info(`export SCCACHE_DIST_TOKEN="${SCCACHE_DIST_TOKEN:-%s}"`, token)
	} else {
		report.Info("Failed to retrieve AUTH token from container: %v", err)
	}

	tally := &report.Tally{}

	report.Section("Environment variables")
	tally.Add(checks.InspectEnv())

	report.Section("sccache configs")
	tally.Add(checks.InspectConfig(confPath, cfg, rawConf, loadErr))

	report.Section("Runtime checks")
	if checkConfig.Mode == checks.ModeLocalPorts {
		tally.Add(checks.InspectLocalPorts())
	} else {
		tally.Add(checks.InspectReachability(checks.SchedulerURLFromEnv()))
	}

	tally.Summary()

	if !tally.AllPassed() {
		return fmt.Errorf("%d of %d checks failed",
			tally.Attempted()-tally.Passed(), tally.Attempted())
	}

	return nil
}
