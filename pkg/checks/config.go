package checks

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sccache-tools/sccache-dist-check/pkg/report"
)

// SchedulerConfig is the slice of the sccache config file this tool cares
// about: the [dist] section and its nested [dist.auth] table.
type SchedulerConfig struct {
	SchedulerURL    string
	HasSchedulerURL bool
	AuthType        string
	AuthToken       string
}

// ConfigPath resolves the sccache config file location: the SCCACHE_CONF
// override when set, else ~/.config/sccache/config.
func ConfigPath(override string) string {
	if override != "" {
		return override
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ".config", "sccache", "config")
}

// LoadConfig reads the sccache config file and parses it as TOML. The raw
// contents are returned alongside so callers can echo them even when
// parsing fails.
func LoadConfig(path string) (*SchedulerConfig, string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	v := viper.New()
	v.SetConfigType("toml")
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, string(raw), fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg := &SchedulerConfig{
		HasSchedulerURL: v.IsSet("dist.scheduler_url"),
		SchedulerURL:    v.GetString("dist.scheduler_url"),
		AuthType:        v.GetString("dist.auth.type"),
		AuthToken:       v.GetString("dist.auth.token"),
	}
	return cfg, string(raw), nil
}

// InspectConfig echoes the config file and runs the four derived checks
// against the environment. A missing or unparseable file contributes
// exactly one failed check; the derived checks are skipped for the tally,
// not counted as four extra failures.
func InspectConfig(path string, cfg *SchedulerConfig, raw string, loadErr error) []bool {
	report.Info("Using config file: %s", path)

	if raw != "" {
		report.Section("Config file contents")
		report.Info("-------------------")
		report.Info("%s", raw)
		report.Info("-------------------")
	}

	if loadErr != nil {
		return []bool{report.Status("config file readable and parseable", false, loadErr.Error())}
	}

	envToken := os.Getenv("SCCACHE_DIST_TOKEN")
	envURL := os.Getenv("SCCACHE_SCHEDULER_URL")

	return []bool{
		report.Status("scheduler_url present", cfg.HasSchedulerURL),
		report.Status("auth type == token", cfg.AuthType == "token"),
		report.Status("env SCCACHE_DIST_TOKEN matches config token", cfg.AuthToken == envToken),
		report.Status("env SCCACHE_SCHEDULER_URL matches config scheduler_url", cfg.SchedulerURL == envURL),
	}
}
