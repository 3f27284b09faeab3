package checks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedConf = `[dist]
scheduler_url = "http://sched.example:10600"

[dist.auth]
type = "token"
token = "abc"
`

func writeConf(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "/etc/sccache/config", ConfigPath("/etc/sccache/config"))

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "sccache", "config"), ConfigPath(""))
}

func TestLoadConfig(t *testing.T) {
	path := writeConf(t, wellFormedConf)

	cfg, raw, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, wellFormedConf, raw)
	assert.True(t, cfg.HasSchedulerURL)
	assert.Equal(t, "http://sched.example:10600", cfg.SchedulerURL)
	assert.Equal(t, "token", cfg.AuthType)
	assert.Equal(t, "abc", cfg.AuthToken)
}

func TestLoadConfigMissingSchedulerURL(t *testing.T) {
	path := writeConf(t, "[dist.auth]\ntype = \"token\"\ntoken = \"abc\"\n")

	cfg, _, err := LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, cfg.HasSchedulerURL)
}

func TestLoadConfigParseError(t *testing.T) {
	path := writeConf(t, "[dist\nnot toml at all")

	cfg, raw, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.NotEmpty(t, raw, "raw contents are still echoed on parse errors")
}

func TestInspectConfigAllMatch(t *testing.T) {
	captureReport(t)
	t.Setenv("SCCACHE_DIST_TOKEN", "abc")
	t.Setenv("SCCACHE_SCHEDULER_URL", "http://sched.example:10600")

	path := writeConf(t, wellFormedConf)
	cfg, raw, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, true, true}, InspectConfig(path, cfg, raw, err))
}

func TestInspectConfigTokenMismatch(t *testing.T) {
	captureReport(t)
	t.Setenv("SCCACHE_DIST_TOKEN", "xyz")
	t.Setenv("SCCACHE_SCHEDULER_URL", "http://sched.example:10600")

	path := writeConf(t, wellFormedConf)
	cfg, raw, err := LoadConfig(path)
	require.NoError(t, err)

	// Exactly the token comparison fails, the other three stay green.
	assert.Equal(t, []bool{true, true, false, true}, InspectConfig(path, cfg, raw, err))
}

func TestInspectConfigMissingFileContributesOneFailure(t *testing.T) {
	captureReport(t)

	path := filepath.Join(t.TempDir(), "does-not-exist")
	cfg, raw, err := LoadConfig(path)
	require.Error(t, err)

	results := InspectConfig(path, cfg, raw, err)
	assert.Len(t, results, 1, "a missing file is one failed check, not four")
	assert.False(t, results[0])
}

func TestInspectConfigParseErrorContributesOneFailure(t *testing.T) {
	captureReport(t)

	path := writeConf(t, "dist = not valid")
	cfg, raw, err := LoadConfig(path)
	require.Error(t, err)

	results := InspectConfig(path, cfg, raw, err)
	assert.Len(t, results, 1)
	assert.False(t, results[0])
}
