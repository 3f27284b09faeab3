package report

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	buf := &bytes.Buffer{}
	old := Out
	Out = buf
	t.Cleanup(func() { Out = old })
	return buf
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		ok       bool
		observed []string
		want     string
	}{
		{
			name:  "pass without observed value",
			label: "SCCACHE_NO_DAEMON",
			ok:    true,
			want:  "* SCCACHE_NO_DAEMON: PASS\n",
		},
		{
			name:  "fail without observed value",
			label: "auth type == token",
			ok:    false,
			want:  "* auth type == token: FAIL\n",
		},
		{
			name:     "pass with observed value",
			label:    "Docker is installed",
			ok:       true,
			observed: []string{"Docker version 24.0.7"},
			want:     "* Docker is installed (=Docker version 24.0.7): PASS\n",
		},
		{
			name:     "fail with empty observed value",
			label:    "SCCACHE_DIST_AUTH",
			ok:       false,
			observed: []string{""},
			want:     "* SCCACHE_DIST_AUTH (=): FAIL\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := capture(t)
			got := Status(tc.label, tc.ok, tc.observed...)
			assert.Equal(t, tc.ok, got, "Status must return the outcome unchanged")
			assert.Equal(t, tc.want, buf.String())
		})
	}
}

func TestSectionAndInfo(t *testing.T) {
	buf := capture(t)
	Section("Runtime checks")
	Info("Using config file: %s", "/tmp/config")
	Optional("SCCACHE_LOG", "debug")

	assert.Equal(t, "\n## Runtime checks:\nUsing config file: /tmp/config\n* Optional: SCCACHE_LOG=debug\n", buf.String())
}

func TestTally(t *testing.T) {
	capture(t)

	tally := &Tally{}
	tally.Add([]bool{true, true, false, true})
	tally.Add(nil)
	tally.Add([]bool{true})

	assert.Equal(t, 4, tally.Passed())
	assert.Equal(t, 5, tally.Attempted())
	assert.False(t, tally.AllPassed())
}

func TestTallyAllPassed(t *testing.T) {
	buf := capture(t)

	tally := &Tally{}
	tally.Add([]bool{true, true})
	assert.True(t, tally.AllPassed())

	tally.Summary()
	assert.Contains(t, buf.String(), "Passed 2 out of 2 checks.")
}

func TestTallyEmptyAllPassed(t *testing.T) {
	tally := &Tally{}
	assert.True(t, tally.AllPassed())
}
