package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBubblewrapVersion(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{name: "typical output", out: "bubblewrap 0.11.0", want: "v0.11.0"},
		{name: "trailing newline", out: "bubblewrap 0.3.0\n", want: "v0.3.0"},
		{name: "bare version", out: "0.4.1", want: "v0.4.1"},
		{name: "extra trailing words", out: "bubblewrap 0.5.0 (flatpak build)", want: "v0.5.0"},
		{name: "no numeric tokens", out: "command not found", want: "v0.0.0"},
		{name: "empty", out: "", want: "v0.0.0"},
		{name: "unknown prefix word", out: "bwrap version unknown", want: "v0.0.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, bubblewrapVersion(tc.out))
		})
	}
}

func TestBubblewrapAtLeast(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want bool
	}{
		{name: "newer than minimum", out: "bubblewrap 0.11.0", want: true},
		{name: "exactly the minimum", out: "bubblewrap 0.3.0", want: true},
		{name: "older than minimum", out: "bubblewrap 0.2.1", want: false},
		{name: "double digit component compares numerically", out: "bubblewrap 0.10.0", want: true},
		{name: "garbage fails closed", out: "no such file or directory", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, BubblewrapAtLeast(tc.out, minBubblewrap))
		})
	}
}
