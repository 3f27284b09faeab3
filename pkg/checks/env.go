package checks

import (
	"os"

	"github.com/sccache-tools/sccache-dist-check/pkg/report"
)

// EnvVar describes one environment variable check.
type EnvVar struct {
	Name     string
	Expect   string // exact value required when non-empty
	Optional bool   // echoed if set, never failed, never tallied
}

// RequiredEnvVars lists the variables a working sccache-dist client needs
// exported, in report order.
func RequiredEnvVars() []EnvVar {
	return []EnvVar{
		{Name: "SCCACHE_NO_DAEMON", Expect: "1"},
		{Name: "SCCACHE_DIST_AUTH", Expect: "token"},
		{Name: "SCCACHE_DIST_TOKEN"},
		{Name: "SCCACHE_SCHEDULER_URL"},
	}
}

// OptionalEnvVars lists variables echoed for operator visibility only.
func OptionalEnvVars() []EnvVar {
	return []EnvVar{
		{Name: "SCCACHE_LOG", Optional: true},
		{Name: "SCCACHE_CONF", Optional: true},
	}
}

// CheckEnvVar reports one variable. Optional variables always succeed.
// Variables with an Expect value must match it byte for byte; the rest
// must be set to a non-empty string.
func CheckEnvVar(v EnvVar) bool {
	value, set := os.LookupEnv(v.Name)

	if v.Optional {
		if set {
			report.Optional(v.Name, value)
		}
		return true
	}

	if v.Expect != "" {
		return report.Status(v.Name, set && value == v.Expect, value)
	}

	return report.Status(v.Name+" is set", set && value != "", value)
}

// SchedulerURLFromEnv returns the scheduler URL the client is configured
// to use, empty when unset.
func SchedulerURLFromEnv() string {
	return os.Getenv("SCCACHE_SCHEDULER_URL")
}

// InspectEnv runs the required variable checks and returns their results
// for tallying, then echoes the optional variables.
func InspectEnv() []bool {
	var results []bool
	for _, v := range RequiredEnvVars() {
		results = append(results, CheckEnvVar(v))
	}
	for _, v := range OptionalEnvVars() {
		CheckEnvVar(v)
	}
	return results
}
