package checks

// Mode selects how the runtime/network group probes the deployment.
type Mode string

const (
	// ModeReachability connects to the scheduler and builder ports from
	// the host's point of view.
	ModeReachability Mode = "reachability"
	// ModeLocalPorts verifies the fixed scheduler/builder ports are still
	// free on loopback, for a host that is about to run both itself.
	ModeLocalPorts Mode = "local-ports"
)

const (
	// DefaultContainerName is the name the compose file gives the
	// container hosting the scheduler and builder.
	DefaultContainerName = "sccache-dist"

	// BuilderPort is the fixed port sccache-dist builders listen on.
	BuilderPort = 10501
	// SchedulerPort is the port a locally hosted scheduler binds, probed
	// in local-ports mode.
	SchedulerPort = 10600
)

// CheckConfig carries everything the check sequence needs. It is filled
// once from flags and SCCACHE_* environment variables and passed around
// explicitly rather than read from ambient globals.
type CheckConfig struct {
	LogLevel      string
	ConfPath      string // override of the sccache config file location
	ContainerName string
	Mode          Mode
}
