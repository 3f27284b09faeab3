package checks

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/sccache-tools/sccache-dist-check/pkg/report"
)

// connectTimeout bounds each TCP connect attempt. Reachability is the
// only question; no protocol handshake follows.
const connectTimeout = 3 * time.Second

// ParseEndpoint extracts host and port from a URL string. An empty or
// malformed URL, or one without an explicit host and port, yields
// ok == false; callers report a single failed connectivity check instead
// of probing.
func ParseEndpoint(rawURL string) (host string, port int, ok bool) {
	if rawURL == "" {
		return "", 0, false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", 0, false
	}

	host = u.Hostname()
	portStr := u.Port()
	if host == "" || portStr == "" {
		return "", 0, false
	}

	port, err = strconv.Atoi(portStr)
	if err != nil {
		return "", 0, false
	}
	return host, port, true
}

// CanConnect attempts a bare TCP connect and reports whether it completed
// within the timeout.
func CanConnect(host string, port int, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// InspectReachability probes the scheduler's advertised endpoint and the
// builder port on the same host, from the local machine's point of view.
func InspectReachability(schedulerURL string) []bool {
	host, port, ok := ParseEndpoint(schedulerURL)
	if !ok {
		report.Info("* Could not parse scheduler URL, skipping runtime connectivity checks.")
		return []bool{report.Status("scheduler URL is a usable host:port", false, schedulerURL)}
	}

	return []bool{
		report.Status(fmt.Sprintf("Host can connect to scheduler at %s:%d", host, port),
			CanConnect(host, port, connectTimeout)),
		report.Status(fmt.Sprintf("Host can connect to builder at %s:%d", host, BuilderPort),
			CanConnect(host, BuilderPort, connectTimeout)),
	}
}

// InspectLocalPorts verifies the fixed scheduler and builder ports are
// still free on loopback, for a host about to start its own pair. A port
// that accepts a connection is already claimed, so connectable is the
// failure case here.
func InspectLocalPorts() []bool {
	return []bool{
		report.Status(fmt.Sprintf("Local scheduler port %d is free", SchedulerPort),
			!CanConnect("127.0.0.1", SchedulerPort, connectTimeout)),
		report.Status(fmt.Sprintf("Local builder port %d is free", BuilderPort),
			!CanConnect("127.0.0.1", BuilderPort, connectTimeout)),
	}
}
