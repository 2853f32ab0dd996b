// Package hostinfo collects the identity of the machine and user running a
// command, for log prefixes and the per-run log record.
package hostinfo

import (
	"net"
	"os"
	"os/user"
	"runtime"
	"time"
)

// unknown is used for any field that cannot be determined.
const unknown = "unknown"

// Snapshot is the host identity at one point in time.
type Snapshot struct {
	Time      time.Time
	Hostname  string
	IP        string
	GoVersion string
	User      string
}

// Collect gathers a Snapshot. Lookups that fail degrade to "unknown"
// instead of failing the command.
func Collect() Snapshot {
	host := Hostname()
	return Snapshot{
		Time:      time.Now(),
		Hostname:  host,
		IP:        IPv4(host),
		GoVersion: runtime.Version(),
		User:      Username(),
	}
}

// Hostname returns the kernel host name.
func Hostname() string {
	h, err := os.Hostname()
	if err != nil || h == "" {
		return unknown
	}
	return h
}

// Username returns the login name of the current user.
func Username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	for _, env := range []string{"USER", "LOGNAME", "USERNAME"} {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	return unknown
}

// IPv4 resolves host to its first IPv4 address. When resolution fails it
// falls back to the first non-loopback IPv4 of a local interface.
func IPv4(host string) string {
	if addrs, err := net.LookupIP(host); err == nil {
		for _, a := range addrs {
			if v4 := a.To4(); v4 != nil {
				return v4.String()
			}
		}
	}
	ifaceAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return unknown
	}
	for _, a := range ifaceAddrs {
		ipNet, ok := a.(*net.IPNet)
		if !ok || ipNet.IP.IsLoopback() {
			continue
		}
		if v4 := ipNet.IP.To4(); v4 != nil {
			return v4.String()
		}
	}
	return unknown
}
