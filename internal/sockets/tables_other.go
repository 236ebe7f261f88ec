//go:build !linux && !windows

package sockets

import (
	gnet "github.com/shirou/gopsutil/v4/net"
)

// DefaultTables reads the IPv4 tables through gopsutil.
func DefaultTables() Tables {
	return statTables{connections: gnet.Connections}
}
