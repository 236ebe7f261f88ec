package sockets

import (
	gnet "github.com/shirou/gopsutil/v4/net"
)

// connectionsFunc matches gnet.Connections so tests can swap it out.
type connectionsFunc func(kind string) ([]gnet.ConnectionStat, error)

// statTables reads the tables through gopsutil. It backs the platforms that
// have neither /proc/net nor iphlpapi.
type statTables struct {
	connections connectionsFunc
}

func (t statTables) TCP() ([]TCPRow, error) {
	stats, err := t.connections("tcp4")
	if err != nil {
		return nil, err
	}
	rows := make([]TCPRow, 0, len(stats))
	for _, c := range stats {
		rows = append(rows, TCPRow{
			State:      StatusState(c.Status),
			LocalAddr:  DWORDFromIPv4(c.Laddr.IP),
			LocalPort:  Htons(int(c.Laddr.Port)),
			RemoteAddr: DWORDFromIPv4(c.Raddr.IP),
			RemotePort: Htons(int(c.Raddr.Port)),
			PID:        uint32(max(c.Pid, 0)),
		})
	}
	return rows, nil
}

func (t statTables) UDP() ([]UDPRow, error) {
	stats, err := t.connections("udp4")
	if err != nil {
		return nil, err
	}
	rows := make([]UDPRow, 0, len(stats))
	for _, c := range stats {
		rows = append(rows, UDPRow{
			LocalAddr: DWORDFromIPv4(c.Laddr.IP),
			LocalPort: Htons(int(c.Laddr.Port)),
			PID:       uint32(max(c.Pid, 0)),
		})
	}
	return rows, nil
}
