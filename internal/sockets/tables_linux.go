//go:build linux

package sockets

import (
	"fmt"
	"os"
)

const (
	procNetTCP = "/proc/net/tcp"
	procNetUDP = "/proc/net/udp"
)

type procTables struct {
	tcpPath string
	udpPath string
}

// DefaultTables reads the IPv4 tables under /proc/net.
func DefaultTables() Tables {
	return procTables{tcpPath: procNetTCP, udpPath: procNetUDP}
}

func (t procTables) TCP() ([]TCPRow, error) {
	f, err := os.Open(t.tcpPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", t.tcpPath, err)
	}
	defer f.Close()
	return readProcTCP(f)
}

func (t procTables) UDP() ([]UDPRow, error) {
	f, err := os.Open(t.udpPath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", t.udpPath, err)
	}
	defer f.Close()
	return readProcUDP(f)
}
