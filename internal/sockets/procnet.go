package sockets

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// /proc/net/tcp
//   sl  local_address rem_address   st tx_queue rx_queue tr tm->when retrnsmt   uid  timeout inode
//    0: 0100007F:1388 00000000:0000 0A 00000000:00000000 00:00000000 00000000  1000        0 41027 1 ...
//
// Addresses are the kernel's __be32 printed as a host-order hex word, which on
// little-endian machines is the same DWORD iphlpapi hands out. Ports are host order.
type procLine struct {
	laddr uint32
	lport int
	raddr uint32
	rport int
	state uint32
}

func parseProcNetLine(line string) (procLine, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 || !strings.HasSuffix(fields[0], ":") {
		return procLine{}, false
	}
	laddr, lport, ok := parseHexEndpoint(fields[1])
	if !ok {
		return procLine{}, false
	}
	raddr, rport, ok := parseHexEndpoint(fields[2])
	if !ok {
		return procLine{}, false
	}
	st, err := strconv.ParseUint(fields[3], 16, 8)
	if err != nil {
		return procLine{}, false
	}
	return procLine{laddr: laddr, lport: lport, raddr: raddr, rport: rport, state: uint32(st)}, true
}

func parseHexEndpoint(s string) (uint32, int, bool) {
	i := strings.LastIndex(s, ":")
	if i != 8 {
		// IPv4 tables only: 8 hex digits of address.
		return 0, 0, false
	}
	addr, err := strconv.ParseUint(s[:i], 16, 32)
	if err != nil {
		return 0, 0, false
	}
	port, err := strconv.ParseUint(s[i+1:], 16, 16)
	if err != nil {
		return 0, 0, false
	}
	return uint32(addr), int(port), true
}

func readProcTCP(r io.Reader) ([]TCPRow, error) {
	var rows []TCPRow
	err := scanProcNet(r, func(l procLine) {
		rows = append(rows, TCPRow{
			State:      ProcState(l.state),
			LocalAddr:  l.laddr,
			LocalPort:  Htons(l.lport),
			RemoteAddr: l.raddr,
			RemotePort: Htons(l.rport),
		})
	})
	return rows, err
}

func readProcUDP(r io.Reader) ([]UDPRow, error) {
	var rows []UDPRow
	err := scanProcNet(r, func(l procLine) {
		rows = append(rows, UDPRow{
			LocalAddr: l.laddr,
			LocalPort: Htons(l.lport),
		})
	})
	return rows, err
}

func scanProcNet(r io.Reader, fn func(procLine)) error {
	sc := bufio.NewScanner(r)
	sc.Scan() // header
	for sc.Scan() {
		l, ok := parseProcNetLine(sc.Text())
		if !ok {
			continue
		}
		fn(l)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan: %w", err)
	}
	return nil
}
