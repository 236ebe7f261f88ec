package sockets

import (
	"encoding/binary"
	"errors"
)

// MIB_TCPTABLE / MIB_UDPTABLE as returned by GetTcpTable and GetUdpTable:
// a DWORD entry count followed by fixed-size rows of DWORDs.
const (
	mibTCPRowSize = 5 * 4 // dwState, dwLocalAddr, dwLocalPort, dwRemoteAddr, dwRemotePort
	mibUDPRowSize = 2 * 4 // dwLocalAddr, dwLocalPort
)

var errShortTable = errors.New("table buffer shorter than its entry count")

func parseMIBTCPTable(buf []byte) ([]TCPRow, error) {
	n, rows, err := mibRows(buf, mibTCPRowSize)
	if err != nil {
		return nil, err
	}
	out := make([]TCPRow, 0, n)
	for i := 0; i < n; i++ {
		r := rows[i*mibTCPRowSize:]
		out = append(out, TCPRow{
			State:      MIBState(binary.LittleEndian.Uint32(r[0:])),
			LocalAddr:  binary.LittleEndian.Uint32(r[4:]),
			LocalPort:  binary.LittleEndian.Uint32(r[8:]),
			RemoteAddr: binary.LittleEndian.Uint32(r[12:]),
			RemotePort: binary.LittleEndian.Uint32(r[16:]),
		})
	}
	return out, nil
}

func parseMIBUDPTable(buf []byte) ([]UDPRow, error) {
	n, rows, err := mibRows(buf, mibUDPRowSize)
	if err != nil {
		return nil, err
	}
	out := make([]UDPRow, 0, n)
	for i := 0; i < n; i++ {
		r := rows[i*mibUDPRowSize:]
		out = append(out, UDPRow{
			LocalAddr: binary.LittleEndian.Uint32(r[0:]),
			LocalPort: binary.LittleEndian.Uint32(r[4:]),
		})
	}
	return out, nil
}

func mibRows(buf []byte, rowSize int) (int, []byte, error) {
	if len(buf) < 4 {
		return 0, nil, nil
	}
	n := int(binary.LittleEndian.Uint32(buf))
	rows := buf[4:]
	if n*rowSize > len(rows) {
		return 0, nil, errShortTable
	}
	return n, rows, nil
}
