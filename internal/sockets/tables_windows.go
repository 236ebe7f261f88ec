//go:build windows

package sockets

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	iphlpapi        = windows.NewLazySystemDLL("iphlpapi.dll")
	procGetTcpTable = iphlpapi.NewProc("GetTcpTable")
	procGetUdpTable = iphlpapi.NewProc("GetUdpTable")
)

type mibTables struct{}

// DefaultTables queries iphlpapi for the IPv4 tables.
func DefaultTables() Tables {
	return mibTables{}
}

func (mibTables) TCP() ([]TCPRow, error) {
	buf, err := getTable(procGetTcpTable)
	if err != nil {
		return nil, err
	}
	return parseMIBTCPTable(buf)
}

func (mibTables) UDP() ([]UDPRow, error) {
	buf, err := getTable(procGetUdpTable)
	if err != nil {
		return nil, err
	}
	return parseMIBUDPTable(buf)
}

// getTable does the usual size probe then fill. The table can grow between
// the two calls; that surfaces as an error for this snapshot only.
func getTable(proc *windows.LazyProc) ([]byte, error) {
	if err := proc.Find(); err != nil {
		return nil, fmt.Errorf("%s: %w", proc.Name, err)
	}

	var size uint32
	r0, _, _ := proc.Call(0, uintptr(unsafe.Pointer(&size)), 1)
	if e := syscall.Errno(r0); r0 != 0 && e != windows.ERROR_INSUFFICIENT_BUFFER {
		return nil, tableErr(proc.Name+" size query", e)
	}
	if size == 0 {
		return nil, nil
	}

	buf := make([]byte, size)
	r0, _, _ = proc.Call(uintptr(unsafe.Pointer(&buf[0])), uintptr(unsafe.Pointer(&size)), 1)
	if r0 != 0 {
		return nil, tableErr(proc.Name, syscall.Errno(r0))
	}
	return buf[:size], nil
}

func tableErr(op string, e syscall.Errno) error {
	if e == windows.ERROR_NOT_ENOUGH_MEMORY || e == windows.ERROR_OUTOFMEMORY {
		return fmt.Errorf("%s: %w (%v)", op, ErrResourceExhausted, e)
	}
	return fmt.Errorf("%s: %w", op, e)
}
