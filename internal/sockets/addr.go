package sockets

import (
	"net/netip"
	"strconv"
)

// IPv4FromDWORD renders a network-order IPv4 DWORD (first octet in the low
// byte) as dotted decimal.
func IPv4FromDWORD(addr uint32) string {
	return strconv.Itoa(int(byte(addr))) + "." +
		strconv.Itoa(int(byte(addr>>8))) + "." +
		strconv.Itoa(int(byte(addr>>16))) + "." +
		strconv.Itoa(int(byte(addr>>24)))
}

// DWORDFromIPv4 is the inverse of IPv4FromDWORD. Anything that is not an
// IPv4 address maps to 0 (0.0.0.0).
func DWORDFromIPv4(ip string) uint32 {
	a, err := netip.ParseAddr(ip)
	if err != nil {
		return 0
	}
	a = a.Unmap()
	if !a.Is4() {
		return 0
	}
	b := a.As4()
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Ntohs converts a network-order port held in the low 16 bits to host order.
func Ntohs(p uint32) int {
	v := uint16(p)
	return int((v >> 8) | (v << 8))
}

// Htons converts a host-order port to the network-order form Ntohs expects.
func Htons(port int) uint32 {
	v := uint16(port)
	return uint32((v >> 8) | (v << 8))
}
