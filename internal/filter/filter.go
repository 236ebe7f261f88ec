package filter

import (
	"strings"

	"github.com/pratik-anurag/netmon/internal/model"
)

// Selector picks which records of a snapshot are displayed.
type Selector int

const (
	All Selector = iota
	Local
	Internet
	Active
	Listening
	TCPOnly
	UDPOnly

	numSelectors
)

// Next returns the following selector, wrapping from UDPOnly back to All.
func (s Selector) Next() Selector {
	if s < 0 || s >= numSelectors {
		return All
	}
	return (s + 1) % numSelectors
}

func (s Selector) String() string {
	switch s {
	case All:
		return "ALL"
	case Local:
		return "LOCAL"
	case Internet:
		return "INTERNET"
	case Active:
		return "ACTIVE"
	case Listening:
		return "LISTENING"
	case TCPOnly:
		return "TCP"
	case UDPOnly:
		return "UDP"
	default:
		return "UNKNOWN"
	}
}

// Describe is the one-line meaning shown in the help overlay.
func (s Selector) Describe() string {
	switch s {
	case All:
		return "Show all connections"
	case Local:
		return "Show only connections to your own computer (127.0.0.1)"
	case Internet:
		return "Show only connections to other computers"
	case Active:
		return "Show only established connections"
	case Listening:
		return "Show only listening ports (waiting for connections)"
	case TCPOnly:
		return "Show only TCP connections"
	case UDPOnly:
		return "Show only UDP connections"
	default:
		return ""
	}
}

// Selectors lists every selector in cycling order.
func Selectors() []Selector {
	out := make([]Selector, 0, numSelectors)
	for s := All; s < numSelectors; s++ {
		out = append(out, s)
	}
	return out
}

// Include reports whether c is shown under s.
// LOCAL and INTERNET look at the local address, not the remote one.
func Include(c model.Conn, s Selector) bool {
	switch s {
	case Local:
		return IsLoopback(c.LocalIP)
	case Internet:
		return !IsLoopback(c.LocalIP)
	case Active:
		return c.State == model.StateEstablished
	case Listening:
		return c.State == model.StateListening
	case TCPOnly:
		return c.Proto == model.ProtoTCP
	case UDPOnly:
		return c.Proto == model.ProtoUDP
	default:
		return true
	}
}

// Apply returns the records of conns shown under s, in order.
func Apply(conns []model.Conn, s Selector) []model.Conn {
	if s == All {
		return conns
	}
	out := make([]model.Conn, 0, len(conns))
	for _, c := range conns {
		if Include(c, s) {
			out = append(out, c)
		}
	}
	return out
}

func IsLoopback(ip string) bool {
	return strings.HasPrefix(ip, "127.") || ip == "::1"
}
