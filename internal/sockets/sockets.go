package sockets

import (
	"errors"
	"fmt"

	"github.com/pratik-anurag/netmon/internal/model"
)

// DefaultMax is the snapshot size bound used when Source.Max is not set.
const DefaultMax = 100

// ErrResourceExhausted marks a table query that failed for lack of memory.
var ErrResourceExhausted = errors.New("out of memory")

// TCPRow is one entry of the OS TCP table. Addresses are IPv4 values in
// network byte order and ports are network-order values in the low 16 bits,
// the way iphlpapi reports them. PID is 0 when the backend does not know it.
type TCPRow struct {
	State      model.State
	LocalAddr  uint32
	LocalPort  uint32
	RemoteAddr uint32
	RemotePort uint32
	PID        uint32
}

// UDPRow is one entry of the OS UDP socket table.
type UDPRow struct {
	LocalAddr uint32
	LocalPort uint32
	PID       uint32
}

// Tables is a read-only view of the kernel connection tables.
type Tables interface {
	TCP() ([]TCPRow, error)
	UDP() ([]UDPRow, error)
}

// OwnerResolver turns a process id into a display label.
type OwnerResolver interface {
	Resolve(pid uint32) (string, bool)
}

// QueryError reports a failed table query for one protocol.
type QueryError struct {
	Proto model.Proto
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("could not get %s connection information: %v", e.Proto, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Source builds snapshots from a Tables backend.
type Source struct {
	Tables   Tables
	Max      int
	Resolver OwnerResolver
}

// NewSource returns a Source reading the tables of the running OS.
func NewSource(limit int, resolver OwnerResolver) *Source {
	return &Source{Tables: DefaultTables(), Max: limit, Resolver: resolver}
}

// Enumerate returns TCP records followed by UDP records, each in table order,
// truncated at the size bound. A protocol whose query fails contributes no
// records; the failures are joined into the returned error and the records
// that were gathered are returned alongside it.
func (s *Source) Enumerate() ([]model.Conn, error) {
	if s.Tables == nil {
		return nil, errors.New("sockets: no connection tables")
	}
	limit := s.Max
	if limit <= 0 {
		limit = DefaultMax
	}

	conns := make([]model.Conn, 0, limit)
	var errs []error

	tcp, err := s.Tables.TCP()
	if err != nil {
		errs = append(errs, &QueryError{Proto: model.ProtoTCP, Err: err})
	} else {
		for _, r := range tcp {
			if len(conns) >= limit {
				break
			}
			conns = append(conns, s.tcpConn(r))
		}
	}

	udp, err := s.Tables.UDP()
	if err != nil {
		errs = append(errs, &QueryError{Proto: model.ProtoUDP, Err: err})
	} else {
		for _, r := range udp {
			if len(conns) >= limit {
				break
			}
			conns = append(conns, s.udpConn(r))
		}
	}

	return conns, errors.Join(errs...)
}

func (s *Source) tcpConn(r TCPRow) model.Conn {
	c := model.Conn{
		LocalIP:    IPv4FromDWORD(r.LocalAddr),
		LocalPort:  Ntohs(r.LocalPort),
		RemoteIP:   IPv4FromDWORD(r.RemoteAddr),
		RemotePort: Ntohs(r.RemotePort),
		Proto:      model.ProtoTCP,
		State:      r.State,
		Owner:      model.UnknownOwner,
	}
	if c.State == "" {
		c.State = model.StateUnknown
	}
	s.resolve(&c, r.PID)
	return c
}

func (s *Source) udpConn(r UDPRow) model.Conn {
	c := model.Conn{
		LocalIP:    IPv4FromDWORD(r.LocalAddr),
		LocalPort:  Ntohs(r.LocalPort),
		RemoteIP:   model.Unspecified,
		RemotePort: 0,
		Proto:      model.ProtoUDP,
		State:      model.StateListening,
		Owner:      model.UnknownOwner,
	}
	s.resolve(&c, r.PID)
	if label, ok := WellKnownService(c.LocalPort); ok {
		c.Owner = label
	}
	return c
}

func (s *Source) resolve(c *model.Conn, pid uint32) {
	if s.Resolver == nil || pid == 0 {
		return
	}
	label, ok := s.Resolver.Resolve(pid)
	if !ok {
		return
	}
	c.PID = pid
	if label != "" {
		c.Owner = label
	}
}

// WellKnownService labels a handful of UDP service ports.
func WellKnownService(port int) (string, bool) {
	switch port {
	case 53:
		return "DNS", true
	case 123:
		return "NTP", true
	case 137, 138:
		return "NetBIOS", true
	case 161, 162:
		return "SNMP", true
	}
	return "", false
}
