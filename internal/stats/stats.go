package stats

import (
	"github.com/pratik-anurag/netmon/internal/filter"
	"github.com/pratik-anurag/netmon/internal/model"
)

// Summary holds the counts shown in the statistics view.
type Summary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Listening int `json:"listening"`
	Local     int `json:"local"`
	Internet  int `json:"internet"`
	TCP       int `json:"tcp"`
	UDP       int `json:"udp"`
}

// Compute counts conns in a single pass. Active and Listening are exclusive
// states; every record is exactly one of Local/Internet and one of TCP/UDP.
func Compute(conns []model.Conn) Summary {
	s := Summary{Total: len(conns)}
	for _, c := range conns {
		switch c.State {
		case model.StateEstablished:
			s.Active++
		case model.StateListening:
			s.Listening++
		}

		if filter.IsLoopback(c.LocalIP) {
			s.Local++
		} else {
			s.Internet++
		}

		switch c.Proto {
		case model.ProtoTCP:
			s.TCP++
		case model.ProtoUDP:
			s.UDP++
		}
	}
	return s
}

// Other is the number of records neither active nor listening.
func (s Summary) Other() int {
	return s.Total - s.Active - s.Listening
}
