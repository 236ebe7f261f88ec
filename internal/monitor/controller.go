package monitor

import (
	"errors"
	"log"
	"time"

	"github.com/pratik-anurag/netmon/internal/filter"
	"github.com/pratik-anurag/netmon/internal/model"
	"github.com/pratik-anurag/netmon/internal/stats"
)

// Enumerator produces one connection snapshot. It may return records
// together with an error when only part of the tables could be read.
type Enumerator interface {
	Enumerate() ([]model.Conn, error)
}

// LogSink persists every full snapshot.
type LogSink interface {
	Append(at time.Time, conns []model.Conn) error
}

// Frame is everything needed to draw one refresh.
type Frame struct {
	At       time.Time
	Filter   filter.Selector
	All      []model.Conn
	Visible  []model.Conn
	Stats    *stats.Summary
	ShowHelp bool
	Problems []error
}

type Controller struct {
	Source Enumerator
	Log    LogSink
}

// Poll takes a snapshot, records it and returns the frame to display along
// with the session stamped at now. Failures end up in Frame.Problems.
func (c Controller) Poll(s Session, now time.Time) (Session, Frame) {
	f := Frame{At: now, Filter: s.Filter, ShowHelp: s.ShowHelp}

	if c.Source == nil {
		f.Problems = append(f.Problems, errors.New("no connection source configured"))
	} else {
		conns, err := c.Source.Enumerate()
		if err != nil {
			log.Printf("enumerate: %v", err)
			f.Problems = append(f.Problems, unjoin(err)...)
		}
		f.All = conns
	}

	f.Visible = filter.Apply(f.All, s.Filter)
	if s.ShowStats {
		sum := stats.Compute(f.All)
		f.Stats = &sum
	}

	if c.Log != nil {
		if err := c.Log.Append(now, f.All); err != nil {
			log.Printf("log append: %v", err)
			f.Problems = append(f.Problems, err)
		}
	}

	s.LastSnapshot = now
	return s, f
}

func unjoin(err error) []error {
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
