package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pratik-anurag/netmon/internal/filter"
)

const DefaultInterval = 5 * time.Second

var ErrBadInterval = errors.New("refresh time must be a whole number of seconds greater than zero")

// Session is the loop state between polls. Methods return an updated copy.
// A zero LastSnapshot means the next Due check succeeds.
type Session struct {
	Interval     time.Duration
	Filter       filter.Selector
	ShowStats    bool
	ShowHelp     bool
	LastSnapshot time.Time
}

func NewSession(interval time.Duration) Session {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return Session{Interval: interval}
}

// Due reports whether a new snapshot should be taken at now.
func (s Session) Due(now time.Time) bool {
	if s.LastSnapshot.IsZero() {
		return true
	}
	return now.Sub(s.LastSnapshot) >= s.Interval
}

func (s Session) Force() Session {
	s.LastSnapshot = time.Time{}
	return s
}

func (s Session) WithInterval(d time.Duration) Session {
	if d > 0 {
		s.Interval = d
	}
	return s
}

// Apply folds a view command into the session. SetInterval, ViewLog and
// Exit need input or output from the caller and leave the session unchanged.
func (s Session) Apply(c Command) Session {
	switch c {
	case NextFilter:
		s.Filter = s.Filter.Next()
		return s.Force()
	case ToggleStats:
		s.ShowStats = !s.ShowStats
		return s.Force()
	case ToggleHelp:
		s.ShowHelp = !s.ShowHelp
		return s.Force()
	case Refresh:
		return s.Force()
	}
	return s
}

// ParseInterval reads a refresh time typed by the user in whole seconds.
func ParseInterval(text string) (time.Duration, error) {
	text = strings.TrimSpace(text)
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadInterval, text)
	}
	return time.Duration(n) * time.Second, nil
}
