package monitor

import "strings"

type Command int

const (
	None Command = iota
	SetInterval
	ViewLog
	Exit
	NextFilter
	ToggleStats
	ToggleHelp
	Refresh
)

// ParseKey maps a single keystroke to a command. Letters are case-insensitive;
// unknown keys yield None.
func ParseKey(key string) Command {
	switch strings.ToLower(key) {
	case "1":
		return SetInterval
	case "2":
		return ViewLog
	case "3":
		return Exit
	case "f":
		return NextFilter
	case "s":
		return ToggleStats
	case "h":
		return ToggleHelp
	case "r", "c":
		return Refresh
	default:
		return None
	}
}

func (c Command) String() string {
	switch c {
	case SetInterval:
		return "set-interval"
	case ViewLog:
		return "view-log"
	case Exit:
		return "exit"
	case NextFilter:
		return "next-filter"
	case ToggleStats:
		return "toggle-stats"
	case ToggleHelp:
		return "toggle-help"
	case Refresh:
		return "refresh"
	default:
		return "none"
	}
}
