package connlog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/pratik-anurag/netmon/internal/model"
)

// DefaultPath is the log file used when none is configured.
const DefaultPath = "network_monitoring_log.txt"

const separator = "--------------------------------"

// ErrNoLogs is returned by Read when nothing has been logged yet.
var ErrNoLogs = errors.New("no logs found")

// File is an append-only text log of snapshots. It holds no open handle:
// each Append opens, writes and closes the file.
type File struct {
	Path string
}

func New(path string) *File {
	if strings.TrimSpace(path) == "" {
		path = DefaultPath
	}
	return &File{Path: path}
}

// Append writes one snapshot entry.
func (f *File) Append(at time.Time, conns []model.Conn) error {
	fh, err := os.OpenFile(f.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	if _, err := fh.WriteString(Format(at, conns)); err != nil {
		fh.Close()
		return fmt.Errorf("write log file: %w", err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("close log file: %w", err)
	}
	return nil
}

// Read returns the whole log.
func (f *File) Read() (string, error) {
	b, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoLogs
	}
	if err != nil {
		return "", fmt.Errorf("read log file: %w", err)
	}
	return string(b), nil
}

// Format renders a snapshot entry:
//
//	[Mon Jan  2 15:04:05 2006] - 2 connections
//	127.0.0.1:5000 -> 0.0.0.0:0 [TCP] LISTENING (Unknown)
//	0.0.0.0:53 -> *:0 [UDP] LISTENING (DNS)
//	--------------------------------
func Format(at time.Time, conns []model.Conn) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] - %d connections\n", at.Format(time.ANSIC), len(conns))
	for _, c := range conns {
		fmt.Fprintf(&b, "%s:%d -> %s:%d [%s] %s (%s)\n",
			c.LocalIP, c.LocalPort,
			c.RemoteIP, c.RemotePort,
			c.Proto, c.State, c.Owner,
		)
	}
	b.WriteString(separator + "\n")
	return b.String()
}
