// Package owner turns process ids into the program labels shown next to a
// connection. Resolution is opt-in; the default resolver knows nothing.
package owner

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// None never resolves anything, so every record keeps the Unknown label.
type None struct{}

func (None) Resolve(uint32) (string, bool) {
	return "", false
}

// PIDLabel labels by pid alone: "System" for the idle and system processes,
// "PID: n" otherwise.
type PIDLabel struct{}

func (PIDLabel) Resolve(pid uint32) (string, bool) {
	if pid == 0 || pid == 4 {
		return "System", true
	}
	return fmt.Sprintf("PID: %d", pid), true
}

// Process looks the process name up in the OS process table.
type Process struct {
	// lookup is swapped out in tests.
	lookup func(pid int32) (string, error)
}

func NewProcess() *Process {
	return &Process{lookup: processName}
}

func (p *Process) Resolve(pid uint32) (string, bool) {
	if pid == 0 {
		return "", false
	}
	lookup := p.lookup
	if lookup == nil {
		lookup = processName
	}
	name, err := lookup(int32(pid))
	if err != nil || strings.TrimSpace(name) == "" {
		return PIDLabel{}.Resolve(pid)
	}
	return name, true
}

func processName(pid int32) (string, error) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return "", err
	}
	return proc.Name()
}

// ByName returns the resolver configured under name: none, pid or process.
func ByName(name string) (Resolver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None{}, nil
	case "pid":
		return PIDLabel{}, nil
	case "process":
		return NewProcess(), nil
	default:
		return nil, fmt.Errorf("unknown owner resolver %q (none|pid|process)", name)
	}
}

// Resolver is satisfied by every resolver in this package.
type Resolver interface {
	Resolve(pid uint32) (string, bool)
}
