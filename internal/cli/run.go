package cli

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pratik-anurag/netmon/internal/config"
	"github.com/pratik-anurag/netmon/internal/connlog"
	"github.com/pratik-anurag/netmon/internal/monitor"
	"github.com/pratik-anurag/netmon/internal/owner"
	"github.com/pratik-anurag/netmon/internal/platform"
	"github.com/pratik-anurag/netmon/internal/sockets"
	"github.com/pratik-anurag/netmon/internal/tui"
)

// Run starts the monitor and returns the process exit code.
func Run() int {
	return run(os.Stdout, os.Stderr, tui.Run)
}

func run(stdout, stderr io.Writer, start func(tui.Model) error) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	closeLog, err := setupDebugLog(cfg.DebugLog)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	defer closeLog()

	cleanup, err := platform.Startup()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	defer cleanup()

	resolver, err := owner.ByName(cfg.OwnerResolver)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	logs := connlog.New(cfg.LogFile)
	ctrl := monitor.Controller{
		Source: sockets.NewSource(cfg.MaxConnections, resolver),
		Log:    logs,
	}
	log.Printf("starting: interval=%s log=%s max=%d owner=%s",
		cfg.Interval(), logs.Path, cfg.MaxConnections, cfg.OwnerResolver)

	m := tui.New(ctrl, logs, monitor.NewSession(cfg.Interval()), renderOptions(cfg))
	if err := start(m); err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	fmt.Fprintln(stdout, "\nExiting program. Goodbye!")
	return 0
}

func setupDebugLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "netmon")
	if err != nil {
		return nil, fmt.Errorf("could not open debug log: %w", err)
	}
	return func() { _ = f.Close() }, nil
}
