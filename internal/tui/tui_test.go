package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pratik-anurag/netmon/internal/connlog"
	"github.com/pratik-anurag/netmon/internal/filter"
	"github.com/pratik-anurag/netmon/internal/model"
	"github.com/pratik-anurag/netmon/internal/monitor"
	"github.com/pratik-anurag/netmon/internal/render"
)

type countingSource struct {
	calls int
}

func (c *countingSource) Enumerate() ([]model.Conn, error) {
	c.calls++
	return []model.Conn{
		{LocalIP: "127.0.0.1", LocalPort: 5000, RemoteIP: "0.0.0.0", Proto: model.ProtoTCP, State: model.StateListening, Owner: model.UnknownOwner},
	}, nil
}

type staticLog struct {
	content string
	err     error
}

func (s staticLog) Read() (string, error) { return s.content, s.err }

var t0 = time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)

func newModel(src *countingSource, logs LogReader) Model {
	return New(monitor.Controller{Source: src}, logs, monitor.NewSession(5*time.Second), render.Options{})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out, cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestFirstTickPollsThenWaitsForInterval(t *testing.T) {
	src := &countingSource{}
	m := newModel(src, nil)

	m, cmd := send(t, m, tickMsg(t0))
	if src.calls != 1 || cmd == nil {
		t.Fatalf("expected one poll and a new tick, calls=%d", src.calls)
	}
	if !strings.Contains(m.View(), "Showing 1 of 1 connections") {
		t.Fatalf("unexpected view:\n%s", m.View())
	}

	m, _ = send(t, m, tickMsg(t0.Add(PollEvery)))
	if src.calls != 1 {
		t.Fatalf("polled before the interval elapsed")
	}
	_, _ = send(t, m, tickMsg(t0.Add(5*time.Second)))
	if src.calls != 2 {
		t.Fatalf("expected a poll after the interval, calls=%d", src.calls)
	}
}

func TestRefreshKeyPollsOnNextTick(t *testing.T) {
	src := &countingSource{}
	m := newModel(src, nil)
	m, _ = send(t, m, tickMsg(t0))

	for _, k := range []string{"r", "C"} {
		m, _ = send(t, m, key(k))
		m, _ = send(t, m, tickMsg(t0.Add(PollEvery)))
	}
	if src.calls != 3 {
		t.Fatalf("expected 3 polls, got %d", src.calls)
	}
}

func TestFilterKeyAdvancesSelector(t *testing.T) {
	m := newModel(&countingSource{}, nil)
	m, _ = send(t, m, key("F"))
	if m.Session().Filter != filter.Local {
		t.Fatalf("expected LOCAL, got %s", m.Session().Filter)
	}
	if !strings.Contains(m.View(), "[F] Filter: LOCAL") {
		t.Fatalf("menu should show the new selector:\n%s", m.View())
	}
}

func TestExitKeys(t *testing.T) {
	m := newModel(&countingSource{}, nil)
	if _, cmd := send(t, m, key("3")); !isQuit(cmd) {
		t.Fatalf("3 should quit")
	}
	if _, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlC}); !isQuit(cmd) {
		t.Fatalf("ctrl+c should quit")
	}
	if _, cmd := send(t, m, key("q")); isQuit(cmd) {
		t.Fatalf("q is not an exit key")
	}
}

func TestSetInterval(t *testing.T) {
	m := newModel(&countingSource{}, nil)
	m, _ = send(t, m, key("1"))
	if m.mode != modeInterval {
		t.Fatalf("expected interval prompt")
	}
	m, _ = send(t, m, key("9"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeNormal || m.Session().Interval != 9*time.Second {
		t.Fatalf("expected 9s interval, got %s", m.Session().Interval)
	}
	if !strings.Contains(m.View(), "Refresh time set to 9 seconds.") {
		t.Fatalf("missing confirmation:\n%s", m.View())
	}
}

func TestSetIntervalRejectsBadInput(t *testing.T) {
	m := newModel(&countingSource{}, nil)
	m, _ = send(t, m, key("1"))
	m, _ = send(t, m, key("x"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Session().Interval != 5*time.Second {
		t.Fatalf("interval should be kept, got %s", m.Session().Interval)
	}
	if !strings.Contains(m.View(), "Keeping 5 seconds.") {
		t.Fatalf("missing notice:\n%s", m.View())
	}
}

func TestLogViewerPausesPollingAndForcesRefreshOnLeave(t *testing.T) {
	src := &countingSource{}
	m := newModel(src, staticLog{content: "[Tue Mar  5 09:07:03 2024] - 0 connections\n"})
	m, _ = send(t, m, tickMsg(t0))

	m, _ = send(t, m, key("2"))
	if m.mode != modeLog || !strings.Contains(m.View(), "- 0 connections") {
		t.Fatalf("expected log viewer:\n%s", m.View())
	}
	m, _ = send(t, m, tickMsg(t0.Add(time.Minute)))
	if src.calls != 1 {
		t.Fatalf("ticks must not poll while the log is open")
	}

	m, _ = send(t, m, key("x"))
	if m.mode != modeNormal || !m.Session().LastSnapshot.IsZero() {
		t.Fatalf("leaving the viewer should force a refresh")
	}
	_, _ = send(t, m, tickMsg(t0.Add(time.Minute+PollEvery)))
	if src.calls != 2 {
		t.Fatalf("expected a poll after leaving, calls=%d", src.calls)
	}
}

func TestLogViewerWithoutLogs(t *testing.T) {
	m := newModel(&countingSource{}, staticLog{err: connlog.ErrNoLogs})
	m, _ = send(t, m, key("2"))
	if !strings.Contains(m.View(), "No logs found!") {
		t.Fatalf("expected empty hint:\n%s", m.View())
	}

	m = newModel(&countingSource{}, staticLog{err: errors.New("permission denied")})
	m, _ = send(t, m, key("2"))
	if !strings.Contains(m.View(), "Error: permission denied") {
		t.Fatalf("expected read error:\n%s", m.View())
	}
}
