package tui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pratik-anurag/netmon/internal/connlog"
	"github.com/pratik-anurag/netmon/internal/monitor"
	"github.com/pratik-anurag/netmon/internal/render"
)

// PollEvery is how often pending keystrokes and the refresh deadline are checked.
const PollEvery = 100 * time.Millisecond

var noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

type tickMsg time.Time

type mode int

const (
	modeNormal mode = iota
	modeInterval
	modeLog
)

// LogReader returns the persisted log text.
type LogReader interface {
	Read() (string, error)
}

type Model struct {
	ctrl    monitor.Controller
	logs    LogReader
	opt     render.Options
	session monitor.Session

	mode     mode
	screen   string
	notice   string
	input    textinput.Model
	viewport viewport.Model
}

func New(ctrl monitor.Controller, logs LogReader, session monitor.Session, opt render.Options) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "seconds"
	ti.CharLimit = 6
	ti.Width = 10

	return Model{
		ctrl:     ctrl,
		logs:     logs,
		opt:      opt,
		session:  session.Force(),
		input:    ti,
		viewport: viewport.New(100, 20),
	}
}

func (m Model) Session() monitor.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(PollEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.mode != modeLog && m.session.Due(time.Time(msg)) {
			m.poll(time.Time(msg))
		}
		return m, tick()
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-3, 1)
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeInterval:
			return m.updateInterval(msg)
		case modeLog:
			return m.updateLog(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := monitor.ParseKey(msg.String())
	switch cmd {
	case monitor.None:
		return m, nil
	case monitor.Exit:
		return m, tea.Quit
	case monitor.SetInterval:
		m.mode = modeInterval
		m.notice = ""
		m.input.Reset()
		return m, m.input.Focus()
	case monitor.ViewLog:
		m.mode = modeLog
		m.viewport.SetContent(render.LogView(m.readLog()))
		m.viewport.GotoTop()
		return m, nil
	}
	log.Printf("command %s", cmd)
	m.session = m.session.Apply(cmd)
	return m, nil
}

func (m Model) updateInterval(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		d, err := monitor.ParseInterval(m.input.Value())
		if err != nil {
			m.notice = fmt.Sprintf("Invalid refresh time. Keeping %d seconds.", int(m.session.Interval/time.Second))
		} else {
			m.session = m.session.WithInterval(d)
			m.notice = fmt.Sprintf("Refresh time set to %d seconds.", int(d/time.Second))
		}
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	case "esc":
		m.mode = modeNormal
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateLog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "pgup", "pgdown", "j", "k":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.mode = modeNormal
	m.session = m.session.Force()
	return m, nil
}

func (m *Model) poll(now time.Time) {
	s, f := m.ctrl.Poll(m.session, now)
	m.session = s
	m.screen = render.Screen(f, m.opt)
}

func (m Model) readLog() string {
	if m.logs == nil {
		return ""
	}
	content, err := m.logs.Read()
	if errors.Is(err, connlog.ErrNoLogs) {
		return ""
	}
	if err != nil {
		return render.Problems([]error{err}, m.opt)
	}
	return content
}

func (m Model) View() string {
	if m.mode == modeLog {
		return m.viewport.View() + "\n\nPress any key to go back to main screen..."
	}

	var b strings.Builder
	b.WriteString(m.screen)
	if m.notice != "" {
		notice := m.notice
		if m.opt.Color {
			notice = noticeStyle.Render(notice)
		}
		b.WriteString(notice + "\n")
	}
	b.WriteString(render.Menu(m.session.Filter))
	if m.mode == modeInterval {
		b.WriteString("\nEnter new refresh time in seconds: " + m.input.View())
	}
	return b.String()
}

// Run drives m until the user exits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
