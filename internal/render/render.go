package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/pratik-anurag/netmon/internal/filter"
	"github.com/pratik-anurag/netmon/internal/model"
	"github.com/pratik-anurag/netmon/internal/monitor"
	"github.com/pratik-anurag/netmon/internal/stats"
)

type Options struct {
	Color bool
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	statsStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	columnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	udpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	listenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	otherStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
)

const (
	headerRule = "======================================================================"
	tableRule  = "========================================================================================="
	columnRule = "-----------------------------------------------------------------------------------------"
	rowFormat  = "%-15s | %-6s | %-15s | %-6s | %-6s | %-12s | %-20s"
)

// Screen renders a full refresh: header, table, then the optional
// statistics and help sections followed by any problems.
func Screen(f monitor.Frame, opt Options) string {
	var b strings.Builder
	b.WriteString(Header(opt))
	b.WriteString(Problems(f.Problems, opt))
	b.WriteString(Table(f.At, f.All, f.Visible, f.Filter, opt))
	if f.Stats != nil {
		b.WriteString(Stats(*f.Stats, opt))
	}
	if f.ShowHelp {
		b.WriteString(Help(opt))
	}
	return b.String()
}

func Header(opt Options) string {
	var b strings.Builder
	b.WriteString(paint(titleStyle, headerRule, opt) + "\n")
	b.WriteString(paint(titleStyle, "                  NETWORK MONITORING TOOL", opt) + "\n")
	b.WriteString(paint(titleStyle, headerRule, opt) + "\n")
	return b.String()
}

// Table lists the visible records. The footer counts against the whole
// snapshot so a narrowing selector shows how much is hidden.
func Table(at time.Time, all, visible []model.Conn, sel filter.Selector, opt Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Network Connections as of %s\n", at.Format(time.ANSIC))
	fmt.Fprintf(&b, "Filter: %s\n", paint(headingStyle, sel.String(), opt))
	b.WriteString(tableRule + "\n")
	b.WriteString(paint(columnStyle, fmt.Sprintf(rowFormat,
		"Local Address", "Port", "Remote Address", "Port", "Type", "State", "Program"), opt) + "\n")
	b.WriteString(columnRule + "\n")

	for _, c := range visible {
		row := fmt.Sprintf(rowFormat,
			c.LocalIP,
			fmt.Sprint(c.LocalPort),
			c.RemoteIP,
			fmt.Sprint(c.RemotePort),
			c.Proto,
			c.State,
			dash(c.Owner),
		)
		b.WriteString(paint(rowStyle(c), row, opt) + "\n")
	}

	b.WriteString(tableRule + "\n")
	fmt.Fprintf(&b, "Showing %d of %d connections\n\n", len(visible), len(all))
	return b.String()
}

func Stats(s stats.Summary, opt Options) string {
	var b strings.Builder
	b.WriteString("\n" + paint(statsStyle, "Connection Statistics:", opt) + "\n")
	fmt.Fprintf(&b, "  Total Connections: %d\n", s.Total)
	fmt.Fprintf(&b, "  Active: %d | Listening: %d\n", s.Active, s.Listening)
	fmt.Fprintf(&b, "  Local: %d | Internet: %d\n", s.Local, s.Internet)
	fmt.Fprintf(&b, "  TCP: %d | UDP: %d\n", s.TCP, s.UDP)
	return b.String()
}

func Help(opt Options) string {
	var b strings.Builder
	b.WriteString("\n" + paint(headingStyle, "How to use this program:", opt) + "\n")
	b.WriteString("  [1] Change how often the program updates (in seconds)\n")
	b.WriteString("  [2] View saved connection logs\n")
	b.WriteString("  [3] Exit the program\n")
	b.WriteString("  [F] Change what connections to show\n")
	b.WriteString("  [S] Show/hide connection statistics\n")
	b.WriteString("  [H] Show/hide this help screen\n")
	b.WriteString("  [R] Refresh the screen now\n\n")

	b.WriteString(paint(headingStyle, "Types of connections you can filter:", opt) + "\n")
	for _, s := range filter.Selectors() {
		fmt.Fprintf(&b, "  %s: %s\n", s, s.Describe())
	}
	return b.String()
}

func Menu(sel filter.Selector) string {
	return fmt.Sprintf("Menu: [1] Update Time | [2] View Logs | [3] Exit | [F] Filter: %s | [S] Statistics | [H] Help | [R] Refresh\n", sel)
}

func Problems(errs []error, opt Options) string {
	var b strings.Builder
	for _, err := range errs {
		if err == nil {
			continue
		}
		b.WriteString(paint(errorStyle, "Error: "+err.Error(), opt) + "\n")
	}
	return b.String()
}

// LogView shows the persisted log, or a hint when nothing was logged yet.
func LogView(content string) string {
	var b strings.Builder
	b.WriteString("====== Network Connection Logs ======\n\n")
	if strings.TrimSpace(content) == "" {
		b.WriteString("No logs found! Run the program for a while to make some logs!\n")
	} else {
		b.WriteString(content)
	}
	return b.String()
}

func rowStyle(c model.Conn) lipgloss.Style {
	switch {
	case c.Proto == model.ProtoUDP:
		return udpStyle
	case c.State == model.StateEstablished:
		return activeStyle
	case c.State == model.StateListening:
		return listenStyle
	default:
		return otherStyle
	}
}

func paint(style lipgloss.Style, s string, opt Options) string {
	if !opt.Color {
		return s
	}
	return style.Render(s)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
