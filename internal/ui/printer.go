package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// HistoryEntry is one recorded install.
type HistoryEntry struct {
	Path        string
	Version     string
	InstalledAt time.Time
}

// Printer writes UI components to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to w.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the terminal width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Width returns the width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params []Param) {
	p.Println(NewHeader(title, command, params).SetWidth(p.width).Render())
	p.Newline()
}

// PrintResult prints a result box
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
}

// PrintHistory prints recorded installs, newest first as given.
func (p *Printer) PrintHistory(entries []HistoryEntry) {
	p.Println(RenderHistory(entries, p.width))
}

// RenderHistory renders recorded installs in a box.
func RenderHistory(entries []HistoryEntry, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	lines := []string{HeaderTitleStyle.Render("INSTALL HISTORY"), ""}
	if len(entries) == 0 {
		lines = append(lines, StepPendingStyle.PaddingLeft(2).Render("No installs recorded yet."))
	}
	for _, e := range entries {
		when := e.InstalledAt.Local().Format("2006-01-02 15:04")
		version := e.Version
		if version == "" {
			version = "unknown"
		}
		line := "  " + StepPendingStyle.Render(when) + "  " +
			ResultValueStyle.Render(e.Path) + "  " +
			StepNoteStyle.Render("("+version+")")
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}
