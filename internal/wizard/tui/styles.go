package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jdk-manager/installer/internal/version"
)

const (
	AppName  = "JDK MANAGER INSTALLER"
	Subtitle = "Install the JDK Manager CLI tool on your system."
)

// The form column never shrinks below MinTerminalWidth-8 or grows past
// MaxFormWidth.
const (
	MinTerminalWidth = 64
	MaxFormWidth     = 90
)

var (
	PrimaryColor   = lipgloss.Color("#7D56F4")
	SecondaryColor = lipgloss.Color("#43BF6D")
	WarningColor   = lipgloss.Color("#FFA500")
	ErrorColor     = lipgloss.Color("#FF5555")
	TextColor      = lipgloss.Color("#FFFFFF")
	SubtleColor    = lipgloss.Color("#626262")
	ButtonText     = lipgloss.Color("#1A1A1A")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Bold(true)

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// ButtonStyle is the install control when it has focus
	ButtonStyle = lipgloss.NewStyle().
			Foreground(ButtonText).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 2)

	// IdleButtonStyle is the install control while the path input has focus
	IdleButtonStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Border(lipgloss.RoundedBorder(), false, true).
			BorderForeground(PrimaryColor).
			Padding(0, 1)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(SubtleColor).
				Padding(0, 2)

	SuccessBoxStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SecondaryColor).
			Padding(0, 1)

	ErrorBoxStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Padding(0, 1)

	ProgressStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	NoteStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)
)

// RenderTitle renders the form title.
func RenderTitle(text string) string {
	return TitleStyle.Render(text)
}

// RenderSubtitle renders the line under the form title.
func RenderSubtitle(text string) string {
	return SubtitleStyle.Render(text)
}

// headerLine shows the installer name and the build it was made from.
func headerLine() string {
	name := lipgloss.NewStyle().Foreground(TextColor).Bold(true).Render(AppName)
	build := lipgloss.NewStyle().Foreground(SubtleColor).Render("v" + version.Version)
	return lipgloss.JoinHorizontal(lipgloss.Top, name, " ", build)
}

// RenderApplicationContainer frames the form between the installer header and
// the key help. Until the first tea.WindowSizeMsg the frame is drawn at
// MinTerminalWidth and does not fill the height.
func RenderApplicationContainer(content, helpText string, terminalWidth, terminalHeight int) string {
	width := terminalWidth
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(PrimaryColor).
		Width(width-4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(PrimaryColor).
		Width(width-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(width-4).
		Padding(1, 2)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(headerLine()),
		contentStyle.Render(content),
		footerStyle.Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(helpText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		AlignVertical(lipgloss.Top)

	if terminalHeight <= 2 {
		return borderStyle.Render(inner)
	}

	bordered := borderStyle.Height(terminalHeight - 2).Render(inner)
	return lipgloss.Place(width, terminalHeight, lipgloss.Left, lipgloss.Top, bordered)
}

// FormWidth is the width of the form column for a terminal width.
func FormWidth(terminalWidth int) int {
	w := terminalWidth - 8
	if w < MinTerminalWidth-8 {
		w = MinTerminalWidth - 8
	}
	if w > MaxFormWidth {
		w = MaxFormWidth
	}
	return w
}
