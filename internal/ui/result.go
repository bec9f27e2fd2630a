package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ResultType selects the color and banner of a result box.
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
	ResultWarning
)

// Result is the box printed once an install, or the confirmation before it,
// has an outcome. Error and Troubleshooting are shown for failures only.
type Result struct {
	Type            ResultType
	Title           string
	Message         string
	Details         []Param
	Error           error
	Troubleshooting []string
	Width           int
}

// NewSuccessResult reports a finished install.
func NewSuccessResult(title, message string) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Message: message,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult reports a failed install with tips for its stage.
func NewFailureResult(title string, err error, troubleshooting []string) *Result {
	return &Result{
		Type:            ResultFailure,
		Title:           title,
		Error:           err,
		Troubleshooting: troubleshooting,
		Width:           GetTerminalWidth(),
	}
}

// NewWarningResult is used for the replace-binary confirmation.
func NewWarningResult(title, message string) *Result {
	return &Result{
		Type:    ResultWarning,
		Title:   title,
		Message: message,
		Width:   GetTerminalWidth(),
	}
}

func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// AddDetail appends a detail line.
func (r *Result) AddDetail(key, value string) *Result {
	r.Details = append(r.Details, Param{Key: key, Value: value})
	return r
}

// Render draws the box. Widths below MinTerminalWidth are raised to it.
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	var (
		color lipgloss.Color
		title string
	)
	switch r.Type {
	case ResultFailure:
		color = ErrorColor
		title = ErrorTitleStyle.Render(fmt.Sprintf("   %s  FAILED  ─  %s", FailureMarker, r.Title))
	case ResultWarning:
		color = WarningColor
		title = WarningTitleStyle.Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, r.Title))
	default:
		color = SuccessColor
		title = SuccessTitleStyle.Render(fmt.Sprintf("   %s  SUCCESS  ─  %s", SuccessMarker, r.Title))
	}

	lines := []string{"", title, ""}

	if r.Message != "" {
		lines = append(lines, MessageStyle.Width(width-8).Render(r.Message), "")
	}

	if r.Type == ResultFailure && r.Error != nil {
		errText := ErrorMessageStyle.Width(width - 8).Render("Error: " + r.Error.Error())
		lines = append(lines, lipgloss.NewStyle().PaddingLeft(3).Render(errText), "")
	}

	if len(r.Details) > 0 {
		for _, d := range r.Details {
			key := ResultKeyStyle.Render(fmt.Sprintf("   %s:", d.Key))
			lines = append(lines, key+" "+ResultValueStyle.Render(d.Value))
		}
		lines = append(lines, "")
	}

	if r.Type == ResultFailure && len(r.Troubleshooting) > 0 {
		lines = append(lines, r.renderTroubleshootingBox(width), "")
	}

	return boxStyle(color, width).Render(strings.Join(lines, "\n"))
}

func (r *Result) renderTroubleshootingBox(width int) string {
	lines := []string{TroubleshootingTitleStyle.Render("Troubleshooting:"), ""}
	for _, tip := range r.Troubleshooting {
		lines = append(lines, TroubleshootingItemStyle.Render("  • "+tip))
	}

	innerWidth := width - 12
	if innerWidth < 40 {
		innerWidth = 40
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(innerWidth).
		Padding(0, 1).
		MarginLeft(3).
		Render(strings.Join(lines, "\n"))
}
