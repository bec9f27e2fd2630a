package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StepStatus represents the current state of a step
type StepStatus int

const (
	StepPending StepStatus = iota
	StepRunning
	StepComplete
	StepFailed
	StepSkipped
)

// Step is a single step in a multi-step operation.
type Step struct {
	Number  int
	Name    string
	Status  StepStatus
	Message string // Optional note, e.g. "skipped by settings"
}

// Progress tracks a fixed list of steps.
type Progress struct {
	Steps []Step
}

// NewProgress creates a step list with the given names, all pending.
func NewProgress(names []string) *Progress {
	steps := make([]Step, len(names))
	for i, name := range names {
		steps[i] = Step{Number: i + 1, Name: name}
	}
	return &Progress{Steps: steps}
}

// UpdateStep sets a step's status and note. Out of range numbers are ignored.
func (p *Progress) UpdateStep(stepNumber int, status StepStatus, message string) bool {
	if stepNumber < 1 || stepNumber > len(p.Steps) {
		return false
	}
	p.Steps[stepNumber-1].Status = status
	p.Steps[stepNumber-1].Message = message
	return true
}

// Completed counts the steps that are complete or skipped.
func (p *Progress) Completed() int {
	n := 0
	for _, s := range p.Steps {
		if s.Status == StepComplete || s.Status == StepSkipped {
			n++
		}
	}
	return n
}

// Render returns every step line.
func (p *Progress) Render() string {
	lines := make([]string, len(p.Steps))
	for i, step := range p.Steps {
		lines[i] = p.RenderStep(step.Number)
	}
	return strings.Join(lines, "\n")
}

// RenderStep renders one step line, e.g. "  [2/6] Build CLI      ✓".
func (p *Progress) RenderStep(stepNumber int) string {
	if stepNumber < 1 || stepNumber > len(p.Steps) {
		return ""
	}
	step := p.Steps[stepNumber-1]

	var (
		marker string
		style  lipgloss.Style
	)
	switch step.Status {
	case StepComplete:
		marker, style = StepMarkerComplete, StepCompleteStyle
	case StepRunning:
		marker, style = StepMarkerRunning, StepRunningStyle
	case StepFailed:
		marker, style = FailureMarker, ErrorTitleStyle
	case StepSkipped:
		marker, style = StepMarkerSkipped, StepPendingStyle
	default:
		marker, style = StepMarkerPending, StepPendingStyle
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  [%d/%d] ", step.Number, len(p.Steps))
	b.WriteString(style.Render(step.Name))

	padding := 36 - lipgloss.Width(step.Name)
	if padding < 1 {
		padding = 1
	}
	b.WriteString(strings.Repeat(" ", padding))
	b.WriteString(style.Render(marker))

	if step.Message != "" {
		b.WriteString("  ")
		b.WriteString(StepNoteStyle.Render("(" + step.Message + ")"))
	}

	return b.String()
}

// String implements fmt.Stringer
func (p *Progress) String() string {
	return p.Render()
}

// StepCallback reports progress on a step.
type StepCallback func(stepNumber int, status StepStatus, message string)
