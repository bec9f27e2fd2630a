package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// TaskConfig describes a command that runs a fixed list of steps.
type TaskConfig struct {
	Title     string  // e.g., "Install JDK Manager"
	Command   string  // e.g., "jdk-installer install"
	Params    []Param // Shown in the header
	StepNames []string
	Output    io.Writer // Default: os.Stdout
	Width     int       // Default: terminal width

	// Troubleshoot returns tips for a failure. Optional.
	Troubleshoot func(error) []string
}

// Task prints a header, one line per finished step, then a result box.
type Task struct {
	config   TaskConfig
	header   *Header
	progress *Progress
	out      io.Writer
	width    int
	now      func() time.Time
}

// Outcome is what a successful operation reports.
type Outcome struct {
	Message string
	Details []Param
}

// Operation is the work a Task runs. It reports progress through onStep.
type Operation func(ctx context.Context, onStep StepCallback) (Outcome, error)

// NewTask creates a task from config.
func NewTask(config TaskConfig) *Task {
	if config.Output == nil {
		config.Output = os.Stdout
	}
	width := config.Width
	if width == 0 {
		width = GetTerminalWidth()
	}

	return &Task{
		config:   config,
		header:   NewHeader(config.Title, config.Command, config.Params).SetWidth(width),
		progress: NewProgress(config.StepNames),
		out:      config.Output,
		width:    width,
		now:      time.Now,
	}
}

// Progress returns the task's step list.
func (t *Task) Progress() *Progress {
	return t.progress
}

// Run prints the header, executes op and prints the result. It returns op's error.
func (t *Task) Run(ctx context.Context, op Operation) error {
	start := t.now()

	_, _ = fmt.Fprintln(t.out, t.header.Render())
	_, _ = fmt.Fprintln(t.out)

	outcome, err := op(ctx, t.onStep)
	duration := t.now().Sub(start).Round(time.Millisecond)

	_, _ = fmt.Fprintln(t.out)
	if err != nil {
		var tips []string
		if t.config.Troubleshoot != nil {
			tips = t.config.Troubleshoot(err)
		}
		result := NewFailureResult(t.config.Title+" failed", err, tips).SetWidth(t.width)
		_, _ = fmt.Fprintln(t.out, result.Render())
		return err
	}

	result := NewSuccessResult(t.config.Title+" complete", outcome.Message).SetWidth(t.width)
	result.Details = append(result.Details, outcome.Details...)
	result.AddDetail("Duration", duration.String())
	_, _ = fmt.Fprintln(t.out, result.Render())
	return nil
}

// onStep records progress and prints settled steps. Running steps are not
// printed so the output stays readable when redirected to a file.
func (t *Task) onStep(stepNumber int, status StepStatus, message string) {
	if !t.progress.UpdateStep(stepNumber, status, message) {
		return
	}
	if status == StepRunning || status == StepPending {
		return
	}
	_, _ = fmt.Fprintln(t.out, t.progress.RenderStep(stepNumber))
}
