package ui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestHeaderRender(t *testing.T) {
	h := NewHeader("Install JDK Manager", "jdk-installer install", []Param{
		{Key: "Target", Value: "/usr/local/bin"},
		{Key: "Project root", Value: "/src/jdk"},
	}).SetWidth(80)

	out := h.Render()
	for _, want := range []string{"INSTALL JDK MANAGER", "jdk-installer install", "Target:", "/usr/local/bin", "Project root:"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Target:") > strings.Index(out, "Project root:") {
		t.Error("params should render in the given order")
	}
}

func TestHeaderWithoutParams(t *testing.T) {
	out := NewHeader("History", "jdk-installer history", nil).SetWidth(10).Render()
	if !strings.Contains(out, "HISTORY") {
		t.Errorf("header = %q", out)
	}
	if strings.Contains(out, ":") {
		t.Error("no param lines expected without params")
	}
}

func TestResultRender(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out := NewSuccessResult("Installation complete", "Installed to /opt/bin").
			SetWidth(90).
			AddDetail("Target", "/opt/bin").
			Render()
		for _, want := range []string{"SUCCESS", "Installation complete", "Installed to /opt/bin", "Target:"} {
			if !strings.Contains(out, want) {
				t.Errorf("success box missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("failure", func(t *testing.T) {
		out := NewFailureResult("Install failed", errors.New("permission denied"), []string{"Use sudo"}).
			SetWidth(90).
			Render()
		for _, want := range []string{"FAILED", "Error: permission denied", "Troubleshooting:", "• Use sudo"} {
			if !strings.Contains(out, want) {
				t.Errorf("failure box missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("warning ignores error and tips", func(t *testing.T) {
		r := NewWarningResult("Replace binary", "A jdk binary already exists").SetWidth(90)
		r.Troubleshooting = []string{"hidden tip"}
		out := r.Render()
		if !strings.Contains(out, "WARNING") || !strings.Contains(out, "already exists") {
			t.Errorf("warning box = %s", out)
		}
		if strings.Contains(out, "hidden tip") {
			t.Error("warning boxes should not show troubleshooting")
		}
	})
}

func TestProgress(t *testing.T) {
	p := NewProgress([]string{"Build CLI", "Copy executable", "Configure shell integration"})

	if len(p.Steps) != 3 || p.Steps[2].Number != 3 {
		t.Fatalf("steps = %+v", p.Steps)
	}
	if p.UpdateStep(0, StepComplete, "") || p.UpdateStep(4, StepComplete, "") {
		t.Error("out of range steps should be ignored")
	}

	p.UpdateStep(1, StepComplete, "")
	p.UpdateStep(2, StepFailed, "")
	p.UpdateStep(3, StepSkipped, "disabled")

	if p.Completed() != 2 {
		t.Errorf("Completed() = %d, want 2", p.Completed())
	}

	line := p.RenderStep(1)
	if !strings.Contains(line, "[1/3] Build CLI") || !strings.Contains(line, StepMarkerComplete) {
		t.Errorf("RenderStep(1) = %q", line)
	}
	if !strings.Contains(p.RenderStep(2), FailureMarker) {
		t.Errorf("RenderStep(2) = %q", p.RenderStep(2))
	}
	if !strings.Contains(p.RenderStep(3), "(disabled)") {
		t.Errorf("RenderStep(3) = %q", p.RenderStep(3))
	}
	if p.RenderStep(9) != "" {
		t.Error("RenderStep out of range should be empty")
	}
	if strings.Count(p.String(), "\n") != 2 {
		t.Errorf("Render() should have one line per step:\n%s", p.String())
	}
}

func newTestTask(buf *bytes.Buffer, tips func(error) []string) *Task {
	task := NewTask(TaskConfig{
		Title:        "Install JDK Manager",
		Command:      "jdk-installer install",
		Params:       []Param{{Key: "Target", Value: "/opt/bin"}},
		StepNames:    []string{"Build CLI", "Copy executable"},
		Output:       buf,
		Width:        90,
		Troubleshoot: tips,
	})
	tick := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	task.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}
	return task
}

func TestTaskRunSuccess(t *testing.T) {
	var buf bytes.Buffer
	task := newTestTask(&buf, nil)

	err := task.Run(context.Background(), func(ctx context.Context, onStep StepCallback) (Outcome, error) {
		onStep(1, StepRunning, "")
		onStep(1, StepComplete, "")
		onStep(2, StepRunning, "")
		onStep(2, StepComplete, "")
		return Outcome{Message: "JDK Manager CLI installed", Details: []Param{{Key: "Target", Value: "/opt/bin/jdk"}}}, nil
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"INSTALL JDK MANAGER", "[1/2] Build CLI", "[2/2] Copy executable", "Install JDK Manager complete", "JDK Manager CLI installed", "/opt/bin/jdk", "Duration:", "1s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "[1/2]") != 1 {
		t.Error("running steps should not be printed")
	}
	if task.Progress().Completed() != 2 {
		t.Errorf("Completed() = %d", task.Progress().Completed())
	}
}

func TestTaskRunFailure(t *testing.T) {
	var buf bytes.Buffer
	boom := errors.New("build failed")
	task := newTestTask(&buf, func(err error) []string {
		if errors.Is(err, boom) {
			return []string{"Check the Go toolchain"}
		}
		return nil
	})

	err := task.Run(context.Background(), func(ctx context.Context, onStep StepCallback) (Outcome, error) {
		onStep(1, StepFailed, "")
		return Outcome{}, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v, want %v", err, boom)
	}

	out := buf.String()
	for _, want := range []string{"Install JDK Manager failed", "Error: build failed", "Check the Go toolchain", FailureMarker} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Duration:") {
		t.Error("failure box should not carry a duration")
	}
}

func TestRenderHistory(t *testing.T) {
	empty := RenderHistory(nil, 80)
	if !strings.Contains(empty, "No installs recorded yet.") {
		t.Errorf("empty history = %s", empty)
	}

	out := RenderHistory([]HistoryEntry{
		{Path: "/usr/local/bin/jdk", Version: "v1.2.0", InstalledAt: time.Now()},
		{Path: "/opt/bin/jdk", InstalledAt: time.Now()},
	}, 90)
	for _, want := range []string{"INSTALL HISTORY", "/usr/local/bin/jdk", "(v1.2.0)", "/opt/bin/jdk", "(unknown)"} {
		if !strings.Contains(out, want) {
			t.Errorf("history missing %q:\n%s", want, out)
		}
	}
}

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(80)

	if p.Width() != 80 {
		t.Errorf("Width() = %d", p.Width())
	}

	p.PrintHeader("History", "jdk-installer history", nil)
	p.PrintHistory(nil)
	p.PrintResult(NewSuccessResult("Done", ""))

	out := buf.String()
	for _, want := range []string{"HISTORY", "No installs recorded yet.", "SUCCESS"} {
		if !strings.Contains(out, want) {
			t.Errorf("printer output missing %q:\n%s", want, out)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{" yes ", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"I AGREE\n", false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		got := Confirm(strings.NewReader(tt.input), &out, "Replace existing binary", []string{"/usr/local/bin/jdk exists"}, "Continue?")
		if got != tt.want {
			t.Errorf("Confirm(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !strings.Contains(out.String(), "Continue? [y/N]") {
			t.Errorf("prompt missing from output:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "/usr/local/bin/jdk exists") {
			t.Errorf("warning missing from output:\n%s", out.String())
		}
	}
}

func TestClampWidth(t *testing.T) {
	if clampWidth(10) != MinTerminalWidth || clampWidth(500) != MaxContentWidth || clampWidth(80) != 80 {
		t.Error("clampWidth() out of range")
	}
}
