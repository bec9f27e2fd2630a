package form

import (
	"context"

	"github.com/jdk-manager/installer/internal/hostenv"
)

// Text shown by the installer form.
const (
	UnixDefaultPath    = "/usr/local/bin"
	WindowsPlaceholder = `%USERPROFILE%\bin`
	StartingMessage    = "Starting installation..."
	CompletedMessage   = "Installation complete."
	FailurePrefix      = "Installation failed: "
	InstallLabel       = "Install JDK Manager"
	InstallingLabel    = "Installing..."
)

// Installer performs the actual installation into dir and returns a
// human-readable success message.
type Installer interface {
	Install(ctx context.Context, dir string) (string, error)
}

// InstallerFunc adapts a plain function to Installer.
type InstallerFunc func(ctx context.Context, dir string) (string, error)

// Install calls f.
func (f InstallerFunc) Install(ctx context.Context, dir string) (string, error) {
	return f(ctx, dir)
}

// Phase is the position of the form in its install cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseInstalling
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseInstalling:
		return "installing"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is everything the installer form shows. Status and Error are never
// both non-empty.
type State struct {
	InstallPath string
	Status      string
	Error       string
	Installing  bool
	OSName      string
}

// New returns the state of a freshly mounted form. When host is nil the
// path and OS name are left empty.
func New(host *hostenv.Descriptor) State {
	var s State
	if path, ok := DefaultPath(host); ok {
		s.OSName = host.OS
		s.InstallPath = path
	}
	return s
}

// DefaultPath derives the suggested install directory for host. The Windows
// path is joined with a backslash regardless of the platform this runs on.
func DefaultPath(host *hostenv.Descriptor) (string, bool) {
	if host == nil {
		return "", false
	}
	if host.IsWindows() {
		return host.UserProfile + `\bin`, true
	}
	return UnixDefaultPath, true
}

// SetPath records an edit of the path input. Edits are ignored while an
// install is running because the input is disabled.
func (s *State) SetPath(path string) bool {
	if s.Installing {
		return false
	}
	s.InstallPath = path
	return true
}

// Begin starts an attempt and returns the directory to install into. It
// returns false, leaving the state untouched, if an attempt is in flight.
func (s *State) Begin() (string, bool) {
	if s.Installing {
		return "", false
	}
	s.Installing = true
	s.Error = ""
	s.Status = StartingMessage
	return s.InstallPath, true
}

// Settle applies the outcome of the in-flight attempt. A settlement without
// an attempt in flight is dropped.
func (s *State) Settle(message string, err error) bool {
	if !s.Installing {
		return false
	}
	s.Installing = false

	if err != nil {
		s.Status = ""
		s.Error = FailurePrefix + err.Error()
		return true
	}

	if message == "" {
		message = CompletedMessage
	}
	s.Error = ""
	s.Status = message
	return true
}

// Run performs one complete attempt synchronously. It is the headless
// counterpart of the interactive flow and returns false if an attempt was
// already in flight.
func (s *State) Run(ctx context.Context, inst Installer) bool {
	dir, ok := s.Begin()
	if !ok {
		return false
	}
	message, err := inst.Install(ctx, dir)
	return s.Settle(message, err)
}

// Phase reports where the form is in its install cycle.
func (s State) Phase() Phase {
	switch {
	case s.Installing:
		return PhaseInstalling
	case s.Error != "":
		return PhaseFailed
	case s.Status != "":
		return PhaseSucceeded
	default:
		return PhaseIdle
	}
}

// ControlDisabled reports whether the install control and path input are
// disabled.
func (s State) ControlDisabled() bool {
	return s.Installing
}

// ButtonLabel is the label of the install control.
func (s State) ButtonLabel() string {
	if s.Installing {
		return InstallingLabel
	}
	return InstallLabel
}

// Placeholder is the hint shown in an empty path input.
func (s State) Placeholder() string {
	if s.OSName == hostenv.WindowsOS {
		return WindowsPlaceholder
	}
	return UnixDefaultPath
}
