package config

import (
	"strings"
	"time"
)

// MaxHistory is the number of install records kept in the settings file.
const MaxHistory = 20

// DefaultBuildCommand builds the jdk CLI from its source tree.
const DefaultBuildCommand = "make build"

// Settings is the installer's configuration file.
type Settings struct {
	Version int `yaml:"version"`

	// ProjectRoot is the jdk CLI source tree. Empty means auto-detect.
	ProjectRoot string `yaml:"project_root,omitempty"`

	// BuildCommand is run in ProjectRoot to produce dist/jdk.
	BuildCommand string `yaml:"build_command,omitempty"`

	// SkipShellIntegration disables the install.sh / install.ps1 step.
	SkipShellIntegration bool `yaml:"skip_shell_integration,omitempty"`

	// History lists completed installs, newest first.
	History []InstallRecord `yaml:"history,omitempty"`
}

// InstallRecord describes one successful install.
type InstallRecord struct {
	Path        string    `yaml:"path"`
	InstalledAt time.Time `yaml:"installed_at"`
	Version     string    `yaml:"version,omitempty"`
}

// NewSettings returns Settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version:      1,
		BuildCommand: DefaultBuildCommand,
	}
}

// BuildArgs splits BuildCommand into a program and its arguments.
func (s *Settings) BuildArgs() []string {
	cmd := strings.TrimSpace(s.BuildCommand)
	if cmd == "" {
		cmd = DefaultBuildCommand
	}
	return strings.Fields(cmd)
}

// RecordInstall adds an install to the front of the history, dropping the
// oldest entries beyond MaxHistory.
func (s *Settings) RecordInstall(path, version string, at time.Time) {
	record := InstallRecord{
		Path:        path,
		InstalledAt: at.UTC(),
		Version:     version,
	}
	s.History = append([]InstallRecord{record}, s.History...)
	if len(s.History) > MaxHistory {
		s.History = s.History[:MaxHistory]
	}
}

// LastInstall returns the most recent install, if any.
func (s *Settings) LastInstall() (InstallRecord, bool) {
	if len(s.History) == 0 {
		return InstallRecord{}, false
	}
	return s.History[0], true
}
