// Package config manages the installer's settings file.
//
// The file is YAML and lives in the platform configuration directory:
//   - Linux: $XDG_CONFIG_HOME/jdk-installer/config.yaml or $HOME/.config/jdk-installer/config.yaml
//   - macOS: $HOME/.config/jdk-installer/config.yaml
//   - Windows: %LOCALAPPDATA%\jdk-installer\config.yaml
//
// It holds overrides for locating and building the jdk CLI, plus a short
// history of completed installs:
//
//	version: 1
//	project_root: /home/alice/src/jdk-manager
//	build_command: make build
//	history:
//	  - path: /usr/local/bin/jdk
//	    installed_at: 2025-05-01T10:00:00Z
//	    version: v1.0.0
//
// Writes go through a temporary file and a rename so a crash never leaves a
// half-written file behind.
package config
