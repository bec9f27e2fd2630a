package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !contains(configDir, "jdk-installer") {
		t.Errorf("GetConfigDir() = %v, should contain 'jdk-installer'", configDir)
	}

	switch runtime.GOOS {
	case "windows":
		if !contains(configDir, "AppData") && !contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin":
		if !contains(configDir, ".config") {
			t.Errorf("macOS config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigDirHonoursXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}

	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if want := filepath.Join(xdg, "jdk-installer"); got != want {
		t.Errorf("GetConfigDir() = %v, want %v", got, want)
	}
}

func TestGetConfigAndLogPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}

	logPath, err := GetLogPath()
	if err != nil {
		t.Fatalf("GetLogPath() error = %v", err)
	}
	if filepath.Dir(logPath) != filepath.Dir(configPath) {
		t.Errorf("log %v and config %v should share a directory", logPath, configPath)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	settings, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if settings.Version != 1 {
		t.Errorf("Version = %v, want 1", settings.Version)
	}
	if settings.BuildCommand != DefaultBuildCommand {
		t.Errorf("BuildCommand = %q, want %q", settings.BuildCommand, DefaultBuildCommand)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	at := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	settings := NewSettings()
	settings.ProjectRoot = "/src/jdk-manager"
	settings.SkipShellIntegration = true
	settings.RecordInstall("/usr/local/bin/jdk", "v1.0.0", at)

	if err := settings.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# JDK Manager Installer settings") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if loaded.ProjectRoot != "/src/jdk-manager" {
		t.Errorf("ProjectRoot = %q", loaded.ProjectRoot)
	}
	if !loaded.SkipShellIntegration {
		t.Error("SkipShellIntegration should survive a round trip")
	}
	last, ok := loaded.LastInstall()
	if !ok {
		t.Fatal("LastInstall() found nothing")
	}
	if last.Path != "/usr/local/bin/jdk" || !last.InstalledAt.Equal(at) || last.Version != "v1.0.0" {
		t.Errorf("LastInstall() = %+v", last)
	}
}

func TestLoadFromRejectsUnknownVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should reject version 2")
	}
}

func TestLoadFromRejectsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: [\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() should fail on malformed YAML")
	}
}

func TestLoadFromFillsBuildCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\nproject_root: /x\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	settings, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if settings.BuildCommand != DefaultBuildCommand {
		t.Errorf("BuildCommand = %q, want default", settings.BuildCommand)
	}
}
