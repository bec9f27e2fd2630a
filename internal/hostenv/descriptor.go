package hostenv

import (
	"os"
	"runtime"
)

// WindowsOS is the OS identifier reported on Windows hosts.
const WindowsOS = "windows"

// UserProfileEnvVar is read on Windows to derive per-user paths.
const UserProfileEnvVar = "USERPROFILE"

// Descriptor describes the host the installer runs on. A nil *Descriptor
// means the host environment is not available.
type Descriptor struct {
	// OS is the operating system identifier (runtime.GOOS values).
	OS string
	// UserProfile is the Windows user profile directory. Empty elsewhere.
	UserProfile string
}

// IsWindows reports whether the descriptor names a Windows host.
func (d *Descriptor) IsWindows() bool {
	return d != nil && d.OS == WindowsOS
}

// Detect builds a Descriptor for the running process.
func Detect() *Descriptor {
	return detect(runtime.GOOS, os.Getenv)
}

func detect(goos string, getenv func(string) string) *Descriptor {
	d := &Descriptor{OS: goos}
	if goos == WindowsOS {
		d.UserProfile = getenv(UserProfileEnvVar)
	}
	return d
}
