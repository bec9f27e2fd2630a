package hostenv

import (
	"runtime"
	"testing"
)

func TestDetect(t *testing.T) {
	env := map[string]string{UserProfileEnvVar: `C:\Users\alice`}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		goos            string
		wantUserProfile string
		wantWindows     bool
	}{
		{"windows", `C:\Users\alice`, true},
		{"linux", "", false},
		{"darwin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			d := detect(tt.goos, getenv)
			if d.OS != tt.goos {
				t.Errorf("OS = %q, want %q", d.OS, tt.goos)
			}
			if d.UserProfile != tt.wantUserProfile {
				t.Errorf("UserProfile = %q, want %q", d.UserProfile, tt.wantUserProfile)
			}
			if d.IsWindows() != tt.wantWindows {
				t.Errorf("IsWindows() = %v, want %v", d.IsWindows(), tt.wantWindows)
			}
		})
	}
}

func TestDetectCurrentHost(t *testing.T) {
	d := Detect()
	if d == nil {
		t.Fatal("Detect() returned nil")
	}
	if d.OS != runtime.GOOS {
		t.Errorf("Detect().OS = %q, want %q", d.OS, runtime.GOOS)
	}
}

func TestNilDescriptorIsNotWindows(t *testing.T) {
	var d *Descriptor
	if d.IsWindows() {
		t.Error("nil descriptor should not report Windows")
	}
}
