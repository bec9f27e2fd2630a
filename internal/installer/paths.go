package installer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BinaryName is the jdk CLI executable name on goos.
func BinaryName(goos string) string {
	if goos == "windows" {
		return "jdk.exe"
	}
	return "jdk"
}

// ContainsPath reports whether dir is one of the entries of pathEnv.
// Windows comparisons ignore case.
func ContainsPath(pathEnv, dir, goos string) bool {
	if pathEnv == "" || dir == "" {
		return false
	}
	want := filepath.Clean(strings.TrimSpace(dir))
	for _, p := range filepath.SplitList(pathEnv) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		got := filepath.Clean(p)
		if goos == "windows" {
			if strings.EqualFold(got, want) {
				return true
			}
		} else if got == want {
			return true
		}
	}
	return false
}

// PathHint tells the user how to put dir on their PATH.
func PathHint(dir, goos string) string {
	if goos == "windows" {
		return fmt.Sprintf("%s is not on your PATH. Add it with: setx PATH \"%%PATH%%;%s\"", dir, dir)
	}
	return fmt.Sprintf("%s is not on your PATH. Add 'export PATH=\"%s:$PATH\"' to your shell rc (e.g. ~/.bashrc).", dir, dir)
}

// isProjectRoot reports whether dir looks like the jdk CLI source tree.
func isProjectRoot(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, "main.go"))
	return err == nil && !info.IsDir()
}
