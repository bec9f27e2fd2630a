package installer

import (
	"fmt"
	"strings"
)

// Stage names the step of the install pipeline that failed.
type Stage string

const (
	StageResolveRoot      Stage = "resolve-root"
	StageBuild            Stage = "build"
	StageLocateBinary     Stage = "locate-binary"
	StagePrepareTarget    Stage = "prepare-target"
	StageCopy             Stage = "copy"
	StageShellIntegration Stage = "shell-integration"
)

// Stages lists the pipeline steps in the order Install runs them.
var Stages = []Stage{
	StageResolveRoot,
	StageBuild,
	StageLocateBinary,
	StagePrepareTarget,
	StageCopy,
	StageShellIntegration,
}

// Title is the human readable name of the stage.
func (s Stage) Title() string {
	switch s {
	case StageResolveRoot:
		return "Locate jdk CLI project"
	case StageBuild:
		return "Build CLI"
	case StageLocateBinary:
		return "Find built executable"
	case StagePrepareTarget:
		return "Create installation directory"
	case StageCopy:
		return "Copy executable"
	case StageShellIntegration:
		return "Configure shell integration"
	default:
		return string(s)
	}
}

// InstallError is returned for every failed install. The form shows its
// Error() text verbatim after the "Installation failed: " label.
type InstallError struct {
	// Stage is the pipeline step that failed
	Stage Stage
	// Path is the file or directory the stage was working on, if any
	Path string
	// Output is the combined output of a failed external command
	Output string
	// Err is the underlying error
	Err error
}

func (e *InstallError) Error() string {
	var msg string
	switch e.Stage {
	case StageResolveRoot:
		msg = fmt.Sprintf("cannot locate the jdk CLI project: %v", e.Err)
	case StageBuild:
		msg = fmt.Sprintf("failed to build CLI: %v", e.Err)
	case StageLocateBinary:
		msg = fmt.Sprintf("built executable not found at: %s", e.Path)
	case StagePrepareTarget:
		msg = fmt.Sprintf("failed to create installation directory %s: %v", e.Path, e.Err)
	case StageCopy:
		msg = fmt.Sprintf("failed to copy executable to %s: %v", e.Path, e.Err)
	case StageShellIntegration:
		msg = fmt.Sprintf("failed to run installer script %s: %v", e.Path, e.Err)
	default:
		msg = fmt.Sprintf("%s: %v", e.Stage, e.Err)
	}

	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *InstallError) Unwrap() error {
	return e.Err
}

// Troubleshooting returns hints for a failed stage.
func Troubleshooting(stage Stage) []string {
	switch stage {
	case StageResolveRoot:
		return []string{
			"Run the installer from the jdk-manager source tree",
			"Or pass --project-root /path/to/jdk-manager",
		}
	case StageBuild:
		return []string{
			"Check that make and the Go toolchain are on your PATH",
			"Run the build command manually in the project root to see the full output",
		}
	case StageLocateBinary:
		return []string{
			"The build finished but did not produce dist/jdk",
			"Check build_command in the installer settings",
		}
	case StagePrepareTarget, StageCopy:
		return []string{
			"Choose a directory you can write to, or re-run with elevated permissions",
			"Make sure no running jdk process is locking the old binary",
		}
	case StageShellIntegration:
		return []string{
			"On Linux/macOS the script runs with sudo and may need your password",
			"Re-run from a terminal with: jdk-installer install",
			"Or skip it by setting skip_shell_integration: true in the settings",
		}
	default:
		return nil
	}
}
