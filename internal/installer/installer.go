package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

// Config holds the settings for a CLIInstaller.
type Config struct {
	// ProjectRoot is the jdk CLI source tree. Empty means auto-detect:
	// the parent of the installer's own directory, then the working directory.
	ProjectRoot string

	// BuildArgs is the build command and its arguments.
	// Default: make build
	BuildArgs []string

	// SkipShellIntegration skips scripts/install.sh and scripts/install.ps1.
	SkipShellIntegration bool

	// Interactive attaches stdin to the shell integration script so sudo
	// can prompt for a password. When false, sudo runs with -n and fails
	// instead of prompting.
	Interactive bool

	// GOOS selects the binary name and integration script.
	// Default: runtime.GOOS
	GOOS string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BuildArgs: []string{"make", "build"},
		GOOS:      runtime.GOOS,
	}
}

// CLIInstaller builds the jdk CLI from source, copies it into the target
// directory and runs the platform shell integration script.
type CLIInstaller struct {
	config Config
	runner Runner
	logger *zap.Logger

	// AfterInstall, if set, is called with the installed binary path once
	// everything succeeded. Its error is logged and otherwise ignored.
	AfterInstall func(target string) error

	// OnStage, if set, is called when each stage starts and again when it
	// finishes.
	OnStage func(StageEvent)

	executable func() (string, error)
	getwd      func() (string, error)
	getenv     func(string) string
	geteuid    func() int
	stdin      io.Reader
}

// StageEvent reports the progress of one pipeline stage.
type StageEvent struct {
	Stage   Stage
	Done    bool
	Skipped bool
	Err     error
}

// New creates a CLIInstaller. A nil runner means ExecRunner and a nil
// logger means no logging.
func New(config Config, runner Runner, logger *zap.Logger) *CLIInstaller {
	defaults := DefaultConfig()
	if len(config.BuildArgs) == 0 {
		config.BuildArgs = defaults.BuildArgs
	}
	if config.GOOS == "" {
		config.GOOS = defaults.GOOS
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CLIInstaller{
		config:     config,
		runner:     runner,
		logger:     logger,
		executable: os.Executable,
		getwd:      os.Getwd,
		getenv:     os.Getenv,
		geteuid:    os.Geteuid,
		stdin:      os.Stdin,
	}
}

// Install runs the whole pipeline for installPath and returns the message
// shown to the user on success. Every failure is an *InstallError.
func (i *CLIInstaller) Install(ctx context.Context, installPath string) (string, error) {
	i.logger.Info("starting CLI installation", zap.String("install_path", installPath))

	i.report(StageEvent{Stage: StageResolveRoot})
	root, err := i.resolveProjectRoot()
	if err != nil {
		return "", i.fail(&InstallError{Stage: StageResolveRoot, Err: err})
	}
	i.report(StageEvent{Stage: StageResolveRoot, Done: true})
	i.logger.Info("resolved CLI project root", zap.String("project_root", root))

	i.report(StageEvent{Stage: StageBuild})
	if err := i.build(ctx, root); err != nil {
		return "", i.fail(err)
	}
	i.report(StageEvent{Stage: StageBuild, Done: true})

	binary := BinaryName(i.config.GOOS)
	source := filepath.Join(root, "dist", binary)
	i.report(StageEvent{Stage: StageLocateBinary})
	if info, err := os.Stat(source); err != nil || info.IsDir() {
		if err == nil {
			err = errors.New("is a directory")
		}
		return "", i.fail(&InstallError{Stage: StageLocateBinary, Path: source, Err: err})
	}
	i.report(StageEvent{Stage: StageLocateBinary, Done: true})

	i.report(StageEvent{Stage: StagePrepareTarget})
	if err := os.MkdirAll(installPath, 0o755); err != nil {
		return "", i.fail(&InstallError{Stage: StagePrepareTarget, Path: installPath, Err: err})
	}
	i.report(StageEvent{Stage: StagePrepareTarget, Done: true})

	target := filepath.Join(installPath, binary)
	i.report(StageEvent{Stage: StageCopy})
	i.logger.Info("copying executable", zap.String("source", source), zap.String("target", target))
	if err := copyExecutable(source, target); err != nil {
		return "", i.fail(&InstallError{Stage: StageCopy, Path: target, Err: err})
	}
	i.report(StageEvent{Stage: StageCopy, Done: true})

	shellOutput, err := i.integrateShell(ctx, root)
	if err != nil {
		return "", i.fail(err)
	}

	if i.AfterInstall != nil {
		if err := i.AfterInstall(target); err != nil {
			i.logger.Warn("failed to record install", zap.String("target", target), zap.Error(err))
		}
	}

	return i.successMessage(installPath, target, shellOutput), nil
}

func (i *CLIInstaller) report(ev StageEvent) {
	if i.OnStage != nil {
		i.OnStage(ev)
	}
}

// fail reports the failed stage and returns err unchanged.
func (i *CLIInstaller) fail(err error) error {
	var ierr *InstallError
	if errors.As(err, &ierr) {
		i.report(StageEvent{Stage: ierr.Stage, Done: true, Err: err})
	}
	return err
}

// resolveProjectRoot finds the jdk CLI source tree.
func (i *CLIInstaller) resolveProjectRoot() (string, error) {
	if i.config.ProjectRoot != "" {
		if !isProjectRoot(i.config.ProjectRoot) {
			return "", fmt.Errorf("%s does not contain main.go", i.config.ProjectRoot)
		}
		return i.config.ProjectRoot, nil
	}

	if exe, err := i.executable(); err == nil {
		candidate := filepath.Join(filepath.Dir(exe), "..")
		if isProjectRoot(candidate) {
			return filepath.Clean(candidate), nil
		}
	}

	wd, err := i.getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return wd, nil
}

func (i *CLIInstaller) build(ctx context.Context, root string) error {
	cmd := Command{
		Dir:  root,
		Name: i.config.BuildArgs[0],
		Args: i.config.BuildArgs[1:],
	}
	i.logger.Info("building CLI executable", zap.String("command", cmd.String()))

	res, err := i.runner.Run(ctx, cmd)
	if err != nil {
		return &InstallError{Stage: StageBuild, Path: root, Output: string(res.Output), Err: err}
	}
	i.logger.Debug("build output", zap.ByteString("output", res.Output))
	return nil
}

// integrateShell runs the platform script that registers the CLI with the
// user's shell. It returns the script's output.
func (i *CLIInstaller) integrateShell(ctx context.Context, root string) (string, error) {
	if i.config.SkipShellIntegration {
		i.logger.Info("shell integration skipped")
		i.report(StageEvent{Stage: StageShellIntegration, Done: true, Skipped: true})
		return "", nil
	}

	i.report(StageEvent{Stage: StageShellIntegration})
	cmd := i.shellCommand(root)
	i.logger.Info("configuring shell integration", zap.String("command", cmd.String()))

	res, err := i.runner.Run(ctx, cmd)
	if err != nil {
		script := cmd.Args[len(cmd.Args)-1]
		return "", &InstallError{Stage: StageShellIntegration, Path: script, Output: string(res.Output), Err: err}
	}
	i.report(StageEvent{Stage: StageShellIntegration, Done: true})
	return string(res.Output), nil
}

func (i *CLIInstaller) shellCommand(root string) Command {
	if i.config.GOOS == "windows" {
		return Command{
			Dir:  root,
			Name: "powershell.exe",
			Args: []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-File", filepath.Join(root, "scripts", "install.ps1")},
		}
	}

	script := filepath.Join(root, "scripts", "install.sh")
	if i.geteuid() == 0 {
		return Command{Dir: root, Name: "bash", Args: []string{script}}
	}

	cmd := Command{Dir: root, Name: "sudo"}
	if i.config.Interactive {
		cmd.Stdin = i.stdin
		cmd.Args = []string{"bash", script}
	} else {
		cmd.Args = []string{"-n", "bash", script}
	}
	return cmd
}

func (i *CLIInstaller) successMessage(installPath, target, shellOutput string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "JDK Manager CLI installed successfully to %s!", target)

	if out := strings.TrimSpace(shellOutput); out != "" {
		b.WriteString("\n\nShell Configuration Output:\n")
		b.WriteString(out)
	}

	if !ContainsPath(i.getenv("PATH"), installPath, i.config.GOOS) {
		b.WriteString("\n\n")
		b.WriteString(PathHint(installPath, i.config.GOOS))
	}

	return b.String()
}
