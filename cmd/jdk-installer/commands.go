package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jdk-manager/installer/internal/config"
	"github.com/jdk-manager/installer/internal/form"
	"github.com/jdk-manager/installer/internal/hostenv"
	"github.com/jdk-manager/installer/internal/installer"
	"github.com/jdk-manager/installer/internal/logging"
	"github.com/jdk-manager/installer/internal/ui"
	"github.com/jdk-manager/installer/internal/version"
	"github.com/jdk-manager/installer/internal/wizard/tui"
)

// runForm opens the interactive installer form
func runForm(cmd *cobra.Command, args []string) error {
	if err := initLogging(true); err != nil {
		return err
	}
	defer logging.Sync()

	settings, saved := loadSettings()

	// The form owns the terminal, so sudo must not prompt.
	inst := newInstaller(settings, saved, false)

	model := tui.NewFormModel(cmd.Context(), hostenv.Detect(), inst)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("installer form error: %w", err)
	}

	return nil
}

var (
	installPath string
	assumeYes   bool
)

// installCmd installs without the form
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the JDK Manager CLI without the form",
	Long: `Builds the jdk CLI and installs it into the given directory.

Without --path the platform default is used:
  Linux/macOS: /usr/local/bin
  Windows:     %USERPROFILE%\bin

The shell integration step runs under sudo on Linux/macOS and may ask
for your password.`,
	Example: `  jdk-installer install
  jdk-installer install --path ~/bin --yes`,
	Args: cobra.NoArgs,
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVarP(&installPath, "path", "p", "", "Installation directory")
	installCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Replace an existing jdk binary without asking")
}

func runInstall(cmd *cobra.Command, args []string) error {
	if err := initLogging(false); err != nil {
		return err
	}
	defer logging.Sync()

	out := cmd.OutOrStdout()
	settings, saved := loadSettings()

	state := form.New(hostenv.Detect())
	if installPath != "" {
		state.SetPath(installPath)
	}
	if state.InstallPath == "" {
		return errors.New("no installation directory: pass --path")
	}

	target := filepath.Join(state.InstallPath, installer.BinaryName(runtime.GOOS))
	if !assumeYes && fileExists(target) && ui.IsInteractive(os.Stdin) {
		warnings := []string{
			target + " already exists",
			"It will be replaced with a fresh build",
		}
		if !ui.Confirm(os.Stdin, out, "Replace existing jdk binary", warnings, "Continue?") {
			return &reportedError{err: errors.New("installation cancelled")}
		}
	}

	inst := newInstaller(settings, saved, true)

	root := projectRoot
	if root == "" {
		root = settings.ProjectRoot
	}
	if root == "" {
		root = "auto-detect"
	}

	task := ui.NewTask(ui.TaskConfig{
		Title:   "Install JDK Manager",
		Command: cmd.CommandPath(),
		Params: []ui.Param{
			{Key: "Target", Value: state.InstallPath},
			{Key: "Project root", Value: root},
			{Key: "Build", Value: settings.BuildCommand},
		},
		StepNames:    stageTitles(),
		Output:       out,
		Troubleshoot: troubleshoot,
	})

	err := task.Run(cmd.Context(), func(ctx context.Context, onStep ui.StepCallback) (ui.Outcome, error) {
		inst.OnStage = func(ev installer.StageEvent) {
			reportStage(onStep, ev)
		}
		return installWithForm(ctx, &state, inst, target)
	})
	if err != nil {
		return &reportedError{err: err}
	}
	return nil
}

// installWithForm runs one attempt through the form state so the headless
// command reports exactly what the form would show.
func installWithForm(ctx context.Context, state *form.State, inst form.Installer, target string) (ui.Outcome, error) {
	var installErr error
	start := time.Now()
	dir := state.InstallPath

	logging.LogInstallAttempt(dir)
	state.Run(ctx, form.InstallerFunc(func(ctx context.Context, dir string) (string, error) {
		msg, err := inst.Install(ctx, dir)
		installErr = err
		return msg, err
	}))
	logging.LogInstallResult(dir, time.Since(start), installErr)

	if state.Phase() == form.PhaseFailed {
		return ui.Outcome{}, &formError{message: state.Error, cause: installErr}
	}
	return ui.Outcome{
		Message: state.Status,
		Details: []ui.Param{{Key: "Binary", Value: target}},
	}, nil
}

// formError carries the form's failure text and the installer error behind it.
type formError struct {
	message string
	cause   error
}

func (e *formError) Error() string { return e.message }

func (e *formError) Unwrap() error { return e.cause }

func troubleshoot(err error) []string {
	var ierr *installer.InstallError
	if errors.As(err, &ierr) {
		return installer.Troubleshooting(ierr.Stage)
	}
	return nil
}

func stageTitles() []string {
	titles := make([]string, len(installer.Stages))
	for i, stage := range installer.Stages {
		titles[i] = stage.Title()
	}
	return titles
}

func stageNumber(stage installer.Stage) int {
	for i, s := range installer.Stages {
		if s == stage {
			return i + 1
		}
	}
	return 0
}

func reportStage(onStep ui.StepCallback, ev installer.StageEvent) {
	n := stageNumber(ev.Stage)
	switch {
	case !ev.Done:
		onStep(n, ui.StepRunning, "")
	case ev.Skipped:
		onStep(n, ui.StepSkipped, "disabled in settings")
	case ev.Err != nil:
		onStep(n, ui.StepFailed, "")
	default:
		onStep(n, ui.StepComplete, "")
	}
}

// historyCmd prints recorded installs
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previous installs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load()
		if err != nil {
			return err
		}

		entries := make([]ui.HistoryEntry, len(settings.History))
		for i, r := range settings.History {
			entries[i] = ui.HistoryEntry{Path: r.Path, Version: r.Version, InstalledAt: r.InstalledAt}
		}

		ui.NewPrinter(cmd.OutOrStdout()).PrintHistory(entries)
		return nil
	},
}

// initLogging builds the global logger from the persistent flags. The form
// logs to a file under the settings directory unless --log-file is given.
func initLogging(forForm bool) error {
	opts := logging.Options{Level: logLevel, OutputPath: logFile}
	if forForm && opts.OutputPath == "" {
		path, err := config.GetLogPath()
		if err != nil {
			return err
		}
		opts.OutputPath = path
	}
	return logging.Initialize(opts)
}

// loadSettings returns the saved settings, or defaults if they cannot be
// read. saved is false in that case and the file must not be written back.
func loadSettings() (settings *config.Settings, saved bool) {
	settings, err := config.Load()
	if err != nil {
		logging.Warn("Using default settings; install history will not be recorded", zap.Error(err))
		return config.NewSettings(), false
	}
	return settings, true
}

// newInstaller builds the CLI installer from settings. When record is set a
// successful install is added to the history and the settings are saved.
func newInstaller(settings *config.Settings, record, interactive bool) *installer.CLIInstaller {
	cfg := installer.DefaultConfig()
	cfg.ProjectRoot = settings.ProjectRoot
	if projectRoot != "" {
		cfg.ProjectRoot = projectRoot
	}
	cfg.BuildArgs = settings.BuildArgs()
	cfg.SkipShellIntegration = settings.SkipShellIntegration
	cfg.Interactive = interactive

	inst := installer.New(cfg, installer.ExecRunner{}, logging.GetLogger())
	if record {
		inst.AfterInstall = func(target string) error {
			settings.RecordInstall(target, version.Version, time.Now())
			return settings.Save()
		}
	}
	return inst
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
