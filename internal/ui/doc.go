// Package ui renders the non-interactive terminal output of the installer.
//
// The interactive form lives in internal/wizard/tui. The commands that run
// once and exit (install, history) use the lipgloss components here:
//
//   - Header: command banner with the title and ordered parameters
//   - Progress: step list with a status marker per step
//   - Result: success, failure or warning box, with troubleshooting tips
//   - Task: header, step lines and result box for a multi-step operation
//   - Printer: writes the components and the install history
//
// Example:
//
//	task := ui.NewTask(ui.TaskConfig{
//	    Title:     "Install JDK Manager",
//	    Command:   "jdk-installer install",
//	    Params:    []ui.Param{{Key: "Target", Value: dir}},
//	    StepNames: names,
//	})
//
//	err := task.Run(ctx, func(ctx context.Context, onStep ui.StepCallback) (ui.Outcome, error) {
//	    onStep(1, ui.StepComplete, "")
//	    return ui.Outcome{Message: "done"}, nil
//	})
//
// Zap logging is silent unless JDK_INSTALLER_LOG_LEVEL or --log-level is
// set, so this output is the only thing the user sees by default.
package ui
