// Package tui implements the interactive JDK Manager installer screen.
//
// It is a single Bubble Tea model, FormModel, that renders the installer form
// held in form.State: a path input prefilled with the platform default, the
// install control, and the status or error of the last attempt.
//
// # Framework Components
//
//   - bubbles/textinput: the install directory
//   - bubbles/spinner: shown while an install runs
//   - bubbles/help and bubbles/key: the footer key bindings
//   - lipgloss: styling and the full-screen container
//
// # Usage Example
//
//	model := tui.NewFormModel(ctx, hostenv.Detect(), inst)
//	program := tea.NewProgram(model, tea.WithAltScreen())
//
//	if _, err := program.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Install Flow
//
// Pressing enter (or i when the path input is not focused) calls
// form.State.Begin, disables the input and the control, and runs the
// installer in a tea.Cmd. The command returns an installCompleteMsg that the
// model applies with form.State.Settle. Only one attempt runs at a time;
// further presses are ignored until it settles.
//
// # Key Bindings
//
//   - enter: install
//   - tab: toggle focus between the path input and the install control
//   - i: install (control focused)
//   - q/esc: quit (control focused, nothing running)
//   - ctrl+c: quit at any time, cancelling a running install
//
// All model updates happen on the Bubble Tea goroutine; the installer itself
// runs inside the command and only reports back through the message.
package tui
