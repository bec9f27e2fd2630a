// Package form holds the state of the installer form and the rules for
// moving it through an install attempt.
//
// The package has no UI dependencies. The terminal view in
// internal/wizard/tui and the headless install command both drive the same
// State:
//
//	s := form.New(hostenv.Detect())
//	s.SetPath("/opt/bin")
//	s.Run(ctx, installer)
//	fmt.Println(s.Status, s.Error)
//
// An attempt moves the form from idle to installing and then to either
// succeeded or failed. Every attempt clears the previous messages first, so
// Status and Error are never both set.
package form
