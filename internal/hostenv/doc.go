// Package hostenv describes the machine the installer is running on.
//
// The form view never reads runtime.GOOS or environment variables itself;
// it is handed a *Descriptor at construction so default-path derivation can
// be tested for any host from any host.
package hostenv
