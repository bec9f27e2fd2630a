// Package logging provides structured logging for the JDK Manager installer.
//
// It wraps a global zap logger with a few convenience functions. The logger
// is silent by default so the installer's own UI output stays clean; set
// JDK_INSTALLER_LOG_LEVEL (or pass --log-level) to "debug", "info", "warn"
// or "error" to turn it on.
//
// # Log Levels
//
//   - Debug: external command lines and their output
//   - Info: install attempts, resolved project root, copied files
//   - Warn: non-fatal problems (missing PATH entry, unreadable settings)
//   - Error: failed install attempts
//
// # Output
//
// The interactive installer owns the terminal, so it writes logs to a file
// under the settings directory:
//
//	logging.Initialize(logging.Options{
//	    Level:      "debug",
//	    OutputPath: filepath.Join(dir, "installer.log"),
//	})
//
// The headless install command logs to stderr.
package logging
