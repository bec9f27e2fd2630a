// Jdk-installer installs the JDK Manager CLI on the local machine.
//
// It builds the jdk CLI from its source tree, copies the binary into an
// install directory and runs the platform shell integration script.
//
// Usage:
//
//	jdk-installer [command] [flags]
//
// Running without arguments opens the interactive installer form.
// See 'jdk-installer --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jdk-manager/installer/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

var (
	logLevel    string
	logFile     string
	projectRoot string
)

var rootCmd = &cobra.Command{
	Use:   "jdk-installer",
	Short: "JDK Manager CLI installer",
	Long: `Installs the JDK Manager CLI (jdk) on this machine.

The installer builds the CLI from its source tree, copies the binary into
the chosen directory and registers it with your shell.

If no command is specified, the interactive installer form opens.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Example: `  # Open the installer form
  jdk-installer

  # Install without the form
  jdk-installer install --path ~/bin

  # Show previous installs
  jdk-installer history`,
	RunE: runForm,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file (the form always logs to a file)")
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project-root", "", "jdk CLI source tree (auto-detected when empty)")

	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "jdk-installer %s\n", version.Full())
	},
}

// reportedError is an error the command already showed to the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
