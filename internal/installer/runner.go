package installer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/jdk-manager/installer/internal/logging"
)

// Command is an external program to run.
type Command struct {
	Dir   string
	Name  string
	Args  []string
	Stdin io.Reader
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is what a finished command produced.
type Result struct {
	Output   []byte
	ExitCode int
}

// Runner executes external commands. A non-zero exit status is reported as
// an error alongside the captured output.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run executes cmd and captures its combined stdout and stderr.
func (ExecRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = cmd.Stdin

	var out bytes.Buffer
	c.Stdout = &out
	c.Stderr = &out

	err := c.Run()

	result := Result{Output: out.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
	}

	logging.LogCommand(cmd.Dir, cmd.Name, cmd.Args, result.ExitCode, result.Output)

	if err != nil {
		return result, fmt.Errorf("%s: %w", cmd, err)
	}
	return result, nil
}
