// Package shell runs external commands for the generators, either streaming
// their output to the user ("loud") or capturing it ("silent").
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// ErrCommandFailed is matched by every error returned from a Runner when the
// process could not be started or exited non-zero.
var ErrCommandFailed = errors.New("failed to execute command")

// Command is a single process invocation. Arguments are passed to the
// process directly and never interpreted by a shell.
type Command struct {
	Dir  string
	Name string
	Args []string
}

// String returns the command line for display.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, c.Name)
	for _, a := range c.Args {
		if a == "" || strings.ContainsAny(a, " \t\"'*") {
			a = fmt.Sprintf("%q", a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// CommandError reports a failed command together with its captured stderr.
type CommandError struct {
	Command Command
	Output  string
	Err     error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s: %s", ErrCommandFailed, e.Command)
	if e.Command.Dir != "" {
		msg += " (in " + e.Command.Dir + ")"
	}
	if e.Output != "" {
		return msg + ": " + e.Output
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

// Unwrap supports errors.Is for both ErrCommandFailed and the exec error.
func (e *CommandError) Unwrap() []error {
	return []error{ErrCommandFailed, e.Err}
}

// Runner executes commands synchronously.
type Runner interface {
	// Run executes cmd with stdio attached to the user's terminal.
	Run(ctx context.Context, cmd Command) error

	// RunSilent executes cmd with output captured. The captured stderr is
	// included in the returned error.
	RunSilent(ctx context.Context, cmd Command) error
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger *slog.Logger
}

// Compile-time interface compliance check.
var _ Runner = (*ExecRunner)(nil)

// NewExecRunner creates an ExecRunner wired to the process stdio.
func NewExecRunner(logger *slog.Logger) *ExecRunner {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger.With("module", "shell"),
	}
}

// Run executes cmd with output streamed to the configured writers.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := r.command(ctx, cmd)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	r.logger.Debug("running command", "cmd", cmd.String(), "dir", cmd.Dir)
	if err := c.Run(); err != nil {
		return &CommandError{Command: cmd, Err: err}
	}
	return nil
}

// RunSilent executes cmd and discards stdout. Stderr is kept for the error.
func (r *ExecRunner) RunSilent(ctx context.Context, cmd Command) error {
	c := r.command(ctx, cmd)
	var stderr bytes.Buffer
	c.Stdout = io.Discard
	c.Stderr = &stderr

	r.logger.Debug("running silent command", "cmd", cmd.String(), "dir", cmd.Dir)
	if err := c.Run(); err != nil {
		return &CommandError{
			Command: cmd,
			Output:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return nil
}

func (r *ExecRunner) command(ctx context.Context, cmd Command) *exec.Cmd {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	return c
}
