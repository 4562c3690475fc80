// Package backend runs the package-management executable weget wraps.
package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/conn-castle/weget/internal/config"
	"github.com/conn-castle/weget/internal/messages"
)

// ErrUnavailable marks availability failures: the backend is missing or its version check failed.
var ErrUnavailable = errors.New(messages.BackendUnavailable)

// Client invokes the backend executable.
type Client struct {
	Executable  string
	VersionArgs []string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
}

// New returns a Client for cfg attached to the process's standard streams.
func New(cfg config.BackendConfig) *Client {
	return &Client{
		Executable:  cfg.Executable,
		VersionArgs: append([]string{}, cfg.VersionArgs...),
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
	}
}

// Probe runs the version query and returns an ErrUnavailable error unless it exits 0.
func (c *Client) Probe(ctx context.Context) error {
	if c.Executable == "" {
		return fmt.Errorf("%w: %s", ErrUnavailable, messages.BackendExecutableRequired)
	}
	code, _, err := c.Output(ctx, c.VersionArgs...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: "+messages.BackendNotOnPathFmt, ErrUnavailable, c.Executable)
		}
		return fmt.Errorf("%w: "+messages.BackendProbeFailedFmt, ErrUnavailable, c.Executable, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: "+messages.BackendNotAccessibleFmt, ErrUnavailable, c.Executable)
	}
	return nil
}

// Run executes the backend attached to the client's streams so interactive prompts stay visible.
// It returns the exit status; the error is non-nil only when the process could not be run.
func (c *Client) Run(ctx context.Context, args ...string) (int, error) {
	cmd := exec.CommandContext(ctx, c.Executable, args...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	return c.exitStatus(cmd.Run())
}

// Output executes the backend and captures its standard output.
func (c *Client) Output(ctx context.Context, args ...string) (int, string, error) {
	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Executable, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard
	code, err := c.exitStatus(cmd.Run())
	return code, stdout.String(), err
}

// Argv returns the full command line for running the backend with args.
func (c *Client) Argv(args ...string) []string {
	return append([]string{c.Executable}, args...)
}

// exitStatus converts the result of exec.Cmd.Run into an exit code.
func (c *Client) exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code == 0 || code == -1 {
			code = 1
		}
		return code, nil
	}
	return 1, fmt.Errorf(messages.BackendStartFailedFmt, c.Executable, err)
}
