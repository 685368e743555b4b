package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"os/signal"
	"time"

	"github.com/raphi011/runmenu/internal/log"
)

// Failure describes why a command did not succeed.
type Failure int

const (
	FailureNone       Failure = iota // command exited with status 0
	FailureExit                      // command ran and exited non-zero
	FailureNotFound                  // executable does not exist
	FailurePermission                // executable could not be run
	FailureOther
)

func (f Failure) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureExit:
		return "exit"
	case FailureNotFound:
		return "not found"
	case FailurePermission:
		return "permission denied"
	default:
		return "other"
	}
}

// Runner executes commands attached to the given streams.
type Runner struct {
	Dir    string // working directory, empty for the current one
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewRunner returns a Runner wired to the process's own terminal.
func NewRunner(dir string) *Runner {
	return &Runner{
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts name with args and waits for it to exit.
// A nil error means the command exited with status 0.
func (r *Runner) Run(ctx context.Context, name string, args ...string) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)
	defer signal.Stop(sigs)

	c := exec.CommandContext(ctx, name, args...)
	c.Dir = r.Dir
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	done := log.FromContext(ctx).Command(r.Dir, name, args...)
	start := time.Now()
	err := c.Run()
	done(time.Since(start))

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("run %s: %w", name, err)
	}
	return nil
}

// Classify maps an error returned by Run to a Failure.
func Classify(err error) Failure {
	if err == nil {
		return FailureNone
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		return FailureExit
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return FailureNotFound
	case errors.Is(err, fs.ErrPermission):
		return FailurePermission
	default:
		return FailureOther
	}
}

// ExitCode returns the child's exit status, or -1 if err is not an exit error.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
