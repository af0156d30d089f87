// Package runner executes external commands for pystack.
// It wraps os/exec with dry-run support and converts process failures into
// structured CLI errors. All invocations block until the process exits.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/raveheart1/pystack/internal/errors"
)

// Result holds the outcome of a command invocation.
// Stdout and Stderr are populated only when output was captured.
type Result struct {
	Argv     []string
	ExitCode int
	Stdout   string
	Stderr   string
}

// CommandRunner runs external commands. The production implementation is
// ExecRunner; tests inject fakes that record invocations.
type CommandRunner interface {
	// Run invokes argv[0] with argv[1:] and waits for completion.
	// When capture is true, stdout and stderr are returned in the Result
	// instead of being streamed to the terminal.
	Run(ctx context.Context, argv []string, capture bool) (*Result, error)

	// LookPath reports the location of an executable on the search path.
	LookPath(name string) (string, error)
}

// ExecRunner is the os/exec-backed CommandRunner.
type ExecRunner struct {
	// DryRun returns a synthetic successful Result without invoking anything.
	DryRun bool
	// Log receives verbose step logging; nil disables it.
	Log func(format string, args ...interface{})
	// Stdout and Stderr receive streamed output when capture is false.
	// Nil defaults to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements CommandRunner.
func (r *ExecRunner) Run(ctx context.Context, argv []string, capture bool) (*Result, error) {
	r.logf("executing: %s", strings.Join(argv, " "))

	if r.DryRun {
		return &Result{Argv: argv, ExitCode: 0}, nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	} else {
		// Stream to the terminal but keep a copy of stderr so a failure
		// can report what the process complained about.
		cmd.Stdout = r.stdout()
		cmd.Stderr = io.MultiWriter(r.stderr(), &stderr)
	}

	err := cmd.Run()
	if err == nil {
		return &Result{
			Argv:     argv,
			ExitCode: 0,
			Stdout:   stdout.String(),
			Stderr:   stderr.String(),
		}, nil
	}

	if stderrors.Is(err, exec.ErrNotFound) {
		return nil, errors.ToolMissing(argv[0])
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		return nil, errors.CommandFailed(argv, exitErr.ExitCode(), stderr.String())
	}

	return nil, errors.WrapWithMessage(err, errors.Runtime,
		"command `"+strings.Join(argv, " ")+"` could not be started")
}

// LookPath implements CommandRunner. The search-path check is read-only and
// runs even in dry-run mode.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (r *ExecRunner) logf(format string, args ...interface{}) {
	if r.Log != nil {
		r.Log(format, args...)
	}
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
