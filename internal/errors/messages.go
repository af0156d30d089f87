package errors

import (
	"fmt"
	"strings"
)

// Common error messages for the pystack CLI.
// These templates ensure consistent, actionable error messages.

// PoetryNotFound creates an error for a missing poetry executable.
// The suggested install method depends on whether pipx is available.
func PoetryNotFound(pipxAvailable bool) *CLIError {
	if pipxAvailable {
		return NewPrerequisiteError(
			"poetry not found in PATH",
			"Install it with: pipx install poetry",
		)
	}
	return NewPrerequisiteError(
		"poetry not found in PATH",
		"See the official install guide: https://python-poetry.org/docs/#installation",
	)
}

// ToolMissing creates an error for any external executable absent from PATH.
func ToolMissing(name string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("command %q not found in PATH", name),
		fmt.Sprintf("Check that %s is installed and on your PATH", name),
	)
}

// CommandFailed creates an error for a nonzero external command exit.
// stderr is included when the command's error stream was captured.
func CommandFailed(argv []string, exitCode int, stderr string) *CLIError {
	msg := fmt.Sprintf("command `%s` failed with exit code %d", strings.Join(argv, " "), exitCode)
	if stderr != "" {
		msg += "\n" + strings.TrimRight(stderr, "\n")
	}
	return NewRuntimeError(msg)
}

// WriteFailed creates an error for an OS-level file write failure.
func WriteFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime, fmt.Sprintf("could not write %s", path))
}

// BackupFailed creates an error for a failed backup rename before overwrite.
func BackupFailed(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("could not back up existing %s", path),
		"Re-run with --force to overwrite without a backup",
	)
}

// DirCreateFailed creates an error for a directory that could not be created.
func DirCreateFailed(dir string, err error) *CLIError {
	return WrapWithMessage(err, Runtime, fmt.Sprintf("could not create directory %s", dir))
}

// NotAGitRepository creates an error for hook activation outside a git work tree.
func NotAGitRepository() *CLIError {
	return NewPrerequisiteError(
		"not inside a git repository, pre-commit hooks cannot be installed",
		"Run 'git init' first, then re-run pystack",
	)
}
