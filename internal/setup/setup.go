// Package setup orchestrates the pystack bootstrap sequence: package manager
// check, project initialization, dependency installation, config generation,
// and commit-hook activation. The flow is strictly linear; the first fatal
// error aborts all subsequent steps.
package setup

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/raveheart1/pystack/internal/config"
	"github.com/raveheart1/pystack/internal/errors"
	"github.com/raveheart1/pystack/internal/fswrite"
	"github.com/raveheart1/pystack/internal/generate"
	"github.com/raveheart1/pystack/internal/git"
	"github.com/raveheart1/pystack/internal/output"
	"github.com/raveheart1/pystack/internal/progress"
	"github.com/raveheart1/pystack/internal/runner"
)

// totalSteps is the number of user-visible bootstrap steps.
const totalSteps = 6

// Setup runs the bootstrap sequence. Construct with New; the zero value is
// not usable.
type Setup struct {
	cfg    *config.Configuration
	runner runner.CommandRunner
	writer *fswrite.Writer
	caps   Capabilities
	term   progress.TerminalCapabilities
	out    io.Writer

	// repoCheck is injectable for testing (defaults to git.IsRepository).
	repoCheck func(path string) (bool, error)
}

// Option customizes a Setup, mainly for tests.
type Option func(*Setup)

// WithCapabilities overrides the detected host capabilities.
func WithCapabilities(caps Capabilities) Option {
	return func(s *Setup) { s.caps = caps }
}

// WithTerminal overrides the detected terminal capabilities.
func WithTerminal(term progress.TerminalCapabilities) Option {
	return func(s *Setup) { s.term = term }
}

// WithRepoCheck overrides the git repository check.
func WithRepoCheck(check func(path string) (bool, error)) Option {
	return func(s *Setup) { s.repoCheck = check }
}

// New creates a Setup with the given configuration, command runner, and
// output writer. Host and terminal capabilities are detected once here.
func New(cfg *config.Configuration, r runner.CommandRunner, out io.Writer, opts ...Option) *Setup {
	s := &Setup{
		cfg:    cfg,
		runner: r,
		caps:   DetectCapabilities(),
		term:   progress.DetectTerminalCapabilities(),
		out:    out,
		repoCheck: func(path string) (bool, error) {
			return git.IsRepository(path)
		},
	}
	s.writer = &fswrite.Writer{
		DryRun:       cfg.DryRun,
		Force:        cfg.Force,
		BackupSuffix: cfg.BackupSuffix,
		Log:          s.logf,
		Notice: func(format string, args ...interface{}) {
			output.PrintNotice(s.out, fmt.Sprintf(format, args...))
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes the full bootstrap sequence.
func (s *Setup) Run(ctx context.Context) error {
	if err := s.checkPoetry(); err != nil {
		return err
	}
	if err := s.initProject(ctx); err != nil {
		return err
	}
	if err := s.addDependencies(ctx); err != nil {
		return err
	}
	if err := s.generateConfigs(); err != nil {
		return err
	}
	if err := s.installHooks(ctx); err != nil {
		return err
	}
	s.printGuidance()
	return nil
}

// checkPoetry verifies the package manager is reachable. The install
// suggestion depends on whether pipx is available as the simpler path.
func (s *Setup) checkPoetry() error {
	s.step(1, "Checking for "+s.cfg.PoetryCmd)

	if _, err := s.runner.LookPath(s.cfg.PoetryCmd); err != nil {
		_, pipxErr := s.runner.LookPath("pipx")
		return errors.PoetryNotFound(pipxErr == nil)
	}

	output.PrintSuccess(s.out, s.cfg.PoetryCmd+" found")
	return nil
}

// initProject initializes a new project unless the descriptor already exists.
func (s *Setup) initProject(ctx context.Context) error {
	s.step(2, "Initializing project")

	if fileExists(s.cfg.PyprojectPath) {
		output.PrintSkipped(s.out, "project already initialized ("+s.cfg.PyprojectPath+" exists)")
		return nil
	}

	if _, err := s.runner.Run(ctx, []string{s.cfg.PoetryCmd, "init", "-n"}, false); err != nil {
		return err
	}
	output.PrintSuccess(s.out, "project initialized")
	return nil
}

// addDependencies installs the fixed production and dev dependency lists.
func (s *Setup) addDependencies(ctx context.Context) error {
	s.step(3, "Installing dependencies")

	prod := ProductionDependencies(s.caps)
	if err := s.runAdd(ctx, "production dependencies", append([]string{s.cfg.PoetryCmd, "add"}, prod...)); err != nil {
		return err
	}

	dev := DevDependencies()
	if err := s.runAdd(ctx, "dev dependencies", append([]string{s.cfg.PoetryCmd, "add", "--group", "dev"}, dev...)); err != nil {
		return err
	}

	return nil
}

// runAdd runs one dependency installation. When the terminal is interactive
// and verbose logging is off, output is captured behind a spinner instead of
// streamed, so the spinner line stays intact.
func (s *Setup) runAdd(ctx context.Context, label string, argv []string) error {
	quiet := s.term.IsTTY && !s.cfg.Verbose && !s.cfg.DryRun

	var sp *progress.Spinner
	if quiet {
		sp = progress.NewSpinner(s.term, "Installing "+label)
		sp.Start()
	}

	_, err := s.runner.Run(ctx, argv, quiet)
	if sp != nil {
		sp.Stop()
	}
	if err != nil {
		return err
	}

	output.PrintSuccess(s.out, label+" installed")
	return nil
}

// generateConfigs invokes the four config generators in canonical order.
func (s *Setup) generateConfigs() error {
	s.step(4, "Writing tool configuration")

	if err := s.generatePyprojectSections(); err != nil {
		return err
	}
	if err := s.writer.Write(s.cfg.PreCommitConfigPath, generate.PreCommitConfig); err != nil {
		return err
	}
	output.PrintSuccess(s.out, s.cfg.PreCommitConfigPath+" written")

	if err := s.writer.EnsureDir(s.cfg.GithubDir); err != nil {
		return err
	}
	if err := s.writer.Write(s.cfg.DependabotPath, generate.DependabotConfig); err != nil {
		return err
	}
	output.PrintSuccess(s.out, s.cfg.DependabotPath+" written")

	if err := s.writer.Write(s.cfg.SecurityPolicyPath, generate.SecurityPolicy); err != nil {
		return err
	}
	output.PrintSuccess(s.out, s.cfg.SecurityPolicyPath+" written")

	return nil
}

// generatePyprojectSections appends the missing tool sections to the project
// descriptor. Existing content is preserved verbatim; a section already
// present (literal substring match) is never appended again.
func (s *Setup) generatePyprojectSections() error {
	existing := ""
	if data, err := os.ReadFile(s.cfg.PyprojectPath); err == nil {
		existing = string(data)
	}

	additions := generate.PyprojectAdditions(existing)
	if additions == "" {
		output.PrintSkipped(s.out, "ruff, mypy and pytest sections already present in "+s.cfg.PyprojectPath)
		return nil
	}

	missing := generate.MissingSections(existing)
	s.logf("appending sections to %s: %s", s.cfg.PyprojectPath, strings.Join(missing, ", "))

	if err := s.writer.Append(s.cfg.PyprojectPath, additions); err != nil {
		return err
	}
	output.PrintSuccess(s.out, fmt.Sprintf("%s updated (%d section(s) added)", s.cfg.PyprojectPath, len(missing)))
	return nil
}

// installHooks activates the pre-commit hooks. Hook installation needs an
// enclosing git work tree, so that is verified first (outside dry-run, which
// never invokes anything and should not fail on repo state).
func (s *Setup) installHooks(ctx context.Context) error {
	s.step(5, "Activating commit hooks")

	if !s.cfg.DryRun {
		inRepo, err := s.repoCheck("")
		if err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "could not detect git repository")
		}
		if !inRepo {
			return errors.NotAGitRepository()
		}
	}

	if _, err := s.runner.Run(ctx, []string{s.cfg.PoetryCmd, "run", "pre-commit", "install"}, false); err != nil {
		return err
	}
	output.PrintSuccess(s.out, "pre-commit hooks installed")
	return nil
}

// printGuidance emits the final success message and follow-up hints.
func (s *Setup) printGuidance() {
	s.step(6, "Done")
	output.PrintSuccess(s.out, "environment configured")
	output.PrintHint(s.out, "Run `poetry shell` to activate the virtual environment")
	output.PrintHint(s.out, "Tip: `poetry config virtualenvs.in-project true` keeps the .venv inside the project")
	output.PrintHint(s.out, "Commit poetry.lock to keep builds reproducible")
}

// step prints the numbered step header, with a dry-run marker when simulating.
func (s *Setup) step(n int, name string) {
	if s.cfg.DryRun {
		name = "[dry-run] " + name
	}
	output.PrintStepHeader(s.out, n, totalSteps, name)
}

// logf emits a verbose log line, prefixed in dry-run mode.
func (s *Setup) logf(format string, args ...interface{}) {
	if !s.cfg.Verbose {
		return
	}
	prefix := ""
	if s.cfg.DryRun {
		prefix = "[dry-run] "
	}
	fmt.Fprintf(s.out, prefix+format+"\n", args...)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
