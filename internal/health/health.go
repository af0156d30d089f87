// Package health provides dependency health checks for pystack. It validates
// that the external tools the bootstrap relies on are available, returning
// structured reports used by the 'pystack doctor' command.
package health

import (
	"os/exec"

	"github.com/raveheart1/pystack/internal/config"
	"github.com/raveheart1/pystack/internal/git"
)

// CheckResult represents the result of a single health check.
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
	// Advisory checks are reported but do not fail the overall report.
	Advisory bool
}

// HealthReport contains all health check results.
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// LookPathFunc locates an executable on the search path. Injectable for tests.
type LookPathFunc func(name string) (string, error)

// RepoCheckFunc reports whether the working directory is inside a git
// repository. Injectable for tests.
type RepoCheckFunc func(path string) (bool, error)

// RunHealthChecks runs all health checks and returns a report.
func RunHealthChecks(cfg *config.Configuration) *HealthReport {
	return RunHealthChecksWith(cfg, exec.LookPath, git.IsRepository)
}

// RunHealthChecksWith runs all health checks with injectable lookups.
func RunHealthChecksWith(cfg *config.Configuration, lookPath LookPathFunc, repoCheck RepoCheckFunc) *HealthReport {
	report := &HealthReport{Passed: true}

	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed && !c.Advisory {
			report.Passed = false
		}
	}

	add(checkTool(lookPath, cfg.PoetryCmd, "Poetry", false))
	add(checkTool(lookPath, "pipx", "pipx", true))
	add(checkTool(lookPath, "pre-commit", "pre-commit", true))
	add(checkGitRepository(repoCheck))

	return report
}

// checkTool checks whether an executable is on the search path.
func checkTool(lookPath LookPathFunc, executable, name string, advisory bool) CheckResult {
	if _, err := lookPath(executable); err != nil {
		return CheckResult{
			Name:     name,
			Passed:   false,
			Message:  executable + " not found in PATH",
			Advisory: advisory,
		}
	}
	return CheckResult{
		Name:     name,
		Passed:   true,
		Message:  executable + " found",
		Advisory: advisory,
	}
}

// checkGitRepository checks that the working directory is inside a git work
// tree, which hook activation requires.
func checkGitRepository(repoCheck RepoCheckFunc) CheckResult {
	inRepo, err := repoCheck("")
	if err != nil {
		return CheckResult{Name: "Git repository", Passed: false, Message: err.Error()}
	}
	if !inRepo {
		return CheckResult{
			Name:    "Git repository",
			Passed:  false,
			Message: "not inside a git repository (run 'git init')",
		}
	}
	return CheckResult{Name: "Git repository", Passed: true, Message: "repository detected"}
}
