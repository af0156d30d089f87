package setup

import "runtime"

// Capabilities captures host capabilities resolved once at startup, so the
// dependency list is not assembled from scattered OS checks.
type Capabilities struct {
	// SupportsUvloop is false on Windows, where the uvloop event loop
	// package is unavailable.
	SupportsUvloop bool
}

// DetectCapabilities resolves host capabilities from the running platform.
func DetectCapabilities() Capabilities {
	return Capabilities{
		SupportsUvloop: runtime.GOOS != "windows",
	}
}

// ProductionDependencies returns the fixed production dependency list,
// augmented with uvloop on platforms that support it.
func ProductionDependencies(caps Capabilities) []string {
	deps := []string{"pydantic>=2.0", "orjson"}
	if caps.SupportsUvloop {
		deps = append(deps, "uvloop")
	}
	return deps
}

// DevDependencies returns the fixed development dependency list installed
// into the package manager's dev group.
func DevDependencies() []string {
	return []string{
		"ruff", "mypy", "bandit", "safety", "pre-commit",
		"pytest", "pytest-cov", "py-spy", "semgrep",
	}
}
