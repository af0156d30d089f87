package config

import "path/filepath"

// GetDefaults returns the default configuration values.
// The paths match the conventional layout of a Python project.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"dry_run":                false,
		"verbose":                false,
		"force":                  false,
		"poetry_cmd":             "poetry",
		"pyproject_path":         "pyproject.toml",
		"pre_commit_config_path": ".pre-commit-config.yaml",
		"github_dir":             ".github",
		"dependabot_path":        filepath.Join(".github", "dependabot.yml"),
		"security_policy_path":   "SECURITY.md",
		"backup_suffix":          ".bak",
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# pystack configuration
# Place this file at .pystack.yml in the directory you bootstrap.
# Every key can also be set via a PYSTACK_* environment variable,
# e.g. PYSTACK_BACKUP_SUFFIX=.orig

# Run flags (usually set via CLI flags instead)
dry_run: false                           # Simulate only, no writes or commands
verbose: false                           # Detailed step logging
force: false                             # Overwrite configs without .bak backups

# External package manager
poetry_cmd: poetry                       # Executable used for init/add/run

# Generated artifact paths
pyproject_path: pyproject.toml           # Project descriptor
pre_commit_config_path: .pre-commit-config.yaml
github_dir: .github                      # Platform tooling directory
dependabot_path: .github/dependabot.yml  # Dependency-update bot manifest
security_policy_path: SECURITY.md

# Backup files use the original name plus this suffix
backup_suffix: .bak
`
}
