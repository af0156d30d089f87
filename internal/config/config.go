// Package config provides configuration management for pystack using koanf.
// Configuration is loaded with priority: environment variables > project
// config (.pystack.yml) > defaults, then unmarshaled into an immutable
// Configuration struct that is passed explicitly into every component.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the pystack run configuration.
// The boolean run flags are normally set from CLI flags; the remaining
// fields carry the target paths and tool names with their conventional
// defaults, overridable per project.
type Configuration struct {
	// DryRun simulates the run: no filesystem writes, no process execution.
	DryRun bool `koanf:"dry_run"`
	// Verbose enables detailed step logging.
	Verbose bool `koanf:"verbose"`
	// Force overwrites existing config files without creating backups.
	Force bool `koanf:"force"`

	// PoetryCmd is the package manager executable to invoke.
	PoetryCmd string `koanf:"poetry_cmd"`
	// PyprojectPath is the project descriptor consumed by the package manager.
	PyprojectPath string `koanf:"pyproject_path"`
	// PreCommitConfigPath is the pre-commit hook manifest.
	PreCommitConfigPath string `koanf:"pre_commit_config_path"`
	// GithubDir is the platform tooling directory holding the bot manifest.
	GithubDir string `koanf:"github_dir"`
	// DependabotPath is the dependency-update bot manifest.
	DependabotPath string `koanf:"dependabot_path"`
	// SecurityPolicyPath is the security policy document.
	SecurityPolicyPath string `koanf:"security_policy_path"`
	// BackupSuffix is appended to a file's name when it is backed up
	// before an overwrite.
	BackupSuffix string `koanf:"backup_suffix"`
}

// Load loads configuration from defaults, the project config file, and the
// environment. Priority: environment variables > project config > defaults.
// An empty projectConfigPath uses the conventional .pystack.yml location;
// a missing file is not an error.
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("PYSTACK_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadProjectConfig loads the project-level YAML config when present.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	path := ProjectConfigPath()
	if customPath != "" {
		path = customPath
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if customPath != "" {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		return nil
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load project config %s: %w", path, err)
	}
	return nil
}

// validate rejects configuration values the rest of the tool cannot work with.
func validate(cfg *Configuration) error {
	if strings.TrimSpace(cfg.PoetryCmd) == "" {
		return fmt.Errorf("poetry_cmd must not be empty")
	}
	if strings.TrimSpace(cfg.PyprojectPath) == "" {
		return fmt.Errorf("pyproject_path must not be empty")
	}
	if strings.TrimSpace(cfg.BackupSuffix) == "" {
		return fmt.Errorf("backup_suffix must not be empty")
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: PYSTACK_BACKUP_SUFFIX -> backup_suffix
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PYSTACK_"))
}
