package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// No t.Parallel: Load reads the working directory and environment.
	chdirTemp(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.Force)
	assert.Equal(t, "poetry", cfg.PoetryCmd)
	assert.Equal(t, "pyproject.toml", cfg.PyprojectPath)
	assert.Equal(t, ".pre-commit-config.yaml", cfg.PreCommitConfigPath)
	assert.Equal(t, ".github", cfg.GithubDir)
	assert.Equal(t, filepath.Join(".github", "dependabot.yml"), cfg.DependabotPath)
	assert.Equal(t, "SECURITY.md", cfg.SecurityPolicyPath)
	assert.Equal(t, ".bak", cfg.BackupSuffix)
}

func TestLoad_ProjectConfigOverridesDefaults(t *testing.T) {
	dir := chdirTemp(t)

	content := "poetry_cmd: poetry2\nbackup_suffix: .orig\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pystack.yml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "poetry2", cfg.PoetryCmd)
	assert.Equal(t, ".orig", cfg.BackupSuffix)
	assert.Equal(t, "pyproject.toml", cfg.PyprojectPath, "untouched keys keep their defaults")
}

func TestLoad_EnvironmentOverridesProjectConfig(t *testing.T) {
	dir := chdirTemp(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pystack.yml"), []byte("backup_suffix: .orig\n"), 0o644))
	t.Setenv("PYSTACK_BACKUP_SUFFIX", ".save")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ".save", cfg.BackupSuffix)
}

func TestLoad_CustomConfigPath(t *testing.T) {
	dir := chdirTemp(t)

	path := filepath.Join(dir, "custom.yml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestLoad_MissingCustomConfigPathFails(t *testing.T) {
	chdirTemp(t)

	_, err := Load("does-not-exist.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yml")
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := map[string]string{
		"empty poetry command": "poetry_cmd: \"\"\n",
		"empty pyproject path": "pyproject_path: \"\"\n",
		"empty backup suffix":  "backup_suffix: \"\"\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			dir := chdirTemp(t)
			require.NoError(t, os.WriteFile(filepath.Join(dir, ".pystack.yml"), []byte(content), 0o644))

			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestGetDefaultConfigTemplate_CoversAllKeys(t *testing.T) {
	t.Parallel()

	template := GetDefaultConfigTemplate()
	for key := range GetDefaults() {
		assert.Contains(t, template, key, "template should document every config key")
	}
}

// chdirTemp switches the working directory to a fresh temp dir for the test.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})
	return dir
}
