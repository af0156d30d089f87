package setup

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raveheart1/pystack/internal/config"
	"github.com/raveheart1/pystack/internal/errors"
	"github.com/raveheart1/pystack/internal/generate"
	"github.com/raveheart1/pystack/internal/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records invocations instead of executing anything.
type fakeRunner struct {
	calls      [][]string
	missing    map[string]bool // executables absent from the fake PATH
	failPrefix string          // fail any command whose argv starts with this
}

func (f *fakeRunner) Run(_ context.Context, argv []string, _ bool) (*runner.Result, error) {
	f.calls = append(f.calls, argv)
	if f.failPrefix != "" && strings.HasPrefix(strings.Join(argv, " "), f.failPrefix) {
		return nil, errors.CommandFailed(argv, 1, "boom")
	}
	return &runner.Result{Argv: argv, ExitCode: 0}, nil
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if f.missing[name] {
		return "", fmt.Errorf("%s not found", name)
	}
	return "/usr/bin/" + name, nil
}

func testConfig() *config.Configuration {
	return &config.Configuration{
		PoetryCmd:           "poetry",
		PyprojectPath:       "pyproject.toml",
		PreCommitConfigPath: ".pre-commit-config.yaml",
		GithubDir:           ".github",
		DependabotPath:      filepath.Join(".github", "dependabot.yml"),
		SecurityPolicyPath:  "SECURITY.md",
		BackupSuffix:        ".bak",
	}
}

func newTestSetup(cfg *config.Configuration, r runner.CommandRunner, opts ...Option) *Setup {
	base := []Option{
		WithCapabilities(Capabilities{SupportsUvloop: true}),
		WithRepoCheck(func(string) (bool, error) { return true, nil }),
	}
	return New(cfg, r, &bytes.Buffer{}, append(base, opts...)...)
}

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

func TestRun_FullSequenceOnEmptyProject(t *testing.T) {
	chdirTemp(t)

	fake := &fakeRunner{}
	s := newTestSetup(testConfig(), fake)

	require.NoError(t, s.Run(context.Background()))

	require.Len(t, fake.calls, 4)
	assert.Equal(t, []string{"poetry", "init", "-n"}, fake.calls[0])
	assert.Equal(t, []string{"poetry", "add", "pydantic>=2.0", "orjson", "uvloop"}, fake.calls[1])
	assert.Equal(t, append([]string{"poetry", "add", "--group", "dev"}, DevDependencies()...), fake.calls[2])
	assert.Equal(t, []string{"poetry", "run", "pre-commit", "install"}, fake.calls[3])

	pyproject, err := os.ReadFile("pyproject.toml")
	require.NoError(t, err)
	assert.Contains(t, string(pyproject), generate.SectionRuff)
	assert.Contains(t, string(pyproject), generate.SectionMypy)
	assert.Contains(t, string(pyproject), generate.SectionPytest)

	precommit, err := os.ReadFile(".pre-commit-config.yaml")
	require.NoError(t, err)
	assert.Equal(t, generate.PreCommitConfig, string(precommit))

	dependabot, err := os.ReadFile(filepath.Join(".github", "dependabot.yml"))
	require.NoError(t, err)
	assert.Equal(t, generate.DependabotConfig, string(dependabot))

	security, err := os.ReadFile("SECURITY.md")
	require.NoError(t, err)
	assert.Equal(t, generate.SecurityPolicy, string(security))
}

func TestRun_SkipsInitWhenDescriptorExists(t *testing.T) {
	chdirTemp(t)
	require.NoError(t, os.WriteFile("pyproject.toml", []byte("[tool.poetry]\nname = \"demo\"\n"), 0o644))

	fake := &fakeRunner{}
	s := newTestSetup(testConfig(), fake)

	require.NoError(t, s.Run(context.Background()))

	for _, call := range fake.calls {
		assert.NotContains(t, call, "init", "init must be skipped when the descriptor exists")
	}
	assert.Equal(t, "add", fake.calls[0][1], "first command should install dependencies")

	pyproject, err := os.ReadFile("pyproject.toml")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pyproject), "[tool.poetry]\nname = \"demo\"\n"),
		"pre-existing descriptor content must be preserved verbatim")
}

func TestRun_WindowsExcludesUvloop(t *testing.T) {
	chdirTemp(t)

	fake := &fakeRunner{}
	s := newTestSetup(testConfig(), fake, WithCapabilities(Capabilities{SupportsUvloop: false}))

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []string{"poetry", "add", "pydantic>=2.0", "orjson"}, fake.calls[1])
}

func TestRun_PoetryMissingAborts(t *testing.T) {
	chdirTemp(t)

	fake := &fakeRunner{missing: map[string]bool{"poetry": true}}
	s := newTestSetup(testConfig(), fake)

	err := s.Run(context.Background())
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
	require.NotEmpty(t, cliErr.Remediation)
	assert.Contains(t, cliErr.Remediation[0], "pipx install poetry")

	assert.Empty(t, fake.calls, "no command may run after the poetry check fails")
	_, statErr := os.Stat("pyproject.toml")
	assert.True(t, os.IsNotExist(statErr), "no artifact may be written after the poetry check fails")
}

func TestRun_PoetryMissingWithoutPipxSuggestsDocs(t *testing.T) {
	chdirTemp(t)

	fake := &fakeRunner{missing: map[string]bool{"poetry": true, "pipx": true}}
	s := newTestSetup(testConfig(), fake)

	err := s.Run(context.Background())
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	require.NotEmpty(t, cliErr.Remediation)
	assert.Contains(t, cliErr.Remediation[0], "python-poetry.org")
}

func TestRun_DryRunMutatesNothing(t *testing.T) {
	dir := chdirTemp(t)

	cfg := testConfig()
	cfg.DryRun = true
	cfg.Verbose = true

	repoChecked := false
	fake := &fakeRunner{}
	s := newTestSetup(cfg, fake, WithRepoCheck(func(string) (bool, error) {
		repoChecked = true
		return false, nil
	}))

	require.NoError(t, s.Run(context.Background()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry-run must not create any file or directory")
	assert.False(t, repoChecked, "dry-run must not gate on repository state")
}

func TestRun_SecondRunIsIdempotent(t *testing.T) {
	chdirTemp(t)

	cfg := testConfig()
	require.NoError(t, newTestSetup(cfg, &fakeRunner{}).Run(context.Background()))

	pyprojectBefore, err := os.ReadFile("pyproject.toml")
	require.NoError(t, err)

	fake := &fakeRunner{}
	require.NoError(t, newTestSetup(cfg, fake).Run(context.Background()))

	pyprojectAfter, err := os.ReadFile("pyproject.toml")
	require.NoError(t, err)
	assert.Equal(t, string(pyprojectBefore), string(pyprojectAfter),
		"tool sections must not be appended twice")

	for _, call := range fake.calls {
		assert.NotContains(t, call, "init")
	}

	// Manifests are rewritten, but the prior content survives as a backup.
	backup, err := os.ReadFile(".pre-commit-config.yaml.bak")
	require.NoError(t, err)
	assert.Equal(t, generate.PreCommitConfig, string(backup))
}

func TestRun_ForceSkipsManifestBackups(t *testing.T) {
	chdirTemp(t)

	cfg := testConfig()
	require.NoError(t, newTestSetup(cfg, &fakeRunner{}).Run(context.Background()))

	cfg.Force = true
	require.NoError(t, newTestSetup(cfg, &fakeRunner{}).Run(context.Background()))

	_, err := os.Stat(".pre-commit-config.yaml.bak")
	assert.True(t, os.IsNotExist(err))
}

func TestRun_OutsideGitRepositoryFails(t *testing.T) {
	chdirTemp(t)

	fake := &fakeRunner{}
	s := newTestSetup(testConfig(), fake, WithRepoCheck(func(string) (bool, error) {
		return false, nil
	}))

	err := s.Run(context.Background())
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Prerequisite, cliErr.Category)
	assert.Contains(t, cliErr.Message, "git repository")

	// Init and the two installs ran; hook activation must not have.
	require.Len(t, fake.calls, 3)
	for _, call := range fake.calls {
		assert.NotEqual(t, []string{"poetry", "run", "pre-commit", "install"}, call,
			"hook activation must not run outside a repository")
	}
}

func TestRun_CommandFailureAbortsRemainingSteps(t *testing.T) {
	chdirTemp(t)

	fake := &fakeRunner{failPrefix: "poetry add"}
	s := newTestSetup(testConfig(), fake)

	err := s.Run(context.Background())
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Runtime, cliErr.Category)

	_, statErr := os.Stat("SECURITY.md")
	assert.True(t, os.IsNotExist(statErr), "config generation must not run after a failed install")
}
