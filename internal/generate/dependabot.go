package generate

// DependabotConfig is the fixed dependency-update bot manifest. The
// dev-dependencies group matches the tooling installed into the dev group,
// and github-actions updates are checked on the same daily schedule.
const DependabotConfig = `version: 2
updates:
  - package-ecosystem: "pip"
    directory: "/"
    schedule:
      interval: "daily"
    groups:
      dev-dependencies:
        patterns:
          - "ruff"
          - "mypy"
          - "bandit"
          - "safety"
          - "pytest*"
          - "pre-commit"
          - "semgrep"
          - "py-spy"
  - package-ecosystem: "github-actions"
    directory: "/"
    schedule:
      interval: "daily"
`
