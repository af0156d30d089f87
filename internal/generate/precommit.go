package generate

// PreCommitConfig is the fixed pre-commit hook manifest. It wires the same
// tool set the dev dependency group installs: hygiene hooks, ruff
// lint/format, mypy, and the security scanners.
const PreCommitConfig = `repos:
  - repo: https://github.com/pre-commit/pre-commit-hooks
    rev: v4.6.0
    hooks:
      - id: trailing-whitespace
      - id: end-of-file-fixer
      - id: check-yaml
      - id: check-added-large-files
  - repo: https://github.com/astral-sh/ruff-pre-commit
    rev: 'v0.4.4'
    hooks:
      - id: ruff
        args: [--fix, --exit-non-zero-on-fix]
      - id: ruff-format
  - repo: https://github.com/pre-commit/mirrors-mypy
    rev: 'v1.10.0'
    hooks:
      - id: mypy
  - repo: https://github.com/PyCQA/bandit
    rev: '1.7.9'
    hooks:
      - id: bandit
        args: ["-r", "."]
  - repo: https://github.com/pycqa/safety
    rev: '3.2.3'
    hooks:
      - id: safety
        args: ["--full-report"]
  - repo: https://github.com/semgrep/pre-commit
    rev: 'v1.69.1'
    hooks:
      - id: semgrep
        args: ['--config=auto']
`
