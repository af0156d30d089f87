// Package generate produces the configuration content pystack writes into a
// project: pyproject tool sections, the pre-commit hook manifest, the
// dependabot manifest, and the security policy. Generators are pure: they map
// existing content to the text that should be written, without touching the
// filesystem.
package generate

import "strings"

// Tool section headers checked for in pyproject.toml. Presence is a literal
// substring check, not a TOML parse; a section is never appended twice.
const (
	SectionRuff   = "[tool.ruff]"
	SectionMypy   = "[tool.mypy]"
	SectionPytest = "[tool.pytest.ini_options]"
)

// ruffSection is the canonical ruff configuration block.
const ruffSection = `
# --- Code quality tooling ---
[tool.ruff]
line-length = 88
select = [
    "F", "E", "W", "I", "N", "D", "Q", "S", "B", "A", "C4", "T20", "SIM", "PTH",
    "TID", "ARG", "PIE", "PLC", "PLE", "PLR", "PLW", "RUF"
]
ignore = ["D203", "D212", "D213", "D416", "D417", "B905"]

[tool.ruff.mccabe]
max-complexity = 10
`

// mypySection is the canonical mypy configuration block.
const mypySection = `
[tool.mypy]
python_version = "3.10"
warn_return_any = true
warn_unused_configs = true
disallow_untyped_defs = true
disallow_any_unimported = true
no_implicit_optional = true
check_untyped_defs = true
strict_optional = true
strict_equality = true
`

// pytestSection is the canonical pytest configuration block.
const pytestSection = `
[tool.pytest.ini_options]
testpaths = ["tests"]
addopts = "-v --cov=."
`

// toolSection pairs a section header with its canonical block.
type toolSection struct {
	Header string
	Block  string
}

// toolSections lists the sections in their canonical append order.
var toolSections = []toolSection{
	{SectionRuff, ruffSection},
	{SectionMypy, mypySection},
	{SectionPytest, pytestSection},
}

// PyprojectAdditions returns the canonical text blocks for every tool section
// missing from the existing pyproject content, in canonical order. An empty
// return value means all sections are already present and nothing should be
// written. Existing content is never modified, only appended to.
func PyprojectAdditions(existing string) string {
	var sb strings.Builder
	for _, s := range toolSections {
		if !strings.Contains(existing, s.Header) {
			sb.WriteString(s.Block)
		}
	}
	return sb.String()
}

// MissingSections returns the headers of sections absent from existing,
// in canonical order. Used for reporting.
func MissingSections(existing string) []string {
	var missing []string
	for _, s := range toolSections {
		if !strings.Contains(existing, s.Header) {
			missing = append(missing, s.Header)
		}
	}
	return missing
}
