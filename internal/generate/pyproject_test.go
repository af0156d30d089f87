package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPyprojectAdditions_AllSectionsPresent(t *testing.T) {
	t.Parallel()

	existing := strings.Join([]string{SectionRuff, SectionMypy, SectionPytest}, "\n")

	assert.Empty(t, PyprojectAdditions(existing), "nothing should be appended when all sections exist")
	assert.Empty(t, MissingSections(existing))
}

func TestPyprojectAdditions_EmptyDescriptor(t *testing.T) {
	t.Parallel()

	additions := PyprojectAdditions("")

	assert.Equal(t, ruffSection+mypySection+pytestSection, additions,
		"an empty descriptor gets all three canonical blocks in order")
}

func TestPyprojectAdditions_SingleMissingSection(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		present []string
		want    string
	}{
		"only ruff missing": {
			present: []string{SectionMypy, SectionPytest},
			want:    ruffSection,
		},
		"only mypy missing": {
			present: []string{SectionRuff, SectionPytest},
			want:    mypySection,
		},
		"only pytest missing": {
			present: []string{SectionRuff, SectionMypy},
			want:    pytestSection,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			existing := strings.Join(tt.present, "\n")
			assert.Equal(t, tt.want, PyprojectAdditions(existing),
				"exactly the missing section's canonical text should be returned")
		})
	}
}

func TestMissingSections_CanonicalOrder(t *testing.T) {
	t.Parallel()

	missing := MissingSections("")
	assert.Equal(t, []string{SectionRuff, SectionMypy, SectionPytest}, missing)
}

func TestPyprojectAdditions_IdempotentAfterAppend(t *testing.T) {
	t.Parallel()

	existing := "[tool.poetry]\nname = \"demo\"\n"
	appended := existing + PyprojectAdditions(existing)

	assert.Empty(t, PyprojectAdditions(appended),
		"appending the additions must make a second pass a no-op")
}

func TestSectionBlocks_ContainTheirHeaders(t *testing.T) {
	t.Parallel()

	// The substring-presence invariant only holds if each canonical block
	// contains the header it is checked by.
	assert.Contains(t, ruffSection, SectionRuff)
	assert.Contains(t, mypySection, SectionMypy)
	assert.Contains(t, pytestSection, SectionPytest)
}
