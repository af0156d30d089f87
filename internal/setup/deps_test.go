package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductionDependencies(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		caps Capabilities
		want []string
	}{
		"uvloop included when supported": {
			caps: Capabilities{SupportsUvloop: true},
			want: []string{"pydantic>=2.0", "orjson", "uvloop"},
		},
		"uvloop excluded on windows": {
			caps: Capabilities{SupportsUvloop: false},
			want: []string{"pydantic>=2.0", "orjson"},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ProductionDependencies(tt.caps))
		})
	}
}

func TestDevDependencies_MatchesBotManifestGrouping(t *testing.T) {
	t.Parallel()

	deps := DevDependencies()
	assert.Len(t, deps, 9)
	assert.Contains(t, deps, "pre-commit", "hook activation depends on pre-commit being in the dev group")
	assert.Contains(t, deps, "ruff")
	assert.Contains(t, deps, "mypy")
}
