package research

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testPatterns = []string{
	"{first}.{last}@{domain}",
	"{first}@{domain}",
	"{first}{last}@{domain}",
	"{f}{last}@{domain}",
	"{f}.{last}@{domain}",
	"{last}@{domain}",
}

func TestBuildCandidates(t *testing.T) {
	candidates := BuildCandidates("jane", "doe", "example.com", testPatterns)

	assert.Equal(t, []string{
		"jane.doe@example.com",
		"jane@example.com",
		"janedoe@example.com",
		"jdoe@example.com",
		"j.doe@example.com",
		"doe@example.com",
	}, candidates)
}

func TestBuildCandidates_Properties(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{"common name", "jane", "doe"},
		{"single-letter first", "j", "doe"},
		{"same first and last", "jane", "jane"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := BuildCandidates(tt.first, tt.last, "example.com", testPatterns)

			assert.NotEmpty(t, candidates)
			seen := make(map[string]struct{})
			for _, c := range candidates {
				assert.True(t, strings.HasSuffix(c, "@example.com"), "candidate %q not at target domain", c)
				_, dup := seen[c]
				assert.False(t, dup, "duplicate candidate %q", c)
				seen[c] = struct{}{}
			}
		})
	}
}

func TestBuildCandidates_EmptyFirstName(t *testing.T) {
	assert.Empty(t, BuildCandidates("", "doe", "example.com", testPatterns))
}

func TestBuildCandidates_NoPatternsSynthesizesFallback(t *testing.T) {
	candidates := BuildCandidates("jane", "doe", "example.com", nil)
	assert.Equal(t, []string{"jane@example.com"}, candidates)
}

func TestBuildCandidates_DuplicatePatternsCollapse(t *testing.T) {
	patterns := []string{"{first}@{domain}", "{first}@{domain}"}
	candidates := BuildCandidates("jane", "doe", "example.com", patterns)
	assert.Equal(t, []string{"jane@example.com"}, candidates)
}
