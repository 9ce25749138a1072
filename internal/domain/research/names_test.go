package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name          string
		full          string
		expectedFirst string
		expectedLast  string
	}{
		{"Simple name", "Jane Doe", "jane", "doe"},
		{"Middle name dropped", "Jane Marie Doe", "jane", "doe"},
		{"Single name", "Jane", "jane", ""},
		{"Extra whitespace", "  Jane   Doe  ", "jane", "doe"},
		{"Punctuation stripped", "Jean-Luc O'Neill", "jeanluc", "oneill"},
		{"Digits stripped", "Jane2 Doe3", "jane", "doe"},
		{"Empty input", "", "", ""},
		{"Non-Latin only", "李 王", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitName(tt.full)
			assert.Equal(t, tt.expectedFirst, first)
			assert.Equal(t, tt.expectedLast, last)
		})
	}
}

func TestMatchKnownEmail(t *testing.T) {
	emails := []string{
		"press@acme.com",
		"jane.doe@acme.com",
		"bob@acme.com",
	}

	tests := []struct {
		name     string
		first    string
		last     string
		expected string
	}{
		{"first.last match", "jane", "doe", "jane.doe@acme.com"},
		{"bare first name match", "bob", "smith", "bob@acme.com"},
		{"no match", "carol", "jones", ""},
		{"empty first name", "", "doe", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matchKnownEmail(tt.first, tt.last, emails))
		})
	}

	t.Run("containment beats equality", func(t *testing.T) {
		// Sites decorate local parts; jdoe-style initial matching still hits.
		got := matchKnownEmail("jane", "doe", []string{"jdoe-hr@acme.com"})
		assert.Equal(t, "jdoe-hr@acme.com", got)
	})
}

func TestDomainRoot(t *testing.T) {
	tests := []struct {
		domain   string
		expected string
	}{
		{"acme.com", "acme"},
		{"acme.ai", "acme"},
		{"mail.acme.co.uk", "acme"},
		{"acme", "acme"},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			assert.Equal(t, tt.expected, DomainRoot(tt.domain))
		})
	}
}
