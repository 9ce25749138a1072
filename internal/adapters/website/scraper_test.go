package website

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeepEmail(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		root     string
		expected string
		kept     bool
	}{
		{"personal address at company", "Jane.Doe@Acme.com", "acme", "jane.doe@acme.com", true},
		{"subdomain still matches root", "jane@mail.acme.com", "acme", "jane@mail.acme.com", true},
		{"foreign domain rejected", "jane@gmail.com", "acme", "", false},
		{"generic role alias rejected", "info@acme.com", "acme", "", false},
		{"noreply rejected", "noreply@acme.com", "acme", "", false},
		{"double at rejected", "jane@@acme.com", "acme", "", false},
		{"embedded space rejected", "jane doe@acme.com", "acme", "", false},
		{"empty local part rejected", "@acme.com", "acme", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			email, kept := keepEmail(tt.raw, tt.root)
			assert.Equal(t, tt.kept, kept)
			assert.Equal(t, tt.expected, email)
		})
	}
}

func TestPublicEmails_SeededCache(t *testing.T) {
	scraper := NewScraper(time.Second)
	scraper.Seed("acme.com", []string{"jane.doe@acme.com"})

	emails, err := scraper.PublicEmails(context.Background(), "acme.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"jane.doe@acme.com"}, emails)
}

func TestPublicEmails_EmptySeedIsServedFromCache(t *testing.T) {
	// A domain known to publish nothing must not trigger a crawl.
	scraper := NewScraper(time.Second)
	scraper.Seed("quiet.example", []string{})

	emails, err := scraper.PublicEmails(context.Background(), "quiet.example")

	require.NoError(t, err)
	assert.Empty(t, emails)
}

func TestPublicEmails_CancelledContext(t *testing.T) {
	scraper := NewScraper(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := scraper.PublicEmails(ctx, "acme.invalid")

	assert.Error(t, err)
}

func TestEmailPattern(t *testing.T) {
	text := "Reach jane.doe@acme.com or call us. Legal: legal+notices@acme.co.uk."

	matches := emailPattern.FindAllString(text, -1)

	assert.Equal(t, []string{"jane.doe@acme.com", "legal+notices@acme.co.uk"}, matches)
}
