package research

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/contact-research/internal/domain"
)

type fakeSite struct {
	emails []string
	err    error
}

func (f fakeSite) PublicEmails(_ context.Context, _ string) ([]string, error) {
	return f.emails, f.err
}

type fakeProfiles struct {
	email string
	err   error
}

func (f fakeProfiles) EmailForName(_ context.Context, _ string, _ string) (string, error) {
	return f.email, f.err
}

func TestFallback_WebsiteMatchWinsOutright(t *testing.T) {
	site := fakeSite{emails: []string{"press@acme.com", "jane.doe@acme.com"}}
	fallback := NewFallback(testPatterns, site, nil, nil)

	result := fallback.FindEmail(context.Background(), "jane", "doe", "acme.com")

	assert.Equal(t, "jane.doe@acme.com", result.Email)
	assert.Equal(t, domain.ConfidenceHigh, result.Confidence)
	assert.Equal(t, domain.MethodWebsiteScrape, result.Method)
	assert.Equal(t, []string{"jane.doe@acme.com"}, result.Candidates)
}

func TestFallback_SMTPVerifiedPattern(t *testing.T) {
	dns := &fakeDNS{mx: map[string][]string{"acme.com": {"mx.acme.com"}}}
	prober := &fakeProber{reachable: true, accepted: map[string]bool{"jane@acme.com": true}}
	verifier := NewSMTPVerifier(dns, prober, 0, false)
	fallback := NewFallback(testPatterns, fakeSite{err: errors.New("site down")}, verifier, nil)

	result := fallback.FindEmail(context.Background(), "jane", "doe", "acme.com")

	assert.Equal(t, "jane@acme.com", result.Email)
	assert.Equal(t, domain.ConfidenceHigh, result.Confidence)
	assert.Equal(t, domain.MethodSMTPVerified, result.Method)
}

func TestFallback_CatchAllDowngradesToPatternGuess(t *testing.T) {
	dns := &fakeDNS{mx: map[string][]string{"acme.com": {"mx.acme.com"}}}
	prober := &fakeProber{reachable: true, acceptAll: true}
	verifier := NewSMTPVerifier(dns, prober, 0, false)
	fallback := NewFallback(testPatterns, nil, verifier, nil)

	result := fallback.FindEmail(context.Background(), "jane", "doe", "acme.com")

	assert.Equal(t, "jane.doe@acme.com", result.Email)
	assert.Equal(t, domain.ConfidenceMedium, result.Confidence)
	assert.Equal(t, domain.MethodPatternGuess, result.Method,
		"acceptance on a catch-all domain must not be reported as verified")
}

func TestFallback_DeveloperProfileHit(t *testing.T) {
	profiles := fakeProfiles{email: "jane@acme.com"}
	fallback := NewFallback(testPatterns, nil, nil, profiles)

	result := fallback.FindEmail(context.Background(), "jane", "doe", "acme.com")

	assert.Equal(t, "jane@acme.com", result.Email)
	assert.Equal(t, domain.ConfidenceMedium, result.Confidence)
	assert.Equal(t, domain.MethodGitHub, result.Method)
	assert.Contains(t, result.Candidates, "jane@acme.com")
}

func TestFallback_NeverEmptyForUsableIdentity(t *testing.T) {
	// No website, no SMTP, no profiles: the best-guess pattern still comes back.
	fallback := NewFallback(testPatterns, nil, nil, nil)

	result := fallback.FindEmail(context.Background(), "jane", "doe", "acme.com")

	require.NotEmpty(t, result.Email)
	assert.Equal(t, "jane.doe@acme.com", result.Email)
	assert.Equal(t, domain.ConfidenceLow, result.Confidence)
	assert.Equal(t, domain.MethodPatternGuess, result.Method)
	assert.Len(t, result.Candidates, 6)
}

func TestFallback_UnusableIdentity(t *testing.T) {
	fallback := NewFallback(testPatterns, nil, nil, nil)

	result := fallback.FindEmail(context.Background(), "", "doe", "acme.com")

	assert.Empty(t, result.Email)
	assert.Equal(t, domain.ConfidenceLow, result.Confidence)
	assert.Empty(t, result.Candidates)
}
