package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadflow/contact-research/internal/domain"
)

type fakeFinder struct {
	domains map[string]string
	calls   int
}

func (f *fakeFinder) FindDomain(_ context.Context, companyName, _ string) string {
	f.calls++
	return f.domains[companyName]
}

type fakeResolver struct {
	resolution domain.Resolution
}

func (f *fakeResolver) FindBestEmail(_ context.Context, _, _, _, _ string) domain.Resolution {
	return f.resolution
}

type fakeStore struct {
	saved   []*domain.ResolvedContact
	saveErr error
}

func (f *fakeStore) SaveContact(_ context.Context, contact *domain.ResolvedContact) error {
	f.saved = append(f.saved, contact)
	return f.saveErr
}

func (f *fakeStore) RecentContacts(_ context.Context, _ int) ([]domain.ResolvedContact, error) {
	return nil, nil
}

func (f *fakeStore) Close() error { return nil }

func testLead() domain.Lead {
	return domain.Lead{
		FullName:    "Jane Doe",
		RoleTitle:   "CTO",
		CompanyName: "Acme",
		SourceURL:   "https://x.com/acme/status/123",
	}
}

func testResolution() domain.Resolution {
	return domain.Resolution{
		Email:      "jane.doe@acme.com",
		Confidence: domain.ConfidenceHigh,
		Candidates: []string{"jane.doe@acme.com"},
		Method:     domain.MethodWebsiteScrape,
	}
}

func TestResearchLead_Success(t *testing.T) {
	finder := &fakeFinder{domains: map[string]string{"Acme": "acme.com"}}
	store := &fakeStore{}
	service := NewResearchService(finder, &fakeResolver{resolution: testResolution()}, store)

	contact, err := service.ResearchLead(context.Background(), testLead())

	require.NoError(t, err)
	require.NotNil(t, contact)
	assert.Equal(t, "Jane Doe", contact.FullName)
	assert.Equal(t, "acme.com", contact.CompanyDomain)
	assert.Equal(t, "jane.doe@acme.com", contact.Email)
	assert.Equal(t, domain.ConfidenceHigh, contact.Confidence)
	assert.Equal(t, domain.MethodWebsiteScrape, contact.Method)
	assert.NotZero(t, contact.ID)
	assert.False(t, contact.ResolvedAt.IsZero())
	require.Len(t, store.saved, 1)
	assert.Equal(t, contact, store.saved[0])
}

func TestResearchLead_DuplicateSkipped(t *testing.T) {
	finder := &fakeFinder{domains: map[string]string{"Acme": "acme.com"}}
	service := NewResearchService(finder, &fakeResolver{resolution: testResolution()}, nil)

	first, err := service.ResearchLead(context.Background(), testLead())
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := service.ResearchLead(context.Background(), testLead())
	require.NoError(t, err)
	assert.Nil(t, second)
	assert.Equal(t, 1, finder.calls, "duplicate lead must not trigger research")
}

func TestResearchLead_NoDomainFound(t *testing.T) {
	service := NewResearchService(&fakeFinder{}, &fakeResolver{}, nil)

	contact, err := service.ResearchLead(context.Background(), testLead())

	assert.Error(t, err)
	assert.Nil(t, contact)
}

func TestResearchLead_UnusableIdentity(t *testing.T) {
	finder := &fakeFinder{domains: map[string]string{"Acme": "acme.com"}}
	resolver := &fakeResolver{resolution: domain.Resolution{Confidence: domain.ConfidenceLow}}
	service := NewResearchService(finder, resolver, nil)

	contact, err := service.ResearchLead(context.Background(), testLead())

	assert.NoError(t, err)
	assert.Nil(t, contact)
}

func TestResearchLead_StoreFailureIsNotFatal(t *testing.T) {
	finder := &fakeFinder{domains: map[string]string{"Acme": "acme.com"}}
	store := &fakeStore{saveErr: errors.New("connection reset")}
	service := NewResearchService(finder, &fakeResolver{resolution: testResolution()}, store)

	contact, err := service.ResearchLead(context.Background(), testLead())

	require.NoError(t, err)
	assert.NotNil(t, contact)
}

func TestResearchLeads_PartialSuccess(t *testing.T) {
	finder := &fakeFinder{domains: map[string]string{"Acme": "acme.com"}}
	service := NewResearchService(finder, &fakeResolver{resolution: testResolution()}, nil)

	leads := []domain.Lead{
		{FullName: "Jane Doe", CompanyName: "Acme", SourceURL: "https://x.com/1"},
		{FullName: "Bob Roe", CompanyName: "Ghost Startup", SourceURL: "https://x.com/2"},
		{FullName: "Carol Poe", CompanyName: "Acme", SourceURL: "https://x.com/3"},
	}

	contacts := service.ResearchLeads(context.Background(), leads)

	require.Len(t, contacts, 2)
	assert.Equal(t, "Jane Doe", contacts[0].FullName)
	assert.Equal(t, "Carol Poe", contacts[1].FullName)
}

func TestFingerprint(t *testing.T) {
	withSource := domain.Lead{FullName: "Jane Doe", CompanyName: "Acme", SourceURL: "https://x.com/1"}
	withoutSource := domain.Lead{FullName: "Jane Doe", CompanyName: "Acme"}

	assert.Len(t, Fingerprint(withSource), 16)
	assert.Equal(t, Fingerprint(withSource), Fingerprint(withSource))
	assert.NotEqual(t, Fingerprint(withSource), Fingerprint(withoutSource))

	// Without a source URL, identity falls back to name and company.
	sameIdentity := domain.Lead{FullName: "Jane Doe", CompanyName: "Acme", RoleTitle: "CTO"}
	assert.Equal(t, Fingerprint(withoutSource), Fingerprint(sameIdentity))
}
