package ports

import "context"

// WebsiteEmails lists public, person-looking email addresses scraped from a
// company's website. Implementations are expected to memoize per domain,
// including empty results, so repeated resolutions don't re-crawl.
type WebsiteEmails interface {
	PublicEmails(ctx context.Context, domain string) ([]string, error)
}

// DevProfileSource looks up a person's publicly listed developer-profile
// email (e.g. GitHub profile or commit author addresses). Only addresses at
// the given company domain root are returned.
type DevProfileSource interface {
	EmailForName(ctx context.Context, fullName, domainRoot string) (string, error)
}
