package research

import (
	"context"
	"log"

	"github.com/leadflow/contact-research/internal/ports"
)

// WebsiteCollector matches public addresses scraped from the company website
// against the person's naming conventions. This is the strongest signal we
// have: an address the company itself published.
type WebsiteCollector struct {
	source ports.WebsiteEmails
}

// NewWebsiteCollector creates a collector backed by a website email source
func NewWebsiteCollector(source ports.WebsiteEmails) *WebsiteCollector {
	return &WebsiteCollector{source: source}
}

// Name returns the evidence source name
func (c *WebsiteCollector) Name() string {
	return "website_scrape"
}

// Collect scrapes the target website and reports the first address that looks
// like it belongs to the probed person.
func (c *WebsiteCollector) Collect(ctx context.Context, probe *Probe) []Evidence {
	emails, err := c.source.PublicEmails(ctx, probe.Domain)
	if err != nil {
		log.Printf("[website] scrape of %s unavailable: %v", probe.Domain, err)
		return nil
	}
	match := matchKnownEmail(probe.First, probe.Last, emails)
	if match == "" {
		return nil
	}
	return []Evidence{{Candidate: match, Reason: ReasonWebsiteMatch}}
}
