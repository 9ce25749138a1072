// Package website scrapes a company's public pages for email addresses.
package website

import (
	"context"
	"log"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly"

	"github.com/leadflow/contact-research/internal/domain/research"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// commonPages are the paths most likely to list people or contact details.
var commonPages = []string{
	"", "/about", "/about-us", "/team", "/our-team",
	"/contact", "/contact-us", "/careers", "/jobs",
}

// genericLocalParts are role mailboxes filtered out entirely: they are not
// people and would poison name matching downstream.
var genericLocalParts = map[string]struct{}{
	"info": {}, "contact": {}, "hello": {}, "support": {}, "admin": {},
	"sales": {}, "team": {}, "career": {}, "careers": {}, "jobs": {},
	"hr": {}, "office": {}, "press": {}, "marketing": {}, "help": {},
	"noreply": {}, "no-reply": {},
}

var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Scraper implements ports.WebsiteEmails by crawling a fixed set of likely
// pages. Results are cached per domain for the process lifetime — including
// empty results, so a site with no public emails is not re-crawled.
type Scraper struct {
	timeout   time.Duration
	maxEmails int

	mu    sync.Mutex
	cache map[string][]string
}

// NewScraper creates a scraper with the given per-request timeout.
func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{
		timeout:   timeout,
		maxEmails: 10,
		cache:     make(map[string][]string),
	}
}

// Seed pre-loads the cache for a domain. Intended for tests and for callers
// that already scraped the site through another pipeline.
func (s *Scraper) Seed(domain string, emails []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache[domain] = emails
}

// PublicEmails crawls the domain's common pages and returns every
// person-looking address at the company's domain root, sorted, at most
// maxEmails. Per-page fetch failures are skipped silently.
func (s *Scraper) PublicEmails(ctx context.Context, domain string) ([]string, error) {
	s.mu.Lock()
	if cached, ok := s.cache[domain]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	found := make(map[string]struct{})
	root := research.DomainRoot(domain)

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowedDomains(domain, "www."+domain),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnHTML("body", func(e *colly.HTMLElement) {
		for _, raw := range emailPattern.FindAllString(e.Text, -1) {
			if email, ok := keepEmail(raw, root); ok {
				found[email] = struct{}{}
			}
		}
	})
	c.OnHTML("a[href^='mailto:']", func(e *colly.HTMLElement) {
		raw := strings.TrimPrefix(e.Attr("href"), "mailto:")
		if i := strings.IndexByte(raw, '?'); i >= 0 {
			raw = raw[:i]
		}
		if email, ok := keepEmail(raw, root); ok {
			found[email] = struct{}{}
		}
	})

	for _, page := range commonPages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(found) >= s.maxEmails {
			break
		}
		// Unreachable pages are no evidence, not an error.
		_ = c.Visit("https://" + domain + page)
	}

	emails := make([]string, 0, len(found))
	for email := range found {
		emails = append(emails, email)
	}
	sort.Strings(emails)

	s.mu.Lock()
	s.cache[domain] = emails
	s.mu.Unlock()

	if len(emails) > 0 {
		log.Printf("[website] found %d emails on %s", len(emails), domain)
	}
	return emails, nil
}

// keepEmail normalizes a raw address and decides whether it belongs to a
// person at the target company: the mail domain must contain the company's
// domain root, and the local part must not be a generic role alias.
func keepEmail(raw, domainRoot string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if strings.Count(email, "@") != 1 || strings.Contains(email, " ") {
		return "", false
	}
	at := strings.IndexByte(email, '@')
	local, mailDomain := email[:at], email[at+1:]
	if local == "" || !strings.Contains(mailDomain, domainRoot) {
		return "", false
	}
	if _, generic := genericLocalParts[local]; generic {
		return "", false
	}
	return email, true
}
