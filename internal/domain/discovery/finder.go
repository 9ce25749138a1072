// Package discovery resolves a company name to its primary internet domain.
//
// It chains strategies from most to least reliable: a validated hint from the
// source post, search-engine discovery, and DNS probing of name-derived slugs
// across common TLDs. The whole chain is retried across company-name variants
// ("Tactful AI" -> "Tactful") because social handles and registered domains
// frequently disagree about suffixes.
package discovery

import (
	"context"
	"log"
	"net/url"
	"regexp"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/net/publicsuffix"

	"github.com/leadflow/contact-research/internal/ports"
)

// skipDomains are aggregators, media, and platform sites that search engines
// rank above small company homepages. A result landing on one of these is
// never the company's own domain.
var skipDomains = map[string]struct{}{
	"google.com":     {},
	"wikipedia.org":  {},
	"linkedin.com":   {},
	"facebook.com":   {},
	"twitter.com":    {},
	"x.com":          {},
	"crunchbase.com": {},
	"glassdoor.com":  {},
	"indeed.com":     {},
	"youtube.com":    {},
	"github.com":     {},
	"bloomberg.com":  {},
	"techcrunch.com": {},
	"forbes.com":     {},
	"reuters.com":    {},
	"bing.com":       {},
	"duckduckgo.com": {},
	"reddit.com":     {},
	"quora.com":      {},
	"medium.com":     {},
	"apple.com":      {},
	"amazon.com":     {},
}

var wordPattern = regexp.MustCompile(`[a-z0-9]+`)

// Finder resolves company names to domains using a prioritized strategy
// chain. Results are cached by lowercased company name for the process
// lifetime and never invalidated.
type Finder struct {
	engines []ports.SearchEngine
	dns     ports.NameResolver
	tlds    []string
	cache   map[string]string
}

// NewFinder creates a finder. engines are tried in priority order; tlds is
// the probe list for DNS brute-forcing (entries include the leading dot).
func NewFinder(engines []ports.SearchEngine, dns ports.NameResolver, tlds []string) *Finder {
	return &Finder{
		engines: engines,
		dns:     dns,
		tlds:    tlds,
		cache:   make(map[string]string),
	}
}

// FindDomain returns the primary web domain for a company, or "" when every
// strategy fails. Callers must treat "" as "skip this company", not retry.
func (f *Finder) FindDomain(ctx context.Context, companyName, domainHint string) string {
	key := strings.ToLower(strings.TrimSpace(companyName))
	if cached, ok := f.cache[key]; ok {
		return cached
	}

	var found string
	if domainHint != "" {
		found = f.validateHint(ctx, domainHint, companyName)
		if found != "" {
			log.Printf("[domain] %q via hint: %s", companyName, found)
		}
	}

	if found == "" {
		for _, variant := range NameVariants(companyName) {
			if found = f.searchDiscover(ctx, variant); found != "" {
				log.Printf("[domain] %q via search (as %q): %s", companyName, variant, found)
				break
			}
			if found = f.dnsProbe(ctx, variant); found != "" {
				log.Printf("[domain] %q via DNS probe (as %q): %s", companyName, variant, found)
				break
			}
		}
	}

	if found == "" {
		log.Printf("[domain] could not find domain for %q", companyName)
		return ""
	}
	f.cache[key] = found
	return found
}

// validateHint confirms a hinted domain resolves in DNS. The hint carries
// strong contextual evidence from the source post, so it is accepted even
// when it does not lexically resemble the company name; the mismatch is only
// logged.
func (f *Finder) validateHint(ctx context.Context, hint, companyName string) string {
	hint = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(hint)), "www.")
	if hint == "" || !strings.Contains(hint, ".") {
		return ""
	}
	if !f.dns.Resolves(ctx, hint) {
		return ""
	}

	nameSlug := slugOf(companyName)
	hintSlug := slugOf(strings.SplitN(hint, ".", 2)[0])
	related := len(nameSlug) >= 3 &&
		(strings.Contains(nameSlug, hintSlug) || strings.Contains(hintSlug, nameSlug) ||
			levenshtein.ComputeDistance(nameSlug, hintSlug) <= 2)
	if !related {
		log.Printf("[domain] hint %s doesn't match company %q, accepting anyway", hint, companyName)
	}
	return hint
}

// searchDiscover queries the engines for the company's official website and
// takes the first result domain that isn't a known aggregator.
func (f *Finder) searchDiscover(ctx context.Context, companyName string) string {
	query := companyName + " official website"
	for _, engine := range f.engines {
		links, err := engine.Links(ctx, query, 10)
		if err != nil {
			log.Printf("[domain] %s search failed: %v", engine.Name(), err)
			continue
		}
		for _, link := range links {
			if d := domainFromURL(link); d != "" && !isSkipDomain(d) {
				return d
			}
		}
	}
	return ""
}

// dnsProbe derives slug variants from the company name and tests each against
// the common TLD list, e.g. "Scale AI" -> scaleai.com, scale.com, scale-ai.com...
func (f *Finder) dnsProbe(ctx context.Context, companyName string) string {
	words := wordPattern.FindAllString(strings.ToLower(companyName), -1)
	if len(words) == 0 {
		return ""
	}

	var slugs []string
	seen := make(map[string]struct{})
	addSlug := func(s string) {
		if len(s) < 2 {
			return
		}
		if _, dup := seen[s]; dup {
			return
		}
		seen[s] = struct{}{}
		slugs = append(slugs, s)
	}

	addSlug(strings.Join(words, ""))
	addSlug(words[0])
	if len(words) > 1 {
		addSlug(strings.Join(words, "-"))
		addSlug(words[0] + words[1])
	}

	for _, slug := range slugs {
		for _, tld := range f.tlds {
			candidate := slug + tld
			if f.dns.Resolves(ctx, candidate) {
				return candidate
			}
		}
	}
	return ""
}

// domainFromURL extracts a clean host from a result link, or "".
func domainFromURL(link string) string {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ""
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	if !strings.Contains(host, ".") {
		return ""
	}
	return host
}

// isSkipDomain checks the registrable part of a host against the denylist, so
// "html.duckduckgo.com" is rejected just like "duckduckgo.com".
func isSkipDomain(host string) bool {
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		registrable = host
	}
	_, skip := skipDomains[registrable]
	return skip
}

func slugOf(s string) string {
	return strings.Join(wordPattern.FindAllString(strings.ToLower(s), -1), "")
}
