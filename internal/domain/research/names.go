package research

import (
	"strings"

	"golang.org/x/net/publicsuffix"
)

// genericAliases are role mailboxes that can never belong to a specific
// person; candidates landing on one of these are penalized.
var genericAliases = map[string]struct{}{
	"admin":   {},
	"contact": {},
	"careers": {},
	"jobs":    {},
	"hr":      {},
}

// SplitName normalizes a full name into lowercase, alphabetic-only first and
// last parts. Middle names are dropped: the last whitespace-separated token is
// taken as the surname.
func SplitName(full string) (first, last string) {
	fields := strings.Fields(full)
	if len(fields) == 0 {
		return "", ""
	}
	first = normalizePart(fields[0])
	if len(fields) > 1 {
		last = normalizePart(fields[len(fields)-1])
	}
	return first, last
}

// normalizePart lowercases a name token and strips everything outside a-z.
// Diacritics and non-Latin characters are dropped rather than transliterated;
// a name that normalizes to nothing means the identity is unusable.
func normalizePart(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i >= 0 {
		return email[:i]
	}
	return email
}

// DomainRoot returns the registrable base label of a domain, e.g.
// "mail.acme.ai" -> "acme". Used to match scraped addresses against the target
// company when subdomains or alternate TLDs are in play.
func DomainRoot(domain string) string {
	if etld, err := publicsuffix.EffectiveTLDPlusOne(domain); err == nil {
		domain = etld
	}
	if i := strings.IndexByte(domain, '.'); i > 0 {
		return domain[:i]
	}
	return domain
}

// matchKnownEmail returns the first scraped email whose local part contains
// one of the person's naming conventions. Containment, not equality: sites
// publish "jane.doe-hr@", "j.doe@" and similar variations.
func matchKnownEmail(first, last string, emails []string) string {
	if first == "" {
		return ""
	}
	for _, email := range emails {
		local := strings.ToLower(localPart(email))
		if first != "" && last != "" {
			switch {
			case strings.Contains(local, first+"."+last),
				strings.Contains(local, first+last),
				strings.Contains(local, first[:1]+last),
				strings.Contains(local, first[:1]+"."+last):
				return email
			}
		}
		if local == first {
			return email
		}
	}
	return ""
}
