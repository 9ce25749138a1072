package research

import "strings"

// BuildCandidates expands the configured naming-pattern templates into
// concrete candidate addresses for a normalized (first, last) pair.
//
// Templates reference {first}, {last}, {f} (first initial), {l} (last
// initial) and {domain}. Order is preserved and significant: the first
// pattern is the system's prior best guess and receives a scoring boost.
func BuildCandidates(first, last, domain string, patterns []string) []string {
	if first == "" || domain == "" {
		return nil
	}

	var fi, li string
	if first != "" {
		fi = first[:1]
	}
	if last != "" {
		li = last[:1]
	}

	replacer := strings.NewReplacer(
		"{first}", first,
		"{last}", last,
		"{f}", fi,
		"{l}", li,
		"{domain}", domain,
	)

	seen := make(map[string]struct{}, len(patterns))
	candidates := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		email := replacer.Replace(pattern)
		if email == "" || !strings.Contains(email, "@") {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		candidates = append(candidates, email)
	}

	// An empty template list must not leave the caller with nothing to try.
	if len(candidates) == 0 {
		candidates = append(candidates, first+"@"+domain)
	}
	return candidates
}
