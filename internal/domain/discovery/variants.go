package discovery

import "strings"

// corporateSuffixes are trailing tokens that social handles carry but
// registered domains usually drop.
var corporateSuffixes = []string{
	" ai", " ml",
	" artificial intelligence", " machine learning",
	" inc", " ltd", " llc", " co", " corp", " company",
}

// NameVariants returns search variants for a company name, original first.
//
// X handles like @Tactfulai are scraped as "Tactful AI" while LinkedIn and
// the registered domain use plain "Tactful"; trying both keeps discovery from
// missing the company over a suffix.
func NameVariants(companyName string) []string {
	name := strings.TrimSpace(companyName)
	if name == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if len(s) < 2 {
			return
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	add(name)

	// "Tactful AI." / "Tactful Inc" -> "Tactful"
	lowered := strings.ToLower(strings.TrimRight(name, ".,"))
	trimmed := strings.TrimRight(name, ".,")
	for _, suffix := range corporateSuffixes {
		if strings.HasSuffix(lowered, suffix) {
			add(trimmed[:len(trimmed)-len(suffix)])
			break
		}
	}

	// One word ending in "ai"/"ml" (e.g. "Tactfulai") -> "Tactful", "Tactful AI"
	if !strings.Contains(name, " ") && len(name) > 2 {
		for _, end := range []string{"ai", "ml"} {
			if strings.HasSuffix(lowered, end) && len(lowered) > len(end) {
				base := trimmed[:len(trimmed)-len(end)]
				add(base)
				add(base + " " + strings.ToUpper(end))
				break
			}
		}
	}

	// "Scale AI" -> "Scale"
	parts := strings.Fields(name)
	if len(parts) >= 2 {
		lastToken := strings.ToUpper(parts[len(parts)-1])
		if lastToken == "AI" || lastToken == "ML" {
			add(strings.Join(parts[:len(parts)-1], " "))
		}
	}

	return out
}
