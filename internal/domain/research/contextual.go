package research

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/leadflow/contact-research/internal/ports"
)

// ContextCollector runs a single combined search for the person's name next
// to the company domain and scans the result text for addresses at that
// domain. Cheaper than per-candidate mention searches, weaker as evidence.
type ContextCollector struct {
	search ports.SearchEngine
}

// NewContextCollector creates a collector that issues one contextual search per contact
func NewContextCollector(search ports.SearchEngine) *ContextCollector {
	return &ContextCollector{search: search}
}

// Name returns the evidence source name
func (c *ContextCollector) Name() string {
	return "context_match"
}

// Collect searches `"First Last" "@domain" Company` and extracts any address
// at the target domain from the results.
func (c *ContextCollector) Collect(ctx context.Context, probe *Probe) []Evidence {
	query := strings.TrimSpace(fmt.Sprintf(
		"%q %q %s",
		probe.First+" "+probe.Last,
		"@"+probe.Domain,
		probe.CompanyName,
	))
	text, err := c.search.Text(ctx, query)
	if err != nil {
		log.Printf("[context] search for %s %s unavailable: %v", probe.First, probe.Last, err)
		return nil
	}
	if text == "" {
		return nil
	}

	pattern, err := regexp.Compile(`[a-zA-Z0-9._%+-]+@` + regexp.QuoteMeta(probe.Domain) + `\b`)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	var evidence []Evidence
	for _, hit := range pattern.FindAllString(text, -1) {
		email := strings.ToLower(hit)
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}
		evidence = append(evidence, Evidence{Candidate: email, Reason: ReasonContextMatch})
	}
	return evidence
}
