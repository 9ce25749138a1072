package research

import (
	"context"
	"log"
	"strings"

	"github.com/leadflow/contact-research/internal/ports"
)

// MentionCollector issues a quoted exact-string web search per candidate and
// checks whether the literal address appears in the result text.
//
// One query per candidate makes this the most expensive collector, so it only
// looks at the first maxQueries candidates.
type MentionCollector struct {
	search     ports.SearchEngine
	maxQueries int
}

// NewMentionCollector creates a collector capped at maxQueries searches per contact
func NewMentionCollector(search ports.SearchEngine, maxQueries int) *MentionCollector {
	if maxQueries < 1 {
		maxQueries = 1
	}
	return &MentionCollector{search: search, maxQueries: maxQueries}
}

// Name returns the evidence source name
func (c *MentionCollector) Name() string {
	return "web_mention"
}

// Collect searches for direct mentions of the leading candidates.
func (c *MentionCollector) Collect(ctx context.Context, probe *Probe) []Evidence {
	candidates := probe.Candidates
	if len(candidates) > c.maxQueries {
		candidates = candidates[:c.maxQueries]
	}

	var evidence []Evidence
	for _, candidate := range candidates {
		text, err := c.search.Text(ctx, `"`+candidate+`"`)
		if err != nil {
			log.Printf("[mention] search for %s unavailable: %v", candidate, err)
			continue
		}
		if text == "" {
			continue
		}
		if strings.Contains(strings.ToLower(text), strings.ToLower(candidate)) {
			evidence = append(evidence, Evidence{Candidate: candidate, Reason: ReasonWebMention})
		}
	}
	return evidence
}
