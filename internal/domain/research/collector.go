package research

import "context"

// Reason tags why a candidate gained or lost points during a resolution.
type Reason string

const (
	ReasonDefaultPattern Reason = "default_pattern_prior"
	ReasonWebsiteMatch   Reason = "website_exact_or_pattern_match"
	ReasonWebMention     Reason = "direct_web_mention"
	ReasonContextMatch   Reason = "name_domain_context_match"
	ReasonSMTPVerified   Reason = "smtp_verified"
	ReasonShortLocal     Reason = "short_local_penalty"
	ReasonGenericAlias   Reason = "generic_alias_penalty"
)

// Probe carries the per-resolution inputs shared by all evidence collectors.
// Name parts arrive already normalized; Candidates preserves generation order.
type Probe struct {
	First       string
	Last        string
	Domain      string
	CompanyName string
	Candidates  []string
}

// Evidence is a single observation about one candidate. The resolver maps the
// reason to points, so collectors stay ignorant of the scoring weights.
type Evidence struct {
	Candidate string
	Reason    Reason
}

// Collector is an independent, best-effort evidence source.
//
// Implementations must never let a network or parse failure escape: an
// unavailable source contributes no evidence, it does not abort the
// resolution. This mirrors the strategy pattern used for the collectors'
// shared contract:
//   - Independently developed and tested
//   - Added or removed from the resolution pipeline without touching others
//   - Weighted centrally by the resolver
type Collector interface {
	// Collect inspects the probe and returns any evidence found, or nil.
	Collect(ctx context.Context, probe *Probe) []Evidence

	// Name returns the human-readable name of this evidence source
	Name() string
}
