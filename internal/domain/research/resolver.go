package research

import (
	"context"
	"log"
	"strings"

	"github.com/leadflow/contact-research/internal/domain"
)

// Confidence thresholds on the accumulated candidate score.
const (
	highConfidenceScore   = 85
	mediumConfidenceScore = 55
)

// Weights maps evidence reasons to score adjustments. The defaults are
// hand-tuned; treat them as configuration and preserve only the relative
// ordering (website > mention > SMTP > context > prior).
type Weights map[Reason]int

// DefaultWeights returns the standard scoring table.
func DefaultWeights() Weights {
	return Weights{
		ReasonDefaultPattern: 8,
		ReasonWebsiteMatch:   90,
		ReasonWebMention:     75,
		ReasonContextMatch:   55,
		ReasonSMTPVerified:   65,
		ReasonShortLocal:     -8,
		ReasonGenericAlias:   -30,
	}
}

// QuotaGate gates the expensive deep-resolution path. Satisfied by
// *quota.Tracker; tests substitute fakes.
type QuotaGate interface {
	CanProcess() bool
	Increment(n int)
}

// Resolver combines all evidence collectors into a single ranked decision
// per contact.
//
// Every collector is consulted independently; each failure degrades to "no
// evidence" rather than aborting the resolution. The resolver owns the
// scoring table, so collectors report reasons only.
type Resolver struct {
	patterns   []string
	weights    Weights
	collectors []Collector
	quota      QuotaGate
	fallback   *Fallback
}

// NewResolver creates a deep resolver. quota and fallback may be nil, in
// which case every call runs the full evidence pipeline.
func NewResolver(patterns []string, weights Weights, collectors []Collector, quota QuotaGate, fallback *Fallback) *Resolver {
	if weights == nil {
		weights = DefaultWeights()
	}
	return &Resolver{
		patterns:   patterns,
		weights:    weights,
		collectors: collectors,
		quota:      quota,
		fallback:   fallback,
	}
}

// FindBestEmail resolves the most likely work email for a person at a company
// domain. linkedinURL is carried through for downstream storage and does not
// influence resolution.
func (r *Resolver) FindBestEmail(ctx context.Context, fullName, companyDomain, companyName, linkedinURL string) domain.Resolution {
	_ = linkedinURL

	first, last := SplitName(fullName)
	if first == "" {
		return domain.Resolution{Confidence: domain.ConfidenceLow, Candidates: []string{}}
	}
	if last == "" {
		last = first
	}

	candidates := BuildCandidates(first, last, companyDomain, r.patterns)
	if len(candidates) == 0 {
		return domain.Resolution{Confidence: domain.ConfidenceLow, Candidates: []string{}}
	}

	// Quota exhausted is not an error: hand over to the cheap fallback and
	// tag the result so callers can tell it was a degraded pass.
	if r.quota != nil && !r.quota.CanProcess() && r.fallback != nil {
		log.Printf("[email-research] quota exhausted; using fallback for %s at %s", fullName, companyDomain)
		result := r.fallback.FindEmail(ctx, first, last, companyDomain)
		result.Method = result.Method.WithQuotaFallback()
		return result
	}
	if r.quota != nil {
		r.quota.Increment(1)
	}

	inSet := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		inSet[c] = true
	}
	scores := make(map[string]int, len(candidates))
	reasons := make(map[string][]Reason, len(candidates))

	// Evidence outside the generated candidate set is dropped: the resolver
	// only ever answers with an address it can explain.
	add := func(candidate string, reason Reason) {
		if !inSet[candidate] {
			return
		}
		scores[candidate] += r.weights[reason]
		reasons[candidate] = append(reasons[candidate], reason)
	}

	// Weak prior favoring the statistically most common pattern.
	add(candidates[0], ReasonDefaultPattern)

	probe := &Probe{
		First:       first,
		Last:        last,
		Domain:      companyDomain,
		CompanyName: companyName,
		Candidates:  candidates,
	}
	for _, collector := range r.collectors {
		for _, ev := range collector.Collect(ctx, probe) {
			add(ev.Candidate, ev.Reason)
		}
	}

	for _, candidate := range candidates {
		local := localPart(candidate)
		if len(local) <= 2 {
			add(candidate, ReasonShortLocal)
		}
		if _, generic := genericAliases[local]; generic {
			add(candidate, ReasonGenericAlias)
		}
	}

	// Stable max: earlier-generated candidates win ties.
	best := candidates[0]
	for _, candidate := range candidates[1:] {
		if scores[candidate] > scores[best] {
			best = candidate
		}
	}

	confidence := scoreToConfidence(scores[best])
	method := pickMethod(reasons[best])
	log.Printf("[email-research] %s -> %s (%s score=%d reasons=%s)",
		fullName, best, confidence, scores[best], joinReasons(reasons[best]))

	return domain.Resolution{
		Email:      best,
		Confidence: confidence,
		Candidates: candidates,
		Method:     method,
	}
}

func scoreToConfidence(score int) domain.Confidence {
	switch {
	case score >= highConfidenceScore:
		return domain.ConfidenceHigh
	case score >= mediumConfidenceScore:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

// pickMethod maps the winner's reasons to a method tag, strongest first.
func pickMethod(rs []Reason) domain.Method {
	has := func(want Reason) bool {
		for _, r := range rs {
			if r == want {
				return true
			}
		}
		return false
	}
	switch {
	case has(ReasonWebsiteMatch):
		return domain.MethodWebsiteScrape
	case has(ReasonSMTPVerified):
		return domain.MethodSMTPVerified
	case has(ReasonWebMention):
		return domain.MethodWebMention
	case has(ReasonContextMatch):
		return domain.MethodContextMatch
	default:
		return domain.MethodPatternGuess
	}
}

func joinReasons(rs []Reason) string {
	if len(rs) == 0 {
		return "pattern_guess"
	}
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ",")
}
