package research

import (
	"context"
	"log"
	"time"

	"github.com/leadflow/contact-research/internal/ports"
)

// VerifyResult is the outcome of an SMTP verification pass over a candidate set.
type VerifyResult struct {
	// Accepted is the first candidate the exchanger accepted, or "".
	Accepted string
	// CatchAll reports that the domain accepts mail for any address, which
	// makes Accepted worthless as proof of an individual mailbox.
	CatchAll bool
	// Ran is false when verification was skipped entirely (disabled, no MX
	// records, or port 25 unreachable).
	Ran bool
}

// SMTPVerifier probes candidate mailboxes against a domain's mail exchangers.
//
// MX lookups and catch-all checks are memoized per domain for the process
// lifetime, including negative results, so repeated resolutions against the
// same company don't repeat DNS traffic.
type SMTPVerifier struct {
	dns      ports.NameResolver
	prober   ports.MailboxProber
	delay    time.Duration
	disabled bool

	mxCache  map[string][]string
	catchAll map[string]bool
}

// NewSMTPVerifier creates a verifier. delay is the pause inserted before each
// RCPT probe — a rate-limiting control against mail-server anti-abuse
// throttling, not a performance knob.
func NewSMTPVerifier(dns ports.NameResolver, prober ports.MailboxProber, delay time.Duration, disabled bool) *SMTPVerifier {
	return &SMTPVerifier{
		dns:      dns,
		prober:   prober,
		delay:    delay,
		disabled: disabled,
		mxCache:  make(map[string][]string),
		catchAll: make(map[string]bool),
	}
}

// Enabled reports whether verification can run at all.
func (v *SMTPVerifier) Enabled() bool {
	return v != nil && !v.disabled && v.dns != nil && v.prober != nil
}

// Verify probes the candidates in order against the domain's primary
// exchanger. On a catch-all domain no individual probes are issued: the first
// candidate is reported accepted with CatchAll set, since the server would
// have said yes to anything.
func (v *SMTPVerifier) Verify(ctx context.Context, candidates []string, domain string) VerifyResult {
	if !v.Enabled() || len(candidates) == 0 {
		return VerifyResult{}
	}

	hosts := v.mx(ctx, domain)
	if len(hosts) == 0 {
		log.Printf("[smtp] no MX records for %s", domain)
		return VerifyResult{}
	}
	mxHost := hosts[0]

	if !v.prober.Reachable(ctx, mxHost) {
		// Outbound port 25 is blocked on many networks; degrade silently.
		log.Printf("[smtp] %s unreachable on port 25, skipping verification", mxHost)
		return VerifyResult{}
	}

	if v.isCatchAll(ctx, mxHost, domain) {
		return VerifyResult{Accepted: candidates[0], CatchAll: true, Ran: true}
	}

	for _, candidate := range candidates {
		time.Sleep(v.delay)
		if v.prober.Accepts(ctx, mxHost, candidate) {
			return VerifyResult{Accepted: candidate, Ran: true}
		}
	}
	return VerifyResult{Ran: true}
}

func (v *SMTPVerifier) mx(ctx context.Context, domain string) []string {
	if hosts, ok := v.mxCache[domain]; ok {
		return hosts
	}
	hosts, err := v.dns.LookupMX(ctx, domain)
	if err != nil {
		hosts = nil
	}
	v.mxCache[domain] = hosts
	return hosts
}

// isCatchAll probes a fabricated address that almost certainly does not
// exist; acceptance means the domain accepts everything.
func (v *SMTPVerifier) isCatchAll(ctx context.Context, mxHost, domain string) bool {
	if known, ok := v.catchAll[domain]; ok {
		return known
	}
	fake := "definitely-not-a-real-mailbox-1234567@" + domain
	result := v.prober.Accepts(ctx, mxHost, fake)
	v.catchAll[domain] = result
	if result {
		log.Printf("[smtp] %s is a catch-all domain, verification disabled for it", domain)
	}
	return result
}
