package research

import "context"

// SMTPCollector turns a successful RCPT probe into candidate evidence.
// Catch-all domains yield no evidence: acceptance proves nothing there.
type SMTPCollector struct {
	verifier *SMTPVerifier
}

// NewSMTPCollector creates a collector backed by a shared verifier
func NewSMTPCollector(verifier *SMTPVerifier) *SMTPCollector {
	return &SMTPCollector{verifier: verifier}
}

// Name returns the evidence source name
func (c *SMTPCollector) Name() string {
	return "smtp_verify"
}

// Collect probes the candidates and reports the first verified mailbox.
func (c *SMTPCollector) Collect(ctx context.Context, probe *Probe) []Evidence {
	result := c.verifier.Verify(ctx, probe.Candidates, probe.Domain)
	if !result.Ran || result.CatchAll || result.Accepted == "" {
		return nil
	}
	return []Evidence{{Candidate: result.Accepted, Reason: ReasonSMTPVerified}}
}
