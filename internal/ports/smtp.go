package ports

import "context"

// MailboxProber checks mailbox existence against a mail exchanger.
//
// Many hosting networks block outbound port 25, so Reachable exists as a cheap
// pre-flight: when it fails, verification is skipped entirely rather than
// timing out once per candidate.
type MailboxProber interface {
	// Reachable reports whether a TCP connection to the exchanger's port 25
	// can be established.
	Reachable(ctx context.Context, mxHost string) bool

	// Accepts reports whether the exchanger answers a RCPT TO probe for the
	// address with a 250-class response.
	Accepts(ctx context.Context, mxHost, email string) bool
}
