package ports

import "context"

// NameResolver wraps the DNS lookups needed by domain discovery and SMTP
// verification. A failed lookup and a non-existent name both read as negative
// results; callers never see transport errors from Resolves.
type NameResolver interface {
	// Resolves reports whether the host has at least one A/AAAA record.
	Resolves(ctx context.Context, host string) bool

	// LookupMX returns the domain's mail exchanger hosts ordered by preference.
	LookupMX(ctx context.Context, domain string) ([]string, error)
}
