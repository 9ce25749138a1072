// Package dnsx adapts net.Resolver to the lookup surface the discovery and
// verification layers need.
package dnsx

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"
)

// Resolver implements ports.NameResolver with bounded lookup times.
type Resolver struct {
	resolver *net.Resolver
	timeout  time.Duration
}

// New creates a resolver using the system DNS configuration.
func New(timeout time.Duration) *Resolver {
	return &Resolver{resolver: net.DefaultResolver, timeout: timeout}
}

// Resolves reports whether the host has at least one address record. Lookup
// errors (NXDOMAIN, timeouts, SERVFAIL) all read as "does not resolve".
func (r *Resolver) Resolves(ctx context.Context, host string) bool {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	addrs, err := r.resolver.LookupHost(ctx, host)
	return err == nil && len(addrs) > 0
}

// LookupMX returns the domain's mail exchanger hosts, best preference first,
// with trailing dots stripped.
func (r *Resolver) LookupMX(ctx context.Context, domain string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	records, err := r.resolver.LookupMX(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("mx lookup for %s: %w", domain, err)
	}
	hosts := make([]string, 0, len(records))
	for _, mx := range records {
		if host := strings.TrimSuffix(mx.Host, "."); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts, nil
}
