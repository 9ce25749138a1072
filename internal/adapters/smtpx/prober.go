// Package smtpx performs RCPT TO mailbox checks against mail exchangers.
package smtpx

import (
	"context"
	"net"
	"net/smtp"
	"time"
)

const (
	heloDomain = "verify.local"
	fromAddr   = "check@verify.local"
	smtpPort   = "25"
)

// Prober implements ports.MailboxProber over plain port-25 SMTP.
type Prober struct {
	timeout time.Duration
}

// New creates a prober with the given dial/session timeout.
func New(timeout time.Duration) *Prober {
	return &Prober{timeout: timeout}
}

// Reachable reports whether the exchanger accepts TCP connections on port 25.
// Used as a pre-flight so blocked networks skip verification cheaply.
func (p *Prober) Reachable(ctx context.Context, mxHost string) bool {
	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(mxHost, smtpPort))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Accepts reports whether the exchanger answers RCPT TO for the address with
// a 250-class response. Any protocol error or rejection reads as false.
func (p *Prober) Accepts(ctx context.Context, mxHost, email string) bool {
	dialer := net.Dialer{Timeout: p.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(mxHost, smtpPort))
	if err != nil {
		return false
	}
	// One deadline for the whole session; mail servers that stall a probe
	// mid-dialogue get cut off rather than hanging the pipeline.
	_ = conn.SetDeadline(time.Now().Add(p.timeout))

	client, err := smtp.NewClient(conn, mxHost)
	if err != nil {
		conn.Close()
		return false
	}
	defer client.Close()

	if err := client.Hello(heloDomain); err != nil {
		return false
	}
	if err := client.Mail(fromAddr); err != nil {
		return false
	}
	return client.Rcpt(email) == nil
}
