// Package config loads all tunables from the environment. Every knob has a
// default that works for local runs without credentials; DATABASE_URL is the
// only optional-but-unlocked integration.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the research pipeline's runtime settings.
type Config struct {
	// DatabaseURL enables PostgreSQL contact persistence when set.
	DatabaseURL string `env:"DATABASE_URL"`

	// QuotaFile is the persisted daily counter for deep email research.
	QuotaFile string `env:"RESEARCH_QUOTA_FILE" envDefault:"data/quotas/email_research.json"`

	// DailyDeepLimit caps deep (multi-collector) resolutions per day.
	DailyDeepLimit int `env:"RESEARCH_DAILY_DEEP_LIMIT" envDefault:"20"`

	// MentionQueries caps per-contact direct-mention web searches.
	MentionQueries int `env:"RESEARCH_MENTION_QUERIES" envDefault:"4"`

	// SMTPDelay is the pause between RCPT probes. A rate-limiting control
	// against mail-server anti-abuse blocking; do not zero it in production.
	SMTPDelay time.Duration `env:"RESEARCH_SMTP_DELAY" envDefault:"2s"`

	// DisableSMTP turns off SMTP verification entirely (for networks where
	// outbound port 25 is blocked anyway).
	DisableSMTP bool `env:"RESEARCH_DISABLE_SMTP" envDefault:"false"`

	// HTTPTimeout bounds each search/scrape request.
	HTTPTimeout time.Duration `env:"RESEARCH_HTTP_TIMEOUT" envDefault:"10s"`

	// DNSTimeout bounds each DNS lookup.
	DNSTimeout time.Duration `env:"RESEARCH_DNS_TIMEOUT" envDefault:"5s"`

	// SMTPTimeout bounds each SMTP probe session.
	SMTPTimeout time.Duration `env:"RESEARCH_SMTP_TIMEOUT" envDefault:"10s"`

	// EmailPatterns are the naming templates, best guess first. Order is
	// significant: the first pattern receives the default scoring prior.
	EmailPatterns []string `env:"RESEARCH_EMAIL_PATTERNS" envSeparator:"," envDefault:"{first}.{last}@{domain},{first}@{domain},{first}{last}@{domain},{f}{last}@{domain},{f}.{last}@{domain},{last}@{domain}"`

	// CommonTLDs is the probe list for DNS domain discovery.
	CommonTLDs []string `env:"RESEARCH_COMMON_TLDS" envSeparator:"," envDefault:".com,.ai,.io,.co,.dev,.tech"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
