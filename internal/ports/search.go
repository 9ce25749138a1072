package ports

import "context"

// SearchEngine abstracts a web search backend used for domain discovery and
// email-mention lookups. Implementations may scrape HTML result pages or call
// official APIs; callers only depend on links and visible result text.
type SearchEngine interface {
	// Links returns result URLs for the query, best first, at most limit.
	Links(ctx context.Context, query string, limit int) ([]string, error)

	// Text returns the visible text of the result page, whitespace-normalized.
	// Used when the caller scans for literal strings rather than links.
	Text(ctx context.Context, query string) (string, error)

	// Name returns the engine's short identifier for logging
	Name() string
}
