package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Google scrapes the regular results page. Frequently CAPTCHA-walled, which
// is why it sits behind DuckDuckGo as the fallback engine.
type Google struct {
	client *http.Client
}

// NewGoogle creates the adapter with the given request timeout.
func NewGoogle(timeout time.Duration) *Google {
	return &Google{client: &http.Client{Timeout: timeout}}
}

// Name returns the engine identifier
func (g *Google) Name() string {
	return "google"
}

// Links returns result URLs, unwrapping Google's /url?q= indirection.
func (g *Google) Links(ctx context.Context, query string, limit int) ([]string, error) {
	doc, err := g.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	var links []string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok {
			return true
		}
		if target := unwrapGoogleHref(href); target != "" {
			links = append(links, target)
		}
		return len(links) < limit
	})
	return links, nil
}

// Text returns the whitespace-normalized visible text of the result page.
func (g *Google) Text(ctx context.Context, query string) (string, error) {
	doc, err := g.fetch(ctx, query)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

func (g *Google) fetch(ctx context.Context, query string) (*goquery.Document, error) {
	endpoint := "https://www.google.com/search?q=" + url.QueryEscape(query) + "&num=10"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google status %d", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("google parse: %w", err)
	}
	return doc, nil
}

// unwrapGoogleHref handles both "/url?q=<target>&..." result links and plain
// absolute links; anything else (fragments, internal navigation) is dropped.
func unwrapGoogleHref(href string) string {
	if strings.HasPrefix(href, "/url?") {
		u, err := url.Parse(href)
		if err != nil {
			return ""
		}
		return u.Query().Get("q")
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	return ""
}
