// Package search provides scraping-based SearchEngine adapters.
//
// No API keys: both engines parse public HTML result pages. DuckDuckGo's HTML
// endpoint tolerates automated clients far better than Google, so it sits
// first in the discovery chain.
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

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"

// DuckDuckGo implements ports.SearchEngine against html.duckduckgo.com.
type DuckDuckGo struct {
	client *http.Client
}

// NewDuckDuckGo creates the adapter with the given request timeout.
func NewDuckDuckGo(timeout time.Duration) *DuckDuckGo {
	return &DuckDuckGo{client: &http.Client{Timeout: timeout}}
}

// Name returns the engine identifier
func (d *DuckDuckGo) Name() string {
	return "duckduckgo"
}

// Links returns result URLs, unwrapping DuckDuckGo's redirect links.
func (d *DuckDuckGo) Links(ctx context.Context, query string, limit int) ([]string, error) {
	doc, err := d.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	var links []string
	collect := func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if !ok {
			return true
		}
		if target := unwrapRedirect(href); target != "" {
			links = append(links, target)
		}
		return len(links) < limit
	}

	// Organic results first, then any remaining anchors as a weaker pass.
	doc.Find("a.result__a[href]").EachWithBreak(collect)
	if len(links) < limit {
		doc.Find("a[href]").EachWithBreak(collect)
	}
	return links, nil
}

// Text returns the whitespace-normalized visible text of the result page.
func (d *DuckDuckGo) Text(ctx context.Context, query string) (string, error) {
	doc, err := d.fetch(ctx, query)
	if err != nil {
		return "", err
	}
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

func (d *DuckDuckGo) fetch(ctx context.Context, query string) (*goquery.Document, error) {
	endpoint := "https://html.duckduckgo.com/html/?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("duckduckgo status %d", resp.StatusCode)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("duckduckgo parse: %w", err)
	}
	return doc, nil
}

// unwrapRedirect extracts the real target from DuckDuckGo's /l/?uddg=<url>
// redirect links. Plain absolute links pass through unchanged.
func unwrapRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if u.Scheme == "http" || u.Scheme == "https" {
		return href
	}
	return ""
}
