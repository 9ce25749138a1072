// Package github looks up public developer-profile emails: useful for
// technical contacts who publish a work address on their profile or in
// commit metadata.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	apiBase      = "https://api.github.com"
	acceptHeader = "application/vnd.github.v3+json"
)

// Client implements ports.DevProfileSource against the public GitHub API.
// Unauthenticated: the rate limit is low, but this source only runs as a
// fallback strategy.
type Client struct {
	client *http.Client
}

// NewClient creates a client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{client: &http.Client{Timeout: timeout}}
}

type userSearchResponse struct {
	Items []struct {
		Login string `json:"login"`
	} `json:"items"`
}

type userProfile struct {
	Email string `json:"email"`
}

type publicEvent struct {
	Type    string `json:"type"`
	Payload struct {
		Commits []struct {
			Author struct {
				Email string `json:"email"`
			} `json:"author"`
		} `json:"commits"`
	} `json:"payload"`
}

// EmailForName searches users by name and returns the first public email at
// the company's domain root, checking profile emails first and recent push
// events second.
func (c *Client) EmailForName(ctx context.Context, fullName, domainRoot string) (string, error) {
	var search userSearchResponse
	endpoint := apiBase + "/search/users?q=" + url.QueryEscape(fullName) + "&per_page=5"
	if err := c.getJSON(ctx, endpoint, &search); err != nil {
		return "", err
	}

	for _, item := range search.Items {
		if item.Login == "" {
			continue
		}

		var profile userProfile
		if err := c.getJSON(ctx, apiBase+"/users/"+url.PathEscape(item.Login), &profile); err != nil {
			continue
		}
		if email := strings.ToLower(profile.Email); email != "" && strings.Contains(email, domainRoot) {
			return email, nil
		}

		if email := c.commitEmail(ctx, item.Login, domainRoot); email != "" {
			return email, nil
		}
	}
	return "", nil
}

// commitEmail scans a user's recent public push events for author addresses
// at the target domain, skipping GitHub's noreply rewrites.
func (c *Client) commitEmail(ctx context.Context, login, domainRoot string) string {
	var events []publicEvent
	endpoint := apiBase + "/users/" + url.PathEscape(login) + "/events/public?per_page=10"
	if err := c.getJSON(ctx, endpoint, &events); err != nil {
		return ""
	}

	for _, event := range events {
		if event.Type != "PushEvent" {
			continue
		}
		for _, commit := range event.Payload.Commits {
			email := strings.ToLower(commit.Author.Email)
			if email != "" && strings.Contains(email, domainRoot) && !strings.Contains(email, "noreply") {
				return email
			}
		}
	}
	return ""
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", acceptHeader)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github status %d for %s", resp.StatusCode, endpoint)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
