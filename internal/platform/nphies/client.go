package nphies

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	defaultTimeout = 15 * time.Second
	// Tokens are refreshed this long before their reported expiry.
	tokenRefreshMargin = 60 * time.Second
)

// Client is the HTTP connector. It obtains OAuth 2.0 tokens with the
// client-credentials grant, caches them until shortly before expiry, and
// retries a request once after a 401 with a fresh token.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	http         *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time
}

// NewClient creates a connector against the given platform base URL.
func NewClient(baseURL, clientID, clientSecret string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		http:         &http.Client{Timeout: defaultTimeout},
	}
}

func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.accessToken != "" && time.Now().Before(c.expiresAt.Add(-tokenRefreshMargin)) {
		return c.accessToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("nphies token request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("nphies token request: status %d", resp.StatusCode)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("nphies token response: %w", err)
	}
	if tok.ExpiresIn <= 0 {
		tok.ExpiresIn = 3600
	}
	c.accessToken = tok.AccessToken
	c.expiresAt = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

func (c *Client) invalidateToken() {
	c.mu.Lock()
	c.accessToken = ""
	c.mu.Unlock()
}

func (c *Client) request(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	do := func() (*http.Response, error) {
		token, err := c.token(ctx)
		if err != nil {
			return nil, err
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/fhir+json")
		req.Header.Set("Accept", "application/fhir+json")
		return c.http.Do(req)
	}

	resp, err := do()
	if err != nil {
		return fmt.Errorf("nphies request %s: %w", path, err)
	}
	if resp.StatusCode == http.StatusUnauthorized {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		c.invalidateToken()
		resp, err = do()
		if err != nil {
			return fmt.Errorf("nphies request %s: %w", path, err)
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("nphies request %s: status %d", path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("nphies response %s: %w", path, err)
		}
	}
	return nil
}

// SubmitClaim sends a claim for adjudication.
func (c *Client) SubmitClaim(ctx context.Context, claim ClaimSubmission) (SubmissionResult, error) {
	var result SubmissionResult
	if err := c.request(ctx, http.MethodPost, "/claims/submit", claim, &result); err != nil {
		return SubmissionResult{}, err
	}
	return result, nil
}

// CheckClaimStatus fetches the current adjudication status of a claim.
func (c *Client) CheckClaimStatus(ctx context.Context, nphiesClaimID string) (string, error) {
	var result struct {
		Status string `json:"status"`
	}
	path := "/claims/" + url.PathEscape(nphiesClaimID) + "/status"
	if err := c.request(ctx, http.MethodGet, path, nil, &result); err != nil {
		return "", err
	}
	return result.Status, nil
}
