package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/viant/afs/url"
)

const (
	// DefaultTokenTTL is the assumed access token lifetime. The login endpoint
	// does not report an expiry, so the client trusts tokens for a fixed,
	// conservative window (the documented lifetime is about 20 minutes).
	DefaultTokenTTL = 20 * time.Minute

	// DefaultCachePrefix namespaces cache keys so the SDK can share a store
	// with other tenants of the same Redis instance.
	DefaultCachePrefix = "skribble"

	loginPath = "access/login"
)

// Authenticator obtains a fresh token for a set of credentials. Client is the
// production implementation; tests substitute counting fakes.
type Authenticator interface {
	Login(ctx context.Context, credentials Credentials) (Token, error)
}

// Client performs the login exchange against POST {api}/access/login. It does
// not retry: retry policy belongs to the caller.
type Client struct {
	httpClient *http.Client
	loginURL   string
	tokenTTL   time.Duration
	userAgent  string
	now        func() time.Time
}

// NewClient creates a login client for the given API base URL, e.g.
// "https://api.skribble.com/v2".
func NewClient(baseURL string, options ...ClientOption) *Client {
	ret := &Client{
		httpClient: http.DefaultClient,
		loginURL:   url.Join(baseURL, loginPath),
		tokenTTL:   DefaultTokenTTL,
		now:        time.Now,
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// Login exchanges credentials for a bearer token. A non-2xx response yields
// *AuthenticationError, a transport failure yields *NetworkError; nothing is
// cached here, storage is the manager's concern.
func (c *Client) Login(ctx context.Context, credentials Credentials) (Token, error) {
	payload, err := json.Marshal(map[string]string{
		"username": credentials.Username,
		"api-key":  credentials.APIKey,
	})
	if err != nil {
		return Token{}, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(payload))
	if err != nil {
		return Token{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Token{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Token{}, &NetworkError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return Token{}, &AuthenticationError{StatusCode: resp.StatusCode, Message: failureMessage(body)}
	}
	accessToken := parseAccessToken(resp.Header.Get("Content-Type"), body)
	if accessToken == "" {
		return Token{}, &AuthenticationError{StatusCode: resp.StatusCode, Message: "login succeeded but response carries no access token"}
	}
	return Token{AccessToken: accessToken, ExpiresAt: c.now().Add(c.tokenTTL)}, nil
}

// parseAccessToken extracts the bearer token from a login response. The API
// returns either a JSON document ({"access_token": ...}, {"token": ...},
// {"jwt": ...} or a bare JSON string) or the raw token as plain text.
func parseAccessToken(contentType string, body []byte) string {
	if !strings.Contains(contentType, "application/json") {
		return strings.TrimSpace(string(body))
	}
	var fields struct {
		AccessToken string `json:"access_token"`
		Token       string `json:"token"`
		JWT         string `json:"jwt"`
	}
	if err := json.Unmarshal(body, &fields); err == nil {
		switch {
		case fields.AccessToken != "":
			return fields.AccessToken
		case fields.Token != "":
			return fields.Token
		case fields.JWT != "":
			return fields.JWT
		}
	}
	var plain string
	if err := json.Unmarshal(body, &plain); err == nil {
		return strings.TrimSpace(plain)
	}
	return ""
}

// failureMessage pulls a human-readable reason out of an error response,
// preferring the JSON message/error fields over the raw body.
func failureMessage(body []byte) string {
	var fields struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &fields); err == nil {
		if fields.Message != "" {
			return fields.Message
		}
		if fields.Error != "" {
			return fields.Error
		}
	}
	return strings.TrimSpace(string(body))
}

var _ Authenticator = (*Client)(nil)
