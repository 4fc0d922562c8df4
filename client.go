package skribble

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	nurl "net/url"
	"time"

	"github.com/google/uuid"
	"github.com/viant/afs"
	"github.com/viant/afs/url"

	"github.com/skribble-sdk/skribble-go/auth"
	"github.com/skribble-sdk/skribble-go/auth/cache"
	"github.com/skribble-sdk/skribble-go/auth/transport"
)

// Client is the entry point to the Skribble API. It owns the authentication
// stack (login client, token manager, bearer transport) and exposes one
// service per resource group.
type Client struct {
	config      *Config
	credentials auth.Credentials
	manager     *auth.Manager
	httpClient  *http.Client //bearer-authenticated traffic
	anonClient  *http.Client //anonymous endpoints, no Authorization header
	fs          afs.Service
	logger      *slog.Logger

	// staged by options until New assembles the stack
	store      cache.Store
	tokenTTL   time.Duration
	baseClient *http.Client

	SignatureRequests *SignatureRequestsService
	Documents         *DocumentsService
	Users             *UsersService
	Reports           *ReportsService
	Monitoring        *MonitoringService
}

// New creates a Skribble API client for the given API credentials. The
// username/api key pair is issued in the Skribble business dashboard; see
// NewFromCredentialsURL for loading it from an encrypted resource instead of
// passing it inline.
func New(username, apiKey string, options ...Option) (*Client, error) {
	ret := &Client{
		config:      NewConfig(),
		credentials: auth.Credentials{Username: username, APIKey: apiKey},
		tokenTTL:    auth.DefaultTokenTTL,
		fs:          afs.New(),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range options {
		opt(ret)
	}
	if err := ret.credentials.Validate(); err != nil {
		return nil, err
	}
	ret.config.Init()
	if ret.baseClient == nil {
		ret.baseClient = &http.Client{Timeout: ret.config.Timeout}
	}

	login := auth.NewClient(ret.config.APIBaseURL,
		auth.WithHTTPClient(ret.baseClient),
		auth.WithTokenTTL(ret.tokenTTL),
		auth.WithUserAgent(ret.config.UserAgent))
	managerOptions := []auth.ManagerOption{
		auth.WithCachePrefix(ret.config.CachePrefix),
		auth.WithLogger(ret.logger),
	}
	if ret.store != nil {
		managerOptions = append(managerOptions, auth.WithStore(ret.store))
	}
	manager, err := auth.NewManager(login, ret.credentials, managerOptions...)
	if err != nil {
		return nil, err
	}
	ret.manager = manager

	transportOptions := []transport.Option{transport.WithLogger(ret.logger)}
	if ret.baseClient.Transport != nil {
		transportOptions = append(transportOptions, transport.WithTransport(ret.baseClient.Transport))
	}
	authRT, err := transport.New(manager, transportOptions...)
	if err != nil {
		return nil, err
	}
	// logins go through the bare client so they never recurse into the
	// bearer transport
	ret.httpClient = &http.Client{Transport: authRT, Timeout: ret.baseClient.Timeout}
	ret.anonClient = ret.baseClient

	ret.SignatureRequests = &SignatureRequestsService{client: ret}
	ret.Documents = &DocumentsService{client: ret}
	ret.Users = &UsersService{client: ret}
	ret.Reports = &ReportsService{client: ret}
	ret.Monitoring = &MonitoringService{client: ret}
	return ret, nil
}

// NewFromCredentialsURL creates a client with credentials loaded from a
// scy-encrypted resource so the api key never appears in code or config.
func NewFromCredentialsURL(ctx context.Context, URL, key string, options ...Option) (*Client, error) {
	credentials, err := auth.LoadCredentials(ctx, URL, key)
	if err != nil {
		return nil, err
	}
	return New(credentials.Username, credentials.APIKey, options...)
}

// TokenManager exposes the underlying token manager, e.g. to force a Refresh
// or to plug the SDK into an oauth2-aware stack via TokenSource.
func (c *Client) TokenManager() *auth.Manager {
	return c.manager
}

// AccessToken returns a valid bearer token, logging in first when the cache
// holds no usable one. Service calls acquire their tokens through the same
// manager, so most callers never need this directly.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	return c.manager.AccessToken(ctx)
}

// call describes one API request; do/exec resolve it against a base URL.
type call struct {
	method    string
	base      string
	path      []string
	query     nurl.Values
	body      interface{}
	expected  int //defaults to 200
	anonymous bool
}

// exec issues the call and decodes the JSON answer into R.
func exec[R any](ctx context.Context, client *Client, aCall call) (*R, error) {
	data, err := client.do(ctx, aCall)
	if err != nil {
		return nil, err
	}
	var result R
	if len(data) == 0 {
		return &result, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %v %v response: %w", aCall.method, aCall.path, err)
	}
	return &result, nil
}

// do issues the call and returns the raw response payload. Any status other
// than the expected one is mapped to *APIError.
func (c *Client) do(ctx context.Context, aCall call) ([]byte, error) {
	endpoint := url.Join(aCall.base, aCall.path...)
	if len(aCall.query) > 0 {
		endpoint += "?" + aCall.query.Encode()
	}
	var body io.Reader
	if aCall.body != nil {
		payload, err := json.Marshal(aCall.body)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, aCall.method, endpoint, body)
	if err != nil {
		return nil, err
	}
	if aCall.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())

	httpClient := c.httpClient
	if aCall.anonymous {
		httpClient = c.anonClient
	}
	c.logger.Debug("api request", "method", aCall.method, "url", endpoint)
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	expected := aCall.expected
	if expected == 0 {
		expected = http.StatusOK
	}
	if resp.StatusCode != expected {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: failureMessage(data), Body: data}
	}
	return data, nil
}
