package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestManager_TokenSource(t *testing.T) {
	clock := time.Now()
	authenticator := &fakeAuthenticator{token: "tok_abc", ttl: 20 * time.Minute, now: func() time.Time { return clock }}
	manager, err := NewManager(authenticator, testCredentials)
	require.NoError(t, err)

	source := manager.TokenSource(context.Background())
	token, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok_abc", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, clock.Add(20*time.Minute).Unix(), token.Expiry.Unix())
}

func TestManager_TokenSourceWithOAuth2Client(t *testing.T) {
	authenticator := &fakeAuthenticator{token: "tok_abc"}
	manager, err := NewManager(authenticator, testCredentials)
	require.NoError(t, err)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok_abc", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	ctx := context.Background()
	httpClient := oauth2.NewClient(ctx, manager.TokenSource(ctx))
	resp, err := httpClient.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(1), authenticator.loginCount())
}
