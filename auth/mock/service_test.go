package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningService_Login(t *testing.T) {
	server, err := NewHTTPTestSigningServer(WithCredentials("api_demo", "k1"))
	require.NoError(t, err)
	defer server.Close()

	resp, err := http.Post(server.URL+"/access/login", "application/json",
		strings.NewReader(`{"username":"api_demo","api-key":"k1"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	token, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NoError(t, server.VerifyToken(string(token)))
	assert.Equal(t, 1, server.LoginCount())
}

func TestSigningService_LoginRejected(t *testing.T) {
	server, err := NewHTTPTestSigningServer(WithCredentials("api_demo", "k1"))
	require.NoError(t, err)
	defer server.Close()

	resp, err := http.Post(server.URL+"/access/login", "application/json",
		strings.NewReader(`{"username":"api_demo","api-key":"wrong"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, server.LoginCount())
}

func TestSigningService_ResourceRequiresBearer(t *testing.T) {
	server, err := NewHTTPTestSigningServer()
	require.NoError(t, err)
	defer server.Close()

	resp, err := http.Get(server.URL + "/resource")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, err := server.SigningService.createJWT(server.Username, server.TokenTTL)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodGet, server.URL+"/resource", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	authorized, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer authorized.Body.Close()
	assert.Equal(t, http.StatusOK, authorized.StatusCode)
}

func TestSigningService_HealthIsAnonymous(t *testing.T) {
	server, err := NewHTTPTestSigningServer()
	require.NoError(t, err)
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "UP", status["status"])
}
