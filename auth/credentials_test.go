package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentials_CacheKey(t *testing.T) {
	testCases := []struct {
		description string
		credentials Credentials
		prefix      string
		expect      string
	}{
		{
			description: "username only",
			credentials: Credentials{Username: "api_demo", APIKey: "k1"},
			prefix:      "skribble",
			expect:      "skribble:token:api_demo",
		},
		{
			description: "tenant scoped",
			credentials: Credentials{Username: "api_demo", APIKey: "k1", TenantID: "acme"},
			prefix:      "skribble",
			expect:      "skribble:token:api_demo:acme",
		},
		{
			description: "custom prefix",
			credentials: Credentials{Username: "api_demo", APIKey: "k1"},
			prefix:      "staging",
			expect:      "staging:token:api_demo",
		},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, tc.credentials.CacheKey(tc.prefix), tc.description)
	}
}

func TestCredentials_CacheKeyDeterministic(t *testing.T) {
	a := Credentials{Username: "api_demo", APIKey: "k1"}
	b := Credentials{Username: "api_demo", APIKey: "k2"}
	other := Credentials{Username: "api_other", APIKey: "k1"}

	// repeated derivation is stable and the api key plays no part
	assert.Equal(t, a.CacheKey("skribble"), a.CacheKey("skribble"))
	assert.Equal(t, a.CacheKey("skribble"), b.CacheKey("skribble"))
	// distinct usernames never collide
	assert.NotEqual(t, a.CacheKey("skribble"), other.CacheKey("skribble"))
}

func TestCredentials_Validate(t *testing.T) {
	assert.NoError(t, Credentials{Username: "api_demo", APIKey: "k1"}.Validate())
	assert.Error(t, Credentials{APIKey: "k1"}.Validate())
	assert.Error(t, Credentials{Username: "api_demo"}.Validate())
	assert.Error(t, Credentials{}.Validate())
}
