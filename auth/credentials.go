package auth

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/scy"
	"github.com/viant/scy/cred"
	_ "github.com/viant/scy/kms/blowfish" //registers the blowfish key scheme
)

// Credentials identify a Skribble API user. They are fixed at client
// construction time and are used only to build login requests and to derive
// the token cache key.
type Credentials struct {
	Username string
	APIKey   string
	// TenantID scopes the cache key for multi-tenant setups; optional.
	TenantID string
}

// Validate rejects credentials that could never log in.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return errors.New("username is required")
	}
	if c.APIKey == "" {
		return errors.New("api key is required")
	}
	return nil
}

// CacheKey derives the store key for these credentials. The derivation is
// pure: equal credentials always map to the same key and distinct usernames
// never collide.
func (c Credentials) CacheKey(prefix string) string {
	key := prefix + ":token:" + c.Username
	if c.TenantID != "" {
		key += ":" + c.TenantID
	}
	return key
}

// LoadCredentials reads credentials from a scy secret resource, e.g. a
// blowfish-encrypted JSON file or a cloud secret manager entry holding basic
// credentials (username + password, the password carrying the API key).
//
//	creds, err := auth.LoadCredentials(ctx, "~/.skribble/cred.json", "blowfish://default")
func LoadCredentials(ctx context.Context, URL, key string) (Credentials, error) {
	resource := scy.NewResource(reflect.TypeOf(cred.Basic{}), URL, key)
	secret, err := scy.New().Load(ctx, resource)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to load credentials %q: %w", URL, err)
	}
	basic, ok := secret.Target.(*cred.Basic)
	if !ok {
		return Credentials{}, fmt.Errorf("unexpected secret type %T for %q", secret.Target, URL)
	}
	ret := Credentials{Username: basic.Username, APIKey: basic.Password}
	if err := ret.Validate(); err != nil {
		return Credentials{}, fmt.Errorf("incomplete credentials in %q: %w", URL, err)
	}
	return ret, nil
}
