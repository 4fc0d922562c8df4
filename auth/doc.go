// Package auth implements the Skribble authentication core: logging in with
// a username + API key, caching the short-lived bearer token under a key
// derived from the credentials, and serving it to concurrent callers without
// redundant logins.
//
// The Manager is the entry point. It checks its cache.Store first, re-checks
// expiry itself, and only on a miss performs a coalesced login: any number of
// goroutines racing on a cold cache trigger exactly one round trip.
// Failures are never cached and propagate as *AuthenticationError (rejected
// credentials), *NetworkError (transport trouble) or cache.ErrUnavailable
// (shared store unreachable).
//
// The sub-packages supply the moving parts: `cache` the pluggable stores,
// `transport` an http.RoundTripper that attaches the token to outgoing
// requests, and `mock` a fake login service for tests.
package auth
