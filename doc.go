// Package skribble provides a Go client for the Skribble e-signature API.
//
// The package glues the authentication subsystem defined in the auth
// sub-packages (login client, token manager with pluggable cache backends,
// bearer-injecting HTTP transport) with thin per-resource services. In
// practice it is used as an umbrella package with one primary entry point:
// New, which returns a fully configured client.
//
// Tokens are obtained lazily from POST /access/login, cached under a key
// derived from the client identity and reused until they expire; concurrent
// callers share a single login round-trip. Plug in cache.NewRedisStore to
// share tokens across processes.
//
// Example:
//
//	client, err := skribble.New("api_demo_xyz", apiKey)
//	if err != nil { /* … */ }
//	request, err := client.SignatureRequests.Get(ctx, id)
package skribble
