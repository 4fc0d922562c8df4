// Package transport implements an http.RoundTripper that authenticates
// outgoing Skribble API requests. It asks the token manager for a bearer
// token before each request, so a request never leaves the process
// unauthenticated. On a 401 response it invalidates the cached token,
// triggers a single coalesced re-login and replays the request once.
//
// The RoundTripper is wired into the SDK client automatically but can also
// secure any plain *http.Client:
//
//	rt, _ := transport.New(manager)
//	httpClient := &http.Client{Transport: rt}
package transport
