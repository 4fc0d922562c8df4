// Package mock provides an in-memory fake of the Skribble signing service that
// facilitates unit testing of the authentication flow.
//
// The mock mints real HS256 JWTs so tests exercise login, token caching and
// bearer propagation without network round-trips against the production API.
package mock
