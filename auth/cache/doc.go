// Package cache defines the pluggable token store consumed by the parent
// `auth` package.
//
// The Store contract is two operations, Get and SetWithTTL, so any key-value
// system with per-key expiry can back it. Three implementations ship with the
// SDK: an in-process map (the default), a JSON file snapshot for CLI-style
// restarts, and Redis for fleets that share tokens across processes.
package cache
