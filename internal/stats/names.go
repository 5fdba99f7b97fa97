// Package stats holds the pure derivation pipeline: every function takes
// normalized records and returns derived views without touching I/O or
// shared state, so one invocation per request is safe without locking.
package stats

import "strings"

// Key canonicalizes a player name for identity matching. Sheet editors type
// names free-hand, so every join goes through this one key instead of
// repeating case-insensitive compares at each site.
func Key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SameName reports whether two free-text names resolve to the same player.
func SameName(a, b string) bool {
	return Key(a) == Key(b)
}
