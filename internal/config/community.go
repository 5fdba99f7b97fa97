package config

const (
	envCommunityDB = "COMMUNITY_DB"

	// The memory backend loses submissions on restart; it exists for tests
	// and local runs.
	defaultCommunityDB = "memory"
)

// CommunityConfig selects the backing store for tier lists, comments and the
// petition. Backend is "memory" or a SQLite file path.
type CommunityConfig struct {
	Backend string
}

func loadCommunity() CommunityConfig {
	return CommunityConfig{
		Backend: envOrDefault(envCommunityDB, defaultCommunityDB),
	}
}
