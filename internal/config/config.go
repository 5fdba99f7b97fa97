package config

// Config holds runtime configuration for the server.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	AdminToken   string
	SnapshotDir  string
	Sheets       SheetsConfig
	Community    CommunityConfig
	YouTube      YouTubeConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		Provider:     envOrDefault(envProvider, defaultProvider),
		AdminToken:   envOrDefault(envAdminToken, ""),
		SnapshotDir:  envOrDefault(envSnapshotDir, defaultSnapshotDir),
		Sheets:       loadSheets(),
		Community:    loadCommunity(),
		YouTube:      loadYouTube(),
		Metrics:      loadMetrics(),
	}
}
