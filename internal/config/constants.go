package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envProvider     = "PROVIDER"
	envAdminToken   = "ADMIN_TOKEN"
	envSnapshotDir  = "SNAPSHOT_DIR"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// The sheet is hand-edited and changes at most once per upload day, so
	// a slow poll is plenty.
	defaultPollInterval = 5 * Duration(time.Minute)
	defaultProvider     = "fixture"
	defaultSnapshotDir  = "data/snapshots"
	defaultMetricsPort  = "9090"
)
