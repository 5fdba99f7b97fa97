package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	calls            int
	errors           int
	rateLimitHits    int
	lastRetryAfter   time.Duration
	lastFetchLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset and table
// fetches and mirrors them to OTel instruments when telemetry is enabled.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*fetchStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*fetchStats),
		otel:  otel,
	}
}

// RecordFetchAttempt counts one whole-dataset fetch through a provider and
// stores the last observed latency.
func (r *Recorder) RecordFetchAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update(provider, func(stats *fetchStats) {
		stats.calls++
		stats.lastFetchLatency = duration
		if err != nil {
			stats.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordFetchAttempt(provider, duration, err)
	}
}

// RecordTableFetch counts one per-table CSV export fetch.
func (r *Recorder) RecordTableFetch(table string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.update("table:"+table, func(stats *fetchStats) {
		stats.calls++
		stats.lastFetchLatency = duration
		if err != nil {
			stats.errors++
		}
	})
	if r.otel != nil {
		r.otel.recordTableFetch(table, duration, err)
	}
}

// RecordRateLimit tracks a rate-limited response and its Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.update(provider, func(stats *fetchStats) {
		stats.rateLimitHits++
		if retryAfter > 0 {
			stats.lastRetryAfter = retryAfter
		}
	})
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// Snapshot is a copy of the counters recorded under one name.
type Snapshot struct {
	Calls            int
	Errors           int
	RateLimitHits    int
	LastRetryAfter   time.Duration
	LastFetchLatency time.Duration
}

func (r *Recorder) Snapshot(name string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(name)
	return Snapshot{
		Calls:            stats.calls,
		Errors:           stats.errors,
		RateLimitHits:    stats.rateLimitHits,
		LastRetryAfter:   stats.lastRetryAfter,
		LastFetchLatency: stats.lastFetchLatency,
	}
}

// FetchCalls returns the total attempts recorded for a provider.
func (r *Recorder) FetchCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// FetchErrors returns the failed attempts recorded for a provider.
func (r *Recorder) FetchErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// TableFetches returns the per-table fetch count.
func (r *Recorder) TableFetches(table string) int {
	return r.Snapshot("table:" + table).Calls
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

func (r *Recorder) update(name string, fn func(*fetchStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[name]
	if !ok {
		stats = &fetchStats{}
		r.stats[name] = stats
	}
	fn(stats)
}

func (r *Recorder) snapshot(name string) fetchStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[name]; ok && stats != nil {
		return *stats
	}
	return fetchStats{}
}
