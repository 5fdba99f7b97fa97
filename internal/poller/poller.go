package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/logging"
	"amongus-stats-service/internal/metrics"
	"amongus-stats-service/internal/providers"
)

const defaultInterval = 5 * time.Minute

// DatasetSink receives each refreshed snapshot.
type DatasetSink interface {
	SetDataset(domain.Dataset)
}

// SnapshotWriter persists the last good dataset so a restart can serve data
// before the first poll completes.
type SnapshotWriter interface {
	WriteDataset(domain.Dataset) error
}

// Poller refreshes the dataset snapshot on an interval.
type Poller struct {
	provider providers.DatasetProvider
	sink     DatasetSink
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poll loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults. writer may be nil.
func New(provider providers.DatasetProvider, sink DatasetSink, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins polling: one immediate fetch, then one per interval. Calling
// Start twice is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		p.fetchOnce(ctx)
		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	dataset, err := p.provider.FetchDataset(ctx)
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller fetch failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	p.sink.SetDataset(dataset)
	if p.writer != nil {
		if writeErr := p.writer.WriteDataset(dataset); writeErr != nil {
			logging.Error(p.logger, "poller snapshot write failed", writeErr)
		}
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed dataset",
		logging.FieldCount, len(dataset.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
