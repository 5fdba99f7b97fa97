package providers

import (
	"context"
	"log/slog"
	"time"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/logging"
	"amongus-stats-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DatasetProvider with retry/backoff behavior and
// records attempt metrics.
type retryingProvider struct {
	inner       DatasetProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used. Rate limit responses wait
// out the upstream Retry-After when it exceeds the computed backoff.
func NewRetryingProvider(inner DatasetProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DatasetProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		dataset, err := r.inner.FetchDataset(ctx)
		r.metrics.RecordFetchAttempt(r.name, time.Since(start), err)
		if err == nil {
			return dataset, nil
		}
		lastErr = err

		delay := r.backoffFn(attempt)
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
			if rl.RetryAfter > delay {
				delay = rl.RetryAfter
			}
		}

		if attempt == r.maxAttempts {
			break
		}
		r.logWarn(ctx, "provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return domain.Dataset{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "attempts", r.maxAttempts, "err", lastErr)
	return domain.Dataset{}, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
