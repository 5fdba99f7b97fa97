package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/metrics"
)

type scriptedProvider struct {
	calls   int
	errs    []error
	dataset domain.Dataset
}

func (p *scriptedProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	idx := p.calls
	p.calls++
	if idx < len(p.errs) && p.errs[idx] != nil {
		return domain.Dataset{}, p.errs[idx]
	}
	return p.dataset, nil
}

func TestRetryingProviderSucceedsFirstTry(t *testing.T) {
	inner := &scriptedProvider{dataset: domain.Dataset{Globals: domain.GlobalStats{TotalGames: 5}}}
	p := NewRetryingProvider(inner, nil, metrics.NewRecorder(), "test", 3, time.Millisecond)

	got, err := p.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Globals.TotalGames != 5 {
		t.Fatalf("unexpected dataset: %+v", got)
	}
	if inner.calls != 1 {
		t.Fatalf("expected 1 call, got %d", inner.calls)
	}
}

func TestRetryingProviderRetriesThenSucceeds(t *testing.T) {
	inner := &scriptedProvider{
		errs:    []error{errors.New("boom"), errors.New("boom again")},
		dataset: domain.Dataset{Globals: domain.GlobalStats{TotalGames: 7}},
	}
	rec := metrics.NewRecorder()
	p := NewRetryingProvider(inner, nil, rec, "test", 3, time.Millisecond)

	got, err := p.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Globals.TotalGames != 7 || inner.calls != 3 {
		t.Fatalf("expected success on third call, got calls=%d dataset=%+v", inner.calls, got)
	}
	if rec.FetchCalls("test") != 3 || rec.FetchErrors("test") != 2 {
		t.Fatalf("unexpected metrics: calls=%d errors=%d", rec.FetchCalls("test"), rec.FetchErrors("test"))
	}
}

func TestRetryingProviderExhaustsAttempts(t *testing.T) {
	wantErr := errors.New("permanent")
	inner := &scriptedProvider{errs: []error{wantErr, wantErr, wantErr}}
	p := NewRetryingProvider(inner, nil, metrics.NewRecorder(), "test", 3, time.Millisecond)

	_, err := p.FetchDataset(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected last error, got %v", err)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}
}

func TestRetryingProviderRecordsRateLimit(t *testing.T) {
	rlErr := &RateLimitError{Provider: "sheets", StatusCode: 429, RetryAfter: time.Millisecond}
	inner := &scriptedProvider{errs: []error{rlErr}}
	rec := metrics.NewRecorder()
	p := NewRetryingProvider(inner, nil, rec, "sheets", 2, time.Millisecond)

	if _, err := p.FetchDataset(context.Background()); err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if rec.RateLimitHits("sheets") != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", rec.RateLimitHits("sheets"))
	}
}

func TestRetryingProviderHonorsContext(t *testing.T) {
	inner := &scriptedProvider{errs: []error{errors.New("boom"), errors.New("boom")}}
	p := NewRetryingProvider(inner, nil, metrics.NewRecorder(), "test", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := p.FetchDataset(ctx)
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("fetch did not return after cancel")
	}
}
