package testutil

import (
	"context"

	"amongus-stats-service/internal/domain"
)

// GoodProvider returns the provided dataset with no error.
type GoodProvider struct {
	Data domain.Dataset
}

func (p GoodProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	_ = ctx
	return p.Data, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchDataset(ctx context.Context) (domain.Dataset, error) {
	return domain.Dataset{}, p.Err
}
