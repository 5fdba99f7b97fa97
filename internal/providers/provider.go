package providers

import (
	"context"

	"amongus-stats-service/internal/domain"
)

// DatasetProvider fetches and normalizes a full dataset snapshot: all six
// sheet tables in one call. Implementations surface a single error when any
// table cannot be fetched; per-row defects never bubble up (they degrade to
// defaults during normalization).
type DatasetProvider interface {
	FetchDataset(ctx context.Context) (domain.Dataset, error)
}
