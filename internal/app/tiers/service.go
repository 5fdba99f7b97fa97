package tiers

import (
	"context"
	"errors"

	"amongus-stats-service/internal/community"
	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/stats"
)

// ErrInvalidSubmission reports a submission missing its user identity or
// rankings.
var ErrInvalidSubmission = errors.New("tier submission requires userId, userName and rankings")

// Consensus is the aggregated tier list served to every reader.
type Consensus struct {
	Rankings    map[string]string `json:"rankings"`
	Submissions int               `json:"submissions"`
}

// Service aggregates tier-list submissions into the community consensus.
type Service struct {
	store community.Store
}

// NewService constructs a Service over the given store.
func NewService(store community.Store) *Service {
	return &Service{store: store}
}

// Consensus recomputes the community tier list from every stored submission.
func (s *Service) Consensus(ctx context.Context) (Consensus, error) {
	subs, err := s.store.TierLists(ctx)
	if err != nil {
		return Consensus{}, err
	}
	return Consensus{
		Rankings:    stats.AggregateTiers(subs),
		Submissions: len(subs),
	}, nil
}

// UserList returns one user's own submission.
func (s *Service) UserList(ctx context.Context, userID string) (domain.TierSubmission, bool, error) {
	return s.store.TierList(ctx, userID)
}

// Save validates and upserts a submission. Resubmitting replaces the user's
// prior list entirely; the store stamps the submission time.
func (s *Service) Save(ctx context.Context, sub domain.TierSubmission) error {
	if sub.UserID == "" || sub.UserName == "" || len(sub.Rankings) == 0 {
		return ErrInvalidSubmission
	}
	return s.store.SaveTierList(ctx, sub)
}
