package overview

import (
	"context"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/stats"
)

// DatasetSource exposes the current dataset snapshot.
type DatasetSource interface {
	Dataset() (domain.Dataset, bool)
}

// VideoFinder looks up the newest series upload.
type VideoFinder interface {
	LatestVideo(ctx context.Context) (*domain.LatestVideo, error)
}

// Service builds the dashboard overview and resolves the latest series video.
type Service struct {
	source DatasetSource
	feed   VideoFinder
}

// NewService constructs a Service. The feed may be nil when no channels are
// configured; LatestVideo then reports nothing found.
func NewService(source DatasetSource, feed VideoFinder) *Service {
	return &Service{source: source, feed: feed}
}

// Overview aggregates the dataset into the dashboard headline numbers. The
// second return reports whether a dataset has been loaded at all.
func (s *Service) Overview() (domain.Overview, bool) {
	dataset, ok := s.source.Dataset()
	return stats.BuildOverview(dataset.Globals, dataset.Players), ok
}

// LatestVideo returns the newest upload whose title mentions the series, or
// nil when none of the configured channels has one.
func (s *Service) LatestVideo(ctx context.Context) (*domain.LatestVideo, error) {
	if s.feed == nil {
		return nil, nil
	}
	return s.feed.LatestVideo(ctx)
}
