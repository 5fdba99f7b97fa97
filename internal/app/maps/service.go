package maps

import (
	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/stats"
)

// DefaultPageSize is the per-map session page size when the client sends none.
const DefaultPageSize = 10

// DatasetSource exposes the current dataset snapshot.
type DatasetSource interface {
	Dataset() (domain.Dataset, bool)
}

// Service derives map summaries and per-map session lists.
type Service struct {
	source DatasetSource
}

// NewService constructs a Service over the given source.
func NewService(source DatasetSource) *Service {
	return &Service{source: source}
}

// Maps lists every map with its play count, most played first.
func (s *Service) Maps() []domain.MapSummary {
	dataset, _ := s.source.Dataset()
	return stats.MapSummaries(dataset.Globals)
}

// Sessions returns the sessions played on the named map, most recent first.
// Underscores in mapName match spaces, so "The_Skeld" selects "The Skeld".
func (s *Service) Sessions(mapName string, page, limit int) ([]domain.Session, stats.Page) {
	dataset, _ := s.source.Dataset()
	sessions := stats.GroupSessions(stats.FilterByMap(dataset.Games, mapName))
	return stats.Paginate(sessions, page, limit, DefaultPageSize)
}
