package games

import (
	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/stats"
)

// DefaultPageSize is the session-list page size when the client sends none.
const DefaultPageSize = 20

// DatasetSource exposes the current dataset snapshot.
type DatasetSource interface {
	Dataset() (domain.Dataset, bool)
}

// Service derives the session list from the game log.
type Service struct {
	source DatasetSource
}

// NewService constructs a Service over the given source.
func NewService(source DatasetSource) *Service {
	return &Service{source: source}
}

// Sessions groups all games into video sessions, most recent first, and
// returns the requested page.
func (s *Service) Sessions(page, limit int) ([]domain.Session, stats.Page) {
	dataset, _ := s.source.Dataset()
	sessions := stats.GroupSessions(dataset.Games)
	return stats.Paginate(sessions, page, limit, DefaultPageSize)
}
