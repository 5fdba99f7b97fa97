package players

import (
	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/stats"
)

const (
	// DefaultPageSize is the per-player game page size when the client
	// sends none.
	DefaultPageSize = 10

	// profileListLimit caps the top-target and best-teammate lists on a
	// profile.
	profileListLimit = 3
)

// DatasetSource exposes the current dataset snapshot.
type DatasetSource interface {
	Dataset() (domain.Dataset, bool)
}

// Service derives per-player views from the dataset.
type Service struct {
	source DatasetSource
}

// NewService constructs a Service over the given source.
func NewService(source DatasetSource) *Service {
	return &Service{source: source}
}

// Players lists every player's stats row in sheet order.
func (s *Service) Players() []domain.PlayerStats {
	dataset, _ := s.source.Dataset()
	if dataset.Players == nil {
		return []domain.PlayerStats{}
	}
	return dataset.Players
}

// Profile assembles one player's full view: their stats row plus their top
// kill targets and best imposter duos. Lookup is by canonical name, so case
// and surrounding whitespace do not matter.
func (s *Service) Profile(name string) (domain.PlayerProfile, bool) {
	dataset, _ := s.source.Dataset()
	row, ok := stats.FindPlayer(dataset.Players, name)
	if !ok {
		return domain.PlayerProfile{}, false
	}
	return domain.PlayerProfile{
		PlayerStats:   row,
		TopTargets:    stats.TopTargets(dataset.KillEdges, row.Name, profileListLimit),
		BestTeammates: stats.BestTeammates(dataset.TeammateGroups, row.Name, profileListLimit),
	}, true
}

// Games returns the games a player appeared in, most recent first, with the
// events naming them attached. Unknown players get an empty page rather than
// an error.
func (s *Service) Games(name string, page, limit int) ([]domain.PlayerGame, stats.Page) {
	dataset, _ := s.source.Dataset()
	games := stats.PlayerGames(dataset.Games, dataset.Events, name)
	return stats.Paginate(games, page, limit, DefaultPageSize)
}
