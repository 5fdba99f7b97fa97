package stats

import (
	"sort"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/youtube"
)

// UnknownSession is the session key for games whose video URL yields no ID.
// All such games deliberately collapse into one session; splitting them into
// singletons would need product sign-off (they may well be unrelated
// recordings, but that is how the dashboard has always shown them).
const UnknownSession = "unknown"

// GroupSessions folds the game log into sessions keyed by extracted video
// ID. Session metadata (map, URL, thumbnail) comes from the first game seen
// for that video; rosters are merged with first-occurrence-wins per player.
// Sessions come back most recent first, by highest game number.
func GroupSessions(games []domain.GameRecord) []domain.Session {
	byID := make(map[string]*domain.Session)
	order := make([]string, 0)

	for _, game := range games {
		videoID := youtube.ExtractID(game.VideoURL)
		key := videoID
		if key == "" {
			key = UnknownSession
		}

		session, ok := byID[key]
		if !ok {
			session = &domain.Session{
				VideoID:   key,
				Thumbnail: youtube.Thumbnail(videoID),
				VideoURL:  game.VideoURL,
				MapName:   game.MapName,
				MapImage:  MapImage(game.MapName),
			}
			byID[key] = session
			order = append(order, key)
		}

		session.Games = append(session.Games, game)
		if game.GameNumber > session.MaxGameNumber {
			session.MaxGameNumber = game.GameNumber
		}
		mergeRoster(session, game.Players)
	}

	sessions := make([]domain.Session, 0, len(order))
	for _, key := range order {
		sessions = append(sessions, *byID[key])
	}
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].MaxGameNumber > sessions[j].MaxGameNumber
	})
	return sessions
}

func mergeRoster(session *domain.Session, players []domain.PlayerRoleEntry) {
	for _, p := range players {
		seen := false
		for _, existing := range session.Players {
			if SameName(existing.Name, p.Name) {
				seen = true
				break
			}
		}
		if !seen {
			session.Players = append(session.Players, p)
		}
	}
}
