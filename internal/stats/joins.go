package stats

import (
	"sort"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/youtube"
)

// FindPlayer locates a player's stats row by canonical name.
func FindPlayer(players []domain.PlayerStats, name string) (domain.PlayerStats, bool) {
	key := Key(name)
	for _, p := range players {
		if Key(p.Name) == key {
			return p, true
		}
	}
	return domain.PlayerStats{}, false
}

// TopTargets returns the players a killer eliminated most, highest count
// first. The sort is stable so ties keep their sheet order.
func TopTargets(edges []domain.KillEdge, killer string, limit int) []domain.TopTarget {
	key := Key(killer)
	targets := make([]domain.TopTarget, 0)
	for _, e := range edges {
		if Key(e.Killer) == key {
			targets = append(targets, domain.TopTarget{Victim: e.Victim, Count: e.Count})
		}
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].Count > targets[j].Count
	})
	if limit > 0 && len(targets) > limit {
		targets = targets[:limit]
	}
	return targets
}

// BestTeammates returns a player's strongest imposter duos: only pairs are
// considered, sorted by win rate then wins, highest first.
func BestTeammates(groups []domain.TeammateGroup, name string, limit int) []domain.TeammatePair {
	key := Key(name)
	pairs := make([]domain.TeammatePair, 0)
	for _, g := range groups {
		if len(g.Teammates) != 2 {
			continue
		}
		var partner string
		found := false
		for _, t := range g.Teammates {
			if Key(t) == key {
				found = true
			} else {
				partner = t
			}
		}
		if !found {
			continue
		}
		pairs = append(pairs, domain.TeammatePair{
			Partner: partner,
			Games:   g.Games,
			Wins:    g.Wins,
			WinRate: g.WinRate,
		})
	}
	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].WinRate != pairs[j].WinRate {
			return pairs[i].WinRate > pairs[j].WinRate
		}
		return pairs[i].Wins > pairs[j].Wins
	})
	if limit > 0 && len(pairs) > limit {
		pairs = pairs[:limit]
	}
	return pairs
}

// PlayerGames joins a player against the game log and event breakdowns:
// the games they appear in, the role they played, and the events that name
// them, most recent game first. Events within a game keep sequence order.
func PlayerGames(games []domain.GameRecord, events []domain.EventRecord, name string) []domain.PlayerGame {
	key := Key(name)
	result := make([]domain.PlayerGame, 0)

	for _, g := range games {
		var entry *domain.PlayerRoleEntry
		for i := range g.Players {
			if Key(g.Players[i].Name) == key {
				entry = &g.Players[i]
				break
			}
		}
		if entry == nil {
			continue
		}

		gameEvents := make([]domain.EventRecord, 0)
		for _, e := range events {
			if e.GameNumber != g.GameNumber {
				continue
			}
			if Key(e.PrimaryPlayer) == key || (e.SecondaryPlayer != "" && Key(e.SecondaryPlayer) == key) {
				gameEvents = append(gameEvents, e)
			}
		}
		sort.SliceStable(gameEvents, func(i, j int) bool {
			return gameEvents[i].Sequence < gameEvents[j].Sequence
		})

		videoID := youtube.ExtractID(g.VideoURL)
		result = append(result, domain.PlayerGame{
			GameRecord: g,
			PlayedRole: entry.Role,
			Events:     gameEvents,
			VideoID:    videoID,
			Thumbnail:  youtube.Thumbnail(videoID),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].GameNumber > result[j].GameNumber
	})
	return result
}
