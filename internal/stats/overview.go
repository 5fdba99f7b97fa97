package stats

import "amongus-stats-service/internal/domain"

// BuildOverview combines the globals sheet and the player list into the
// dashboard summary. Role win counts are matched by exact label and default
// to zero when the sheet lacks the row. Ties for top player and most played
// map go to the first row in sheet order.
func BuildOverview(globals domain.GlobalStats, players []domain.PlayerStats) domain.Overview {
	overview := domain.Overview{
		TotalGames:   globals.TotalGames,
		TotalPlayers: len(players),
		ImposterWins: roleWins(globals, "Imposter"),
		CrewmateWins: roleWins(globals, "Crewmate"),
		AdditionalStats: domain.OverviewExtras{
			TasksCompleted:       globals.TotalTasksCompleted,
			EmergencyMeetings:    globals.EmergencyMeetings,
			BodiesReported:       globals.BodiesReported,
			Kills:                globals.Kills,
			ImposterWinsByCrisis: globals.ImposterWinsByCrisis,
			CrewmateWinsByTasks:  globals.CrewmateWinsByTasks,
		},
	}

	for i := range players {
		if overview.TopPlayer == nil || players[i].GamesPlayed > overview.TopPlayer.GamesPlayed {
			top := players[i]
			overview.TopPlayer = &top
		}
	}

	for _, m := range globals.MapFrequencies {
		if overview.MostPlayedMap.Name == "" || m.Count > overview.MostPlayedMap.TotalGames {
			overview.MostPlayedMap = domain.OverviewMap{Name: m.Name, TotalGames: m.Count}
		}
	}

	return overview
}

func roleWins(globals domain.GlobalStats, role string) int {
	for _, r := range globals.RoleWins {
		if r.Name == role {
			return r.Wins
		}
	}
	return 0
}
