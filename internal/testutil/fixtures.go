package testutil

import "amongus-stats-service/internal/domain"

// SampleGame returns a minimal game fixture with the provided number and
// video.
func SampleGame(number int, videoURL string) domain.GameRecord {
	return domain.GameRecord{
		GameNumber: number,
		VideoURL:   videoURL,
		Winner:     domain.WinnerCrewmate,
		MapName:    "The Skeld",
		Players: []domain.PlayerRoleEntry{
			{Name: "Harry", Role: "Crewmate"},
			{Name: "Vik", Role: "Imposter"},
		},
	}
}

// SampleDataset builds a small but fully joined dataset: two games in one
// video, one player row per roster name, and matching graph rows.
func SampleDataset() domain.Dataset {
	video := "https://youtu.be/dQw4w9WgXcQ"
	return domain.Dataset{
		Games: []domain.GameRecord{
			SampleGame(1, video),
			SampleGame(2, video),
		},
		Players: []domain.PlayerStats{
			{Name: "Harry", GamesPlayed: 2, Wins: 2, WinRate: 100},
			{Name: "Vik", GamesPlayed: 2, Wins: 0},
		},
		Globals: domain.GlobalStats{
			TotalGames: 2,
			RoleWins: []domain.RoleWins{
				{Name: "Crewmate", Wins: 2},
				{Name: "Imposter", Wins: 0},
			},
			MapFrequencies: []domain.MapFrequency{
				{Name: "The Skeld", Count: 2},
			},
		},
		KillEdges: []domain.KillEdge{
			{Killer: "Vik", Victim: "Harry", Count: 3},
		},
		TeammateGroups: []domain.TeammateGroup{
			{Teammates: []string{"Vik", "JJ"}, Games: 4, Wins: 2, WinRate: 50},
		},
		Events: []domain.EventRecord{
			{GameNumber: 1, Sequence: 1, EventType: "Kill", PrimaryPlayer: "Vik", SecondaryPlayer: "Harry"},
		},
	}
}
