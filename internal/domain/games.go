package domain

// Winner identifies which faction took a game.
type Winner string

const (
	WinnerCrewmate Winner = "Crewmate"
	WinnerImposter Winner = "Imposter"
	WinnerOther    Winner = "Other"
)

// PlayerRoleEntry is one roster slot of a game: a trimmed player name and the
// role they played, when the sheet recorded one.
type PlayerRoleEntry struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}

// GameRecord is one round as logged in the games sheet. GameNumber is the
// natural key within a snapshot but the sheet does not guarantee uniqueness.
type GameRecord struct {
	GameNumber int               `json:"gameNumber"`
	VideoURL   string            `json:"videoUrl"`
	Winner     Winner            `json:"winner"`
	MapName    string            `json:"mapName"`
	Players    []PlayerRoleEntry `json:"players"`
}

// EventRecord is one row of the per-game event breakdown sheet, ordered by
// Sequence within a game.
type EventRecord struct {
	GameNumber      int    `json:"gameNumber"`
	Sequence        int    `json:"sequence"`
	EventType       string `json:"eventType"`
	PrimaryPlayer   string `json:"primaryPlayer"`
	SecondaryPlayer string `json:"secondaryPlayer,omitempty"`
}

// KillEdge is a directed weighted edge in the kill graph.
type KillEdge struct {
	Killer string `json:"killer"`
	Victim string `json:"victim"`
	Count  int    `json:"count"`
}

// TeammateGroup is one observed imposter-team composition and its combined
// record across history.
type TeammateGroup struct {
	Teammates []string `json:"teammates"`
	Games     int      `json:"games"`
	Wins      int      `json:"wins"`
	WinRate   float64  `json:"winRate"`
}

// Session groups the rounds that belong to one recorded video.
type Session struct {
	VideoID       string            `json:"videoId"`
	Thumbnail     string            `json:"thumbnail,omitempty"`
	VideoURL      string            `json:"videoUrl"`
	MapName       string            `json:"mapName"`
	MapImage      string            `json:"mapImage,omitempty"`
	Games         []GameRecord      `json:"games"`
	Players       []PlayerRoleEntry `json:"players"`
	MaxGameNumber int               `json:"maxGameNumber"`
}

// PlayerGame is a game from one player's perspective: the round itself plus
// the role they played and the breakdown events that involve them.
type PlayerGame struct {
	GameRecord
	PlayedRole string        `json:"playedRole,omitempty"`
	Events     []EventRecord `json:"events"`
	VideoID    string        `json:"videoId,omitempty"`
	Thumbnail  string        `json:"thumbnail,omitempty"`
}
