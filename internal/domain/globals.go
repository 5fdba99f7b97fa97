package domain

// RoleWins is a role label and its total win count from the globals sheet.
type RoleWins struct {
	Name string `json:"name"`
	Wins int    `json:"wins"`
}

// MapFrequency counts how often a map was played.
type MapFrequency struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GlobalStats are the spreadsheet-wide scalar totals plus the role-win and
// map-frequency columns of the globals sheet.
type GlobalStats struct {
	TotalGames           int            `json:"totalGames"`
	CrewmateWinsByTasks  int            `json:"crewmateWinsByTasks"`
	ImposterWinsByCrisis int            `json:"imposterWinsByCrisis"`
	PlayersVotedOut      int            `json:"playersVotedOut"`
	EmergencyMeetings    int            `json:"emergencyMeetings"`
	BodiesReported       int            `json:"bodiesReported"`
	Kills                int            `json:"kills"`
	TotalTasks           int            `json:"totalTasks"`
	TotalTasksCompleted  int            `json:"totalTasksCompleted"`
	RoleWins             []RoleWins     `json:"roleWins"`
	MapFrequencies       []MapFrequency `json:"mapFrequencies"`
}

// MapSummary is a map list entry with its artwork path.
type MapSummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Image string `json:"image"`
}

// OverviewMap is the most-played map as shown on the dashboard.
type OverviewMap struct {
	Name       string `json:"name"`
	TotalGames int    `json:"totalGames"`
}

// OverviewExtras carries the secondary dashboard counters.
type OverviewExtras struct {
	TasksCompleted       int `json:"tasksCompleted"`
	EmergencyMeetings    int `json:"emergencyMeetings"`
	BodiesReported       int `json:"bodiesReported"`
	Kills                int `json:"kills"`
	ImposterWinsByCrisis int `json:"imposterWinsByCrisis"`
	CrewmateWinsByTasks  int `json:"crewmateWinsByTasks"`
}

// Overview is the dashboard summary.
type Overview struct {
	TotalGames      int            `json:"totalGames"`
	TotalPlayers    int            `json:"totalPlayers"`
	ImposterWins    int            `json:"imposterWins"`
	CrewmateWins    int            `json:"crewmateWins"`
	TopPlayer       *PlayerStats   `json:"topPlayer,omitempty"`
	MostPlayedMap   OverviewMap    `json:"mostPlayedMap"`
	AdditionalStats OverviewExtras `json:"additionalStats"`
}

// Dataset is one normalized snapshot of all six sheets.
type Dataset struct {
	Games          []GameRecord
	Players        []PlayerStats
	Globals        GlobalStats
	KillEdges      []KillEdge
	TeammateGroups []TeammateGroup
	Events         []EventRecord
}

// Empty reports whether the snapshot carries no rows at all.
func (d Dataset) Empty() bool {
	return len(d.Games) == 0 && len(d.Players) == 0 && len(d.KillEdges) == 0 &&
		len(d.TeammateGroups) == 0 && len(d.Events) == 0 && d.Globals.TotalGames == 0
}
