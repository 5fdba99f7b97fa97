package domain

// PlayerStats is one row of the player sheet. Rates (win %, KDR, task
// completion) are carried through from the source, not recomputed here.
type PlayerStats struct {
	Name                 string  `json:"name"`
	GamesPlayed          int     `json:"gamesPlayed"`
	Wins                 int     `json:"wins"`
	Losses               int     `json:"losses"`
	WinRate              float64 `json:"winRate"`
	Kills                int     `json:"kills"`
	Deaths               int     `json:"deaths"`
	KDR                  float64 `json:"kdr"`
	KillsAsImposter      int     `json:"killsAsImposter"`
	KillsPerImposterGame float64 `json:"killsPerImposterGame"`
	ImposterGames        int     `json:"imposterGames"`
	ImposterWins         int     `json:"imposterWins"`
	ImposterWinRate      float64 `json:"imposterWinRate"`
	CrewmateGames        int     `json:"crewmateGames"`
	CrewmateWins         int     `json:"crewmateWins"`
	CrewmateWinRate      float64 `json:"crewmateWinRate"`
	NeutralGames         int     `json:"neutralGames"`
	NeutralWins          int     `json:"neutralWins"`
	NeutralWinRate       float64 `json:"neutralWinRate"`
	LoverGames           int     `json:"loverGames"`
	LoverWins            int     `json:"loverWins"`
	LoverWinRate         float64 `json:"loverWinRate"`
	TotalTasks           int     `json:"totalTasks"`
	TasksCompleted       int     `json:"tasksCompleted"`
	TaskCompletionRate   float64 `json:"taskCompletionRate"`
	AllTasksCompleted    int     `json:"allTasksCompleted"`
	VotedOut             int     `json:"votedOut"`
	EmergencyMeetings    int     `json:"emergencyMeetings"`
	BodiesReported       int     `json:"bodiesReported"`
	VotedOutFirst        int     `json:"votedOutFirst"`
	FirstDeathOfGame     int     `json:"firstDeathOfGame"`
	DeathInFirstRound    int     `json:"deathInFirstRound"`
	Disconnected         int     `json:"disconnected"`
	RageQuit             int     `json:"rageQuit"`
}

// TopTarget is one entry of a player's most-killed list.
type TopTarget struct {
	Victim string `json:"victim"`
	Count  int    `json:"count"`
}

// TeammatePair is a duo imposter record seen from one player's side.
type TeammatePair struct {
	Partner string  `json:"partner"`
	Games   int     `json:"games"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
}

// PlayerProfile is the full per-player view served by the API.
type PlayerProfile struct {
	PlayerStats
	TopTargets    []TopTarget    `json:"topTargets"`
	BestTeammates []TeammatePair `json:"bestTeammates"`
}
