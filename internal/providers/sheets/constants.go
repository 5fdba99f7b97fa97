package sheets

import "time"

// Table selects one of the six sheet tabs by its role in the pipeline.
type Table string

const (
	TablePlayers        Table = "players"
	TableGlobals        Table = "globals"
	TableGames          Table = "games"
	TableEvents         Table = "events"
	TableKillEdges      Table = "kill_edges"
	TableTeammateGroups Table = "teammate_groups"
)

// Tables lists every tab a full dataset fetch needs.
var Tables = []Table{
	TablePlayers,
	TableGlobals,
	TableGames,
	TableEvents,
	TableKillEdges,
	TableTeammateGroups,
}

const (
	defaultBaseURL     = "https://docs.google.com/spreadsheets/d"
	defaultHTTPTimeout = 15 * time.Second
)

// Published gid of each tab in the source spreadsheet.
var defaultGIDs = map[Table]string{
	TablePlayers:        "0",
	TableGlobals:        "783570152",
	TableGames:          "1053703173",
	TableEvents:         "554027446",
	TableKillEdges:      "1583768346",
	TableTeammateGroups: "1320392700",
}

// Column headers as they appear in the sheet. Header lookups strip BOMs and
// surrounding whitespace before matching.
const (
	colGameNumber      = "Game Number"
	colVideoLink       = "Video Link"
	colWinner          = "Winner"
	colMapName         = "Map Name"
	colPlayersRoles    = "Players, Roles and Tasks"
	colSequence        = "Sequence"
	colEventType       = "Event Type"
	colPrimaryPlayer   = "Primary Player"
	colSecondaryPlayer = "Secondary Player"
	colKillTarget      = "Target"
	colKillCount       = "Kill Count"
	colImposterCombo   = "Imposter Combination"
	colComboGames      = "Number of Games"
	colComboWins       = "Wins"
	colComboWinRate    = "Win %"
	colRoleName        = "Role Name"
	colRoleWins        = "Wins"
	colMapFreqName     = "Map Name"
	colMapFreqCount    = "Number of Games"
	colGlobalScalar    = "Games Played"
)
