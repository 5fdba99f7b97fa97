package config

const (
	envSheetBaseURL     = "SHEET_BASE_URL"
	envSheetID          = "SHEET_ID"
	envGIDPlayers       = "SHEET_GID_PLAYERS"
	envGIDGlobals       = "SHEET_GID_GLOBALS"
	envGIDGames         = "SHEET_GID_GAMES"
	envGIDEvents        = "SHEET_GID_EVENTS"
	envGIDKillEdges     = "SHEET_GID_KILL_EDGES"
	envGIDTeammateCombo = "SHEET_GID_TEAMMATE_GROUPS"
)

// SheetsConfig controls how we reach the published spreadsheet. GIDs only
// carries explicit overrides; the client knows the published tabs.
type SheetsConfig struct {
	BaseURL string
	SheetID string
	GIDs    map[string]string
}

func loadSheets() SheetsConfig {
	gids := map[string]string{
		"players":         envOrDefault(envGIDPlayers, ""),
		"globals":         envOrDefault(envGIDGlobals, ""),
		"games":           envOrDefault(envGIDGames, ""),
		"events":          envOrDefault(envGIDEvents, ""),
		"kill_edges":      envOrDefault(envGIDKillEdges, ""),
		"teammate_groups": envOrDefault(envGIDTeammateCombo, ""),
	}
	return SheetsConfig{
		BaseURL: envOrDefault(envSheetBaseURL, ""),
		SheetID: envOrDefault(envSheetID, ""),
		GIDs:    gids,
	}
}
