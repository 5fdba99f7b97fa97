package sheets

import (
	"strconv"
	"strings"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/stats"
)

// Int reads a column as an integer. Anything that is not a clean number
// resolves to 0; a numeric prefix before junk still counts, matching how the
// sheet's own formulas round-trip.
func (r Record) Int(column string) int {
	return atoiPrefix(r[column])
}

// Float reads a column as a float with the same never-fail contract as Int.
func (r Record) Float(column string) float64 {
	return parseFloatPrefix(r[column])
}

// Str reads a column as a trimmed string.
func (r Record) Str(column string) string {
	return strings.TrimSpace(r[column])
}

func atoiPrefix(raw string) int {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	return int(parseFloatPrefix(raw))
}

// parseFloatPrefix parses the longest leading numeric prefix, so "44.83%"
// reads as 44.83 and garbage reads as 0.
func parseFloatPrefix(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	end := 0
	seenDot := false
	for end < len(raw) {
		ch := raw[end]
		if ch == '-' && end == 0 {
			end++
			continue
		}
		if ch == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if ch < '0' || ch > '9' {
			break
		}
		end++
	}
	end = scanExponent(raw, end)
	v, err := strconv.ParseFloat(raw[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

// scanExponent extends a numeric prefix over a trailing exponent, so "1e5"
// reads as 100000. An exponent with no digits stops at the mantissa.
func scanExponent(raw string, end int) int {
	if end == 0 || end >= len(raw) || (raw[end] != 'e' && raw[end] != 'E') {
		return end
	}
	i := end + 1
	if i < len(raw) && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	if i >= len(raw) || raw[i] < '0' || raw[i] > '9' {
		return end
	}
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	return i
}

// MapGames converts games-sheet records. Roster cells hold "Name - Role"
// entries split on commas or newlines; empty names are dropped and duplicate
// names within one game keep their first entry.
func MapGames(records []Record) []domain.GameRecord {
	games := make([]domain.GameRecord, 0, len(records))
	for _, rec := range records {
		games = append(games, domain.GameRecord{
			GameNumber: rec.Int(colGameNumber),
			VideoURL:   rec.Str(colVideoLink),
			Winner:     parseWinner(rec.Str(colWinner)),
			MapName:    rec.Str(colMapName),
			Players:    parseRoster(rec[colPlayersRoles]),
		})
	}
	return games
}

func parseWinner(raw string) domain.Winner {
	switch stats.Key(raw) {
	case "crewmate", "crewmates":
		return domain.WinnerCrewmate
	case "imposter", "imposters", "impostor", "impostors":
		return domain.WinnerImposter
	default:
		return domain.WinnerOther
	}
}

func parseRoster(raw string) []domain.PlayerRoleEntry {
	if raw == "" {
		return nil
	}
	split := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	entries := make([]domain.PlayerRoleEntry, 0, len(split))
	for _, part := range split {
		name, role, _ := strings.Cut(part, "-")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		dup := false
		for _, existing := range entries {
			if stats.SameName(existing.Name, name) {
				dup = true
				break
			}
		}
		if dup {
			continue
		}
		entries = append(entries, domain.PlayerRoleEntry{
			Name: name,
			Role: strings.TrimSpace(role),
		})
	}
	return entries
}

// MapPlayers converts player-sheet records. Rates are carried through from
// the sheet, not recomputed.
func MapPlayers(records []Record) []domain.PlayerStats {
	players := make([]domain.PlayerStats, 0, len(records))
	for _, rec := range records {
		players = append(players, domain.PlayerStats{
			Name:                 rec.Str("Name"),
			GamesPlayed:          rec.Int("Games Played"),
			Wins:                 rec.Int("Wins"),
			Losses:               rec.Int("Losses"),
			WinRate:              rec.Float("Win %"),
			Kills:                rec.Int("Kills"),
			Deaths:               rec.Int("Deaths"),
			KDR:                  rec.Float("KDR"),
			KillsAsImposter:      rec.Int("Kills as Imposter"),
			KillsPerImposterGame: rec.Float("Kills Per Imposter Game"),
			ImposterGames:        rec.Int("Imposter Games"),
			ImposterWins:         rec.Int("Imposter Wins"),
			ImposterWinRate:      rec.Float("Imposter Win %"),
			CrewmateGames:        rec.Int("Crewmate Games"),
			CrewmateWins:         rec.Int("Crewmate Wins"),
			CrewmateWinRate:      rec.Float("Crewmate Win %"),
			NeutralGames:         rec.Int("Neutral Games"),
			NeutralWins:          rec.Int("Neutral Wins"),
			NeutralWinRate:       rec.Float("Neutral Win %"),
			LoverGames:           rec.Int("Lover Games"),
			LoverWins:            rec.Int("Lover Wins"),
			LoverWinRate:         rec.Float("Lover Win %"),
			TotalTasks:           rec.Int("Total Tasks"),
			TasksCompleted:       rec.Int("Tasks Completed"),
			TaskCompletionRate:   rec.Float("Task Completion %"),
			AllTasksCompleted:    rec.Int("All Tasks Completed"),
			VotedOut:             rec.Int("Voted out"),
			EmergencyMeetings:    rec.Int("Emergency Meetings"),
			BodiesReported:       rec.Int("Bodies Reported"),
			VotedOutFirst:        rec.Int("Voted out First"),
			FirstDeathOfGame:     rec.Int("First Death of Game"),
			DeathInFirstRound:    rec.Int("Death in First Round"),
			Disconnected:         rec.Int("Disconnected"),
			RageQuit:             rec.Int("Rage Quit"),
		})
	}
	return players
}

// MapEvents converts event-breakdown records.
func MapEvents(records []Record) []domain.EventRecord {
	events := make([]domain.EventRecord, 0, len(records))
	for _, rec := range records {
		events = append(events, domain.EventRecord{
			GameNumber:      rec.Int(colGameNumber),
			Sequence:        rec.Int(colSequence),
			EventType:       rec.Str(colEventType),
			PrimaryPlayer:   rec.Str(colPrimaryPlayer),
			SecondaryPlayer: rec.Str(colSecondaryPlayer),
		})
	}
	return events
}

// MapKillEdges converts kill-pair records.
func MapKillEdges(records []Record) []domain.KillEdge {
	edges := make([]domain.KillEdge, 0, len(records))
	for _, rec := range records {
		edges = append(edges, domain.KillEdge{
			Killer: rec.Str(colPrimaryPlayer),
			Victim: rec.Str(colKillTarget),
			Count:  rec.Int(colKillCount),
		})
	}
	return edges
}

// MapTeammateGroups converts imposter-combination records. The combination
// cell holds a comma-separated member list.
func MapTeammateGroups(records []Record) []domain.TeammateGroup {
	groups := make([]domain.TeammateGroup, 0, len(records))
	for _, rec := range records {
		raw := rec[colImposterCombo]
		members := make([]string, 0, 3)
		for _, m := range strings.Split(raw, ",") {
			if m = strings.TrimSpace(m); m != "" {
				members = append(members, m)
			}
		}
		groups = append(groups, domain.TeammateGroup{
			Teammates: members,
			Games:     rec.Int(colComboGames),
			Wins:      rec.Int(colComboWins),
			WinRate:   rec.Float(colComboWinRate),
		})
	}
	return groups
}
