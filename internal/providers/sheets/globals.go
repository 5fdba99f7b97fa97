package sheets

import (
	"errors"
	"fmt"

	"amongus-stats-service/internal/domain"
	"amongus-stats-service/internal/stats"
)

// The globals tab is laid out by hand, not as a regular table: one scalar
// lives every third record row under the "Games Played" column, with its
// label in the row above it. The offsets below are a contract with whoever
// edits the spreadsheet — inserting or reordering rows there breaks this
// reader. Unlike every other normalizer, this one fails loudly: each offset's
// label is validated so layout drift surfaces as a SchemaMismatchError
// instead of silently binding the wrong scalar.
type globalScalar struct {
	offset int
	label  string // expected text of the row above; empty for the first scalar
	assign func(*domain.GlobalStats, int)
}

var globalsLayout = []globalScalar{
	{0, "", func(g *domain.GlobalStats, v int) { g.TotalGames = v }},
	{3, "Crewmate Wins by Tasks", func(g *domain.GlobalStats, v int) { g.CrewmateWinsByTasks = v }},
	{6, "Imposter Wins by Crisis", func(g *domain.GlobalStats, v int) { g.ImposterWinsByCrisis = v }},
	{9, "Players Voted Out", func(g *domain.GlobalStats, v int) { g.PlayersVotedOut = v }},
	{12, "Emergency Meetings", func(g *domain.GlobalStats, v int) { g.EmergencyMeetings = v }},
	{15, "Bodies Reported", func(g *domain.GlobalStats, v int) { g.BodiesReported = v }},
	{18, "Kills", func(g *domain.GlobalStats, v int) { g.Kills = v }},
	{21, "Total Tasks", func(g *domain.GlobalStats, v int) { g.TotalTasks = v }},
	{24, "Tasks Completed", func(g *domain.GlobalStats, v int) { g.TotalTasksCompleted = v }},
}

// SchemaMismatchError reports that the globals tab no longer matches the
// fixed-offset layout this reader expects.
type SchemaMismatchError struct {
	Offset   int
	Expected string
	Got      string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("globals sheet layout drift at row %d: expected label %q, got %q", e.Offset, e.Expected, e.Got)
}

// AsSchemaMismatch attempts to unwrap an error into a SchemaMismatchError.
func AsSchemaMismatch(err error) (*SchemaMismatchError, bool) {
	var sm *SchemaMismatchError
	if errors.As(err, &sm) {
		return sm, true
	}
	return nil, false
}

// MapGlobals converts the globals tab: the fixed-offset scalars plus the
// role-win and map-frequency columns, which are regular vertical tables.
func MapGlobals(records []Record) (domain.GlobalStats, error) {
	var globals domain.GlobalStats
	if len(records) == 0 {
		return globals, nil
	}

	for _, scalar := range globalsLayout {
		if scalar.label != "" {
			got := ""
			if scalar.offset-1 < len(records) {
				got = records[scalar.offset-1].Str(colGlobalScalar)
			}
			if !labelMatches(got, scalar.label) {
				return domain.GlobalStats{}, &SchemaMismatchError{
					Offset:   scalar.offset,
					Expected: scalar.label,
					Got:      got,
				}
			}
		}
		if scalar.offset < len(records) {
			scalar.assign(&globals, records[scalar.offset].Int(colGlobalScalar))
		}
	}

	for _, rec := range records {
		if name := rec.Str(colRoleName); name != "" && rec[colRoleWins] != "" {
			globals.RoleWins = append(globals.RoleWins, domain.RoleWins{
				Name: name,
				Wins: rec.Int(colRoleWins),
			})
		}
		if name := rec.Str(colMapFreqName); name != "" && rec[colMapFreqCount] != "" {
			globals.MapFrequencies = append(globals.MapFrequencies, domain.MapFrequency{
				Name:  name,
				Count: rec.Int(colMapFreqCount),
			})
		}
	}

	return globals, nil
}

func labelMatches(got, expected string) bool {
	return stats.Key(got) == stats.Key(expected)
}
