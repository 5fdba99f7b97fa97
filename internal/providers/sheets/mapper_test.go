package sheets

import (
	"testing"

	"amongus-stats-service/internal/domain"
)

func TestRecordNumericReads(t *testing.T) {
	rec := Record{
		"int":     "42",
		"float":   "44.83",
		"percent": "44.83%",
		"junk":    "n/a",
		"empty":   "",
		"neg":     "-3",
	}

	if got := rec.Int("int"); got != 42 {
		t.Errorf("Int = %d, want 42", got)
	}
	if got := rec.Int("percent"); got != 44 {
		t.Errorf("Int over percent = %d, want 44", got)
	}
	if got := rec.Int("junk"); got != 0 {
		t.Errorf("Int over junk = %d, want 0", got)
	}
	if got := rec.Int("missing"); got != 0 {
		t.Errorf("Int over missing column = %d, want 0", got)
	}
	if got := rec.Int("neg"); got != -3 {
		t.Errorf("Int over negative = %d, want -3", got)
	}
	if got := rec.Float("float"); got != 44.83 {
		t.Errorf("Float = %v, want 44.83", got)
	}
	if got := rec.Float("percent"); got != 44.83 {
		t.Errorf("Float over percent = %v, want 44.83", got)
	}
	if got := rec.Float("empty"); got != 0 {
		t.Errorf("Float over empty = %v, want 0", got)
	}
}

func TestParseFloatPrefixExponents(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1e5", 100000},
		{"1E5", 100000},
		{"2.5e-1", 0.25},
		{"1e+2", 100},
		{"1e", 1},
		{"1e+", 1},
		{"1exciting", 1},
		{"3e2%", 300},
	}
	for _, tc := range cases {
		if got := parseFloatPrefix(tc.in); got != tc.want {
			t.Errorf("parseFloatPrefix(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseWinner(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Winner
	}{
		{"Crewmate", domain.WinnerCrewmate},
		{"crewmates", domain.WinnerCrewmate},
		{"Imposter", domain.WinnerImposter},
		{"Impostors", domain.WinnerImposter},
		{"IMPOSTER ", domain.WinnerImposter},
		{"Jester", domain.WinnerOther},
		{"", domain.WinnerOther},
	}
	for _, tc := range cases {
		if got := parseWinner(tc.in); got != tc.want {
			t.Errorf("parseWinner(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRoster(t *testing.T) {
	raw := "Harry - Imposter, Vik - Crewmate\nJJ - Crewmate, harry - Jester,  , Ethan"
	got := parseRoster(raw)

	if len(got) != 4 {
		t.Fatalf("expected 4 entries, got %d: %+v", len(got), got)
	}
	if got[0].Name != "Harry" || got[0].Role != "Imposter" {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}
	// Duplicate "harry" keeps the first entry's role.
	for _, e := range got[1:] {
		if e.Name == "harry" {
			t.Fatalf("duplicate name should have been dropped: %+v", got)
		}
	}
	// A bare name has no role.
	if got[3].Name != "Ethan" || got[3].Role != "" {
		t.Fatalf("unexpected bare entry: %+v", got[3])
	}
}

func TestMapGames(t *testing.T) {
	records := Records(ParseCSV(
		"Game Number,Video Link,Winner,Map Name,\"Players, Roles and Tasks\"\n" +
			"7,https://youtu.be/dQw4w9WgXcQ,Crewmates,The Skeld,\"Harry - Crewmate, Vik - Imposter\"\n",
	))
	games := MapGames(records)
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	g := games[0]
	if g.GameNumber != 7 || g.Winner != domain.WinnerCrewmate || g.MapName != "The Skeld" {
		t.Fatalf("unexpected game: %+v", g)
	}
	if len(g.Players) != 2 || g.Players[1].Role != "Imposter" {
		t.Fatalf("unexpected roster: %+v", g.Players)
	}
}

func TestMapPlayersDefensiveParsing(t *testing.T) {
	records := []Record{{
		"Name":         " Harry ",
		"Games Played": "300",
		"Win %":        "52.3%",
		"KDR":          "not tracked",
	}}
	players := MapPlayers(records)
	if len(players) != 1 {
		t.Fatalf("expected 1 player, got %d", len(players))
	}
	p := players[0]
	if p.Name != "Harry" || p.GamesPlayed != 300 {
		t.Fatalf("unexpected player: %+v", p)
	}
	if p.WinRate != 52.3 {
		t.Fatalf("winRate = %v, want 52.3", p.WinRate)
	}
	if p.KDR != 0 {
		t.Fatalf("junk KDR should read 0, got %v", p.KDR)
	}
}

func TestMapKillEdges(t *testing.T) {
	records := Records(ParseCSV("Primary Player,Target,Kill Count\nVik,Harry,7\n"))
	edges := MapKillEdges(records)
	if len(edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(edges))
	}
	if edges[0].Killer != "Vik" || edges[0].Victim != "Harry" || edges[0].Count != 7 {
		t.Fatalf("unexpected edge: %+v", edges[0])
	}
}

func TestMapTeammateGroups(t *testing.T) {
	records := Records(ParseCSV("Imposter Combination,Number of Games,Wins,Win %\n\"Vik, JJ\",4,2,50%\n"))
	groups := MapTeammateGroups(records)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if len(g.Teammates) != 2 || g.Teammates[0] != "Vik" || g.Teammates[1] != "JJ" {
		t.Fatalf("unexpected members: %+v", g.Teammates)
	}
	if g.Games != 4 || g.Wins != 2 || g.WinRate != 50 {
		t.Fatalf("unexpected record: %+v", g)
	}
}

func TestMapEvents(t *testing.T) {
	records := Records(ParseCSV("Game Number,Sequence,Event Type,Primary Player,Secondary Player\n3,1,Kill,Vik,Harry\n"))
	events := MapEvents(records)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	if e.GameNumber != 3 || e.Sequence != 1 || e.EventType != "Kill" || e.SecondaryPlayer != "Harry" {
		t.Fatalf("unexpected event: %+v", e)
	}
}
