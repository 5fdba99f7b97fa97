package stats

import (
	"sort"
	"strings"

	"amongus-stats-service/internal/domain"
)

// mapImages pairs the known map names with their artwork paths served by the UI.
var mapImages = map[string]string{
	"The Skeld":    "/maps/The_Skeld.webp",
	"MIRA HQ":      "/maps/MIRA_HQ.webp",
	"Polus":        "/maps/Polus.webp",
	"The Airship":  "/maps/The_Airship.webp",
	"The Fungle":   "/maps/The_Fungle.webp",
	"Bigger Skeld": "/maps/Bigger_Skeld.webp",
}

const fallbackMapImage = "/maps/error.jpeg"

// MapImage resolves a map name to its artwork path.
func MapImage(name string) string {
	if img, ok := mapImages[name]; ok {
		return img
	}
	return fallbackMapImage
}

// MapSummaries turns the globals map-frequency column into the map list,
// most played first.
func MapSummaries(globals domain.GlobalStats) []domain.MapSummary {
	maps := make([]domain.MapSummary, 0, len(globals.MapFrequencies))
	for _, m := range globals.MapFrequencies {
		maps = append(maps, domain.MapSummary{
			Name:  m.Name,
			Count: m.Count,
			Image: MapImage(m.Name),
		})
	}
	sort.SliceStable(maps, func(i, j int) bool {
		return maps[i].Count > maps[j].Count
	})
	return maps
}

// FilterByMap keeps the games played on the named map. URL path segments
// spell spaces as underscores, so both spellings are accepted.
func FilterByMap(games []domain.GameRecord, mapName string) []domain.GameRecord {
	direct := strings.ToLower(mapName)
	normalized := strings.ReplaceAll(direct, "_", " ")

	filtered := make([]domain.GameRecord, 0)
	for _, g := range games {
		name := strings.ToLower(g.MapName)
		if name == direct || name == normalized {
			filtered = append(filtered, g)
		}
	}
	return filtered
}
