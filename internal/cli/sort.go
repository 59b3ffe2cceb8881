package cli

import (
	"sort"

	"github.com/pfrederiksen/nba-stats/internal/teamstats"
)

// SortOrder represents the available sorting options
type SortOrder string

const (
	SortByTeam  SortOrder = "team"
	SortByValue SortOrder = "value"
)

// sortAverages returns a copy of averages in the requested order
func sortAverages(averages teamstats.Averages, sortOrder SortOrder) teamstats.Averages {
	sorted := make(teamstats.Averages, len(averages))
	copy(sorted, averages)

	switch sortOrder {
	case SortByTeam:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Team < sorted[j].Team
		})
	case SortByValue:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Average != sorted[j].Average {
				return sorted[i].Average < sorted[j].Average
			}
			// If averages are equal, sort by team
			return sorted[i].Team < sorted[j].Team
		})
	}
	return sorted
}
