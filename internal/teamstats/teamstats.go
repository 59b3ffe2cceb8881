package teamstats

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pfrederiksen/nba-stats/internal/table"
)

var (
	ErrNotNumeric = errors.New("column is not numeric")
	ErrNoTeams    = errors.New("no team rows to aggregate")
	ErrNoTeamCol  = fmt.Errorf("missing %s column", table.TeamColumn)
)

// TeamAverage is the mean of one statistic over a team's player rows
type TeamAverage struct {
	Team    string  `json:"team"`
	Average float64 `json:"average"`
}

// Averages holds one entry per team, ordered by team code
type Averages []TeamAverage

// TeamAverages computes the per-team mean of column, leaving out TOT rows
func TeamAverages(t *table.Table, column string) (Averages, error) {
	if !t.HasColumn(table.TeamColumn) {
		return nil, ErrNoTeamCol
	}
	if !t.HasColumn(column) {
		return nil, fmt.Errorf("%w: %s", table.ErrUnknownColumn, column)
	}
	if !hasTeamRows(t) {
		return nil, ErrNoTeams
	}

	df := t.Frame().Filter(dataframe.F{
		Colname:    table.TeamColumn,
		Comparator: series.CompFunc,
		Comparando: isTeamRow,
	})
	if df.Err != nil {
		return nil, fmt.Errorf("filtering %s rows: %w", table.TotalTeam, df.Err)
	}
	if df.Nrow() == 0 {
		return nil, ErrNoTeams
	}

	// Group on the raw text; GroupBy reloads groups with gota's default NaN markers.
	teams := df.Col(table.TeamColumn).Records()
	values := df.Col(column).Float()

	groups := make(map[string][]float64)
	for i, team := range teams {
		if math.IsNaN(values[i]) {
			return nil, fmt.Errorf("%w: %s", ErrNotNumeric, column)
		}
		groups[team] = append(groups[team], values[i])
	}

	averages := make(Averages, 0, len(groups))
	for team, xs := range groups {
		averages = append(averages, TeamAverage{
			Team:    team,
			Average: stats.Sample{Xs: xs}.Mean(),
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		return averages[i].Team < averages[j].Team
	})
	return averages, nil
}

// isTeamRow compares text so a NaN-looking team code still counts as a team
func isTeamRow(el series.Element) bool {
	return el.String() != table.TotalTeam
}

func hasTeamRows(t *table.Table) bool {
	teams, err := t.Column(table.TeamColumn)
	if err != nil {
		return false
	}
	for _, team := range teams {
		if team != table.TotalTeam {
			return true
		}
	}
	return false
}

// Values returns the averages in team order
func (a Averages) Values() []float64 {
	values := make([]float64, len(a))
	for i, ta := range a {
		values[i] = ta.Average
	}
	return values
}

// byValue returns a copy of a sorted by average. Ties keep team order.
func (a Averages) byValue() Averages {
	sorted := make(Averages, len(a))
	copy(sorted, a)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Average < sorted[j].Average
	})
	return sorted
}

// Min returns the team with the lowest average
func (a Averages) Min() (TeamAverage, bool) {
	if len(a) == 0 {
		return TeamAverage{}, false
	}
	return a.byValue()[0], true
}

// Max returns the team with the highest average
func (a Averages) Max() (TeamAverage, bool) {
	if len(a) == 0 {
		return TeamAverage{}, false
	}
	sorted := a.byValue()
	return sorted[len(sorted)-1], true
}
