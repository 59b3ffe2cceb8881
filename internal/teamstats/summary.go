package teamstats

import (
	"math"

	"github.com/aclements/go-moremath/stats"
	"github.com/pfrederiksen/nba-stats/internal/table"
)

// Summary describes how one statistic is spread across teams
type Summary struct {
	Column string      `json:"column"`
	Teams  Averages    `json:"teams"`
	Min    TeamAverage `json:"min"`
	Max    TeamAverage `json:"max"`
	Mean   float64     `json:"mean"`
	StdDev float64     `json:"std_dev"`
}

// Summarize aggregates column per team and describes the resulting averages
func Summarize(t *table.Table, column string) (*Summary, error) {
	teams, err := TeamAverages(t, column)
	if err != nil {
		return nil, err
	}

	lowest, _ := teams.Min()
	highest, _ := teams.Max()
	mean, std := Describe(teams.Values())

	return &Summary{
		Column: column,
		Teams:  teams,
		Min:    lowest,
		Max:    highest,
		Mean:   mean,
		StdDev: std,
	}, nil
}

// Describe returns the mean and population standard deviation of xs
func Describe(xs []float64) (mean, std float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}

	sample := stats.Sample{Xs: xs}
	mean = sample.Mean()
	if len(xs) < 2 {
		return mean, 0
	}

	// Sample.Variance divides by n-1
	n := float64(len(xs))
	std = math.Sqrt(sample.Variance() * (n - 1) / n)
	return mean, std
}

// Normal returns the normal distribution fitted to the team averages
func (s *Summary) Normal() stats.NormalDist {
	return stats.NormalDist{Mu: s.Mean, Sigma: s.StdDev}
}

// Curve samples dist's density at n evenly spaced points over mean ± 3σ
func Curve(dist stats.NormalDist, n int) (xs, ys []float64) {
	if n < 2 || dist.Sigma <= 0 {
		return nil, nil
	}

	lo := dist.Mu - 3*dist.Sigma
	step := 6 * dist.Sigma / float64(n-1)

	xs = make([]float64, n)
	ys = make([]float64, n)
	for i := range xs {
		xs[i] = lo + float64(i)*step
		ys[i] = dist.PDF(xs[i])
	}
	return xs, ys
}
