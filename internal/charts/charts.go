package charts

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pfrederiksen/nba-stats/internal/season"
	"github.com/pfrederiksen/nba-stats/internal/teamstats"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	HistogramBins = 10
	CurvePoints   = 100

	barWidth   = 20
	barSpacing = 8
)

var nameReplacer = strings.NewReplacer("%", "pct", "/", "_", " ", "_")

// slug turns a stat name into something safe for a file name ("FG%" -> "FGpct")
func slug(column string) string {
	return nameReplacer.Replace(column)
}

// BarChartName returns the file name of the per-team bar chart
func BarChartName(sn season.Season, column string) string {
	return fmt.Sprintf("%d_%s_team_averages.png", int(sn), slug(column))
}

// DistributionName returns the file name of the distribution chart
func DistributionName(sn season.Season, column string) string {
	return fmt.Sprintf("%d_%s_distribution.png", int(sn), slug(column))
}

// RenderTeamAverages draws one bar per team, coloured by team, as a PNG
func RenderTeamAverages(w io.Writer, s *teamstats.Summary, sn season.Season) error {
	bars := make([]chart.Value, 0, len(s.Teams))
	for _, ta := range s.Teams {
		color := TeamColor(ta.Team)
		bars = append(bars, chart.Value{
			Label: ta.Team,
			Value: ta.Average,
			Style: chart.Style{
				FillColor:   color,
				StrokeColor: color,
				StrokeWidth: 1,
			},
		})
	}

	width := len(bars)*(barWidth+barSpacing) + 200
	if width < 800 {
		width = 800
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("Average %s for each team in %d", s.Column, int(sn)),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		Width:      width,
		Height:     800,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		YAxis:      chart.YAxis{Name: s.Column},
		Bars:       bars,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering bar chart: %w", err)
	}
	return nil
}

// RenderDistribution draws a density histogram of the team averages with the fitted
// normal curve on top. The curve is left out when every team has the same average.
func RenderDistribution(w io.Writer, s *teamstats.Summary, sn season.Season) error {
	bins := teamstats.Histogram(s.Teams.Values(), HistogramBins)
	centers := make([]float64, len(bins))
	densities := make([]float64, len(bins))
	for i, b := range bins {
		centers[i] = b.Center()
		densities[i] = b.Density
	}

	histColor := drawing.ColorBlue.WithAlpha(128)
	series := []chart.Series{
		chart.HistogramSeries{
			Name: "Team Averages",
			Style: chart.Style{
				FillColor:   histColor,
				StrokeColor: histColor,
			},
			InnerSeries: chart.ContinuousSeries{
				XValues: centers,
				YValues: densities,
			},
		},
	}

	if xs, ys := teamstats.Curve(s.Normal(), CurvePoints); len(xs) > 0 {
		series = append(series, chart.ContinuousSeries{
			Name:    "Normal Distribution",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: drawing.ColorRed,
				StrokeWidth: 2,
			},
		})
	}

	ch := chart.Chart{
		Title:      fmt.Sprintf("Normal Distribution of %s for each team in %d", s.Column, int(sn)),
		Background: chart.Style{Padding: chart.Box{Top: 50, Left: 16, Right: 16, Bottom: 16}},
		Width:      1000,
		Height:     600,
		XAxis:      chart.XAxis{Name: s.Column},
		YAxis:      chart.YAxis{Name: "Density"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering distribution chart: %w", err)
	}
	return nil
}

// WriteFiles renders both charts into dir and returns the written paths
func WriteFiles(dir string, s *teamstats.Summary, sn season.Season) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating chart directory: %w", err)
	}

	renders := []struct {
		name   string
		render func(io.Writer, *teamstats.Summary, season.Season) error
	}{
		{BarChartName(sn, s.Column), RenderTeamAverages},
		{DistributionName(sn, s.Column), RenderDistribution},
	}

	paths := make([]string, 0, len(renders))
	for _, r := range renders {
		path := filepath.Join(dir, r.name)
		if err := writeFile(path, s, sn, r.render); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, s *teamstats.Summary, sn season.Season, render func(io.Writer, *teamstats.Summary, season.Season) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}

	if err := render(f, s, sn); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing chart file: %w", err)
	}
	return nil
}
