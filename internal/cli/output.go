package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/pfrederiksen/nba-stats/internal/pipeline"
	"github.com/pfrederiksen/nba-stats/internal/teamstats"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Report contains data to be output
type Report struct {
	GeneratedAt time.Time             `json:"generated_at"`
	Season      int                   `json:"season"`
	Statistic   string                `json:"statistic"`
	Source      pipeline.Source       `json:"source"`
	CachePath   string                `json:"cache_path"`
	Teams       teamstats.Averages    `json:"teams"`
	Min         teamstats.TeamAverage `json:"min"`
	Max         teamstats.TeamAverage `json:"max"`
	Mean        float64               `json:"mean"`
	StdDev      float64               `json:"std_dev"`
	Charts      []string              `json:"charts,omitempty"`
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, report *Report, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, report)
	case FormatText:
		return writeText(w, report, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as JSON
func writeJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, report *Report, verbose bool) error {
	if verbose {
		fmt.Fprintf(w, "Season: %d (source: %s, %s)\n", report.Season, report.Source, report.CachePath)
	}

	fmt.Fprint(w, "\nTeam Averages:\n\n")
	fmt.Fprintf(w, "%4s %10s\n", "Team", "Average")
	for _, ta := range report.Teams {
		fmt.Fprintf(w, "%4s %10.6f\n", ta.Team, ta.Average)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Minimum %s: %.2f (Team: %s)\n", report.Statistic, report.Min.Average, report.Min.Team)
	fmt.Fprintf(w, "Maximum %s: %.2f (Team: %s)\n", report.Statistic, report.Max.Average, report.Max.Team)
	fmt.Fprintf(w, "Mean: %v\n", report.Mean)
	fmt.Fprintf(w, "Standard Deviation: %v\n", report.StdDev)

	if len(report.Charts) > 0 {
		fmt.Fprintln(w)
		for _, path := range report.Charts {
			fmt.Fprintf(w, "Chart: %s\n", path)
		}
	}

	return nil
}
