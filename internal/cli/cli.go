package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pfrederiksen/nba-stats/internal/charts"
	"github.com/pfrederiksen/nba-stats/internal/logger"
	"github.com/pfrederiksen/nba-stats/internal/pipeline"
	"github.com/pfrederiksen/nba-stats/internal/prompt"
	"github.com/pfrederiksen/nba-stats/internal/scraper"
	"github.com/pfrederiksen/nba-stats/internal/season"
	"github.com/pfrederiksen/nba-stats/internal/storage"
	"github.com/pfrederiksen/nba-stats/internal/table"
	"github.com/pfrederiksen/nba-stats/internal/teamstats"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// options holds the flag values of one invocation
type options struct {
	year      int
	stat      string
	dataDir   string
	outDir    string
	baseURL   string
	format    string
	sortOrder string
	offline   bool
	refresh   bool
	noCharts  bool
	verbose   bool
	logLevel  string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "nba-stats",
		Short: "Compare NBA teams on a per-game statistic",
		Long: `A CLI tool that scrapes a season's per-game NBA player stats, caches them as
{year}_nba_stats.csv, and reports the per-team average of one statistic with a bar
chart and a normal-distribution histogram. Missing --year or --stat values are asked
for interactively.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	// Define flags
	cmd.Flags().IntVar(&opts.year, "year", 0, fmt.Sprintf("Season year (%d-%d); prompted when omitted", int(season.First), int(season.Last)))
	cmd.Flags().StringVar(&opts.stat, "stat", "", "Statistic column to analyze (e.g. PTS); prompted when omitted")
	cmd.Flags().StringVar(&opts.dataDir, "data-dir", envOr("NBA_STATS_DATA_DIR", "."), "Directory for cached season CSV files (or env: NBA_STATS_DATA_DIR)")
	cmd.Flags().StringVar(&opts.outDir, "out-dir", envOr("NBA_STATS_OUT_DIR", "."), "Directory for rendered charts (or env: NBA_STATS_OUT_DIR)")
	cmd.Flags().StringVar(&opts.baseURL, "base-url", envOr("NBA_STATS_BASE_URL", scraper.BaseURL), "Stats site base URL (or env: NBA_STATS_BASE_URL)")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&opts.sortOrder, "sort", string(SortByTeam), "Team order in the report: team or value")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Never fetch; only use cached seasons")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "Re-fetch the season even if it is cached")
	cmd.Flags().BoolVar(&opts.noCharts, "no-charts", false, "Skip chart rendering")
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging (same as --log-level debug)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", envOr("NBA_STATS_LOG_LEVEL", "warn"), "Log level: debug, info, warn or error (or env: NBA_STATS_LOG_LEVEL)")

	return cmd
}

// run is the main command logic
func run(cmd *cobra.Command, opts *options) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	level, err := logger.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if opts.verbose {
		level = logger.LevelDebug
	}
	logger.SetDefault(logger.New(level, errOut).With(logger.Fields{"run_id": uuid.NewString()}))

	// Validate format and sort order
	format := OutputFormat(strings.ToLower(opts.format))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", opts.format)
	}
	order := SortOrder(strings.ToLower(opts.sortOrder))
	if order != SortByTeam && order != SortByValue {
		return fmt.Errorf("invalid sort order: %s (must be 'team' or 'value')", opts.sortOrder)
	}

	// Keep stdout clean for JSON consumers
	console := out
	if format == FormatJSON {
		console = errOut
	}
	prompter := prompt.New(cmd.InOrStdin(), console)

	store, err := storage.New(opts.dataDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	var fetcher pipeline.Fetcher
	if !opts.offline {
		fetcher = scraper.NewWithBaseURL(opts.baseURL)
	}
	loader := pipeline.New(store, fetcher).WithRefresh(opts.refresh)

	year, err := chooseSeason(cmd, opts, prompter)
	if err != nil {
		return err
	}

	logger.Debug("Preparing season", logger.Fields{
		"season":   int(year),
		"data_dir": opts.dataDir,
		"offline":  opts.offline,
	})

	result, err := loader.Ensure(year)
	switch {
	case err == nil:
		if result.Source == pipeline.SourceCache {
			fmt.Fprintf(console, "%s already exists, skipping download.\n", storage.FileName(year))
		} else {
			fmt.Fprintf(console, "Successfully wrote NBA stats for %d to %s\n", int(year), storage.FileName(year))
		}
	case errors.Is(err, storage.ErrNotCached):
		// offline: the load loop below asks for another season
	default:
		logger.Error("Fetch failed", logger.Fields{"season": int(year)}, err)
		return err
	}

	stats, year, err := loadSeason(loader, year, prompter, console)
	if err != nil {
		return err
	}

	summary, err := chooseSummary(cmd, opts, stats, prompter, console)
	if err != nil {
		return err
	}

	report := &Report{
		GeneratedAt: time.Now().UTC(),
		Season:      int(year),
		Statistic:   summary.Column,
		Source:      pipeline.SourceCache,
		CachePath:   store.Path(year),
		Teams:       sortAverages(summary.Teams, order),
		Min:         summary.Min,
		Max:         summary.Max,
		Mean:        summary.Mean,
		StdDev:      summary.StdDev,
	}
	if result != nil {
		report.Source = result.Source
	}

	if !opts.noCharts {
		paths, err := charts.WriteFiles(opts.outDir, summary, year)
		if err != nil {
			logger.Warn("Chart rendering failed", logger.Fields{"out_dir": opts.outDir, "error": err.Error()})
		}
		report.Charts = paths
	}

	if err := WriteOutput(out, report, format, opts.verbose); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	metrics := logger.MetricsSnapshot()
	fields := logger.Fields{"metrics": metrics}
	if fetch, ok := metrics.Timings["fetch.duration"]; ok {
		fields["fetch_average"] = fetch.Average().String()
	}
	logger.Debug("Run complete", fields)
	return nil
}

// chooseSeason takes --year when given, otherwise asks for one
func chooseSeason(cmd *cobra.Command, opts *options, p *prompt.Prompter) (season.Season, error) {
	if !cmd.Flags().Changed("year") {
		return p.Year()
	}

	s := season.Season(opts.year)
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("invalid --year: %w", err)
	}
	return s, nil
}

// loadSeason reads the cached table, asking for another season while the cache file is missing
func loadSeason(loader *pipeline.Loader, year season.Season, p *prompt.Prompter, console io.Writer) (*table.Table, season.Season, error) {
	for {
		stats, err := loader.Load(year)
		if err == nil {
			return stats, year, nil
		}
		if !errors.Is(err, storage.ErrNotCached) {
			return nil, year, fmt.Errorf("loading season %d: %w", int(year), err)
		}

		fmt.Fprintf(console, "Error: %s not found. Please make sure you have downloaded the data for the correct year.\n", storage.FileName(year))
		year, err = p.Year()
		if err != nil {
			return nil, year, err
		}
	}
}

// chooseSummary aggregates the --stat column, or asks until a numeric column is chosen
func chooseSummary(cmd *cobra.Command, opts *options, stats *table.Table, p *prompt.Prompter, console io.Writer) (*teamstats.Summary, error) {
	if cmd.Flags().Changed("stat") {
		if !stats.HasColumn(opts.stat) {
			return nil, fmt.Errorf("invalid --stat: %s", prompt.StatisticReason(opts.stat))
		}
		return teamstats.Summarize(stats, opts.stat)
	}

	columns := statisticColumns(stats.Columns())
	for {
		stat, err := p.Statistic(columns)
		if err != nil {
			return nil, err
		}

		summary, err := teamstats.Summarize(stats, stat)
		if errors.Is(err, teamstats.ErrNotNumeric) {
			fmt.Fprintf(console, "Error: %s is not a numeric statistic.\n", stat)
			continue
		}
		return summary, err
	}
}

// statisticColumns lists the columns worth offering, leaving out player name and team
func statisticColumns(columns []string) []string {
	offered := make([]string, 0, len(columns))
	for _, c := range columns {
		if c == "Player" || c == table.TeamColumn {
			continue
		}
		offered = append(offered, c)
	}
	return offered
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
