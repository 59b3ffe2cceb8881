// Package cli implements the command-line interface for nba-stats.
//
// The cli package provides the Cobra-based CLI: it chooses a season and statistic (from
// flags or interactive prompts), makes sure the season is cached, aggregates the statistic
// per team, renders the charts, and writes a text or JSON report. It coordinates the
// pipeline, storage, scraper, teamstats and charts packages.
package cli
