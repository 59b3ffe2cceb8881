// Package storage caches per-season stats tables as CSV files.
//
// Each season lives in its own file named "{year}_nba_stats.csv" inside the data directory.
// A cached season is trusted as-is: nothing here expires or refreshes a file.
package storage
