// Package season defines the NBA season year used to select a stats page and its cache file.
package season
