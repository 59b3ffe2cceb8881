// Package teamstats aggregates one statistic per team.
//
// TOT rows (a traded player's combined line) are filtered out before grouping so no player
// is counted twice. The per-team means are then described by their minimum, maximum, mean
// and population standard deviation, and a normal distribution is fitted for display.
package teamstats
