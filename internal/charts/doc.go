// Package charts renders team statistics as PNG images.
//
// Two charts are produced per run: a bar chart of every team's average and a density
// histogram of those averages overlaid with the fitted normal curve.
package charts
