// Package prompt collects the season and statistic interactively.
//
// Each question repeats until its validator accepts the answer; rejected answers print a
// reason and never abort the program. Only running out of input ends a prompt with an error.
package prompt
