// Package table holds the per-player stats table scraped for one season.
//
// A Table is a rectangular set of cells under an ordered header. Cells scraped from a page
// may be blank; Normalize turns blanks into missing markers, drops rows that carry no data
// at all and zero-fills whatever is left, so a normalized table never contains a missing cell.
// Frame and FromFrame bridge tables to gota DataFrames for CSV I/O and aggregation.
package table
