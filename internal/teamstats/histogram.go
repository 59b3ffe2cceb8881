package teamstats

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Bin is one histogram bucket over [Lo, Hi)
type Bin struct {
	Lo      float64 `json:"lo"`
	Hi      float64 `json:"hi"`
	Count   int     `json:"count"`
	Density float64 `json:"density"`
}

// Center returns the midpoint of the bin
func (b Bin) Center() float64 {
	return (b.Lo + b.Hi) / 2
}

// Histogram splits xs into nbins equal-width bins spanning its range. The last bin is
// closed on the right. Densities are normalised so the bars' total area is 1.
// A range of zero width is widened by 0.5 on each side.
func Histogram(xs []float64, nbins int) []Bin {
	if len(xs) == 0 || nbins <= 0 {
		return nil
	}

	lo, hi := stats.Bounds(xs)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}
	width := (hi - lo) / float64(nbins)

	bins := make([]Bin, nbins)
	for i := range bins {
		bins[i].Lo = lo + float64(i)*width
		bins[i].Hi = lo + float64(i+1)*width
	}
	bins[nbins-1].Hi = hi

	for _, x := range xs {
		idx := int(math.Floor((x - lo) / width))
		if idx >= nbins {
			idx = nbins - 1
		}
		if idx < 0 {
			idx = 0
		}
		bins[idx].Count++
	}

	n := float64(len(xs))
	for i := range bins {
		bins[i].Density = float64(bins[i].Count) / (n * width)
	}
	return bins
}
