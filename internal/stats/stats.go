// Package stats computes descriptive statistics over listing prices.
package stats

import (
	"math"
	"sort"
)

// PriceSummary describes a price distribution. The statistic fields are nil
// when no prices were available.
type PriceSummary struct {
	N       int
	Media   *float64
	Mediana *float64
	P25     *float64
	P75     *float64
}

// Summarize computes count, mean, median and quartiles for a set of prices.
// An empty input yields N=0 with all statistics nil, which is not an error
// condition.
func Summarize(prices []float64) PriceSummary {
	if len(prices) == 0 {
		return PriceSummary{N: 0}
	}

	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)

	var total float64
	for _, p := range sorted {
		total += p
	}

	media := total / float64(len(sorted))
	mediana := Percentile(sorted, 0.5)
	p25 := Percentile(sorted, 0.25)
	p75 := Percentile(sorted, 0.75)

	return PriceSummary{
		N:       len(sorted),
		Media:   &media,
		Mediana: &mediana,
		P25:     &p25,
		P75:     &p75,
	}
}

// Percentile estimates the p-quantile (0 <= p <= 1) of an ascending-sorted
// slice by linear interpolation between order statistics at fractional rank
// (n-1)*p, the R-7 method.
func Percentile(sorted []float64, p float64) float64 {
	k := float64(len(sorted)-1) * p
	floor := math.Floor(k)
	ceil := math.Ceil(k)
	if floor == ceil {
		return sorted[int(k)]
	}
	lower := sorted[int(floor)] * (ceil - k)
	upper := sorted[int(ceil)] * (k - floor)
	return lower + upper
}
