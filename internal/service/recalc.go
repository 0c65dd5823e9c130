package service

import (
	"math"
	"strconv"
	"strings"
)

// Recalculation of displayed values against client-chosen reference
// parameters. The browser runs the same formulas live; this package is
// the contract both sides follow. Everything here is pure: unparseable
// input degrades to zero instead of failing, because a cosmetic metric
// should never take the dashboard down.

// RecalcParams is one snapshot of the adjustable reference parameters.
type RecalcParams struct {
	FemaleRatio     float64
	DisabledRatio   float64
	FoundingYear    int
	RecyclingTarget float64
}

// DefaultParams are fixed, not derived from data.
func DefaultParams() RecalcParams {
	return RecalcParams{
		FemaleRatio:     50,
		DisabledRatio:   30,
		FoundingYear:    2015,
		RecyclingTarget: 50,
	}
}

// budgetFactor scales normalized revenue (in millions) into the
// secondary budget metric.
const budgetFactor = 0.72

// NormalizeRevenue parses a Turkish-locale revenue string: "." is a
// grouping separator and "," the decimal mark, so "12.000.000,50"
// becomes 12000000.5. Returns 0 when the string does not parse.
func NormalizeRevenue(ciro string) float64 {
	s := strings.ReplaceAll(ciro, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// BudgetMetric converts a revenue string into the displayed budget
// figure: revenue in millions times the fixed factor.
func BudgetMetric(ciro string) float64 {
	return NormalizeRevenue(ciro) / 1_000_000 * budgetFactor
}

// AdjustCompatibility recomputes an entrepreneur's compatibility score
// from its stored base. All three deltas are taken against the same
// unmodified base, so the adjustment is order-independent:
//
//	base + (kadin − p.FemaleRatio)/2 + (engelli − p.DisabledRatio)×5 + (yil − p.FoundingYear)/2
//
// The result is rounded half away from zero and clamped to [0, 100].
func AdjustCompatibility(base, kadin, engelli float64, yil int, p RecalcParams) int {
	adjusted := base +
		(kadin-p.FemaleRatio)/2 +
		(engelli-p.DisabledRatio)*5 +
		(float64(yil)-float64(p.FoundingYear))/2

	rounded := int(math.Round(adjusted))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}

// FlatSeries builds a reference line: n points, all at value.
func FlatSeries(n int, value float64) []float64 {
	series := make([]float64, n)
	for i := range series {
		series[i] = value
	}
	return series
}
