package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRevenue_GroupedTurkishFormat(t *testing.T) {
	assert.Equal(t, 12000000.0, NormalizeRevenue("12.000.000"))
	assert.Equal(t, 12000000.5, NormalizeRevenue("12.000.000,50"))
}

func TestNormalizeRevenue_PlainInteger(t *testing.T) {
	assert.Equal(t, 12000000.0, NormalizeRevenue("12000000"))
}

func TestNormalizeRevenue_IdempotentOnNormalizedInput(t *testing.T) {
	assert.Equal(t, NormalizeRevenue("12000000"), NormalizeRevenue("12.000.000"))
}

func TestNormalizeRevenue_Unparseable(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeRevenue("bilinmiyor"))
	assert.Equal(t, 0.0, NormalizeRevenue(""))
}

func TestBudgetMetric(t *testing.T) {
	// (12000000 / 1e6) * 0.72
	assert.InDelta(t, 8.64, BudgetMetric("12.000.000"), 1e-9)
}

func TestBudgetMetric_UnparseableYieldsZero(t *testing.T) {
	assert.Equal(t, 0.0, BudgetMetric("n/a"))
}

func TestAdjustCompatibility_WeightedDeltas(t *testing.T) {
	p := RecalcParams{FemaleRatio: 50, DisabledRatio: 30, FoundingYear: 2015}
	// (70-50)/2 + (20-30)*5 + (2018-2015)/2 = 10 - 50 + 1.5 = -38.5
	// 80 - 38.5 = 41.5, rounds half away from zero to 42
	assert.Equal(t, 42, AdjustCompatibility(80, 70, 20, 2018, p))
}

func TestAdjustCompatibility_ZeroDeltasReproduceBase(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 80, AdjustCompatibility(80, p.FemaleRatio, p.DisabledRatio, p.FoundingYear, p))
	// A fractional base still only moves by rounding.
	assert.Equal(t, 81, AdjustCompatibility(80.5, p.FemaleRatio, p.DisabledRatio, p.FoundingYear, p))
}

func TestAdjustCompatibility_ClampsUpperBound(t *testing.T) {
	p := RecalcParams{FemaleRatio: 50, DisabledRatio: 30, FoundingYear: 2015}
	// Disabled delta of +50 against weight x5 alone adds 250.
	assert.Equal(t, 100, AdjustCompatibility(80, 50, 80, 2015, p))
}

func TestAdjustCompatibility_ClampsLowerBound(t *testing.T) {
	p := RecalcParams{FemaleRatio: 50, DisabledRatio: 30, FoundingYear: 2015}
	assert.Equal(t, 0, AdjustCompatibility(20, 50, 0, 2015, p))
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 50.0, p.FemaleRatio)
	assert.Equal(t, 30.0, p.DisabledRatio)
	assert.Equal(t, 2015, p.FoundingYear)
	assert.Equal(t, 50.0, p.RecyclingTarget)
}

func TestFlatSeries(t *testing.T) {
	series := FlatSeries(4, 50)
	assert.Equal(t, []float64{50, 50, 50, 50}, series)
	assert.Empty(t, FlatSeries(0, 50))
}
