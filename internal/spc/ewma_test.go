package spc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEWMAChart(t *testing.T) {
	t.Run("recurrence starts at the baseline mean", func(t *testing.T) {
		supplied := &Baseline{Mean: 10, Sigma: 1}
		params := EWMAParams{Lambda: 0.5, L: 3}
		result, baseline := EWMAChart(ParseSeries("12 8 10"), params, supplied)

		assert.Equal(t, *supplied, baseline)
		require.Len(t, result.Points, 3)
		// z1 = 0.5*12 + 0.5*10 = 11; z2 = 0.5*8 + 0.5*11 = 9.5; z3 = 0.5*10 + 0.5*9.5 = 9.75
		assert.InDelta(t, 11.0, result.Points[0].Value, 1e-9)
		assert.InDelta(t, 9.5, result.Points[1].Value, 1e-9)
		assert.InDelta(t, 9.75, result.Points[2].Value, 1e-9)
	})

	t.Run("limits are per-point sequences that widen monotonically", func(t *testing.T) {
		series := make(MeasurementSeries, 120)
		for i := range series {
			series[i] = Reading{Position: i + 1, Value: 10}
		}
		params := EWMAParams{Lambda: 0.1, L: 3}
		result, _ := EWMAChart(series, params, &Baseline{Mean: 10, Sigma: 1})

		require.True(t, result.Limits.IsVarying())
		require.Len(t, result.Limits.UpperSeries, 120)
		require.Len(t, result.Limits.LowerSeries, 120)

		for i := 1; i < len(result.Limits.UpperSeries); i++ {
			assert.Greater(t, result.Limits.UpperSeries[i], result.Limits.UpperSeries[i-1],
				"upper limit must widen with i")
			assert.Less(t, result.Limits.LowerSeries[i], result.Limits.LowerSeries[i-1],
				"lower limit must widen with i")
		}
	})

	t.Run("limits converge to the asymptote", func(t *testing.T) {
		series := make(MeasurementSeries, 100)
		for i := range series {
			series[i] = Reading{Position: i + 1, Value: 10}
		}
		params := EWMAParams{Lambda: 0.1, L: 3}
		result, _ := EWMAChart(series, params, &Baseline{Mean: 10, Sigma: 1})

		asymptote := math.Sqrt(0.1 / 1.9)
		assert.InDelta(t, 0.2294, asymptote, 1e-4)

		// term_100 recovered from the emitted limit
		term := (result.Limits.UpperSeries[99] - 10) / 3
		assert.InDelta(t, asymptote, term, 1e-3)

		// scalar limits carry the asymptotic values
		assert.InDelta(t, 10+3*asymptote, result.Limits.Upper, 1e-9)
		assert.InDelta(t, 10-3*asymptote, result.Limits.Lower, 1e-9)
	})

	t.Run("lambda of one reproduces the raw series", func(t *testing.T) {
		result, _ := EWMAChart(ParseSeries("3 1 4 1 5"), EWMAParams{Lambda: 1, L: 3}, &Baseline{Mean: 0, Sigma: 1})
		assert.Equal(t, []float64{3, 1, 4, 1, 5}, result.Points.Values())
	})

	t.Run("phase 1 estimates the baseline from moving ranges", func(t *testing.T) {
		_, baseline := EWMAChart(ParseSeries("10 12 11 13"), DefaultEWMAParams(), nil)
		assert.True(t, baseline.Estimated)
		assert.InDelta(t, 11.5, baseline.Mean, 1e-9)
		assert.InDelta(t, (5.0/3.0)/1.128, baseline.Sigma, 1e-9)
	})
}
