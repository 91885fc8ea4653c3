package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeXbarSubgroupSize(t *testing.T) {
	assert.Equal(t, 5, NormalizeXbarSubgroupSize(0))
	assert.Equal(t, 5, NormalizeXbarSubgroupSize(1))
	assert.Equal(t, 2, NormalizeXbarSubgroupSize(2))
	assert.Equal(t, 10, NormalizeXbarSubgroupSize(10))
	// out-of-table sizes pass through so the lookup can report them
	assert.Equal(t, 11, NormalizeXbarSubgroupSize(11))
}

func TestXbarRChart(t *testing.T) {
	t.Run("phase 1 on two subgroups of two", func(t *testing.T) {
		xbar, rchart, baseline, err := XbarRChart(ParseSeries("1 3\n2 4"), 2, nil)
		require.NoError(t, err)

		assert.Equal(t, []float64{2, 3}, xbar.Points.Values())
		assert.Equal(t, []float64{2, 2}, rchart.Points.Values())

		assert.InDelta(t, 2.5, xbar.Limits.CenterLine, 1e-9)
		assert.InDelta(t, 6.26, xbar.Limits.Upper, 1e-3)
		assert.InDelta(t, -1.26, xbar.Limits.Lower, 1e-3)

		assert.InDelta(t, 2.0, rchart.Limits.CenterLine, 1e-9)
		assert.InDelta(t, 2*3.267, rchart.Limits.Upper, 1e-9)
		assert.Equal(t, 0.0, rchart.Limits.Lower)

		assert.True(t, baseline.Estimated)
		assert.InDelta(t, 2.5, baseline.Mean, 1e-9)
		assert.InDelta(t, 2.0/1.128, baseline.Sigma, 1e-9)
	})

	t.Run("undersized subgroup size falls back to the default of 5", func(t *testing.T) {
		// 10 readings form two subgroups of 5
		xbar, _, _, err := XbarRChart(ParseSeries("1 2 3 4 5 6 7 8 9 10"), 1, nil)
		require.NoError(t, err)
		assert.Len(t, xbar.Points, 2)
	})

	t.Run("subgroup size above the table is an error", func(t *testing.T) {
		_, _, _, err := XbarRChart(ParseSeries("1 2 3"), 11, nil)
		require.Error(t, err)

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("phase 2 centers the chart on the supplied mean", func(t *testing.T) {
		supplied := &Baseline{Mean: 3, Sigma: 1.5}
		xbar, _, baseline, err := XbarRChart(ParseSeries("1 3\n2 4"), 2, supplied)
		require.NoError(t, err)

		assert.Equal(t, *supplied, baseline)
		assert.InDelta(t, 3.0, xbar.Limits.CenterLine, 1e-9)
		// A2 * observed mean range still sets the spread
		assert.InDelta(t, 3.0+1.880*2, xbar.Limits.Upper, 1e-9)
	})

	t.Run("no complete subgroup yields a degenerate chart", func(t *testing.T) {
		xbar, rchart, baseline, err := XbarRChart(ParseSeries("1 2 3"), 5, nil)
		require.NoError(t, err)
		assert.Empty(t, xbar.Points)
		assert.Empty(t, rchart.Points)
		assert.Equal(t, 0.0, baseline.Sigma)
	})
}
