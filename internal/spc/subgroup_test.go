package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup(t *testing.T) {
	t.Run("trailing remainder is dropped", func(t *testing.T) {
		groups := Group(ParseSeries("1 2 3 4 5"), 2)
		require.Len(t, groups, 2)
		assert.Equal(t, []float64{1, 2}, MeasurementSeries(groups[0].Readings).Values())
		assert.Equal(t, []float64{3, 4}, MeasurementSeries(groups[1].Readings).Values())
	})

	t.Run("mean and range are derived", func(t *testing.T) {
		groups := Group(ParseSeries("1 3 2 4"), 2)
		require.Len(t, groups, 2)
		assert.Equal(t, 2.0, groups[0].Mean)
		assert.Equal(t, 2.0, groups[0].Range)
		assert.Equal(t, 3.0, groups[1].Mean)
		assert.Equal(t, 2.0, groups[1].Range)
	})

	t.Run("ungrouped size yields singletons with zero range", func(t *testing.T) {
		groups := Group(ParseSeries("7 9"), 1)
		require.Len(t, groups, 2)
		assert.Equal(t, 7.0, groups[0].Mean)
		assert.Equal(t, 0.0, groups[0].Range)
		assert.Equal(t, 1, groups[0].Size())
	})

	t.Run("sizes below one behave as ungrouped", func(t *testing.T) {
		assert.Len(t, Group(ParseSeries("1 2 3"), 0), 3)
	})

	t.Run("series shorter than window yields nothing", func(t *testing.T) {
		assert.Empty(t, Group(ParseSeries("1 2"), 3))
		assert.Empty(t, Group(nil, 2))
	})
}

func TestGroupMeans(t *testing.T) {
	means := GroupMeans(Group(ParseSeries("1 3 2 4"), 2))
	require.Len(t, means, 2)
	assert.Equal(t, []float64{2, 3}, means.Values())
	assert.Equal(t, 1, means[0].Position)
	assert.Equal(t, 2, means[1].Position)
}
