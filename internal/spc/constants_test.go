package spc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupConstants(t *testing.T) {
	// The full ASTM factor table; these are exact literals, not approximations.
	tests := []struct {
		n                int
		a2, d3, d4, dTwo float64
	}{
		{2, 1.880, 0, 3.267, 1.128},
		{3, 1.023, 0, 2.574, 1.693},
		{4, 0.729, 0, 2.282, 2.059},
		{5, 0.577, 0, 2.114, 2.326},
		{6, 0.483, 0, 2.004, 2.534},
		{7, 0.419, 0.076, 1.924, 2.704},
		{8, 0.373, 0.136, 1.864, 2.847},
		{9, 0.337, 0.184, 1.816, 2.970},
		{10, 0.308, 0.223, 1.777, 3.078},
	}

	for _, tt := range tests {
		cc, err := LookupConstants(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.a2, cc.A2, "A2(%d)", tt.n)
		assert.Equal(t, tt.d3, cc.D3, "D3(%d)", tt.n)
		assert.Equal(t, tt.d4, cc.D4, "D4(%d)", tt.n)
		assert.Equal(t, tt.dTwo, cc.D2(), "d2(%d)", tt.n)
	}
}

func TestLookupConstantsOutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 1, 11, 100} {
		_, err := LookupConstants(n)
		require.Error(t, err, "n=%d", n)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "subgroup_size", verr.Field)
	}
}

func TestD2Individuals(t *testing.T) {
	// The individuals dispersion estimator is the d2 constant for n=2.
	cc, err := LookupConstants(2)
	require.NoError(t, err)
	assert.Equal(t, cc.D2(), D2Individuals)
}
