package spc

import "fmt"

// ChartConstants are the tabulated control chart constants for one
// subgroup size: A2 scales the X-bar limits, D3/D4 scale the R chart
// limits, and d2 converts the mean range into a sigma estimate.
type ChartConstants struct {
	A2 float64
	D3 float64
	D4 float64
	d2 float64
}

// D2 returns the d2 dispersion constant
func (cc ChartConstants) D2() float64 {
	return cc.d2
}

// D2Individuals is the d2 constant for n=2 (1.128), the canonical
// dispersion estimator for individual measurements: the IMR chart divides
// the mean moving range by it because a moving range spans two readings.
const D2Individuals = 1.128

// MinSubgroupSize and MaxSubgroupSize bound the tabulated constants
const (
	MinSubgroupSize = 2
	MaxSubgroupSize = 10
)

// chartConstants maps subgroup size to its control chart constants. The
// values are the standard ASTM/Shewhart factors for n in [2,10].
var chartConstants = map[int]ChartConstants{
	2:  {A2: 1.880, D3: 0, D4: 3.267, d2: 1.128},
	3:  {A2: 1.023, D3: 0, D4: 2.574, d2: 1.693},
	4:  {A2: 0.729, D3: 0, D4: 2.282, d2: 2.059},
	5:  {A2: 0.577, D3: 0, D4: 2.114, d2: 2.326},
	6:  {A2: 0.483, D3: 0, D4: 2.004, d2: 2.534},
	7:  {A2: 0.419, D3: 0.076, D4: 1.924, d2: 2.704},
	8:  {A2: 0.373, D3: 0.136, D4: 1.864, d2: 2.847},
	9:  {A2: 0.337, D3: 0.184, D4: 1.816, d2: 2.970},
	10: {A2: 0.308, D3: 0.223, D4: 1.777, d2: 3.078},
}

// LookupConstants returns the chart constants for subgroup size n.
//
// The table is a partial function: sizes outside [2,10] have no defined
// constants and are reported as a ValidationError rather than clamped or
// extrapolated. Callers that accept user subgroup sizes normalize them
// before the lookup (the X-bar/R chart raises sizes below 2 to its
// default), so in practice this fires only for n above 10.
func LookupConstants(n int) (ChartConstants, error) {
	cc, ok := chartConstants[n]
	if !ok {
		return ChartConstants{}, &ValidationError{
			Field:   "subgroup_size",
			Message: fmt.Sprintf("no control chart constants tabulated for subgroup size %d (supported range %d-%d)", n, MinSubgroupSize, MaxSubgroupSize),
			Value:   n,
		}
	}
	return cc, nil
}
