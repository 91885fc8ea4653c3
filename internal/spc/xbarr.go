package spc

// DefaultXbarSubgroupSize is used when an X-bar/R caller supplies a
// subgroup size below the chart's minimum of 2.
const DefaultXbarSubgroupSize = 5

// NormalizeXbarSubgroupSize raises subgroup sizes below 2 to the default.
// Sizes above the tabulated maximum are left alone so the constants lookup
// can report them.
func NormalizeXbarSubgroupSize(n int) int {
	if n < MinSubgroupSize {
		return DefaultXbarSubgroupSize
	}
	return n
}

// XbarRChart computes the X-bar and R chart pair over subgroups of size n.
//
// Phase 1 estimates the grand mean from the subgroup means; a supplied
// baseline replaces both the center and sigma. The X-bar limits are
// A2-scaled around the center and the R limits are D3/D4-scaled around the
// mean subgroup range; both always use the observed mean range. Sigma for
// downstream capability is meanRange/d2 in phase 1.
//
// The only error path is a subgroup size with no tabulated constants.
func XbarRChart(series MeasurementSeries, n int, supplied *Baseline) (ChartResult, ChartResult, Baseline, error) {
	n = NormalizeXbarSubgroupSize(n)
	constants, err := LookupConstants(n)
	if err != nil {
		return ChartResult{}, ChartResult{}, Baseline{}, err
	}

	groups := Group(series, n)

	means := make(ChartSeries, len(groups))
	ranges := make(ChartSeries, len(groups))
	meanSum := 0.0
	rangeSum := 0.0
	for i, g := range groups {
		means[i] = Point{Index: i + 1, Value: g.Mean}
		ranges[i] = Point{Index: i + 1, Value: g.Range}
		meanSum += g.Mean
		rangeSum += g.Range
	}

	grandMean := 0.0
	meanRange := 0.0
	if len(groups) > 0 {
		grandMean = meanSum / float64(len(groups))
		meanRange = rangeSum / float64(len(groups))
	}

	baseline := Baseline{
		Mean:      grandMean,
		Sigma:     meanRange / constants.D2(),
		Estimated: true,
	}
	if supplied != nil {
		baseline = *supplied
	}

	xbar := ChartResult{
		Label:  "X-bar",
		Points: means,
		Limits: ControlLimits{
			CenterLine: baseline.Mean,
			Upper:      baseline.Mean + constants.A2*meanRange,
			Lower:      baseline.Mean - constants.A2*meanRange,
		},
	}

	rchart := ChartResult{
		Label:  "Range",
		Points: ranges,
		Limits: ControlLimits{
			CenterLine: meanRange,
			Upper:      constants.D4 * meanRange,
			Lower:      constants.D3 * meanRange,
		},
	}

	return xbar, rchart, baseline, nil
}
