package spc

import "math"

// meanOf calculates the arithmetic mean of a value slice
func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MovingRanges returns the absolute differences between consecutive
// readings, indexed by the position of the later reading. A series of N
// readings yields N-1 moving ranges; fewer than two readings yield none.
func MovingRanges(series MeasurementSeries) ChartSeries {
	if len(series) < 2 {
		return nil
	}
	ranges := make(ChartSeries, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		ranges = append(ranges, Point{
			Index: series[i].Position,
			Value: math.Abs(series[i].Value - series[i-1].Value),
		})
	}
	return ranges
}

// EstimateIndividualsBaseline derives a phase 1 baseline from individual
// measurements: the center is the mean of all readings and sigma is the
// mean moving range divided by d2 for n=2. A single reading has no moving
// range, so its sigma is 0 rather than undefined.
func EstimateIndividualsBaseline(series MeasurementSeries) Baseline {
	meanMR := meanOf(MovingRanges(series).Values())
	return Baseline{
		Mean:      series.Mean(),
		Sigma:     meanMR / D2Individuals,
		Estimated: true,
	}
}

// IMRChart computes the Individuals and Moving Range chart pair.
//
// The individuals chart plots the raw readings against three-sigma limits
// around the baseline mean. The secondary moving range chart plots the
// consecutive absolute differences against D4/D3 limits for n=2; its
// limits always come from the observed mean moving range, even in phase 2.
// A nil supplied baseline selects phase 1 estimation.
func IMRChart(series MeasurementSeries, supplied *Baseline) (ChartResult, ChartResult, Baseline) {
	ranges := MovingRanges(series)
	meanMR := meanOf(ranges.Values())

	baseline := EstimateIndividualsBaseline(series)
	if supplied != nil {
		baseline = *supplied
	}

	points := make(ChartSeries, len(series))
	for i, r := range series {
		points[i] = Point{Index: r.Position, Value: r.Value}
	}

	individuals := ChartResult{
		Label:  "Individuals",
		Points: points,
		Limits: ControlLimits{
			CenterLine: baseline.Mean,
			Upper:      baseline.Mean + 3*baseline.Sigma,
			Lower:      baseline.Mean - 3*baseline.Sigma,
		},
	}

	n2 := chartConstants[2]
	movingRange := ChartResult{
		Label:  "Moving Range",
		Points: ranges,
		Limits: ControlLimits{
			CenterLine: meanMR,
			Upper:      n2.D4 * meanMR,
			Lower:      n2.D3 * meanMR,
		},
	}

	return individuals, movingRange, baseline
}
