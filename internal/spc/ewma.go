package spc

import "math"

// EWMAChart computes the exponentially weighted moving average chart.
//
// The statistic starts at the baseline mean and updates as
// z_i = lambda*x_i + (1-lambda)*z_{i-1}, one plotted point per reading.
// Control limits widen with i:
//
//	mean +/- L*sigma*sqrt( lambda/(2-lambda) * (1 - (1-lambda)^(2i)) )
//
// and are emitted as per-point sequences alongside the asymptotic scalar
// limits they converge to. A nil supplied baseline selects phase 1
// estimation from the series via the mean moving range.
func EWMAChart(series MeasurementSeries, params EWMAParams, supplied *Baseline) (ChartResult, Baseline) {
	baseline := EstimateIndividualsBaseline(series)
	if supplied != nil {
		baseline = *supplied
	}

	lambda := params.Lambda
	width := params.L
	asymptote := math.Sqrt(lambda / (2 - lambda))

	points := make(ChartSeries, 0, len(series))
	upper := make([]float64, 0, len(series))
	lower := make([]float64, 0, len(series))

	z := baseline.Mean
	for i, r := range series {
		z = lambda*r.Value + (1-lambda)*z
		points = append(points, Point{Index: r.Position, Value: z})

		term := math.Sqrt(lambda / (2 - lambda) * (1 - math.Pow(1-lambda, 2*float64(i+1))))
		upper = append(upper, baseline.Mean+width*baseline.Sigma*term)
		lower = append(lower, baseline.Mean-width*baseline.Sigma*term)
	}

	result := ChartResult{
		Label:  "EWMA",
		Points: points,
		Limits: ControlLimits{
			CenterLine:  baseline.Mean,
			Upper:       baseline.Mean + width*baseline.Sigma*asymptote,
			Lower:       baseline.Mean - width*baseline.Sigma*asymptote,
			UpperSeries: upper,
			LowerSeries: lower,
		},
	}

	return result, baseline
}
