package spc

import "math"

// CUSUMChart computes the two-sided tabular cumulative sum chart.
//
// Both accumulators start at zero. With K = k*sigma as the slack and
// H = h*sigma as the decision interval:
//
//	Cplus_i  = max(0, x_i - (mean+K) + Cplus_{i-1})
//	Cminus_i = max(0, (mean-K) - x_i + Cminus_{i-1})
//
// The upper and lower sums are returned as independent chart results, each
// with center line 0 and upper limit H. Signal detection (an accumulator
// crossing H) is left to the consumer; the chart only supplies the series
// and the interval. The raw observations plus the baseline mean are
// returned as a presentation overlay.
func CUSUMChart(series MeasurementSeries, params CUSUMParams, supplied *Baseline) (ChartResult, ChartResult, Overlay, Baseline) {
	baseline := EstimateIndividualsBaseline(series)
	if supplied != nil {
		baseline = *supplied
	}

	slack := params.K * baseline.Sigma
	interval := params.H * baseline.Sigma

	upperPoints := make(ChartSeries, 0, len(series))
	lowerPoints := make(ChartSeries, 0, len(series))
	observations := make(ChartSeries, 0, len(series))

	cplus := 0.0
	cminus := 0.0
	for _, r := range series {
		cplus = math.Max(0, r.Value-(baseline.Mean+slack)+cplus)
		cminus = math.Max(0, (baseline.Mean-slack)-r.Value+cminus)

		upperPoints = append(upperPoints, Point{Index: r.Position, Value: cplus})
		lowerPoints = append(lowerPoints, Point{Index: r.Position, Value: cminus})
		observations = append(observations, Point{Index: r.Position, Value: r.Value})
	}

	limits := ControlLimits{CenterLine: 0, Upper: interval, Lower: 0}

	upper := ChartResult{Label: "CUSUM Upper", Points: upperPoints, Limits: limits}
	lower := ChartResult{Label: "CUSUM Lower", Points: lowerPoints, Limits: limits}
	overlay := Overlay{Observations: observations, Mean: baseline.Mean}

	return upper, lower, overlay, baseline
}
