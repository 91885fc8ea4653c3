package spc

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Engine runs control chart computations. It holds only immutable
// configuration, so a single Engine may be shared across goroutines as
// long as each Compute call owns its inputs; every invocation builds its
// result from scratch and retains nothing.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates a chart computation engine
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{logger: logger}
}

// Compute parses the request's raw text and runs the selected chart
// strategy, returning the chart bundle, the baseline it was judged
// against, series statistics, and capability indices.
//
// The same request always produces an identical report. Degenerate data
// (empty input, zero variance) produces a well-formed degenerate report;
// the only errors are configuration without a defined meaning.
func (e *Engine) Compute(ctx context.Context, req ComputeRequest) (*Report, error) {
	start := time.Now()

	if err := ValidateRequest(req); err != nil {
		e.logger.ErrorContext(ctx, "compute request rejected",
			"chart", req.Chart.String(),
			"error", err,
		)
		return nil, fmt.Errorf("validate request: %w", err)
	}

	series := ParseSeries(req.RawText)
	summary := Summarize(series)

	e.logger.DebugContext(ctx, "parsed measurement series",
		"chart", req.Chart.String(),
		"phase", req.Phase.String(),
		"readings", summary.Count,
	)

	var supplied *Baseline
	if req.Phase == Phase2 {
		supplied = req.Baseline
	}

	report := &Report{Chart: req.Chart, Summary: summary}

	switch req.Chart {
	case ChartIMR:
		main, secondary, baseline := IMRChart(series, supplied)
		report.Main = main
		report.Secondary = &secondary
		report.Baseline = baseline

	case ChartXbarR:
		main, secondary, baseline, err := XbarRChart(series, req.SubgroupSize, supplied)
		if err != nil {
			return nil, fmt.Errorf("compute x-bar/r chart: %w", err)
		}
		report.Main = main
		report.Secondary = &secondary
		report.Baseline = baseline

	case ChartEWMA:
		main, baseline := EWMAChart(e.chartInput(series, req.SubgroupSize), req.EWMA, supplied)
		report.Main = main
		report.Baseline = baseline

	case ChartCUSUM:
		upper, lower, overlay, baseline := CUSUMChart(e.chartInput(series, req.SubgroupSize), req.CUSUM, supplied)
		report.Main = upper
		report.Secondary = &lower
		report.Overlay = &overlay
		report.Baseline = baseline
	}

	report.Capability = ComputeCapability(report.Baseline, req.Limits)
	report.Capability.Pp, report.Capability.Ppk = ComputeOverall(summary, req.Limits)

	e.logger.InfoContext(ctx, "chart computation completed",
		"chart", req.Chart.String(),
		"phase", req.Phase.String(),
		"readings", summary.Count,
		"points", len(report.Main.Points),
		"sigma", report.Baseline.Sigma,
		"duration", time.Since(start),
	)

	return report, nil
}

// chartInput reduces the series to subgroup means when the caller asked
// for grouped EWMA/CUSUM input. The default size of 1 (or below) means
// ungrouped: the recurrences consume the raw readings.
func (e *Engine) chartInput(series MeasurementSeries, n int) MeasurementSeries {
	if n <= 1 {
		return series
	}
	return GroupMeans(Group(series, n))
}
