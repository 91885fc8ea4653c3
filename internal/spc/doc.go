// Package spc implements the statistical process control computation
// engine: control chart center lines and limits for four chart families
// plus process capability indices.
//
// # Architecture
//
// The engine is a pure, synchronous computation with no state between
// invocations. Raw text flows through the pipeline
//
//	ParseSeries -> Group (where the chart needs subgroups) -> chart
//	strategy -> capability indices
//
// and every Compute call returns a complete, deterministic Report built
// from plain value types the presentation layer can consume directly.
//
//   - types.go: value types (Reading, Subgroup, Baseline, ChartResult, ...)
//   - ingest.go: tolerant numeric parsing and series statistics
//   - constants.go: A2/D3/D4/d2 control chart constants by subgroup size
//   - subgroup.go: non-overlapping fixed-size subgroup formation
//   - imr.go: Individuals / Moving Range charts
//   - xbarr.go: X-bar / R charts
//   - ewma.go: EWMA chart with time-varying limits
//   - cusum.go: two-sided tabular CUSUM charts
//   - capability.go: Cp/Cpk/Cpu/Cpl and Pp/Ppk indices
//   - engine.go: request validation and chart dispatch
//   - validate.go: configuration validation
//
// # Baselines
//
// Every chart is judged against a Baseline of mean and sigma. Phase 1
// estimates it from the data (moving ranges for individuals-based charts,
// mean subgroup range over d2 for X-bar/R); phase 2 uses a supplied
// baseline verbatim. Sigma of 0 is legal and flows through as nil
// capability indices, never as an error.
//
// # Usage
//
//	engine := spc.NewEngine(slog.Default())
//	report, err := engine.Compute(ctx, spc.ComputeRequest{
//		RawText: "10 12 11\n13 12 14",
//		Chart:   spc.ChartXbarR,
//		Phase:   spc.Phase1,
//		SubgroupSize: 3,
//	})
package spc
