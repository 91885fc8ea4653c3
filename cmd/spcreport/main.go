// Command spcreport computes control charts and capability indices for a
// file of measurements and writes CSV and Excel reports.
//
// The input file is plain text (tokens separated by commas, tabs, or
// spaces, one or more per line) or an .xlsx workbook, in which case the
// first sheet's cells are flattened in row order. Non-numeric tokens are
// ignored.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Mbaelfire/Quality-Project/internal/config"
	"github.com/Mbaelfire/Quality-Project/internal/exporter"
	"github.com/Mbaelfire/Quality-Project/internal/infrastructure"
	"github.com/Mbaelfire/Quality-Project/internal/spc"
)

type options struct {
	input      string
	outputDir  string
	chart      string
	configPath string

	subgroupSize int
	phase2       bool
	mean         float64
	sigma        float64

	lambda     float64
	limitWidth float64
	cusumSlack float64
	cusumH     float64

	usl, lsl       float64
	uslSet, lslSet bool
}

func main() {
	var opts options

	flag.StringVar(&opts.input, "input", "", "measurement file (.txt, .csv, or .xlsx)")
	flag.StringVar(&opts.outputDir, "out", "", "output directory for reports (defaults to config paths.output_dir)")
	flag.StringVar(&opts.chart, "chart", "imr", "chart type: imr, xbar-r, ewma, cusum, or all")
	flag.StringVar(&opts.configPath, "config", "", "optional YAML config file")

	flag.IntVar(&opts.subgroupSize, "n", 0, "subgroup size (x-bar/r default 5; ewma/cusum default 1 = ungrouped)")
	flag.BoolVar(&opts.phase2, "phase2", false, "use the supplied -mean/-sigma baseline instead of estimating")
	flag.Float64Var(&opts.mean, "mean", 0, "phase 2 baseline mean")
	flag.Float64Var(&opts.sigma, "sigma", 0, "phase 2 baseline sigma")

	flag.Float64Var(&opts.lambda, "lambda", 0, "EWMA weight in (0,1] (default from config)")
	flag.Float64Var(&opts.limitWidth, "limit-width", 0, "EWMA control limit width in sigmas (default from config)")
	flag.Float64Var(&opts.cusumSlack, "cusum-k", -1, "CUSUM slack factor in sigmas (default from config)")
	flag.Float64Var(&opts.cusumH, "cusum-h", 0, "CUSUM decision interval in sigmas (default from config)")

	flag.Float64Var(&opts.usl, "usl", 0, "upper specification limit")
	flag.Float64Var(&opts.lsl, "lsl", 0, "lower specification limit")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "usl":
			opts.uslSet = true
		case "lsl":
			opts.lslSet = true
		}
	})

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.InitializeLogger(cfg.Logging)

	if err := run(context.Background(), cfg, logger, opts); err != nil {
		logger.Error("Report generation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts options) error {
	if opts.input == "" {
		return fmt.Errorf("no input file given (use -input)")
	}

	rawText, err := loadInput(opts.input)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	outputDir := opts.outputDir
	if outputDir == "" {
		outputDir = cfg.Paths.OutputDir
	}

	charts, err := selectCharts(opts.chart)
	if err != nil {
		return err
	}

	engine := spc.NewEngine(logger)
	writer := exporter.NewCSVWriter(logger)

	// Independent chart types run concurrently; each invocation builds
	// its request from scratch so nothing is shared between them.
	g, gctx := errgroup.WithContext(ctx)
	for _, chart := range charts {
		chart := chart
		g.Go(func() error {
			req := buildRequest(cfg, opts, chart, rawText)

			report, err := engine.Compute(gctx, req)
			if err != nil {
				return fmt.Errorf("compute %s: %w", chart, err)
			}

			baseName := strings.ReplaceAll(chart.String(), "-", "_")
			if err := writer.WriteReport(report, outputDir, baseName); err != nil {
				return fmt.Errorf("export %s CSV: %w", chart, err)
			}
			workbookPath := filepath.Join(outputDir, baseName+".xlsx")
			if err := exporter.WriteWorkbook(report, workbookPath); err != nil {
				return fmt.Errorf("export %s workbook: %w", chart, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Report generation completed",
		"input", opts.input,
		"output_dir", outputDir,
		"charts", len(charts),
	)
	return nil
}

// loadInput reads the measurement file; workbooks are flattened to text
func loadInput(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return exporter.ReadWorkbook(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// selectCharts resolves the -chart flag into chart types to compute
func selectCharts(name string) ([]spc.ChartType, error) {
	if name == "all" {
		return []spc.ChartType{spc.ChartIMR, spc.ChartXbarR, spc.ChartEWMA, spc.ChartCUSUM}, nil
	}
	chart := spc.ChartType(name)
	if !chart.IsValid() {
		return nil, fmt.Errorf("unknown chart type %q (want imr, xbar-r, ewma, cusum, or all)", name)
	}
	return []spc.ChartType{chart}, nil
}

// buildRequest assembles a compute request from config defaults and flag
// overrides for one chart type
func buildRequest(cfg *config.Config, opts options, chart spc.ChartType, rawText string) spc.ComputeRequest {
	req := spc.ComputeRequest{
		RawText: rawText,
		Chart:   chart,
		Phase:   spc.Phase1,
		EWMA:    cfg.EWMAParams(),
		CUSUM:   cfg.CUSUMParams(),
	}

	if opts.phase2 {
		req.Phase = spc.Phase2
		req.Baseline = &spc.Baseline{Mean: opts.mean, Sigma: opts.sigma}
	}

	if chart == spc.ChartXbarR {
		req.SubgroupSize = cfg.Charts.SubgroupSize
	}
	if opts.subgroupSize > 0 {
		req.SubgroupSize = opts.subgroupSize
	}

	if opts.lambda > 0 {
		req.EWMA.Lambda = opts.lambda
	}
	if opts.limitWidth > 0 {
		req.EWMA.L = opts.limitWidth
	}
	if opts.cusumSlack >= 0 {
		req.CUSUM.K = opts.cusumSlack
	}
	if opts.cusumH > 0 {
		req.CUSUM.H = opts.cusumH
	}

	if opts.uslSet {
		usl := opts.usl
		req.Limits.USL = &usl
	}
	if opts.lslSet {
		lsl := opts.lsl
		req.Limits.LSL = &lsl
	}

	return req
}
