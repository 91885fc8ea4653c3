package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Mbaelfire/Quality-Project/internal/spc"
)

// CSVWriter writes chart reports as CSV files
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV report writer
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteReport writes one CSV file per chart in the report plus a summary
// file, all under outputDir with baseName as the filename stem.
func (w *CSVWriter) WriteReport(report *spc.Report, outputDir, baseName string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	charts := []spc.ChartResult{report.Main}
	if report.Secondary != nil {
		charts = append(charts, *report.Secondary)
	}

	for _, chart := range charts {
		path := filepath.Join(outputDir, fmt.Sprintf("%s_%s.csv", baseName, slugify(chart.Label)))
		if err := w.writeChart(chart, path); err != nil {
			return fmt.Errorf("write %s chart: %w", chart.Label, err)
		}
	}

	summaryPath := filepath.Join(outputDir, baseName+"_summary.csv")
	if err := w.writeSummary(report, summaryPath); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	w.logger.Info("wrote CSV report",
		slog.String("chart", report.Chart.String()),
		slog.String("output_dir", outputDir),
		slog.Int("charts", len(charts)),
	)
	return nil
}

// writeChart writes one chart's points and limits. Time-varying limits
// are written per row; scalar limits repeat on every row.
func (w *CSVWriter) writeChart(chart spc.ChartResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Index", "Value", "Center_Line", "UCL", "LCL"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, p := range chart.Points {
		upper := chart.Limits.Upper
		lower := chart.Limits.Lower
		if chart.Limits.IsVarying() {
			upper = chart.Limits.UpperSeries[i]
			lower = chart.Limits.LowerSeries[i]
		}
		row := []string{
			strconv.Itoa(p.Index),
			formatFloat(p.Value),
			formatFloat(chart.Limits.CenterLine),
			formatFloat(upper),
			formatFloat(lower),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}

	return writer.Error()
}

// writeSummary writes the baseline, series statistics, and capability
// indices as key/value rows. Absent indices are written as empty cells.
func (w *CSVWriter) writeSummary(report *spc.Report, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	rows := [][]string{
		{"Metric", "Value"},
		{"Chart", report.Chart.String()},
		{"Readings", strconv.Itoa(report.Summary.Count)},
		{"Min", formatFloat(report.Summary.Min)},
		{"Max", formatFloat(report.Summary.Max)},
		{"Mean", formatFloat(report.Summary.Mean)},
		{"StdDev", formatFloat(report.Summary.StdDev)},
		{"Baseline_Mean", formatFloat(report.Baseline.Mean)},
		{"Baseline_Sigma", formatFloat(report.Baseline.Sigma)},
		{"Baseline_Estimated", strconv.FormatBool(report.Baseline.Estimated)},
		{"Cp", formatIndex(report.Capability.Cp)},
		{"Cpk", formatIndex(report.Capability.Cpk)},
		{"Cpu", formatIndex(report.Capability.Cpu)},
		{"Cpl", formatIndex(report.Capability.Cpl)},
		{"Pp", formatIndex(report.Capability.Pp)},
		{"Ppk", formatIndex(report.Capability.Ppk)},
	}

	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatIndex(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

// slugify turns a chart label into a filename fragment
func slugify(label string) string {
	return strings.ReplaceAll(strings.ToLower(label), " ", "_")
}
