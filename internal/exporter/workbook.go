package exporter

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Mbaelfire/Quality-Project/internal/spc"
)

// WriteWorkbook writes the report as one Excel workbook: a sheet per
// chart with points and limits, plus a Summary sheet with the baseline,
// series statistics, and capability indices.
func WriteWorkbook(report *spc.Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	charts := []spc.ChartResult{report.Main}
	if report.Secondary != nil {
		charts = append(charts, *report.Secondary)
	}

	for i, chart := range charts {
		sheet := chart.Label
		if i == 0 {
			// rename the default sheet instead of leaving it empty
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}
		if err := writeChartSheet(f, sheet, chart); err != nil {
			return fmt.Errorf("write sheet %s: %w", sheet, err)
		}
	}

	if _, err := f.NewSheet("Summary"); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	if err := writeSummarySheet(f, report); err != nil {
		return fmt.Errorf("write summary sheet: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}

	slog.Info("wrote Excel workbook",
		slog.String("path", path),
		slog.Int("sheets", len(charts)+1),
	)
	return nil
}

func writeChartSheet(f *excelize.File, sheet string, chart spc.ChartResult) error {
	headers := []interface{}{"Index", "Value", "Center Line", "UCL", "LCL"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return err
	}

	for i, p := range chart.Points {
		upper := chart.Limits.Upper
		lower := chart.Limits.Lower
		if chart.Limits.IsVarying() {
			upper = chart.Limits.UpperSeries[i]
			lower = chart.Limits.LowerSeries[i]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{p.Index, p.Value, chart.Limits.CenterLine, upper, lower}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, report *spc.Report) error {
	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Chart", report.Chart.String()},
		{"Readings", report.Summary.Count},
		{"Min", report.Summary.Min},
		{"Max", report.Summary.Max},
		{"Mean", report.Summary.Mean},
		{"StdDev", report.Summary.StdDev},
		{"Baseline Mean", report.Baseline.Mean},
		{"Baseline Sigma", report.Baseline.Sigma},
		{"Cp", indexCell(report.Capability.Cp)},
		{"Cpk", indexCell(report.Capability.Cpk)},
		{"Cpu", indexCell(report.Capability.Cpu)},
		{"Cpl", indexCell(report.Capability.Cpl)},
		{"Pp", indexCell(report.Capability.Pp)},
		{"Ppk", indexCell(report.Capability.Ppk)},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// indexCell renders a capability index, with "n/a" for undefined ones
func indexCell(v *float64) interface{} {
	if v == nil {
		return "n/a"
	}
	return *v
}

// ReadWorkbook flattens the first sheet of an Excel workbook into a raw
// text blob for the measurement parser: one line per row, cells joined by
// tabs. Non-numeric cells survive here and are dropped by the parser, the
// same treatment malformed text tokens get.
func ReadWorkbook(path string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return "", fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(strings.Join(row, "\t"))
		b.WriteByte('\n')
	}
	return b.String(), nil
}
