// Package exporter writes chart computation reports for downstream
// consumption: per-chart CSV files and multi-sheet Excel workbooks, plus
// workbook reading for measurement input. The engine itself performs no
// I/O; everything file-shaped lives here.
package exporter
