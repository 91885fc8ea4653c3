package spc

import (
	"math"
	"strconv"
	"strings"
)

// isSeparator reports whether r separates tokens within a line. Tokens are
// split on runs of commas, tabs, and spaces, so "1,,2" and "1, 2" both
// yield two tokens.
func isSeparator(r rune) bool {
	return r == ',' || r == '\t' || r == ' ' || r == '\r'
}

// ParseToken attempts a numeric parse of a single token. The second return
// is false for anything that is not a valid number; rejected tokens are
// discarded by the callers, never surfaced as errors.
func ParseToken(token string) (float64, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

// ParseLine splits one line into tokens and returns the values of the
// tokens that parse as numbers, in order. Non-numeric tokens are dropped.
func ParseLine(line string) []float64 {
	tokens := strings.FieldsFunc(line, isSeparator)
	var values []float64
	for _, token := range tokens {
		if value, ok := ParseToken(token); ok {
			values = append(values, value)
		}
	}
	return values
}

// ParseSeries parses a raw text blob into a measurement series. Input is
// split into lines, blank lines are skipped, and each line's numeric tokens
// are concatenated in line order with 1-based positions assigned.
//
// ParseSeries never fails: empty or fully non-numeric input yields an
// empty series.
func ParseSeries(rawText string) MeasurementSeries {
	var series MeasurementSeries
	for _, line := range strings.Split(rawText, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, value := range ParseLine(line) {
			series = append(series, Reading{
				Position: len(series) + 1,
				Value:    value,
			})
		}
	}
	return series
}

// Summarize computes descriptive statistics for the series using Welford's
// online algorithm. The standard deviation of fewer than two readings is
// defined as 0.
func Summarize(series MeasurementSeries) SeriesSummary {
	summary := SeriesSummary{Count: len(series)}
	if len(series) == 0 {
		return summary
	}

	summary.Min = series[0].Value
	summary.Max = series[0].Value

	mean := 0.0
	m2 := 0.0
	for i, r := range series {
		if r.Value < summary.Min {
			summary.Min = r.Value
		}
		if r.Value > summary.Max {
			summary.Max = r.Value
		}
		delta := r.Value - mean
		mean += delta / float64(i+1)
		m2 += delta * (r.Value - mean)
	}

	summary.Mean = mean
	if len(series) >= 2 {
		summary.StdDev = math.Sqrt(m2 / float64(len(series)-1))
	}
	return summary
}
