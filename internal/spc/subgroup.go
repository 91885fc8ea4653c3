package spc

// Group partitions the series into non-overlapping subgroups of size n,
// walking in series order. Only complete windows are emitted: a trailing
// remainder shorter than n is dropped without signaling.
//
// n = 1 is the ungrouped case: every reading becomes a singleton subgroup
// whose mean is the reading itself and whose range is 0. Sizes below 1 are
// treated as 1.
func Group(series MeasurementSeries, n int) []Subgroup {
	if n < 1 {
		n = 1
	}

	groups := make([]Subgroup, 0, len(series)/n)
	for start := 0; start+n <= len(series); start += n {
		window := series[start : start+n]

		sum := window[0].Value
		min := window[0].Value
		max := window[0].Value
		for _, r := range window[1:] {
			sum += r.Value
			if r.Value < min {
				min = r.Value
			}
			if r.Value > max {
				max = r.Value
			}
		}

		groups = append(groups, Subgroup{
			Readings: window,
			Mean:     sum / float64(n),
			Range:    max - min,
		})
	}
	return groups
}

// GroupMeans returns the subgroup means as a measurement series with fresh
// 1-based positions, for chart recurrences that consume subgrouped data.
func GroupMeans(groups []Subgroup) MeasurementSeries {
	series := make(MeasurementSeries, len(groups))
	for i, g := range groups {
		series[i] = Reading{Position: i + 1, Value: g.Mean}
	}
	return series
}
