package spc

// ComputeCapability derives the Cp family of process capability indices
// from a baseline and optional specification limits.
//
// A sigma of 0 or below means the process dispersion is degenerate and
// every index is nil; division by zero never happens. Missing spec limits
// yield nil for the indices that depend on them, not errors: Cpu needs the
// USL, Cpl needs the LSL, Cp needs both, and Cpk is the minimum of
// whichever of Cpu/Cpl exist.
func ComputeCapability(baseline Baseline, limits SpecLimits) CapabilityResult {
	var result CapabilityResult
	if baseline.Sigma <= 0 {
		return result
	}

	if limits.USL != nil {
		cpu := (*limits.USL - baseline.Mean) / (3 * baseline.Sigma)
		result.Cpu = &cpu
	}
	if limits.LSL != nil {
		cpl := (baseline.Mean - *limits.LSL) / (3 * baseline.Sigma)
		result.Cpl = &cpl
	}

	switch {
	case result.Cpu != nil && result.Cpl != nil:
		cpk := *result.Cpu
		if *result.Cpl < cpk {
			cpk = *result.Cpl
		}
		result.Cpk = &cpk
	case result.Cpu != nil:
		cpk := *result.Cpu
		result.Cpk = &cpk
	case result.Cpl != nil:
		cpk := *result.Cpl
		result.Cpk = &cpk
	}

	if limits.USL != nil && limits.LSL != nil {
		cp := (*limits.USL - *limits.LSL) / (6 * baseline.Sigma)
		result.Cp = &cp
	}

	return result
}

// ComputeOverall derives the Pp/Ppk overall capability indices from the
// series' own mean and sample standard deviation, as opposed to the
// within-subgroup sigma behind Cp/Cpk. The same nullability rules apply:
// a degenerate standard deviation or missing limits yield nils.
func ComputeOverall(summary SeriesSummary, limits SpecLimits) (pp, ppk *float64) {
	if summary.StdDev <= 0 {
		return nil, nil
	}

	var ppu, ppl *float64
	if limits.USL != nil {
		v := (*limits.USL - summary.Mean) / (3 * summary.StdDev)
		ppu = &v
	}
	if limits.LSL != nil {
		v := (summary.Mean - *limits.LSL) / (3 * summary.StdDev)
		ppl = &v
	}

	switch {
	case ppu != nil && ppl != nil:
		v := *ppu
		if *ppl < v {
			v = *ppl
		}
		ppk = &v
	case ppu != nil:
		v := *ppu
		ppk = &v
	case ppl != nil:
		v := *ppl
		ppk = &v
	}

	if limits.USL != nil && limits.LSL != nil {
		v := (*limits.USL - *limits.LSL) / (6 * summary.StdDev)
		pp = &v
	}

	return pp, ppk
}
