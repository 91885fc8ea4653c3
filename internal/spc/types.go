package spc

// ChartType identifies a control chart family
type ChartType string

const (
	// ChartIMR is the Individuals / Moving Range chart pair
	ChartIMR ChartType = "imr"
	// ChartXbarR is the X-bar / R chart pair for subgrouped data
	ChartXbarR ChartType = "xbar-r"
	// ChartEWMA is the exponentially weighted moving average chart
	ChartEWMA ChartType = "ewma"
	// ChartCUSUM is the two-sided tabular cumulative sum chart
	ChartCUSUM ChartType = "cusum"
)

// String returns the string representation of the chart type
func (c ChartType) String() string {
	return string(c)
}

// IsValid checks whether the chart type is one of the supported families
func (c ChartType) IsValid() bool {
	switch c {
	case ChartIMR, ChartXbarR, ChartEWMA, ChartCUSUM:
		return true
	}
	return false
}

// Phase selects how the process baseline is obtained
type Phase int

const (
	// Phase1 estimates the baseline from the measurement data itself
	Phase1 Phase = iota + 1
	// Phase2 uses an externally supplied baseline and skips estimation
	Phase2
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case Phase1:
		return "phase1"
	case Phase2:
		return "phase2"
	default:
		return "unknown"
	}
}

// Reading is a single parsed measurement with its 1-based position in the series
type Reading struct {
	Position int     `json:"position"`
	Value    float64 `json:"value"`
}

// MeasurementSeries is a time-ordered sequence of readings. Order is
// significant; readings are never reordered after parsing.
type MeasurementSeries []Reading

// Len returns the number of readings in the series
func (s MeasurementSeries) Len() int {
	return len(s)
}

// Values returns the reading values in series order
func (s MeasurementSeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, r := range s {
		values[i] = r.Value
	}
	return values
}

// Mean calculates the arithmetic mean of the series
func (s MeasurementSeries) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range s {
		sum += r.Value
	}
	return sum / float64(len(s))
}

// Subgroup is a complete non-overlapping window of consecutive readings
// treated as one sampling unit, with its derived mean and range.
type Subgroup struct {
	Readings []Reading `json:"readings"`
	Mean     float64   `json:"mean"`
	Range    float64   `json:"range"`
}

// Size returns the number of readings in the subgroup
func (g Subgroup) Size() int {
	return len(g.Readings)
}

// Baseline is the process center and dispersion a chart is judged against.
// Sigma >= 0 always; sigma == 0 is legal and propagates as "capability
// undefined" rather than an error.
type Baseline struct {
	Mean      float64 `json:"mean"`
	Sigma     float64 `json:"sigma"`
	Estimated bool    `json:"estimated"` // true when derived from the data (phase 1)
}

// Point is one plotted value of a chart series
type Point struct {
	Index int     `json:"index"`
	Value float64 `json:"value"`
}

// ChartSeries is an ordered sequence of plotted points
type ChartSeries []Point

// Values returns the point values in plot order
func (cs ChartSeries) Values() []float64 {
	values := make([]float64, len(cs))
	for i, p := range cs {
		values[i] = p.Value
	}
	return values
}

// ControlLimits holds the center line and control limits for a chart.
// Upper/Lower are the scalar limits; UpperSeries/LowerSeries are set only
// for charts with time-varying limits (EWMA), one entry per plotted point.
type ControlLimits struct {
	CenterLine  float64   `json:"center_line"`
	Upper       float64   `json:"upper"`
	Lower       float64   `json:"lower"`
	UpperSeries []float64 `json:"upper_series,omitempty"`
	LowerSeries []float64 `json:"lower_series,omitempty"`
}

// IsVarying reports whether the limits are per-point sequences
func (cl ControlLimits) IsVarying() bool {
	return len(cl.UpperSeries) > 0 || len(cl.LowerSeries) > 0
}

// ChartResult is one computed chart: its plotted points and limits
type ChartResult struct {
	Label  string        `json:"label"`
	Points ChartSeries   `json:"points"`
	Limits ControlLimits `json:"limits"`
}

// Overlay carries the raw observations and baseline mean that CUSUM charts
// expose for presentation alongside the accumulator series. The overlay is
// display data only; nothing downstream computes from it.
type Overlay struct {
	Observations ChartSeries `json:"observations"`
	Mean         float64     `json:"mean"`
}

// SpecLimits are the optional engineering specification limits. Either,
// both, or neither may be present; consumers must check before use.
type SpecLimits struct {
	USL *float64 `json:"usl,omitempty"`
	LSL *float64 `json:"lsl,omitempty"`
}

// CapabilityResult holds the process capability indices. Each index is nil
// when its inputs are absent or the process dispersion is degenerate
// (sigma <= 0); a nil index is not an error condition.
type CapabilityResult struct {
	Cp  *float64 `json:"cp,omitempty"`
	Cpk *float64 `json:"cpk,omitempty"`
	Cpu *float64 `json:"cpu,omitempty"`
	Cpl *float64 `json:"cpl,omitempty"`
	Pp  *float64 `json:"pp,omitempty"`
	Ppk *float64 `json:"ppk,omitempty"`
}

// SeriesSummary holds descriptive statistics of the parsed series, computed
// once per run for report headers. StdDev is the sample standard deviation;
// fewer than two readings yield 0, not NaN.
type SeriesSummary struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
}

// EWMAParams are the tunables of the EWMA chart
type EWMAParams struct {
	Lambda float64 `json:"lambda" validate:"gt=0,lte=1"` // smoothing weight, (0,1]
	L      float64 `json:"l" validate:"gt=0"`            // control limit width in sigmas
}

// DefaultEWMAParams returns the conventional EWMA tunables
func DefaultEWMAParams() EWMAParams {
	return EWMAParams{Lambda: 0.2, L: 3}
}

// CUSUMParams are the tunables of the tabular CUSUM chart
type CUSUMParams struct {
	K float64 `json:"k" validate:"gte=0"` // slack factor in sigmas
	H float64 `json:"h" validate:"gt=0"`  // decision interval factor in sigmas
}

// DefaultCUSUMParams returns the conventional CUSUM tunables
func DefaultCUSUMParams() CUSUMParams {
	return CUSUMParams{K: 0.5, H: 5}
}

// ComputeRequest is the full input bundle for one engine invocation
type ComputeRequest struct {
	RawText      string      `json:"raw_text"`
	Chart        ChartType   `json:"chart"`
	Phase        Phase       `json:"phase"`
	Baseline     *Baseline   `json:"baseline,omitempty"` // required when Phase2
	SubgroupSize int         `json:"subgroup_size"`
	EWMA         EWMAParams  `json:"ewma"`
	CUSUM        CUSUMParams `json:"cusum"`
	Limits       SpecLimits  `json:"limits"`
}

// Report is the complete output of one engine invocation: the chart bundle,
// the baseline it was judged against, series statistics, and capability.
type Report struct {
	Chart      ChartType        `json:"chart"`
	Main       ChartResult      `json:"main"`
	Secondary  *ChartResult     `json:"secondary,omitempty"`
	Overlay    *Overlay         `json:"overlay,omitempty"`
	Baseline   Baseline         `json:"baseline"`
	Summary    SeriesSummary    `json:"summary"`
	Capability CapabilityResult `json:"capability"`
}
