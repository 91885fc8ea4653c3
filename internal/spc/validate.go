package spc

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes a single invalid configuration field
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// requestValidator validates ComputeRequest struct tags. Shared across
// invocations; validator.Validate is safe for concurrent use.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// ValidateRequest checks a compute request before any computation runs.
// Data-shape degeneracy (empty series, zero variance) is never an error;
// only configuration that has no defined meaning is rejected here.
func ValidateRequest(req ComputeRequest) error {
	if !req.Chart.IsValid() {
		return &ValidationError{
			Field:   "chart",
			Message: fmt.Sprintf("unsupported chart type %q", req.Chart),
			Value:   req.Chart.String(),
		}
	}

	if req.Phase != Phase1 && req.Phase != Phase2 {
		return &ValidationError{
			Field:   "phase",
			Message: "phase must be phase1 or phase2",
			Value:   int(req.Phase),
		}
	}

	if req.Phase == Phase2 {
		if req.Baseline == nil {
			return &ValidationError{
				Field:   "baseline",
				Message: "phase2 requires a supplied baseline",
			}
		}
		if req.Baseline.Sigma < 0 {
			return &ValidationError{
				Field:   "baseline.sigma",
				Message: "baseline sigma must not be negative",
				Value:   req.Baseline.Sigma,
			}
		}
	}

	// Subgroup sizes above the tabulated range have no defined constants;
	// report rather than clamp. Sizes below the minimum are normalized by
	// the individual chart strategies.
	if req.SubgroupSize > MaxSubgroupSize {
		if _, err := LookupConstants(req.SubgroupSize); err != nil {
			return err
		}
	}

	// Tunables only matter for the chart that reads them
	switch req.Chart {
	case ChartEWMA:
		if err := requestValidator.Struct(req.EWMA); err != nil {
			return wrapFieldErrors(err)
		}
	case ChartCUSUM:
		if err := requestValidator.Struct(req.CUSUM); err != nil {
			return wrapFieldErrors(err)
		}
	}

	if req.Limits.USL != nil && req.Limits.LSL != nil && *req.Limits.USL < *req.Limits.LSL {
		return &ValidationError{
			Field:   "limits",
			Message: "upper specification limit must not be below the lower specification limit",
			Value:   map[string]float64{"usl": *req.Limits.USL, "lsl": *req.Limits.LSL},
		}
	}

	return nil
}

// wrapFieldErrors converts validator field errors into the package error type
func wrapFieldErrors(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return fmt.Errorf("validate request: %w", err)
	}
	fe := fieldErrors[0]
	return &ValidationError{
		Field:   fe.Namespace(),
		Message: fmt.Sprintf("failed %q constraint", fe.Tag()),
		Value:   fe.Value(),
	}
}
