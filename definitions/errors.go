package definitions

import "fmt"

// ShapeError reports a curve with an unsupported number of components.
type ShapeError struct {
	Components int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("definitions: curve must have 2 or 3 components, got %d", e.Components)
}

// FieldEvaluationError wraps a failure to evaluate the field on the curve.
type FieldEvaluationError struct {
	Err error
}

func (e *FieldEvaluationError) Error() string {
	return "definitions: field evaluation on curve failed: " + e.Err.Error()
}

func (e *FieldEvaluationError) Unwrap() error { return e.Err }

// IntegrationError reports an integrand outside the closed-form rule table.
type IntegrationError struct {
	Integrand string
}

func (e *IntegrationError) Error() string {
	return "definitions: no closed-form antiderivative for " + e.Integrand
}
