// Package definitions implements integral definitions of physical
// quantities, currently the circulation of a vector field along a curve.
//
// Circulation is the line integral
//
//	C = ∫ F · dr = ∫ Σ F_i(r(t)) * dr_i/dt dt
//
// taken between two parameter values. Reversing the bounds negates the
// result, and a field everywhere orthogonal to the curve tangent gives
// exactly zero.
package definitions

import (
	"github.com/njchilds90/gophysics/coords"
	"github.com/njchilds90/gophysics/field"
	"github.com/njchilds90/gophysics/symbolic"
	"github.com/njchilds90/gophysics/units"
)

// Parameter is the conventional curve parameter symbol. Curves built with
// NewCurve use it.
var Parameter = symbolic.S("t")

// Curve is a parametrized path: one expression per coordinate, each in
// terms of the curve parameter.
type Curve struct {
	Parameter  *symbolic.Sym
	Components []symbolic.Expr
}

// NewCurve builds a curve over the conventional parameter t.
func NewCurve(components ...symbolic.Expr) Curve {
	fixed := make([]symbolic.Expr, len(components))
	copy(fixed, components)
	return Curve{Parameter: Parameter, Components: fixed}
}

// Tangent differentiates each component with respect to the curve
// parameter.
func (c Curve) Tangent() []symbolic.Expr {
	out := make([]symbolic.Expr, len(c.Components))
	for i, comp := range c.Components {
		out[i] = symbolic.Diff(comp, c.Parameter.Name())
	}
	return out
}

// CalculateCirculation integrates the field along the curve between the two
// parameter bounds. The curve must have 2 or 3 components. The result is a
// quantity whose dimension follows from the field and curve expressions;
// unit atoms in either flow through the integration as constants.
func CalculateCirculation(f field.Field, curve Curve, from, to symbolic.Expr) (units.Quantity, error) {
	if len(curve.Components) < 2 || len(curve.Components) > 3 {
		return units.Quantity{}, &ShapeError{Components: len(curve.Components)}
	}

	point, err := coords.Cartesian().Point(curve.Components...)
	if err != nil {
		return units.Quantity{}, err
	}
	components, err := f.Evaluate(point)
	if err != nil {
		return units.Quantity{}, &FieldEvaluationError{Err: err}
	}

	tangent := curve.Tangent()
	n := len(tangent)
	if len(components) < n {
		n = len(components)
	}
	terms := make([]symbolic.Expr, 0, n)
	for i := 0; i < n; i++ {
		terms = append(terms, symbolic.MulOf(components[i], tangent[i]))
	}
	integrand := symbolic.Expand(symbolic.DeepSimplify(symbolic.AddOf(terms...)))

	param := curve.Parameter.Name()
	primitive, ok := symbolic.Integrate(integrand, param)
	if !ok {
		return units.Quantity{}, &IntegrationError{Integrand: integrand.String()}
	}

	upper := symbolic.Sub(primitive, param, to)
	lower := symbolic.Sub(primitive, param, from)
	total := symbolic.DeepSimplify(symbolic.AddOf(upper, symbolic.MulOf(symbolic.N(-1), lower)))
	return units.New(total)
}
