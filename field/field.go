// Package field models vector fields over coordinate systems.
package field

import (
	"fmt"

	"github.com/njchilds90/gophysics/coords"
	"github.com/njchilds90/gophysics/symbolic"
)

// Field maps a point to the components of a vector.
type Field interface {
	Evaluate(p coords.Point) ([]symbolic.Expr, error)
}

// Func adapts a plain function to the Field interface.
type Func func(p coords.Point) ([]symbolic.Expr, error)

func (f Func) Evaluate(p coords.Point) ([]symbolic.Expr, error) { return f(p) }

// Uniform is the constant field with the given components.
func Uniform(components ...symbolic.Expr) Field {
	fixed := make([]symbolic.Expr, len(components))
	copy(fixed, components)
	return Func(func(coords.Point) ([]symbolic.Expr, error) {
		out := make([]symbolic.Expr, len(fixed))
		copy(out, fixed)
		return out, nil
	})
}

// Rotation is the planar rotation field (y, -x, 0) scaled by a constant.
func Rotation(scale symbolic.Expr) Field {
	return Func(func(p coords.Point) ([]symbolic.Expr, error) {
		return []symbolic.Expr{
			symbolic.MulOf(scale, p.Y()),
			symbolic.MulOf(symbolic.N(-1), scale, p.X()),
			symbolic.N(0),
		}, nil
	})
}

// InverseSquare is a field whose single nonzero component falls off as the
// inverse square of the coordinate along the given axis. Evaluation fails at
// the singularity where that coordinate is literally zero.
func InverseSquare(axis int, coeff symbolic.Expr) Field {
	return Func(func(p coords.Point) ([]symbolic.Expr, error) {
		c := p.Coordinate(axis)
		if n, ok := c.Simplify().(*symbolic.Num); ok && n.IsZero() {
			return nil, fmt.Errorf("field: inverse-square field is singular at axis %d = 0", axis)
		}
		components := make([]symbolic.Expr, p.System().Dims())
		for i := range components {
			components[i] = symbolic.N(0)
		}
		components[axis] = symbolic.MulOf(coeff, symbolic.PowOf(c, symbolic.N(-2)))
		return components, nil
	})
}

// Divergence evaluates the field at the system's base point and takes the
// divergence with respect to the axis variables.
func Divergence(f Field, sys *coords.System) (symbolic.Expr, error) {
	comps, vars, err := atBasePoint(f, sys)
	if err != nil {
		return nil, err
	}
	return symbolic.Divergence(comps, vars), nil
}

// Curl evaluates a three-component field at the system's base point and
// takes its curl.
func Curl(f Field, sys *coords.System) ([3]symbolic.Expr, error) {
	comps, vars, err := atBasePoint(f, sys)
	if err != nil {
		return [3]symbolic.Expr{}, err
	}
	if len(comps) != 3 || len(vars) != 3 {
		return [3]symbolic.Expr{}, fmt.Errorf("field: curl needs 3 components, got %d", len(comps))
	}
	return symbolic.Curl(
		[3]symbolic.Expr{comps[0], comps[1], comps[2]},
		[3]string{vars[0], vars[1], vars[2]},
	), nil
}

func atBasePoint(f Field, sys *coords.System) ([]symbolic.Expr, []string, error) {
	comps, err := f.Evaluate(sys.BasePoint())
	if err != nil {
		return nil, nil, err
	}
	axes := sys.Axes()
	if len(comps) > len(axes) {
		return nil, nil, fmt.Errorf(
			"field: %d components for %d-axis system", len(comps), len(axes))
	}
	vars := make([]string, len(comps))
	for i := range comps {
		vars[i] = axes[i].Base.Name()
	}
	return comps, vars, nil
}
