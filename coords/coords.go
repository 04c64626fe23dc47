// Package coords provides coordinate systems and points whose coordinates
// are symbolic expressions.
package coords

import (
	"fmt"

	"github.com/njchilds90/gophysics/symbolic"
)

// Axis is a named coordinate axis with its base scalar symbol.
type Axis struct {
	Name string
	Base *symbolic.Sym
}

// System is an ordered set of axes.
type System struct {
	name string
	axes []Axis
}

// Cartesian returns the three-axis x, y, z system.
func Cartesian() *System {
	return &System{
		name: "cartesian",
		axes: []Axis{
			{Name: "x", Base: symbolic.S("x")},
			{Name: "y", Base: symbolic.S("y")},
			{Name: "z", Base: symbolic.S("z")},
		},
	}
}

func (s *System) Name() string { return s.name }
func (s *System) Axes() []Axis { return s.axes }
func (s *System) Dims() int    { return len(s.axes) }

// BasePoint returns the point whose coordinates are the bare axis symbols.
// Evaluating a field there yields its components as expressions in the
// axis variables.
func (s *System) BasePoint() Point {
	values := make([]symbolic.Expr, len(s.axes))
	for i, ax := range s.axes {
		values[i] = ax.Base
	}
	return Point{system: s, values: values}
}

// Point fixes expression values for some prefix of a system's axes.
// Axes beyond the given values read as zero.
func (s *System) Point(values ...symbolic.Expr) (Point, error) {
	if len(values) > len(s.axes) {
		return Point{}, fmt.Errorf(
			"coords: %d values for %d-axis system %s", len(values), len(s.axes), s.name)
	}
	vals := make([]symbolic.Expr, len(values))
	copy(vals, values)
	return Point{system: s, values: vals}, nil
}

// Point is a position in a coordinate system.
type Point struct {
	system *System
	values []symbolic.Expr
}

func (p Point) System() *System { return p.system }

// Coordinate returns the expression along the i-th axis. Missing trailing
// coordinates default to zero.
func (p Point) Coordinate(i int) symbolic.Expr {
	if i < 0 || i >= len(p.system.axes) {
		panic(fmt.Sprintf("coords: axis %d out of range for %s", i, p.system.name))
	}
	if i >= len(p.values) {
		return symbolic.N(0)
	}
	return p.values[i]
}

func (p Point) X() symbolic.Expr { return p.Coordinate(0) }
func (p Point) Y() symbolic.Expr { return p.Coordinate(1) }
func (p Point) Z() symbolic.Expr { return p.Coordinate(2) }
