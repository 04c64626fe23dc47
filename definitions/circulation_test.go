package definitions_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gophysics/coords"
	"github.com/njchilds90/gophysics/definitions"
	"github.com/njchilds90/gophysics/field"
	"github.com/njchilds90/gophysics/symbolic"
	"github.com/njchilds90/gophysics/units"
)

// gravity is a force field directed down the y axis, falling off as the
// inverse square of y. The coefficient carries force times length squared.
func gravity() field.Field {
	coeff := symbolic.MulOf(
		symbolic.N(-1),
		units.Newton,
		symbolic.PowOf(units.Meter, symbolic.N(2)),
	)
	return field.InverseSquare(1, coeff)
}

func meters(n int64) symbolic.Expr {
	return symbolic.MulOf(symbolic.N(n), units.Meter)
}

func dimensionless(t *testing.T, q units.Quantity) float64 {
	t.Helper()
	v, err := q.Dimensionless()
	require.NoError(t, err)
	return v
}

func TestCirculation_UnitCircle(t *testing.T) {
	f := field.Func(func(p coords.Point) ([]symbolic.Expr, error) {
		return []symbolic.Expr{
			p.Y(),
			symbolic.N(0),
			symbolic.AddOf(p.X(), p.Z()),
		}, nil
	})
	curve := definitions.NewCurve(
		symbolic.CosOf(definitions.Parameter),
		symbolic.SinOf(definitions.Parameter),
	)
	q, err := definitions.CalculateCirculation(f, curve, symbolic.NFloat(0), symbolic.NFloat(math.Pi/2))
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi/4, dimensionless(t, q), 1e-6)
}

func TestCirculation_RotationFieldOnCircle(t *testing.T) {
	curve := definitions.NewCurve(
		symbolic.MulOf(symbolic.N(3), symbolic.CosOf(definitions.Parameter)),
		symbolic.MulOf(symbolic.N(3), symbolic.SinOf(definitions.Parameter)),
	)
	q, err := definitions.CalculateCirculation(
		field.Rotation(symbolic.N(1)), curve, symbolic.NFloat(0), symbolic.NFloat(2*math.Pi))
	require.NoError(t, err)
	assert.InDelta(t, -18*math.Pi, dimensionless(t, q), 1e-6)
}

func TestCirculation_PathSplitAdditivity(t *testing.T) {
	// The two half arcs of the circle sum to the full circulation.
	curve := definitions.NewCurve(
		symbolic.MulOf(symbolic.N(3), symbolic.CosOf(definitions.Parameter)),
		symbolic.MulOf(symbolic.N(3), symbolic.SinOf(definitions.Parameter)),
	)
	f := field.Rotation(symbolic.N(1))

	upper, err := definitions.CalculateCirculation(f, curve, symbolic.NFloat(0), symbolic.NFloat(math.Pi))
	require.NoError(t, err)
	lower, err := definitions.CalculateCirculation(f, curve, symbolic.NFloat(math.Pi), symbolic.NFloat(2*math.Pi))
	require.NoError(t, err)

	total := dimensionless(t, upper) + dimensionless(t, lower)
	assert.InDelta(t, -18*math.Pi, total, 1e-6)
}

func TestCirculation_BoundReversalNegates(t *testing.T) {
	curve := definitions.NewCurve(
		symbolic.MulOf(symbolic.N(3), symbolic.CosOf(definitions.Parameter)),
		symbolic.MulOf(symbolic.N(3), symbolic.SinOf(definitions.Parameter)),
	)
	f := field.Rotation(symbolic.N(1))

	forward, err := definitions.CalculateCirculation(f, curve, symbolic.NFloat(0), symbolic.NFloat(2*math.Pi))
	require.NoError(t, err)
	backward, err := definitions.CalculateCirculation(f, curve, symbolic.NFloat(2*math.Pi), symbolic.NFloat(0))
	require.NoError(t, err)

	assert.InDelta(t, -dimensionless(t, forward), dimensionless(t, backward), 1e-9)
}

func TestCirculation_OrthogonalHelixIsExactlyZero(t *testing.T) {
	f := field.Func(func(p coords.Point) ([]symbolic.Expr, error) {
		return []symbolic.Expr{
			p.Y(),
			symbolic.MulOf(symbolic.N(-1), p.X()),
			symbolic.N(1),
		}, nil
	})
	helix := definitions.NewCurve(
		symbolic.CosOf(definitions.Parameter),
		symbolic.SinOf(definitions.Parameter),
		definitions.Parameter,
	)
	q, err := definitions.CalculateCirculation(f, helix, symbolic.NFloat(0), symbolic.NFloat(2*math.Pi))
	require.NoError(t, err)
	// Trig cancellation makes this exact, not approximate.
	assert.Equal(t, "0", q.String())
}

func TestCirculation_VerticalLine(t *testing.T) {
	f := field.Func(func(p coords.Point) ([]symbolic.Expr, error) {
		return []symbolic.Expr{
			p.Y(),
			symbolic.MulOf(symbolic.N(-1), p.X()),
			symbolic.N(1),
		}, nil
	})
	line := definitions.NewCurve(symbolic.N(1), symbolic.N(0), definitions.Parameter)
	q, err := definitions.CalculateCirculation(f, line, symbolic.NFloat(0), symbolic.NFloat(2*math.Pi))
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, dimensionless(t, q), 1e-6)
}

func TestCirculation_GravitationalWork(t *testing.T) {
	// Along y = x from 1m to 2m the field does -0.5 J of work.
	curve := definitions.NewCurve(definitions.Parameter, definitions.Parameter)
	q, err := definitions.CalculateCirculation(gravity(), curve, meters(1), meters(2))
	require.NoError(t, err)
	assert.True(t, q.Dimension().Equal(units.Energy))

	work, err := q.ConvertTo(units.Joule)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, work, 1e-9)
}

func TestCirculation_HorizontalLineDoesNoWork(t *testing.T) {
	curve := definitions.NewCurve(definitions.Parameter, meters(5))
	q, err := definitions.CalculateCirculation(gravity(), curve, meters(1), meters(2))
	require.NoError(t, err)
	assert.Equal(t, "0", q.String())
	assert.InDelta(t, 0, dimensionless(t, q), 1e-12)
}

func TestCirculation_VerticalLineUp(t *testing.T) {
	curve := definitions.NewCurve(meters(5), definitions.Parameter)
	q, err := definitions.CalculateCirculation(gravity(), curve, meters(1), meters(2))
	require.NoError(t, err)
	work, err := q.ConvertTo(units.Joule)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, work, 1e-9)
}

func TestCirculation_VerticalLineDown(t *testing.T) {
	curve := definitions.NewCurve(meters(6), definitions.Parameter)
	q, err := definitions.CalculateCirculation(gravity(), curve, meters(2), meters(1))
	require.NoError(t, err)
	work, err := q.ConvertTo(units.Joule)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, work, 1e-9)
}

func TestCirculation_ShapeErrorTooFew(t *testing.T) {
	curve := definitions.NewCurve(definitions.Parameter)
	_, err := definitions.CalculateCirculation(
		field.Rotation(symbolic.N(1)), curve, symbolic.NFloat(0), symbolic.NFloat(1))
	require.Error(t, err)
	var shapeErr *definitions.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 1, shapeErr.Components)
}

func TestCirculation_ShapeErrorTooMany(t *testing.T) {
	curve := definitions.NewCurve(
		definitions.Parameter, definitions.Parameter, definitions.Parameter, definitions.Parameter)
	_, err := definitions.CalculateCirculation(
		field.Rotation(symbolic.N(1)), curve, symbolic.NFloat(0), symbolic.NFloat(1))
	var shapeErr *definitions.ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 4, shapeErr.Components)
}

func TestCirculation_FieldEvaluationError(t *testing.T) {
	// The gravity field is singular where y = 0.
	curve := definitions.NewCurve(definitions.Parameter, symbolic.N(0))
	_, err := definitions.CalculateCirculation(gravity(), curve, meters(1), meters(2))
	require.Error(t, err)
	var fieldErr *definitions.FieldEvaluationError
	require.ErrorAs(t, err, &fieldErr)
	assert.Contains(t, errors.Unwrap(fieldErr).Error(), "singular")
}

func TestCirculation_IntegrationErrorOnImplicitCurve(t *testing.T) {
	// y = sqrt(9 - t^2) is outside the closed-form rule table.
	curve := definitions.NewCurve(
		definitions.Parameter,
		symbolic.SqrtOf(symbolic.AddOf(
			symbolic.N(9),
			symbolic.MulOf(symbolic.N(-1), symbolic.PowOf(definitions.Parameter, symbolic.N(2))),
		)),
	)
	_, err := definitions.CalculateCirculation(
		field.Rotation(symbolic.N(1)), curve, symbolic.NFloat(3), symbolic.NFloat(-3))
	require.Error(t, err)
	var intErr *definitions.IntegrationError
	require.ErrorAs(t, err, &intErr)
	assert.NotEmpty(t, intErr.Integrand)
}

func TestCurve_Tangent(t *testing.T) {
	curve := definitions.NewCurve(
		symbolic.CosOf(definitions.Parameter),
		symbolic.SinOf(definitions.Parameter),
	)
	tangent := curve.Tangent()
	require.Len(t, tangent, 2)
	assert.Equal(t, "-1*sin(t)", symbolic.String(tangent[0]))
	assert.Equal(t, "cos(t)", symbolic.String(tangent[1]))
}
