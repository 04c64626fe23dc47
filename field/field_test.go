package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/gophysics/coords"
	"github.com/njchilds90/gophysics/field"
	"github.com/njchilds90/gophysics/symbolic"
)

func TestUniform(t *testing.T) {
	f := field.Uniform(symbolic.N(1), symbolic.N(2))
	comps, err := f.Evaluate(coords.Cartesian().BasePoint())
	require.NoError(t, err)
	require.Len(t, comps, 2)
	assert.Equal(t, "1", symbolic.String(comps[0]))
	assert.Equal(t, "2", symbolic.String(comps[1]))
}

func TestRotation_AtBasePoint(t *testing.T) {
	f := field.Rotation(symbolic.N(1))
	comps, err := f.Evaluate(coords.Cartesian().BasePoint())
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, "y", symbolic.String(comps[0]))
	assert.Equal(t, "-1*x", symbolic.String(comps[1]))
	assert.Equal(t, "0", symbolic.String(comps[2]))
}

func TestInverseSquare_Singularity(t *testing.T) {
	f := field.InverseSquare(1, symbolic.N(1))
	p, err := coords.Cartesian().Point(symbolic.S("t"), symbolic.N(0))
	require.NoError(t, err)
	_, err = f.Evaluate(p)
	require.Error(t, err)
}

func TestInverseSquare_Components(t *testing.T) {
	f := field.InverseSquare(1, symbolic.N(-1))
	p, err := coords.Cartesian().Point(symbolic.S("t"), symbolic.S("t"))
	require.NoError(t, err)
	comps, err := f.Evaluate(p)
	require.NoError(t, err)
	require.Len(t, comps, 3)
	assert.Equal(t, "0", symbolic.String(comps[0]))
	assert.Equal(t, "-1*t^-2", symbolic.String(comps[1]))
	assert.Equal(t, "0", symbolic.String(comps[2]))
}

func TestDivergence_RotationIsZero(t *testing.T) {
	div, err := field.Divergence(field.Rotation(symbolic.N(1)), coords.Cartesian())
	require.NoError(t, err)
	assert.Equal(t, "0", symbolic.String(div))
}

func TestDivergence_RadialIsThree(t *testing.T) {
	f := field.Func(func(p coords.Point) ([]symbolic.Expr, error) {
		return []symbolic.Expr{p.X(), p.Y(), p.Z()}, nil
	})
	div, err := field.Divergence(f, coords.Cartesian())
	require.NoError(t, err)
	assert.Equal(t, "3", symbolic.String(div))
}

func TestCurl_Rotation(t *testing.T) {
	curl, err := field.Curl(field.Rotation(symbolic.N(1)), coords.Cartesian())
	require.NoError(t, err)
	assert.Equal(t, "0", symbolic.String(curl[0]))
	assert.Equal(t, "0", symbolic.String(curl[1]))
	assert.Equal(t, "-2", symbolic.String(curl[2]))
}

func TestCurl_TwoComponentFieldFails(t *testing.T) {
	_, err := field.Curl(field.Uniform(symbolic.N(1), symbolic.N(2)), coords.Cartesian())
	require.Error(t, err)
}
