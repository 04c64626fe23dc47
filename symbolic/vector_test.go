package symbolic_test

import (
	"testing"

	"github.com/njchilds90/gophysics/symbolic"
)

func TestGradient(t *testing.T) {
	// grad(x^2 + y^2) = (2x, 2y)
	x, y := symbolic.S("x"), symbolic.S("y")
	expr := symbolic.AddOf(symbolic.PowOf(x, symbolic.N(2)), symbolic.PowOf(y, symbolic.N(2)))
	grad := symbolic.Gradient(expr, []string{"x", "y"})
	if symbolic.String(grad[0]) != "2*x" || symbolic.String(grad[1]) != "2*y" {
		t.Errorf("want (2*x, 2*y), got (%s, %s)", symbolic.String(grad[0]), symbolic.String(grad[1]))
	}
}

func TestDivergence_Radial(t *testing.T) {
	// div(x, y, z) = 3
	comps := []symbolic.Expr{symbolic.S("x"), symbolic.S("y"), symbolic.S("z")}
	d := symbolic.Divergence(comps, []string{"x", "y", "z"})
	if symbolic.String(d) != "3" {
		t.Errorf("want 3, got %s", symbolic.String(d))
	}
}

func TestDivergence_RotationIsZero(t *testing.T) {
	comps := []symbolic.Expr{
		symbolic.S("y"),
		symbolic.MulOf(symbolic.N(-1), symbolic.S("x")),
		symbolic.N(0),
	}
	d := symbolic.Divergence(comps, []string{"x", "y", "z"})
	if symbolic.String(d) != "0" {
		t.Errorf("want 0, got %s", symbolic.String(d))
	}
}

func TestDivergence_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on length mismatch")
		}
	}()
	symbolic.Divergence([]symbolic.Expr{symbolic.S("x")}, []string{"x", "y"})
}

func TestCurl_Rotation(t *testing.T) {
	// curl(y, -x, 0) = (0, 0, -2)
	comps := [3]symbolic.Expr{
		symbolic.S("y"),
		symbolic.MulOf(symbolic.N(-1), symbolic.S("x")),
		symbolic.N(0),
	}
	c := symbolic.Curl(comps, [3]string{"x", "y", "z"})
	if symbolic.String(c[0]) != "0" || symbolic.String(c[1]) != "0" || symbolic.String(c[2]) != "-2" {
		t.Errorf("want (0, 0, -2), got (%s, %s, %s)",
			symbolic.String(c[0]), symbolic.String(c[1]), symbolic.String(c[2]))
	}
}

func TestCurl_GradientFieldIsZero(t *testing.T) {
	// curl(grad f) = 0 for f = x*y*z
	f := symbolic.MulOf(symbolic.S("x"), symbolic.S("y"), symbolic.S("z"))
	grad := symbolic.Gradient(f, []string{"x", "y", "z"})
	c := symbolic.Curl([3]symbolic.Expr{grad[0], grad[1], grad[2]}, [3]string{"x", "y", "z"})
	for i := range c {
		if symbolic.String(c[i]) != "0" {
			t.Errorf("component %d: want 0, got %s", i, symbolic.String(c[i]))
		}
	}
}

func TestEquation_String(t *testing.T) {
	eq := symbolic.Eq(symbolic.S("eta"), symbolic.N(1))
	if eq.String() != "eta = 1" {
		t.Errorf("want 'eta = 1', got %s", eq.String())
	}
}

func TestEquation_Residual(t *testing.T) {
	x := symbolic.S("x")
	eq := symbolic.Eq(symbolic.AddOf(x, symbolic.N(1)), x)
	if symbolic.String(eq.Residual()) != "1" {
		t.Errorf("want 1, got %s", symbolic.String(eq.Residual()))
	}
}
