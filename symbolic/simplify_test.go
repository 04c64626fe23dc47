package symbolic_test

import (
	"testing"

	"github.com/njchilds90/gophysics/symbolic"
)

func TestExpand_Binomials(t *testing.T) {
	x := symbolic.S("x")
	expr := symbolic.MulOf(
		symbolic.AddOf(x, symbolic.N(1)),
		symbolic.AddOf(x, symbolic.N(2)),
	)
	expanded := symbolic.Expand(expr)
	if symbolic.String(expanded) != "3*x + x^2 + 2" {
		t.Errorf("want '3*x + x^2 + 2', got %s", symbolic.String(expanded))
	}
}

func TestExpand_Square(t *testing.T) {
	x := symbolic.S("x")
	expr := symbolic.PowOf(symbolic.AddOf(x, symbolic.N(1)), symbolic.N(2))
	expanded := symbolic.Expand(expr)
	if symbolic.String(expanded) != "2*x + x^2 + 1" {
		t.Errorf("want '2*x + x^2 + 1', got %s", symbolic.String(expanded))
	}
}

func TestTrigSimplify_Pythagorean(t *testing.T) {
	x := symbolic.S("x")
	expr := symbolic.AddOf(
		symbolic.PowOf(symbolic.SinOf(x), symbolic.N(2)),
		symbolic.PowOf(symbolic.CosOf(x), symbolic.N(2)),
	)
	result := symbolic.TrigSimplify(expr)
	if symbolic.String(result) != "1" {
		t.Errorf("sin^2 + cos^2 should be 1, got %s", symbolic.String(result))
	}
}

func TestTrigSimplify_WithCoefficients(t *testing.T) {
	// -9*sin^2(t) + -9*cos^2(t) = -9
	tt := symbolic.S("t")
	expr := symbolic.AddOf(
		symbolic.MulOf(symbolic.N(-9), symbolic.PowOf(symbolic.SinOf(tt), symbolic.N(2))),
		symbolic.MulOf(symbolic.N(-9), symbolic.PowOf(symbolic.CosOf(tt), symbolic.N(2))),
	)
	result := symbolic.TrigSimplify(expr)
	if symbolic.String(result) != "-9" {
		t.Errorf("want -9, got %s", symbolic.String(result))
	}
}

func TestTrigSimplify_UnequalCoefficientsUntouched(t *testing.T) {
	tt := symbolic.S("t")
	expr := symbolic.AddOf(
		symbolic.MulOf(symbolic.N(2), symbolic.PowOf(symbolic.SinOf(tt), symbolic.N(2))),
		symbolic.MulOf(symbolic.N(3), symbolic.PowOf(symbolic.CosOf(tt), symbolic.N(2))),
	)
	result := symbolic.TrigSimplify(expr)
	if symbolic.String(result) == "5" {
		t.Errorf("unequal coefficients must not collapse, got %s", symbolic.String(result))
	}
}

func TestTrigSimplify_DifferentArgsUntouched(t *testing.T) {
	expr := symbolic.AddOf(
		symbolic.PowOf(symbolic.SinOf(symbolic.S("x")), symbolic.N(2)),
		symbolic.PowOf(symbolic.CosOf(symbolic.S("y")), symbolic.N(2)),
	)
	result := symbolic.TrigSimplify(expr)
	if symbolic.String(result) == "1" {
		t.Errorf("different arguments must not collapse")
	}
}

func TestDeepSimplify_LeavesResidue(t *testing.T) {
	// sin^2(x) + cos^2(x) + x -> x + 1
	x := symbolic.S("x")
	expr := symbolic.AddOf(
		symbolic.PowOf(symbolic.SinOf(x), symbolic.N(2)),
		symbolic.PowOf(symbolic.CosOf(x), symbolic.N(2)),
		x,
	)
	result := symbolic.DeepSimplify(expr)
	if symbolic.String(result) != "x + 1" {
		t.Errorf("want 'x + 1', got %s", symbolic.String(result))
	}
}
