package units

import (
	"fmt"
	"math/big"

	"github.com/njchilds90/gophysics/symbolic"
)

// Quantity is a symbolic expression together with its inferred SI dimension.
type Quantity struct {
	expr symbolic.Expr
	dim  Dimension
}

// New infers the dimension of the expression and wraps it. It fails when the
// expression combines incompatible dimensions, raises a dimensioned value to
// a non-constant power, or applies a transcendental function to a
// dimensioned argument.
func New(expr symbolic.Expr) (Quantity, error) {
	simplified := expr.Simplify()
	dim, err := DimensionOf(simplified)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{expr: simplified, dim: dim}, nil
}

// MustNew is New for expressions known to be well-formed, such as literals
// in examples and tests.
func MustNew(expr symbolic.Expr) Quantity {
	q, err := New(expr)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quantity) Expr() symbolic.Expr  { return q.expr }
func (q Quantity) Dimension() Dimension { return q.dim }
func (q Quantity) String() string       { return q.expr.String() }

// ConvertTo reduces the quantity to a numeric multiple of the target unit.
func (q Quantity) ConvertTo(u *Unit) (float64, error) {
	if !q.dim.Equal(u.Dimension()) {
		return 0, &DimensionMismatchError{
			Want:    u.Dimension(),
			Got:     q.dim,
			Context: "convert to " + u.Symbol(),
		}
	}
	si := reduceToSI(q.expr)
	v, ok := si.Eval()
	if !ok {
		return 0, fmt.Errorf("units: %s does not reduce to a number", q.expr.String())
	}
	scaled := new(big.Rat).Quo(v.Rat(), u.SIScale())
	f, _ := scaled.Float64()
	return f, nil
}

// Dimensionless returns the numeric value of a dimensionless quantity.
func (q Quantity) Dimensionless() (float64, error) {
	return q.ConvertTo(One)
}

// DimensionMismatchError reports an operation between incompatible
// dimensions.
type DimensionMismatchError struct {
	Want    Dimension
	Got     Dimension
	Context string
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("units: dimension mismatch in %s: want %s, got %s",
		e.Context, e.Want.String(), e.Got.String())
}

// RequireDimension checks a quantity against an expected dimension.
func RequireDimension(q Quantity, want Dimension, context string) error {
	if !q.Dimension().Equal(want) {
		return &DimensionMismatchError{Want: want, Got: q.Dimension(), Context: context}
	}
	return nil
}

// DimensionOf walks the expression tree and infers its SI dimension.
func DimensionOf(e symbolic.Expr) (Dimension, error) {
	switch v := e.(type) {
	case *symbolic.Num, *symbolic.Sym:
		// Bare numbers and free symbols carry no dimension.
		return Dimensionless, nil
	case *Unit:
		return v.Dimension(), nil
	case *symbolic.Add:
		terms := v.Terms()
		first, err := DimensionOf(terms[0])
		if err != nil {
			return Dimension{}, err
		}
		for _, t := range terms[1:] {
			d, err := DimensionOf(t)
			if err != nil {
				return Dimension{}, err
			}
			if !d.Equal(first) {
				return Dimension{}, &DimensionMismatchError{
					Want:    first,
					Got:     d,
					Context: "sum " + v.String(),
				}
			}
		}
		return first, nil
	case *symbolic.Mul:
		dim := Dimensionless
		for _, f := range v.Factors() {
			d, err := DimensionOf(f)
			if err != nil {
				return Dimension{}, err
			}
			dim = dim.Mul(d)
		}
		return dim, nil
	case *symbolic.Pow:
		baseDim, err := DimensionOf(v.Base())
		if err != nil {
			return Dimension{}, err
		}
		expDim, err := DimensionOf(v.Exponent())
		if err != nil {
			return Dimension{}, err
		}
		if !expDim.IsDimensionless() {
			return Dimension{}, &DimensionMismatchError{
				Want:    Dimensionless,
				Got:     expDim,
				Context: "exponent of " + v.String(),
			}
		}
		if baseDim.IsDimensionless() {
			return Dimensionless, nil
		}
		n, ok := v.Exponent().(*symbolic.Num)
		if !ok {
			return Dimension{}, fmt.Errorf(
				"units: dimensioned base %s needs a constant exponent", v.Base().String())
		}
		return baseDim.PowRat(n.Rat()), nil
	case *symbolic.Func:
		argDim, err := DimensionOf(v.Arg())
		if err != nil {
			return Dimension{}, err
		}
		if !argDim.IsDimensionless() {
			return Dimension{}, &DimensionMismatchError{
				Want:    Dimensionless,
				Got:     argDim,
				Context: v.FuncName() + " argument",
			}
		}
		return Dimensionless, nil
	}
	return Dimension{}, fmt.Errorf("units: cannot infer dimension of %s", e.String())
}

// reduceToSI rebuilds the expression with every unit atom replaced by its
// exact SI scale factor.
func reduceToSI(e symbolic.Expr) symbolic.Expr {
	switch v := e.(type) {
	case *Unit:
		return symbolic.R(v.SIScale())
	case *symbolic.Add:
		terms := v.Terms()
		out := make([]symbolic.Expr, len(terms))
		for i, t := range terms {
			out[i] = reduceToSI(t)
		}
		return symbolic.AddOf(out...)
	case *symbolic.Mul:
		factors := v.Factors()
		out := make([]symbolic.Expr, len(factors))
		for i, f := range factors {
			out[i] = reduceToSI(f)
		}
		return symbolic.MulOf(out...)
	case *symbolic.Pow:
		return symbolic.PowOf(reduceToSI(v.Base()), reduceToSI(v.Exponent()))
	case *symbolic.Func:
		return v.WithArg(reduceToSI(v.Arg()))
	}
	return e
}
