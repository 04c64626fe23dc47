package symbolic

// Equation pairs a left and right hand side expression.
type Equation struct {
	LHS Expr
	RHS Expr
}

// Eq builds an equation from two expressions.
func Eq(lhs, rhs Expr) *Equation { return &Equation{LHS: lhs, RHS: rhs} }

func (eq *Equation) String() string {
	return eq.LHS.String() + " = " + eq.RHS.String()
}

// LaTeX renders the equation for display.
func (eq *Equation) LaTeX() string {
	return eq.LHS.LaTeX() + " = " + eq.RHS.LaTeX()
}

// Residual returns LHS - RHS, which is zero when the equation holds.
func (eq *Equation) Residual() Expr {
	return AddOf(eq.LHS, MulOf(N(-1), eq.RHS)).Simplify()
}
