package symbolic

// Gradient returns the vector of partial derivatives of a scalar expression
// with respect to the given variables.
func Gradient(expr Expr, vars []string) []Expr {
	grad := make([]Expr, len(vars))
	for i, v := range vars {
		grad[i] = Diff(expr, v)
	}
	return grad
}

// Divergence returns the sum of the diagonal partial derivatives of a
// vector expression. The component and variable counts must match.
func Divergence(components []Expr, vars []string) Expr {
	if len(components) != len(vars) {
		panic("symbolic: divergence needs one variable per component")
	}
	terms := make([]Expr, len(components))
	for i := range components {
		terms[i] = Diff(components[i], vars[i])
	}
	return AddOf(terms...)
}

// Curl returns the curl of a 3-component vector expression.
func Curl(components [3]Expr, vars [3]string) [3]Expr {
	return [3]Expr{
		AddOf(Diff(components[2], vars[1]), MulOf(N(-1), Diff(components[1], vars[2]))),
		AddOf(Diff(components[0], vars[2]), MulOf(N(-1), Diff(components[2], vars[0]))),
		AddOf(Diff(components[1], vars[0]), MulOf(N(-1), Diff(components[0], vars[1]))),
	}
}
