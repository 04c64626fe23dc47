package symbolic

// FreeSymbols collects the names of all symbols appearing in the expression.
// Leaf nodes other than *Sym contribute nothing.
func FreeSymbols(e Expr) map[string]struct{} {
	syms := make(map[string]struct{})
	collectSymbols(e, syms)
	return syms
}

func collectSymbols(e Expr, syms map[string]struct{}) {
	switch v := e.(type) {
	case *Sym:
		syms[v.name] = struct{}{}
	case *Add:
		for _, t := range v.terms {
			collectSymbols(t, syms)
		}
	case *Mul:
		for _, f := range v.factors {
			collectSymbols(f, syms)
		}
	case *Pow:
		collectSymbols(v.base, syms)
		collectSymbols(v.exp, syms)
	case *Func:
		collectSymbols(v.arg, syms)
	}
}

// DependsOn reports whether the expression contains the named variable.
func DependsOn(e Expr, varName string) bool {
	_, ok := FreeSymbols(e)[varName]
	return ok
}

// Degree returns the polynomial degree of the expression in the named
// variable, or -1 if the expression is not polynomial in it.
func Degree(e Expr, varName string) int {
	coeffs := PolyCoeffs(e, varName)
	if coeffs == nil {
		return -1
	}
	max := 0
	for d := range coeffs {
		if d > max {
			max = d
		}
	}
	return max
}

// PolyCoeffs extracts the coefficients of the expression viewed as a
// polynomial in the named variable. The result maps degree to coefficient
// and is nil when the expression is not polynomial in the variable.
func PolyCoeffs(e Expr, varName string) map[int]Expr {
	coeffs := make(map[int]Expr)
	if !extractCoeffs(e.Simplify(), varName, coeffs) {
		return nil
	}
	return coeffs
}

func extractCoeffs(e Expr, varName string, coeffs map[int]Expr) bool {
	switch v := e.(type) {
	case *Add:
		for _, t := range v.terms {
			if !extractCoeffs(t, varName, coeffs) {
				return false
			}
		}
		return true
	case *Mul:
		deg := 0
		rest := []Expr{}
		for _, f := range v.factors {
			switch fv := f.(type) {
			case *Sym:
				if fv.name == varName {
					deg++
					continue
				}
			case *Pow:
				if b, ok := fv.base.(*Sym); ok && b.name == varName {
					n, ok2 := fv.exp.(*Num)
					if !ok2 || !n.IsInteger() {
						return false
					}
					deg += int(n.val.Num().Int64())
					continue
				}
			}
			if DependsOn(f, varName) {
				return false
			}
			rest = append(rest, f)
		}
		if deg < 0 {
			return false
		}
		addCoeff(coeffs, deg, MulOf(append([]Expr{N(1)}, rest...)...))
		return true
	case *Pow:
		if b, ok := v.base.(*Sym); ok && b.name == varName {
			n, ok2 := v.exp.(*Num)
			if !ok2 || !n.IsInteger() || n.IsNegative() {
				return false
			}
			addCoeff(coeffs, int(n.val.Num().Int64()), N(1))
			return true
		}
		if DependsOn(v, varName) {
			return false
		}
		addCoeff(coeffs, 0, v)
		return true
	case *Sym:
		if v.name == varName {
			addCoeff(coeffs, 1, N(1))
			return true
		}
		addCoeff(coeffs, 0, v)
		return true
	case *Num:
		addCoeff(coeffs, 0, v)
		return true
	}
	if DependsOn(e, varName) {
		return false
	}
	addCoeff(coeffs, 0, e)
	return true
}

func addCoeff(coeffs map[int]Expr, deg int, c Expr) {
	if prev, ok := coeffs[deg]; ok {
		coeffs[deg] = AddOf(prev, c)
	} else {
		coeffs[deg] = c.Simplify()
	}
}

// LinearForm decomposes the expression as a*var + b where neither a nor b
// depends on the variable and a is nonzero. The reported decomposition is
// validated by rebuilding it and comparing printed forms.
func LinearForm(e Expr, varName string) (a, b Expr, ok bool) {
	simplified := e.Simplify()
	if s, isSym := simplified.(*Sym); isSym && s.name == varName {
		return N(1), N(0), true
	}
	coeffs := PolyCoeffs(simplified, varName)
	if coeffs == nil {
		return nil, nil, false
	}
	for d := range coeffs {
		if d > 1 {
			return nil, nil, false
		}
	}
	a = N(0)
	if c, found := coeffs[1]; found {
		a = c.Simplify()
	}
	b = N(0)
	if c, found := coeffs[0]; found {
		b = c.Simplify()
	}
	if an, isNum := a.(*Num); isNum && an.IsZero() {
		return nil, nil, false
	}
	if DependsOn(a, varName) || DependsOn(b, varName) {
		return nil, nil, false
	}
	rebuilt := AddOf(MulOf(a, S(varName)), b)
	if rebuilt.String() != simplified.String() {
		return nil, nil, false
	}
	return a, b, true
}
