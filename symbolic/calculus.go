package symbolic

// Diff differentiates the expression with respect to the named variable
// and simplifies the result.
func Diff(e Expr, varName string) Expr {
	return e.Diff(varName).Simplify()
}

// Integrate returns an antiderivative of the expression with respect to the
// named variable. It works over a table of closed forms: polynomials,
// powers of linear arguments, sin, cos and exp of linear arguments, squared
// sines and cosines, same-argument sine-cosine products, exponentials with
// constant base, and ln of the bare variable. The second return value is
// false when the integrand falls outside that table.
func Integrate(e Expr, varName string) (Expr, bool) {
	expr := e.Simplify()
	if !DependsOn(expr, varName) {
		return MulOf(expr, S(varName)), true
	}
	switch v := expr.(type) {
	case *Sym:
		if v.name == varName {
			return MulOf(F(1, 2), PowOf(S(varName), N(2))), true
		}
	case *Add:
		parts := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			p, ok := Integrate(t, varName)
			if !ok {
				return nil, false
			}
			parts[i] = p
		}
		return AddOf(parts...), true
	case *Mul:
		return integrateProduct(v, varName)
	case *Pow:
		return integratePow(v, varName)
	case *Func:
		return integrateFunc(v, varName)
	}
	return nil, false
}

// integrateProduct pulls variable-free factors out of the product and
// recurses on what remains.
func integrateProduct(m *Mul, varName string) (Expr, bool) {
	constant := []Expr{}
	dependent := []Expr{}
	for _, f := range m.factors {
		if DependsOn(f, varName) {
			dependent = append(dependent, f)
		} else {
			constant = append(constant, f)
		}
	}
	if len(constant) > 0 {
		inner, ok := Integrate(MulOf(append([]Expr{N(1)}, dependent...)...), varName)
		if !ok {
			return nil, false
		}
		return MulOf(append(constant, inner)...), true
	}
	if prim, ok := integrateSinCosProduct(dependent, varName); ok {
		return prim, true
	}
	return nil, false
}

// integrateSinCosProduct handles sin(u)*cos(u) with a shared linear
// argument, giving sin²(u)/(2a).
func integrateSinCosProduct(factors []Expr, varName string) (Expr, bool) {
	if len(factors) != 2 {
		return nil, false
	}
	var sinArg, cosArg Expr
	for _, f := range factors {
		fn, ok := f.(*Func)
		if !ok {
			return nil, false
		}
		switch fn.name {
		case "sin":
			sinArg = fn.arg
		case "cos":
			cosArg = fn.arg
		default:
			return nil, false
		}
	}
	if sinArg == nil || cosArg == nil || groupKey(sinArg) != groupKey(cosArg) {
		return nil, false
	}
	a, _, ok := LinearForm(sinArg, varName)
	if !ok {
		return nil, false
	}
	return MulOf(F(1, 2), PowOf(a, N(-1)), PowOf(funcOf("sin", sinArg), N(2))), true
}

func integratePow(p *Pow, varName string) (Expr, bool) {
	// Power of a linear argument with a constant rational exponent.
	if n, ok := p.exp.(*Num); ok && !DependsOn(p.exp, varName) {
		if a, _, okL := LinearForm(p.base, varName); okL {
			if n.IsNegOne() {
				return MulOf(PowOf(a, N(-1)), LnOf(AbsOf(p.base))), true
			}
			newExp := numAdd(n, N(1))
			return MulOf(PowOf(MulOf(a, newExp), N(-1)), PowOf(p.base, newExp)), true
		}
		// sin² and cos² of a linear argument by power reduction.
		if n.Equal(N(2)) {
			if fn, okF := p.base.(*Func); okF && (fn.name == "sin" || fn.name == "cos") {
				if a, _, okL := LinearForm(fn.arg, varName); okL {
					double := MulOf(N(2), fn.arg)
					osc := MulOf(F(-1, 4), PowOf(a, N(-1)), SinOf(double))
					if fn.name == "cos" {
						osc = MulOf(F(1, 4), PowOf(a, N(-1)), SinOf(double))
					}
					return AddOf(MulOf(F(1, 2), PowOf(a, N(-1)), fn.arg), osc), true
				}
			}
		}
	}
	// Constant base raised to a linear exponent: b^(a*v+c) / (a*ln b).
	if !DependsOn(p.base, varName) {
		if a, _, ok := LinearForm(p.exp, varName); ok {
			return MulOf(PowOf(MulOf(a, LnOf(p.base)), N(-1)), p), true
		}
	}
	return nil, false
}

func integrateFunc(f *Func, varName string) (Expr, bool) {
	switch f.name {
	case "sin", "cos", "exp":
		a, _, ok := LinearForm(f.arg, varName)
		if !ok {
			return nil, false
		}
		switch f.name {
		case "sin":
			return MulOf(N(-1), PowOf(a, N(-1)), CosOf(f.arg)), true
		case "cos":
			return MulOf(PowOf(a, N(-1)), SinOf(f.arg)), true
		default:
			return MulOf(PowOf(a, N(-1)), ExpOf(f.arg)), true
		}
	case "ln":
		if s, ok := f.arg.(*Sym); ok && s.name == varName {
			v := S(varName)
			return AddOf(MulOf(v, LnOf(v)), MulOf(N(-1), v)), true
		}
	}
	return nil, false
}

// DefiniteIntegrate evaluates the integral numerically with 10-point
// Gauss-Legendre quadrature.
func DefiniteIntegrate(expr Expr, varName string, a, b float64) float64 {
	nodes := []float64{
		-0.9739065285, -0.8650633667, -0.6794095683,
		-0.4333953941, -0.1488743390, 0.1488743390,
		0.4333953941, 0.6794095683, 0.8650633667, 0.9739065285,
	}
	weights := []float64{
		0.0666713443, 0.1494513492, 0.2190863625,
		0.2692667193, 0.2955242247, 0.2955242247,
		0.2692667193, 0.2190863625, 0.1494513492, 0.0666713443,
	}
	sum := 0.0
	mid := (a + b) / 2
	half := (b - a) / 2
	for i, t := range nodes {
		xi := mid + half*t
		subbed := expr.Sub(varName, NFloat(xi))
		if v, ok := subbed.Eval(); ok {
			sum += weights[i] * v.Float64()
		}
	}
	return sum * half
}
