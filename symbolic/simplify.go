package symbolic

// Expand distributes products over sums and expands small integer powers.
func Expand(e Expr) Expr { return expandExpr(e).Simplify() }

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		result := Expr(N(1))
		for _, f := range v.factors {
			result = expandProduct(result, expandExpr(f))
		}
		return result
	case *Add:
		newTerms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			newTerms[i] = expandExpr(t)
		}
		return AddOf(newTerms...)
	case *Pow:
		base := expandExpr(v.base)
		if n, ok := v.exp.(*Num); ok && n.IsInteger() {
			// Multiply out sum bases; other bases keep their power form.
			if _, isAdd := base.(*Add); isAdd {
				exp := n.val.Num().Int64()
				if exp >= 0 && exp <= 10 {
					result := Expr(N(1))
					for i := int64(0); i < exp; i++ {
						result = expandProduct(result, base)
					}
					return result
				}
			}
		}
		return &Pow{base: base, exp: expandExpr(v.exp)}
	}
	return e
}

// expandProduct distributes a*b over sums without re-entering the
// expansion, so products its simplifier rebuilds are left alone.
func expandProduct(a, b Expr) Expr {
	termList := func(e Expr) []Expr {
		if add, ok := e.(*Add); ok {
			return add.terms
		}
		return []Expr{e}
	}
	terms := []Expr{}
	for _, ta := range termList(a) {
		for _, tb := range termList(b) {
			terms = append(terms, MulOf(ta, tb))
		}
	}
	return AddOf(terms...)
}

// TrigSimplify applies the Pythagorean identity sin²u + cos²u = 1 to sums
// whose matching sin²/cos² terms carry equal coefficients.
func TrigSimplify(e Expr) Expr {
	return trigSimplifyExpr(e.Simplify()).Simplify()
}

func trigSimplifyExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		newTerms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			newTerms[i] = trigSimplifyExpr(t)
		}
		return trigFindPythagorean(AddOf(newTerms...))
	case *Mul:
		newFactors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			newFactors[i] = trigSimplifyExpr(f)
		}
		return MulOf(newFactors...)
	case *Pow:
		return PowOf(trigSimplifyExpr(v.base), v.exp)
	case *Func:
		return funcOf(v.name, trigSimplifyExpr(v.arg)).Simplify()
	}
	return e
}

func trigFindPythagorean(e Expr) Expr {
	add, ok := e.(*Add)
	if !ok {
		return e
	}
	type trigTerm struct {
		funcName string
		argStr   string
		coeff    *Num
		idx      int
	}
	var trigTerms []trigTerm
	for idx, t := range add.terms {
		coeff, inner := splitCoefficient(t)
		p, ok2 := inner.(*Pow)
		if !ok2 {
			continue
		}
		fn, ok3 := p.base.(*Func)
		if !ok3 {
			continue
		}
		if en, ok4 := p.exp.(*Num); ok4 && en.Equal(N(2)) {
			if fn.name == "sin" || fn.name == "cos" {
				trigTerms = append(trigTerms, trigTerm{fn.name, groupKey(fn.arg), coeff, idx})
			}
		}
	}
	for i := 0; i < len(trigTerms); i++ {
		for j := i + 1; j < len(trigTerms); j++ {
			ti, tj := trigTerms[i], trigTerms[j]
			if ti.argStr == tj.argStr && ti.funcName != tj.funcName && numCmp(ti.coeff, tj.coeff) == 0 {
				newTerms := []Expr{}
				for idx, t := range add.terms {
					if idx != ti.idx && idx != tj.idx {
						newTerms = append(newTerms, t)
					}
				}
				newTerms = append(newTerms, ti.coeff)
				return AddOf(newTerms...).Simplify()
			}
		}
	}
	return e
}

// DeepSimplify applies repeated simplification and trig-identity passes
// until the printed form is stable.
func DeepSimplify(e Expr) Expr {
	prev := ""
	curr := e.Simplify()
	for i := 0; i < 10; i++ {
		str := curr.String()
		if str == prev {
			break
		}
		prev = str
		curr = TrigSimplify(curr).Simplify()
	}
	return curr
}

// Simplify runs a single simplification pass.
func Simplify(e Expr) Expr { return e.Simplify() }

// String returns the stable printed form of an expression.
func String(e Expr) string { return e.String() }

// LaTeX renders an expression as LaTeX.
func LaTeX(e Expr) string { return e.LaTeX() }

// Sub substitutes a value for a variable and simplifies.
func Sub(expr Expr, varName string, value Expr) Expr {
	return expr.Sub(varName, value).Simplify()
}
