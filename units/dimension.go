// Package units attaches SI dimensions and unit atoms to symbolic
// expressions. Units are expression leaf nodes, so symbolic manipulation
// treats them as opaque constants; dimensional analysis walks the tree
// separately.
package units

import (
	"math/big"
	"sort"
	"strings"
)

// Base dimension indices.
const (
	dimLength = iota
	dimMass
	dimTime
	dimCurrent
	dimTemperature
	dimAmount
	dimLuminosity
	numBaseDims
)

var baseDimNames = [numBaseDims]string{"L", "M", "T", "I", "Θ", "N", "J"}

// ratio is a rational exponent. The zero value means exponent zero.
type ratio struct{ r *big.Rat }

func (x ratio) rat() *big.Rat {
	if x.r == nil {
		return new(big.Rat)
	}
	return x.r
}

func ratioFrom(r *big.Rat) ratio {
	if r.Sign() == 0 {
		return ratio{}
	}
	return ratio{r: new(big.Rat).Set(r)}
}

// Dimension is a vector of rational exponents over the seven SI base
// dimensions. It is a value type; operations return new values.
type Dimension struct {
	exps [numBaseDims]ratio
}

func baseDimension(idx int) Dimension {
	var d Dimension
	d.exps[idx] = ratioFrom(big.NewRat(1, 1))
	return d
}

// Mul adds exponent vectors, the dimension of a product of quantities.
func (d Dimension) Mul(other Dimension) Dimension {
	var out Dimension
	for i := 0; i < numBaseDims; i++ {
		out.exps[i] = ratioFrom(new(big.Rat).Add(d.exps[i].rat(), other.exps[i].rat()))
	}
	return out
}

// Div subtracts exponent vectors, the dimension of a quotient.
func (d Dimension) Div(other Dimension) Dimension {
	var out Dimension
	for i := 0; i < numBaseDims; i++ {
		out.exps[i] = ratioFrom(new(big.Rat).Sub(d.exps[i].rat(), other.exps[i].rat()))
	}
	return out
}

// Pow scales all exponents by an integer.
func (d Dimension) Pow(n int64) Dimension {
	return d.PowRat(new(big.Rat).SetInt64(n))
}

// PowRat scales all exponents by a rational, the dimension of q^(p/q).
func (d Dimension) PowRat(r *big.Rat) Dimension {
	var out Dimension
	for i := 0; i < numBaseDims; i++ {
		out.exps[i] = ratioFrom(new(big.Rat).Mul(d.exps[i].rat(), r))
	}
	return out
}

func (d Dimension) Equal(other Dimension) bool {
	for i := 0; i < numBaseDims; i++ {
		if d.exps[i].rat().Cmp(other.exps[i].rat()) != 0 {
			return false
		}
	}
	return true
}

// IsDimensionless reports whether all exponents are zero.
func (d Dimension) IsDimensionless() bool {
	for i := 0; i < numBaseDims; i++ {
		if d.exps[i].rat().Sign() != 0 {
			return false
		}
	}
	return true
}

// String renders the exponent vector, e.g. "L^2*M*T^-2" for energy and "1"
// for a dimensionless value.
func (d Dimension) String() string {
	type part struct {
		name string
		exp  *big.Rat
	}
	parts := []part{}
	for i := 0; i < numBaseDims; i++ {
		if r := d.exps[i].rat(); r.Sign() != 0 {
			parts = append(parts, part{baseDimNames[i], r})
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	sort.Slice(parts, func(i, j int) bool { return parts[i].name < parts[j].name })
	out := make([]string, len(parts))
	for i, p := range parts {
		if p.exp.Cmp(big.NewRat(1, 1)) == 0 {
			out[i] = p.name
			continue
		}
		exp := p.exp.RatString()
		if !p.exp.IsInt() {
			exp = "(" + exp + ")"
		}
		out[i] = p.name + "^" + exp
	}
	return strings.Join(out, "*")
}

// Common dimensions.
var (
	Dimensionless = Dimension{}
	Length        = baseDimension(dimLength)
	Mass          = baseDimension(dimMass)
	Time          = baseDimension(dimTime)
	Current       = baseDimension(dimCurrent)
	Temperature   = baseDimension(dimTemperature)
	Amount        = baseDimension(dimAmount)
	Luminosity    = baseDimension(dimLuminosity)

	Velocity     = Length.Div(Time)
	Acceleration = Velocity.Div(Time)
	Force        = Mass.Mul(Acceleration)
	Energy       = Force.Mul(Length)
	Power        = Energy.Div(Time)
)
