package units

import (
	"math/big"

	"github.com/njchilds90/gophysics/symbolic"
)

// Unit is a named unit atom. It implements symbolic.Expr as an opaque leaf:
// it never evaluates numerically and differentiates to zero, so the kernel
// treats it exactly like a symbolic constant. Scale is the exact factor to
// the coherent SI unit of the same dimension (1000 for km, 60 for min).
type Unit struct {
	name   string
	symbol string
	dim    Dimension
	scale  *big.Rat
}

func newUnit(name, symbol string, dim Dimension, scale *big.Rat) *Unit {
	return &Unit{name: name, symbol: symbol, dim: dim, scale: scale}
}

func (u *Unit) Name() string         { return u.name }
func (u *Unit) Symbol() string       { return u.symbol }
func (u *Unit) Dimension() Dimension { return u.dim }

// SIScale returns the exact conversion factor to the coherent SI unit.
func (u *Unit) SIScale() *big.Rat { return new(big.Rat).Set(u.scale) }

// symbolic.Expr implementation.

func (u *Unit) Simplify() symbolic.Expr                 { return u }
func (u *Unit) String() string                          { return u.symbol }
func (u *Unit) LaTeX() string                           { return "\\mathrm{" + u.symbol + "}" }
func (u *Unit) Sub(string, symbolic.Expr) symbolic.Expr { return u }
func (u *Unit) Diff(string) symbolic.Expr               { return symbolic.N(0) }
func (u *Unit) Eval() (*symbolic.Num, bool)             { return nil, false }

func (u *Unit) Equal(other symbolic.Expr) bool {
	o, ok := other.(*Unit)
	return ok && u.name == o.name
}

func one() *big.Rat { return big.NewRat(1, 1) }

// SI base units.
var (
	Meter    = newUnit("meter", "m", Length, one())
	Kilogram = newUnit("kilogram", "kg", Mass, one())
	Second   = newUnit("second", "s", Time, one())
	Ampere   = newUnit("ampere", "A", Current, one())
	Kelvin   = newUnit("kelvin", "K", Temperature, one())
	Mole     = newUnit("mole", "mol", Amount, one())
	Candela  = newUnit("candela", "cd", Luminosity, one())
)

// Derived and scaled units.
var (
	Newton     = newUnit("newton", "N", Force, one())
	Joule      = newUnit("joule", "J", Energy, one())
	Watt       = newUnit("watt", "W", Power, one())
	Kilometer  = newUnit("kilometer", "km", Length, big.NewRat(1000, 1))
	Centimeter = newUnit("centimeter", "cm", Length, big.NewRat(1, 100))
	Gram       = newUnit("gram", "g", Mass, big.NewRat(1, 1000))
	Minute     = newUnit("minute", "min", Time, big.NewRat(60, 1))
	Hour       = newUnit("hour", "h", Time, big.NewRat(3600, 1))

	// One is the dimensionless unit, the conversion target for pure numbers.
	One = newUnit("one", "1", Dimensionless, one())
)
