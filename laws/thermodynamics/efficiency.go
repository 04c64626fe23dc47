// Package thermodynamics contains symbolic thermodynamic laws.
package thermodynamics

import (
	"fmt"

	"github.com/njchilds90/gophysics/symbolic"
	"github.com/njchilds90/gophysics/units"
)

// Heat engine efficiency: eta = 1 - Q_cold / Q_hot, where Q_hot is the heat
// received from the hot reservoir and Q_cold the heat given to the cold one.
var (
	Efficiency = symbolic.S("eta")
	HeatHot    = symbolic.S("Q_h")
	HeatCold   = symbolic.S("Q_c")
)

// Law returns the efficiency definition as an equation.
func Law() *symbolic.Equation {
	ratio := symbolic.MulOf(HeatCold, symbolic.PowOf(HeatHot, symbolic.N(-1)))
	return symbolic.Eq(
		Efficiency,
		symbolic.AddOf(symbolic.N(1), symbolic.MulOf(symbolic.N(-1), ratio)),
	)
}

// PrintLaw renders the law for display.
func PrintLaw() string { return Law().String() }

// CalculateEfficiency computes the dimensionless efficiency of an engine
// from the two heat quantities, which must both carry energy dimension.
func CalculateEfficiency(heatHot, heatCold units.Quantity) (units.Quantity, error) {
	if err := units.RequireDimension(heatHot, units.Energy, "heat from hot reservoir"); err != nil {
		return units.Quantity{}, err
	}
	if err := units.RequireDimension(heatCold, units.Energy, "heat to cold reservoir"); err != nil {
		return units.Quantity{}, err
	}
	rhs := Law().RHS
	rhs = rhs.Sub(HeatHot.Name(), heatHot.Expr())
	rhs = rhs.Sub(HeatCold.Name(), heatCold.Expr())
	q, err := units.New(rhs.Simplify())
	if err != nil {
		return units.Quantity{}, err
	}
	if err := units.RequireDimension(q, units.Dimensionless, "efficiency"); err != nil {
		return units.Quantity{}, fmt.Errorf("thermodynamics: %w", err)
	}
	return q, nil
}
