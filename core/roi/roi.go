// Package roi - Revenue uplift projection
// Backs the "design is an investment" calculator: given the prospect's
// current traffic and conversion metrics, projects the revenue after a
// conversion-focused redesign.
package roi

import "github.com/shopspring/decimal"

// Redesign impact assumptions: conversion improves 40%, average order
// value improves 10%.
var (
	convUplift = decimal.RequireFromString("1.4")
	aovUplift  = decimal.RequireFromString("1.1")
	hundred    = decimal.NewFromInt(100)
)

// Input are the prospect's current monthly metrics
type Input struct {
	// MonthlyVisitors is the monthly site traffic
	MonthlyVisitors decimal.Decimal `json:"monthly_visitors"`

	// ConversionRate is the conversion percentage, e.g. 1.5 for 1.5%
	ConversionRate decimal.Decimal `json:"conversion_rate"`

	// OrderValue is the average order value
	OrderValue decimal.Decimal `json:"order_value"`
}

// Projection is the computed revenue comparison, rounded to whole
// currency units
type Projection struct {
	// CurrentRevenue is the estimated current monthly revenue
	CurrentRevenue decimal.Decimal `json:"current_revenue"`

	// ProjectedRevenue applies the redesign impact assumptions
	ProjectedRevenue decimal.Decimal `json:"projected_revenue"`

	// Uplift is the monthly gain, projected minus current
	Uplift decimal.Decimal `json:"uplift"`
}

// Project computes the revenue projection for the given metrics
func Project(in Input) Projection {
	current := in.MonthlyVisitors.
		Mul(in.ConversionRate.Div(hundred)).
		Mul(in.OrderValue)

	projected := in.MonthlyVisitors.
		Mul(in.ConversionRate.Mul(convUplift).Div(hundred)).
		Mul(in.OrderValue.Mul(aovUplift))

	current = current.Round(0)
	projected = projected.Round(0)

	return Projection{
		CurrentRevenue:   current,
		ProjectedRevenue: projected,
		Uplift:           projected.Sub(current),
	}
}
