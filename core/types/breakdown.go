// Package types - Finalized estimate and proposal value objects
package types

import "github.com/shopspring/decimal"

// Breakdown is the finalized output of the configurator.
// It is passed by value to the proposal calculator; consumers never
// mutate it.
type Breakdown struct {
	// OneTime is the sum of one-time prices of all selected options
	OneTime decimal.Decimal `json:"one_time"`

	// InfraMonthly is the monthly infrastructure rate (infra step only)
	InfraMonthly decimal.Decimal `json:"infra_monthly"`

	// ServiceMonthly is the monthly rate of every non-infra recurring
	// option
	ServiceMonthly decimal.Decimal `json:"service_monthly"`

	// AdBudget is the monthly media budget, zero unless at least one
	// marketing option is selected
	AdBudget decimal.Decimal `json:"ad_budget"`

	// InfraOptionID is the chosen infrastructure option. Carried as a
	// structured field so consumers never re-derive it from the summary
	// text.
	InfraOptionID string `json:"infra_option_id"`

	// Summary is a human-readable listing of all selections
	Summary string `json:"summary"`
}

// IsZero reports whether the breakdown carries no configuration.
// A zero breakdown is a valid state: the proposal view is reachable
// without completing the configurator.
func (b Breakdown) IsZero() bool {
	return b.OneTime.IsZero() &&
		b.InfraMonthly.IsZero() &&
		b.ServiceMonthly.IsZero() &&
		b.InfraOptionID == "" &&
		b.Summary == ""
}

// BillingCycle is the prepaid duration of the recurring-service
// contract, in months
type BillingCycle int

const (
	// CycleQuarterly - 3 months, highest markup
	CycleQuarterly BillingCycle = 3

	// CycleSemiannual - 6 months, medium markup
	CycleSemiannual BillingCycle = 6

	// CycleAnnual - 12 months, base rate
	CycleAnnual BillingCycle = 12
)

// Months returns the cycle length in months
func (c BillingCycle) Months() int64 {
	return int64(c)
}

// Valid reports whether c is one of the three offered cycles
func (c BillingCycle) Valid() bool {
	return c == CycleQuarterly || c == CycleSemiannual || c == CycleAnnual
}

// Markup returns the service-rate multiplier for the cycle.
// The annual cycle pays the base rate; shorter commitments pay a
// premium.
func (c BillingCycle) Markup() decimal.Decimal {
	switch c {
	case CycleQuarterly:
		return decimal.RequireFromString("1.35")
	case CycleSemiannual:
		return decimal.RequireFromString("1.2")
	default:
		return decimal.NewFromInt(1)
	}
}

// ProposalTotals is the derived pricing of a proposal, recomputed on
// every cycle or breakdown change
type ProposalTotals struct {
	// Cycle is the chosen billing cycle
	Cycle BillingCycle `json:"cycle"`

	// OneTime is the pre-discount setup fee
	OneTime decimal.Decimal `json:"one_time"`

	// DiscountAmount is the flat welcome discount taken off OneTime
	DiscountAmount decimal.Decimal `json:"discount_amount"`

	// DiscountedOneTime is OneTime minus DiscountAmount
	DiscountedOneTime decimal.Decimal `json:"discounted_one_time"`

	// InfraMonthly is the base monthly infrastructure rate
	InfraMonthly decimal.Decimal `json:"infra_monthly"`

	// InfraAnnual is always InfraMonthly x 12, independent of the cycle
	InfraAnnual decimal.Decimal `json:"infra_annual"`

	// ServiceMonthly is the marked-up monthly service rate for the cycle
	ServiceMonthly decimal.Decimal `json:"service_monthly"`

	// ServiceTotal is ServiceMonthly x cycle months, paid upfront
	ServiceTotal decimal.Decimal `json:"service_total"`

	// GrandTotal is DiscountedOneTime + InfraAnnual + ServiceTotal.
	// The media budget is excluded.
	GrandTotal decimal.Decimal `json:"grand_total"`

	// MediaBudget is reported separately, paid directly to ad platforms
	MediaBudget decimal.Decimal `json:"media_budget"`
}
