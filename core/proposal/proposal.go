// Package proposal - Discount and billing-cycle engine
// Takes a finalized breakdown and derives the proposal totals: a flat
// welcome discount on the setup fee, a fixed annual infrastructure
// bill, and a cycle-dependent markup on the service contract. Pure
// computation, recomputed on every input change.
package proposal

import (
	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/core/types"
)

// DiscountCode is the welcome campaign code shown with the discount
const DiscountCode = "YZT-START-10"

// DiscountRate is the flat rate taken off the one-time fee whenever a
// breakdown is present
var DiscountRate = decimal.RequireFromString("0.1")

// infraMonths - infrastructure is policy-fixed to annual billing,
// regardless of the chosen service cycle
var infraMonths = decimal.NewFromInt(12)

// Compute derives the proposal totals for a breakdown and billing
// cycle. Changing the cycle only ever moves the service and grand
// totals; the discounted one-time fee and the annual infrastructure
// bill are invariant under it. A zero breakdown yields zero totals.
func Compute(b types.Breakdown, cycle types.BillingCycle) types.ProposalTotals {
	if !cycle.Valid() {
		cycle = types.CycleAnnual
	}

	discount := b.OneTime.Mul(DiscountRate)
	serviceMonthly := b.ServiceMonthly.Mul(cycle.Markup())

	return types.ProposalTotals{
		Cycle:             cycle,
		OneTime:           b.OneTime,
		DiscountAmount:    discount,
		DiscountedOneTime: b.OneTime.Sub(discount),
		InfraMonthly:      b.InfraMonthly,
		InfraAnnual:       b.InfraMonthly.Mul(infraMonths),
		ServiceMonthly:    serviceMonthly,
		ServiceTotal:      serviceMonthly.Mul(decimal.NewFromInt(cycle.Months())),
		GrandTotal: b.OneTime.Sub(discount).
			Add(b.InfraMonthly.Mul(infraMonths)).
			Add(serviceMonthly.Mul(decimal.NewFromInt(cycle.Months()))),
		MediaBudget: b.AdBudget,
	}
}
