// Package api - API types for the estimator
// These types define the contract for the estimate and proposal
// endpoints. The API is stateless, idempotent, and deterministic.
package api

import (
	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/core/planner"
	"github.com/ziyabeey1-ai/mysite/core/proposal"
	"github.com/ziyabeey1-ai/mysite/core/types"
)

// EstimateRequest is the input to POST /estimate
type EstimateRequest struct {
	// Selections maps step ids to selected option ids. Single-select
	// steps use the first entry; unknown references are ignored.
	Selections map[string][]string `json:"selections"`

	// AdBudget is the monthly media budget slider value (optional)
	AdBudget *decimal.Decimal `json:"ad_budget,omitempty"`
}

// EstimateResponse is the output of POST /estimate
type EstimateResponse struct {
	// Breakdown is the finalized price breakdown
	Breakdown types.Breakdown `json:"breakdown"`

	// Totals are the running accumulators for display
	Totals planner.Totals `json:"totals"`
}

// ProposalRequest is the input to POST /proposal
type ProposalRequest struct {
	// Breakdown from a prior estimate; a zero value is a valid empty
	// proposal
	Breakdown types.Breakdown `json:"breakdown"`

	// CycleMonths is 3, 6, or 12; anything else falls back to 12
	CycleMonths int `json:"cycle_months"`

	// Brand is the prospect's brand name, may be blank
	Brand string `json:"brand"`

	// Form carries the contact fields for message composition
	Form proposal.ContactForm `json:"form"`
}

// ProposalResponse is the output of POST /proposal
type ProposalResponse struct {
	// Totals are the derived proposal figures
	Totals types.ProposalTotals `json:"totals"`

	// DiscountCode is the welcome campaign code
	DiscountCode string `json:"discount_code"`

	// CanSubmit reports whether the contact fields pass the presence
	// check
	CanSubmit bool `json:"can_submit"`

	// Message is the composed outbound payload
	Message proposal.Message `json:"message"`

	// MailtoURL invokes the visitor's mail client with the message
	MailtoURL string `json:"mailto_url"`

	// LineItems are the summary selections with expanded detail copy
	LineItems []LineItem `json:"line_items"`
}

// LineItem is one selection row of the proposal view
type LineItem struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Detail string `json:"detail"`
}

// LeadRequest is the input to POST /leads
type LeadRequest struct {
	Form        proposal.ContactForm `json:"form"`
	Brand       string               `json:"brand"`
	CycleMonths int                  `json:"cycle_months"`
	Breakdown   types.Breakdown      `json:"breakdown"`
}

// LeadResponse is the output of POST /leads
type LeadResponse struct {
	ID        int64  `json:"id"`
	MailtoURL string `json:"mailto_url"`
}

// DraftRequest is the input to POST /draft
type DraftRequest struct {
	Name        string `json:"name"`
	ProjectType string `json:"project_type"`
}

// DraftResponse is the output of POST /draft
type DraftResponse struct {
	Draft string `json:"draft"`
}

// RoiRequest is the input to POST /roi
type RoiRequest struct {
	MonthlyVisitors decimal.Decimal `json:"monthly_visitors"`
	ConversionRate  decimal.Decimal `json:"conversion_rate"`
	OrderValue      decimal.Decimal `json:"order_value"`
}

// ErrorResponse is the error envelope
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
