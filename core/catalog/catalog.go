// Package catalog - Authoritative step and option catalog
// Defines the canonical configurator steps with their pricing.
// This is the source of truth for everything the planner sells.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/core/types"
)

// Option is a selectable line item within a step
type Option struct {
	// ID is unique within the owning step
	ID string `json:"id"`

	// Label is the display name
	Label string `json:"label"`

	// SubLabel is the one-line description shown under the label
	SubLabel string `json:"sub_label,omitempty"`

	// Price is the one-time cost, may be zero
	Price decimal.Decimal `json:"price"`

	// MonthlyPrice is the recurring monthly cost. Nil means the option
	// has no recurring component; zero means the recurring component is
	// free and renders as such.
	MonthlyPrice *decimal.Decimal `json:"monthly_price,omitempty"`

	// Recommended marks the option the derivation flags for the chosen
	// scale
	Recommended bool `json:"recommended,omitempty"`

	// GiftLabel is a scale-dependent gift note, empty when none applies
	GiftLabel string `json:"gift_label,omitempty"`
}

// HasMonthly reports whether the option carries a recurring component
func (o Option) HasMonthly() bool {
	return o.MonthlyPrice != nil
}

// Step is one ordered stage of the configurator
type Step struct {
	// ID is the step identifier
	ID types.StepID `json:"id"`

	// Title is the display title
	Title string `json:"title"`

	// Desc is the display description
	Desc string `json:"desc"`

	// Kind is the selection cardinality
	Kind types.SelectionKind `json:"kind"`

	// Options is the ordered option list
	Options []Option `json:"options"`
}

// Option returns the option with the given id, if present
func (s Step) Option(id string) (Option, bool) {
	for _, o := range s.Options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

// Catalog is an ordered list of steps. A derived catalog carries
// scale-adjusted infrastructure pricing; the template carries base
// rates.
type Catalog struct {
	Steps []Step `json:"steps"`
}

// Step returns the step with the given id, if present
func (c Catalog) Step(id types.StepID) (Step, bool) {
	for _, s := range c.Steps {
		if s.ID == id {
			return s, true
		}
	}
	return Step{}, false
}

// Len returns the number of steps
func (c Catalog) Len() int {
	return len(c.Steps)
}

func monthly(n int64) *decimal.Decimal {
	d := decimal.NewFromInt(n)
	return &d
}

// clone deep-copies a catalog so derivations never touch the template
func (c Catalog) clone() Catalog {
	steps := make([]Step, len(c.Steps))
	for i, s := range c.Steps {
		opts := make([]Option, len(s.Options))
		copy(opts, s.Options)
		for j := range opts {
			if opts[j].MonthlyPrice != nil {
				mp := *opts[j].MonthlyPrice
				opts[j].MonthlyPrice = &mp
			}
		}
		s.Options = opts
		steps[i] = s
	}
	return Catalog{Steps: steps}
}
