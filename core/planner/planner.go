// Package planner - Configurator state machine
// Walks the user through the catalog steps, keeps the selection state,
// and recomputes pricing after every change. All state is local to one
// interactive session; nothing here persists or blocks.
package planner

import (
	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/core/catalog"
	"github.com/ziyabeey1-ai/mysite/core/types"
)

// Ad budget slider bounds, in lira per month
var (
	adBudgetMin     = types.Lira(5000)
	adBudgetMax     = types.Lira(500000)
	adBudgetDefault = types.Lira(50000)
)

// Totals are the running price accumulators, evaluated against the
// currently derived catalog
type Totals struct {
	// OneTime is the setup fee across all selected options
	OneTime decimal.Decimal `json:"one_time"`

	// InfraMonthly is the recurring rate of the infra step only
	InfraMonthly decimal.Decimal `json:"infra_monthly"`

	// ServiceMonthly is the recurring rate of every other step
	ServiceMonthly decimal.Decimal `json:"service_monthly"`
}

// Planner owns the configurator session: the derived catalog, the step
// pointer, and the selection state
type Planner struct {
	cat     catalog.Catalog
	current int

	// single maps single-select steps to exactly one option id
	single map[types.StepID]string

	// multi maps multi-select steps to their toggled option ids, in
	// insertion order
	multi map[types.StepID][]string

	// adBudget is the slider value. Retained even when no marketing
	// option is selected; only the finalized report gates it.
	adBudget decimal.Decimal
}

// New creates a planner with the default selections on the base-scale
// catalog
func New() *Planner {
	p := &Planner{
		single: map[types.StepID]string{
			types.StepScale:      catalog.ScaleLanding,
			types.StepInfra:      catalog.InfraHostinger,
			types.StepManagement: "static",
			types.StepDesign:     "clean",
		},
		multi: map[types.StepID][]string{
			types.StepFunction:  {},
			types.StepMarketing: {},
			types.StepSocial:    {},
			types.StepAddons:    {},
		},
		adBudget: adBudgetDefault,
	}
	p.cat = catalog.Derive(p.single[types.StepScale])
	return p
}

// Catalog returns the currently derived catalog
func (p *Planner) Catalog() catalog.Catalog {
	return p.cat
}

// StepIndex returns the current step position
func (p *Planner) StepIndex() int {
	return p.current
}

// CurrentStep returns the step at the current position
func (p *Planner) CurrentStep() catalog.Step {
	return p.cat.Steps[p.current]
}

// Advance moves one step forward; no-op at the last step
func (p *Planner) Advance() {
	if p.current < p.cat.Len()-1 {
		p.current++
	}
}

// Retreat moves one step back; no-op at the first step
func (p *Planner) Retreat() {
	if p.current > 0 {
		p.current--
	}
}

// AtEnd reports whether the planner is on the last step
func (p *Planner) AtEnd() bool {
	return p.current == p.cat.Len()-1
}

// Select applies a user choice. Single-select steps replace their
// selection; multi-select steps toggle membership, so selecting twice
// restores the prior state. References to unknown steps or options are
// no-ops: catalogs are internally generated, never user-supplied.
func (p *Planner) Select(stepID types.StepID, optionID string) {
	step, ok := p.cat.Step(stepID)
	if !ok {
		return
	}
	if _, ok := step.Option(optionID); !ok {
		return
	}

	if step.Kind == types.SelectSingle {
		if p.single[stepID] == optionID {
			return
		}
		p.single[stepID] = optionID
		if stepID == types.StepScale {
			p.cat = catalog.Derive(optionID)
		}
		return
	}

	cur := p.multi[stepID]
	for i, id := range cur {
		if id == optionID {
			p.multi[stepID] = append(cur[:i:i], cur[i+1:]...)
			return
		}
	}
	p.multi[stepID] = append(cur, optionID)
}

// Selected returns the active option ids for a step, in catalog order
// for single steps and insertion order for multi steps
func (p *Planner) Selected(stepID types.StepID) []string {
	if id, ok := p.single[stepID]; ok {
		return []string{id}
	}
	out := make([]string, len(p.multi[stepID]))
	copy(out, p.multi[stepID])
	return out
}

// SetAdBudget sets the monthly media budget, clamped to the slider
// bounds. The value is kept even while no marketing option is selected.
func (p *Planner) SetAdBudget(amount decimal.Decimal) {
	if amount.LessThan(adBudgetMin) {
		amount = adBudgetMin
	}
	if amount.GreaterThan(adBudgetMax) {
		amount = adBudgetMax
	}
	p.adBudget = amount
}

// AdBudget returns the retained slider value
func (p *Planner) AdBudget() decimal.Decimal {
	return p.adBudget
}

// hasMarketing reports whether any marketing option is selected
func (p *Planner) hasMarketing() bool {
	return len(p.multi[types.StepMarketing]) > 0
}

// Totals recomputes the three accumulators from the current selection
// state against the current (rescaled) catalog. A recurring price
// contributes to exactly one of the two monthly accumulators, keyed on
// the owning step.
func (p *Planner) Totals() Totals {
	t := Totals{
		OneTime:        decimal.Zero,
		InfraMonthly:   decimal.Zero,
		ServiceMonthly: decimal.Zero,
	}

	for _, step := range p.cat.Steps {
		for _, id := range p.Selected(step.ID) {
			opt, ok := step.Option(id)
			if !ok {
				continue
			}
			t.OneTime = t.OneTime.Add(opt.Price)
			if opt.MonthlyPrice == nil {
				continue
			}
			if step.ID == types.StepInfra {
				t.InfraMonthly = t.InfraMonthly.Add(*opt.MonthlyPrice)
			} else {
				t.ServiceMonthly = t.ServiceMonthly.Add(*opt.MonthlyPrice)
			}
		}
	}
	return t
}

// Finalize produces the breakdown handed to the proposal calculator.
// The ad budget is reported only when at least one marketing option is
// selected; otherwise it is zero regardless of the retained slider
// value.
func (p *Planner) Finalize() types.Breakdown {
	t := p.Totals()

	budget := decimal.Zero
	if p.hasMarketing() {
		budget = p.adBudget
	}

	return types.Breakdown{
		OneTime:        t.OneTime,
		InfraMonthly:   t.InfraMonthly,
		ServiceMonthly: t.ServiceMonthly,
		AdBudget:       budget,
		InfraOptionID:  p.single[types.StepInfra],
		Summary:        p.summary(budget),
	}
}
