// Package planner - Finalized selection summary
package planner

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/core/types"
)

// noneMarker is the explicit marker for empty multi selections
const noneMarker = "Yok"

// labelFor resolves a selected option id to its display label against
// the current catalog
func (p *Planner) labelFor(stepID types.StepID, optionID string) string {
	step, ok := p.cat.Step(stepID)
	if !ok {
		return ""
	}
	opt, ok := step.Option(optionID)
	if !ok {
		return ""
	}
	return opt.Label
}

// labelsFor joins the labels of a multi step's selection, or returns
// the none marker
func (p *Planner) labelsFor(stepID types.StepID) string {
	ids := p.Selected(stepID)
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if l := p.labelFor(stepID, id); l != "" {
			labels = append(labels, l)
		}
	}
	if len(labels) == 0 {
		return noneMarker
	}
	return strings.Join(labels, ", ")
}

// summary renders the human-readable selection listing carried in the
// breakdown. budget is the already-gated reported media budget.
func (p *Planner) summary(budget decimal.Decimal) string {
	infraLabel := p.labelFor(types.StepInfra, p.single[types.StepInfra])

	giftNote := ""
	if step, ok := p.cat.Step(types.StepInfra); ok {
		if opt, ok := step.Option(p.single[types.StepInfra]); ok && opt.GiftLabel != "" {
			giftNote = " (" + opt.GiftLabel + ")"
		}
	}

	var b strings.Builder
	b.WriteString("**PROJE MİMARİSİ**\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "• Ölçek: %s\n", p.labelFor(types.StepScale, p.single[types.StepScale]))
	fmt.Fprintf(&b, "• Altyapı: %s%s\n", infraLabel, giftNote)
	fmt.Fprintf(&b, "• Yönetim: %s\n", p.labelFor(types.StepManagement, p.single[types.StepManagement]))
	fmt.Fprintf(&b, "• Tasarım: %s\n", p.labelFor(types.StepDesign, p.single[types.StepDesign]))
	fmt.Fprintf(&b, "• Modüller: %s\n", p.labelsFor(types.StepFunction))
	b.WriteString("\n**PAZARLAMA & BÜYÜME**\n")
	b.WriteString("------------------------------\n")
	fmt.Fprintf(&b, "• Kanallar: %s\n", p.labelsFor(types.StepMarketing))
	fmt.Fprintf(&b, "• Sosyal Medya: %s\n", p.labelsFor(types.StepSocial))
	fmt.Fprintf(&b, "• Reklam Bütçesi (Medya): %s/Ay (Hariç)\n", types.FormatTL(budget))
	b.WriteString("\n**TEKNİK EKSTRALAR**\n")
	b.WriteString("--------------------\n")
	fmt.Fprintf(&b, "• Eklentiler: %s", p.labelsFor(types.StepAddons))

	return b.String()
}
