// Package planner_test - Configurator state machine tests
package planner_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/core/catalog"
	"github.com/ziyabeey1-ai/mysite/core/planner"
	"github.com/ziyabeey1-ai/mysite/core/types"
)

func lira(n int64) decimal.Decimal {
	return decimal.NewFromInt(n)
}

func TestDefaults(t *testing.T) {
	p := planner.New()

	tests := []struct {
		step types.StepID
		want []string
	}{
		{types.StepScale, []string{catalog.ScaleLanding}},
		{types.StepInfra, []string{catalog.InfraHostinger}},
		{types.StepManagement, []string{"static"}},
		{types.StepDesign, []string{"clean"}},
		{types.StepFunction, []string{}},
		{types.StepMarketing, []string{}},
	}
	for _, tt := range tests {
		got := p.Selected(tt.step)
		if len(got) != len(tt.want) {
			t.Errorf("%s selection = %v, want %v", tt.step, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s selection = %v, want %v", tt.step, got, tt.want)
			}
		}
	}

	if !p.AdBudget().Equal(lira(50000)) {
		t.Errorf("default ad budget = %s, want 50000", p.AdBudget())
	}
}

func TestNavigationBounds(t *testing.T) {
	p := planner.New()

	p.Retreat()
	if p.StepIndex() != 0 {
		t.Errorf("retreat at start moved to %d", p.StepIndex())
	}

	last := p.Catalog().Len() - 1
	for i := 0; i < last+5; i++ {
		p.Advance()
	}
	if p.StepIndex() != last {
		t.Errorf("advance past end moved to %d, want %d", p.StepIndex(), last)
	}
	if !p.AtEnd() {
		t.Error("AtEnd() = false at last step")
	}
}

func TestMultiToggleRoundTrip(t *testing.T) {
	p := planner.New()

	p.Select(types.StepFunction, "auth")
	if got := p.Selected(types.StepFunction); len(got) != 1 || got[0] != "auth" {
		t.Fatalf("after select: %v", got)
	}

	p.Select(types.StepFunction, "auth")
	if got := p.Selected(types.StepFunction); len(got) != 0 {
		t.Fatalf("after toggle back: %v, want empty", got)
	}
}

func TestUnknownReferencesAreNoOps(t *testing.T) {
	p := planner.New()
	before := p.Totals()

	p.Select("nonsense", "auth")
	p.Select(types.StepFunction, "nonsense")
	p.Select(types.StepScale, "nonsense")

	after := p.Totals()
	if !before.OneTime.Equal(after.OneTime) ||
		!before.InfraMonthly.Equal(after.InfraMonthly) ||
		!before.ServiceMonthly.Equal(after.ServiceMonthly) {
		t.Error("unknown references changed totals")
	}
	if got := p.Selected(types.StepScale); got[0] != catalog.ScaleLanding {
		t.Errorf("scale selection changed to %v", got)
	}
}

// Corporate scale with default infra: one-time sums the selected
// options, infra monthly picks up the 2x tier, services stay zero.
func TestTotalsCorporateScenario(t *testing.T) {
	p := planner.New()
	p.Select(types.StepScale, catalog.ScaleCorporate)

	tot := p.Totals()

	// corporate 35000 + hostinger 0 + static 0 + clean 5000
	if want := lira(40000); !tot.OneTime.Equal(want) {
		t.Errorf("one-time = %s, want %s", tot.OneTime, want)
	}
	// hostinger base 350 x 2.0 corporate tier
	if want := lira(700); !tot.InfraMonthly.Equal(want) {
		t.Errorf("infra monthly = %s, want %s", tot.InfraMonthly, want)
	}
	if !tot.ServiceMonthly.IsZero() {
		t.Errorf("service monthly = %s, want 0", tot.ServiceMonthly)
	}
}

func TestTotalsUseRescaledCatalog(t *testing.T) {
	p := planner.New()
	p.Select(types.StepScale, catalog.ScaleSaaS)
	p.Select(types.StepInfra, catalog.InfraGoogle)

	tot := p.Totals()
	// google base 800 x 4.0 saas tier
	if want := lira(3200); !tot.InfraMonthly.Equal(want) {
		t.Errorf("infra monthly = %s, want %s", tot.InfraMonthly, want)
	}

	// back to landing: same selection, base rate again
	p.Select(types.StepScale, catalog.ScaleLanding)
	tot = p.Totals()
	if want := lira(800); !tot.InfraMonthly.Equal(want) {
		t.Errorf("infra monthly after downscale = %s, want %s", tot.InfraMonthly, want)
	}
}

func TestMonthlyAccumulatorsDisjoint(t *testing.T) {
	p := planner.New()
	p.Select(types.StepScale, catalog.ScaleCorporate)
	p.Select(types.StepMarketing, "google_ads")
	p.Select(types.StepSocial, "instagram")

	tot := p.Totals()

	if want := lira(700); !tot.InfraMonthly.Equal(want) {
		t.Errorf("infra monthly = %s, want %s", tot.InfraMonthly, want)
	}
	// google_ads 15000 + instagram 20000; marketing rates are not
	// scale-multiplied
	if want := lira(35000); !tot.ServiceMonthly.Equal(want) {
		t.Errorf("service monthly = %s, want %s", tot.ServiceMonthly, want)
	}
}

func TestAdBudgetGating(t *testing.T) {
	p := planner.New()
	p.Select(types.StepMarketing, "google_ads")
	p.SetAdBudget(lira(50000))

	b := p.Finalize()
	if !b.AdBudget.Equal(lira(50000)) {
		t.Errorf("ad budget = %s, want 50000", b.AdBudget)
	}

	// deselect the only marketing option: reported budget drops to
	// zero, the slider value is retained
	p.Select(types.StepMarketing, "google_ads")
	b = p.Finalize()
	if !b.AdBudget.IsZero() {
		t.Errorf("ad budget after deselect = %s, want 0", b.AdBudget)
	}
	if !p.AdBudget().Equal(lira(50000)) {
		t.Errorf("retained slider value = %s, want 50000", p.AdBudget())
	}
}

func TestAdBudgetClamped(t *testing.T) {
	p := planner.New()

	p.SetAdBudget(lira(100))
	if !p.AdBudget().Equal(lira(5000)) {
		t.Errorf("below min clamped to %s, want 5000", p.AdBudget())
	}

	p.SetAdBudget(lira(9_000_000))
	if !p.AdBudget().Equal(lira(500000)) {
		t.Errorf("above max clamped to %s, want 500000", p.AdBudget())
	}
}

func TestFinalizeBreakdown(t *testing.T) {
	p := planner.New()
	p.Select(types.StepScale, catalog.ScaleEcommerce)
	p.Select(types.StepInfra, catalog.InfraGoogle)
	p.Select(types.StepFunction, "payment")
	p.Select(types.StepMarketing, "email_mkt")

	b := p.Finalize()

	// ecommerce 65000 + google 15000 + static 0 + clean 5000 +
	// payment 8000 + email_mkt 5000
	if want := lira(98000); !b.OneTime.Equal(want) {
		t.Errorf("one-time = %s, want %s", b.OneTime, want)
	}
	// google base 800 x 4.0
	if want := lira(3200); !b.InfraMonthly.Equal(want) {
		t.Errorf("infra monthly = %s, want %s", b.InfraMonthly, want)
	}
	if want := lira(8000); !b.ServiceMonthly.Equal(want) {
		t.Errorf("service monthly = %s, want %s", b.ServiceMonthly, want)
	}
	if b.InfraOptionID != catalog.InfraGoogle {
		t.Errorf("infra option id = %q, want %q", b.InfraOptionID, catalog.InfraGoogle)
	}
}

func TestSummaryContent(t *testing.T) {
	p := planner.New()
	p.Select(types.StepScale, catalog.ScaleCorporate)

	summary := p.Finalize().Summary

	for _, want := range []string{
		"• Ölçek: Kurumsal Web",
		"• Altyapı: Hostinger Cloud (🎁 Domain + 5 Email Hediye)",
		"• Modüller: Yok",
		"• Kanallar: Yok",
		"• Eklentiler: Yok",
	} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}

	// no marketing selected: reported budget is zero
	if !strings.Contains(summary, "• Reklam Bütçesi (Medya): 0 TL/Ay (Hariç)") {
		t.Errorf("summary missing gated budget line:\n%s", summary)
	}
}

func TestSummaryNoGiftAtSmallestScale(t *testing.T) {
	p := planner.New()
	summary := p.Finalize().Summary

	if strings.Contains(summary, "🎁") {
		t.Errorf("landing scale summary carries a gift note:\n%s", summary)
	}
}
