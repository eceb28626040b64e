// Package catalog_test - Scale derivation invariants
package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/core/catalog"
	"github.com/ziyabeey1-ai/mysite/core/types"
)

func infraStep(t *testing.T, c catalog.Catalog) catalog.Step {
	t.Helper()
	step, ok := c.Step(types.StepInfra)
	if !ok {
		t.Fatal("catalog has no infra step")
	}
	return step
}

func TestDeriveMultipliers(t *testing.T) {
	tests := []struct {
		scale      string
		multiplier int64
	}{
		{catalog.ScaleLanding, 1},
		{catalog.ScaleCorporate, 2},
		{catalog.ScaleEcommerce, 4},
		{catalog.ScaleSaaS, 4},
	}

	base := infraStep(t, catalog.Template())

	for _, tt := range tests {
		t.Run(tt.scale, func(t *testing.T) {
			step := infraStep(t, catalog.Derive(tt.scale))
			for i, opt := range step.Options {
				if opt.MonthlyPrice == nil {
					t.Fatalf("option %s lost its monthly price", opt.ID)
				}
				want := base.Options[i].MonthlyPrice.Mul(decimal.NewFromInt(tt.multiplier)).Round(0)
				if !opt.MonthlyPrice.Equal(want) {
					t.Errorf("option %s monthly = %s, want %s", opt.ID, opt.MonthlyPrice, want)
				}
			}
		})
	}
}

func TestDeriveIdempotent(t *testing.T) {
	for _, scale := range []string{catalog.ScaleLanding, catalog.ScaleCorporate, catalog.ScaleSaaS} {
		first := infraStep(t, catalog.Derive(scale))
		second := infraStep(t, catalog.Derive(scale))

		for i := range first.Options {
			a, b := first.Options[i], second.Options[i]
			if !a.MonthlyPrice.Equal(*b.MonthlyPrice) || a.GiftLabel != b.GiftLabel ||
				a.Recommended != b.Recommended || a.SubLabel != b.SubLabel {
				t.Errorf("scale %s: derivation not stable for option %s", scale, a.ID)
			}
		}
	}
}

func TestDeriveRecommendsExactlyOne(t *testing.T) {
	tests := []struct {
		scale string
		want  string
	}{
		{catalog.ScaleLanding, catalog.InfraHostinger},
		{catalog.ScaleCorporate, catalog.InfraHostinger},
		{catalog.ScaleEcommerce, catalog.InfraGoogle},
		{catalog.ScaleSaaS, catalog.InfraGoogle},
	}

	for _, tt := range tests {
		t.Run(tt.scale, func(t *testing.T) {
			step := infraStep(t, catalog.Derive(tt.scale))
			var recommended []string
			for _, opt := range step.Options {
				if opt.Recommended {
					recommended = append(recommended, opt.ID)
				}
			}
			if len(recommended) != 1 {
				t.Fatalf("recommended = %v, want exactly one", recommended)
			}
			if recommended[0] != tt.want {
				t.Errorf("recommended = %s, want %s", recommended[0], tt.want)
			}
		})
	}
}

func TestDeriveGiftLabels(t *testing.T) {
	// smallest tier: no gifts anywhere
	for _, opt := range infraStep(t, catalog.Derive(catalog.ScaleLanding)).Options {
		if opt.GiftLabel != "" {
			t.Errorf("landing scale: option %s has gift %q, want none", opt.ID, opt.GiftLabel)
		}
	}

	// every tier above: all options carry the same non-empty label
	for _, scale := range []string{catalog.ScaleCorporate, catalog.ScaleEcommerce, catalog.ScaleSaaS} {
		step := infraStep(t, catalog.Derive(scale))
		gift := step.Options[0].GiftLabel
		if gift == "" {
			t.Fatalf("scale %s: first option has no gift", scale)
		}
		for _, opt := range step.Options {
			if opt.GiftLabel != gift {
				t.Errorf("scale %s: option %s gift %q differs from %q", scale, opt.ID, opt.GiftLabel, gift)
			}
		}
	}
}

func TestDeriveLeavesOtherStepsUntouched(t *testing.T) {
	tpl := catalog.Template()
	derived := catalog.Derive(catalog.ScaleSaaS)

	for _, s := range derived.Steps {
		if s.ID == types.StepInfra {
			continue
		}
		base, _ := tpl.Step(s.ID)
		for i, opt := range s.Options {
			if !opt.Price.Equal(base.Options[i].Price) || opt.GiftLabel != "" || opt.Recommended {
				t.Errorf("step %s option %s modified by derivation", s.ID, opt.ID)
			}
		}
	}
}

func TestDeriveDoesNotMutateTemplate(t *testing.T) {
	before := infraStep(t, catalog.Template())
	_ = catalog.Derive(catalog.ScaleSaaS)
	after := infraStep(t, catalog.Template())

	for i := range before.Options {
		if !before.Options[i].MonthlyPrice.Equal(*after.Options[i].MonthlyPrice) {
			t.Fatal("template mutated by derivation")
		}
	}
}
