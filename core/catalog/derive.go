// Package catalog - Scale-dependent catalog derivation
package catalog

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/ziyabeey1-ai/mysite/core/types"
)

// scaleTier captures how a scale choice reprices the infrastructure
// step. Three pricing tiers exist: landing pays base rates, corporate
// doubles them, e-commerce and SaaS quadruple them.
type scaleTier struct {
	multiplier decimal.Decimal
	qualifier  string
	gift       string
}

const giftDomainMail = "🎁 Domain + 5 Email Hediye"

func tierFor(scale string) scaleTier {
	switch scale {
	case ScaleLanding:
		return scaleTier{
			multiplier: decimal.NewFromInt(1),
			qualifier:  " (Tek Sayfa)",
		}
	case ScaleCorporate:
		return scaleTier{
			multiplier: decimal.NewFromInt(2),
			qualifier:  " (Kurumsal Pro)",
			gift:       giftDomainMail,
		}
	default:
		return scaleTier{
			multiplier: decimal.NewFromInt(4),
			qualifier:  " (Yüksek Performans)",
			gift:       giftDomainMail,
		}
	}
}

// recommendedInfra returns the infra option flagged for the scale.
// NOTE: this groups scales two ways (large projects vs the rest) while
// the pricing tier groups them three ways. The corporate tier pays the
// 2x rate and earns the gift yet still recommends the entry host.
// Intentional; do not unify with tierFor.
func recommendedInfra(scale string) string {
	if scale == ScaleEcommerce || scale == ScaleSaaS {
		return InfraGoogle
	}
	return InfraHostinger
}

var (
	deriveMu    sync.Mutex
	deriveCache = map[string]Catalog{}
)

// Derive returns the catalog repriced for the given scale selection.
// It is a pure function of the scale id alone and is memoized on it:
// every infra monthly rate is multiplied by the tier factor and rounded
// to the nearest lira, exactly one infra option is flagged recommended,
// and all infra options carry the tier's gift label (none at the
// smallest tier).
func Derive(scale string) Catalog {
	deriveMu.Lock()
	cached, ok := deriveCache[scale]
	deriveMu.Unlock()
	if ok {
		return cached.clone()
	}

	tier := tierFor(scale)
	rec := recommendedInfra(scale)

	c := template.clone()
	for i := range c.Steps {
		if c.Steps[i].ID != types.StepInfra {
			continue
		}
		opts := c.Steps[i].Options
		for j := range opts {
			opts[j].Recommended = opts[j].ID == rec
			opts[j].GiftLabel = tier.gift
			if opts[j].ID == InfraHostinger {
				opts[j].SubLabel += tier.qualifier
			}
			if opts[j].MonthlyPrice != nil {
				scaled := opts[j].MonthlyPrice.Mul(tier.multiplier).Round(0)
				opts[j].MonthlyPrice = &scaled
			}
		}
	}

	deriveMu.Lock()
	deriveCache[scale] = c.clone()
	deriveMu.Unlock()

	return c
}
