package service

import (
	"math"
	"time"

	"github.com/atlasrent/rental-service/internal/model"
)

var tierDiscounts = map[model.MembershipTier]float64{
	model.TierBasic:  0,
	model.TierSilver: 0.10,
	model.TierGold:   0.15,
}

// DeriveBenefits maps a tier onto its benefit set. Benefits are recomputed
// from the tier at every read and tier change, never persisted on their own.
func DeriveBenefits(tier model.MembershipTier) model.Benefits {
	switch tier {
	case model.TierSilver:
		return model.Benefits{
			DiscountRate:    0.10,
			FreeDelivery:    true,
			PrioritySupport: true,
		}
	case model.TierGold:
		return model.Benefits{
			DiscountRate:      0.15,
			FreeDelivery:      true,
			PrioritySupport:   true,
			ExtraDriverOption: true,
		}
	default:
		return model.Benefits{}
	}
}

// StayDays is the number of charged days, the interval length rounded up to
// whole days.
func StayDays(pickUp, returnDate time.Time) int {
	return int(math.Ceil(returnDate.Sub(pickUp).Hours() / 24))
}

// Quote computes the immutable reservation total: the per-day rate after the
// membership discount, rounded to whole currency units, times the stay
// length. Promotions never feed this figure.
func Quote(baseRate float64, tier model.MembershipTier, stayDays int) float64 {
	perDay := roundHalfUp(baseRate * (1 - tierDiscounts[tier]))
	return float64(stayDays) * perDay
}

// MemberPrice is the per-day listing price after the membership discount,
// shown to authenticated renters alongside the promo figure.
func MemberPrice(baseRate float64, tier model.MembershipTier) float64 {
	return roundHalfUp(baseRate * (1 - tierDiscounts[tier]))
}

// PromoQuote folds the active promotions into the listing-side view: the
// single highest discount becomes the headline price, and every distinct
// non-empty extra benefit is collected. Returns nil when nothing is active
// so the block is omitted from the payload.
func PromoQuote(baseRate float64, promos []model.Promotion) *model.PromoQuote {
	if len(promos) == 0 {
		return nil
	}
	var maxDiscount float64
	var extras []string
	seen := make(map[string]struct{})
	for _, p := range promos {
		if p.DiscountPercent > maxDiscount {
			maxDiscount = p.DiscountPercent
		}
		if _, dup := seen[p.ExtraBenefit]; p.ExtraBenefit != "" && !dup {
			seen[p.ExtraBenefit] = struct{}{}
			extras = append(extras, p.ExtraBenefit)
		}
	}
	return &model.PromoQuote{
		DiscountPercent: maxDiscount,
		PriceAfterPromo: roundHalfUp(baseRate * (1 - maxDiscount/100)),
		ExtraBenefits:   extras,
	}
}

// roundHalfUp rounds to the nearest currency unit, halves away from zero.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
