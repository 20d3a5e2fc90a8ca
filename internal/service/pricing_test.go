package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/atlasrent/rental-service/internal/model"
)

func TestDeriveBenefits(t *testing.T) {
	tests := []struct {
		tier model.MembershipTier
		want model.Benefits
	}{
		{model.TierBasic, model.Benefits{}},
		{model.TierSilver, model.Benefits{DiscountRate: 0.10, FreeDelivery: true, PrioritySupport: true}},
		{model.TierGold, model.Benefits{DiscountRate: 0.15, FreeDelivery: true, PrioritySupport: true, ExtraDriverOption: true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			require.Equal(t, tt.want, DeriveBenefits(tt.tier))
			// deriving twice yields the same table
			require.Equal(t, tt.want, DeriveBenefits(tt.tier))
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		baseRate float64
		tier     model.MembershipTier
		days     int
		want     float64
	}{
		{"silver 3 days at 1000", 1000, model.TierSilver, 3, 2700},
		{"basic keeps base rate", 1000, model.TierBasic, 2, 2000},
		{"gold 15 percent off", 1000, model.TierGold, 1, 850},
		// 99*0.9 = 89.1 rounds to 89; 105*0.9 = 94.5 rounds to 95
		{"rounds half up per day", 99, model.TierSilver, 2, 178},
		{"rounding before multiplying", 105, model.TierSilver, 10, 950},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Quote(tt.baseRate, tt.tier, tt.days))
		})
	}
}

func TestStayDays(t *testing.T) {
	base := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)
	require.Equal(t, 1, StayDays(base, base.Add(24*time.Hour)))
	require.Equal(t, 2, StayDays(base, base.Add(25*time.Hour)))
	require.Equal(t, 3, StayDays(base, base.AddDate(0, 0, 3)))
	require.Equal(t, 1, StayDays(base, base.Add(time.Hour)))
}

func TestPromoQuote(t *testing.T) {
	t.Run("nothing active", func(t *testing.T) {
		require.Nil(t, PromoQuote(1000, nil))
	})

	t.Run("highest discount wins, extras are unioned", func(t *testing.T) {
		got := PromoQuote(1000, []model.Promotion{
			{DiscountPercent: 10, ExtraBenefit: "free gps"},
			{DiscountPercent: 25},
			{DiscountPercent: 5, ExtraBenefit: "child seat"},
		})
		require.NotNil(t, got)
		require.Equal(t, 25.0, got.DiscountPercent)
		require.Equal(t, 750.0, got.PriceAfterPromo)
		require.Equal(t, []string{"free gps", "child seat"}, got.ExtraBenefits)
	})

	t.Run("repeated extras collapse", func(t *testing.T) {
		got := PromoQuote(1000, []model.Promotion{
			{DiscountPercent: 10, ExtraBenefit: "free gps"},
			{DiscountPercent: 20, ExtraBenefit: "free gps"},
			{DiscountPercent: 5, ExtraBenefit: "child seat"},
		})
		require.NotNil(t, got)
		require.Equal(t, []string{"free gps", "child seat"}, got.ExtraBenefits)
	})

	t.Run("membership and promo stay independent", func(t *testing.T) {
		promo := PromoQuote(1000, []model.Promotion{{DiscountPercent: 50}})
		member := MemberPrice(1000, model.TierGold)
		require.Equal(t, 500.0, promo.PriceAfterPromo)
		require.Equal(t, 850.0, member)
	})
}
