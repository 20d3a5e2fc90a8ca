package service

import (
	"context"
	"time"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
)

const membershipTerm = 365 * 24 * time.Hour

var tierPrices = map[model.MembershipTier]float64{
	model.TierBasic:  0,
	model.TierSilver: 99.99,
	model.TierGold:   199.99,
}

// MembershipTiers is the static catalog served without authentication.
func (s *Service) MembershipTiers() []model.TierInfo {
	tiers := []model.MembershipTier{model.TierBasic, model.TierSilver, model.TierGold}
	out := make([]model.TierInfo, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, model.TierInfo{
			Name:     string(t),
			Price:    tierPrices[t],
			Benefits: DeriveBenefits(t),
		})
	}
	return out
}

func (s *Service) MembershipStatus(ctx context.Context, actor model.Actor) (model.Membership, error) {
	if actor.Role != model.RoleRenter {
		return model.Membership{}, errs.ErrRenterTierOnly
	}
	user, err := s.repo.GetUser(ctx, actor.ID)
	if err != nil {
		return model.Membership{}, err
	}
	return membershipOf(user), nil
}

// UpgradeMembership switches the renter to the requested tier and restarts
// the 365-day term from now, whatever the prior expiry was.
func (s *Service) UpgradeMembership(ctx context.Context, actor model.Actor, tier model.MembershipTier) (model.Membership, error) {
	if actor.Role != model.RoleRenter {
		return model.Membership{}, errs.ErrRenterTierOnly
	}
	if !tier.Valid() {
		return model.Membership{}, errs.ErrInvalidTier
	}
	now := s.now()
	user, err := s.repo.UpdateUser(ctx, actor.ID, map[string]interface{}{
		"membership_tier":        tier,
		"membership_expiry_date": now.Add(membershipTerm),
	})
	if err != nil {
		return model.Membership{}, err
	}
	return membershipOf(user), nil
}

// RenewMembership extends the current term by 365 days counted from whichever
// is later, now or the current expiry. The basic tier has nothing to renew.
func (s *Service) RenewMembership(ctx context.Context, actor model.Actor) (model.Membership, error) {
	if actor.Role != model.RoleRenter {
		return model.Membership{}, errs.ErrRenterTierOnly
	}
	user, err := s.repo.GetUser(ctx, actor.ID)
	if err != nil {
		return model.Membership{}, err
	}
	if user.MembershipTier == model.TierBasic {
		return model.Membership{}, errs.ErrNothingToRenew
	}
	base := s.now()
	if user.MembershipExpiryDate.After(base) {
		base = user.MembershipExpiryDate
	}
	user, err = s.repo.UpdateUser(ctx, actor.ID, map[string]interface{}{
		"membership_expiry_date": base.Add(membershipTerm),
	})
	if err != nil {
		return model.Membership{}, err
	}
	return membershipOf(user), nil
}

// CancelMembership drops the renter to basic and collapses the expiry to now.
func (s *Service) CancelMembership(ctx context.Context, actor model.Actor) (model.Membership, error) {
	if actor.Role != model.RoleRenter {
		return model.Membership{}, errs.ErrRenterTierOnly
	}
	user, err := s.repo.UpdateUser(ctx, actor.ID, map[string]interface{}{
		"membership_tier":        model.TierBasic,
		"membership_expiry_date": s.now(),
	})
	if err != nil {
		return model.Membership{}, err
	}
	return membershipOf(user), nil
}

func membershipOf(user model.User) model.Membership {
	return model.Membership{
		Tier:        user.MembershipTier,
		Benefits:    DeriveBenefits(user.MembershipTier),
		ExpiryDate:  user.MembershipExpiryDate.Format(time.RFC3339),
		MemberSince: user.MemberSince.Format(time.RFC3339),
	}
}
