package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/internal/repository"
	"github.com/atlasrent/rental-service/pkg/auth"
)

// stubRepo overrides just the calls a test needs; anything else panics.
type stubRepo struct {
	repository.Repository
	user    model.User
	lastSet map[string]interface{}
}

func (s *stubRepo) GetUser(_ context.Context, _ int) (model.User, error) {
	return s.user, nil
}

func (s *stubRepo) UpdateUser(_ context.Context, _ int, set map[string]interface{}) (model.User, error) {
	s.lastSet = set
	if tier, ok := set["membership_tier"]; ok {
		s.user.MembershipTier = tier.(model.MembershipTier)
	}
	if exp, ok := set["membership_expiry_date"]; ok {
		s.user.MembershipExpiryDate = exp.(time.Time)
	}
	return s.user, nil
}

func newMembershipService(repo *stubRepo, now time.Time) *Service {
	s := NewService(repo, auth.Config{}, nil, nil, zap.NewNop())
	s.now = func() time.Time { return now }
	return s
}

func TestUpgradeMembership(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	renter := model.Actor{ID: 1, Role: model.RoleRenter}

	t.Run("restarts term from now", func(t *testing.T) {
		repo := &stubRepo{user: model.User{ID: 1, MembershipTier: model.TierBasic}}
		svc := newMembershipService(repo, now)

		got, err := svc.UpgradeMembership(context.Background(), renter, model.TierGold)
		require.NoError(t, err)
		require.Equal(t, model.TierGold, got.Tier)
		require.Equal(t, DeriveBenefits(model.TierGold), got.Benefits)
		require.Equal(t, now.Add(membershipTerm), repo.lastSet["membership_expiry_date"])
	})

	t.Run("rejects unknown tier", func(t *testing.T) {
		svc := newMembershipService(&stubRepo{}, now)
		_, err := svc.UpgradeMembership(context.Background(), renter, "platinum")
		require.ErrorIs(t, err, errs.ErrInvalidTier)
	})

	t.Run("owners have no tier", func(t *testing.T) {
		svc := newMembershipService(&stubRepo{}, now)
		_, err := svc.UpgradeMembership(context.Background(), model.Actor{ID: 2, Role: model.RoleOwner}, model.TierSilver)
		require.ErrorIs(t, err, errs.ErrRenterTierOnly)
	})
}

func TestRenewMembership(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	renter := model.Actor{ID: 1, Role: model.RoleRenter}

	t.Run("extends from current expiry when still active", func(t *testing.T) {
		expiry := now.AddDate(0, 2, 0)
		repo := &stubRepo{user: model.User{ID: 1, MembershipTier: model.TierSilver, MembershipExpiryDate: expiry}}
		svc := newMembershipService(repo, now)

		_, err := svc.RenewMembership(context.Background(), renter)
		require.NoError(t, err)
		require.Equal(t, expiry.Add(membershipTerm), repo.lastSet["membership_expiry_date"])
	})

	t.Run("extends from now when lapsed", func(t *testing.T) {
		repo := &stubRepo{user: model.User{ID: 1, MembershipTier: model.TierSilver, MembershipExpiryDate: now.AddDate(0, -1, 0)}}
		svc := newMembershipService(repo, now)

		_, err := svc.RenewMembership(context.Background(), renter)
		require.NoError(t, err)
		require.Equal(t, now.Add(membershipTerm), repo.lastSet["membership_expiry_date"])
	})

	t.Run("basic has nothing to renew", func(t *testing.T) {
		repo := &stubRepo{user: model.User{ID: 1, MembershipTier: model.TierBasic}}
		svc := newMembershipService(repo, now)

		_, err := svc.RenewMembership(context.Background(), renter)
		require.ErrorIs(t, err, errs.ErrNothingToRenew)
	})
}

func TestCancelMembership(t *testing.T) {
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	repo := &stubRepo{user: model.User{ID: 1, MembershipTier: model.TierGold, MembershipExpiryDate: now.AddDate(1, 0, 0)}}
	svc := newMembershipService(repo, now)

	got, err := svc.CancelMembership(context.Background(), model.Actor{ID: 1, Role: model.RoleRenter})
	require.NoError(t, err)
	require.Equal(t, model.TierBasic, got.Tier)
	require.Equal(t, model.Benefits{}, got.Benefits)
	require.Equal(t, now, repo.lastSet["membership_expiry_date"])
}

func TestMembershipTiersCatalog(t *testing.T) {
	svc := newMembershipService(&stubRepo{}, time.Now())
	tiers := svc.MembershipTiers()
	require.Len(t, tiers, 3)
	require.Equal(t, "basic", tiers[0].Name)
	require.Equal(t, 99.99, tiers[1].Price)
	require.Equal(t, DeriveBenefits(model.TierGold), tiers[2].Benefits)
}
