package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/atlasrent/rental-service/internal/errs"
	"github.com/atlasrent/rental-service/internal/model"
	"github.com/atlasrent/rental-service/pkg/auth"
)

// Register creates the account and signs a token in one go, so the client is
// authenticated straight after signup.
func (s *Service) Register(ctx context.Context, req model.RegisterRequest) (model.User, model.AuthResponse, error) {
	role := req.Role
	if role == "" {
		role = model.RoleRenter
	}
	if !role.Valid() {
		return model.User{}, model.AuthResponse{}, errs.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, model.AuthResponse{}, err
	}

	now := s.now()
	user, err := s.repo.CreateUser(ctx, model.User{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             string(hash),
		TelephoneNumber:      req.TelephoneNumber,
		Role:                 role,
		DriverLicense:        req.DriverLicense,
		MembershipTier:       model.TierBasic,
		MemberSince:          now,
		MembershipExpiryDate: now.Add(membershipTerm),
	})
	if err != nil {
		return model.User{}, model.AuthResponse{}, err
	}

	resp, err := s.signFor(user)
	if err != nil {
		return model.User{}, model.AuthResponse{}, err
	}
	return user, resp, nil
}

func (s *Service) Login(ctx context.Context, req model.LoginRequest) (model.User, model.AuthResponse, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return model.User{}, model.AuthResponse{}, errs.ErrInvalidCreds
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return model.User{}, model.AuthResponse{}, errs.ErrInvalidCreds
	}
	resp, err := s.signFor(user)
	if err != nil {
		return model.User{}, model.AuthResponse{}, err
	}
	return user, resp, nil
}

func (s *Service) Me(ctx context.Context, actor model.Actor) (model.User, error) {
	return s.repo.GetUser(ctx, actor.ID)
}

func (s *Service) UpdateProfile(ctx context.Context, actor model.Actor, req model.UpdateProfileRequest) (model.User, error) {
	set := map[string]interface{}{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.TelephoneNumber != "" {
		set["telephone_number"] = req.TelephoneNumber
	}
	if req.DriverLicense != "" {
		set["driver_license"] = req.DriverLicense
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return model.User{}, err
		}
		set["password"] = string(hash)
	}
	if len(set) == 0 {
		return s.repo.GetUser(ctx, actor.ID)
	}
	return s.repo.UpdateUser(ctx, actor.ID, set)
}

func (s *Service) ListUsers(ctx context.Context, actor model.Actor) ([]model.UserSummary, error) {
	if !actor.Admin() {
		return nil, errs.ErrNotAuthorized
	}
	return s.repo.ListUsers(ctx)
}

// AdminUpdateUser lets admins rename a user or force a membership tier; a
// forced tier restarts the 365-day term like a regular upgrade.
func (s *Service) AdminUpdateUser(ctx context.Context, actor model.Actor, id int, req model.AdminUpdateUserRequest) (model.User, error) {
	if !actor.Admin() {
		return model.User{}, errs.ErrNotAuthorized
	}
	set := map[string]interface{}{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.MembershipTier != "" {
		if !req.MembershipTier.Valid() {
			return model.User{}, errs.ErrInvalidTier
		}
		set["membership_tier"] = req.MembershipTier
		set["membership_expiry_date"] = s.now().Add(membershipTerm)
	}
	if len(set) == 0 {
		return s.repo.GetUser(ctx, id)
	}
	return s.repo.UpdateUser(ctx, id, set)
}

func (s *Service) signFor(user model.User) (model.AuthResponse, error) {
	token, expiresAt, err := auth.Sign(s.jwt, user.ID, string(user.Role))
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		AccessToken: token,
		ExpiresIn:   expiresAt.Unix(),
	}, nil
}
