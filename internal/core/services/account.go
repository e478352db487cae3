package services

import (
	"context"

	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/core/ports/driven"
	"github.com/workly-labs/workly-cli/internal/core/ports/driving"
)

// Ensure AccountService implements the interface.
var _ driving.AccountService = (*AccountService)(nil)

// AccountService manages registration and the signed-in account.
type AccountService struct {
	auth    driven.AuthGateway
	gateway driven.AccountGateway
}

// NewAccountService creates a new account service.
func NewAccountService(auth driven.AuthGateway, gateway driven.AccountGateway) *AccountService {
	return &AccountService{
		auth:    auth,
		gateway: gateway,
	}
}

// Register creates a new account. Self-registered accounts always get RoleUser.
func (s *AccountService) Register(ctx context.Context, reg domain.Registration) error {
	if s.auth == nil {
		return domain.ErrNotImplemented
	}
	reg.Role = domain.RoleUser
	if err := reg.Validate(); err != nil {
		return err
	}
	return s.auth.Register(ctx, reg)
}

// Details returns the signed-in account's profile.
func (s *AccountService) Details(ctx context.Context) (*domain.User, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	return s.gateway.UserDetails(ctx)
}

// UpdateProfile changes the display name and/or email.
func (s *AccountService) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	if s.gateway == nil {
		return nil, domain.ErrNotImplemented
	}
	if update.IsEmpty() {
		return nil, domain.ErrInvalidInput
	}
	return s.gateway.UpdateProfile(ctx, update)
}

// UpdatePassword changes the account password.
func (s *AccountService) UpdatePassword(ctx context.Context, update domain.PasswordUpdate) error {
	if s.gateway == nil {
		return domain.ErrNotImplemented
	}
	if err := update.Validate(); err != nil {
		return err
	}
	return s.gateway.UpdatePassword(ctx, update)
}
