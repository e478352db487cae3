package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

// recordingAuth captures registrations.
type recordingAuth struct {
	stubAuth
	registered []domain.Registration
}

func (a *recordingAuth) Register(_ context.Context, reg domain.Registration) error {
	a.registered = append(a.registered, reg)
	return nil
}

func TestAccountService_Register_ForcesUserRole(t *testing.T) {
	auth := &recordingAuth{}
	service := NewAccountService(auth, nil)

	err := service.Register(context.Background(), domain.Registration{
		Name: "Ana", Email: "a@b.com", Password: "pw12345678", Role: domain.RoleAdmin,
	})

	require.NoError(t, err)
	require.Len(t, auth.registered, 1)
	assert.Equal(t, domain.RoleUser, auth.registered[0].Role)
}

func TestAccountService_Register_MissingFields(t *testing.T) {
	auth := &recordingAuth{}
	service := NewAccountService(auth, nil)

	err := service.Register(context.Background(), domain.Registration{Email: "a@b.com", Password: "pw"})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, auth.registered)
}

func TestAccountService_Details(t *testing.T) {
	api := &stubAPI{user: &domain.User{Name: "Ana", Email: "a@b.com", Role: domain.RoleUser}}
	service := NewAccountService(nil, api)

	user, err := service.Details(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestAccountService_UpdateProfile(t *testing.T) {
	api := &stubAPI{user: &domain.User{Name: "Ana Maria"}}
	service := NewAccountService(nil, api)

	user, err := service.UpdateProfile(context.Background(), domain.ProfileUpdate{Name: "Ana Maria"})

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", user.Name)
	assert.Equal(t, "Ana Maria", api.lastProfile.Name)
}

func TestAccountService_UpdateProfile_Empty(t *testing.T) {
	api := &stubAPI{}
	service := NewAccountService(nil, api)

	_, err := service.UpdateProfile(context.Background(), domain.ProfileUpdate{})

	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, api.callCount())
}

func TestAccountService_UpdatePassword(t *testing.T) {
	api := &stubAPI{}
	service := NewAccountService(nil, api)

	update := domain.PasswordUpdate{CurrentPassword: "old", NewPassword: "new", ConfirmNewPassword: "new"}
	require.NoError(t, service.UpdatePassword(context.Background(), update))
	assert.Equal(t, update, api.lastPassword)
}

func TestAccountService_UpdatePassword_Mismatch(t *testing.T) {
	api := &stubAPI{}
	service := NewAccountService(nil, api)

	update := domain.PasswordUpdate{CurrentPassword: "old", NewPassword: "new", ConfirmNewPassword: "other"}
	require.ErrorIs(t, service.UpdatePassword(context.Background(), update), domain.ErrInvalidInput)
	assert.Zero(t, api.callCount())
}

func TestAccountService_NilGateways(t *testing.T) {
	service := NewAccountService(nil, nil)

	require.ErrorIs(t, service.Register(context.Background(), domain.Registration{}), domain.ErrNotImplemented)
	_, err := service.Details(context.Background())
	require.ErrorIs(t, err, domain.ErrNotImplemented)
}
