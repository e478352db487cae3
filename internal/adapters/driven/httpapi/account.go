package httpapi

import (
	"context"
	"net/http"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

const (
	pathUserDetails  = "/api/user/details"
	pathUserProfile  = "/api/users/profile"
	pathUserPassword = "/api/users/password"
)

// UserDetails returns the signed-in account.
func (c *Client) UserDetails(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, pathUserDetails, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the display name and/or email and returns the updated account.
func (c *Client) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPatch, pathUserProfile, update, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdatePassword changes the account password.
func (c *Client) UpdatePassword(ctx context.Context, update domain.PasswordUpdate) error {
	return c.do(ctx, http.MethodPatch, pathUserPassword, update, nil)
}
