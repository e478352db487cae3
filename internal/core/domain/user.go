package domain

import "strings"

// Role is the account role assigned at registration.
type Role string

const (
	// RoleUser is the role every self-registered account gets.
	RoleUser Role = "USER"
	// RoleAdmin is reserved for back-office accounts.
	RoleAdmin Role = "ADMIN"
)

// User is the profile of the signed-in account.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Registration is the body of the register endpoint.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Validate checks that all required fields are present.
func (r *Registration) Validate() error {
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.Email) == "" || r.Password == "" {
		return ErrInvalidInput
	}
	return nil
}

// ProfileUpdate changes the display name and/or email. Empty fields are left unchanged.
type ProfileUpdate struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// IsEmpty returns true if the update changes nothing.
func (p *ProfileUpdate) IsEmpty() bool {
	return p.Name == "" && p.Email == ""
}

// PasswordUpdate changes the account password.
type PasswordUpdate struct {
	CurrentPassword    string `json:"currentPassword"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}

// Validate checks that all fields are present and the confirmation matches.
func (p *PasswordUpdate) Validate() error {
	if p.CurrentPassword == "" || p.NewPassword == "" || p.ConfirmNewPassword == "" {
		return ErrInvalidInput
	}
	if p.NewPassword != p.ConfirmNewPassword {
		return ErrInvalidInput
	}
	return nil
}
