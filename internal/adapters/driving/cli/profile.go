package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

var (
	profileName  string
	profileEmail string
)

var profileCmd = &cobra.Command{
	Use:     "profile",
	Short:   "Show your account details",
	Args:    cobra.NoArgs,
	PreRunE: requireSession,
	RunE:    runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Change your name or email",
	Long: `Change your name or email.

Only the flags you pass are changed.`,
	Args:    cobra.NoArgs,
	PreRunE: requireSession,
	RunE:    runProfileUpdate,
}

var profilePasswordCmd = &cobra.Command{
	Use:     "password",
	Short:   "Change your password",
	Args:    cobra.NoArgs,
	PreRunE: requireSession,
	RunE:    runProfilePassword,
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileName, "name", "", "new display name")
	profileUpdateCmd.Flags().StringVarP(&profileEmail, "email", "e", "", "new email")

	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePasswordCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	user, err := accountService.Details(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading profile failed: %w", sessionError(err))
	}
	printUser(cmd, user)
	return nil
}

func runProfileUpdate(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	update := domain.ProfileUpdate{Name: profileName, Email: profileEmail}
	if update.IsEmpty() {
		return errors.New("nothing to update: pass --name and/or --email")
	}

	user, err := accountService.UpdateProfile(cmd.Context(), update)
	if err != nil {
		return fmt.Errorf("updating profile failed: %w", sessionError(err))
	}
	cmd.Println("Profile updated.")
	printUser(cmd, user)
	return nil
}

func runProfilePassword(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	p := newPrompter(cmd)
	update := domain.PasswordUpdate{
		CurrentPassword:    p.password("Current password: "),
		NewPassword:        p.password("New password: "),
		ConfirmNewPassword: p.password("Confirm new password: "),
	}
	if err := update.Validate(); err != nil {
		return errors.New("all fields are required and the new passwords must match")
	}

	if err := accountService.UpdatePassword(cmd.Context(), update); err != nil {
		return fmt.Errorf("changing password failed: %w", sessionError(err))
	}
	cmd.Println("Password changed.")
	return nil
}

func printUser(cmd *cobra.Command, user *domain.User) {
	if user == nil {
		return
	}
	cmd.Printf("Name:  %s\n", user.Name)
	cmd.Printf("Email: %s\n", user.Email)
	if user.Role != "" {
		cmd.Printf("Role:  %s\n", user.Role)
	}
}
