package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

var (
	loginEmail    string
	registerName  string
	registerEmail string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to Workly",
	Long: `Sign in with your email and password.

The returned tokens are stored locally (see 'workly settings'). The access
token is refreshed automatically; you only need to log in again when the
refresh token is rejected.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a Workly account",
	Args:  cobra.NoArgs,
	RunE:  runRegister,
}

var statusCmd = &cobra.Command{
	Use:     "status",
	Aliases: []string{"whoami"},
	Short:   "Show the session state",
	Args:    cobra.NoArgs,
	RunE:    runStatus,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email (prompted if empty)")
	registerCmd.Flags().StringVar(&registerName, "name", "", "display name (prompted if empty)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "account email (prompted if empty)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(statusCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}

	p := newPrompter(cmd)
	email := loginEmail
	if email == "" {
		email = p.line("Email: ")
	}
	password := p.password("Password: ")

	cred, err := sessionManager.Login(cmd.Context(), email, password)
	if err != nil {
		var authErr *domain.AuthenticationError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return errors.New("email and password are required")
		case errors.As(err, &authErr):
			return fmt.Errorf("login failed: %s", authErr.Error())
		default:
			return fmt.Errorf("login failed: %w", err)
		}
	}

	if cred.Name != "" {
		cmd.Printf("Welcome, %s!\n", cred.Name)
	} else {
		cmd.Println("Logged in.")
	}
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}
	if err := sessionManager.Logout(cmd.Context()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	cmd.Println("Logged out.")
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	p := newPrompter(cmd)
	reg := domain.Registration{Name: registerName, Email: registerEmail}
	if reg.Name == "" {
		reg.Name = p.line("Name: ")
	}
	if reg.Email == "" {
		reg.Email = p.line("Email: ")
	}
	reg.Password = p.password("Password: ")
	if confirm := p.password("Confirm password: "); confirm != reg.Password {
		return errors.New("passwords do not match")
	}

	if err := accountService.Register(cmd.Context(), reg); err != nil {
		var authErr *domain.AuthenticationError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return errors.New("name, email and password are required")
		case errors.As(err, &authErr):
			return fmt.Errorf("registration failed: %s", authErr.Error())
		default:
			return fmt.Errorf("registration failed: %w", err)
		}
	}

	cmd.Println("Account created. Run 'workly login' to sign in.")
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	if sessionManager == nil {
		return errors.New("session manager not configured")
	}

	state := sessionManager.State()
	cmd.Printf("Session: %s\n", state.Description())
	if cred := sessionManager.Credential(); cred != nil && cred.Name != "" {
		cmd.Printf("User:    %s\n", cred.Name)
	}
	if settingsService != nil {
		if settings, err := settingsService.Get(); err == nil {
			cmd.Printf("Backend: %s\n", settings.API.BaseURL)
		}
	}
	return nil
}
