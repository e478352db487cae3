package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the backend URL, session storage and listing options.

Settings are stored in config.toml inside the configuration directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsURLCmd = &cobra.Command{
	Use:   "set-url [url]",
	Short: "Set the backend URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsURL,
}

var settingsStoreCmd = &cobra.Command{
	Use:   "set-store [sqlite|file]",
	Short: "Choose where the session is stored",
	Long: `Choose where the session is stored.

  sqlite - local database (default)
  file   - JSON file; other workly processes pick up logins and logouts

The change applies from the next run. Log in again afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsStore,
}

var settingsPageSizeCmd = &cobra.Command{
	Use:   "set-page-size [n]",
	Short: "Set the default number of jobs per page",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsPageSize,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsURLCmd)
	settingsCmd.AddCommand(settingsStoreCmd)
	settingsCmd.AddCommand(settingsPageSizeCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[API]")
	cmd.Printf("  Base URL: %s\n", settings.API.BaseURL)
	cmd.Printf("  Timeout: %s\n", settings.API.Timeout)
	cmd.Printf("  Rate limit: %g req/s (burst %d)\n", settings.API.RateLimit, settings.API.Burst)
	cmd.Println()

	cmd.Println("[Session]")
	cmd.Printf("  Store: %s\n", settings.Session.Store)
	cmd.Println()

	cmd.Println("[Jobs]")
	cmd.Printf("  Page size: %d\n", settings.Jobs.PageSize)
	cmd.Println()

	if path := settingsService.ConfigPath(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	}
	if err := settings.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	}
	return nil
}

func runSettingsURL(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if err := settingsService.SetBaseURL(args[0]); err != nil {
		return fmt.Errorf("failed to set backend URL: %w", err)
	}
	cmd.Printf("Backend URL set to: %s\n", args[0])
	return nil
}

func runSettingsStore(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	kind := domain.CredentialStoreKind(args[0])
	if !kind.IsValid() {
		return fmt.Errorf("unknown store %q (available: %s, %s)",
			args[0], domain.CredentialStoreSQLite, domain.CredentialStoreFile)
	}
	if err := settingsService.SetCredentialStore(kind); err != nil {
		return fmt.Errorf("failed to set session store: %w", err)
	}
	cmd.Printf("Session store set to: %s\n", kind)
	return nil
}

func runSettingsPageSize(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 1 {
		return fmt.Errorf("page size must be a positive number, got %q", args[0])
	}
	if err := settingsService.SetPageSize(size); err != nil {
		return fmt.Errorf("failed to set page size: %w", err)
	}
	cmd.Printf("Page size set to: %d\n", size)
	return nil
}
