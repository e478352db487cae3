package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/tui"
	"github.com/workly-labs/workly-cli/internal/core/domain"
	"github.com/workly-labs/workly-cli/internal/logger"
)

// runProgram runs a bubbletea model. Tests replace it to avoid a terminal.
var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// browseCmd launches the interactive terminal UI.
var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI to browse and search jobs,
claim them as contracts and follow your reports.

Controls:
  ↑/k, ↓/j - Move selection
  ←/h, →/l - Previous / next page
  c        - Claim the selected job
  Enter    - Search / Select
  Esc      - Back
  ?        - Help
  q        - Quit`,
	PreRunE: requireSession,
	RunE:    runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Another workly process may log in or out while the UI is open.
	if err := sessionManager.Watch(ctx); err != nil {
		logger.Warn("watching session store: %v", err)
	}

	app, err := tui.NewApp(&tui.Ports{
		Session:   sessionManager,
		Jobs:      jobService,
		Contracts: contractService,
		Reports:   reportService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	if _, err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if err := app.SessionErr(); err != nil {
		if errors.Is(err, domain.ErrLoggedOut) {
			return errSessionExpired
		}
		return err
	}
	return nil
}
