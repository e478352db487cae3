package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/format"
)

var reportsJSON bool

var reportsCmd = &cobra.Command{
	Use:     "reports",
	Aliases: []string{"report"},
	Short:   "Show contract, financial and skill reports",
	Args:    cobra.NoArgs,
	PreRunE: requireSession,
	RunE:    runReports,
}

func init() {
	reportsCmd.Flags().BoolVar(&reportsJSON, "json", false, "output reports as JSON")
	rootCmd.AddCommand(reportsCmd)
}

func runReports(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errors.New("report service not configured")
	}

	reports, err := reportService.All(cmd.Context())
	if err != nil {
		return fmt.Errorf("loading reports failed: %w", sessionError(err))
	}

	if reportsJSON {
		return printJSON(cmd, reports)
	}

	cmd.Println("[Financial]")
	cmd.Printf("  Minimum total: %s\n", format.BRL(reports.Financial.TotalMinBudget))
	cmd.Printf("  Maximum total: %s\n", format.BRL(reports.Financial.TotalMaxBudget))
	cmd.Printf("  Average:       %s\n", format.BRL(reports.Financial.AvgBudget))
	cmd.Println()

	cmd.Println("[Contracts]")
	if len(reports.Summary) == 0 {
		cmd.Println("  No contracts.")
	} else {
		rows := make([][]string, 0, len(reports.Summary))
		for _, s := range reports.Summary {
			rows = append(rows, []string{
				s.Status.Label(),
				fmt.Sprintf("%d", s.TotalContracts),
				format.BRL(s.TotalBudget),
			})
		}
		printTable(cmd, []string{"Status", "Contracts", "Budget"}, rows)
	}
	cmd.Println()

	cmd.Println("[Skills]")
	if len(reports.Languages) == 0 {
		cmd.Println("  No skills recorded.")
		return nil
	}
	rows := make([][]string, 0, len(reports.Languages))
	for _, l := range reports.Languages {
		rows = append(rows, []string{l.Language, fmt.Sprintf("%d", l.Total)})
	}
	printTable(cmd, []string{"Skill", "Contracts"}, rows)
	return nil
}
