package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/format"
	"github.com/workly-labs/workly-cli/internal/core/domain"
)

var contractsJSON bool

var contractsCmd = &cobra.Command{
	Use:     "contracts",
	Aliases: []string{"contract"},
	Short:   "Manage the jobs you have claimed",
}

var contractsListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List your contracts",
	Args:    cobra.NoArgs,
	PreRunE: requireSession,
	RunE:    runContractsList,
}

var contractsAddCmd = &cobra.Command{
	Use:   "add [link-hash]",
	Short: "Claim a job as a new contract",
	Long: `Claim a job as a new contract.

The link hash is shown in the last column of 'workly jobs list'.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: requireSession,
	RunE:    runContractsAdd,
}

var contractsStatusCmd = &cobra.Command{
	Use:   "status [link-hash] [status]",
	Short: "Change a contract's status",
	Long: `Change a contract's status.

Available statuses: ` + statusList(),
	Args:    cobra.ExactArgs(2),
	PreRunE: requireSession,
	RunE:    runContractsStatus,
}

var contractsCloseCmd = &cobra.Command{
	Use:     "close [link-hash]",
	Short:   "Cancel a contract",
	Args:    cobra.ExactArgs(1),
	PreRunE: requireSession,
	RunE:    runContractsClose,
}

func init() {
	contractsListCmd.Flags().BoolVar(&contractsJSON, "json", false, "output contracts as JSON")

	contractsCmd.AddCommand(contractsListCmd)
	contractsCmd.AddCommand(contractsAddCmd)
	contractsCmd.AddCommand(contractsStatusCmd)
	contractsCmd.AddCommand(contractsCloseCmd)
	rootCmd.AddCommand(contractsCmd)
}

func statusList() string {
	names := make([]string, len(domain.AllContractStatuses))
	for i, s := range domain.AllContractStatuses {
		names[i] = strings.ToLower(s.String())
	}
	return strings.Join(names, ", ")
}

func runContractsList(cmd *cobra.Command, _ []string) error {
	if contractService == nil {
		return errors.New("contract service not configured")
	}

	contracts, err := contractService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing contracts failed: %w", sessionError(err))
	}

	if contractsJSON {
		return printJSON(cmd, contracts)
	}
	if len(contracts) == 0 {
		cmd.Println("No contracts yet. Claim a job with 'workly contracts add <link-hash>'.")
		return nil
	}

	rows := make([][]string, 0, len(contracts))
	for i := range contracts {
		c := &contracts[i]
		rows = append(rows, []string{
			c.Status.Label(),
			truncate(c.Title, 48),
			format.Budget(c.MinBudget, c.MaxBudget),
			c.LinkHash,
		})
	}
	printTable(cmd, []string{"Status", "Title", "Budget", "Hash"}, rows)
	return nil
}

func runContractsAdd(cmd *cobra.Command, args []string) error {
	if contractService == nil {
		return errors.New("contract service not configured")
	}
	if err := contractService.Add(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("adding contract failed: %w", sessionError(err))
	}
	cmd.Printf("Contract added: %s\n", args[0])
	return nil
}

func runContractsStatus(cmd *cobra.Command, args []string) error {
	if contractService == nil {
		return errors.New("contract service not configured")
	}

	status, err := domain.ParseContractStatus(args[1])
	if err != nil {
		return fmt.Errorf("unknown status %q (available: %s)", args[1], statusList())
	}
	if err := contractService.UpdateStatus(cmd.Context(), args[0], status); err != nil {
		return fmt.Errorf("updating contract failed: %w", sessionError(err))
	}
	cmd.Printf("Contract %s is now %s\n", args[0], status.Label())
	return nil
}

func runContractsClose(cmd *cobra.Command, args []string) error {
	if contractService == nil {
		return errors.New("contract service not configured")
	}
	if err := contractService.Close(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("closing contract failed: %w", sessionError(err))
	}
	cmd.Printf("Contract %s cancelled\n", args[0])
	return nil
}
