package cli

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workly-labs/workly-cli/internal/core/domain"
)

func TestReportsCmd(t *testing.T) {
	reports := &domain.Reports{
		Financial: domain.FinancialReport{TotalMinBudget: 1500, TotalMaxBudget: 4200.5, AvgBudget: 2850.25},
		Summary:   []domain.ContractSummary{{Status: domain.ContractActive, TotalContracts: 2, TotalBudget: 3000}},
		Languages: []domain.LanguageUsage{{Language: "Go", Total: 4}},
	}

	t.Run("table output", func(t *testing.T) {
		ts := setupTestServices(t)
		ts.Reports.Reports = reports

		out, err := runCommand(t, "", "reports")

		require.NoError(t, err)
		assert.Contains(t, out, "[Financial]")
		assert.Contains(t, out, "R$ 1.500,00")
		assert.Contains(t, out, "R$ 4.200,50")
		assert.Contains(t, out, "Ativo")
		assert.Contains(t, out, "Go")
	})

	t.Run("empty reports", func(t *testing.T) {
		setupTestServices(t)

		out, err := runCommand(t, "", "report")

		require.NoError(t, err)
		assert.Contains(t, out, "No contracts.")
		assert.Contains(t, out, "No skills recorded.")
	})

	t.Run("json output", func(t *testing.T) {
		ts := setupTestServices(t)
		ts.Reports.Reports = reports

		out, err := runCommand(t, "", "reports", "--json")

		require.NoError(t, err)
		var got domain.Reports
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, *reports, got)
	})

	t.Run("failure", func(t *testing.T) {
		ts := setupTestServices(t)
		ts.Reports.Err = errors.New("timeout")

		_, err := runCommand(t, "", "reports")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading reports failed")
	})
}
