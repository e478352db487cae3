package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/workly-labs/workly-cli/internal/adapters/driving/format"
	"github.com/workly-labs/workly-cli/internal/core/domain"
)

var (
	jobsPage       int
	jobsSize       int
	jobsJSON       bool
	jobsBySkills   bool
	jobsSearchJSON bool
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Browse and search freelance jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, newest first",
	Long: `List one page of scraped jobs.

Pages are numbered from 1. The page size defaults to jobs.page_size.`,
	Args:    cobra.NoArgs,
	PreRunE: requireSession,
	RunE:    runJobsList,
}

var jobsSearchCmd = &cobra.Command{
	Use:   "search [keyword]",
	Short: "Search jobs by title or skills",
	Long: `Search jobs whose title contains the keyword.

Use --skills to match against the skills list instead.`,
	Args:    cobra.ExactArgs(1),
	PreRunE: requireSession,
	RunE:    runJobsSearch,
}

func init() {
	jobsListCmd.Flags().IntVarP(&jobsPage, "page", "p", 1, "page number, starting at 1")
	jobsListCmd.Flags().IntVarP(&jobsSize, "size", "n", 0, "jobs per page (0 = configured default)")
	jobsListCmd.Flags().BoolVar(&jobsJSON, "json", false, "output jobs as JSON")
	jobsSearchCmd.Flags().BoolVar(&jobsBySkills, "skills", false, "match the keyword against skills")
	jobsSearchCmd.Flags().BoolVar(&jobsSearchJSON, "json", false, "output jobs as JSON")

	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsSearchCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	if jobService == nil {
		return errors.New("job service not configured")
	}
	if jobsPage < 1 {
		return errors.New("page must be 1 or greater")
	}

	page, err := jobService.List(cmd.Context(), jobsPage-1, jobsSize)
	if err != nil {
		return fmt.Errorf("listing jobs failed: %w", sessionError(err))
	}

	if jobsJSON {
		return printJSON(cmd, page)
	}

	if len(page.Jobs) == 0 {
		cmd.Println("No jobs found.")
		return nil
	}
	printJobs(cmd, page.Jobs)
	cmd.Printf("Page %d of %d (%d jobs)\n", page.Page+1, page.TotalPages, page.TotalElements)
	if page.HasNext() {
		cmd.Printf("Next: workly jobs list --page %d\n", page.Page+2)
	}
	return nil
}

func runJobsSearch(cmd *cobra.Command, args []string) error {
	if jobService == nil {
		return errors.New("job service not configured")
	}

	field := domain.SearchByTitle
	if jobsBySkills {
		field = domain.SearchBySkills
	}

	jobs, err := jobService.Search(cmd.Context(), args[0], field)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return errors.New("invalid search field")
		}
		return fmt.Errorf("search failed: %w", sessionError(err))
	}

	if jobsSearchJSON {
		return printJSON(cmd, jobs)
	}
	if len(jobs) == 0 {
		cmd.Println("No jobs found.")
		return nil
	}
	printJobs(cmd, jobs)
	cmd.Printf("%d jobs found\n", len(jobs))
	return nil
}

func printJobs(cmd *cobra.Command, jobs []domain.Job) {
	rows := make([][]string, 0, len(jobs))
	for i := range jobs {
		j := &jobs[i]
		rows = append(rows, []string{
			truncate(j.Title, 48),
			format.Budget(j.MinBudget, j.MaxBudget),
			truncate(j.Skills, 32),
			j.Source,
			j.LinkHash,
		})
	}
	printTable(cmd, []string{"Title", "Budget", "Skills", "Source", "Hash"}, rows)
}
