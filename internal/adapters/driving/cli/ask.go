package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campushq/resourcehub/internal/core/domain"
)

var (
	askDepartment string
	askSubject    string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question grounded in the ingested resources",
	Long: `Retrieves the most relevant passages for the question and composes
an answer from them, citing the source resources.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askDepartment, "department", "d", "", "filter by department")
	askCmd.Flags().StringVarP(&askSubject, "subject", "s", "", "filter by subject")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	if searchService == nil {
		return errors.New("search service not configured")
	}

	filters := domain.SearchFilters{
		Department: askDepartment,
		Subject:    askSubject,
	}

	answer, err := searchService.Ask(cmd.Context(), args[0], filters)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(answer.Text)

	if len(answer.Hits) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for _, hit := range answer.Hits {
			cmd.Printf("  - %s (%.2f)\n", hit.Title, hit.Score)
		}
	}
	return nil
}
