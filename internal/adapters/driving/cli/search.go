package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campushq/resourcehub/internal/core/domain"
)

var (
	searchDepartment string
	searchSubject    string
	searchUploader   string
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search ingested resources",
	Long: `Performs a similarity search across all ingested resources.
Results are aggregated per resource: each hit shows the resource's
best-matching passage. Use the filter flags to narrow by metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchDepartment, "department", "d", "", "filter by department")
	searchCmd.Flags().StringVarP(&searchSubject, "subject", "s", "", "filter by subject")
	searchCmd.Flags().StringVarP(&searchUploader, "uploaded-by", "u", "", "filter by uploader")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	if searchService == nil {
		return errors.New("search service not configured")
	}

	filters := domain.SearchFilters{
		Department: searchDepartment,
		Subject:    searchSubject,
		UploadedBy: searchUploader,
	}

	hits, err := searchService.Search(cmd.Context(), args[0], filters)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputHitsJSON(cmd, hits)
	}
	return outputHitsText(cmd, hits)
}

func outputHitsJSON(cmd *cobra.Command, hits []domain.ResourceHit) error {
	data, err := json.MarshalIndent(hits, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHitsText(cmd *cobra.Command, hits []domain.ResourceHit) error {
	if len(hits) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, hit := range hits {
		title := hit.Title
		if title == "" {
			title = hit.ResourceID
		}
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, title, hit.Score)
		cmd.Printf("      %s\n", hit.Snippet)
		cmd.Println()
	}
	return nil
}
