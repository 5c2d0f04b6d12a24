package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List ingested resources",
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [resource-id]",
	Short: "Delete a resource and its indexed chunks",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(deleteCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	if resourceStore == nil {
		return errors.New("resource store not configured")
	}

	resources, err := resourceStore.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing resources: %w", err)
	}

	if len(resources) == 0 {
		cmd.Println("No resources ingested yet.")
		return nil
	}

	for _, resource := range resources {
		cmd.Printf("%s  %s", resource.ID, resource.Title)
		if resource.Department != "" {
			cmd.Printf("  [%s]", resource.Department)
		}
		cmd.Println()
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	resourceID := args[0]
	if err := ingestService.DeleteResource(cmd.Context(), resourceID); err != nil {
		return fmt.Errorf("deleting resource: %w", err)
	}

	cmd.Printf("Deleted %s\n", resourceID)
	return nil
}
