package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/campushq/resourcehub/internal/adapters/driving/watcher"
)

var watchDir string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a drop folder and ingest new files",
	Long: `Watches a directory and ingests every supported file written into it.
Rewriting a file re-ingests it under the same resource id. The directory
and default metadata tags can also be set in the [watch] config section.`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchDir, "dir", "", "directory to watch (default: watch.dir from config)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := watchDir
	if dir == "" {
		dir = cfg.Watch.Dir
	}
	if dir == "" {
		return errors.New("no watch directory configured (use --dir or watch.dir)")
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return errors.New("watch directory does not exist: " + dir)
	}

	w := watcher.New(dir, ingestService, watcher.Metadata{
		UploadedBy: cfg.Watch.UploadedBy,
		Department: cfg.Watch.Department,
		Subject:    cfg.Watch.Subject,
	})

	cmd.Printf("Watching %s (Ctrl+C to stop)\n", dir)
	return w.Run(cmd.Context())
}
