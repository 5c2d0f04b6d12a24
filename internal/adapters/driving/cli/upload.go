package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/campushq/resourcehub/internal/core/ports/driving"
	"github.com/campushq/resourcehub/internal/extractors"
)

var (
	uploadTitle      string
	uploadDepartment string
	uploadSubject    string
	uploadUser       string
)

var uploadCmd = &cobra.Command{
	Use:   "upload [file]",
	Short: "Ingest a document into the resource hub",
	Long: `Extracts text from the given file, generates a summary and stores
the content in the vector index so it can be found by search and ask.

Supported formats: PDF, Word (.docx, .doc), plain text and Markdown.`,
	Args: cobra.ExactArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadTitle, "title", "t", "", "resource title (default: file name)")
	uploadCmd.Flags().StringVarP(&uploadDepartment, "department", "d", "", "department tag")
	uploadCmd.Flags().StringVarP(&uploadSubject, "subject", "s", "", "subject tag")
	uploadCmd.Flags().StringVarP(&uploadUser, "uploaded-by", "u", "", "uploader identifier")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if err := ensureServices(cmd); err != nil {
		return err
	}
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	path := args[0]
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	fileName := filepath.Base(path)
	title := uploadTitle
	if title == "" {
		title = fileName
	}

	req := driving.IngestRequest{
		ResourceID: uuid.NewString(),
		FileName:   fileName,
		Content:    content,
		MediaType:  extractors.DetectMediaType(fileName),
		Title:      title,
		UploadedBy: uploadUser,
		Department: uploadDepartment,
		Subject:    uploadSubject,
	}

	result, err := ingestService.Ingest(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", fileName, err)
	}

	cmd.Printf("Ingested %s as %s (%d chunks)\n", fileName, req.ResourceID, result.ChunksStored)
	cmd.Println()
	cmd.Println(result.Summary)
	return nil
}
