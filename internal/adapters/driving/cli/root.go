// Package cli implements the resourcehub command line interface using cobra.
// Commands are thin: they parse flags, call driving port services and format
// output. Service wiring happens once, lazily, on first use.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/campushq/resourcehub/internal/adapters/driven/config/file"
	"github.com/campushq/resourcehub/internal/adapters/driven/embedding"
	embeddingopenai "github.com/campushq/resourcehub/internal/adapters/driven/embedding/openai"
	llmopenai "github.com/campushq/resourcehub/internal/adapters/driven/llm/openai"
	"github.com/campushq/resourcehub/internal/adapters/driven/storage/sqlite"
	"github.com/campushq/resourcehub/internal/adapters/driven/vector/qdrant"
	"github.com/campushq/resourcehub/internal/chunker"
	"github.com/campushq/resourcehub/internal/core/ports/driven"
	"github.com/campushq/resourcehub/internal/core/ports/driving"
	"github.com/campushq/resourcehub/internal/core/services"
	"github.com/campushq/resourcehub/internal/extractors"
	"github.com/campushq/resourcehub/internal/extractors/pdf"
	"github.com/campushq/resourcehub/internal/extractors/plaintext"
	"github.com/campushq/resourcehub/internal/extractors/word"
	"github.com/campushq/resourcehub/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

// Services used by the commands. Wired lazily by ensureServices; tests
// inject mocks directly.
var (
	ingestService  driving.IngestService
	searchService  driving.SearchService
	resourceStore  driven.ResourceStore
	activeConfig   *configfile.Config
	serviceClosers []func() error
)

var rootCmd = &cobra.Command{
	Use:   "resourcehub",
	Short: "Campus resource ingestion and retrieval",
	Long: `resourcehub ingests campus documents (PDF, Word, plain text),
summarises them, and makes them searchable through vector similarity.
Ask questions and get answers grounded in the uploaded resources.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default ~/.resourcehub/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeServices()
		os.Exit(1)
	}
	closeServices()
}

// loadConfig loads and memoizes the configuration.
func loadConfig() (*configfile.Config, error) {
	if activeConfig != nil {
		return activeConfig, nil
	}

	path := configPath
	if path == "" {
		var err error
		path, err = configfile.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := configfile.Load(path)
	if err != nil {
		return nil, err
	}
	activeConfig = cfg
	return cfg, nil
}

// ensureServices wires the full service graph on first use.
func ensureServices(cmd *cobra.Command) error {
	if ingestService != nil && searchService != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	store, err := sqlite.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening resource store: %w", err)
	}
	serviceClosers = append(serviceClosers, store.Close)

	openaiEmbedder, err := embeddingopenai.NewEmbeddingService(embeddingopenai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.EmbeddingModel,
	})
	if err != nil {
		return fmt.Errorf("creating embedding service: %w", err)
	}
	embedder := embedding.NewRateLimitedWithConfig(openaiEmbedder, embedding.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		BurstSize:         cfg.RateLimit.BurstSize,
	})
	serviceClosers = append(serviceClosers, embedder.Close)

	llm, err := llmopenai.NewLLMService(llmopenai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Model:   cfg.OpenAI.ChatModel,
	})
	if err != nil {
		return fmt.Errorf("creating LLM service: %w", err)
	}
	serviceClosers = append(serviceClosers, llm.Close)

	index, err := qdrant.NewIndex(qdrant.Config{
		URL:        cfg.Qdrant.URL,
		APIKey:     cfg.Qdrant.APIKey,
		Collection: cfg.Qdrant.Collection,
	})
	if err != nil {
		return fmt.Errorf("creating vector index: %w", err)
	}
	serviceClosers = append(serviceClosers, index.Close)
	if err := index.EnsureCollection(cmd.Context(), embedder.Dimensions()); err != nil {
		return fmt.Errorf("preparing vector collection: %w", err)
	}

	registry := extractors.NewRegistry()
	registry.Register(pdf.New())
	registry.Register(word.New())
	registry.Register(plaintext.New())

	splitter := chunker.New(
		chunker.WithChunkSize(cfg.Chunking.Size),
		chunker.WithOverlap(cfg.Chunking.Overlap),
	)

	composer := services.NewComposer(llm)
	resourceStore = store
	ingestService = services.NewIngestService(registry, splitter, embedder, index, store, composer)
	searchService = services.NewSearchService(embedder, index, composer)
	return nil
}

func closeServices() {
	for _, closeFn := range serviceClosers {
		if err := closeFn(); err != nil {
			logger.Warn("Closing service: %v", err)
		}
	}
	serviceClosers = nil
}
