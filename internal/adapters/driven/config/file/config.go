package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the full application configuration.
type Config struct {
	OpenAI    OpenAIConfig    `toml:"openai"`
	Qdrant    QdrantConfig    `toml:"qdrant"`
	Chunking  ChunkingConfig  `toml:"chunking"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Storage   StorageConfig   `toml:"storage"`
	Watch     WatchConfig     `toml:"watch"`
}

// OpenAIConfig configures the embedding and chat completion services.
type OpenAIConfig struct {
	// APIKey authenticates against the OpenAI API.
	// The OPENAI_API_KEY environment variable takes precedence.
	APIKey string `toml:"api_key"`

	// BaseURL overrides the API endpoint, e.g. for a compatible proxy.
	BaseURL string `toml:"base_url"`

	// EmbeddingModel is the model used for text embeddings.
	EmbeddingModel string `toml:"embedding_model"`

	// ChatModel is the model used for summaries and answers.
	ChatModel string `toml:"chat_model"`
}

// QdrantConfig configures the vector index connection.
type QdrantConfig struct {
	// URL is the Qdrant REST endpoint.
	// The QDRANT_URL environment variable takes precedence.
	URL string `toml:"url"`

	// APIKey authenticates against Qdrant, if required.
	// The QDRANT_API_KEY environment variable takes precedence.
	APIKey string `toml:"api_key"`

	// Collection is the collection holding resource chunk vectors.
	Collection string `toml:"collection"`
}

// ChunkingConfig controls how extracted text is split before embedding.
type ChunkingConfig struct {
	Size    int `toml:"size"`
	Overlap int `toml:"overlap"`
}

// RateLimitConfig throttles embedding API calls.
type RateLimitConfig struct {
	RequestsPerSecond float64 `toml:"requests_per_second"`
	BurstSize         int     `toml:"burst_size"`
}

// StorageConfig configures local metadata storage.
type StorageConfig struct {
	// DataDir is the directory holding the SQLite database.
	// Empty means ~/.resourcehub/data.
	DataDir string `toml:"data_dir"`
}

// WatchConfig configures the drop-folder watcher.
type WatchConfig struct {
	// Dir is the directory watched for new files to ingest.
	Dir string `toml:"dir"`

	// UploadedBy is recorded as the uploader for watched files.
	UploadedBy string `toml:"uploaded_by"`

	// Department and Subject tag every resource ingested from the folder.
	Department string `toml:"department"`
	Subject    string `toml:"subject"`
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			BaseURL:        "https://api.openai.com/v1",
			EmbeddingModel: "text-embedding-3-small",
			ChatModel:      "gpt-4o-mini",
		},
		Qdrant: QdrantConfig{
			URL:        "http://localhost:6333",
			Collection: "campus-resources",
		},
		Chunking: ChunkingConfig{
			Size:    1000,
			Overlap: 200,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10.0,
			BurstSize:         20,
		},
	}
}

// DefaultPath returns the default config file location,
// ~/.resourcehub/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".resourcehub", "config.toml"), nil
}

// Load reads configuration from the given TOML file, applying defaults for
// missing values and environment overrides for secrets. A missing file is
// not an error; defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg, nil
}

// Save writes the configuration to the given path, creating parent
// directories as needed. Useful for generating a starter config.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	// Restricted permissions, the file may hold API keys.
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.OpenAI.BaseURL == "" {
		c.OpenAI.BaseURL = def.OpenAI.BaseURL
	}
	if c.OpenAI.EmbeddingModel == "" {
		c.OpenAI.EmbeddingModel = def.OpenAI.EmbeddingModel
	}
	if c.OpenAI.ChatModel == "" {
		c.OpenAI.ChatModel = def.OpenAI.ChatModel
	}
	if c.Qdrant.URL == "" {
		c.Qdrant.URL = def.Qdrant.URL
	}
	if c.Qdrant.Collection == "" {
		c.Qdrant.Collection = def.Qdrant.Collection
	}
	if c.Chunking.Size <= 0 {
		c.Chunking.Size = def.Chunking.Size
	}
	if c.Chunking.Overlap <= 0 {
		c.Chunking.Overlap = def.Chunking.Overlap
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		c.RateLimit.RequestsPerSecond = def.RateLimit.RequestsPerSecond
	}
	if c.RateLimit.BurstSize <= 0 {
		c.RateLimit.BurstSize = def.RateLimit.BurstSize
	}
}

// applyEnv overrides secrets and endpoints from the environment.
func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAI.APIKey = v
	}
	if v := os.Getenv("QDRANT_URL"); v != "" {
		c.Qdrant.URL = v
	}
	if v := os.Getenv("QDRANT_API_KEY"); v != "" {
		c.Qdrant.APIKey = v
	}
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required (or set OPENAI_API_KEY)")
	}
	if c.Qdrant.URL == "" {
		return fmt.Errorf("qdrant.url is required")
	}
	return nil
}
