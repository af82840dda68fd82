package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all configuration for the movie script similarity service
type Config struct {
	// Server configuration
	Port string `env:"PORT,default=8981"`

	// Dataset source: local path or http(s) URL to the serialized dataset
	DatasetSource string `env:"DATASET_SOURCE,default=./data/movies.json"`

	// Genre focused by the second UMAP plot when present in the dataset
	DefaultGenre string `env:"DEFAULT_GENRE,default=Comedy"`

	// Similarity metric used to rank neighbors on the search page
	NeighborMetric string `env:"NEIGHBOR_METRIC,default=Distance"`

	// OpenAI configuration (optional; enables free-text semantic search)
	OpenAIAPIKey         string `env:"OPENAI_API_KEY"`
	OpenAIEmbeddingModel string `env:"OPENAI_EMBEDDING_MODEL,default=text-embedding-3-small"`

	// GCP configuration (optional for local deployment)
	GCPProjectID string `env:"GCP_PROJECT_ID"`
	GCSBucket    string `env:"GCS_BUCKET"`

	// Local deployment configuration
	LocalAssetsDir string `env:"LOCAL_ASSETS_DIR,default=./assets"`

	// Service configuration
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=auto"`
}

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
