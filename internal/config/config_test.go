package config

import (
	"context"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Port != "8981" {
					t.Errorf("Expected default Port '8981', got %q", cfg.Port)
				}
				if cfg.DatasetSource != "./data/movies.json" {
					t.Errorf("Expected default DatasetSource './data/movies.json', got %q", cfg.DatasetSource)
				}
				if cfg.DefaultGenre != "Comedy" {
					t.Errorf("Expected default DefaultGenre 'Comedy', got %q", cfg.DefaultGenre)
				}
				if cfg.NeighborMetric != "Distance" {
					t.Errorf("Expected default NeighborMetric 'Distance', got %q", cfg.NeighborMetric)
				}
				if cfg.OpenAIEmbeddingModel != "text-embedding-3-small" {
					t.Errorf("Expected default embedding model, got %q", cfg.OpenAIEmbeddingModel)
				}
				if cfg.LocalAssetsDir != "./assets" {
					t.Errorf("Expected default LocalAssetsDir './assets', got %q", cfg.LocalAssetsDir)
				}
				if cfg.Environment != "development" {
					t.Errorf("Expected default Environment 'development', got %q", cfg.Environment)
				}
				if cfg.LogLevel != "info" {
					t.Errorf("Expected default LogLevel 'info', got %q", cfg.LogLevel)
				}
				if cfg.OpenAIAPIKey != "" {
					t.Errorf("Expected empty OpenAIAPIKey by default, got %q", cfg.OpenAIAPIKey)
				}
			},
		},
		{
			name: "overrides",
			envVars: map[string]string{
				"PORT":           "9000",
				"DATASET_SOURCE": "https://example.com/movies.json",
				"DEFAULT_GENRE":  "Horror",
				"GCS_BUCKET":     "my-bucket",
				"OPENAI_API_KEY": "test-key",
			},
			validate: func(t *testing.T, cfg *Config) {
				if cfg.Port != "9000" {
					t.Errorf("Expected Port '9000', got %q", cfg.Port)
				}
				if cfg.DatasetSource != "https://example.com/movies.json" {
					t.Errorf("Unexpected DatasetSource %q", cfg.DatasetSource)
				}
				if cfg.DefaultGenre != "Horror" {
					t.Errorf("Expected DefaultGenre 'Horror', got %q", cfg.DefaultGenre)
				}
				if cfg.GCSBucket != "my-bucket" {
					t.Errorf("Expected GCSBucket 'my-bucket', got %q", cfg.GCSBucket)
				}
				if cfg.OpenAIAPIKey != "test-key" {
					t.Errorf("Expected OpenAIAPIKey 'test-key', got %q", cfg.OpenAIAPIKey)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load(context.Background())
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.validate(t, cfg)
		})
	}
}

func TestGetVersion(t *testing.T) {
	t.Setenv("APP_VERSION", "9.9.9")
	if v := GetVersion(); v != "9.9.9" {
		t.Errorf("Expected version from APP_VERSION, got %q", v)
	}
}
