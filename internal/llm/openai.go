package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/logger"
)

// EmbeddingClient embeds free-text queries with the OpenAI embeddings API so
// they can be ranked against the precomputed script embeddings
type EmbeddingClient struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

// NewEmbeddingClient creates a new embedding client. Returns nil when no API
// key is configured; callers treat a nil client as "semantic search disabled".
func NewEmbeddingClient(apiKey, model string) *EmbeddingClient {
	if apiKey == "" {
		return nil
	}
	return &EmbeddingClient{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.WithComponent("llm"),
	}
}

// EmbedQuery embeds a single free-text query
func (c *EmbeddingClient) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{query},
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI embeddings API error: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("no embedding returned for query")
	}

	embedding := make([]float64, len(resp.Data[0].Embedding))
	for i, v := range resp.Data[0].Embedding {
		embedding[i] = float64(v)
	}

	c.log.Debug("Embedded query", map[string]interface{}{
		"model": c.model,
		"dim":   len(embedding),
	})
	return embedding, nil
}
