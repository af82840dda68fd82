package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/logger"
)

// Loader loads the serialized movie dataset from a local path or an HTTP URL
type Loader struct {
	client *resty.Client
	log    *logger.Logger
}

// NewLoader creates a new dataset loader
func NewLoader() *Loader {
	client := resty.New()
	client.SetTimeout(30 * time.Second)
	client.SetRetryCount(3)
	client.SetRetryWaitTime(2 * time.Second)

	return &Loader{
		client: client,
		log:    logger.WithComponent("dataset"),
	}
}

// Load reads, parses and validates the dataset from the configured source
func (l *Loader) Load(ctx context.Context, source string) (*Dataset, error) {
	raw, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	if err := json.Unmarshal(raw, &movies); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", source, err)
	}

	ds, err := New(movies)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", source, err)
	}

	l.log.Info("Dataset loaded", map[string]interface{}{
		"source":        source,
		"movies":        ds.Len(),
		"embedding_dim": ds.EmbeddingDim(),
		"genres":        len(ds.GenreOptions()),
	})
	return ds, nil
}

// read fetches the raw dataset bytes from disk or over HTTP
func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := l.client.R().SetContext(ctx).Get(source)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch dataset from %s: %w", source, err)
		}
		if resp.StatusCode() != 200 {
			return nil, fmt.Errorf("dataset fetch from %s returned status %d", source, resp.StatusCode())
		}
		return resp.Body(), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", source, err)
	}
	return data, nil
}

// ShuffledTitleOptions returns every movie title as an option list in random
// order, matching the search page's randomized dropdown
func (d *Dataset) ShuffledTitleOptions() []OptionItem {
	options := make([]OptionItem, 0, len(d.Movies))
	for i := range d.Movies {
		options = append(options, OptionItem{ID: d.Movies[i].Title, Text: d.Movies[i].Title})
	}
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
