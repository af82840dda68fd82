package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/charts"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/config"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/dataset"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/figures"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/llm"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/logger"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/similarity"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/storage"
)

// Server holds the loaded dataset, precomputed similarity index and every
// component the HTTP handlers need
type Server struct {
	Config         *config.Config
	Dataset        *dataset.Dataset
	Index          *similarity.Index
	Figures        *figures.Builder
	Charts         *charts.Generator
	Embedder       *llm.EmbeddingClient
	Storage        storage.Client
	DeploymentMode storage.DeploymentMode

	// titleOptions is shuffled once at startup; the search dropdown keeps
	// that order for the lifetime of the process
	titleOptions []dataset.OptionItem
	genreOptions []dataset.OptionItem

	pages *pageRenderer
	log   *logger.Logger
}

// NewServer loads the dataset, precomputes the similarity matrices, renders
// the static chart assets and wires up all handler dependencies
func NewServer(ctx context.Context, cfg *config.Config, deploymentMode storage.DeploymentMode) (*Server, error) {
	log := logger.WithComponent("server")

	ds, err := dataset.NewLoader().Load(ctx, cfg.DatasetSource)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}

	store, err := storage.NewClient(ctx, deploymentMode, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	pages, err := newPageRenderer()
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load page templates: %w", err)
	}

	srv := &Server{
		Config:         cfg,
		Dataset:        ds,
		Index:          similarity.NewIndex(ds),
		Figures:        figures.NewBuilder(ds),
		Charts:         charts.NewGenerator(ds),
		Embedder:       llm.NewEmbeddingClient(cfg.OpenAIAPIKey, cfg.OpenAIEmbeddingModel),
		Storage:        store,
		DeploymentMode: deploymentMode,
		titleOptions:   ds.ShuffledTitleOptions(),
		genreOptions:   ds.GenreOptions(),
		pages:          pages,
		log:            log,
	}

	if srv.Embedder == nil {
		log.Info("Semantic search disabled - no OpenAI API key configured")
	}

	if err := srv.renderChartAssets(ctx); err != nil {
		// Stats page images degrade to broken links; everything else works
		log.Error("Failed to render chart assets", err)
	}

	return srv, nil
}

// renderChartAssets renders the static PNG charts and stores them where the
// file proxy can serve them
func (s *Server) renderChartAssets(ctx context.Context) error {
	assets, err := s.Charts.GenerateAll()
	if err != nil {
		return err
	}

	for name, data := range assets {
		if err := s.Storage.StoreFile(ctx, name, data); err != nil {
			return fmt.Errorf("failed to store chart asset %s: %w", name, err)
		}
	}

	s.log.Info("Chart assets rendered", map[string]interface{}{"count": len(assets)})
	return nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/visualize", s.HandleVisualize)
	mux.HandleFunc("/umap_plots", s.HandleUMAPPlots)
	mux.HandleFunc("/update_genre_plot", s.HandleUpdateGenrePlot)
	mux.HandleFunc("/semantic_search", s.HandleSemanticSearch)
	mux.HandleFunc("/stats", s.HandleStats)
	mux.HandleFunc("/about", s.HandleAbout)
	mux.HandleFunc("/files/", s.HandleFileProxy)

	// Root path last (catch-all)
	mux.HandleFunc("/", s.HandleIndex)

	return mux
}

// DefaultGenre returns the configured default genre when the dataset carries
// it, otherwise the empty string (no initial selection)
func (s *Server) DefaultGenre() string {
	if s.Dataset.HasGenre(s.Config.DefaultGenre) {
		return s.Config.DefaultGenre
	}
	return ""
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
