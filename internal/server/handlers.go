package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/config"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/figures"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/similarity"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/storage"
)

// indexPageData feeds the title-search page template
type indexPageData struct {
	MovieTitles template.JS
	Version     string
}

// umapPageData feeds the UMAP plots page template
type umapPageData struct {
	Figs         []template.JS
	Genres       template.JS
	DefaultGenre string
	Version      string
}

// HandleIndex serves the title-search page
func (s *Server) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	titlesJSON, err := json.Marshal(s.titleOptions)
	if err != nil {
		s.log.Error("Failed to marshal title options", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := indexPageData{
		MovieTitles: template.JS(titlesJSON),
		Version:     config.GetVersion(),
	}
	if err := s.pages.render(w, "index.html", data); err != nil {
		s.log.Error("Failed to render index page", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// HandleVisualize builds the neighbor scatter and correlation heatmap for a
// selected movie title
func (s *Server) HandleVisualize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		MovieTitle string `json:"movie_title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MovieTitle == "" {
		writeJSONError(w, http.StatusBadRequest, "No movie title provided")
		return
	}

	matches, err := s.Index.Matches(req.MovieTitle, s.Config.NeighborMetric)
	if err != nil {
		s.log.Warn("Visualize request for unknown title",
			map[string]interface{}{"movie_title": req.MovieTitle})
		writeJSONError(w, http.StatusNotFound, "Unknown movie title")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"neighbors_plot": figures.NeighborScatter(req.MovieTitle, matches),
		"corr_plot":      figures.CorrelationHeatmap(req.MovieTitle, matches),
	})
}

// HandleUMAPPlots serves the projection plots page with its three figures and
// the genre option list injected
func (s *Server) HandleUMAPPlots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// The dropdown starts unselected when the default genre is absent; the
	// preloaded focus figure then shows the first genre so region 2 is not
	// empty on first paint.
	defaultGenre := s.DefaultGenre()
	focusGenre := defaultGenre
	if focusGenre == "" && len(s.genreOptions) > 0 {
		focusGenre = s.genreOptions[0].ID
	}

	figs := s.Figures.UMAPFigures(focusGenre)
	figsJS := make([]template.JS, 0, len(figs))
	for _, fig := range figs {
		payload, err := fig.JSON()
		if err != nil {
			s.log.Error("Failed to marshal UMAP figure", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		figsJS = append(figsJS, template.JS(payload))
	}

	genresJSON, err := json.Marshal(s.genreOptions)
	if err != nil {
		s.log.Error("Failed to marshal genre options", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := umapPageData{
		Figs:         figsJS,
		Genres:       template.JS(genresJSON),
		DefaultGenre: defaultGenre,
		Version:      config.GetVersion(),
	}
	if err := s.pages.render(w, "umap_plots.html", data); err != nil {
		s.log.Error("Failed to render UMAP plots page", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// HandleUpdateGenrePlot rebuilds the genre focus figure for the selected
// genre. The response is the figure object itself, JSON-encoded exactly once.
func (s *Server) HandleUpdateGenrePlot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Genre string `json:"genre"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Genre == "" {
		writeJSONError(w, http.StatusBadRequest, "No genre provided")
		return
	}

	s.log.Debug("Updating genre plot", map[string]interface{}{"genre": req.Genre})
	writeJSON(w, http.StatusOK, s.Figures.GenreFocusScatter(req.Genre))
}

// HandleSemanticSearch embeds a free-text query and ranks the catalog
// against it. Returns 503 when no embedding client is configured.
func (s *Server) HandleSemanticSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if s.Embedder == nil {
		writeJSONError(w, http.StatusServiceUnavailable, "Semantic search is not configured")
		return
	}

	var req struct {
		Query string `json:"query"`
		Limit int    `json:"limit"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeJSONError(w, http.StatusBadRequest, "No query provided")
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}

	vec, err := s.Embedder.EmbedQuery(r.Context(), req.Query)
	if err != nil {
		s.log.Error("Failed to embed query", err)
		writeJSONError(w, http.StatusBadGateway, "Failed to embed query")
		return
	}

	matches, err := s.Index.NearestToVector(vec, similarity.MetricCosine, req.Limit)
	if err != nil {
		// Dimension mismatch means the configured embedding model does not
		// match the dataset's pipeline
		s.log.Error("Failed to rank semantic search query", err)
		writeJSONError(w, http.StatusInternalServerError, "Query embedding does not match dataset")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"query":   req.Query,
		"metric":  similarity.MetricCosine,
		"matches": matches,
	})
}

// HandleStats serves the dataset overview page
func (s *Server) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snippet, err := s.Charts.GenreBarSnippet()
	if err != nil {
		s.log.Error("Failed to build genre bar snippet", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Rendered PNG assets are enumerated from storage so the page only links
	// what actually got stored at startup
	type statsImage struct {
		Title string
		URL   string
	}
	var images []statsImage
	assets, err := s.Storage.ListFiles(r.Context(), "")
	if err != nil {
		s.log.Error("Failed to list chart assets", err)
	} else {
		for _, name := range assets {
			if !strings.HasSuffix(name, ".png") {
				continue
			}
			images = append(images, statsImage{
				Title: assetTitle(name),
				URL:   "/files/" + name,
			})
		}
	}

	data := struct {
		GenreBar template.HTML
		Images   []statsImage
		Movies   int
		Genres   int
		Version  string
	}{
		GenreBar: snippet.HTML,
		Images:   images,
		Movies:   s.Dataset.Len(),
		Genres:   len(s.genreOptions),
		Version:  config.GetVersion(),
	}
	if err := s.pages.render(w, "stats.html", data); err != nil {
		s.log.Error("Failed to render stats page", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// HandleAbout serves ABOUT.md rendered to HTML
func (s *Server) HandleAbout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	source, err := readAboutFile()
	if err != nil {
		s.log.Error("Failed to read about document", err)
		http.Error(w, "About page unavailable", http.StatusNotFound)
		return
	}

	content, err := s.pages.renderMarkdown(source)
	if err != nil {
		s.log.Error("Failed to render about document", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	data := struct {
		Content template.HTML
		Version string
	}{Content: content, Version: config.GetVersion()}
	if err := s.pages.render(w, "about.html", data); err != nil {
		s.log.Error("Failed to render about page", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// assetTitle turns a stored asset name like "genre_distribution.png" into a
// heading like "Genre Distribution"
func assetTitle(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	words := strings.Split(strings.ReplaceAll(base, "_", " "), " ")
	for i, word := range words {
		if word != "" {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}

func readAboutFile() ([]byte, error) {
	var lastErr error
	for _, path := range []string{"ABOUT.md", filepath.Join("..", "..", "ABOUT.md")} {
		data, err := os.ReadFile(path)
		if err == nil {
			return data, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// HandleHealth provides a health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   config.GetVersion(),
		"checks": map[string]interface{}{
			"dataset": s.Dataset.Len(),
			"genres":  len(s.genreOptions),
		},
	})
}

// HandleFileProxy serves generated chart assets from storage
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	fileData, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		s.log.Warn("File proxy miss", map[string]interface{}{"path": filePath})
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(fileData)
}
