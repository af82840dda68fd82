package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Movie is one record of the script dataset. Embeddings and the 2-D UMAP
// projection are computed offline by the embedding pipeline; this service
// only consumes them.
type Movie struct {
	Index        int       `json:"index"`
	Title        string    `json:"movie_title"`
	Genre        string    `json:"genre"` // comma-separated multi-label
	Year         int       `json:"year"`
	ScriptLength int       `json:"script_length"`
	Embedding    []float64 `json:"embedding"`
	UMAPX        float64   `json:"umap_x"`
	UMAPY        float64   `json:"umap_y"`
}

// Genres returns the movie's genre labels, trimmed, in dataset order
func (m *Movie) Genres() []string {
	parts := strings.Split(m.Genre, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// PrimaryGenre returns the first genre label, or "Unknown" when none is set
func (m *Movie) PrimaryGenre() string {
	if genres := m.Genres(); len(genres) > 0 {
		return genres[0]
	}
	return "Unknown"
}

// HasGenre reports whether the movie carries the given genre label
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres() {
		if g == genre {
			return true
		}
	}
	return false
}

// OptionItem is one entry of a selection control option list
type OptionItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Dataset holds the loaded movie catalog with title and genre indexes
type Dataset struct {
	Movies  []Movie
	byTitle map[string]int
}

// New builds a Dataset from validated movie records
func New(movies []Movie) (*Dataset, error) {
	if len(movies) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	dim := len(movies[0].Embedding)
	byTitle := make(map[string]int, len(movies))
	for i, m := range movies {
		if m.Title == "" {
			return nil, fmt.Errorf("movie %d has an empty title", i)
		}
		if len(m.Embedding) != dim {
			return nil, fmt.Errorf("movie %q embedding dimension %d, expected %d",
				m.Title, len(m.Embedding), dim)
		}
		if math.IsNaN(m.UMAPX) || math.IsInf(m.UMAPX, 0) ||
			math.IsNaN(m.UMAPY) || math.IsInf(m.UMAPY, 0) {
			return nil, fmt.Errorf("movie %q has a non-finite projection", m.Title)
		}
		if _, dup := byTitle[m.Title]; dup {
			return nil, fmt.Errorf("duplicate movie title %q", m.Title)
		}
		byTitle[m.Title] = i
	}

	return &Dataset{Movies: movies, byTitle: byTitle}, nil
}

// Len returns the number of movies in the dataset
func (d *Dataset) Len() int {
	return len(d.Movies)
}

// EmbeddingDim returns the embedding dimensionality of the dataset
func (d *Dataset) EmbeddingDim() int {
	return len(d.Movies[0].Embedding)
}

// ByTitle looks up a movie by its exact title
func (d *Dataset) ByTitle(title string) (*Movie, bool) {
	i, ok := d.byTitle[title]
	if !ok {
		return nil, false
	}
	return &d.Movies[i], true
}

// PositionByTitle returns the slice position of a movie by its exact title.
// Distinct from Movie.Index, which is the upstream dataset's own row id.
func (d *Dataset) PositionByTitle(title string) (int, bool) {
	i, ok := d.byTitle[title]
	return i, ok
}

// GenreOptions returns the unique split genre labels, alphabetically sorted,
// as a selection option list
func (d *Dataset) GenreOptions() []OptionItem {
	seen := make(map[string]bool)
	var genres []string
	for i := range d.Movies {
		for _, g := range d.Movies[i].Genres() {
			if !seen[g] {
				seen[g] = true
				genres = append(genres, g)
			}
		}
	}
	sort.Strings(genres)

	options := make([]OptionItem, 0, len(genres))
	for _, g := range genres {
		options = append(options, OptionItem{ID: g, Text: g})
	}
	return options
}

// HasGenre reports whether any movie in the dataset carries the genre label
func (d *Dataset) HasGenre(genre string) bool {
	for i := range d.Movies {
		if d.Movies[i].HasGenre(genre) {
			return true
		}
	}
	return false
}
