package dataset

import (
	"sort"
	"testing"
)

func testMovies() []Movie {
	return []Movie{
		{Index: 0, Title: "Airplane!", Genre: "Comedy", Year: 1980, ScriptLength: 100000,
			Embedding: []float64{1, 0, 0}, UMAPX: 1.0, UMAPY: 2.0},
		{Index: 1, Title: "Alien", Genre: "Horror,Sci-Fi", Year: 1979, ScriptLength: 120000,
			Embedding: []float64{0, 1, 0}, UMAPX: -1.0, UMAPY: 0.5},
		{Index: 2, Title: "Heat", Genre: "Action,Crime,Drama", Year: 1995, ScriptLength: 150000,
			Embedding: []float64{0, 0, 1}, UMAPX: 0.2, UMAPY: -1.5},
	}
}

func TestNew(t *testing.T) {
	ds, err := New(testMovies())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if ds.Len() != 3 {
		t.Errorf("Expected 3 movies, got %d", ds.Len())
	}
	if ds.EmbeddingDim() != 3 {
		t.Errorf("Expected embedding dim 3, got %d", ds.EmbeddingDim())
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Movie) []Movie
	}{
		{
			name:   "empty dataset",
			mutate: func(m []Movie) []Movie { return nil },
		},
		{
			name: "empty title",
			mutate: func(m []Movie) []Movie {
				m[1].Title = ""
				return m
			},
		},
		{
			name: "inconsistent embedding dimension",
			mutate: func(m []Movie) []Movie {
				m[2].Embedding = []float64{1, 2}
				return m
			},
		},
		{
			name: "duplicate title",
			mutate: func(m []Movie) []Movie {
				m[2].Title = m[0].Title
				return m
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.mutate(testMovies())); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestMovieGenres(t *testing.T) {
	m := Movie{Genre: "Action, Crime ,Drama"}

	genres := m.Genres()
	if len(genres) != 3 {
		t.Fatalf("Expected 3 genres, got %d: %v", len(genres), genres)
	}
	for i, want := range []string{"Action", "Crime", "Drama"} {
		if genres[i] != want {
			t.Errorf("Genre %d: expected %q, got %q", i, want, genres[i])
		}
	}

	if m.PrimaryGenre() != "Action" {
		t.Errorf("Expected primary genre 'Action', got %q", m.PrimaryGenre())
	}
	if !m.HasGenre("Crime") {
		t.Error("Expected movie to have genre 'Crime'")
	}
	if m.HasGenre("Comedy") {
		t.Error("Did not expect movie to have genre 'Comedy'")
	}

	empty := Movie{Genre: ""}
	if empty.PrimaryGenre() != "Unknown" {
		t.Errorf("Expected 'Unknown' for empty genre, got %q", empty.PrimaryGenre())
	}
}

func TestGenreOptions(t *testing.T) {
	ds, err := New(testMovies())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	options := ds.GenreOptions()
	ids := make([]string, 0, len(options))
	for _, o := range options {
		if o.ID != o.Text {
			t.Errorf("Expected id == text, got %q / %q", o.ID, o.Text)
		}
		ids = append(ids, o.ID)
	}

	if !sort.StringsAreSorted(ids) {
		t.Errorf("Expected alphabetically sorted genres, got %v", ids)
	}

	want := []string{"Action", "Comedy", "Crime", "Drama", "Horror", "Sci-Fi"}
	if len(ids) != len(want) {
		t.Fatalf("Expected %d unique genres, got %d: %v", len(want), len(ids), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("Genre %d: expected %q, got %q", i, want[i], ids[i])
		}
	}
}

func TestByTitle(t *testing.T) {
	ds, err := New(testMovies())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	movie, ok := ds.ByTitle("Alien")
	if !ok {
		t.Fatal("Expected to find 'Alien'")
	}
	if movie.Year != 1979 {
		t.Errorf("Expected year 1979, got %d", movie.Year)
	}

	if _, ok := ds.ByTitle("No Such Movie"); ok {
		t.Error("Did not expect to find 'No Such Movie'")
	}

	pos, ok := ds.PositionByTitle("Heat")
	if !ok || pos != 2 {
		t.Errorf("Expected position 2 for 'Heat', got %d (ok=%v)", pos, ok)
	}
}

func TestShuffledTitleOptions(t *testing.T) {
	ds, err := New(testMovies())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	options := ds.ShuffledTitleOptions()
	if len(options) != ds.Len() {
		t.Fatalf("Expected %d options, got %d", ds.Len(), len(options))
	}

	seen := make(map[string]bool)
	for _, o := range options {
		seen[o.ID] = true
	}
	for i := range ds.Movies {
		if !seen[ds.Movies[i].Title] {
			t.Errorf("Title %q missing from shuffled options", ds.Movies[i].Title)
		}
	}
}

func TestHasGenre(t *testing.T) {
	ds, err := New(testMovies())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if !ds.HasGenre("Sci-Fi") {
		t.Error("Expected dataset to have genre 'Sci-Fi'")
	}
	if ds.HasGenre("Western") {
		t.Error("Did not expect dataset to have genre 'Western'")
	}
}
