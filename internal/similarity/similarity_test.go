package similarity

import (
	"math"
	"testing"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/dataset"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	ds, err := dataset.New([]dataset.Movie{
		{Index: 0, Title: "Origin", Genre: "Drama", Year: 1990, ScriptLength: 100000,
			Embedding: []float64{1, 0}, UMAPX: 0, UMAPY: 0},
		{Index: 1, Title: "Near", Genre: "Drama", Year: 1991, ScriptLength: 100000,
			Embedding: []float64{1, 0.1}, UMAPX: 1, UMAPY: 0},
		{Index: 2, Title: "Far", Genre: "Horror", Year: 1992, ScriptLength: 100000,
			Embedding: []float64{-1, 0}, UMAPX: 2, UMAPY: 0},
	})
	if err != nil {
		t.Fatalf("dataset.New failed: %v", err)
	}
	return NewIndex(ds)
}

func TestMatchesRankingByDistance(t *testing.T) {
	idx := testIndex(t)

	matches, err := idx.Matches("Origin", MetricDistance)
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("Expected 2 matches (query excluded), got %d", len(matches))
	}
	if matches[0].Title != "Near" {
		t.Errorf("Expected 'Near' ranked first by distance, got %q", matches[0].Title)
	}
	if matches[1].Title != "Far" {
		t.Errorf("Expected 'Far' ranked last by distance, got %q", matches[1].Title)
	}
	if matches[0].Distance >= matches[1].Distance {
		t.Errorf("Expected ascending distances, got %f then %f",
			matches[0].Distance, matches[1].Distance)
	}
}

func TestMatchesMetricValues(t *testing.T) {
	idx := testIndex(t)

	matches, err := idx.Matches("Origin", MetricDistance)
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}

	// Origin=(1,0) vs Far=(-1,0): distance 2, dot product -1, cosine -1
	var far *Match
	for i := range matches {
		if matches[i].Title == "Far" {
			far = &matches[i]
		}
	}
	if far == nil {
		t.Fatal("'Far' missing from matches")
	}

	if math.Abs(far.Distance-2.0) > 1e-9 {
		t.Errorf("Expected distance 2.0, got %f", far.Distance)
	}
	if math.Abs(far.Dotproduct-(-1.0)) > 1e-9 {
		t.Errorf("Expected dot product -1.0, got %f", far.Dotproduct)
	}
	if math.Abs(far.Cosine-(-1.0)) > 1e-9 {
		t.Errorf("Expected cosine -1.0, got %f", far.Cosine)
	}
}

func TestMatchesRankingByCosine(t *testing.T) {
	idx := testIndex(t)

	matches, err := idx.Matches("Origin", MetricCosine)
	if err != nil {
		t.Fatalf("Matches failed: %v", err)
	}

	if matches[0].Title != "Near" {
		t.Errorf("Expected 'Near' ranked first by cosine, got %q", matches[0].Title)
	}
	if matches[0].Cosine < matches[1].Cosine {
		t.Errorf("Expected descending cosine, got %f then %f",
			matches[0].Cosine, matches[1].Cosine)
	}
}

func TestMatchesErrors(t *testing.T) {
	idx := testIndex(t)

	if _, err := idx.Matches("No Such Movie", MetricDistance); err == nil {
		t.Error("Expected error for unknown title, got nil")
	}
	if _, err := idx.Matches("Origin", "Manhattan"); err == nil {
		t.Error("Expected error for unknown metric, got nil")
	}
}

func TestNearestToVector(t *testing.T) {
	idx := testIndex(t)

	matches, err := idx.NearestToVector([]float64{1, 0}, MetricCosine, 2)
	if err != nil {
		t.Fatalf("NearestToVector failed: %v", err)
	}

	if len(matches) != 2 {
		t.Fatalf("Expected limit of 2 matches, got %d", len(matches))
	}
	// The query equals Origin's embedding, so Origin itself ranks first
	if matches[0].Title != "Origin" {
		t.Errorf("Expected 'Origin' first, got %q", matches[0].Title)
	}
	if math.Abs(matches[0].Cosine-1.0) > 1e-9 {
		t.Errorf("Expected cosine 1.0 for identical vector, got %f", matches[0].Cosine)
	}
}

func TestNearestToVectorDimensionMismatch(t *testing.T) {
	idx := testIndex(t)

	if _, err := idx.NearestToVector([]float64{1, 0, 0}, MetricCosine, 5); err == nil {
		t.Error("Expected error for dimension mismatch, got nil")
	}
}

func TestMetrics(t *testing.T) {
	metrics := Metrics()
	if len(metrics) != 3 {
		t.Fatalf("Expected 3 metrics, got %d", len(metrics))
	}
	for _, m := range metrics {
		if !validMetric(m) {
			t.Errorf("Metric %q not accepted by validMetric", m)
		}
	}
}
