package similarity

import (
	"fmt"
	"math"
	"sort"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/dataset"
	"github.com/award96/Movie-Script-Vector-Similarity/internal/logger"
)

// Metric names. Distance ranks ascending, the other two descending.
const (
	MetricDistance   = "Distance"
	MetricDotproduct = "Dotproduct"
	MetricCosine     = "Cosine"
)

// Match is one ranked neighbor with all three metric values
type Match struct {
	Title      string  `json:"movie_title"`
	Year       int     `json:"year"`
	Distance   float64 `json:"Distance"`
	Dotproduct float64 `json:"Dotproduct"`
	Cosine     float64 `json:"Cosine"`
}

// Index holds precomputed all-pairs similarity matrices for the dataset.
// The catalog is small (about a hundred scripts), so the full n^2 tables
// are computed once at startup.
type Index struct {
	ds         *dataset.Dataset
	distance   [][]float64
	dotproduct [][]float64
	cosine     [][]float64
}

// NewIndex precomputes Distance, Dotproduct and Cosine for every movie pair
func NewIndex(ds *dataset.Dataset) *Index {
	n := ds.Len()
	idx := &Index{
		ds:         ds,
		distance:   newMatrix(n),
		dotproduct: newMatrix(n),
		cosine:     newMatrix(n),
	}

	norms := make([]float64, n)
	for i := 0; i < n; i++ {
		norms[i] = norm(ds.Movies[i].Embedding)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dot := dotProduct(ds.Movies[i].Embedding, ds.Movies[j].Embedding)
			dist := euclidean(ds.Movies[i].Embedding, ds.Movies[j].Embedding)
			cos := 0.0
			if norms[i] > 0 && norms[j] > 0 {
				cos = dot / (norms[i] * norms[j])
			}

			idx.dotproduct[i][j], idx.dotproduct[j][i] = dot, dot
			idx.distance[i][j], idx.distance[j][i] = dist, dist
			idx.cosine[i][j], idx.cosine[j][i] = cos, cos
		}
	}

	logger.WithComponent("similarity").Info("Similarity matrices precomputed",
		map[string]interface{}{"movies": n, "pairs": n * n})
	return idx
}

// Matches returns every other movie with all three metric values, ranked by
// the given metric (ascending for Distance, descending otherwise)
func (idx *Index) Matches(title, metric string) ([]Match, error) {
	i, ok := idx.ds.PositionByTitle(title)
	if !ok {
		return nil, fmt.Errorf("unknown movie title %q", title)
	}
	if !validMetric(metric) {
		return nil, fmt.Errorf("unknown similarity metric %q", metric)
	}
	matches := make([]Match, 0, idx.ds.Len()-1)
	for j := range idx.ds.Movies {
		if j == i {
			continue
		}
		matches = append(matches, Match{
			Title:      idx.ds.Movies[j].Title,
			Year:       idx.ds.Movies[j].Year,
			Distance:   idx.distance[i][j],
			Dotproduct: idx.dotproduct[i][j],
			Cosine:     idx.cosine[i][j],
		})
	}

	sortMatches(matches, metric)
	return matches, nil
}

// NearestToVector ranks the whole catalog against an arbitrary query vector.
// Used by semantic search, where the query embedding comes from the API.
func (idx *Index) NearestToVector(vec []float64, metric string, limit int) ([]Match, error) {
	if len(vec) != idx.ds.EmbeddingDim() {
		return nil, fmt.Errorf("query vector dimension %d, dataset uses %d",
			len(vec), idx.ds.EmbeddingDim())
	}
	if !validMetric(metric) {
		return nil, fmt.Errorf("unknown similarity metric %q", metric)
	}

	queryNorm := norm(vec)
	matches := make([]Match, 0, idx.ds.Len())
	for j := range idx.ds.Movies {
		emb := idx.ds.Movies[j].Embedding
		dot := dotProduct(vec, emb)
		cos := 0.0
		if n := norm(emb); queryNorm > 0 && n > 0 {
			cos = dot / (queryNorm * n)
		}
		matches = append(matches, Match{
			Title:      idx.ds.Movies[j].Title,
			Year:       idx.ds.Movies[j].Year,
			Distance:   euclidean(vec, emb),
			Dotproduct: dot,
			Cosine:     cos,
		})
	}

	sortMatches(matches, metric)
	if limit > 0 && limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, nil
}

// Metrics lists the supported metric names
func Metrics() []string {
	return []string{MetricDistance, MetricDotproduct, MetricCosine}
}

func validMetric(metric string) bool {
	return metric == MetricDistance || metric == MetricDotproduct || metric == MetricCosine
}

func sortMatches(matches []Match, metric string) {
	sort.SliceStable(matches, func(a, b int) bool {
		switch metric {
		case MetricDistance:
			return matches[a].Distance < matches[b].Distance
		case MetricDotproduct:
			return matches[a].Dotproduct > matches[b].Dotproduct
		default:
			return matches[a].Cosine > matches[b].Cosine
		}
	})
}

func newMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

func dotProduct(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func euclidean(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func norm(a []float64) float64 {
	return math.Sqrt(dotProduct(a, a))
}
