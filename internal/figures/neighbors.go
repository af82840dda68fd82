package figures

import (
	"fmt"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/similarity"
)

// NeighborScatter plots every ranked neighbor of a movie with Distance on x,
// Dotproduct on y, Cosine as color and Dotproduct as marker size
func NeighborScatter(title string, matches []similarity.Match) *Figure {
	n := len(matches)
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	cosines := make([]float64, 0, n)
	sizes := make([]float64, 0, n)
	text := make([]string, 0, n)

	maxDot := 0.0
	for _, m := range matches {
		if m.Dotproduct > maxDot {
			maxDot = m.Dotproduct
		}
	}

	for _, m := range matches {
		x = append(x, m.Distance)
		y = append(y, m.Dotproduct)
		cosines = append(cosines, m.Cosine)
		text = append(text, m.Title)
		// marker area tracks the dot product, floored so weak matches stay visible
		size := 6.0
		if maxDot > 0 {
			size = 6 + 14*(m.Dotproduct/maxDot)
		}
		sizes = append(sizes, size)
	}

	data := []map[string]interface{}{
		{
			"type":         "scatter",
			"mode":         "markers+text",
			"x":            x,
			"y":            y,
			"text":         text,
			"textposition": "top center",
			"hoverinfo":    "text+x+y",
			"marker": map[string]interface{}{
				"size":       sizes,
				"color":      cosines,
				"colorscale": "Blues",
				"colorbar":   map[string]interface{}{"title": "Cosine"},
				"showscale":  true,
			},
		},
	}

	layout := map[string]interface{}{
		"title":     map[string]interface{}{"text": fmt.Sprintf("Nearest Neighbors to %s", title)},
		"xaxis":     map[string]interface{}{"title": similarity.MetricDistance},
		"yaxis":     map[string]interface{}{"title": similarity.MetricDotproduct},
		"hovermode": "closest",
		"margin":    map[string]interface{}{"t": 60, "r": 20, "b": 50, "l": 55},
	}

	return &Figure{Data: data, Layout: layout}
}

// CorrelationHeatmap renders the pairwise Pearson correlation of the three
// similarity metrics over a movie's ranked neighbors
func CorrelationHeatmap(title string, matches []similarity.Match) *Figure {
	corr := similarity.CorrelationMatrix(matches)

	data := []map[string]interface{}{
		{
			"type":       "heatmap",
			"z":          corr,
			"x":          similarity.CorrelationLabels,
			"y":          similarity.CorrelationLabels,
			"colorscale": "Portland",
			"zmin":       -1,
			"zmax":       1,
		},
	}

	layout := map[string]interface{}{
		"title": map[string]interface{}{
			"text": fmt.Sprintf("Similarity Metrics Correlation Heatmap<br>for %s", title),
		},
		"xaxis":  map[string]interface{}{"title": "Metric"},
		"yaxis":  map[string]interface{}{"title": "Metric"},
		"margin": map[string]interface{}{"t": 80, "r": 20, "b": 50, "l": 90},
	}

	return &Figure{Data: data, Layout: layout}
}
