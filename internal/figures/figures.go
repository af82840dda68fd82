package figures

import (
	"encoding/json"
	"fmt"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/dataset"
)

// Figure is a Plotly figure payload: a data series list plus a layout.
// It is built server-side and handed to the page's charting library
// unmodified, so everything stays in the wire shape Plotly expects.
type Figure struct {
	Data   []map[string]interface{} `json:"data"`
	Layout map[string]interface{}   `json:"layout"`
}

// JSON marshals the figure into its serialized payload form
func (f *Figure) JSON() (string, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("failed to marshal figure: %w", err)
	}
	return string(payload), nil
}

// Builder creates the UMAP projection figures for the plots page
type Builder struct {
	ds *dataset.Dataset
}

// NewBuilder creates a figure builder over the loaded dataset
func NewBuilder(ds *dataset.Dataset) *Builder {
	return &Builder{ds: ds}
}

// UMAPFigures builds the three plots-page figures in display order:
// genre overview, genre focus (for focusGenre), release-year scatter
func (b *Builder) UMAPFigures(focusGenre string) []*Figure {
	return []*Figure{
		b.OverviewScatter(),
		b.GenreFocusScatter(focusGenre),
		b.EraScatter(),
	}
}

// OverviewScatter plots every movie at its 2-D projection, one trace per
// primary genre so the legend doubles as a genre key
func (b *Builder) OverviewScatter() *Figure {
	type group struct {
		x, y  []float64
		text  []string
	}
	groups := make(map[string]*group)
	var order []string

	for i := range b.ds.Movies {
		m := &b.ds.Movies[i]
		genre := m.PrimaryGenre()
		g, ok := groups[genre]
		if !ok {
			g = &group{}
			groups[genre] = g
			order = append(order, genre)
		}
		g.x = append(g.x, m.UMAPX)
		g.y = append(g.y, m.UMAPY)
		g.text = append(g.text, m.Title)
	}

	data := make([]map[string]interface{}, 0, len(order))
	for _, genre := range order {
		g := groups[genre]
		data = append(data, map[string]interface{}{
			"type":      "scatter",
			"mode":      "markers",
			"name":      genre,
			"x":         g.x,
			"y":         g.y,
			"text":      g.text,
			"hoverinfo": "text+name",
			"marker":    map[string]interface{}{"size": 9},
		})
	}

	return &Figure{
		Data:   data,
		Layout: umapLayout("Script Embeddings, 2D Projection by Genre"),
	}
}

// GenreFocusScatter highlights movies tagged with the focus genre and dims
// the rest of the catalog. This is the figure the genre dropdown refreshes.
func (b *Builder) GenreFocusScatter(genre string) *Figure {
	var focusX, focusY, restX, restY []float64
	var focusText, restText []string

	for i := range b.ds.Movies {
		m := &b.ds.Movies[i]
		if genre != "" && m.HasGenre(genre) {
			focusX = append(focusX, m.UMAPX)
			focusY = append(focusY, m.UMAPY)
			focusText = append(focusText, m.Title)
		} else {
			restX = append(restX, m.UMAPX)
			restY = append(restY, m.UMAPY)
			restText = append(restText, m.Title)
		}
	}

	data := []map[string]interface{}{
		{
			"type":      "scatter",
			"mode":      "markers",
			"name":      "Other genres",
			"x":         restX,
			"y":         restY,
			"text":      restText,
			"hoverinfo": "text",
			"marker": map[string]interface{}{
				"size":    7,
				"color":   "#b0b0b0",
				"opacity": 0.35,
			},
		},
		{
			"type":      "scatter",
			"mode":      "markers",
			"name":      genre,
			"x":         focusX,
			"y":         focusY,
			"text":      focusText,
			"hoverinfo": "text",
			"marker": map[string]interface{}{
				"size":  10,
				"color": "#d62728",
			},
		},
	}

	title := "Genre Focus"
	if genre != "" {
		title = fmt.Sprintf("Movies Tagged %s", genre)
	}
	return &Figure{Data: data, Layout: umapLayout(title)}
}

// EraScatter plots the projection colored by release year
func (b *Builder) EraScatter() *Figure {
	n := b.ds.Len()
	x := make([]float64, 0, n)
	y := make([]float64, 0, n)
	years := make([]int, 0, n)
	text := make([]string, 0, n)

	for i := range b.ds.Movies {
		m := &b.ds.Movies[i]
		x = append(x, m.UMAPX)
		y = append(y, m.UMAPY)
		years = append(years, m.Year)
		text = append(text, fmt.Sprintf("%s (%d)", m.Title, m.Year))
	}

	data := []map[string]interface{}{
		{
			"type":      "scatter",
			"mode":      "markers",
			"x":         x,
			"y":         y,
			"text":      text,
			"hoverinfo": "text",
			"marker": map[string]interface{}{
				"size":       9,
				"color":      years,
				"colorscale": "Viridis",
				"colorbar":   map[string]interface{}{"title": "Year"},
				"showscale":  true,
			},
		},
	}

	return &Figure{Data: data, Layout: umapLayout("Script Embeddings, 2D Projection by Release Year")}
}

// umapLayout is the shared layout for the projection scatters
func umapLayout(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":     map[string]interface{}{"text": title},
		"xaxis":     map[string]interface{}{"title": "UMAP 1", "zeroline": false},
		"yaxis":     map[string]interface{}{"title": "UMAP 2", "zeroline": false},
		"hovermode": "closest",
		"margin":    map[string]interface{}{"t": 60, "r": 20, "b": 50, "l": 55},
	}
}
