package charts

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/award96/Movie-Script-Vector-Similarity/internal/dataset"
)

// Generator renders the static PNG charts shown on the stats page
type Generator struct {
	ds *dataset.Dataset
}

// NewGenerator creates a chart generator over the loaded dataset
func NewGenerator(ds *dataset.Dataset) *Generator {
	return &Generator{ds: ds}
}

// GenerateAll renders every stats chart, keyed by asset filename
func (g *Generator) GenerateAll() (map[string][]byte, error) {
	charts := make(map[string][]byte)

	genrePNG, err := g.GenreDistributionPNG()
	if err != nil {
		return nil, fmt.Errorf("failed to render genre distribution chart: %w", err)
	}
	charts["genre_distribution.png"] = genrePNG

	lengthPNG, err := g.ScriptLengthHistogramPNG()
	if err != nil {
		return nil, fmt.Errorf("failed to render script length histogram: %w", err)
	}
	charts["script_lengths.png"] = lengthPNG

	return charts, nil
}

// GenreDistributionPNG renders a bar chart of script counts per genre label
func (g *Generator) GenreDistributionPNG() ([]byte, error) {
	counts := make(map[string]int)
	for i := range g.ds.Movies {
		for _, genre := range g.ds.Movies[i].Genres() {
			counts[genre]++
		}
	}

	genres := make([]string, 0, len(counts))
	for genre := range counts {
		genres = append(genres, genre)
	}
	sort.Strings(genres)

	bars := make([]chart.Value, 0, len(genres))
	for _, genre := range genres {
		bars = append(bars, chart.Value{
			Value: float64(counts[genre]),
			Label: genre,
		})
	}

	graph := chart.BarChart{
		Title: "Scripts per Genre",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  20,
				Bottom: 60,
			},
		},
		Height:   400,
		Width:    900,
		BarWidth: 30,
		Bars:     bars,
		XAxis: chart.Style{
			FontSize: 10,
		},
		YAxis: chart.YAxis{
			Name: "Scripts",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
		},
	}

	return renderPNG(&graph)
}

// ScriptLengthHistogramPNG renders a histogram of script lengths in characters
func (g *Generator) ScriptLengthHistogramPNG() ([]byte, error) {
	minLen, maxLen := g.ds.Movies[0].ScriptLength, g.ds.Movies[0].ScriptLength
	for i := range g.ds.Movies {
		l := g.ds.Movies[i].ScriptLength
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}

	const buckets = 10
	width := (maxLen - minLen) / buckets
	if width == 0 {
		width = 1
	}

	counts := make([]int, buckets)
	for i := range g.ds.Movies {
		b := (g.ds.Movies[i].ScriptLength - minLen) / width
		if b >= buckets {
			b = buckets - 1
		}
		counts[b]++
	}

	bars := make([]chart.Value, 0, buckets)
	for b := 0; b < buckets; b++ {
		low := minLen + b*width
		bars = append(bars, chart.Value{
			Value: float64(counts[b]),
			Label: fmt.Sprintf("%dk", (low+width/2)/1000),
		})
	}

	graph := chart.BarChart{
		Title: "Script Length Distribution (chars)",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   40,
				Right:  20,
				Bottom: 40,
			},
		},
		Height:   400,
		Width:    700,
		BarWidth: 50,
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: "Scripts",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
		},
	}

	return renderPNG(&graph)
}

func renderPNG(graph *chart.BarChart) ([]byte, error) {
	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
