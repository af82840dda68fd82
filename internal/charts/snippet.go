package charts

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	chartrender "github.com/go-echarts/go-echarts/v2/render"
)

// ChartSnippet is an embeddable chart fragment: a root div plus the script
// block that initializes the chart inside it. The page is expected to load
// the echarts runtime itself.
type ChartSnippet struct {
	ID   string
	HTML template.HTML
}

// snippetTpl renders only the chart div and init script, not a full page
const snippetTpl = `{{- define "chart" }}
<div id="{{ .ChartID }}" style="width:900px;height:420px;"></div>
<script type="text/javascript">
"use strict";
(function(){
  var el = document.getElementById('{{ .ChartID | safeJS }}');
  if (!el) return;
  var c = echarts.init(el);
  var option = {{ .JSONNotEscaped | safeJS }};
  c.setOption(option);
  window.addEventListener('resize', function(){ c.resize(); });
})();
</script>
{{ end }}`

// embedRenderer renders a go-echarts chart as an embeddable snippet instead
// of a standalone HTML page
type embedRenderer struct {
	c      interface{}
	before []func()
}

func newEmbedRenderer(c interface{}, before ...func()) chartrender.Renderer {
	return &embedRenderer{c: c, before: before}
}

func (r *embedRenderer) Render(w io.Writer) error {
	for _, fn := range r.before {
		fn()
	}

	tpl := template.Must(template.New("chart").
		Funcs(template.FuncMap{
			"safeJS": func(s interface{}) template.JS {
				return template.JS(fmt.Sprint(s))
			},
		}).
		Parse(snippetTpl))

	return tpl.ExecuteTemplate(w, "chart", r.c)
}

func (r *embedRenderer) RenderContent() []byte {
	var buf bytes.Buffer
	if err := r.Render(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

func (r *embedRenderer) RenderSnippet() chartrender.ChartSnippet {
	return chartrender.ChartSnippet{Element: string(r.RenderContent())}
}

// GenreBarSnippet builds the interactive scripts-per-genre bar for the
// stats page
func (g *Generator) GenreBarSnippet() (ChartSnippet, error) {
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

	values := make([]opts.BarData, 0, len(genres))
	for _, genre := range genres {
		values = append(values, opts.BarData{Value: counts[genre]})
	}

	bar := charts.NewBar()
	bar.Renderer = newEmbedRenderer(bar, bar.Validate)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Scripts per Genre"}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	bar.SetXAxis(genres).AddSeries("Scripts", values)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return ChartSnippet{}, fmt.Errorf("failed to render genre bar snippet: %w", err)
	}

	return ChartSnippet{
		ID:   bar.ChartID,
		HTML: template.HTML(buf.String()),
	}, nil
}
