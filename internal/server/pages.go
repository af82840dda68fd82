package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

// pageNames lists every template file the renderer loads at startup
var pageNames = []string{"index.html", "umap_plots.html", "stats.html", "about.html"}

// templateDirCandidates covers running from the repo root and from package
// directories during tests
var templateDirCandidates = []string{
	filepath.Join("internal", "templates"),
	filepath.Join("..", "templates"),
	"templates",
}

// pageRenderer loads and executes the HTML page templates
type pageRenderer struct {
	templates map[string]*template.Template
	markdown  goldmark.Markdown
}

// newPageRenderer parses every page template from the templates directory
func newPageRenderer() (*pageRenderer, error) {
	dir, err := findTemplateDir()
	if err != nil {
		return nil, err
	}

	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}
		tpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tpl
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
		),
	)

	return &pageRenderer{templates: templates, markdown: md}, nil
}

func findTemplateDir() (string, error) {
	for _, dir := range templateDirCandidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", fmt.Errorf("templates directory not found in %v", templateDirCandidates)
}

// render executes a page template into the response
func (p *pageRenderer) render(w http.ResponseWriter, name string, data interface{}) error {
	tpl, ok := p.templates[name]
	if !ok {
		return fmt.Errorf("unknown page template %s", name)
	}

	// Buffer so a template failure can still produce a 500 instead of a
	// half-written page
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(buf.Bytes())
	return err
}

// renderMarkdown converts a markdown document to HTML for the about page
func (p *pageRenderer) renderMarkdown(source []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := p.markdown.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
