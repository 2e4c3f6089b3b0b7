package site

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed index.tmpl
var indexTemplate string

// Renderer renders the landing page from content data. Markdown fields
// are converted with goldmark before template execution.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template
}

// NewRenderer creates a new landing page renderer.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}

	tmpl, err := template.New("index").Funcs(template.FuncMap{
		"markdown": r.renderMarkdown,
		"stars":    renderStars,
		"inc":      func(i int) int { return i + 1 },
	}).Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	r.tmpl = tmpl

	return r, nil
}

// RenderIndex renders the full landing page to a string. The page is
// rendered once at startup and served as-is afterwards.
func (r *Renderer) RenderIndex(content Content) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, content); err != nil {
		return "", fmt.Errorf("failed to render index: %w", err)
	}
	return buf.String(), nil
}

// renderMarkdown converts Markdown section copy to HTML.
func (r *Renderer) renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// renderStars returns a 5-slot star string for a testimonial rating.
func renderStars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	stars := ""
	for i := 0; i < 5; i++ {
		if i < rating {
			stars += "★"
		} else {
			stars += "☆"
		}
	}
	return stars
}
