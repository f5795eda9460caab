package tui

import (
	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"html/template"
	"strings"
	"sync"
)

// MarkdownTarget keeps the rendered HTML of a run and its markdown form
// for the terminal.
type MarkdownTarget struct {
	mu       sync.Mutex
	html     strings.Builder
	markdown string
}

func (t *MarkdownTarget) Replace(fragment template.HTML) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.html.Reset()
	t.html.WriteString(string(fragment))
	t.convert()
}

func (t *MarkdownTarget) Append(fragment template.HTML) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.html.WriteString(string(fragment))
	t.convert()
}

func (t *MarkdownTarget) Markdown() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.markdown
}

func (t *MarkdownTarget) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.html.Reset()
	t.markdown = ""
}

// convert must be called with mu held.
func (t *MarkdownTarget) convert() {
	md, err := htmltomarkdown.ConvertString(t.html.String())
	if err != nil {
		t.markdown = t.html.String()
		return
	}
	t.markdown = strings.TrimSpace(md)
}
