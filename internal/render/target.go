package render

import (
	"html/template"
	"strings"
	"sync"
)

// Target is a display region. Replace swaps its whole content, Append adds
// to the end.
type Target interface {
	Replace(fragment template.HTML)
	Append(fragment template.HTML)
}

// Buffer is an in-memory Target, safe for concurrent readers.
type Buffer struct {
	mu     sync.Mutex
	b      strings.Builder
	writes int
}

func (b *Buffer) Replace(fragment template.HTML) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.b.Reset()
	b.b.WriteString(string(fragment))
	b.writes++
}

func (b *Buffer) Append(fragment template.HTML) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.b.WriteString(string(fragment))
	b.writes++
}

// HTML returns the current content for embedding into a page.
func (b *Buffer) HTML() template.HTML {
	return template.HTML(b.String())
}

func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Writes counts Replace and Append calls since creation.
func (b *Buffer) Writes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writes
}
