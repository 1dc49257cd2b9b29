// Package knowledge builds the assistant's grounding context by extracting
// text from PDF documents. The context is assembled once at startup and
// never mutated afterwards, so request handlers can share it without
// synchronization.
package knowledge

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Context is the immutable knowledge base handed to the prompt composer.
type Context struct {
	Text  string
	Files []string // basenames of the documents that contributed text
}

// FileResult reports the outcome of loading one document.
type FileResult struct {
	Path string
	Err  error
}

// Loader extracts text from PDF files. Extract is swappable so tests can
// stub extraction without real PDF fixtures.
type Loader struct {
	log *slog.Logger

	// Extract turns one file into text. Defaults to PDF page extraction.
	Extract func(path string) (string, error)
}

func NewLoader(log *slog.Logger) *Loader {
	return &Loader{log: log, Extract: extractPDF}
}

// Load extracts text from each path and concatenates the results with
// newline separators. A failing file is logged and skipped, never aborting
// the batch; per-file outcomes are returned alongside the context.
func (l *Loader) Load(paths []string) (Context, []FileResult) {
	var builder strings.Builder
	ctx := Context{}
	results := make([]FileResult, 0, len(paths))
	for _, path := range paths {
		text, err := l.Extract(path)
		results = append(results, FileResult{Path: path, Err: err})
		if err != nil {
			l.log.Warn("could not read document", "path", path, "err", err)
			continue
		}
		l.log.Info("processed document", "file", filepath.Base(path))
		builder.WriteString(text)
		builder.WriteString("\n")
		ctx.Files = append(ctx.Files, filepath.Base(path))
	}
	ctx.Text = builder.String()
	return ctx, results
}

// LoadOrPlaceholder loads the server's single knowledge document. A missing
// or unreadable file degrades to a placeholder context instead of failing
// startup; the assistant then answers from general knowledge only.
func (l *Loader) LoadOrPlaceholder(path string) Context {
	if _, err := os.Stat(path); err != nil {
		l.log.Error("knowledge document not found", "path", path)
		return Context{Text: fmt.Sprintf("Error: Could not find the knowledge document '%s'.", path)}
	}
	l.log.Info("loading knowledge base", "path", path)
	ctx, _ := l.Load([]string{path})
	if strings.TrimSpace(ctx.Text) == "" {
		l.log.Error("knowledge document could not be read or is empty", "path", path)
		return Context{Text: "Error: The provided PDF could not be read or is empty."}
	}
	l.log.Info("knowledge base loaded", "chars", len(ctx.Text))
	return ctx
}

// extractPDF pulls plain text out of a PDF page by page, skipping pages
// with no extractable text.
func extractPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var builder strings.Builder
	numPages := reader.NumPage()

	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() || page.V.Key("Contents").Kind() == pdf.Null {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}

	return builder.String(), nil
}
