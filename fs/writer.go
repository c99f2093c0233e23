// Package fs exports extracted legal documents as text files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/legaldoc"
)

// URLToPath converts a document URL to a relative file path under its host.
// Example: https://example.com/legal/privacy → example.com/legal/privacy.txt
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if u.Host == "" {
		return "", legaldoc.Errorf(legaldoc.EINVALID, "URL %q has no host", rawURL)
	}

	host := strings.ReplaceAll(strings.ToLower(u.Host), ":", "_")
	path := strings.TrimPrefix(u.Path, "/")

	switch {
	case path == "":
		path = "index.txt"
	case strings.HasSuffix(path, "/"):
		path += "index.txt"
	default:
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
	}

	rel := filepath.Join(host, filepath.FromSlash(path))
	if !filepath.IsLocal(rel) {
		return "", legaldoc.Errorf(legaldoc.EINVALID, "URL %q escapes the output directory", rawURL)
	}
	return rel, nil
}

// FormatDocument formats a document with a YAML-style header.
func FormatDocument(doc *legaldoc.Document, extracted time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(doc.URL)
	b.WriteString("\ntype: ")
	b.WriteString(string(doc.Type))
	b.WriteString("\ntitle: ")
	b.WriteString(doc.Title)
	if doc.Language != "" {
		b.WriteString("\nlanguage: ")
		b.WriteString(doc.Language)
	}
	b.WriteString("\nextracted: ")
	b.WriteString(extracted.Format("2006-01-02"))
	b.WriteString("\n---\n\n")
	b.WriteString(doc.Content)
	b.WriteString("\n")
	return b.String()
}

// Ensure Writer implements legaldoc.DocumentWriter at compile time.
var _ legaldoc.DocumentWriter = (*Writer)(nil)

// Writer writes documents as text files to a directory.
type Writer struct {
	baseDir string

	// Now returns the extraction date written in the header.
	Now func() time.Time
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, Now: time.Now}
}

// WriteDocument writes a successfully extracted document to disk and returns
// the path of the written file.
func (w *Writer) WriteDocument(ctx context.Context, doc *legaldoc.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if doc.Failed() {
		return "", legaldoc.Errorf(legaldoc.EINVALID, "cannot write failed document %s", doc.URL)
	}

	relPath, err := URLToPath(doc.URL)
	if err != nil {
		return "", err
	}
	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", err
	}

	content := FormatDocument(doc, w.Now())
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
