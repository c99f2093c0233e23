package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/legaldoc"
	main "github.com/fwojciec/legaldoc/cmd/legaldoc"
	"github.com/fwojciec/legaldoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	extraction := &legaldoc.Extraction{
		URL:    "https://example.com",
		Domain: "example.com",
		Documents: []*legaldoc.Document{
			{Type: legaldoc.TypePrivacy, URL: "https://example.com/privacy", Title: "Privacy", Content: "Text.", Language: "en", Status: legaldoc.StatusSuccess},
			{Type: legaldoc.TypeTerms, URL: "https://example.com/terms", Title: legaldoc.ExtractionErrorTitle, Status: legaldoc.StatusFailed, Reason: "HTTP 500 for https://example.com/terms"},
		},
		Discovery: &legaldoc.Discovery{
			Method:  legaldoc.MethodCommonPaths,
			SeedErr: errors.New("timeout"),
			Probes: []legaldoc.ProbeResult{
				{Path: "/terms", Status: legaldoc.StatusSuccess},
				{Path: "/cgu", Status: legaldoc.StatusSkipped, Reason: "not found"},
			},
		},
	}
	extractor := &mock.DocumentExtractor{
		ExtractAllFn: func(_ context.Context, rawURL string) (*legaldoc.Extraction, error) {
			return extraction, nil
		},
	}

	t.Run("prints documents with status and details", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Extractor: extractor}

		err := (&main.ExtractCmd{URL: "example.com", Probes: true}).Run(deps)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "Method:    common-paths")
		assert.Contains(t, output, "Seed:      timeout")
		assert.Contains(t, output, "- /cgu")
		assert.Contains(t, output, "(not found)")
		assert.Contains(t, output, "Documents: 2")
		assert.Contains(t, output, "+ [Privacy policy] Privacy")
		assert.Contains(t, output, "(5 chars, en)")
		assert.Contains(t, output, "! [Terms of use] Extraction error")
		assert.Contains(t, output, "HTTP 500")
	})

	t.Run("prints JSON", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: stdout, Stderr: &bytes.Buffer{}, Extractor: extractor}

		err := (&main.ExtractCmd{URL: "example.com", JSON: true}).Run(deps)

		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, "example.com", got["domain"])
		assert.Len(t, got["documents"], 2)
	})

	t.Run("exports successful documents", func(t *testing.T) {
		t.Parallel()

		var dir string
		var urls []string
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Extractor: extractor,
			NewWriter: func(d string) legaldoc.DocumentWriter {
				dir = d
				return &mock.DocumentWriter{
					WriteDocumentFn: func(_ context.Context, doc *legaldoc.Document) (string, error) {
						urls = append(urls, doc.URL)
						return d + "/example.com/privacy.txt", nil
					},
				}
			},
		}

		err := (&main.ExtractCmd{URL: "example.com", Out: "/tmp/out"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/tmp/out", dir)
		assert.Equal(t, []string{"https://example.com/privacy"}, urls)
		assert.Contains(t, stdout.String(), "Wrote 1 documents to /tmp/out")
	})

	t.Run("reports when nothing is found", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Extractor: &mock.DocumentExtractor{
				ExtractAllFn: func(context.Context, string) (*legaldoc.Extraction, error) {
					return &legaldoc.Extraction{Domain: "example.com", Documents: []*legaldoc.Document{}}, nil
				},
			},
		}

		err := (&main.ExtractCmd{URL: "example.com"}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No legal documents found on example.com.")
	})

	t.Run("returns error when canceled", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Extractor: &mock.DocumentExtractor{
				ExtractAllFn: func(context.Context, string) (*legaldoc.Extraction, error) {
					return &legaldoc.Extraction{}, context.Canceled
				},
			},
		}

		err := (&main.ExtractCmd{URL: "example.com"}).Run(deps)

		require.ErrorIs(t, err, context.Canceled)
		assert.Contains(t, stderr.String(), "context canceled")
	})
}
