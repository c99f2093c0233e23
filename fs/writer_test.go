package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/legaldoc"
	"github.com/fwojciec/legaldoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLToPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "simple path",
			url:  "https://example.com/legal/privacy",
			want: "example.com/legal/privacy.txt",
		},
		{
			name: "trailing slash becomes index",
			url:  "https://example.com/terms/",
			want: "example.com/terms/index.txt",
		},
		{
			name: "root becomes index",
			url:  "https://example.com",
			want: "example.com/index.txt",
		},
		{
			name: "replaces extension",
			url:  "https://example.com/cgu.html",
			want: "example.com/cgu.txt",
		},
		{
			name: "ignores query and fragment",
			url:  "https://example.com/privacy?lang=en#cookies",
			want: "example.com/privacy.txt",
		},
		{
			name: "lower-cases host and escapes port",
			url:  "https://Example.com:8443/terms",
			want: "example.com_8443/terms.txt",
		},
		{
			name:    "rejects missing host",
			url:     "/privacy",
			wantErr: true,
		},
		{
			name:    "rejects paths escaping the directory",
			url:     "https://example.com/../../etc/passwd",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.URLToPath(tt.url)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.want), got)
		})
	}
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	doc := &legaldoc.Document{
		URL:      "https://example.com/privacy",
		Type:     legaldoc.TypePrivacy,
		Title:    "Privacy Policy",
		Content:  "We collect your email address.",
		Language: "en",
		Status:   legaldoc.StatusSuccess,
	}

	got := fs.FormatDocument(doc, time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC))

	want := `---
source: https://example.com/privacy
type: privacy
title: Privacy Policy
language: en
extracted: 2026-01-08
---

We collect your email address.
`
	assert.Equal(t, want, got)
}

func TestWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	fixed := func() time.Time { return time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC) }

	t.Run("writes document under its host", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)
		w.Now = fixed

		doc := &legaldoc.Document{
			URL:     "https://example.com/legal/terms",
			Type:    legaldoc.TypeTerms,
			Title:   "Terms",
			Content: "Be nice.",
			Status:  legaldoc.StatusSuccess,
		}

		path, err := w.WriteDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(baseDir, "example.com", "legal", "terms.txt"), path)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "---\nsource: https://example.com/legal/terms\ntype: terms\ntitle: Terms\nextracted: 2026-01-08\n---\n\nBe nice.\n", string(content))
	})

	t.Run("refuses failed documents", func(t *testing.T) {
		t.Parallel()

		baseDir := t.TempDir()
		w := fs.NewWriter(baseDir)

		doc := &legaldoc.Document{
			URL:    "https://example.com/terms",
			Type:   legaldoc.TypeTerms,
			Title:  legaldoc.ExtractionErrorTitle,
			Status: legaldoc.StatusFailed,
		}

		_, err := w.WriteDocument(context.Background(), doc)

		require.Error(t, err)
		assert.Equal(t, legaldoc.EINVALID, legaldoc.ErrorCode(err))
		entries, err := os.ReadDir(baseDir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("stops when canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewWriter(t.TempDir()).WriteDocument(ctx, &legaldoc.Document{URL: "https://example.com/terms"})

		require.ErrorIs(t, err, context.Canceled)
	})
}
