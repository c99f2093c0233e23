package main_test

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/fwojciec/legaldoc"
	main "github.com/fwojciec/legaldoc/cmd/legaldoc"
	"github.com/fwojciec/legaldoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// site returns a fetcher and prober serving a small website from memory.
func site() (*mock.Fetcher, *mock.Prober) {
	pages := map[string]string{
		"https://example.com": `<html><body><footer>
			<a href="/privacy">Privacy Policy</a>
			<a href="/terms">Terms of Service</a>
		</footer></body></html>`,
		"https://example.com/privacy": `<html><head><title>Privacy</title></head><body><main><p>We collect your email address.</p></main></body></html>`,
		"https://example.com/terms":   `<html><head><title>Terms</title></head><body><main><p>You agree to behave.</p></main></body></html>`,
	}
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			html, ok := pages[url]
			if !ok {
				return "", fmt.Errorf("HTTP 404 for %s", url)
			}
			return html, nil
		},
	}
	prober := &mock.Prober{
		ProbeFn: func(_ context.Context, _ string) (bool, error) {
			return false, nil
		},
	}
	return fetcher, prober
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns error without a command", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "analyze")
		assert.Contains(t, output, "--concurrency")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Fetcher, m.Prober = site()

		err := m.Run(context.Background(), []string{"--log-level", "loud", "extract", "example.com"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("extracts a site without opening the database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = "/nonexistent/path/db.sqlite"
		m.Fetcher, m.Prober = site()
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--rate", "0", "extract", "example.com"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Nil(t, m.DB)
		output := stdout.String()
		assert.Contains(t, output, "Domain:    example.com")
		assert.Contains(t, output, "Method:    links")
		assert.Contains(t, output, "[Privacy policy] Privacy")
		assert.Contains(t, output, "[Terms of use] Terms")
	})

	t.Run("analyzes, shows, lists and deletes", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "legaldoc.db")
		newMain := func() *main.Main {
			m := main.NewMain()
			m.DBPath = dbPath
			m.Fetcher, m.Prober = site()
			m.Summarizer = &mock.Summarizer{
				SummarizeFn: func(_ context.Context, docs []*legaldoc.Document, domain string) (*legaldoc.Report, error) {
					return &legaldoc.Report{
						Summary:          fmt.Sprintf("%d documents from %s.", len(docs), domain),
						KeyPoints:        []string{"Email is collected"},
						ReadabilityScore: 8,
						RiskLevel:        legaldoc.RiskLow,
					}, nil
				},
			}
			return m
		}
		ctx := context.Background()

		stdout := &bytes.Buffer{}
		err := newMain().Run(ctx, []string{"--rate", "0", "analyze", "https://example.com"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "2 documents from example.com.")
		assert.Contains(t, stdout.String(), "Risk:         low")

		stdout.Reset()
		err = newMain().Run(ctx, []string{"show", "example.com"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Email is collected")
		assert.Contains(t, stdout.String(), "Documents (2)")

		stdout.Reset()
		err = newMain().Run(ctx, []string{"list"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "example.com")

		stdout.Reset()
		err = newMain().Run(ctx, []string{"delete", "--force", "example.com"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		stderr := &bytes.Buffer{}
		err = newMain().Run(ctx, []string{"show", "example.com"}, &bytes.Buffer{}, stderr)
		require.Error(t, err)
		assert.Equal(t, legaldoc.ENOTFOUND, legaldoc.ErrorCode(err))
	})
}
