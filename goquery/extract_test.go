package goquery_test

import (
	"testing"

	"github.com/fwojciec/legaldoc"
	"github.com/fwojciec/legaldoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkScanner_ScanLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<footer>
	<a href="/privacy-policy">Privacy Policy</a>
	<a href="terms">Terms</a>
</footer>
</body></html>`

		s := goquery.NewLinkScanner()
		links, err := s.ScanLinks(html, "https://example.com/en/")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, legaldoc.Link{
			URL:  "https://example.com/privacy-policy",
			Href: "/privacy-policy",
			Text: "Privacy Policy",
		}, links[0])
		assert.Equal(t, "https://example.com/en/terms", links[1].URL)
	})

	t.Run("keeps duplicates in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="/privacy">Privacy</a>
<a href="/terms">Terms</a>
<a href="https://example.com/privacy">Privacy again</a>
</body></html>`

		s := goquery.NewLinkScanner()
		links, err := s.ScanLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, "https://example.com/privacy", links[0].URL)
		assert.Equal(t, "https://example.com/terms", links[1].URL)
		assert.Equal(t, "https://example.com/privacy", links[2].URL)
	})

	t.Run("strips fragments", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/privacy#cookies">Cookies</a>`

		s := goquery.NewLinkScanner()
		links, err := s.ScanLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/privacy", links[0].URL)
		assert.Equal(t, "/privacy#cookies", links[0].Href)
	})

	t.Run("skips non-HTTP and empty links", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="mailto:privacy@example.com">Privacy contact</a>
<a href="javascript:void(0)">Cookie settings</a>
<a href="tel:+33100000000">Call</a>
<a href="">Empty</a>
<a>No href</a>
<a href="ftp://example.com/terms.txt">Terms</a>
<a href="/legal">Legal</a>
</body></html>`

		s := goquery.NewLinkScanner()
		links, err := s.ScanLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://example.com/legal", links[0].URL)
	})

	t.Run("keeps external links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://policies.parent.com/privacy">Privacy Policy</a>`

		s := goquery.NewLinkScanner()
		links, err := s.ScanLinks(html, "https://example.com")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "https://policies.parent.com/privacy", links[0].URL)
	})

	t.Run("collapses whitespace in link text", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/cgu">
			Conditions
			<span>générales</span>   d'utilisation
		</a>`

		s := goquery.NewLinkScanner()
		links, err := s.ScanLinks(html, "https://example.fr")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "Conditions générales d'utilisation", links[0].Text)
	})

	t.Run("returns error for invalid base URL", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewLinkScanner()
		_, err := s.ScanLinks(`<a href="/x">x</a>`, "://bad")

		require.Error(t, err)
		assert.Equal(t, legaldoc.EINVALID, legaldoc.ErrorCode(err))
	})

	t.Run("returns no links for page without anchors", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewLinkScanner()
		links, err := s.ScanLinks(`<html><body><p>Nothing here</p></body></html>`, "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
