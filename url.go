package legaldoc

import (
	"net/url"
	"strings"
)

// NormalizeURL coerces user input into an absolute URL.
// Input without an http:// or https:// scheme gets https:// prepended.
// Reachability is not validated; malformed input is returned best-effort
// and surfaces later as a fetch failure.
func NormalizeURL(input string) string {
	input = strings.TrimSpace(input)
	lower := strings.ToLower(input)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return input
	}
	return "https://" + input
}

// DomainOf returns the lower-cased authority of rawURL (host, plus port if
// present). Scheme, path, query and fragment are discarded.
func DomainOf(rawURL string) string {
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		return strings.ToLower(u.Host)
	}

	// Best effort for input url.Parse rejects (e.g. spaces in the host).
	host := rawURL
	if i := strings.Index(host, "://"); i >= 0 {
		host = host[i+3:]
	}
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndex(host, "@"); i >= 0 {
		host = host[i+1:]
	}
	return strings.ToLower(strings.TrimSpace(host))
}
