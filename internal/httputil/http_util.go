package httputil

import (
	"fmt"
	"net/url"
	"strings"
)

// NormalizeURL removes trailing slashesh in url
func NormalizeURL(rawURL string) string {
	for strings.HasSuffix(rawURL, "/") {
		rawURL = rawURL[:len(rawURL)-1]
	}
	return rawURL
}

// ValidateBaseURL checks that baseURL is empty, an absolute path or an absolute
// http(s) URL without query or fragment
func ValidateBaseURL(baseURL string) error {
	if len(baseURL) == 0 {
		return nil
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if len(u.RawQuery) > 0 || len(u.Fragment) > 0 || u.ForceQuery {
		return fmt.Errorf("base url %q must not contain a query or a fragment", baseURL)
	}
	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base url %q has unsupported scheme %q", baseURL, u.Scheme)
		}
		if len(u.Host) == 0 {
			return fmt.Errorf("base url %q has no host", baseURL)
		}
		return nil
	}
	if !strings.HasPrefix(u.Path, "/") {
		return fmt.Errorf("base url %q must be absolute or start with '/'", baseURL)
	}
	return nil
}
