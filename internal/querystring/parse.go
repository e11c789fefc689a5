package querystring

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/SAP/page-url-manager/internal/params"
)

// Parse decodes a query string produced by Build. The leading '?' is
// optional and both "&" and "&amp;" are accepted as separators.
func Parse(query string) (*params.Parameters, error) {
	p := params.New()
	query = strings.TrimPrefix(query, "?")
	if query == "" {
		return p, nil
	}

	query = strings.ReplaceAll(query, EscapedSeparator, Separator)
	for _, pair := range strings.Split(query, Separator) {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		name, err := url.QueryUnescape(name)
		if err != nil {
			return nil, fmt.Errorf("failed to decode parameter name %q: %w", pair, err)
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode value of parameter %q: %w", name, err)
		}
		p.Set(name, value)
	}
	return p, nil
}
