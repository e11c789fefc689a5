package template

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"

	"github.com/SAP/page-url-manager/internal/httputil"
	"github.com/SAP/page-url-manager/internal/utils/log_utils"
)

// DefaultPathTemplate maps a page to "<base url>/<page code>"
const DefaultPathTemplate = `{{ .BaseURL }}/{{ pathEscape .PageCode }}`

// PathData is the data a path template is executed with
type PathData struct {
	BaseURL  string
	PageCode string
	LangCode string
}

// Mapper renders page paths from a text/template
type Mapper struct {
	tmpl     *template.Template
	baseURL  string
	maxBytes int64
}

// NewMapper parses text and returns a Mapper producing paths of at most
// maxBytes bytes. baseURL is normalized before being handed to the template.
func NewMapper(name, text, baseURL string, maxBytes int64) (*Mapper, error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("invalid path size limit %d", maxBytes)
	}
	if len(strings.TrimSpace(text)) == 0 {
		text = DefaultPathTemplate
	}
	t, err := ParseTemplate(name, text)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse path template %q", name)
	}
	return &Mapper{
		tmpl:     t.Option("missingkey=error"),
		baseURL:  httputil.NormalizeURL(baseURL),
		maxBytes: maxBytes,
	}, nil
}

// Path renders the path of the given page
func (m *Mapper) Path(ctx context.Context, pageCode, langCode string) (string, error) {
	data := PathData{
		BaseURL:  m.baseURL,
		PageCode: pageCode,
		LangCode: langCode,
	}
	path, err := m.execute(data)
	if err != nil {
		log_utils.GetLogger(ctx).Error(err, "failed to render page path", "page", pageCode, "lang", langCode)
		return "", errors.Wrap(err, "could not execute path template")
	}
	return path, nil
}

// ParseTemplate create a new template with given name, add allowed sprig functions and parse the template
func ParseTemplate(templateName, text string) (*template.Template, error) {
	return template.New(templateName).Funcs(filteredFuncMap()).Parse(text)
}

func filteredFuncMap() template.FuncMap {
	r := sprig.TxtFuncMap()

	for sprigFunc := range r {
		if _, ok := allowedSprigFunctions[sprigFunc]; !ok {
			delete(r, sprigFunc)
		}
	}
	r["pathEscape"] = url.PathEscape
	return r
}

func (m *Mapper) execute(data PathData) (string, error) {
	buf := newPathBuffer(m.maxBytes)
	if err := m.tmpl.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
