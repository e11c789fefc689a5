package urlmanager

import (
	"context"
	"errors"
	"fmt"

	"github.com/SAP/page-url-manager/internal/config"
	"github.com/SAP/page-url-manager/internal/httputil"
	"github.com/SAP/page-url-manager/internal/params"
	"github.com/SAP/page-url-manager/internal/querystring"
	"github.com/SAP/page-url-manager/internal/template"
	"github.com/SAP/page-url-manager/internal/utils/log_utils"
)

var (
	ErrMissingPageCode = errors.New("page code is missing")
	ErrURLTooLong      = errors.New("url too long")
)

// Manager creates links to portal pages
type Manager interface {
	// CreateURL returns a PageURL bound to the request context ctx. The result
	// must not outlive the request.
	CreateURL(ctx context.Context) *PageURL
	// URLString renders the full URL of pageURL
	URLString(ctx context.Context, pageURL *PageURL) (string, error)
}

// PathMapper maps a page to the path part of its URL
type PathMapper interface {
	Path(ctx context.Context, pageCode, langCode string) (string, error)
}

// URLManager is the Manager built from a PathMapper and a query string Builder
type URLManager struct {
	Mapper       PathMapper
	Builder      *querystring.Builder
	EscapeAmp    bool
	// MaxURLLength bounds rendered urls; New requires it to be positive,
	// a hand-built URLManager may leave it 0 to disable the check
	MaxURLLength int64
}

// New returns a URLManager using a template path mapper configured by cfg
func New(cfg config.Config) (*URLManager, error) {
	if cfg.MaxURLLength <= 0 {
		return nil, fmt.Errorf("invalid max url length %d", cfg.MaxURLLength)
	}
	if err := httputil.ValidateBaseURL(cfg.BaseURL); err != nil {
		return nil, err
	}
	mapper, err := template.NewMapper("path", cfg.PathTemplate, cfg.BaseURL, cfg.MaxURLLength)
	if err != nil {
		return nil, err
	}
	return &URLManager{
		Mapper:       mapper,
		Builder:      &querystring.Builder{Encoder: querystring.FormEncoder{}},
		EscapeAmp:    cfg.EscapeAmp,
		MaxURLLength: cfg.MaxURLLength,
	}, nil
}

// CreateURL implements Manager
func (m *URLManager) CreateURL(ctx context.Context) *PageURL {
	return &PageURL{
		manager:   m,
		ctx:       ctx,
		params:    params.New(),
		escapeAmp: m.EscapeAmp,
	}
}

// URLString implements Manager
func (m *URLManager) URLString(ctx context.Context, pageURL *PageURL) (string, error) {
	log := log_utils.GetLogger(ctx)
	if len(pageURL.PageCode()) == 0 {
		log.Error(ErrMissingPageCode, "unable to create page url")
		return "", ErrMissingPageCode
	}

	path, err := m.Mapper.Path(ctx, pageURL.PageCode(), pageURL.LangCode())
	if err != nil {
		return "", err
	}
	queryString, err := m.CreateQueryStringEscape(ctx, pageURL.Params(), pageURL.EscapeAmp())
	if err != nil {
		return "", err
	}

	url := path + queryString
	if m.MaxURLLength > 0 && int64(len(url)) > m.MaxURLLength {
		log.Info("url too long", "page", pageURL.PageCode(), "bytes", len(url), "limit", m.MaxURLLength)
		return "", fmt.Errorf("%w: %d bytes exceeds the limit of %d bytes", ErrURLTooLong, len(url), m.MaxURLLength)
	}
	return url, nil
}

// CreateQueryString builds the query string of p for use inside markup,
// joining parameters with "&amp;"
func (m *URLManager) CreateQueryString(ctx context.Context, p *params.Parameters) (string, error) {
	return m.CreateQueryStringEscape(ctx, p, true)
}

// CreateQueryStringEscape builds the query string of p. Parameters are joined
// with "&amp;" if escapeAmp is set, with "&" otherwise.
func (m *URLManager) CreateQueryStringEscape(ctx context.Context, p *params.Parameters, escapeAmp bool) (string, error) {
	return m.Builder.Build(ctx, p, escapeAmp)
}
