package querystring

import (
	"context"
	"strings"

	"github.com/SAP/page-url-manager/internal/params"
	"github.com/SAP/page-url-manager/internal/utils/log_utils"
)

const (
	// Separator joins parameters of a query string used as a plain URL
	Separator = "&"
	// EscapedSeparator joins parameters of a query string embedded in markup
	EscapedSeparator = "&amp;"
)

var defaultBuilder = &Builder{Encoder: FormEncoder{}}

// Builder serializes parameters into a query string.
// The zero value uses FormEncoder.
type Builder struct {
	Encoder Encoder
}

// Build returns "?name=value" pairs for p in insertion order, joined by "&"
// or, when escapeAmp is set, by "&amp;". It returns "" for nil or empty p.
// No partial result is returned on error.
func (b *Builder) Build(ctx context.Context, p *params.Parameters, escapeAmp bool) (string, error) {
	if p.Len() == 0 {
		return "", nil
	}

	separator := Separator
	if escapeAmp {
		separator = EscapedSeparator
	}
	encoder := b.encoder()

	var sb strings.Builder
	sb.WriteString("?")
	var encErr error
	index := 0
	p.Range(func(name, value string) bool {
		safeName, err := encoder.Encode(name)
		if err != nil {
			encErr = &EncodingError{Name: name, Cause: err}
			return false
		}
		safeValue, err := encoder.Encode(value)
		if err != nil {
			encErr = &EncodingError{Name: name, Cause: err}
			return false
		}
		if index > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(safeName)
		sb.WriteString("=")
		sb.WriteString(safeValue)
		index++
		return true
	})
	if encErr != nil {
		log_utils.GetLogger(ctx).Error(encErr, "Error encoding parameters")
		return "", encErr
	}
	return sb.String(), nil
}

// BuildHTML is Build with the "&amp;" separator
func (b *Builder) BuildHTML(ctx context.Context, p *params.Parameters) (string, error) {
	return b.Build(ctx, p, true)
}

func (b *Builder) encoder() Encoder {
	if b == nil || b.Encoder == nil {
		return FormEncoder{}
	}
	return b.Encoder
}

// Build builds a query string with FormEncoder
func Build(ctx context.Context, p *params.Parameters, escapeAmp bool) (string, error) {
	return defaultBuilder.Build(ctx, p, escapeAmp)
}

// BuildHTML builds a query string with FormEncoder and the "&amp;" separator
func BuildHTML(ctx context.Context, p *params.Parameters) (string, error) {
	return defaultBuilder.BuildHTML(ctx, p)
}
