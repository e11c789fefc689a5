package querystring

import (
	"errors"
	"net/url"
	"unicode/utf8"
)

// ErrInvalidUTF8 is returned by FormEncoder for text that is not valid UTF-8
var ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

// Encoder escapes a single query-string component (a name or a value)
//
//go:generate mockgen -destination=mock_encoder_test.go -package=querystring_test . Encoder
type Encoder interface {
	Encode(s string) (string, error)
}

// FormEncoder encodes using application/x-www-form-urlencoded rules:
// space becomes '+', every byte outside A-Z a-z 0-9 '-' '_' '.' '~' becomes %XX.
type FormEncoder struct{}

// Encode implements Encoder
func (FormEncoder) Encode(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	return url.QueryEscape(s), nil
}
