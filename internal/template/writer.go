package template

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrLimitExceeded is returned when a rendered path is larger than allowed
var ErrLimitExceeded = errors.New("limit exceeded")

// pathBuffer collects a rendered path and refuses to grow past limit bytes.
// A chunk that does not fit is dropped entirely, so a failed render never
// leaves a truncated path behind.
type pathBuffer struct {
	sb    strings.Builder
	limit int64
}

func newPathBuffer(limit int64) *pathBuffer {
	return &pathBuffer{limit: limit}
}

func (b *pathBuffer) Write(p []byte) (int, error) {
	if int64(b.sb.Len())+int64(len(p)) > b.limit {
		return 0, fmt.Errorf("the size of the generated path exceeds the limit of %d bytes: %w", b.limit, ErrLimitExceeded)
	}
	return b.sb.Write(p)
}

func (b *pathBuffer) String() string {
	return b.sb.String()
}
