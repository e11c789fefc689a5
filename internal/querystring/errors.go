package querystring

import "fmt"

// EncodingError is returned when a parameter name or value could not be encoded
type EncodingError struct {
	Name  string
	Cause error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("error encoding parameter %q: %v", e.Name, e.Cause)
}

func (e *EncodingError) Unwrap() error {
	return e.Cause
}
