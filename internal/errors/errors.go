package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel errors for the load fault taxonomy. A missing source is not an
// error at all (it triggers sample generation), so it has no sentinel here.
var (
	// ErrEmptySource marks a source that exists but has no parsable rows
	ErrEmptySource = stderrors.New("source contains no parsable rows")
	// ErrMalformedSource marks a source that exists but cannot be parsed
	ErrMalformedSource = stderrors.New("source is malformed")
)

// Error codes attached to LoadError for diagnostics
const (
	CodeEmptySource     = "EMPTY_SOURCE"
	CodeMalformedSource = "MALFORMED_SOURCE"
)

// LoadError is a structured load/parse fault carrying the source path and
// the classification code. It wraps one of the sentinel errors above so
// callers can branch with errors.Is.
type LoadError struct {
	Code string
	Path string
	Err  error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Path, e.Err)
}

// Unwrap exposes the wrapped sentinel (and its cause chain) to errors.Is/As
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewEmptySource creates a LoadError for a structurally empty source
func NewEmptySource(path string) *LoadError {
	return &LoadError{
		Code: CodeEmptySource,
		Path: path,
		Err:  ErrEmptySource,
	}
}

// NewMalformedSource creates a LoadError for an unparsable source, keeping
// the underlying cause in the chain
func NewMalformedSource(path string, cause error) *LoadError {
	err := error(ErrMalformedSource)
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrMalformedSource, cause)
	}
	return &LoadError{
		Code: CodeMalformedSource,
		Path: path,
		Err:  err,
	}
}

// IsEmptySource reports whether err classifies as the empty-source condition
func IsEmptySource(err error) bool {
	return stderrors.Is(err, ErrEmptySource)
}

// IsMalformedSource reports whether err classifies as a malformed source
func IsMalformedSource(err error) bool {
	return stderrors.Is(err, ErrMalformedSource)
}
