package store

import (
	"errors"
	"fmt"
)

// ParseError indicates that the scores file exists but cannot be decoded.
// Surfaced as a typed error so the CLI can point the user at the file.
type ParseError struct {
	Path  string
	cause error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "invalid scores file"
	}
	if e.cause == nil {
		return fmt.Sprintf("invalid scores file %s", e.Path)
	}
	return fmt.Sprintf("invalid scores file %s: %v", e.Path, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

func IsParseError(err error) bool {
	var e *ParseError
	return errors.As(err, &e)
}
