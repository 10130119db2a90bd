package store

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError_IsParseError(t *testing.T) {
	t.Parallel()

	base := &ParseError{Path: "/tmp/scores.yml", cause: errors.New("yaml: bad")}
	wrapped := fmt.Errorf("wrap: %w", base)

	if !IsParseError(base) {
		t.Fatalf("expected IsParseError to be true")
	}
	if !IsParseError(wrapped) {
		t.Fatalf("expected IsParseError to be true for wrapped error")
	}
	if IsParseError(errors.New("other")) {
		t.Fatalf("expected IsParseError to be false for unrelated error")
	}
}

func TestParseError_Message(t *testing.T) {
	t.Parallel()

	var nilErr *ParseError
	if nilErr.Error() != "invalid scores file" {
		t.Fatalf("nil message: %q", nilErr.Error())
	}
	e := &ParseError{Path: "s.yml"}
	if e.Error() != "invalid scores file s.yml" {
		t.Fatalf("message: %q", e.Error())
	}
}
