// Where: internal/command/error_helpers_test.go
// What: Tests for shared CLI error output.
// Why: Keep failure formatting stable across commands.
package command

import (
	"bytes"
	"errors"
	"testing"
)

func TestExitWithError(t *testing.T) {
	var out bytes.Buffer
	if code := exitWithError(&out, errors.New("boom")); code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out.String() != "✗ boom\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestExitWithSuggestion(t *testing.T) {
	var out bytes.Buffer
	code := exitWithSuggestion(&out, "missing", []string{"do this", "or that"})
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	want := "✗ missing\n\nNext steps:\n  - do this\n  - or that\n"
	if out.String() != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestExitWithSuggestionWithoutSteps(t *testing.T) {
	var out bytes.Buffer
	exitWithSuggestion(&out, "missing", nil)
	if out.String() != "✗ missing\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
