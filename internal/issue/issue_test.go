// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"os"
	"strings"
	"testing"
)

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if WrapWithOperation(nil, "anything") != nil {
		t.Error("wrapping nil should return nil")
	}

	cause := errors.New("boom")
	err := WrapWithOperation(cause, "register module")
	if got, want := err.Error(), "failed to register module: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped cause not visible to errors.Is")
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	err := WrapWithContext(os.ErrNotExist, "load configuration", "/etc/mkmod/config.toml")
	want := "failed to load configuration: /etc/mkmod/config.toml: file does not exist"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := WrapWithOperation(inner, "register module").
		WithSuggestion("Create the parent module first").
		WithSuggestion("Pass --no-add to skip registration")

	got := err.Format(false)
	if !strings.Contains(got, "failed to register module") {
		t.Errorf("Format() missing message: %q", got)
	}
	if strings.Count(got, "•") != 2 {
		t.Errorf("Format() should list both suggestions: %q", got)
	}
	if strings.Contains(got, "Error chain") {
		t.Errorf("Format(false) should not include the error chain: %q", got)
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "Error chain:") || !strings.Contains(verbose, "1. inner") {
		t.Errorf("Format(true) missing error chain: %q", verbose)
	}
}

func TestSuggestionListIsACopy(t *testing.T) {
	t.Parallel()

	err := WrapWithOperation(errors.New("x"), "op").WithSuggestion("a")
	list := err.SuggestionList()
	list[0] = "mutated"
	if err.Suggestions[0] != "a" {
		t.Error("SuggestionList() should return a copy")
	}
}
