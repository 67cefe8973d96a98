// SPDX-License-Identifier: MPL-2.0

package crate

import (
	"errors"
	"testing"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "simple", input: "parser"},
		{name: "underscore prefix", input: "_internal"},
		{name: "snake case", input: "token_stream"},
		{name: "digits allowed after first", input: "sha256"},
		{name: "empty", input: "", wantErr: true},
		{name: "leading digit", input: "2fast", wantErr: true},
		{name: "hyphen", input: "foo-bar", wantErr: true},
		{name: "path separator", input: "a/b", wantErr: true},
		{name: "keyword mod", input: "mod", wantErr: true},
		{name: "keyword match", input: "match", wantErr: true},
		{name: "keyword true", input: "true", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Errorf("ValidateName(%q) = %v, want ErrInvalidName", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateName(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}
