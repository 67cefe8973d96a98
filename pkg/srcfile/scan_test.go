// SPDX-License-Identifier: MPL-2.0

package srcfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "target.rs")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestScan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    Classification
	}{
		{
			name:    "empty file",
			content: "",
			want:    Classification{PreambleEnd: -1, HeaderCommentEnd: -1},
		},
		{
			name:    "header comment then content",
			content: "// a\n// b\nfn main() {}\n",
			want: Classification{
				HeaderCommentExists: true,
				HeaderCommentEnd:    1,
				PreambleEnd:         -1,
			},
		},
		{
			name:    "header comment runs to end of file",
			content: "// a\n// b\n",
			want: Classification{
				HeaderCommentExists: true,
				HeaderCommentEnd:    -1,
				PreambleEnd:         -1,
			},
		},
		{
			name:    "leading blank lines count toward indices",
			content: "\n\n// c\nfn main() {}\n",
			want: Classification{
				HeaderCommentExists: true,
				HeaderCommentEnd:    2,
				PreambleEnd:         -1,
			},
		},
		{
			name:    "preamble then body",
			content: "use a;\nmod b;\nfn main() {}\n",
			want: Classification{
				PreambleExists:   true,
				PreambleEnd:      1,
				HeaderCommentEnd: -1,
			},
		},
		{
			name:    "preamble runs to end of file",
			content: "use a;\nmod b;\n",
			want: Classification{
				PreambleExists:   true,
				PreambleEnd:      -1,
				HeaderCommentEnd: -1,
			},
		},
		{
			name:    "header comment immediately followed by declarations",
			content: "// c\nmod x;\nfn f() {}\n",
			want: Classification{
				HeaderCommentExists: true,
				HeaderCommentEnd:    0,
				PreambleExists:      true,
				PreambleEnd:         1,
			},
		},
		{
			name:    "blank line ends the preamble",
			content: "use a;\n\nuse b;\n",
			want: Classification{
				PreambleExists:   true,
				PreambleEnd:      0,
				HeaderCommentEnd: -1,
			},
		},
		{
			name:    "comment after preamble ends it",
			content: "use a;\n// note\nmod b;\n",
			want: Classification{
				PreambleExists:   true,
				PreambleEnd:      0,
				HeaderCommentEnd: -1,
			},
		},
		{
			name:    "indented use and pub mod",
			content: "    use std::io;\npub mod x;\nstruct S;\n",
			want: Classification{
				PreambleExists:   true,
				PreambleEnd:      1,
				HeaderCommentEnd: -1,
			},
		},
		{
			name:    "header blank preamble body",
			content: "// header\n\nuse a::b;\nmod x;\nfn main(){}\n",
			want: Classification{
				HeaderCommentExists: true,
				HeaderCommentEnd:    0,
				PreambleExists:      true,
				PreambleEnd:         3,
			},
		},
		{
			name:    "plain body only",
			content: "fn main() {}\n",
			want:    Classification{PreambleEnd: -1, HeaderCommentEnd: -1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeSource(t, tt.content)
			got, err := Scan(path)
			if err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Scan() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestScanIdempotent(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "// header\n\nuse a::b;\nmod x;\nfn main(){}\n")

	first, err := Scan(path)
	if err != nil {
		t.Fatalf("first Scan() error = %v", err)
	}
	second, err := Scan(path)
	if err != nil {
		t.Fatalf("second Scan() error = %v", err)
	}
	if first != second {
		t.Errorf("Scan() not idempotent: %+v then %+v", first, second)
	}
}

func TestScanMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Scan(filepath.Join(t.TempDir(), "absent.rs")); err == nil {
		t.Error("Scan() on a missing file should fail")
	}
}

func TestInsertionPoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cls  Classification
		want int
	}{
		{
			name: "after preamble",
			cls:  Classification{PreambleExists: true, PreambleEnd: 3, HeaderCommentEnd: -1},
			want: 4,
		},
		{
			name: "preamble to end of file appends",
			cls:  Classification{PreambleExists: true, PreambleEnd: -1, HeaderCommentEnd: -1},
			want: -1,
		},
		{
			name: "after header comment",
			cls:  Classification{HeaderCommentExists: true, HeaderCommentEnd: 2, PreambleEnd: -1},
			want: 3,
		},
		{
			name: "header comment to end of file appends",
			cls:  Classification{HeaderCommentExists: true, HeaderCommentEnd: -1, PreambleEnd: -1},
			want: -1,
		},
		{
			name: "preamble wins over header comment",
			cls: Classification{
				HeaderCommentExists: true, HeaderCommentEnd: 0,
				PreambleExists: true, PreambleEnd: 3,
			},
			want: 4,
		},
		{
			name: "neither inserts at top",
			cls:  Classification{PreambleEnd: -1, HeaderCommentEnd: -1},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.cls.InsertionPoint(); got != tt.want {
				t.Errorf("InsertionPoint() = %d, want %d", got, tt.want)
			}
		})
	}
}
