// SPDX-License-Identifier: MPL-2.0

// Package srcfile classifies the leading structure of Rust source files and
// inserts module declarations into them.
//
// Classification works on line prefixes only: a header comment is a leading
// run of `//` lines (block comments are not recognized), and the preamble is
// the contiguous prefix of `use` and `mod` statements. That is enough to
// decide where a new `mod` declaration belongs without parsing Rust.
package srcfile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrPattern is wrapped by pattern compilation failures. The patterns are
// fixed strings, so hitting it indicates a programming error, but they are
// compiled at runtime and the failure mode stays explicit.
var ErrPattern = errors.New("invalid line pattern")

// Line-prefix patterns for the recognized dialect.
const (
	usePattern     = `^\s*use\s+`
	modPattern     = `^\s*(?:pub)?\s*mod`
	commentPattern = `^\s*//`
)

// maxLineLen bounds a single physical source line during scanning.
const maxLineLen = 1 << 20

// Classification describes the leading region of a source file.
//
// End indices are zero-based physical line numbers (leading blank lines
// count) and are only meaningful while the matching exists flag is true. An
// end of -1 means the region was still open when the scan ran out of lines.
type Classification struct {
	// PreambleExists reports whether any use/mod statement was seen.
	PreambleExists bool
	// PreambleEnd is the index of the last preamble line, or -1 when the
	// preamble runs to the end of the file.
	PreambleEnd int
	// HeaderCommentExists reports whether the file opens with a comment.
	HeaderCommentExists bool
	// HeaderCommentEnd is the index of the last header comment line, or -1
	// when the comment runs to the end of the file.
	HeaderCommentEnd int
}

// Scan reads the file at path and classifies its leading region in a single
// forward pass. Scanning stops as soon as the preamble is known to be over;
// lines past it are never inspected.
func Scan(path string) (Classification, error) {
	reUse, err := regexp.Compile(usePattern)
	if err != nil {
		return Classification{}, fmt.Errorf("%w %q: %v", ErrPattern, usePattern, err)
	}
	reMod, err := regexp.Compile(modPattern)
	if err != nil {
		return Classification{}, fmt.Errorf("%w %q: %v", ErrPattern, modPattern, err)
	}
	reComment, err := regexp.Compile(commentPattern)
	if err != nil {
		return Classification{}, fmt.Errorf("%w %q: %v", ErrPattern, commentPattern, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return Classification{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	cls := Classification{PreambleEnd: -1, HeaderCommentEnd: -1}
	var (
		contentSeen bool // a non-blank line has been reached
		bodySeen    bool // a non-comment content line has been reached
	)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for lnum := 0; scanner.Scan(); lnum++ {
		line := scanner.Text()

		if !contentSeen && strings.TrimSpace(line) == "" {
			// Leading blank lines are counted but never classified.
			continue
		}
		contentSeen = true

		if !bodySeen {
			if reComment.MatchString(line) {
				cls.HeaderCommentExists = true
				continue
			}
			if cls.HeaderCommentExists {
				cls.HeaderCommentEnd = lnum - 1
			}
			bodySeen = true
		}

		preambleLine := reUse.MatchString(line) || reMod.MatchString(line)
		if !preambleLine && cls.PreambleExists {
			// The preamble is a contiguous prefix; the first non-matching
			// line ends it and the rest of the file is irrelevant.
			cls.PreambleEnd = lnum - 1
			break
		}
		if preambleLine {
			cls.PreambleExists = true
		}
	}
	if err := scanner.Err(); err != nil {
		return Classification{}, fmt.Errorf("read %s: %w", path, err)
	}

	return cls, nil
}

// InsertionPoint returns the zero-based line at which a new module
// declaration should be inserted, or -1 to append at the end of the file.
//
// The preamble wins over the header comment: a declaration belongs with its
// siblings. A region that runs to the end of the file turns into an append.
func (c Classification) InsertionPoint() int {
	switch {
	case c.PreambleExists && c.PreambleEnd >= 0:
		return c.PreambleEnd + 1
	case c.PreambleExists:
		return -1
	case c.HeaderCommentExists && c.HeaderCommentEnd >= 0:
		return c.HeaderCommentEnd + 1
	case c.HeaderCommentExists:
		return -1
	default:
		return 0
	}
}
