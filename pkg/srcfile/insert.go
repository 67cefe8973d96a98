// SPDX-License-Identifier: MPL-2.0

package srcfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// Decl is a module declaration to be written into a source file.
type Decl struct {
	Name   string
	Public bool
}

// String renders the declaration as a single source line without the
// trailing newline.
func (d Decl) String() string {
	if d.Public {
		return "pub mod " + d.Name + ";"
	}
	return "mod " + d.Name + ";"
}

// Insert rewrites the file at path with decl injected before the zero-based
// line index at. An at of -1 appends the declaration after all existing
// content. Every other line is preserved verbatim.
//
// The rewrite is atomic: content is streamed into a scratch file in the same
// directory, which is then renamed over the target. A failure at any earlier
// step leaves the target untouched and removes the scratch file.
func Insert(path string, decl Decl, at int) (err error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create scratch file: %w", err)
	}
	defer func() {
		tmp.Close()
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	w := bufio.NewWriter(tmp)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLen)
	for lnum := 0; scanner.Scan(); lnum++ {
		if lnum == at {
			if _, err = fmt.Fprintln(w, decl); err != nil {
				return fmt.Errorf("write scratch file: %w", err)
			}
		}
		if _, err = fmt.Fprintln(w, scanner.Text()); err != nil {
			return fmt.Errorf("write scratch file: %w", err)
		}
	}
	if serr := scanner.Err(); serr != nil {
		err = fmt.Errorf("read %s: %w", path, serr)
		return err
	}

	// An empty file yields zero line iterations, so an insert at line 0
	// would silently be skipped without the size check.
	if at < 0 || info.Size() == 0 {
		if _, err = fmt.Fprintln(w, decl); err != nil {
			return fmt.Errorf("write scratch file: %w", err)
		}
	}

	if err = w.Flush(); err != nil {
		return fmt.Errorf("flush scratch file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close scratch file: %w", err)
	}

	// Same-directory rename replaces the target in one step; a partially
	// written file is never visible under the target path.
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
