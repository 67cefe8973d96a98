// SPDX-License-Identifier: MPL-2.0

package crate

import (
	"fmt"
	"regexp"
)

// moduleNameRegex matches valid Rust module identifiers.
var moduleNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// reservedNames are keywords that cannot name a module.
var reservedNames = map[string]struct{}{
	"as": {}, "break": {}, "const": {}, "continue": {}, "crate": {},
	"dyn": {}, "else": {}, "enum": {}, "extern": {}, "false": {},
	"fn": {}, "for": {}, "if": {}, "impl": {}, "in": {},
	"let": {}, "loop": {}, "match": {}, "mod": {}, "move": {},
	"mut": {}, "pub": {}, "ref": {}, "return": {}, "self": {},
	"static": {}, "struct": {}, "super": {}, "trait": {}, "true": {},
	"type": {}, "unsafe": {}, "use": {}, "where": {}, "while": {},
}

// ValidateName reports whether name can be used as a module name.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if !moduleNameRegex.MatchString(name) {
		return fmt.Errorf("%w: %q must start with a letter or underscore and contain only alphanumerics and underscores", ErrInvalidName, name)
	}
	if _, ok := reservedNames[name]; ok {
		return fmt.Errorf("%w: %q is a reserved keyword", ErrInvalidName, name)
	}
	return nil
}
