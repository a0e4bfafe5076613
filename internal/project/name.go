package project

import (
	"fmt"
	"strings"
	"unicode"
)

// ValidateName checks that name can be used as the project directory and as
// the prefix of crate names.
func ValidateName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "name cannot be empty"}
	}

	for _, r := range name {
		if r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_') {
			return &InvalidNameError{Name: name, Reason: fmt.Sprintf("contains invalid character %q", r)}
		}
	}

	if !unicode.IsLetter(rune(name[0])) {
		return &InvalidNameError{Name: name, Reason: "must start with a letter"}
	}

	return nil
}

// SnakeCase replaces hyphens with underscores, matching how cargo derives a
// crate's import name.
func SnakeCase(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// PascalCase splits name on '-' and '_' and upper-cases the first letter of
// each segment.
func PascalCase(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var sb strings.Builder
	for _, part := range parts {
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}
	return sb.String()
}
