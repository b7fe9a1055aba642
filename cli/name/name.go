// Package name validates proposed project names against the namespace
// depth a template declares.
package name

import (
	"fmt"
	"strings"
	"unicode"
)

// maxDots is a hard ceiling on namespace depth, applied regardless of
// what a template requests.
const maxDots = 5

// InvalidNameError is returned for a project name that does not satisfy
// template naming requirements.
type InvalidNameError struct {
	// Name is the rejected project name.
	Name string
	// Reason describes what exactly is wrong with it.
	Reason string
}

// Error returns error message.
func (e InvalidNameError) Error() string {
	return fmt.Sprintf("not a valid project name: %s (%s)", e.Name, e.Reason)
}

// isIdentifier reports whether s is a legal identifier: a letter or
// underscore followed by letters, digits or underscores.
func isIdentifier(s string) bool {
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return len(s) > 0
}

// Check validates candidate against the namespace depth a template expects.
// ndots set to nil means the template accepts any depth. Each dot separated
// segment must be a legal identifier.
func Check(ndots *int, candidate string) error {
	cdots := strings.Count(candidate, ".")
	if cdots > maxDots {
		return InvalidNameError{
			Name:   candidate,
			Reason: "five dots should be more than enough, no black hole please",
		}
	}

	for _, segment := range strings.Split(candidate, ".") {
		if !isIdentifier(segment) {
			return InvalidNameError{
				Name:   candidate,
				Reason: fmt.Sprintf("'%s' is not an identifier", segment),
			}
		}
	}

	if ndots != nil && cdots != *ndots {
		return InvalidNameError{
			Name:   candidate,
			Reason: fmt.Sprintf("expected %d dots, found %d", *ndots, cdots),
		}
	}

	return nil
}
