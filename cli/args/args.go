// Package args turns raw command line tokens into a parsed invocation:
// a template name, an optional output name and a set of variable overrides.
package args

import (
	"errors"
	"fmt"
	"strings"

	"github.com/apex/log"
)

// svnRepositoryKey is not supported by this front end. Templates that
// need it must be invoked through the underlying generator directly.
const svnRepositoryKey = "svn-repository"

// ErrMissingTemplate is returned if no template name was provided.
var ErrMissingTemplate = errors.New("no template name provided")

// MalformedArgumentError is returned for a token that is neither a bare
// output name nor a key=value pair.
type MalformedArgumentError struct {
	// Token is the offending token.
	Token string
}

// Error returns error message.
func (e MalformedArgumentError) Error() string {
	return fmt.Sprintf("malformed argument: %q", e.Token)
}

// UnsupportedArgumentError is returned for keys this front end
// deliberately rejects.
type UnsupportedArgumentError struct {
	// Key is the rejected key.
	Key string
}

// Error returns error message.
func (e UnsupportedArgumentError) Error() string {
	return fmt.Sprintf("the %s argument is not supported, "+
		"invoke the generator directly if it is required", e.Key)
}

// ParsedInvocation is the result of resolving command line tokens.
// It is created once per invocation and never mutated afterwards.
type ParsedInvocation struct {
	// TemplateName is a template to use for project creation.
	TemplateName string
	// OutputName is a project name to create. Empty if it was not supplied.
	OutputName string
	// Overrides are variable definitions provided in command line.
	Overrides map[string]string
}

// Resolve classifies tokens into a parsed invocation. The first token is
// the template name. Of the rest, the first token without "=" becomes the
// output name, a second one is ambiguous and rejected. key=value tokens
// fill the overrides map, last duplicate wins.
func Resolve(tokens []string) (ParsedInvocation, error) {
	parsed := ParsedInvocation{Overrides: map[string]string{}}
	if len(tokens) == 0 {
		return parsed, ErrMissingTemplate
	}
	parsed.TemplateName = tokens[0]

	for _, token := range tokens[1:] {
		key, value, found := strings.Cut(token, "=")
		if strings.Contains(key, svnRepositoryKey) {
			return parsed, UnsupportedArgumentError{Key: key}
		}
		if !found {
			if token == "" || parsed.OutputName != "" {
				return parsed, MalformedArgumentError{Token: token}
			}
			parsed.OutputName = token
			continue
		}
		if key == "" {
			return parsed, MalformedArgumentError{Token: token}
		}
		log.Debugf("Setting var from CLI: %s = %s", key, value)
		parsed.Overrides[key] = value
	}

	return parsed, nil
}
