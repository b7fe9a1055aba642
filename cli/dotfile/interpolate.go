package dotfile

import (
	"fmt"
	"sort"
	"strings"
)

// CircularReferenceError is returned when a value references itself,
// directly or through other keys.
type CircularReferenceError struct {
	// Cycle is the reference chain, first key repeated last.
	Cycle []string
}

// Error returns error message.
func (e CircularReferenceError) Error() string {
	return fmt.Sprintf("circular reference in defaults file: %s",
		strings.Join(e.Cycle, " -> "))
}

// UnknownVariableError is returned when a value references a key that is
// present neither in the template section nor in DEFAULT.
type UnknownVariableError struct {
	// Key is the missing key.
	Key string
}

// Error returns error message.
func (e UnknownVariableError) Error() string {
	return fmt.Sprintf("unknown variable %%(%s)s referenced in defaults file", e.Key)
}

// evaluation state of a key during the dependency walk.
const (
	pending = iota
	inProgress
	done
)

type interpolator struct {
	raw      map[string]string
	resolved map[string]string
	state    map[string]int
	// chain is the path of keys currently being resolved,
	// kept for cycle reporting.
	chain []string
}

// interpolate substitutes every %(key)s placeholder in values with the
// value of key from the same mapping. Evaluation is a depth-first pass
// over the reference graph, so it terminates on any input and a cycle is
// reported with the exact chain of keys involved.
func interpolate(values map[string]string) (map[string]string, error) {
	ip := interpolator{
		raw:      values,
		resolved: make(map[string]string, len(values)),
		state:    make(map[string]int, len(values)),
	}

	// Stable evaluation order keeps cycle reports deterministic.
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, err := ip.resolve(key); err != nil {
			return nil, err
		}
	}

	return ip.resolved, nil
}

func (ip *interpolator) resolve(key string) (string, error) {
	switch ip.state[key] {
	case done:
		return ip.resolved[key], nil
	case inProgress:
		return "", CircularReferenceError{Cycle: ip.cycleFor(key)}
	}

	ip.state[key] = inProgress
	ip.chain = append(ip.chain, key)

	value, err := ip.expand(ip.raw[key])

	ip.chain = ip.chain[:len(ip.chain)-1]
	if err != nil {
		return "", err
	}

	ip.state[key] = done
	ip.resolved[key] = value
	return value, nil
}

// expand rewrites a single value, replacing %(key)s placeholders with
// resolved values and %% with a literal percent sign. A stray percent
// sign that opens no placeholder is copied through.
func (ip *interpolator) expand(value string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(value); {
		if value[i] != '%' || i+1 >= len(value) {
			out.WriteByte(value[i])
			i++
			continue
		}
		if value[i+1] == '%' {
			out.WriteByte('%')
			i += 2
			continue
		}

		key, width := parsePlaceholder(value[i:])
		if width == 0 {
			out.WriteByte(value[i])
			i++
			continue
		}

		if _, found := ip.raw[key]; !found {
			return "", UnknownVariableError{Key: key}
		}
		resolved, err := ip.resolve(key)
		if err != nil {
			return "", err
		}
		out.WriteString(resolved)
		i += width
	}

	return out.String(), nil
}

// parsePlaceholder extracts the key of a %(key)s placeholder opening at
// the start of s. Zero width is returned if there is no placeholder.
func parsePlaceholder(s string) (key string, width int) {
	if !strings.HasPrefix(s, "%(") {
		return "", 0
	}
	end := strings.Index(s, ")s")
	if end < 0 {
		return "", 0
	}
	return s[2:end], end + 2
}

// cycleFor extracts the reference cycle ending at key from the current
// resolution chain.
func (ip *interpolator) cycleFor(key string) []string {
	for i, chained := range ip.chain {
		if chained == key {
			cycle := append([]string{}, ip.chain[i:]...)
			return append(cycle, key)
		}
	}
	return []string{key, key}
}
