// Package dotfile loads the per-user defaults file and resolves the final
// variable set for a template: DEFAULT section values, overlaid by the
// template section, interpolated, with command line overrides applied last.
package dotfile

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"gopkg.in/ini.v1"

	"github.com/templer/templer/cli/util"
)

// Name is the defaults file name looked up in the user home directory.
const Name = ".templer"

// configPathEnvVar overrides the defaults file location.
const configPathEnvVar = "TEMPLER_CONFIG"

// ConfigFormatError is returned when the defaults file cannot be parsed.
type ConfigFormatError struct {
	// Path is the defaults file location.
	Path string
	// Err is the underlying parse error.
	Err error
}

// Error returns error message.
func (e ConfigFormatError) Error() string {
	return fmt.Sprintf("failed to parse defaults file %q: %s", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e ConfigFormatError) Unwrap() error {
	return e.Err
}

// Store is a read-only view of the defaults file: a DEFAULT section that
// applies to every template and per-template sections overriding it.
type Store struct {
	defaults map[string]string
	sections map[string]map[string]string
}

// DefaultPath returns the defaults file location: the path from the
// environment if set, the home directory dotfile otherwise.
func DefaultPath() (string, error) {
	if path := os.Getenv(configPathEnvVar); path != "" {
		return path, nil
	}
	return util.HomeDotfilePath(Name)
}

// Load reads the defaults file at path. A missing file is not an error:
// users are not required to keep a defaults file, so an empty store is
// returned instead.
func Load(path string) (*Store, error) {
	store := &Store{
		defaults: map[string]string{},
		sections: map[string]map[string]string{},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Debugf("No defaults file at %s", path)
		return store, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, ConfigFormatError{Path: path, Err: err}
	}

	for _, section := range file.Sections() {
		values := sectionValues(section)
		if section.Name() == ini.DefaultSection {
			store.defaults = values
		} else {
			store.sections[section.Name()] = values
		}
	}

	return store, nil
}

// sectionValues collects raw key/value pairs of a section. Values are
// taken verbatim, interpolation happens at resolve time.
func sectionValues(section *ini.Section) map[string]string {
	values := make(map[string]string, len(section.Keys()))
	for _, key := range section.Keys() {
		values[key.Name()] = key.Value()
	}
	return values
}

// ResolveFor computes the final variable set for a template. Template
// section entries override DEFAULT ones, every value is interpolated
// against the merged view, and command line overrides win unconditionally.
func (s *Store) ResolveFor(template string, overrides map[string]string) (
	map[string]string, error,
) {
	merged := make(map[string]string, len(s.defaults))
	for key, value := range s.defaults {
		merged[key] = value
	}
	for key, value := range s.sections[template] {
		merged[key] = value
	}

	resolved, err := interpolate(merged)
	if err != nil {
		return nil, err
	}

	for key, value := range overrides {
		resolved[key] = value
	}

	return resolved, nil
}
