package templates

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/mitchellh/mapstructure"

	"github.com/templer/templer/cli/util"
)

const (
	// ManifestName is the manifest file name inside a template directory.
	ManifestName = "template.yaml"

	// searchPathEnvVar lists directories to scan for template manifests.
	searchPathEnvVar = "TEMPLER_TEMPLATE_PATH"
)

// manifest mirrors the template.yaml layout.
type manifest struct {
	// Summary is a one line template description.
	Summary string
	// Help is an optional longer description.
	Help string
	// NDots is the expected namespace depth, absent means unconstrained.
	NDots *int `mapstructure:"ndots"`
	// Vars is the set of variables the template consumes.
	Vars []Var
}

func validateManifest(manifest *manifest) error {
	if manifest.Summary == "" {
		return fmt.Errorf("missing template summary")
	}
	if manifest.NDots != nil && *manifest.NDots < 0 {
		return fmt.Errorf("ndots must not be negative")
	}
	for _, varInfo := range manifest.Vars {
		if varInfo.Name == "" {
			return fmt.Errorf("missing variable name")
		}
	}
	return nil
}

// LoadManifest loads a template descriptor from manifestPath.
func LoadManifest(name, manifestPath string) (*Descriptor, error) {
	rawManifest, err := util.ParseYAML(manifestPath)
	if err != nil {
		return nil, err
	}

	var parsed manifest
	if err := mapstructure.Decode(rawManifest, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode template manifest: %s", err)
	}

	if err := validateManifest(&parsed); err != nil {
		return nil, fmt.Errorf("invalid manifest format: %s", err)
	}

	return &Descriptor{
		Name:    name,
		Summary: parsed.Summary,
		Help:    parsed.Help,
		NDots:   parsed.NDots,
		Vars:    parsed.Vars,
	}, nil
}

// DirProvider serves templates registered as manifest files on disk:
// every <search path>/<name>/template.yaml describes one template.
type DirProvider struct {
	searchPaths []string
}

// NewDirProvider creates a provider over the given search paths.
func NewDirProvider(searchPaths []string) *DirProvider {
	return &DirProvider{searchPaths: searchPaths}
}

// SearchPathsFromEnv returns template search paths from the environment.
func SearchPathsFromEnv() []string {
	return filepath.SplitList(os.Getenv(searchPathEnvVar))
}

// Lookup returns the descriptor of the first search path entry holding a
// readable manifest for name. Broken manifests are reported and skipped,
// a later search path may still serve the template.
func (p *DirProvider) Lookup(name string) (*Descriptor, bool) {
	for _, searchPath := range p.searchPaths {
		manifestPath := filepath.Join(searchPath, name, ManifestName)
		if _, err := os.Stat(manifestPath); err != nil {
			continue
		}
		descriptor, err := LoadManifest(name, manifestPath)
		if err != nil {
			log.Warnf("Skipping template %q: %s", name, err)
			continue
		}
		return descriptor, true
	}
	return nil, false
}

// All returns descriptors of every template found in the search paths,
// sorted by name.
func (p *DirProvider) All() []*Descriptor {
	registry := map[string]*Descriptor{}
	for _, searchPath := range p.searchPaths {
		entries, err := os.ReadDir(searchPath)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			if _, found := registry[entry.Name()]; found {
				continue
			}
			if descriptor, found := p.Lookup(entry.Name()); found {
				registry[entry.Name()] = descriptor
			}
		}
	}

	all := make([]*Descriptor, 0, len(registry))
	for _, descriptor := range registry {
		all = append(all, descriptor)
	}
	return NewRegistry(all...).All()
}
