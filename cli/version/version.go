// Package version provides build-time version information for the
// templer binary and the template packages compiled into it.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	goVersion "github.com/hashicorp/go-version"
)

const (
	unknownVersion  = "<unknown>"
	cliVersionTitle = "Templer CLI"

	// corePackage is the module every templer distribution carries.
	corePackage = "templer.core"
)

// Get the value of this variables at build time.
// See the build script for more details.
var (
	gitTag       string
	gitCommit    string
	versionLabel string
)

// Component is a versioned part of the templer distribution.
type Component struct {
	// Name is the package name, e.g. "templer.core".
	Name string
	// Version is a normalized version string.
	Version string
}

// normalize brings a raw tag to a dotted numeric form.
// Unparsable tags are passed through as-is.
func normalize(tag string) string {
	parsed, err := goVersion.NewVersion(tag)
	if err != nil {
		return tag
	}

	var numbers []string
	for _, num := range parsed.Segments() {
		numbers = append(numbers, strconv.Itoa(num))
	}

	return strings.Join(numbers, ".")
}

// GetVersion return string with Templer CLI version info.
func GetVersion(showShort bool, needCommit bool) string {
	var version string

	if gitTag == "" {
		version = unknownVersion
	} else {
		version = normalize(gitTag)
		if versionLabel != "" {
			version = fmt.Sprintf("%s/%s", version, versionLabel)
		}
	}

	if showShort || needCommit {
		if needCommit {
			return fmt.Sprintf("%s.%s", version, gitCommit)
		}

		return version
	}

	return fmt.Sprintf(
		"%s version %s, %s/%s. commit: %s",
		cliVersionTitle, version, runtime.GOOS, runtime.GOARCH, gitCommit,
	)
}

// Components returns version info for the core and for every templer
// module baked into the binary, core first.
func Components() []Component {
	components := []Component{
		{Name: corePackage, Version: GetVersion(true, false)},
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return components
	}

	for _, dep := range buildInfo.Deps {
		if !strings.Contains(strings.ToLower(dep.Path), "templer") {
			continue
		}
		components = append(components, Component{
			Name:    dep.Path,
			Version: normalize(dep.Version),
		})
	}

	return components
}
