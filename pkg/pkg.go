//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version embedded at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name. It appears in help text, default config
	// paths and the environment variable prefix.
	Name = "scadgen"
	// Description is the one-line summary shown in help output.
	Description = "Generate OpenSCAD source from YAML model manifests"
	// EnvPath names the environment variable holding the manifest import
	// search path, a list of directories separated by os.PathListSeparator.
	EnvPath = "SCADGEN_PATH"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
