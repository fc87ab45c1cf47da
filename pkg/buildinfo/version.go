// Package buildinfo holds the version stamped into notewall binaries.
//
//	go build -ldflags "-X github.com/matzehuels/notewall/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/notewall/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/notewall/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/notewall
package buildinfo

import "fmt"

// Set via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, built %s)\n", Version, Commit, Date)
}
