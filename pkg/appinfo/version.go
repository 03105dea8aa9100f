// Package appinfo defines application build informations.
package appinfo

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pre-defined variables set by LDFLAGS like below:
//
//	go build -ldflags '-X github.com/wuxler/rxkit/pkg/appinfo.version=v1.0.0'
var (
	version   = "dev"
	buildDate = "1970-01-01T00:00:00Z"
	gitCommit = ""
	gitTag    = ""
)

// Version records the application version and build environment.
type Version struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit,omitempty" yaml:"git_commit,omitempty"`
	GitTag    string `json:"git_tag,omitempty" yaml:"git_tag,omitempty"`
	BuildDate string `json:"build_date,omitempty" yaml:"build_date,omitempty"`
	GoVersion string `json:"go_version,omitempty" yaml:"go_version,omitempty"`
	Platform  string `json:"platform,omitempty" yaml:"platform,omitempty"`
}

// GetVersion returns the Version of the application.
func GetVersion() Version {
	return Version{
		Version:   version,
		GitCommit: gitCommit,
		GitTag:    gitTag,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ShortLine returns the one-line version string.
func (v Version) ShortLine() string {
	if len(v.GitCommit) > 7 {
		return v.Version + " (" + v.GitCommit[:8] + ")"
	}
	return v.Version
}

// Write writes v into w. format is one of ["text", "json", "yaml"], text
// output is a single line when short is true.
func (v Version) Write(w io.Writer, appName, format string, short bool) error {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return yaml.NewEncoder(w).Encode(v)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	if short {
		_, err := fmt.Fprintln(w, v.ShortLine())
		return err
	}
	_, err := fmt.Fprintf(w, `Application : %s
Version     : %s
GitCommit   : %s
GitTag      : %s
BuildDate   : %s
GoVersion   : %s
Platform    : %s
`, appName, v.Version, v.GitCommit, v.GitTag, v.BuildDate, v.GoVersion, v.Platform)
	return err
}
