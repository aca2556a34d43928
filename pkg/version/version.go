package version

import "runtime"

// Set by Go Releaser.
var (
	version    string = "<unknown>"
	date       string = "<unknown>"
	prerelease string = ""
)

func Get() string {
	return version
}

func Prerelease() bool {
	return prerelease != ""
}

func Date() string {
	return date
}

// Metadata describes the running binary. It is printed by the version
// command and reported by the health endpoint.
type Metadata struct {
	Version string `json:"version"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
	Built   string `json:"built,omitempty"`
}

// Collect returns metadata for the running binary.
func Collect() Metadata {
	m := Metadata{
		Version: Get(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if date != "<unknown>" {
		m.Built = date
	}
	return m
}
