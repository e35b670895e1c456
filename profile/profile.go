// Package profile loads the tmm.yaml project profile.
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the profile name looked up when none is given explicitly.
const FileName = "tmm.yaml"

// Profile describes an assembly project.
type Profile struct {
	Name    string   `yaml:"name"`
	Sources []string `yaml:"sources"`
	Format  string   `yaml:"format"`
	Verbose bool     `yaml:"verbose"`

	// dir is the directory the profile was loaded from.
	dir string
}

// LoadProfile loads a project profile from a YAML file.
func LoadProfile(filename string) (*Profile, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	var profile Profile
	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)
	if err := dec.Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	switch profile.Format {
	case "":
		profile.Format = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid format in profile %s: %s", filename, profile.Format)
	}

	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to determine absolute path: %w", err)
	}
	profile.dir = filepath.Dir(abs)
	return &profile, nil
}

// SourcePaths returns the profile's sources resolved against the directory
// holding the profile.
func (p *Profile) SourcePaths() []string {
	paths := make([]string, len(p.Sources))
	for i, src := range p.Sources {
		if filepath.IsAbs(src) {
			paths[i] = src
		} else {
			paths[i] = filepath.Join(p.dir, src)
		}
	}
	return paths
}
