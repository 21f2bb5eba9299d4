// Package manifest handles hxbundle.toml project configuration.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/pthm/hxbundle"
)

// FileName is the name of the project configuration file.
const FileName = "hxbundle.toml"

// Manifest represents an hxbundle.toml project configuration.
type Manifest struct {
	Project  Project  `toml:"project"`
	Input    Input    `toml:"input"`
	Output   Output   `toml:"output"`
	Encoding Encoding `toml:"encoding"`

	// Dir is the directory containing the hxbundle.toml file (set at load time).
	Dir string `toml:"-"`
}

// Project contains project metadata.
type Project struct {
	Name string `toml:"name"`
}

// Input locates the descriptors written by the compiler front end.
type Input struct {
	Descriptors string `toml:"descriptors"`
}

// Output configures where artifacts are written.
type Output struct {
	Dir      string `toml:"dir"`
	Registry string `toml:"registry"`
	Index    string `toml:"index"`
	Preload  string `toml:"preload"`
}

// Encoding selects how unrecognized values are handled.
type Encoding struct {
	// StrictModes rejects mode names and prop types the loader has no
	// code for instead of falling back to strings.
	StrictModes bool `toml:"strict-modes"`
	// TypedRegistry skips the numeric unquoting pass over the registry.
	TypedRegistry bool `toml:"typed-registry"`
}

// Default returns the configuration used when no hxbundle.toml exists.
func Default(dir string) *Manifest {
	m := &Manifest{Dir: dir}
	m.applyDefaults()
	return m
}

// Load parses an hxbundle.toml file from the given directory.
func Load(dir string) (*Manifest, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses a manifest from an explicit path, whatever the file is
// named. Relative paths inside it resolve against the file's directory.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", hxbundle.ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	m.Dir, err = filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", dir, err)
	}

	m.applyDefaults()
	return &m, nil
}

// FindAndLoad walks up from startDir to find an hxbundle.toml file,
// then loads and returns the manifest. Returns nil if no manifest is found.
func FindAndLoad(startDir string) (*Manifest, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			return nil, nil
		}
		dir = parent
	}
}

func (m *Manifest) applyDefaults() {
	if m.Input.Descriptors == "" {
		m.Input.Descriptors = "components.json"
	}
	if m.Output.Dir == "" {
		m.Output.Dir = "build"
	}
	if m.Output.Registry == "" {
		m.Output.Registry = "ionic.registry.json"
	}
	if m.Output.Index == "" {
		m.Output.Index = "bundles.cbor"
	}
	if m.Output.Preload == "" {
		m.Output.Preload = "ionic.preload.html"
	}
}

// DescriptorsPath returns the absolute path of the descriptors file.
func (m *Manifest) DescriptorsPath() string {
	return m.resolve(m.Input.Descriptors)
}

// OutputDir returns the absolute path of the output directory.
func (m *Manifest) OutputDir() string {
	return m.resolve(m.Output.Dir)
}

func (m *Manifest) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Dir, p)
}
