package generator

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/pthm/hxbundle"
)

// Descriptors is the document the compiler front end hands over: the
// bundles to build and the registry to publish.
type Descriptors struct {
	Bundles  []BundleInput     `json:"bundles" msgpack:"bundles"`
	Registry hxbundle.Registry `json:"registry,omitempty" msgpack:"registry,omitempty"`
}

// BundleInput is one bundle plus the transpiled module code shipped with it.
// Module code is either inline (Modules) or read from ModulesFile, resolved
// relative to the descriptors file.
type BundleInput struct {
	Components  []hxbundle.BundleComponent `json:"components" msgpack:"components"`
	Modules     string                     `json:"modules,omitempty" msgpack:"modules,omitempty"`
	ModulesFile string                     `json:"modulesFile,omitempty" msgpack:"modulesFile,omitempty"`
	Priority    hxbundle.Priority          `json:"priority,omitempty" msgpack:"priority,omitempty"`
}

// Bundle returns the bundle described by the input.
func (in BundleInput) Bundle() hxbundle.Bundle {
	return hxbundle.Bundle{Components: in.Components}
}

// LoadDescriptors reads a descriptors file. The format follows the file
// extension: .json, or .msgpack / .mp for msgpack.
func LoadDescriptors(path string) (*Descriptors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	desc, err := DecodeDescriptors(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	base := filepath.Dir(path)
	for i := range desc.Bundles {
		in := &desc.Bundles[i]
		if in.ModulesFile == "" {
			continue
		}
		modulesPath := in.ModulesFile
		if !filepath.IsAbs(modulesPath) {
			modulesPath = filepath.Join(base, modulesPath)
		}
		code, err := os.ReadFile(modulesPath)
		if err != nil {
			return nil, fmt.Errorf("bundle %d modules: %w", i, err)
		}
		in.Modules = string(code)
	}

	return desc, nil
}

// DecodeDescriptors decodes descriptors in the format named by ext.
func DecodeDescriptors(data []byte, ext string) (*Descriptors, error) {
	var desc Descriptors

	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(data, &desc); err != nil {
			return nil, err
		}
	case ".msgpack", ".mp":
		if err := msgpack.Unmarshal(data, &desc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", hxbundle.ErrUnsupportedFormat, ext)
	}

	return &desc, nil
}
