package generator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pthm/hxbundle"
	"github.com/pthm/hxbundle/lib/encoding"
	"github.com/pthm/hxbundle/lib/manifest"
)

// Options configures the generator.
type Options struct {
	DryRun bool

	// StrictModes rejects mode names and prop types without a loader code.
	StrictModes bool
	// TypedRegistry writes the registry without the numeric unquoting pass.
	TypedRegistry bool

	// File names inside the output directory. Empty names use the defaults.
	RegistryFile string
	IndexFile    string
	PreloadFile  string

	// Logger receives progress messages. Nil means no logging.
	Logger *zap.Logger
}

// OptionsFromManifest maps project configuration onto generator options.
func OptionsFromManifest(m *manifest.Manifest) Options {
	return Options{
		StrictModes:   m.Encoding.StrictModes,
		TypedRegistry: m.Encoding.TypedRegistry,
		RegistryFile:  m.Output.Registry,
		IndexFile:     m.Output.Index,
		PreloadFile:   m.Output.Preload,
	}
}

// Generator turns component descriptors into bundle artifacts.
type Generator struct {
	opts Options
	log  *zap.Logger
}

// New creates a new generator.
func New(opts Options) *Generator {
	def := manifest.Default("")
	if opts.RegistryFile == "" {
		opts.RegistryFile = def.Output.Registry
	}
	if opts.IndexFile == "" {
		opts.IndexFile = def.Output.Index
	}
	if opts.PreloadFile == "" {
		opts.PreloadFile = def.Output.Preload
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{
		opts: opts,
		log:  log,
	}
}

// Output is one encoded bundle, ready to be written.
type Output struct {
	ModulesID string
	BundleID  string
	FileName  string
	Content   string
	Priority  hxbundle.Priority
	Tags      []string
}

// Generate reads the descriptors file and writes every bundle, the
// registry, the bundle index and the preload fragment into outDir.
func (g *Generator) Generate(ctx context.Context, descriptorsPath, outDir string) (*Index, error) {
	desc, err := LoadDescriptors(descriptorsPath)
	if err != nil {
		return nil, err
	}
	if len(desc.Bundles) == 0 {
		return nil, fmt.Errorf("%s: %w", descriptorsPath, hxbundle.ErrNoBundles)
	}

	outputs, err := g.Encode(ctx, desc)
	if err != nil {
		return nil, err
	}

	if !g.opts.DryRun {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return nil, err
		}
	}

	idx := &Index{}
	for _, out := range outputs {
		if err := g.writeBundle(outDir, out); err != nil {
			return nil, err
		}
		idx.Bundles = append(idx.Bundles, IndexEntry{
			ModulesID:  out.ModulesID,
			BundleID:   out.BundleID,
			File:       out.FileName,
			Priority:   encoding.Priority(out.Priority),
			Components: out.Tags,
		})
	}

	if desc.Registry != nil {
		if err := g.writeRegistry(outDir, desc.Registry); err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		idx.Registry = g.opts.RegistryFile
	}

	if err := g.writePreload(ctx, outDir, outputs); err != nil {
		return nil, fmt.Errorf("preload: %w", err)
	}

	if err := g.writeIndex(outDir, idx); err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}

	return idx, nil
}

// Encode encodes every bundle in the descriptors. Bundles that encode to
// the same content share one output.
func (g *Generator) Encode(ctx context.Context, desc *Descriptors) ([]Output, error) {
	var outputs []Output
	seen := make(map[string]bool)

	for i, in := range desc.Bundles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out, err := g.encodeBundle(in)
		if err != nil {
			return nil, fmt.Errorf("bundle %d: %w", i, err)
		}

		if seen[out.BundleID] {
			g.log.Debug("skipping duplicate bundle",
				zap.String("modules", out.ModulesID),
				zap.String("id", out.BundleID))
			continue
		}
		seen[out.BundleID] = true
		outputs = append(outputs, out)
	}

	return outputs, nil
}

// encodeBundle builds the loader invocation for one bundle and names it by
// the hash of that text.
func (g *Generator) encodeBundle(in BundleInput) (Output, error) {
	b := in.Bundle()

	if g.opts.StrictModes {
		if err := checkStrict(b); err != nil {
			return Output{}, err
		}
	}

	modulesID := encoding.BundleModulesID(b)
	content := encoding.BundleContent("'"+modulesID+"'", in.Modules, encoding.ModeLoaders(b))
	id := encoding.BundleID(content)

	tags := make([]string, len(b.Components))
	for i, bc := range b.Components {
		tags[i] = encoding.Normalize(bc.Component.Tag)
	}

	return Output{
		ModulesID: modulesID,
		BundleID:  id,
		FileName:  encoding.BundleFileName(id),
		Content:   content,
		Priority:  in.Priority,
		Tags:      tags,
	}, nil
}

// checkStrict rejects values the loader has no code for.
func checkStrict(b hxbundle.Bundle) error {
	for _, bc := range b.Components {
		mode := encoding.Normalize(bc.ModeOrDefault().Name)
		if _, err := encoding.ModeNameStrict(mode); err != nil {
			return fmt.Errorf("%s: %w", bc.Component.Tag, err)
		}
		for name, prop := range bc.Component.Props.All() {
			if !prop.Type.Known() {
				return fmt.Errorf("%s.%s: %w: %q", bc.Component.Tag, name, hxbundle.ErrUnknownPropType, prop.Type)
			}
		}
	}
	return nil
}

// Clean removes generated files from outDir. Files listed in the bundle
// index are removed along with the index itself; without an index, any
// ionic.*.js file is treated as generated.
func (g *Generator) Clean(outDir string) error {
	var files []string

	indexPath := filepath.Join(outDir, g.opts.IndexFile)
	idx, err := ReadIndex(indexPath)
	switch {
	case err == nil:
		for _, e := range idx.Bundles {
			files = append(files, e.File)
		}
		if idx.Registry != "" {
			files = append(files, idx.Registry)
		}
		files = append(files, g.opts.PreloadFile, g.opts.IndexFile)
	case errors.Is(err, os.ErrNotExist):
		matches, err := filepath.Glob(filepath.Join(outDir, "ionic.*.js"))
		if err != nil {
			return err
		}
		for _, m := range matches {
			files = append(files, filepath.Base(m))
		}
	default:
		return err
	}

	for _, name := range files {
		path := filepath.Join(outDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		g.log.Info("removing", zap.String("file", path))
		if g.opts.DryRun {
			continue
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	}

	return nil
}
