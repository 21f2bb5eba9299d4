package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pthm/hxbundle"
	"github.com/pthm/hxbundle/lib/encoding"
)

// writeBundle writes one bundle file. Files are named by content, so an
// existing file with the same name already holds the same bytes.
func (g *Generator) writeBundle(outDir string, out Output) error {
	path := filepath.Join(outDir, out.FileName)

	if existing, err := os.ReadFile(path); err == nil && string(existing) == out.Content {
		g.log.Debug("skipping unchanged", zap.String("file", path))
		return nil
	}

	g.log.Info("generating",
		zap.String("file", path),
		zap.String("modules", out.ModulesID))

	if g.opts.DryRun {
		return nil
	}
	return os.WriteFile(path, []byte(out.Content), 0644)
}

// writeRegistry writes the registry text.
func (g *Generator) writeRegistry(outDir string, reg hxbundle.Registry) error {
	var (
		text string
		err  error
	)
	if g.opts.TypedRegistry {
		text, err = encoding.RegistryTyped(reg)
	} else {
		text, err = encoding.Registry(reg)
	}
	if err != nil {
		return err
	}

	return g.writeFile(filepath.Join(outDir, g.opts.RegistryFile), []byte(text))
}

// writePreload writes the HTML fragment referencing every bundle file:
// script tags for high priority bundles, prefetch links for low ones.
func (g *Generator) writePreload(ctx context.Context, outDir string, outputs []Output) error {
	var buf bytes.Buffer
	for _, out := range outputs {
		if err := hxbundle.BundleTag(out.FileName, out.Priority).Render(ctx, &buf); err != nil {
			return err
		}
		buf.WriteByte('\n')
	}

	return g.writeFile(filepath.Join(outDir, g.opts.PreloadFile), buf.Bytes())
}

// writeIndex writes the CBOR bundle index.
func (g *Generator) writeIndex(outDir string, idx *Index) error {
	data, err := MarshalIndex(idx)
	if err != nil {
		return err
	}
	return g.writeFile(filepath.Join(outDir, g.opts.IndexFile), data)
}

func (g *Generator) writeFile(path string, data []byte) error {
	g.log.Info("generating", zap.String("file", path))
	if g.opts.DryRun {
		return nil
	}
	return os.WriteFile(path, data, 0644)
}
