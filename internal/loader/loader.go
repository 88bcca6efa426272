// Package loader loads meshes from STL or OpenSCAD sources.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/gowall/pkg/openscad"
	"github.com/philipparndt/gowall/pkg/stl"
)

// Load parses an .stl file, or renders an .scad file to a temporary STL
// and parses that. Every call returns a model with a fresh ID.
func Load(ctx context.Context, path string) (*stl.Model, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		model, err := stl.Parse(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		return model, nil

	case ".scad":
		return loadOpenSCAD(ctx, path)

	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", filepath.Ext(path))
	}
}

func loadOpenSCAD(ctx context.Context, path string) (*stl.Model, error) {
	tmp, err := os.CreateTemp("", "gowall-*.stl")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	renderer := openscad.NewRenderer(filepath.Dir(path))
	if err := renderer.RenderToSTL(ctx, path, tmp.Name()); err != nil {
		return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
	}

	model, err := stl.Parse(tmp.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
	}
	if model.Name == "" {
		model.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return model, nil
}

// WatchList returns the files whose changes require reloading path:
// the file itself, plus its use/include dependencies for OpenSCAD sources.
func WatchList(path string) ([]string, error) {
	if strings.ToLower(filepath.Ext(path)) != ".scad" {
		return []string{path}, nil
	}

	deps, err := openscad.NewRenderer(filepath.Dir(path)).ResolveDependencies(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return deps, nil
}
