package main

import (
	"context"
	"fmt"

	"github.com/philipparndt/gowall/internal/loader"
	"github.com/philipparndt/gowall/pkg/face"
	"github.com/philipparndt/gowall/pkg/stl"
)

// loadModel loads file and checks the vertex tolerance against its size
func loadModel(ctx context.Context, root *rootOptions, file string) (*stl.Model, error) {
	model, err := loader.Load(ctx, file)
	if err != nil {
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	if err := face.CheckTolerance(model, root.cfg.VertexTolerance); err != nil {
		return nil, err
	}
	return model, nil
}
