package engine

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

type AssetPaths struct {
	Vertex, Fragment string
	Model            string
}

// Assets is everything read from disk before the first gl call. Read
// failures are kept next to the data so the viewer can log and carry on.
type Assets struct {
	VertexSource   string
	FragmentSource string
	ShaderErr      error

	Model    *Geometry
	ModelErr error
}

// LoadAssets reads the shader sources and decodes the model in parallel.
// The returned error is only set if ctx is done before loading finished.
func LoadAssets(ctx context.Context, paths AssetPaths) (*Assets, error) {
	var (
		a           = &Assets{}
		verr, ferr  error
		g, groupCtx = errgroup.WithContext(ctx)
	)

	g.Go(func() error {
		a.VertexSource, verr = ReadShaderSource(paths.Vertex)
		return nil
	})

	g.Go(func() error {
		a.FragmentSource, ferr = ReadShaderSource(paths.Fragment)
		return nil
	})

	g.Go(func() error {
		if err := groupCtx.Err(); err != nil {
			return err
		}

		a.Model, a.ModelErr = LoadModel(paths.Model)
		if a.ModelErr == nil {
			a.ModelErr = a.Model.Validate()
		}
		if a.ModelErr != nil {
			a.Model = &Geometry{}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.ShaderErr = errors.Join(verr, ferr)
	return a, nil
}
