// Package app wires the terrain pipeline behind two command handlers:
// regenerate (new seed, new heights) and export (project, filter, emit). The
// embedding front-end invokes these synchronously; there is no event loop.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"ridgeline/internal/config"
	"ridgeline/internal/heightfield"
	"ridgeline/internal/logging"
	"ridgeline/internal/noise"
	"ridgeline/internal/projection"
	"ridgeline/internal/render"
	"ridgeline/internal/scene"
	"ridgeline/internal/terrain"
)

var (
	ErrMissingMesh   = errors.New("app: mesh collaborator not configured")
	ErrMissingCamera = errors.New("app: camera collaborator not configured")
)

// App owns the pipeline wiring for one terrain instance: the mesh, the camera
// it never mutates, the current seed, and the noise sampler built from it.
type App struct {
	mesh   *terrain.Mesh
	camera *scene.Camera
	model  mgl64.Mat4
	seed   float64
}

// New binds the mesh and camera collaborators. The model matrix starts as
// identity; the terrain plane is placed in world space as built.
func New(mesh *terrain.Mesh, camera *scene.Camera) *App {
	return &App{
		mesh:   mesh,
		camera: camera,
		model:  mgl64.Ident4(),
	}
}

// Seed returns the seed of the last successful regeneration.
func (a *App) Seed() float64 {
	return a.seed
}

// Regenerate picks a fresh seed and resynthesizes the height field. Topology
// and camera are untouched.
func (a *App) Regenerate() error {
	return a.RegenerateWithSeed(rand.Float64() * 1000)
}

// RegenerateWithSeed rebuilds the permutation table for the given seed and
// repopulates mesh heights. On failure the mesh keeps its previous height
// field and the previous seed stays current.
func (a *App) RegenerateWithSeed(seed float64) error {
	if a.mesh == nil {
		return ErrMissingMesh
	}

	backend := config.GetNoiseBackend()
	sampler, err := noise.NewSampler(backend, seed)
	if err != nil {
		return fmt.Errorf("app: building sampler: %w", err)
	}

	syn := heightfield.New(sampler, seed)
	if err := a.mesh.PopulateHeights(syn, config.GetAmplitude()); err != nil {
		logging.Logger.Error("terrain regeneration failed", "seed", seed, "err", err)
		return fmt.Errorf("app: regenerating heights: %w", err)
	}

	a.seed = seed
	logging.Logger.Info("terrain regenerated",
		"seed", seed, "backend", backend, "vertices", a.mesh.VertexCount())
	return nil
}

// ExportSVG projects the current terrain through the camera, filters
// triangles, and writes the vector document to w. A failed export leaves the
// terrain untouched. With a fixed camera and no intervening regeneration,
// repeated exports produce identical documents.
func (a *App) ExportSVG(w io.Writer) error {
	if a.mesh == nil {
		return ErrMissingMesh
	}
	if a.camera == nil {
		return ErrMissingCamera
	}

	vw, vh := config.GetViewport()
	points, err := projection.ProjectAllParallel(context.Background(),
		a.mesh.Vertices(), a.model, a.camera.ViewProjection(), vw, vh, 0)
	if err != nil {
		return fmt.Errorf("app: projecting mesh: %w", err)
	}

	vis := render.Visibility{
		Strict:    config.GetStrictCull(),
		ViewportW: vw,
		ViewportH: vh,
	}
	path, err := render.BuildPath(a.mesh, points, vis)
	if err != nil {
		return fmt.Errorf("app: building path: %w", err)
	}

	render.WriteSVG(w, path, vw, vh)
	logging.Logger.Debug("vector export",
		"triangles", a.mesh.TriangleCount(), "visible", path.GroupCount())
	return nil
}

// ExportPreview writes the diagnostic PNG raster of the current height field.
func (a *App) ExportPreview(w io.Writer) error {
	if a.mesh == nil {
		return ErrMissingMesh
	}
	return render.WritePreview(w, a.mesh)
}
