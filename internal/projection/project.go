// Package projection maps 3D mesh vertices into viewport pixel coordinates
// with a retained normalized depth.
package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNonFinite is returned when a vertex or transform produces NaN/Inf
// anywhere in the projection chain.
var ErrNonFinite = errors.New("projection: non-finite coordinate")

// Point is a projected vertex: screen-space pixels plus post-divide NDC depth.
// Depth is nominally in [-1, 1] for points inside the frustum.
type Point struct {
	X     float64
	Y     float64
	Depth float64
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Project transforms one vertex by the model matrix, then the combined
// view-projection matrix, divides by w to reach normalized device
// coordinates, and maps NDC x/y into pixel space. Screen y is flipped: screen
// origin is top-left while NDC y grows upward. Depth is ndc.z unchanged.
// Pure: no shared state across calls.
func Project(v mgl64.Vec3, model, viewProj mgl64.Mat4, viewportW, viewportH int) (Point, error) {
	if !finite(v.X()) || !finite(v.Y()) || !finite(v.Z()) {
		return Point{}, fmt.Errorf("%w: vertex (%v)", ErrNonFinite, v)
	}

	world := model.Mul4x1(v.Vec4(1))
	clip := viewProj.Mul4x1(world)

	w := clip.W()
	if w == 0 || !finite(w) {
		return Point{}, fmt.Errorf("%w: clip w=%v for vertex (%v)", ErrNonFinite, w, v)
	}

	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	ndcZ := clip.Z() / w
	if !finite(ndcX) || !finite(ndcY) || !finite(ndcZ) {
		return Point{}, fmt.Errorf("%w: ndc (%v, %v, %v) for vertex (%v)", ErrNonFinite, ndcX, ndcY, ndcZ, v)
	}

	return Point{
		X:     (ndcX + 1) * float64(viewportW) / 2,
		Y:     (-ndcY + 1) * float64(viewportH) / 2,
		Depth: ndcZ,
	}, nil
}

// ProjectAll projects every vertex in order. The first failing vertex aborts
// the pass with its error; no partial result is returned.
func ProjectAll(vertices []mgl64.Vec3, model, viewProj mgl64.Mat4, viewportW, viewportH int) ([]Point, error) {
	points := make([]Point, len(vertices))
	for i, v := range vertices {
		p, err := Project(v, model, viewProj, viewportW, viewportH)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		points[i] = p
	}
	return points, nil
}
