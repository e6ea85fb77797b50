// Package render classifies projected triangles and serializes the accepted
// outlines as a vector document.
package render

import (
	"ridgeline/internal/projection"
)

// IsVisible is the baseline per-triangle depth test: a triangle is emitted iff
// all three projected depths are strictly less than 1, i.e. no vertex lies
// beyond the far clip plane. It is a coarse approximation: no occlusion, no
// back-face culling, no near-plane or viewport clipping.
func IsVisible(a, b, c projection.Point) bool {
	return a.Depth < 1 && b.Depth < 1 && c.Depth < 1
}

// Visibility configures triangle classification. The zero value is the
// baseline far-depth test. Strict mode additionally rejects triangles with a
// vertex at or before the near plane (depth <= -1) and triangles entirely
// outside the viewport bounds.
type Visibility struct {
	Strict    bool
	ViewportW int
	ViewportH int
}

// Visible reports whether the triangle (a, b, c) should be emitted.
func (v Visibility) Visible(a, b, c projection.Point) bool {
	if !IsVisible(a, b, c) {
		return false
	}
	if !v.Strict {
		return true
	}

	if a.Depth <= -1 || b.Depth <= -1 || c.Depth <= -1 {
		return false
	}

	// Reject only when all three vertices are beyond the same viewport edge;
	// a triangle straddling an edge still contributes a partial outline.
	w := float64(v.ViewportW)
	h := float64(v.ViewportH)
	if a.X < 0 && b.X < 0 && c.X < 0 {
		return false
	}
	if a.X > w && b.X > w && c.X > w {
		return false
	}
	if a.Y < 0 && b.Y < 0 && c.Y < 0 {
		return false
	}
	if a.Y > h && b.Y > h && c.Y > h {
		return false
	}
	return true
}
