// Package terrain holds the regular grid mesh whose elevations are driven by
// the height field.
package terrain

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"ridgeline/internal/heightfield"
)

// Mesh is a regular planar grid: (SegmentsX+1) x (SegmentsY+1) vertices and
// two triangles per grid cell. Vertex x/y and the index list are fixed at
// build time; only z values change when heights are repopulated.
type Mesh struct {
	Width     float64
	Height    float64
	SegmentsX int
	SegmentsY int

	vertices []mgl64.Vec3
	indices  []uint32
	dirty    bool
}

// NewMesh builds the grid centered on the origin of the terrain plane.
// Vertices are row-major, +x to the right and +y downward in plane space,
// consistent winding across all cells.
func NewMesh(width, height float64, segmentsX, segmentsY int) *Mesh {
	if segmentsX < 1 {
		segmentsX = 1
	}
	if segmentsY < 1 {
		segmentsY = 1
	}

	nx := segmentsX + 1
	ny := segmentsY + 1

	m := &Mesh{
		Width:     width,
		Height:    height,
		SegmentsX: segmentsX,
		SegmentsY: segmentsY,
		vertices:  make([]mgl64.Vec3, 0, nx*ny),
		indices:   make([]uint32, 0, 6*segmentsX*segmentsY),
	}

	stepX := width / float64(segmentsX)
	stepY := height / float64(segmentsY)
	for j := 0; j < ny; j++ {
		y := -height/2 + float64(j)*stepY
		for i := 0; i < nx; i++ {
			x := -width/2 + float64(i)*stepX
			m.vertices = append(m.vertices, mgl64.Vec3{x, y, 0})
		}
	}

	for j := 0; j < segmentsY; j++ {
		for i := 0; i < segmentsX; i++ {
			a := uint32(j*nx + i)
			b := a + 1
			c := a + uint32(nx)
			d := c + 1
			m.indices = append(m.indices, a, c, b)
			m.indices = append(m.indices, b, c, d)
		}
	}

	return m
}

// VertexCount returns the number of grid vertices.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// Vertex returns vertex i by value.
func (m *Mesh) Vertex(i int) mgl64.Vec3 {
	return m.vertices[i]
}

// Vertices returns the vertex slice. Callers must not mutate it; use
// PopulateHeights to change elevations.
func (m *Mesh) Vertices() []mgl64.Vec3 {
	return m.vertices
}

// Indices returns the flat triangle index list, 3 entries per triangle.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// Dirty reports whether elevations changed since the last ClearDirty.
func (m *Mesh) Dirty() bool {
	return m.dirty
}

// ClearDirty marks the vertex buffer as consumed by a downstream renderer.
func (m *Mesh) ClearDirty() {
	m.dirty = false
}

// PopulateHeights recomputes every vertex's z from the synthesizer, scaled by
// amplitude. x, y and the index list are untouched. The new elevations are
// computed into a scratch buffer first: on any error the mesh keeps its
// previous heights. Safe to call repeatedly on a re-seed without reallocating
// topology.
func (m *Mesh) PopulateHeights(syn *heightfield.Synthesizer, amplitude float64) error {
	if syn == nil {
		return fmt.Errorf("terrain: nil synthesizer")
	}

	heights := make([]float64, len(m.vertices))
	for i, v := range m.vertices {
		z := syn.Height(v.X(), v.Y()) * amplitude
		if math.IsNaN(z) || math.IsInf(z, 0) {
			return fmt.Errorf("terrain: non-finite height at vertex %d (%f, %f)", i, v.X(), v.Y())
		}
		heights[i] = z
	}

	for i := range m.vertices {
		m.vertices[i][2] = heights[i]
	}
	m.dirty = true
	return nil
}
