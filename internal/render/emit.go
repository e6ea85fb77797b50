package render

import (
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo"

	"ridgeline/internal/projection"
	"ridgeline/internal/terrain"
)

// Stroke styling for the emitted outlines: a single stroked, unfilled style at
// a fixed width.
const (
	strokeColor = "black"
	strokeWidth = 0.5
)

// Path is the accumulated set of visible triangle outlines for one export.
// Immutable once built; serialized exactly once.
type Path struct {
	d      string
	groups int
}

// GroupCount returns the number of closed triangle outlines in the path.
func (p Path) GroupCount() int {
	return p.groups
}

// D returns the SVG path data: `M x,y L x,y L x,y Z` groups separated by
// spaces, in mesh index order.
func (p Path) D() string {
	return p.d
}

// BuildPath walks the mesh's triangle index list in order, looks up each
// triangle's projected points, and appends one closed three-segment outline
// per triangle the filter accepts. No sorting or depth ordering: later
// triangles are never occluded by earlier ones. Degenerate (zero-area)
// triangles are emitted as-is; vector renderers handle them.
func BuildPath(mesh *terrain.Mesh, points []projection.Point, vis Visibility) (Path, error) {
	if mesh == nil {
		return Path{}, fmt.Errorf("render: nil mesh")
	}
	if len(points) != mesh.VertexCount() {
		return Path{}, fmt.Errorf("render: %d projected points for %d vertices", len(points), mesh.VertexCount())
	}

	indices := mesh.Indices()
	var sb strings.Builder
	groups := 0

	for i := 0; i+2 < len(indices); i += 3 {
		a := points[indices[i]]
		b := points[indices[i+1]]
		c := points[indices[i+2]]

		if !vis.Visible(a, b, c) {
			continue
		}

		if groups > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "M %s,%s L %s,%s L %s,%s Z",
			coord(a.X), coord(a.Y), coord(b.X), coord(b.Y), coord(c.X), coord(c.Y))
		groups++
	}

	return Path{d: sb.String(), groups: groups}, nil
}

// coord formats one path coordinate compactly.
func coord(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

// WriteSVG serializes the path as a self-contained SVG document: a fixed-size
// canvas with one stroked, unfilled path element holding every accepted
// outline.
func WriteSVG(w io.Writer, p Path, width, height int) {
	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Path(p.D(), fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%g"`, strokeColor, strokeWidth))
	canvas.End()
}
