package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"ridgeline/internal/heightfield"
	"ridgeline/internal/noise"
	"ridgeline/internal/projection"
	"ridgeline/internal/scene"
	"ridgeline/internal/terrain"
)

func buildTestScene(t *testing.T, seed float64) (*terrain.Mesh, []projection.Point) {
	t.Helper()

	m := terrain.NewMesh(10, 10, 2, 2)
	s, err := noise.NewSampler(noise.BackendSimplex, seed)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}
	if err := m.PopulateHeights(heightfield.New(s, seed), 3.0); err != nil {
		t.Fatalf("PopulateHeights failed: %v", err)
	}

	cam := scene.NewCamera(800, 600)
	points, err := projection.ProjectAll(m.Vertices(), mgl64.Ident4(), cam.ViewProjection(), 800, 600)
	if err != nil {
		t.Fatalf("ProjectAll failed: %v", err)
	}
	return m, points
}

// TestBuildPathGroupCount verifies the emitted group count equals the number
// of triangles the filter accepted and never exceeds the mesh total (a
// 2x2-segment grid has 8 triangles).
func TestBuildPathGroupCount(t *testing.T) {
	m, points := buildTestScene(t, 42.0)
	vis := Visibility{ViewportW: 800, ViewportH: 600}

	accepted := 0
	indices := m.Indices()
	for i := 0; i+2 < len(indices); i += 3 {
		if vis.Visible(points[indices[i]], points[indices[i+1]], points[indices[i+2]]) {
			accepted++
		}
	}

	p, err := BuildPath(m, points, vis)
	if err != nil {
		t.Fatalf("BuildPath failed: %v", err)
	}

	if p.GroupCount() != accepted {
		t.Errorf("GroupCount = %d, want %d", p.GroupCount(), accepted)
	}
	if p.GroupCount() > m.TriangleCount() {
		t.Errorf("GroupCount = %d exceeds triangle count %d", p.GroupCount(), m.TriangleCount())
	}
	if m.TriangleCount() != 8 {
		t.Errorf("TriangleCount = %d, want 8 for a 2x2 grid", m.TriangleCount())
	}

	if got := strings.Count(p.D(), "Z"); got != p.GroupCount() {
		t.Errorf("path data has %d Z commands, want %d", got, p.GroupCount())
	}
	if got := strings.Count(p.D(), "M "); got != p.GroupCount() {
		t.Errorf("path data has %d M commands, want %d", got, p.GroupCount())
	}
}

// TestBuildPathAllFiltered verifies an all-rejecting filter yields an empty
// path.
func TestBuildPathAllFiltered(t *testing.T) {
	m, points := buildTestScene(t, 42.0)

	far := make([]projection.Point, len(points))
	for i, p := range points {
		far[i] = projection.Point{X: p.X, Y: p.Y, Depth: 1.5}
	}

	p, err := BuildPath(m, far, Visibility{})
	if err != nil {
		t.Fatalf("BuildPath failed: %v", err)
	}
	if p.GroupCount() != 0 {
		t.Errorf("GroupCount = %d, want 0 when every depth is beyond the far plane", p.GroupCount())
	}
	if p.D() != "" {
		t.Errorf("path data = %q, want empty", p.D())
	}
}

// TestBuildPathPointCountMismatch verifies a wrong-sized point slice is
// rejected instead of emitting corrupt path data.
func TestBuildPathPointCountMismatch(t *testing.T) {
	m, points := buildTestScene(t, 42.0)
	if _, err := BuildPath(m, points[:len(points)-1], Visibility{}); err == nil {
		t.Errorf("expected error for mismatched point count")
	}
}

// TestBuildPathIdempotent verifies two builds over the same inputs are
// identical.
func TestBuildPathIdempotent(t *testing.T) {
	m, points := buildTestScene(t, 42.0)
	vis := Visibility{ViewportW: 800, ViewportH: 600}

	p1, err := BuildPath(m, points, vis)
	if err != nil {
		t.Fatalf("BuildPath failed: %v", err)
	}
	p2, err := BuildPath(m, points, vis)
	if err != nil {
		t.Fatalf("BuildPath failed: %v", err)
	}
	if p1.D() != p2.D() || p1.GroupCount() != p2.GroupCount() {
		t.Errorf("BuildPath not idempotent over identical inputs")
	}
}

// TestWriteSVGDocument verifies the serialized document declares the canvas
// size and the fixed stroke style.
func TestWriteSVGDocument(t *testing.T) {
	m, points := buildTestScene(t, 42.0)
	p, err := BuildPath(m, points, Visibility{})
	if err != nil {
		t.Fatalf("BuildPath failed: %v", err)
	}

	var buf bytes.Buffer
	WriteSVG(&buf, p, 800, 600)
	doc := buf.String()

	for _, want := range []string{
		`width="800"`,
		`height="600"`,
		`fill="none"`,
		`stroke="black"`,
		`stroke-width="0.5"`,
		"<path",
		"</svg>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

// TestWriteSVGIdempotent verifies exporting twice with no regeneration
// produces byte-identical documents.
func TestWriteSVGIdempotent(t *testing.T) {
	m, points := buildTestScene(t, 42.0)
	p, err := BuildPath(m, points, Visibility{})
	if err != nil {
		t.Fatalf("BuildPath failed: %v", err)
	}

	var a, b bytes.Buffer
	WriteSVG(&a, p, 800, 600)
	WriteSVG(&b, p, 800, 600)
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Errorf("two serializations of the same path differ")
	}
}

// TestWritePreview verifies the preview encodes a PNG with one pixel per grid
// vertex.
func TestWritePreview(t *testing.T) {
	m, _ := buildTestScene(t, 42.0)

	var buf bytes.Buffer
	if err := WritePreview(&buf, m); err != nil {
		t.Fatalf("WritePreview failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("preview produced no bytes")
	}
	// PNG signature
	if !bytes.HasPrefix(buf.Bytes(), []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("preview output is not a PNG")
	}
}
