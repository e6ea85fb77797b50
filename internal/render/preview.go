package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/colornames"

	"ridgeline/internal/terrain"
)

// Hypsometric tint bands from low to high elevation. Thresholds are fractions
// of the mesh's observed elevation range.
var previewBands = []struct {
	upTo float64
	c    color.RGBA
}{
	{0.15, colornames.Navy},
	{0.30, colornames.Steelblue},
	{0.45, colornames.Seagreen},
	{0.60, colornames.Olivedrab},
	{0.75, colornames.Peru},
	{0.90, colornames.Sienna},
	{1.01, colornames.Snow},
}

// WritePreview renders a top-down raster of the mesh's height field, one
// pixel per grid vertex, tinted by elevation band. Purely diagnostic; the SVG
// export never depends on it.
func WritePreview(w io.Writer, mesh *terrain.Mesh) error {
	if mesh == nil {
		return fmt.Errorf("render: nil mesh")
	}

	nx := mesh.SegmentsX + 1
	ny := mesh.SegmentsY + 1

	lo := mesh.Vertex(0).Z()
	hi := lo
	for i := 1; i < mesh.VertexCount(); i++ {
		z := mesh.Vertex(i).Z()
		if z < lo {
			lo = z
		}
		if z > hi {
			hi = z
		}
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, nx, ny))
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			z := mesh.Vertex(j*nx + i).Z()
			frac := (z - lo) / span
			img.SetRGBA(i, j, bandColor(frac))
		}
	}

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encoding preview: %w", err)
	}
	return nil
}

func bandColor(frac float64) color.RGBA {
	for _, band := range previewBands {
		if frac < band.upTo {
			return band.c
		}
	}
	return previewBands[len(previewBands)-1].c
}
