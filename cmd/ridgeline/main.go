package main

import (
	"flag"
	"os"

	"ridgeline/internal/app"
	"ridgeline/internal/config"
	"ridgeline/internal/logging"
	"ridgeline/internal/scene"
	"ridgeline/internal/terrain"
)

func main() {
	seed := flag.Float64("seed", -1, "terrain seed; negative picks a random seed")
	out := flag.String("out", "terrain.svg", "output SVG path")
	preview := flag.String("preview", "", "optional PNG preview path")
	width := flag.Int("width", 800, "viewport width in pixels")
	height := flag.Int("height", 600, "viewport height in pixels")
	segments := flag.Int("segments", 120, "grid segments per axis")
	backend := flag.String("backend", "simplex", "noise backend: simplex, opensimplex, perlin")
	strict := flag.Bool("strict", false, "cull triangles outside the near plane and viewport")
	flag.Parse()

	config.SetViewport(*width, *height)
	config.SetSegments(*segments, *segments)
	config.SetNoiseBackend(*backend)
	config.SetStrictCull(*strict)

	segX, segY := config.GetSegments()
	extW, extH := config.GetExtent()
	mesh := terrain.NewMesh(extW, extH, segX, segY)
	camera := scene.NewCamera(*width, *height)

	a := app.New(mesh, camera)

	var err error
	if *seed < 0 {
		err = a.Regenerate()
	} else {
		err = a.RegenerateWithSeed(*seed)
	}
	if err != nil {
		logging.Logger.Fatal("regeneration failed", "err", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		logging.Logger.Fatal("creating output file", "path", *out, "err", err)
	}
	if err := a.ExportSVG(f); err != nil {
		f.Close()
		logging.Logger.Fatal("export failed", "err", err)
	}
	if err := f.Close(); err != nil {
		logging.Logger.Fatal("closing output file", "path", *out, "err", err)
	}
	logging.Logger.Info("wrote vector document", "path", *out, "seed", a.Seed())

	if *preview != "" {
		p, err := os.Create(*preview)
		if err != nil {
			logging.Logger.Fatal("creating preview file", "path", *preview, "err", err)
		}
		if err := a.ExportPreview(p); err != nil {
			p.Close()
			logging.Logger.Fatal("preview failed", "err", err)
		}
		if err := p.Close(); err != nil {
			logging.Logger.Fatal("closing preview file", "path", *preview, "err", err)
		}
		logging.Logger.Info("wrote preview", "path", *preview)
	}
}
