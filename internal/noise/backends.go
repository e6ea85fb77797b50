package noise

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sampler is a deterministic 2D scalar noise source. Implementations must be
// pure: same (x, y) in, same value out, and safe for concurrent reads.
type Sampler interface {
	Sample(x, y float64) float64
}

// Backend names accepted by NewSampler.
const (
	BackendSimplex     = "simplex"
	BackendOpenSimplex = "opensimplex"
	BackendPerlin      = "perlin"
)

// simplexSampler is the built-in permutation-table simplex noise.
type simplexSampler struct {
	table Table
}

func (s *simplexSampler) Sample(x, y float64) float64 {
	return Sample(s.table, x, y)
}

type opensimplexSampler struct {
	n opensimplex.Noise
}

func (s *opensimplexSampler) Sample(x, y float64) float64 {
	return s.n.Eval2(x, y)
}

type perlinSampler struct {
	p *perlin.Perlin
}

func (s *perlinSampler) Sample(x, y float64) float64 {
	return s.p.Noise2D(x, y)
}

// NewSampler builds a sampler for the named backend, seeded deterministically.
// The default terrain pipeline uses BackendSimplex; the others exist for
// visual comparison and share the same contract.
func NewSampler(backend string, seed float64) (Sampler, error) {
	switch backend {
	case BackendSimplex:
		return &simplexSampler{table: NewTable(seed)}, nil
	case BackendOpenSimplex:
		return &opensimplexSampler{n: opensimplex.New(seedSource(seed))}, nil
	case BackendPerlin:
		// alpha=2, beta=2, n=3 gives terrain-like noise
		return &perlinSampler{p: perlin.NewPerlin(2, 2, 3, seedSource(seed))}, nil
	default:
		return nil, fmt.Errorf("unknown noise backend %q", backend)
	}
}
