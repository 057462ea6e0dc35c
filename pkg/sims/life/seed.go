package life

import (
	"math"
	"sort"

	"lifefx/pkg/core"

	"github.com/aquilax/go-perlin"
)

// Placement decides where the cells of one cluster land. Seed drives every
// strategy through the same loop: pick a centre, draw offsets, accept or skip.
type Placement interface {
	Center(cols, rows, cluster, clusters int) (int, int)
	Offset() (dx, dy int)
	Accept(x, y int) bool
}

// PlacementFactory constructs a Placement bound to the provided RNG.
type PlacementFactory func(rng *core.RNG) Placement

var placements = map[string]PlacementFactory{}

// RegisterPlacement adds a placement strategy under the provided name.
func RegisterPlacement(name string, f PlacementFactory) {
	if name == "" || f == nil {
		return
	}
	placements[name] = f
}

// LookupPlacement returns the named placement factory.
func LookupPlacement(name string) (PlacementFactory, bool) {
	f, ok := placements[name]
	return f, ok
}

// PlacementNames lists registered strategies in sorted order.
func PlacementNames() []string {
	names := make([]string, 0, len(placements))
	for name := range placements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SeedStats summarises a seeding pass.
type SeedStats struct {
	Attempts int
	Placed   int
}

// Seed scatters cfg.Clusters clusters of cfg.ClusterMin..cfg.ClusterMax
// placement attempts each. Every coordinate is wrapped into the grid before a
// cell is placed.
func (g *Grid) Seed(cfg Config, p Placement, rng *core.RNG) SeedStats {
	var stats SeedStats
	if g.Empty() || p == nil {
		return stats
	}
	for i := 0; i < cfg.Clusters; i++ {
		size := rng.IntRange(cfg.ClusterMin, cfg.ClusterMax)
		cx, cy := p.Center(g.cols, g.rows, i, cfg.Clusters)
		cx, cy = g.Wrap(cx, cy)
		for j := 0; j < size; j++ {
			stats.Attempts++
			dx, dy := p.Offset()
			x, y := g.Wrap(cx+dx, cy+dy)
			if !p.Accept(x, y) {
				continue
			}
			if !g.cells[g.Index(x, y)].Alive {
				stats.Placed++
			}
			g.Place(x, y)
		}
	}
	return stats
}

// NewSeeded allocates a grid and seeds it using cfg and seed. Unknown
// placement names fall back to DefaultPlacement.
func NewSeeded(cols, rows int, cfg Config, seed int64) (*Grid, SeedStats) {
	g := New(cols, rows)
	factory, ok := LookupPlacement(cfg.Placement)
	if !ok {
		factory = placements[DefaultPlacement]
	}
	rng := core.NewRNG(seed)
	stats := g.Seed(cfg, factory(rng), rng)
	return g, stats
}

const (
	uniformSpread = 15

	spiralRadiusStep = 0.15
	spiralSpread     = 30
	spiralCutoff     = 40
	spiralThinning   = 0.1

	noiseSpread     = 20
	noiseScale      = 12.0
	noiseThreshold  = 0.0
	noiseAlpha      = 2.0
	noiseBeta       = 2.0
	noiseIterations = 3
)

// uniform centres clusters anywhere and scatters offsets in a square window.
type uniform struct {
	rng *core.RNG
}

func (u uniform) Center(cols, rows, _, _ int) (int, int) {
	return u.rng.IntN(cols), u.rng.IntN(rows)
}

func (u uniform) Offset() (int, int) {
	return u.rng.IntRange(-uniformSpread, uniformSpread), u.rng.IntRange(-uniformSpread, uniformSpread)
}

func (u uniform) Accept(int, int) bool { return true }

// spiral walks clusters outward from the grid centre with a roughly normal
// offset distribution and light thinning.
type spiral struct {
	rng *core.RNG
}

func (s spiral) Center(cols, rows, cluster, clusters int) (int, int) {
	if clusters <= 0 {
		clusters = 1
	}
	angle := float64(cluster) * 2 * math.Pi / float64(clusters)
	radius := float64(cluster+1) * float64(min(cols, rows)) * spiralRadiusStep
	cx := math.Floor(float64(cols/2) + math.Cos(angle)*radius)
	cy := math.Floor(float64(rows/2) + math.Sin(angle)*radius)
	return int(cx), int(cy)
}

func (s spiral) Offset() (int, int) {
	for {
		dx := s.bell()
		dy := s.bell()
		if math.Hypot(float64(dx), float64(dy)) <= spiralCutoff {
			return dx, dy
		}
	}
}

func (s spiral) bell() int {
	sum := s.rng.Float64() + s.rng.Float64() + s.rng.Float64() - 1.5
	return int(math.Floor(sum * spiralSpread))
}

func (s spiral) Accept(int, int) bool { return s.rng.Float64() > spiralThinning }

// noise keeps offsets that land on high ground of a Perlin field.
type noise struct {
	rng   *core.RNG
	field *perlin.Perlin
}

func (n noise) Center(cols, rows, _, _ int) (int, int) {
	return n.rng.IntN(cols), n.rng.IntN(rows)
}

func (n noise) Offset() (int, int) {
	return n.rng.IntRange(-noiseSpread, noiseSpread), n.rng.IntRange(-noiseSpread, noiseSpread)
}

func (n noise) Accept(x, y int) bool {
	return n.field.Noise2D(float64(x)/noiseScale, float64(y)/noiseScale) > noiseThreshold
}

func init() {
	RegisterPlacement("uniform", func(rng *core.RNG) Placement { return uniform{rng: rng} })
	RegisterPlacement("spiral", func(rng *core.RNG) Placement { return spiral{rng: rng} })
	RegisterPlacement("noise", func(rng *core.RNG) Placement {
		return noise{rng: rng, field: perlin.NewPerlin(noiseAlpha, noiseBeta, noiseIterations, rng.Int64())}
	})
}
