package life

import (
	"slices"
	"testing"

	"lifefx/pkg/core"
)

func TestSeedAttemptsWithinClusterBounds(t *testing.T) {
	for _, name := range PlacementNames() {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Placement = name
			for seed := int64(1); seed <= 20; seed++ {
				g, stats := NewSeeded(120, 80, cfg, seed)
				if stats.Attempts < 500 || stats.Attempts > 1000 {
					t.Fatalf("seed %d: attempts = %d, want 500..1000", seed, stats.Attempts)
				}
				if stats.Placed > stats.Attempts {
					t.Fatalf("seed %d: placed %d exceeds attempts %d", seed, stats.Placed, stats.Attempts)
				}
				if got := g.Population(); got != stats.Placed {
					t.Fatalf("seed %d: population %d, placed %d", seed, got, stats.Placed)
				}
			}
		})
	}
}

func TestSeedPlacesOpaqueLiveCells(t *testing.T) {
	g, _ := NewSeeded(64, 48, DefaultConfig(), 7)
	if g.Population() == 0 {
		t.Fatal("seeding placed no cells")
	}
	for i, c := range g.Cells() {
		if c.Alive && c.Alpha != 1 {
			t.Fatalf("cell %d alive with alpha %v", i, c.Alpha)
		}
		if !c.Alive && c.Alpha != 0 {
			t.Fatalf("cell %d dead with alpha %v", i, c.Alpha)
		}
	}
	if g.Generation() != 0 {
		t.Fatalf("fresh grid generation = %d", g.Generation())
	}
}

// recordingPlacement reports every coordinate Seed hands to Accept.
type recordingPlacement struct {
	Placement
	seen [][2]int
}

func (r *recordingPlacement) Accept(x, y int) bool {
	r.seen = append(r.seen, [2]int{x, y})
	return r.Placement.Accept(x, y)
}

func TestSeedWrapsEveryCoordinate(t *testing.T) {
	// A grid smaller than the offset window forces wraparound on most draws.
	for _, name := range PlacementNames() {
		factory, _ := LookupPlacement(name)
		rng := core.NewRNG(3)
		rec := &recordingPlacement{Placement: factory(rng)}
		g := New(9, 5)
		g.Seed(DefaultConfig(), rec, rng)
		if len(rec.seen) == 0 {
			t.Fatalf("%s: no coordinates recorded", name)
		}
		for _, p := range rec.seen {
			if p[0] < 0 || p[0] >= 9 || p[1] < 0 || p[1] >= 5 {
				t.Fatalf("%s: coordinate %v outside grid", name, p)
			}
		}
	}
}

func TestSeedDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a, _ := NewSeeded(80, 60, cfg, 42)
	b, _ := NewSeeded(80, 60, cfg, 42)
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("same seed produced different grids")
	}
	c, _ := NewSeeded(80, 60, cfg, 43)
	if slices.Equal(a.Cells(), c.Cells()) {
		t.Fatal("different seeds produced identical grids")
	}
}

func TestSpiralCentersAroundGridCenter(t *testing.T) {
	s := spiral{rng: core.NewRNG(1)}
	x, y := s.Center(100, 100, 0, 5)
	if x != 65 || y != 50 {
		t.Fatalf("first spiral centre = (%d,%d), want (65,50)", x, y)
	}
	for i := 0; i < 200; i++ {
		dx, dy := s.Offset()
		if dx*dx+dy*dy > spiralCutoff*spiralCutoff {
			t.Fatalf("offset (%d,%d) beyond cutoff", dx, dy)
		}
	}
}

func TestSeedEmptyGrid(t *testing.T) {
	g, stats := NewSeeded(0, 0, DefaultConfig(), 1)
	if !g.Empty() || stats.Attempts != 0 {
		t.Fatalf("empty grid seeded: %+v", stats)
	}
}

func TestUnknownPlacementFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Placement = "nope"
	_, stats := NewSeeded(50, 50, cfg, 1)
	if stats.Attempts == 0 {
		t.Fatal("fallback placement did not seed")
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"clusters": "3", "cluster_min": "50", "cluster_max": "10", "placement": "uniform"})
	if c.Clusters != 3 || c.ClusterMin != 50 || c.ClusterMax != 50 || c.Placement != "uniform" {
		t.Fatalf("unexpected config %+v", c)
	}
	if got := FromMap(map[string]string{"placement": "bogus"}).Placement; got != DefaultPlacement {
		t.Fatalf("placement = %q, want default", got)
	}
	if got := FromMap(nil); got != DefaultConfig() {
		t.Fatalf("FromMap(nil) = %+v", got)
	}
}
