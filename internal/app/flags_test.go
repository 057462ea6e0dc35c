package app

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"lifefx/internal/render"
	"lifefx/pkg/sims/life"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := cfg.Parse(fs, args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := parse(t)
	if cfg.Speed != 10 || cfg.Placement != "spiral" || cfg.Shape != "circle" || cfg.CellSize != 8 || cfg.CellGap != 1 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	opts, shape, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if shape != render.ShapeCircle || opts.Layout.Pitch() != 9 || opts.Seeding.Clusters != 5 {
		t.Fatalf("unexpected options %+v shape %v", opts, shape)
	}
	if opts.Seed == 0 {
		t.Fatal("zero seed should be replaced by a clock seed")
	}
}

func TestConfigFileUnderFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.toml")
	body := "speed = 25\nplacement = \"noise\"\nshape = \"square\"\nseed = 7\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := parse(t, "-config", path, "-speed", "40")
	if cfg.Speed != 40 {
		t.Fatalf("explicit flag lost: speed = %d", cfg.Speed)
	}
	if cfg.Placement != "noise" || cfg.Shape != "square" || cfg.Seed != 7 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	opts, shape, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Seed != 7 || shape != render.ShapeSquare || opts.Seeding.Placement != "noise" {
		t.Fatalf("options = %+v, %v", opts, shape)
	}
}

func TestSeedingKnobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.toml")
	body := "clusters = 3\ncluster_min = 10\ncluster_max = 20\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := parse(t, "-config", path, "-cluster-max", "40", "-placement", "uniform")
	opts, _, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	want := life.Config{Clusters: 3, ClusterMin: 10, ClusterMax: 40, Placement: "uniform"}
	if opts.Seeding != want {
		t.Fatalf("seeding = %+v, want %+v", opts.Seeding, want)
	}

	cfg = parse(t, "-cluster-min", "50", "-cluster-max", "10")
	opts, _, err = cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Seeding.ClusterMin != 50 || opts.Seeding.ClusterMax != 50 {
		t.Fatalf("inverted range = %+v", opts.Seeding)
	}
}

func TestConfigFileMissing(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := cfg.Parse(fs, []string{"-config", filepath.Join(t.TempDir(), "absent.toml")}); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestOptionsValidation(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Shape = "triangle" },
		func(c *Config) { c.Placement = "grid" },
		func(c *Config) { c.CellSize = 0 },
		func(c *Config) { c.CellGap = -1 },
		func(c *Config) { c.Clusters = -1 },
		func(c *Config) { c.ClusterMin = -5 },
	}
	for i, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if _, _, err := cfg.Options(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestSpeedClamped(t *testing.T) {
	cfg := parse(t, "-speed", "500")
	opts, _, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Speed != 60 {
		t.Fatalf("speed = %d, want 60", opts.Speed)
	}
}
