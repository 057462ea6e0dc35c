package app

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"time"

	"lifefx/internal/core"
	"lifefx/internal/driver"
	"lifefx/internal/render"
	"lifefx/pkg/sims/life"

	"github.com/BurntSushi/toml"
)

// Config represents the command-line parameters for the application. Values
// may also come from a TOML file named by -config; explicit flags win.
type Config struct {
	Speed      int     `toml:"speed"`
	Placement  string  `toml:"placement"`
	Shape      string  `toml:"shape"`
	CellSize   float64 `toml:"cell_size"`
	CellGap    float64 `toml:"cell_gap"`
	Clusters   int     `toml:"clusters"`
	ClusterMin int     `toml:"cluster_min"`
	ClusterMax int     `toml:"cluster_max"`
	Seed       int64   `toml:"seed"`
	TPS        int     `toml:"tps"`
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`

	File string `toml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	layout := core.DefaultLayout()
	seeding := life.DefaultConfig()
	return &Config{
		Speed:      core.DefaultSpeed,
		Placement:  seeding.Placement,
		Shape:      render.ShapeCircle.String(),
		CellSize:   layout.CellSize,
		CellGap:    layout.Gap,
		Clusters:   seeding.Clusters,
		ClusterMin: seeding.ClusterMin,
		ClusterMax: seeding.ClusterMax,
		TPS:        60,
		Width:      1280,
		Height:     720,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per second (1-60)")
	fs.StringVar(&c.Placement, "placement", c.Placement, fmt.Sprintf("seeding placement %v", life.PlacementNames()))
	fs.StringVar(&c.Shape, "shape", c.Shape, "cell shape (circle or square)")
	fs.Float64Var(&c.CellSize, "cell", c.CellSize, "cell size in pixels")
	fs.Float64Var(&c.CellGap, "gap", c.CellGap, "gap between cells in pixels")
	fs.IntVar(&c.Clusters, "clusters", c.Clusters, "number of seed clusters")
	fs.IntVar(&c.ClusterMin, "cluster-min", c.ClusterMin, "fewest placement attempts per cluster")
	fs.IntVar(&c.ClusterMax, "cluster-max", c.ClusterMax, "most placement attempts per cluster")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first seeding (0 uses the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame callbacks per second")
	fs.IntVar(&c.Width, "width", c.Width, "initial viewport width")
	fs.IntVar(&c.Height, "height", c.Height, "initial viewport height")
	fs.StringVar(&c.File, "config", c.File, "optional TOML config file")
}

// Parse parses args into fs (which must have been bound to c) and, if a config
// file was named, loads it underneath the flags that were set explicitly.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.File == "" {
		return nil
	}
	explicit := map[string]string{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
	if err := c.Load(c.File); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply -%s: %w", name, err)
		}
	}
	return nil
}

// Load decodes a TOML file over the current values.
func (c *Config) Load(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("config %s: ignoring unknown keys %v", path, undecoded)
	}
	return nil
}

// Options converts the configuration into driver options and a cell shape.
func (c *Config) Options() (driver.Options, render.Shape, error) {
	shape, err := render.ParseShape(c.Shape)
	if err != nil {
		return driver.Options{}, shape, err
	}
	if _, ok := life.LookupPlacement(c.Placement); !ok {
		return driver.Options{}, shape, fmt.Errorf("unknown placement %q (have %v)", c.Placement, life.PlacementNames())
	}
	if c.CellSize <= 0 || c.CellGap < 0 {
		return driver.Options{}, shape, fmt.Errorf("invalid cell geometry size=%v gap=%v", c.CellSize, c.CellGap)
	}
	if c.Clusters < 0 || c.ClusterMin < 0 || c.ClusterMax < 0 {
		return driver.Options{}, shape, fmt.Errorf("invalid clusters=%d cluster_min=%d cluster_max=%d", c.Clusters, c.ClusterMin, c.ClusterMax)
	}
	opts := driver.DefaultOptions()
	opts.Layout = core.Layout{CellSize: c.CellSize, Gap: c.CellGap}
	opts.Seeding = life.FromMap(c.seeding())
	opts.Speed = core.ClampSpeed(c.Speed)
	opts.Seed = c.Seed
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts, shape, nil
}

// seeding renders the engine knobs in the key/value form life.FromMap reads.
func (c *Config) seeding() map[string]string {
	return map[string]string{
		"clusters":    strconv.Itoa(c.Clusters),
		"cluster_min": strconv.Itoa(c.ClusterMin),
		"cluster_max": strconv.Itoa(c.ClusterMax),
		"placement":   c.Placement,
	}
}
