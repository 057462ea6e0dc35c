package life

import "strconv"

// DefaultPlacement names the placement used when none is configured.
const DefaultPlacement = "spiral"

// Config controls how a fresh grid is seeded.
type Config struct {
	Clusters   int
	ClusterMin int
	ClusterMax int
	Placement  string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Clusters: 5, ClusterMin: 100, ClusterMax: 200, Placement: DefaultPlacement}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["clusters"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Clusters = parsed
		}
	}
	if v, ok := cfg["cluster_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ClusterMin = parsed
		}
	}
	if v, ok := cfg["cluster_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ClusterMax = parsed
		}
	}
	if c.ClusterMax < c.ClusterMin {
		c.ClusterMax = c.ClusterMin
	}
	if v, ok := cfg["placement"]; ok {
		if _, known := LookupPlacement(v); known {
			c.Placement = v
		}
	}
	return c
}
