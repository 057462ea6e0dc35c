package core

import "testing"

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Key: "speed", Step: 1, Min: MinSpeed, Max: MaxSpeed}
	for in, want := range map[int]int{-3: 1, 0: 1, 1: 1, 42: 42, 60: 60, 61: 60} {
		if got := c.Clamp(in); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSnapshotLookup(t *testing.T) {
	snap := ParameterSnapshot{Params: []Parameter{
		{Key: "speed", Type: ParamTypeInt, Value: "12"},
		{Key: "running", Type: ParamTypeBool, Value: "true"},
	}}
	if p, ok := snap.Lookup("running"); !ok || p.Value != "true" {
		t.Fatalf("Lookup(running) = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("missing"); ok {
		t.Fatal("Lookup found a missing key")
	}
}
