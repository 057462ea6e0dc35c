package core

import (
	"testing"
	"time"
)

func TestPacerFirstCallOnlyPrimes(t *testing.T) {
	p := NewPacer(10)
	base := time.Unix(1000, 0)
	if p.Due(base) {
		t.Fatal("first callback must not step")
	}
	if p.Due(base.Add(100 * time.Millisecond)) {
		t.Fatal("elapsed equal to the interval must not step")
	}
	if !p.Due(base.Add(101 * time.Millisecond)) {
		t.Fatal("elapsed beyond the interval should step")
	}
	if p.Due(base.Add(150 * time.Millisecond)) {
		t.Fatal("pacing timestamp should have moved to the last step")
	}
}

func TestPacerNoBurstAfterIdle(t *testing.T) {
	p := NewPacer(60)
	base := time.Unix(0, 0)
	p.Due(base)
	steps := 0
	idle := base.Add(10 * time.Second)
	for i := 0; i < 5; i++ {
		if p.Due(idle) {
			steps++
		}
	}
	if steps != 1 {
		t.Fatalf("steps after idle = %d, want 1", steps)
	}
}

func TestPacerResetPrimesAgain(t *testing.T) {
	p := NewPacer(5)
	base := time.Unix(0, 0)
	p.Due(base)
	p.Reset()
	if p.Due(base.Add(time.Hour)) {
		t.Fatal("first callback after Reset must not step")
	}
	if !p.Due(base.Add(time.Hour + 201*time.Millisecond)) {
		t.Fatal("expected step one interval after re-priming")
	}
}

func TestPacerClampsSpeed(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{-5, MinSpeed},
		{0, MinSpeed},
		{1, 1},
		{30, 30},
		{60, 60},
		{500, MaxSpeed},
	}
	for _, tc := range cases {
		p := NewPacer(tc.in)
		if p.Speed() != tc.want {
			t.Errorf("NewPacer(%d).Speed() = %d, want %d", tc.in, p.Speed(), tc.want)
		}
		if p.Interval() != time.Second/time.Duration(tc.want) {
			t.Errorf("interval for %d = %v", tc.in, p.Interval())
		}
	}
}

func TestLayoutDims(t *testing.T) {
	l := DefaultLayout()
	cols, rows := l.Dims(Size{W: 1920, H: 1080})
	if cols != 213 || rows != 120 {
		t.Fatalf("Dims = %dx%d, want 213x120", cols, rows)
	}
	if c, r := l.Dims(Size{}); c != 0 || r != 0 {
		t.Fatalf("empty viewport Dims = %dx%d", c, r)
	}
	if x, y := l.Origin(2, 3); x != 18 || y != 27 {
		t.Fatalf("Origin(2,3) = (%v,%v)", x, y)
	}
}
