package term

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"lifefx/internal/app"
	"lifefx/internal/core"
	"lifefx/internal/driver"
	"lifefx/internal/render"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func TestTranslate(t *testing.T) {
	cases := []struct {
		ev   tcell.Event
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionReset},
		{tcell.NewEventKey(tcell.KeyCtrlR, 0, tcell.ModCtrl), ActionReset},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionToggle},
		{tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone), ActionFaster},
		{tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone), ActionSlower},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{tcell.NewEventResize(80, 24), ActionResize},
	}
	for _, tc := range cases {
		if got := Translate(tc.ev); got != tc.want {
			t.Errorf("Translate(%T) = %v, want %v", tc.ev, got, tc.want)
		}
	}
}

func TestApply(t *testing.T) {
	screen := newScreen(t, 40, 20)
	surface := render.NewTermSurface(screen)
	opts := driver.DefaultOptions()
	opts.Layout = render.TermLayout()
	sim, err := driver.New(opts, render.NewPainter(opts.Layout, render.ShapeSquare))
	if err != nil {
		t.Fatal(err)
	}
	sim.Mount(surface, surface.Size())

	Apply(ActionFaster, sim, surface)
	if sim.Speed() != core.DefaultSpeed+1 {
		t.Fatalf("speed = %d", sim.Speed())
	}
	Apply(ActionSlower, sim, surface)
	Apply(ActionSlower, sim, surface)
	if sim.Speed() != core.DefaultSpeed-1 {
		t.Fatalf("speed = %d", sim.Speed())
	}
	Apply(ActionToggle, sim, surface)
	if sim.Running() {
		t.Fatal("toggle should pause")
	}

	screen.SetSize(60, 10)
	Apply(ActionResize, sim, surface)
	if sim.Grid().Cols() != 30 || sim.Grid().Rows() != 10 {
		t.Fatalf("grid after resize = %dx%d", sim.Grid().Cols(), sim.Grid().Rows())
	}
	if sim.Running() {
		t.Fatal("paused simulation resumed on resize")
	}

	Apply(ActionReset, sim, surface)
	if !sim.Running() {
		t.Fatal("reset should resume")
	}
}

func TestAttachPaintsUntilCancelled(t *testing.T) {
	screen := newScreen(t, 120, 40)
	cfg := app.NewConfig()
	cfg.Seed = 5

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	err := Attach(ctx, screen, cfg)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Attach = %v, want deadline exceeded", err)
	}

	if line := row(screen, 39); !strings.Contains(line, "gen ") {
		t.Fatalf("status line missing: %q", line)
	}
}

func TestStatusLineFollowsControls(t *testing.T) {
	screen := newScreen(t, 160, 30)
	cfg := app.NewConfig()
	cfg.Seed = 9

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Attach(ctx, screen, cfg) }()

	time.Sleep(200 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, '+', tcell.ModNone)
	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Attach did not return after cancel")
	}
	line := row(screen, 29)
	if !strings.Contains(line, "speed 11/s") || !strings.Contains(line, "paused") {
		t.Fatalf("status line = %q, want speed 11/s and paused", line)
	}
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestAttachQuitsOnKey(t *testing.T) {
	screen := newScreen(t, 40, 12)
	done := make(chan error, 1)
	go func() { done <- Attach(context.Background(), screen, app.NewConfig()) }()

	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Attach = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Attach did not return after q")
	}
}

func TestAttachRejectsBadConfig(t *testing.T) {
	screen := newScreen(t, 10, 10)
	cfg := app.NewConfig()
	cfg.Shape = "hexagon"
	if err := Attach(context.Background(), screen, cfg); err == nil {
		t.Fatal("expected config error")
	}
}

func TestStatusLine(t *testing.T) {
	sim, err := driver.New(driver.DefaultOptions(), nil)
	if err != nil {
		t.Fatal(err)
	}
	sim.Mount(nil, core.Size{W: 90, H: 90})
	sim.Stop()
	line := statusLine(sim)
	if !strings.Contains(line, "gen 0") || !strings.Contains(line, "paused") || !strings.Contains(line, "speed 10/s") {
		t.Fatalf("status = %q", line)
	}
}
