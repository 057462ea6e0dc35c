//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"math"
	"time"

	"lifefx/internal/core"
	"lifefx/internal/driver"
	"lifefx/internal/render"
	"lifefx/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the simulation driver to the ebiten.Game interface. The grid is
// painted into an offscreen canvas only when the driver steps or reseeds, and
// the canvas is blitted every frame.
type Game struct {
	sim     *driver.Simulation
	surface *render.EbitenSurface
	canvas  *ebiten.Image
	hud     *ui.HUD

	view    core.Size
	scale   float64
	mounted bool

	nextView  core.Size
	nextScale float64
}

// New constructs a Game for the provided simulation.
func New(sim *driver.Simulation) *Game {
	return &Game{
		sim:     sim,
		surface: render.NewEbitenSurface(),
		hud:     ui.NewHUD(sim),
		scale:   1,
	}
}

// Run opens a window and blocks until it is closed.
func Run(cfg *Config) error {
	opts, shape, err := cfg.Options()
	if err != nil {
		return err
	}
	sim, err := driver.New(opts, render.NewPainter(opts.Layout, shape))
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}

	ebiten.SetWindowTitle("lifefx")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(New(sim)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update handles input, viewport changes and the frame callback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) ||
		(ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyR)) {
		g.sim.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) {
		g.sim.SetSpeed(g.sim.Speed() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) {
		g.sim.SetSpeed(g.sim.Speed() - 1)
	}

	g.applyViewport()
	g.hud.Update(g.scale)
	g.sim.Frame(time.Now())
	return nil
}

// applyViewport reallocates the canvas and reseeds when the window size or the
// device scale changed since the last frame.
func (g *Game) applyViewport() {
	if g.nextView.Empty() {
		return
	}
	if g.mounted && g.nextView == g.view && g.nextScale == g.scale {
		return
	}
	g.view, g.scale = g.nextView, g.nextScale
	w, h := scaled(g.view.W, g.scale), scaled(g.view.H, g.scale)
	if g.canvas != nil {
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
	g.surface.Target(g.canvas, g.scale)

	if !g.mounted {
		g.sim.Mount(g.surface, g.view)
		g.mounted = true
		return
	}
	g.sim.Resize(g.view)
}

// Draw renders the current canvas and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}
	g.hud.Draw(screen, g.scale)
}

// Layout claims the full window at device resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	g.nextView = core.Size{W: outsideWidth, H: outsideHeight}
	g.nextScale = scale
	return scaled(outsideWidth, scale), scaled(outsideHeight, scale)
}

func scaled(v int, scale float64) int {
	return max(int(math.Ceil(float64(v)*scale)), 1)
}
