//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifefx/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controls is the slice of the simulation the HUD reads and drives.
type Controls interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	Toggle()
	Reset()
}

// HUD renders the control panel in the top-right corner: play/pause, reset,
// a settings toggle revealing the parameter controls, and the generation
// counter.
type HUD struct {
	sim      Controls
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls     []hudControlState
	showSettings bool
	panelX       int
	screenW      int

	playRect     image.Rectangle
	resetRect    image.Rectangle
	settingsRect image.Rectangle
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim Controls) *HUD {
	h := &HUD{sim: sim}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for _, ctrl := range sim.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
	}
	h.layout()
	return h
}

// Update refreshes the cached snapshot and handles clicks. scale converts
// device pixels back to logical ones.
func (h *HUD) Update(scale float64) {
	if h == nil {
		return
	}
	h.snapshot = h.sim.Parameters()
	h.refreshControlValues()
	h.handleInput(scale)
}

// Draw paints the panel anchored to the right edge of screen.
func (h *HUD) Draw(screen *ebiten.Image, scale float64) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	h.screenW = int(float64(screen.Bounds().Dx()) / scale)
	h.panelX = h.screenW - panelWidth - panelMargin
	height := h.height()
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Deallocate()
		}
		h.panel = ebiten.NewImage(panelWidth, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 220})
	h.drawContents()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(h.panelX), panelMargin)
	op.GeoM.Scale(scale, scale)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) height() int {
	if !h.showSettings {
		return controlsTop
	}
	return controlsTop + len(h.controls)*lineHeight + panelPadding
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.intValue = parsed
		state.value = strconv.Itoa(parsed)
		state.hasValue = true
	}
}

func (h *HUD) handleInput(scale float64) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	mx, my := ebiten.CursorPosition()
	px := int(float64(mx)/scale) - h.panelX
	py := int(float64(my)/scale) - panelMargin
	switch {
	case pointInRect(px, py, h.playRect):
		h.sim.Toggle()
		return
	case pointInRect(px, py, h.resetRect):
		h.sim.Reset()
		return
	case pointInRect(px, py, h.settingsRect):
		h.showSettings = !h.showSettings
		return
	}
	if !h.showSettings {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, py, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, py, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	if state == nil || direction == 0 {
		return
	}
	step := max(state.control.Step, 1)
	target := state.control.Clamp(state.intValue + direction*step)
	if target == state.intValue {
		return
	}
	if h.sim.SetIntParameter(state.control.Key, target) {
		state.intValue = target
		state.value = strconv.Itoa(target)
	}
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	step := max(state.control.Step, 1)
	return state.control.Clamp(state.intValue+direction*step) != state.intValue
}

func (h *HUD) drawContents() {
	face := basicfont.Face7x13
	gen := "--"
	if p, ok := h.snapshot.Lookup("generation"); ok {
		gen = p.Value
	}
	text.Draw(h.panel, "Generation "+gen, face, panelPadding, panelPadding+headerBaseline, labelColor)

	playLabel := "Pause"
	if p, ok := h.snapshot.Lookup("running"); ok && p.Value != "true" {
		playLabel = "Play"
	}
	h.drawButton(h.playRect, playLabel, true)
	h.drawButton(h.resetRect, "Reset", true)
	h.drawButton(h.settingsRect, "Settings", true)

	if !h.showSettings {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		h.drawButton(state.minusRect, "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(state.plusRect, "+", state.hasValue && h.canAdjust(state, 1))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	rowY := panelPadding + headerBaseline + 10
	w := (panelWidth - 2*panelPadding - 2*buttonGap) / 3
	h.playRect = image.Rect(panelPadding, rowY, panelPadding+w, rowY+buttonSize)
	h.resetRect = image.Rect(h.playRect.Max.X+buttonGap, rowY, h.playRect.Max.X+buttonGap+w, rowY+buttonSize)
	h.settingsRect = image.Rect(h.resetRect.Max.X+buttonGap, rowY, panelWidth-panelPadding, rowY+buttonSize)

	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(panelWidth-panelPadding-buttonSize, buttonY, panelWidth-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

var (
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelWidth     = 240
	panelMargin    = 12
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 14
	labelBaseline  = 24
	controlsTop    = panelPadding + headerBaseline + 10 + buttonSize + panelPadding
)
