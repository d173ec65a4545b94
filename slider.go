package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// simParams is the per-frame snapshot of the control panel. The render loop
// pulls one snapshot each update; nothing pushes values into the renderer.
type simParams struct {
	Mass      float64
	WaveSpeed float64
	Frequency float64
	Energy    float64
	Zoom      float64
}

// slider is a horizontal track with a draggable knob mapping cursor position
// linearly onto [min, max]. Values clamp to the range; there is no other
// validation.
type slider struct {
	label    string
	min, max float64
	value    float64
	x, y     int
	dragging bool
}

// contains reports whether the cursor is on the slider's hit area (the track
// plus the knob height above and below it).
func (s *slider) contains(mx, my int) bool {
	pad := sliderKnobH / 2
	return mx >= s.x-sliderKnobW && mx <= s.x+sliderTrackW+sliderKnobW &&
		my >= s.y-pad && my <= s.y+sliderTrackH+pad
}

// setFromCursor maps the cursor x coordinate onto the slider range, clamped.
func (s *slider) setFromCursor(mx int) {
	frac := float64(mx-s.x) / sliderTrackW
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	s.value = s.min + frac*(s.max-s.min)
}

// knobX returns the knob center x for the current value.
func (s *slider) knobX() float32 {
	frac := (s.value - s.min) / (s.max - s.min)
	return float32(s.x) + float32(frac*sliderTrackW)
}

// update processes one frame of mouse input for the slider.
func (s *slider) update(mx, my int, pressed, justPressed bool) {
	if justPressed && s.contains(mx, my) {
		s.dragging = true
	}
	if !pressed {
		s.dragging = false
	}
	if s.dragging {
		s.setFromCursor(mx)
	}
}

// draw renders the track, knob, and label.
func (s *slider) draw(dst *ebiten.Image) {
	track := color.RGBA{70, 70, 90, 255}
	knob := color.RGBA{220, 220, 240, 255}
	if s.dragging {
		knob = color.RGBA{255, 200, 120, 255}
	}
	vector.DrawFilledRect(dst, float32(s.x), float32(s.y), sliderTrackW, sliderTrackH, track, false)
	vector.DrawFilledRect(dst, s.knobX()-sliderKnobW/2, float32(s.y)-(sliderKnobH-sliderTrackH)/2, sliderKnobW, sliderKnobH, knob, false)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("%s %.1f", s.label, s.value), s.x+sliderTrackW+12, s.y-6)
}

// controlPanel groups the five parameter sliders.
type controlPanel struct {
	mass      *slider
	waveSpeed *slider
	frequency *slider
	energy    *slider
	zoom      *slider
	sliders   []*slider
}

// newControlPanel lays the sliders out vertically at the panel origin with
// their default values.
func newControlPanel() *controlPanel {
	c := &controlPanel{
		mass:      &slider{label: "mass", min: massMin, max: massMax, value: massDefault},
		waveSpeed: &slider{label: "speed", min: waveSpeedMin, max: waveSpeedMax, value: waveSpeedDefault},
		frequency: &slider{label: "freq", min: frequencyMin, max: frequencyMax, value: frequencyDefault},
		energy:    &slider{label: "energy", min: energyMin, max: energyMax, value: energyDefault},
		zoom:      &slider{label: "zoom", min: zoomMin, max: zoomMax, value: zoomDefault},
	}
	c.sliders = []*slider{c.mass, c.waveSpeed, c.frequency, c.energy, c.zoom}
	for i, s := range c.sliders {
		s.x = panelX
		s.y = panelY + i*sliderSpacing
	}
	return c
}

// update feeds the current mouse state to every slider.
func (c *controlPanel) update() {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justPressed := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	for _, s := range c.sliders {
		s.update(mx, my, pressed, justPressed)
	}
}

// draw renders the full panel.
func (c *controlPanel) draw(dst *ebiten.Image) {
	for _, s := range c.sliders {
		s.draw(dst)
	}
}

// params returns the current slider values as an immutable snapshot.
func (c *controlPanel) params() simParams {
	return simParams{
		Mass:      c.mass.value,
		WaveSpeed: c.waveSpeed.value,
		Frequency: c.frequency.value,
		Energy:    c.energy.value,
		Zoom:      c.zoom.value,
	}
}

// binarySystem builds the binary-system parameters for the snapshot; the mass
// slider drives both companions and the source distance is fixed.
func (p simParams) binarySystem() BinarySystemParameters {
	return BinarySystemParameters{
		Mass1:    p.Mass,
		Mass2:    p.Mass,
		Distance: sourceDistancePc,
	}
}
