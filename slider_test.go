package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliderSetFromCursorClamps(t *testing.T) {
	s := &slider{min: 5, max: 100, x: 50, y: 10}

	s.setFromCursor(50 - 200)
	assert.Equal(t, 5.0, s.value)

	s.setFromCursor(50 + sliderTrackW + 200)
	assert.Equal(t, 100.0, s.value)

	s.setFromCursor(50 + sliderTrackW/2)
	assert.InDelta(t, 52.5, s.value, 0.5)
}

func TestSliderDragLifecycle(t *testing.T) {
	s := &slider{min: 0, max: 10, x: 0, y: 20}

	// Press on the track grabs the knob and sets the value immediately.
	s.update(sliderTrackW/2, 20, true, true)
	assert.True(t, s.dragging)
	assert.InDelta(t, 5.0, s.value, 0.1)

	// Dragging outside the track keeps following the cursor, clamped.
	s.update(sliderTrackW*2, 300, true, false)
	assert.True(t, s.dragging)
	assert.Equal(t, 10.0, s.value)

	// Release stops the drag; further motion changes nothing.
	s.update(0, 20, false, false)
	assert.False(t, s.dragging)
	s.update(0, 20, false, false)
	assert.Equal(t, 10.0, s.value)
}

func TestSliderContains(t *testing.T) {
	s := &slider{min: 0, max: 1, x: 100, y: 50}
	assert.True(t, s.contains(100, 50))
	assert.True(t, s.contains(100+sliderTrackW, 50+sliderTrackH))
	assert.False(t, s.contains(100, 50+sliderKnobH))
	assert.False(t, s.contains(100+sliderTrackW+sliderKnobW+1, 50))
}

func TestControlPanelDefaults(t *testing.T) {
	p := newControlPanel().params()
	assert.Equal(t, massDefault, p.Mass)
	assert.Equal(t, waveSpeedDefault, p.WaveSpeed)
	assert.Equal(t, frequencyDefault, p.Frequency)
	assert.Equal(t, energyDefault, p.Energy)
	assert.Equal(t, zoomDefault, p.Zoom)
}

func TestBinarySystemFromParams(t *testing.T) {
	sys := simParams{Mass: 42}.binarySystem()
	assert.Equal(t, 42.0, sys.Mass1)
	assert.Equal(t, 42.0, sys.Mass2)
	assert.Equal(t, sourceDistancePc, sys.Distance)
	assert.Zero(t, sys.Eccentricity)
}
