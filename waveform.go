package main

import (
	"fmt"
	"image/color"
	"math"
	"math/cmplx"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"
)

// waveformView draws the raw strain sample buffer as a 1D trace with a
// dominant-frequency readout. Scratch buffers are reused across frames.
type waveformView struct {
	scratch []float64
	mags    []float64
}

func newWaveformView() *waveformView {
	return &waveformView{
		scratch: make([]float64, sampleCount),
		mags:    make([]float64, sampleCount/2),
	}
}

// peakMagnitude returns the largest absolute sample value, or 0 for an empty
// or silent buffer.
func (v *waveformView) peakMagnitude(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	buf := v.scratch[:len(samples)]
	for i, s := range samples {
		buf[i] = math.Abs(float64(s))
	}
	return floats.Max(buf)
}

// dominantFrequency estimates the strongest spectral component of the buffer
// sampled at sampleRate Hz. The DC bin is excluded.
func (v *waveformView) dominantFrequency(samples []float32, sampleRate float64) float64 {
	if len(samples) < 2 || sampleRate <= 0 {
		return 0
	}
	buf := v.scratch[:len(samples)]
	for i, s := range samples {
		buf[i] = float64(s)
	}
	spectrum := fft.FFTReal(buf)
	mags := v.mags[:len(samples)/2]
	mags[0] = 0
	for i := 1; i < len(mags); i++ {
		mags[i] = cmplx.Abs(spectrum[i])
	}
	return float64(floats.MaxIdx(mags)) * sampleRate / float64(len(samples))
}

// draw renders the trace centered vertically, normalized by the buffer peak,
// plus the frequency readout.
func (v *waveformView) draw(dst *ebiten.Image, samples []float32, frequency float64) {
	bounds := dst.Bounds()
	width := float32(bounds.Dx())
	midY := float32(bounds.Dy()) / 2
	span := float32(bounds.Dy()) * 0.35

	axis := color.RGBA{60, 60, 80, 255}
	trace := color.RGBA{120, 220, 160, 255}
	vector.StrokeLine(dst, 0, midY, width, midY, 1, axis, false)

	if len(samples) < 2 {
		return
	}
	peak := v.peakMagnitude(samples)
	if peak == 0 {
		peak = 1
	}
	step := width / float32(len(samples)-1)
	prevX := float32(0)
	prevY := midY - float32(float64(samples[0])/peak)*span
	for i := 1; i < len(samples); i++ {
		x := float32(i) * step
		y := midY - float32(float64(samples[i])/peak)*span
		vector.StrokeLine(dst, prevX, prevY, x, y, 1, trace, false)
		prevX, prevY = x, y
	}

	dominant := v.dominantFrequency(samples, samplesPerCycle*frequency)
	msg := fmt.Sprintf("peak strain %.3e\ndominant %.1f Hz", peak, dominant)
	ebitenutil.DebugPrintAt(dst, msg, bounds.Dx()-170, 8)
}
