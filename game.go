package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game wires the control panel, the sample solver, and the renderer into
// ebiten's frame callback. There is a single operating mode: once per display
// refresh, Update pulls a parameter snapshot, rebuilds the uniforms, and
// refreshes the sample buffer; Draw then renders whichever view is active.
type Game struct {
	controls *controlPanel
	renderer *pointCloudRenderer
	waveform *waveformView
	solver   sampleSolver

	start        time.Time
	elapsed      float64
	uniforms     FrameUniforms
	waveformMode bool

	lastRefresh    time.Duration
	lastComputeLog time.Time

	audioCtx    *audio.Context
	audioStream *strainAudioStream
	audioPlayer *audio.Player
}

// newGame constructs a fully initialized Game: static grid, renderer buffers,
// the best available sample backend, and the optional audio pipeline.
func newGame() *Game {
	g := &Game{
		controls:     newControlPanel(),
		renderer:     newPointCloudRenderer(buildGrid(gridDim)),
		waveform:     newWaveformView(),
		start:        time.Now(),
		waveformMode: *waveformFlag,
	}

	if !*cpuSamplesFlag {
		if solver, err := newOpenCLSampleSolver(); err != nil {
			log.Printf("OpenCL sample solver unavailable, using CPU workers: %v", err)
		} else {
			log.Printf("OpenCL sample solver enabled (%s)", solver.Backend())
			g.solver = solver
		}
	}
	if g.solver == nil {
		g.solver = newCPUSampleSolver()
	}

	if *enableAudioFlag {
		g.audioCtx = audio.NewContext(audioSampleRate)
		g.audioStream = newStrainAudioStream()
		if player, err := g.audioCtx.NewPlayer(g.audioStream); err != nil {
			log.Printf("Audio player creation failed: %v", err)
			g.audioStream = nil
		} else {
			g.audioPlayer = player
			g.audioPlayer.Play()
		}
	}
	return g
}

// Update pulls the current slider values, rebuilds the frame uniforms, and
// refreshes the strain sample buffer.
func (g *Game) Update() error {
	g.controls.update()
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.waveformMode = !g.waveformMode
	}

	g.elapsed = time.Since(g.start).Seconds()
	p := g.controls.params()
	g.uniforms = buildFrameUniforms(g.elapsed, p, float32(screenW)/float32(screenH))

	refreshStart := time.Now()
	if err := g.solver.Refresh(g.elapsed, p.Frequency, p.Energy, p.binarySystem()); err != nil {
		// Frame-skippable: keep the previous buffer, the next refresh simply
		// tries again. Log at most once per second.
		if time.Since(g.lastComputeLog) >= time.Second {
			log.Printf("sample refresh failed, keeping previous buffer: %v", err)
			g.lastComputeLog = time.Now()
		}
	}
	g.lastRefresh = time.Since(refreshStart)

	if g.audioStream != nil {
		if samples := g.solver.Samples(); len(samples) > 0 {
			g.audioStream.SetStrain(samples[0])
		}
	}
	return nil
}

// Draw renders the active view, the control panel, and the optional debug
// overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	samples := g.solver.Samples()
	if g.waveformMode {
		g.waveform.draw(screen, samples, float64(g.uniforms.Frequency))
	} else {
		g.renderer.Draw(screen, g.uniforms, samples)
	}
	g.controls.draw(screen)

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f  TPS: %.1f\nbackend: %s\nrefresh: %.2f ms",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.solver.Backend(), g.lastRefresh.Seconds()*1000)
		ebitenutil.DebugPrintAt(screen, msg, panelX, screenH-56)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return screenW, screenH }
