package main

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// pointCloudRenderer draws the static lattice as a point cloud. It owns the
// vertex and index slices exclusively; both are allocated once at
// construction and overwritten in place every frame, never resized. The
// displacement of each point by the strain buffer happens here, in the CPU
// vertex stage, before the single DrawTriangles submission.
type pointCloudRenderer struct {
	points   []gridPoint
	radii    []float32
	vertices []ebiten.Vertex
	indices  []uint16
	whiteSub *ebiten.Image
}

// newPointCloudRenderer precomputes per-point radii and the static index
// pattern (two triangles per point quad).
func newPointCloudRenderer(points []gridPoint) *pointCloudRenderer {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	r := &pointCloudRenderer{
		points:   points,
		radii:    make([]float32, len(points)),
		vertices: make([]ebiten.Vertex, len(points)*4),
		indices:  make([]uint16, len(points)*6),
		whiteSub: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
	for i, p := range points {
		r.radii[i] = float32(math.Sqrt(float64(p.x*p.x + p.y*p.y + p.z*p.z)))
	}
	for q := 0; q < len(points); q++ {
		base := uint16(q * 4)
		r.indices[q*6+0] = base
		r.indices[q*6+1] = base + 1
		r.indices[q*6+2] = base + 2
		r.indices[q*6+3] = base + 1
		r.indices[q*6+4] = base + 3
		r.indices[q*6+5] = base + 2
	}
	return r
}

// radialSampleIndex picks the strain sample for a point at the given radius
// using the retarded-time convention: points farther from the origin read
// later samples, and the wave speed stretches the pattern across the cloud.
// The index wraps so the displacement field stays periodic in radius.
func radialSampleIndex(radius, frequency, waveSpeed float32, n int) int {
	if n <= 0 {
		return 0
	}
	if waveSpeed <= 0 {
		return 0
	}
	idx := int(radius / waveSpeed * samplesPerCycle * frequency)
	if idx < 0 {
		idx = 0
	}
	return idx % n
}

// pointDisplacement converts a raw strain sample into the radial scale delta
// applied to a grid point, clamped so extreme slider settings cannot turn the
// cloud inside out.
func pointDisplacement(sample float32) float32 {
	d := float32(strainDisplayGain) * sample
	if d > maxPointDisplacement {
		d = maxPointDisplacement
	} else if d < -maxPointDisplacement {
		d = -maxPointDisplacement
	}
	return d
}

// Draw transforms every grid point by the current uniforms, displaces it
// radially by its strain sample, and submits the surviving points as one
// triangle batch. Points behind the eye or outside the depth range are
// skipped for the frame.
func (r *pointCloudRenderer) Draw(screen *ebiten.Image, u FrameUniforms, samples []float32) {
	bounds := screen.Bounds()
	halfW := float32(bounds.Dx()) / 2
	halfH := float32(bounds.Dy()) / 2

	quads := 0
	for i, p := range r.points {
		var s float32
		if len(samples) > 0 {
			s = samples[radialSampleIndex(r.radii[i], u.Frequency, u.WaveSpeed, len(samples))]
		}
		disp := pointDisplacement(s)
		scale := 1 + disp

		clip := u.MVP.Mul4x1(mgl32.Vec4{p.x * scale, p.y * scale, p.z * scale, 1})
		w := clip.W()
		if w <= 0 {
			continue
		}
		ndcZ := clip.Z() / w
		if ndcZ < -1 || ndcZ > 1 {
			continue
		}
		sx := (clip.X()/w + 1) * halfW
		sy := (1 - clip.Y()/w) * halfH
		half := float32(pointSizePx) / w / 2

		boost := disp
		if boost < 0 {
			boost = -boost
		}
		if boost > 1 {
			boost = 1
		}
		cr := 0.35 + 0.25*boost
		cg := 0.45 + 0.35*boost
		cb := 0.75 + 0.25*boost

		base := quads * 4
		for corner := 0; corner < 4; corner++ {
			v := &r.vertices[base+corner]
			dx, dy := -half, -half
			if corner&1 != 0 {
				dx = half
			}
			if corner&2 != 0 {
				dy = half
			}
			v.DstX = sx + dx
			v.DstY = sy + dy
			v.SrcX = 1
			v.SrcY = 1
			v.ColorR = cr
			v.ColorG = cg
			v.ColorB = cb
			v.ColorA = 1
		}
		quads++
	}
	if quads == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(r.vertices[:quads*4], r.indices[:quads*6], r.whiteSub, op)
}
