package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraEyeZoom(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, cameraEye(1))
	assert.Equal(t, mgl32.Vec3{0, 0, 1.5}, cameraEye(2))
}

func TestProjectionIndependentOfZoom(t *testing.T) {
	// Zoom moves the eye; the projection never changes.
	aspect := float32(screenW) / float32(screenH)
	u1 := buildFrameUniforms(0, simParams{Zoom: 1, Frequency: 10, Energy: 50, WaveSpeed: 1}, aspect)
	u2 := buildFrameUniforms(0, simParams{Zoom: 2, Frequency: 10, Energy: 50, WaveSpeed: 1}, aspect)

	proj := projectionMatrix(aspect)
	assert.Equal(t, proj.Mul4(viewMatrix(1)), u1.MVP)
	assert.Equal(t, proj.Mul4(viewMatrix(2)), u2.MVP)
	assert.NotEqual(t, u1.MVP, u2.MVP)
}

func TestViewMatrixMapsEyeAndOrigin(t *testing.T) {
	view := viewMatrix(1)

	// The eye lands at the view-space origin.
	eye := view.Mul4x1(mgl32.Vec4{0, 0, 3, 1})
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, float64(eye[i]), 1e-6)
	}

	// The look-at target sits straight ahead on the view-space -Z axis.
	origin := view.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assert.InDelta(t, 0, float64(origin.X()), 1e-6)
	assert.InDelta(t, 0, float64(origin.Y()), 1e-6)
	assert.InDelta(t, -3, float64(origin.Z()), 1e-6)
}

func TestBuildFrameUniformsFields(t *testing.T) {
	p := simParams{Mass: 30, WaveSpeed: 0.7, Frequency: 42, Energy: 13, Zoom: 1}
	u := buildFrameUniforms(2.5, p, 4.0/3.0)

	assert.Equal(t, float32(2.5), u.Time)
	assert.Equal(t, float32(42), u.Frequency)
	assert.Equal(t, float32(13), u.Amplitude)
	assert.Equal(t, float32(0.7), u.WaveSpeed)
}

func TestProjectionDepthConvention(t *testing.T) {
	// Right-handed projection: points in front of the eye produce positive
	// clip w, and depth increases toward the far plane.
	proj := projectionMatrix(1)

	near := proj.Mul4x1(mgl32.Vec4{0, 0, -1, 1})
	far := proj.Mul4x1(mgl32.Vec4{0, 0, -50, 1})
	assert.Greater(t, near.W(), float32(0))
	assert.Greater(t, far.W(), near.W())
	assert.Greater(t, far.Z()/far.W(), near.Z()/near.W())
}
