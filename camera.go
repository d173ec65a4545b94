package main

import "github.com/go-gl/mathgl/mgl32"

// FrameUniforms holds the per-frame shading inputs: the combined
// model-view-projection matrix and the scalar parameters pulled from the
// control panel. Rebuilt every frame; no history is retained.
type FrameUniforms struct {
	MVP       mgl32.Mat4
	Time      float32
	Frequency float32
	Amplitude float32
	WaveSpeed float32
}

// cameraEye places the camera on the +Z axis at distance orbitRadius/zoom
// from the origin.
func cameraEye(zoom float64) mgl32.Vec3 {
	return mgl32.Vec3{0, 0, float32(cameraOrbitRadius / zoom)}
}

// viewMatrix is the right-handed look-at from the orbit eye toward the
// origin, up +Y.
func viewMatrix(zoom float64) mgl32.Mat4 {
	return mgl32.LookAtV(cameraEye(zoom), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
}

// projectionMatrix is the right-handed 45-degree perspective projection.
// Independent of zoom; zooming moves the eye instead.
func projectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(cameraFOVDegrees), aspect, cameraNear, cameraFar)
}

// buildFrameUniforms assembles the uniforms for one frame from the elapsed
// time and the current control panel snapshot. The model matrix is identity,
// so MVP = projection * view.
func buildFrameUniforms(elapsed float64, p simParams, aspect float32) FrameUniforms {
	return FrameUniforms{
		MVP:       projectionMatrix(aspect).Mul4(viewMatrix(p.Zoom)),
		Time:      float32(elapsed),
		Frequency: float32(p.Frequency),
		Amplitude: float32(p.Energy),
		WaveSpeed: float32(p.WaveSpeed),
	}
}
