package main

// Rendering, sampling, and physical configuration constants used throughout
// the application. These values define the point-cloud dimensions, the strain
// sample buffer layout, the camera model, and the slider ranges exposed in
// the control panel.
const (
	screenW, screenH = 640, 480
	windowScale      = 2

	// gridDim is the lattice edge length; the point cloud holds gridDim^3 points.
	gridDim = 16

	// sampleCount is the fixed size of the per-frame strain sample buffer.
	sampleCount = 1024

	// samplesPerCycle sets the sample spacing to 1/(samplesPerCycle*frequency),
	// so one waveform cycle spans exactly samplesPerCycle samples.
	samplesPerCycle = 32

	cameraFOVDegrees  = 45.0
	cameraNear        = 0.1
	cameraFar         = 100.0
	cameraOrbitRadius = 3.0

	// Physical constants (SI) used to convert solar masses and parsecs into a
	// dimensionless characteristic strain.
	gravitationalConstant = 6.67430e-11
	speedOfLight          = 2.99792458e8
	solarMassKg           = 1.98892e30
	parsecMeters          = 3.0857e16

	// sourceDistancePc is the fixed distance to the simulated binary system.
	sourceDistancePc = 100.0

	// strainDisplayGain maps the physically tiny strain values into visible
	// point displacement; maxPointDisplacement caps the radial scale change.
	strainDisplayGain    = 2.5e11
	maxPointDisplacement = 0.9
	pointSizePx          = 5.0
	audioStrainGain      = 2.5e11

	// Slider ranges and defaults.
	massMin, massMax, massDefault                = 5.0, 100.0, 30.0
	waveSpeedMin, waveSpeedMax, waveSpeedDefault = 0.1, 2.0, 1.0
	frequencyMin, frequencyMax, frequencyDefault = 1.0, 100.0, 10.0
	energyMin, energyMax, energyDefault          = 0.0, 100.0, 50.0
	zoomMin, zoomMax, zoomDefault                = 0.5, 10.0, 1.0

	// Control panel layout.
	sliderTrackW  = 150
	sliderTrackH  = 4
	sliderKnobW   = 6
	sliderKnobH   = 14
	sliderSpacing = 26
	panelX        = 12
	panelY        = 16
)
