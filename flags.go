package main

import "flag"

// Command-line flags that control optional rendering, compute, and runtime
// behavior.
var (
	// debugFlag enables the FPS and sample-refresh timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and sample refresh overlay")

	// waveformFlag starts in the 1D waveform view instead of the point cloud.
	waveformFlag = flag.Bool("waveform", false, "start in the 1D waveform view (Tab toggles)")

	// cpuSamplesFlag forces the CPU sample backend even when OpenCL is compiled in.
	cpuSamplesFlag = flag.Bool("cpu-samples", false, "force the CPU strain sample backend")

	// enableAudioFlag toggles sonification of the current strain value.
	enableAudioFlag = flag.Bool("enable-audio", false, "enable audio output driven by the strain signal")
)
