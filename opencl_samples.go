//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jgillich/go-opencl/cl"
)

// openCLSampleSolver evaluates the strain sample buffer on an OpenCL device.
// Each refresh enqueues a single 1D dispatch over sampleCount work items and
// blocks on the read-back, so the caller sees the same synchronous contract as
// the CPU backend.
type openCLSampleSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	outBuf     *cl.MemObject
	out        []float32
	deviceName string
}

const strainKernelSource = `#define GRAV_CONST   6.67430e-11f
#define LIGHT_SPEED  2.99792458e8f
#define SOLAR_MASS   1.98892e30f
#define PARSEC_M     3.0857e16f
#define TWO_PI       6.28318530717958647692f

__kernel void strain_samples(
    const int sample_count,
    const float base_time,
    const float sample_dt,
    const float frequency,
    const float amplitude,
    const float mass1,
    const float mass2,
    const float distance_pc,
    const float eccentricity,
    __global float* out)
{
    int i = get_global_id(0);
    if (i >= sample_count) {
        return;
    }
    float total = mass1 + mass2;
    float h0 = 0.0f;
    if (total > 0.0f && distance_pc > 0.0f) {
        float reduced_kg = mass1 * mass2 / total * SOLAR_MASS;
        float dist_m = distance_pc * PARSEC_M;
        h0 = 4.0f * GRAV_CONST * reduced_kg / (LIGHT_SPEED * LIGHT_SPEED * dist_m);
        h0 *= 1.0f + eccentricity;
    }
    float t = base_time + (float)i * sample_dt;
    out[i] = h0 * amplitude * sin(TWO_PI * frequency * t);
}`

// newOpenCLSampleSolver locates a device, builds the strain kernel, and
// allocates the device-resident output buffer. Any failure here is reported to
// the caller, which treats a missing device as a fallback condition rather
// than a fatal error.
func newOpenCLSampleSolver() (*openCLSampleSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{strainKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("strain_samples")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating strain kernel: %w", err)
	}
	outBuf, err := context.CreateEmptyBuffer(cl.MemWriteOnly, sampleCount*4)
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating sample buffer: %w", err)
	}

	return &openCLSampleSolver{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		outBuf:     outBuf,
		out:        make([]float32, sampleCount),
		deviceName: device.Name(),
	}, nil
}

// Refresh dispatches the kernel with the current frame parameters and blocks
// until the sample buffer has been read back.
func (s *openCLSampleSolver) Refresh(baseTime, frequency, amplitude float64, sys BinarySystemParameters) error {
	if err := s.kernel.SetArgs(
		int32(sampleCount),
		float32(baseTime),
		float32(sampleSpacing(frequency)),
		float32(frequency),
		float32(amplitude),
		float32(sys.Mass1),
		float32(sys.Mass2),
		float32(sys.Distance),
		float32(sys.Eccentricity),
		s.outBuf,
	); err != nil {
		return fmt.Errorf("setting strain kernel arguments: %w", err)
	}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, []int{sampleCount}, nil, nil); err != nil {
		return fmt.Errorf("enqueueing strain kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.outBuf, true, 0, s.out, nil); err != nil {
		return fmt.Errorf("reading sample buffer: %w", err)
	}
	return nil
}

// Samples returns the buffer read back by the last successful Refresh.
func (s *openCLSampleSolver) Samples() []float32 {
	return s.out
}

func (s *openCLSampleSolver) Backend() string {
	return "opencl (" + s.deviceName + ")"
}

// Close releases all device resources in reverse allocation order.
func (s *openCLSampleSolver) Close() {
	if s.outBuf != nil {
		s.outBuf.Release()
		s.outBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}
