package main

import (
	"math"
	"runtime"
	"sync"
)

// sampleSolver produces the per-frame strain sample buffer. Refresh blocks
// until all sampleCount values reflect the supplied parameters; Samples
// returns the buffer filled by the most recent successful Refresh.
type sampleSolver interface {
	Refresh(baseTime, frequency, amplitude float64, sys BinarySystemParameters) error
	Samples() []float32
	Backend() string
	Close()
}

// sampleSpacing returns the time step between consecutive samples,
// 1/(samplesPerCycle*frequency).
func sampleSpacing(frequency float64) float64 {
	if frequency <= 0 {
		return 0
	}
	return 1 / (samplesPerCycle * frequency)
}

// sampleRange is a half-open chunk [start, end) of the sample buffer assigned
// to one worker goroutine.
type sampleRange struct{ start, end int }

// assignSampleRanges splits total samples into workerCount contiguous chunks.
func assignSampleRanges(workerCount, total int) []sampleRange {
	if workerCount < 1 {
		workerCount = 1
	}
	if workerCount > total {
		workerCount = total
	}
	ranges := make([]sampleRange, workerCount)
	per := (total + workerCount - 1) / workerCount
	for i := range ranges {
		start := i * per
		end := start + per
		if end > total {
			end = total
		}
		ranges[i] = sampleRange{start: start, end: end}
	}
	return ranges
}

// cpuSampleSolver fills the sample buffer on persistent worker goroutines.
// There is no inter-sample dependency, so each worker evaluates its chunk
// independently and Refresh waits for all of them.
type cpuSampleSolver struct {
	mu      sync.Mutex
	cond    *sync.Cond
	step    int
	pending int
	ranges  []sampleRange
	out     []float32

	// Parameters for the current step, published under mu.
	baseTime  float64
	dt        float64
	omega     float64
	scale     float64 // characteristic amplitude * energy amplitude
}

// newCPUSampleSolver allocates the sample buffer and starts one worker per CPU.
func newCPUSampleSolver() *cpuSampleSolver {
	s := &cpuSampleSolver{
		out:    make([]float32, sampleCount),
		ranges: assignSampleRanges(runtime.NumCPU(), sampleCount),
	}
	s.cond = sync.NewCond(&s.mu)
	for i := range s.ranges {
		go s.workerLoop(i)
	}
	return s
}

// workerLoop evaluates strain samples for the chunk assigned to the worker.
func (s *cpuSampleSolver) workerLoop(index int) {
	lastStep := 0
	s.mu.Lock()
	for {
		for s.step == lastStep {
			s.cond.Wait()
		}
		lastStep = s.step
		rng := s.ranges[index]
		baseTime, dt, omega, scale, out := s.baseTime, s.dt, s.omega, s.scale, s.out
		s.mu.Unlock()

		for i := rng.start; i < rng.end; i++ {
			t := baseTime + float64(i)*dt
			out[i] = float32(scale * math.Sin(omega*t))
		}

		s.mu.Lock()
		s.pending--
		if s.pending == 0 {
			s.cond.Broadcast()
		}
	}
}

// Refresh publishes the frame parameters to the workers and blocks until the
// whole buffer has been rewritten.
func (s *cpuSampleSolver) Refresh(baseTime, frequency, amplitude float64, sys BinarySystemParameters) error {
	s.mu.Lock()
	s.baseTime = baseTime
	s.dt = sampleSpacing(frequency)
	s.omega = 2 * math.Pi * frequency
	s.scale = characteristicAmplitude(sys) * amplitude
	s.pending = len(s.ranges)
	s.step++
	s.cond.Broadcast()
	for s.pending > 0 {
		s.cond.Wait()
	}
	s.mu.Unlock()
	return nil
}

// Samples returns the buffer written by the last Refresh. The caller must not
// call Refresh while reading; the single frame callback guarantees this.
func (s *cpuSampleSolver) Samples() []float32 {
	return s.out
}

func (s *cpuSampleSolver) Backend() string { return "cpu" }

// Close is a no-op; the workers live for the process lifetime.
func (s *cpuSampleSolver) Close() {}
