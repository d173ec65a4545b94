package main

import "sync"

const audioSampleRate = 48000

// strainAudioStream sonifies the strain signal: the frame callback publishes
// the current strain value once per update and the audio goroutine reads it
// as a held stereo sample. A slow AC coupling filter removes any DC offset
// introduced by extreme slider settings.
type strainAudioStream struct {
	mu     sync.Mutex
	sample float32
	dc     float32
}

func newStrainAudioStream() *strainAudioStream {
	return &strainAudioStream{}
}

// SetStrain converts a raw strain value to the held audio sample.
func (s *strainAudioStream) SetStrain(strain float32) {
	v := float32(audioStrainGain) * strain
	if v > 1 {
		v = 1
	} else if v < -1 {
		v = -1
	}
	s.mu.Lock()
	const alpha = 0.001
	s.dc += alpha * (v - s.dc)
	s.sample = v - s.dc
	s.mu.Unlock()
}

func (s *strainAudioStream) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	// Whole stereo int16 frames only (4 bytes per frame).
	frameBytes := len(p) - len(p)%4
	if frameBytes == 0 {
		return 0, nil
	}
	s.mu.Lock()
	sample := s.sample
	s.mu.Unlock()

	for i := 0; i < frameBytes; i += 4 {
		v := int16(sample * 32767)
		p[i] = byte(v)
		p[i+1] = byte(v >> 8)
		p[i+2] = p[i]
		p[i+3] = p[i+1]
	}
	return frameBytes, nil
}

func (s *strainAudioStream) Close() error {
	return nil
}
