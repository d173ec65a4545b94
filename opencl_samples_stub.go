//go:build !opencl

package main

import "errors"

type openCLSampleSolver struct{}

func newOpenCLSampleSolver() (*openCLSampleSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLSampleSolver) Refresh(baseTime, frequency, amplitude float64, sys BinarySystemParameters) error {
	return errors.New("OpenCL sample solver unavailable")
}

func (s *openCLSampleSolver) Samples() []float32 { return nil }

func (s *openCLSampleSolver) Backend() string { return "" }

func (s *openCLSampleSolver) Close() {}
