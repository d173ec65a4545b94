package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSystem() BinarySystemParameters {
	return BinarySystemParameters{Mass1: 30, Mass2: 30, Distance: 100}
}

func TestStrainPeriodicity(t *testing.T) {
	sys := testSystem()
	scale := characteristicAmplitude(sys) * 50
	require.Greater(t, scale, 0.0)

	for _, freq := range []float64{1, 10, 33.5} {
		for _, tm := range []float64{0, 0.37, 1.25, 12.34} {
			a := strainAt(tm, freq, 50, sys)
			b := strainAt(tm+1/freq, freq, 50, sys)
			assert.InDelta(t, a, b, scale*1e-9, "freq=%v t=%v", freq, tm)
		}
	}
}

func TestStrainZeroAmplitude(t *testing.T) {
	sys := testSystem()
	for _, tm := range []float64{0, 0.1, 3.7} {
		for _, freq := range []float64{1, 25, 100} {
			assert.Zero(t, strainAt(tm, freq, 0, sys))
		}
	}
}

func TestStrainEndToEndScenario(t *testing.T) {
	// mass1=mass2=30, distance=100, frequency=10, amplitude=50: zero at t=0,
	// positive peak at the quarter period t=1/(4*10).
	sys := testSystem()
	peak := characteristicAmplitude(sys) * 50

	assert.Zero(t, strainAt(0, 10, 50, sys))

	got := strainAt(0.025, 10, 50, sys)
	assert.Greater(t, got, 0.0)
	assert.InEpsilon(t, peak, got, 1e-9)

	// No other phase exceeds the quarter-period magnitude.
	for _, tm := range []float64{0.01, 0.04, 0.06, 0.09} {
		assert.LessOrEqual(t, math.Abs(strainAt(tm, 10, 50, sys)), peak*(1+1e-12))
	}
}

func TestCharacteristicAmplitudeGuards(t *testing.T) {
	tests := []struct {
		name string
		sys  BinarySystemParameters
	}{
		{"zero masses", BinarySystemParameters{Distance: 100}},
		{"negative total mass", BinarySystemParameters{Mass1: -30, Mass2: 10, Distance: 100}},
		{"zero distance", BinarySystemParameters{Mass1: 30, Mass2: 30}},
		{"negative distance", BinarySystemParameters{Mass1: 30, Mass2: 30, Distance: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Zero(t, characteristicAmplitude(tt.sys))
			assert.Zero(t, strainAt(0.33, 10, 50, tt.sys))
		})
	}
}

func TestCharacteristicAmplitudeEccentricity(t *testing.T) {
	base := characteristicAmplitude(testSystem())
	ecc := testSystem()
	ecc.Eccentricity = 0.5
	assert.InEpsilon(t, base*1.5, characteristicAmplitude(ecc), 1e-12)
}

func TestCharacteristicAmplitudeScalesWithMass(t *testing.T) {
	small := characteristicAmplitude(BinarySystemParameters{Mass1: 5, Mass2: 5, Distance: 100})
	large := characteristicAmplitude(BinarySystemParameters{Mass1: 100, Mass2: 100, Distance: 100})
	assert.Greater(t, large, small)
	// Equal-mass reduced mass is m/2, so amplitude is linear in m.
	assert.InEpsilon(t, 20.0, large/small, 1e-9)
}
