package main

import "math"

// BinarySystemParameters describes the simulated compact binary. Masses are in
// solar masses, distance in parsecs. Values are taken as-is from the control
// panel; the sliders are the only validation layer.
type BinarySystemParameters struct {
	Mass1        float64
	Mass2        float64
	Distance     float64
	Eccentricity float64
}

// characteristicAmplitude returns the dimensionless strain scale of the binary
// at its configured distance: 4*G*mu/(c^2*d) for reduced mass mu, with a small
// (1+e) eccentricity boost. Non-positive total mass or distance yields zero so
// the evaluator stays total.
func characteristicAmplitude(sys BinarySystemParameters) float64 {
	total := sys.Mass1 + sys.Mass2
	if total <= 0 || sys.Distance <= 0 {
		return 0
	}
	reducedKg := sys.Mass1 * sys.Mass2 / total * solarMassKg
	distM := sys.Distance * parsecMeters
	h := 4 * gravitationalConstant * reducedKg / (speedOfLight * speedOfLight * distM)
	return h * (1 + sys.Eccentricity)
}

// strainAt evaluates the toy strain signal at time t: the characteristic
// amplitude of the system modulated by amplitude*sin(2*pi*frequency*t).
// Pure; periodic in t with period 1/frequency.
func strainAt(t, frequency, amplitude float64, sys BinarySystemParameters) float64 {
	return characteristicAmplitude(sys) * amplitude * math.Sin(2*math.Pi*frequency*t)
}
