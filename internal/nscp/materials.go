package nscp

import "math"

// NSCP 2015 material constants used to derive flexural rigidity

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// Normal-weight concrete unit weight used by Section 419.2.2.1
	ConcreteUnitWeight = 2320.0 // kg/m³
)

// ConcreteModulus returns Ec = 4700√f'c for normal-weight concrete
// NSCP 2015 Section 419.2.2.1 (MPa)
func ConcreteModulus(fc float64) float64 {
	if fc <= 0 {
		return 0
	}
	return 4700 * math.Sqrt(fc)
}

// ConcreteModulusWc returns Ec = wc^1.5 · 0.043√f'c for concrete of unit
// weight wc between 1440 and 2560 kg/m³ (MPa)
func ConcreteModulusWc(wc, fc float64) float64 {
	if fc <= 0 || wc <= 0 {
		return 0
	}
	return math.Pow(wc, 1.5) * 0.043 * math.Sqrt(fc)
}
