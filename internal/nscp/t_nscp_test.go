package nscp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_nscp01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("nscp01. concrete modulus")

	chk.Float64(tst, "Ec(28)", 1e-9, ConcreteModulus(28), 4700*math.Sqrt(28))
	chk.Float64(tst, "Ec(0)", 1e-15, ConcreteModulus(0), 0)
	chk.Float64(tst, "Ec(wc, 28)", 1e-9, ConcreteModulusWc(ConcreteUnitWeight, 28), math.Pow(2320, 1.5)*0.043*math.Sqrt(28))
	chk.Float64(tst, "Ec(0, 28)", 1e-15, ConcreteModulusWc(0, 28), 0)

	// the two forms agree within a few percent at normal weight
	chk.Float64(tst, "wc form close to 4700√fc", 0.03*ConcreteModulus(28), ConcreteModulusWc(ConcreteUnitWeight, 28), ConcreteModulus(28))
}

func Test_nscp02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("nscp02. load combinations")

	c2, err := FindCombination("2", LoadCombinations)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Float64(tst, "dead", 1e-15, c2.Factor(Dead), 1.2)
	chk.Float64(tst, "live", 1e-15, c2.Factor(Live), 1.6)
	chk.Float64(tst, "empty case is dead", 1e-15, c2.Factor(""), 1.2)
	chk.Float64(tst, "combine", 1e-12, c2.Combine(map[LoadCase]float64{Dead: 10, Live: 5}), 20)

	s, err := FindCombination("s", SimplifiedCombinations)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, s.ID, Service.ID)
	if _, err := FindCombination("99", LoadCombinations); err == nil {
		tst.Errorf("unknown combination should fail")
	}

	for in, want := range map[string]LoadCase{"": Dead, "Live": Live, "lr": Roof, "W": Wind, "earthquake": Earthquake, "R": Rain} {
		c, err := ParseLoadCase(in)
		if err != nil {
			tst.Fatalf("%v", err)
		}
		chk.String(tst, string(c), string(want))
	}
	if _, err := ParseLoadCase("snow"); err == nil {
		tst.Errorf("unknown case should fail")
	}
}
