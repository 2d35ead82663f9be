package nscp

import (
	"fmt"
	"strings"
)

// LoadCase identifies the source of an applied load
type LoadCase string

const (
	Dead       LoadCase = "D"  // Dead load
	Live       LoadCase = "L"  // Live load
	Roof       LoadCase = "Lr" // Roof live load
	Wind       LoadCase = "W"  // Wind load
	Earthquake LoadCase = "E"  // Earthquake load
	Rain       LoadCase = "R"  // Rain load
)

// Cases lists every load case in the order NSCP writes them
var Cases = []LoadCase{Dead, Live, Roof, Wind, Earthquake, Rain}

// ParseLoadCase accepts the NSCP symbol or the spelled-out name.
// An empty string is a dead load.
func ParseLoadCase(s string) (LoadCase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "d", "dead":
		return Dead, nil
	case "l", "live":
		return Live, nil
	case "lr", "roof":
		return Roof, nil
	case "w", "wind":
		return Wind, nil
	case "e", "earthquake":
		return Earthquake, nil
	case "r", "rain":
		return Rain, nil
	}
	return "", fmt.Errorf("unknown load case %q", s)
}

// LoadCombination represents an NSCP load combination
// Based on NSCP 2015 Section 203.3 - Load Combinations Using Strength Design
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load case
	Dead       float64
	Live       float64
	Roof       float64
	Wind       float64
	Earthquake float64
	Rain       float64
}

// Service is the unfactored combination (every case at 1.0)
var Service = LoadCombination{
	ID:          "S",
	Description: "D + L + Lr + W + E + R (unfactored)",
	Dead:        1, Live: 1, Roof: 1, Wind: 1, Earthquake: 1, Rain: 1,
}

// NSCP 2015 Section 203.3.1 - Basic Load Combinations
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L + 0.5(Lr or R)", Dead: 1.2, Live: 1.6, Roof: 0.5, Rain: 0.5},
	{ID: "3", Description: "1.2D + 1.6(Lr or R) + (1.0L or 0.5W)", Dead: 1.2, Live: 1.0, Roof: 1.6, Rain: 1.6, Wind: 0.5},
	{ID: "4", Description: "1.2D + 1.0W + 1.0L + 0.5(Lr or R)", Dead: 1.2, Live: 1.0, Wind: 1.0, Roof: 0.5, Rain: 0.5},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Dead: 1.2, Live: 1.0, Earthquake: 1.0},
	{ID: "6", Description: "0.9D + 1.0W", Dead: 0.9, Wind: 1.0},
	{ID: "7", Description: "0.9D + 1.0E", Dead: 0.9, Earthquake: 1.0},
}

// SimplifiedCombinations holds the gravity-only combinations used for most
// continuous floor beams
var SimplifiedCombinations = []LoadCombination{
	{ID: "1", Description: "1.4D", Dead: 1.4},
	{ID: "2", Description: "1.2D + 1.6L", Dead: 1.2, Live: 1.6},
}

// Factor returns the load factor applied to loads of the given case
func (lc LoadCombination) Factor(c LoadCase) float64 {
	switch c {
	case Dead, "":
		return lc.Dead
	case Live:
		return lc.Live
	case Roof:
		return lc.Roof
	case Wind:
		return lc.Wind
	case Earthquake:
		return lc.Earthquake
	case Rain:
		return lc.Rain
	}
	return 0
}

// Combine applies the combination to per-case effects (moments, reactions)
func (lc LoadCombination) Combine(effects map[LoadCase]float64) float64 {
	var total float64
	for c, v := range effects {
		total += lc.Factor(c) * v
	}
	return total
}

// FindCombination looks up a combination by ID in the given table
func FindCombination(id string, combinations []LoadCombination) (LoadCombination, error) {
	for _, combo := range combinations {
		if combo.ID == id {
			return combo, nil
		}
	}
	if strings.EqualFold(id, Service.ID) {
		return Service, nil
	}
	return LoadCombination{}, fmt.Errorf("unknown load combination %q", id)
}
