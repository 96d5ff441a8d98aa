package model

import (
	"math"
	"strconv"
	"strings"
)

// Default values applied when a numeric form field cannot be parsed.
// Centralizing them here keeps the defaulting policy testable instead of
// scattering fallbacks across call sites.
const (
	// DefaultFuelEconomy is assumed when a vehicle has no usable fuel
	// economy figure, in L/100km.
	DefaultFuelEconomy = 9.0

	// ReferencePressurePSI is the nominal tire pressure. Missing readings
	// are assumed to be at reference, i.e. no deficit.
	ReferencePressurePSI = 35.0
)

// ParseFloatOr parses s as a float64 and returns def when s is empty,
// malformed or non-finite. The calculator never rejects input; bad values
// degrade to a documented baseline instead.
func ParseFloatOr(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}
