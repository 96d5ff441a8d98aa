// Package emissions estimates per-trip CO2e from vehicle condition and
// route data. The model is a fixed heuristic: base fuel consumption is
// adjusted for tire pressure, oil and air filter condition plus load, then
// converted to mass through a per-fuel emission factor, with flat
// contributions for tire wear, lubricant lifecycle and idling.
package emissions
