package emissions

import (
	"math"

	"github.com/ecofleet/carbon-tracker/core/model"
)

// Emission factors in kg CO2e per liter of fuel burned.
const (
	FactorDiesel   = 2.75
	FactorGasoline = 2.31
	FactorCNG      = 1.89
	FactorElectric = 0
)

const (
	// Fractional consumption increase per psi of pressure deficit below
	// the reference pressure, averaged across tires.
	pressureImpactPerPSI = 0.002

	// Fractional consumption increase for degraded oil.
	degradedOilImpact = 0.01

	// Fractional consumption increase per air filter condition.
	dustyFilterImpact     = 0.05
	veryDustyFilterImpact = 0.10

	// Fractional increase per 100 kg of load. The load term is applied as
	// an absolute L/100km addend, not combined multiplicatively with the
	// other impacts.
	loadImpactPer100Kg = 0.004

	// Flat wear contribution per tire, kg CO2e per trip.
	tireWearPerTire = 0.25

	// Lubricant lifecycle contribution, kg CO2e per km.
	oilLifecyclePerKm = 26.0 / 10000.0

	// Assumed idle fuel burn in liters per hour.
	idleBurnLitersPerHour = 1.0
)

// Factor returns the emission factor for the given fuel type. Unknown
// fuel types are treated as Diesel.
func Factor(fuelType string) float64 {
	switch fuelType {
	case "Diesel":
		return FactorDiesel
	case "Gasoline":
		return FactorGasoline
	case "CNG":
		return FactorCNG
	case "Electric":
		return FactorElectric
	}
	return FactorDiesel
}

// Calculate estimates the CO2e breakdown for one trip. It is a pure
// function over the form fields: numeric fields that fail to parse fall
// back to the defaults in core/model and the result is always well formed,
// with Total equal to the sum of the four sources.
func Calculate(f model.TripForm) model.Emissions {
	baseConsumption := model.ParseFloatOr(f.FuelEconomy, model.DefaultFuelEconomy)
	distance := f.DistanceKm
	loadWeight := model.ParseFloatOr(f.LoadWeight, 0)

	// A missing reading is assumed to be at reference pressure, so it
	// contributes no deficit. TireCount 0 means no pressure penalty.
	var pressureImpact float64
	if f.TireCount > 0 {
		var deficit float64
		for _, t := range f.Tires {
			p := model.ParseFloatOr(t.Pressure, model.ReferencePressurePSI)
			deficit += math.Max(0, model.ReferencePressurePSI-p)
		}
		pressureImpact = deficit / float64(f.TireCount) * pressureImpactPerPSI
	}

	var oilImpact float64
	if f.OilCondition == "degraded" {
		oilImpact = degradedOilImpact
	}

	var filterImpact float64
	switch f.AirFilter {
	case "dusty":
		filterImpact = dustyFilterImpact
	case "very_dusty":
		filterImpact = veryDustyFilterImpact
	}

	loadImpact := loadWeight / 100 * loadImpactPer100Kg

	adjustedConsumption := baseConsumption*(1+pressureImpact+oilImpact+filterImpact) + loadImpact*100
	fuelUsed := adjustedConsumption * distance / 100

	factor := Factor(f.FuelType)
	fuel := fuelUsed * factor

	tires := float64(f.TireCount) * tireWearPerTire

	oil := oilLifecyclePerKm * distance

	var idle float64
	if f.FuelType != "Electric" {
		idle = f.IdleMinutes() / 60 * idleBurnLitersPerHour * factor
	}

	return model.Emissions{
		Fuel:  fuel,
		Tires: tires,
		Oil:   oil,
		Idle:  idle,
		Total: fuel + tires + oil + idle,
	}
}
