// Package catalog embeds the reference data the inspection forms draw
// from: the known vehicle makes and models with their nominal fuel
// consumption, and the predefined delivery destinations.
package catalog

import "sort"

// Entry describes the models known for one make and their nominal fuel
// consumption in L/100km.
type Entry struct {
	Models          []string           `json:"models"`
	FuelConsumption map[string]float64 `json:"fuel_consumption"`
}

var vehicleDatabase = map[string]Entry{
	"Toyota": {
		Models:          []string{"Hiace", "Coaster", "Dyna"},
		FuelConsumption: map[string]float64{"Hiace": 11.5, "Coaster": 13.2, "Dyna": 10.8},
	},
	"Mercedes": {
		Models:          []string{"Sprinter", "Actros", "Atego"},
		FuelConsumption: map[string]float64{"Sprinter": 12.1, "Actros": 28.5, "Atego": 18.3},
	},
	"Isuzu": {
		Models:          []string{"NPR", "NQR", "FTR"},
		FuelConsumption: map[string]float64{"NPR": 14.2, "NQR": 16.8, "FTR": 22.4},
	},
	"Ford": {
		Models:          []string{"Transit", "F-150", "Ranger"},
		FuelConsumption: map[string]float64{"Transit": 11.9, "F-150": 13.5, "Ranger": 9.2},
	},
	"Hyundai": {
		Models:          []string{"H350", "Mighty", "HD120"},
		FuelConsumption: map[string]float64{"H350": 10.8, "Mighty": 15.6, "HD120": 17.2},
	},
}

// DefaultDestinations seeds the destination list for new installations.
var DefaultDestinations = []string{
	"Cairo Downtown",
	"Giza Pyramids Area",
	"New Cairo",
	"Nasr City",
	"6th October City",
	"Heliopolis",
	"Maadi",
	"Zamalek",
	"Sheikh Zayed",
	"Smart Village",
}

// Makes returns the known vehicle makes in sorted order.
func Makes() []string {
	makes := make([]string, 0, len(vehicleDatabase))
	for m := range vehicleDatabase {
		makes = append(makes, m)
	}
	sort.Strings(makes)
	return makes
}

// ModelsFor returns the models known for the given make.
func ModelsFor(make string) []string {
	return vehicleDatabase[make].Models
}

// FuelConsumption returns the nominal consumption for a make and model.
// The second result is false when the pair is not in the catalog.
func FuelConsumption(make, model string) (float64, bool) {
	v, ok := vehicleDatabase[make].FuelConsumption[model]
	return v, ok
}

// Database returns the full catalog, keyed by make.
func Database() map[string]Entry {
	return vehicleDatabase
}
