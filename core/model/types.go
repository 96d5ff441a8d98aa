package model

// Tire holds the readings taken for a single tire during an inspection.
// Values come straight from the form as free text; ParseFloatOr applies
// the defaulting policy when they are consumed.
type Tire struct {
	Pressure   string `json:"pressure"`    // psi
	TreadDepth string `json:"tread_depth"` // mm
}

// Stop is one destination of a trip after the fixed warehouse origin.
// Coordinates are never resolved in this system and stay nil.
type Stop struct {
	Location string   `json:"location"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
}

// Vehicle is a registered fleet vehicle. Plate is the lookup key used by
// the forms; ID is the storage key assigned at creation time.
type Vehicle struct {
	ID           int64  `json:"id"`
	Plate        string `json:"plate"`
	ProviderName string `json:"provider_name"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	FuelType     string `json:"fuel_type"`
	FuelEconomy  string `json:"fuel_economy"` // L/100km
	TireCount    int    `json:"tire_count"`
	Tires        []Tire `json:"tires"`
	LastOdometer float64 `json:"last_odometer"` // km, updated after every trip
}

// NewVehicle carries the fields required to register a vehicle.
type NewVehicle struct {
	Plate        string `json:"plate"`
	ProviderName string `json:"provider_name"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	FuelType     string `json:"fuel_type"`
	FuelEconomy  string `json:"fuel_economy"`
	TireCount    int    `json:"tire_count"`
	Tires        []Tire `json:"tires"`
}

// Emissions is the per-trip CO2e breakdown in kilograms.
// Total is always the sum of the four sources.
type Emissions struct {
	Fuel  float64 `json:"fuel"`
	Tires float64 `json:"tires"`
	Oil   float64 `json:"oil"`
	Idle  float64 `json:"idle"`
	Total float64 `json:"total"`
}

// TripForm is the raw trip record as submitted by the inspection form or a
// field device, before any derived fields are computed.
type TripForm struct {
	Date            string  `json:"date"` // ISO date, YYYY-MM-DD
	VehiclePlate    string  `json:"vehicle_plate"`
	ProviderName    string  `json:"provider_name"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	Year            string  `json:"year"`
	FuelType        string  `json:"fuel_type"`
	FuelEconomy     string  `json:"fuel_economy"`
	LoadWeight      string  `json:"load_weight"` // kg
	LoadPhoto       string  `json:"load_photo,omitempty"`
	TireCount       int     `json:"tire_count"`
	Tires           []Tire  `json:"tires"`
	OilCondition    string  `json:"oil_condition"` // "clean" or "degraded"
	AirFilter       string  `json:"air_filter"`    // "clean", "dusty" or "very_dusty"
	ACUsage         bool    `json:"ac_usage"`
	IncludeIdleTime bool    `json:"include_idle_time"`
	IdleTimePerStop float64 `json:"idle_time_per_stop"` // minutes
	Stops           []Stop  `json:"stops"`
	DistanceKm      float64 `json:"distance_km"` // synthetic route estimate, not a routed distance
	Abnormalities   string  `json:"abnormalities"`
	OdometerStart   float64 `json:"odometer_start"`
}

// Inspection is the immutable snapshot stored for one recorded trip.
type Inspection struct {
	TripForm

	ID          int64     `json:"id"`
	Timestamp   string    `json:"timestamp"`
	OdometerEnd float64   `json:"odometer_end"`
	Emissions   Emissions `json:"emissions"`
}

// IdleMinutes returns the idle time attributed to the trip: one
// IdleTimePerStop slot per stop when idle tracking was enabled.
func (f TripForm) IdleMinutes() float64 {
	if !f.IncludeIdleTime {
		return 0
	}
	return float64(len(f.Stops)) * f.IdleTimePerStop
}

// AverageTirePressure returns the mean parsed pressure across TireCount
// tires, with unreadable values falling back to ReferencePressurePSI.
// A zero TireCount yields 0.
func (f TripForm) AverageTirePressure() float64 {
	if f.TireCount == 0 {
		return 0
	}
	var sum float64
	for _, t := range f.Tires {
		sum += ParseFloatOr(t.Pressure, ReferencePressurePSI)
	}
	return sum / float64(f.TireCount)
}
