// Package report aggregates recorded trips into fleet-wide statistics:
// emission totals, per-provider breakdowns, a monthly trend and a composite
// efficiency score. Reports are rebuilt from the full inspection collection
// on every request; the scan is linear and cheap enough to skip caching.
package report

import (
	"math"
	"sort"

	"github.com/ecofleet/carbon-tracker/core/model"
)

// treesPerTon converts total emissions in tons CO2e to an equivalent
// number of trees for the offset figure.
const treesPerTon = 45

// DateFilter bounds a report to inspections whose date falls inside the
// inclusive [Start, End] range. Dates are ISO YYYY-MM-DD strings and are
// compared lexicographically; an empty bound leaves that side open.
type DateFilter struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Contains reports whether the given date passes the filter.
func (f DateFilter) Contains(date string) bool {
	if f.Start != "" && date < f.Start {
		return false
	}
	if f.End != "" && date > f.End {
		return false
	}
	return true
}

// SourceTotals sums each emission source across the filtered set, in kg.
type SourceTotals struct {
	Fuel  float64 `json:"fuel"`
	Tires float64 `json:"tires"`
	Oil   float64 `json:"oil"`
	Idle  float64 `json:"idle"`
}

// ProviderStats accumulates per-provider trip figures.
type ProviderStats struct {
	Name        string  `json:"name"`
	Trips       int     `json:"trips"`
	EmissionsKg float64 `json:"emissions_kg"`
	DistanceKm  float64 `json:"distance_km"`
}

// MonthPoint is one bucket of the monthly emissions trend.
type MonthPoint struct {
	Month         string  `json:"month"` // YYYY-MM
	EmissionsTons float64 `json:"emissions_tons"`
}

// Report holds the aggregated fleet statistics for one filtered view.
type Report struct {
	TotalEmissionsTons float64         `json:"total_emissions_tons"`
	TotalDistanceKm    float64         `json:"total_distance_km"`
	TotalIdleMinutes   float64         `json:"total_idle_minutes"`
	EmissionsPerKm     float64         `json:"emissions_per_km"` // kg/km
	BySource           SourceTotals    `json:"by_source"`
	Providers          []ProviderStats `json:"providers"`
	TreesNeeded        int             `json:"trees_needed"`
	MonthlyTrend       []MonthPoint    `json:"monthly_trend"`
	FleetScore         int             `json:"fleet_score"`
}

// Build aggregates the filtered inspections into a Report. It returns nil
// when nothing matches the filter; callers render that as a "no data"
// state rather than an error.
func Build(inspections []model.Inspection, filter DateFilter) *Report {
	var filtered []model.Inspection
	for _, i := range inspections {
		if filter.Contains(i.Date) {
			filtered = append(filtered, i)
		}
	}
	if len(filtered) == 0 {
		return nil
	}

	var totalKg, totalDistance, totalIdle float64
	var bySource SourceTotals
	var providers []ProviderStats
	providerIdx := map[string]int{}
	monthly := map[string]float64{}

	for _, i := range filtered {
		totalKg += i.Emissions.Total
		totalDistance += i.DistanceKm
		// Idle time is recomputed from the trip fields rather than read
		// back out of the stored breakdown.
		totalIdle += i.IdleMinutes()

		bySource.Fuel += i.Emissions.Fuel
		bySource.Tires += i.Emissions.Tires
		bySource.Oil += i.Emissions.Oil
		bySource.Idle += i.Emissions.Idle

		idx, ok := providerIdx[i.ProviderName]
		if !ok {
			idx = len(providers)
			providerIdx[i.ProviderName] = idx
			providers = append(providers, ProviderStats{Name: i.ProviderName})
		}
		providers[idx].Trips++
		providers[idx].EmissionsKg += i.Emissions.Total
		providers[idx].DistanceKm += i.DistanceKm

		monthly[monthKey(i.Date)] += i.Emissions.Total / 1000
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	trend := make([]MonthPoint, len(months))
	for i, m := range months {
		trend[i] = MonthPoint{Month: m, EmissionsTons: monthly[m]}
	}

	var perKm float64
	if totalDistance > 0 {
		perKm = totalKg / totalDistance
	}

	return &Report{
		TotalEmissionsTons: totalKg / 1000,
		TotalDistanceKm:    totalDistance,
		TotalIdleMinutes:   totalIdle,
		EmissionsPerKm:     perKm,
		BySource:           bySource,
		Providers:          providers,
		TreesNeeded:        int(math.Ceil(totalKg / 1000 * treesPerTon)),
		MonthlyTrend:       trend,
		FleetScore:         FleetScore(filtered, totalIdle, totalDistance),
	}
}

// monthKey extracts the YYYY-MM bucket from an ISO date string.
func monthKey(date string) string {
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}
