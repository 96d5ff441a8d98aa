package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.db")
	s, err := NewSQLiteStore(path, []string{"Maadi", "Zamalek"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteVehicleRoundTrip(t *testing.T) {
	s := newTestStore(t)
	v := model.Vehicle{
		ID: 42, Plate: "ABC-123", ProviderName: "Acme",
		Make: "Toyota", Model: "Hiace", Year: "2022",
		FuelType: "Diesel", FuelEconomy: "11.5", TireCount: 4,
		Tires:        []model.Tire{{Pressure: "35", TreadDepth: "7"}},
		LastOdometer: 1500,
	}
	require.NoError(t, s.AddVehicle(v))

	got, ok, err := s.VehicleByPlate("ABC-123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, v, got)

	_, ok, err = s.VehicleByPlate("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.ErrorIs(t, s.AddVehicle(v), fleet.ErrDuplicatePlate)
}

func TestSQLiteVehicleBaseline(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddVehicle(model.Vehicle{Plate: "ABC-123"}))

	tires := []model.Tire{{Pressure: "33"}}
	require.NoError(t, s.UpdateVehicleBaseline("ABC-123", tires, 1250))

	v, ok, err := s.VehicleByPlate("ABC-123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1250.0, v.LastOdometer)
	assert.Equal(t, tires, v.Tires)

	// Unknown plates are a no-op.
	require.NoError(t, s.UpdateVehicleBaseline("missing", tires, 1))
}

func TestSQLiteInspections(t *testing.T) {
	s := newTestStore(t)
	for i := int64(1); i <= 3; i++ {
		insp := model.Inspection{ID: i}
		insp.Date = "2026-03-0" + string(rune('0'+i))
		insp.VehiclePlate = "ABC-123"
		require.NoError(t, s.AddInspection(insp))
	}

	got, err := s.Inspections()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[2].ID)

	updated := got[1]
	updated.Emissions.Total = 42
	require.NoError(t, s.ReplaceInspection(updated))

	got, err = s.Inspections()
	require.NoError(t, err)
	assert.Equal(t, 42.0, got[1].Emissions.Total)
}

func TestSQLiteDestinations(t *testing.T) {
	s := newTestStore(t)
	got, err := s.Destinations()
	require.NoError(t, err)
	assert.Equal(t, []string{"Maadi", "Zamalek"}, got)

	require.NoError(t, s.AddDestination("Heliopolis"))
	require.NoError(t, s.AddDestination("Maadi"))

	got, err = s.Destinations()
	require.NoError(t, err)
	assert.Equal(t, []string{"Maadi", "Zamalek", "Heliopolis"}, got)
}

func TestSQLiteSeedOnlyWhenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.db")
	s, err := NewSQLiteStore(path, []string{"Maadi"})
	require.NoError(t, err)
	require.NoError(t, s.AddDestination("Giza"))
	require.NoError(t, s.Close())

	// Reopening must not reseed over existing rows.
	s, err = NewSQLiteStore(path, []string{"Maadi", "Zamalek"})
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got, err := s.Destinations()
	require.NoError(t, err)
	assert.Equal(t, []string{"Maadi", "Giza"}, got)
}
