// Package store provides the SQLite-backed fleet store used by the
// service. Vehicles keep their own columns; inspections are written as
// JSON documents with the date indexed for report filtering.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/ecofleet/carbon-tracker/core/fleet"
	"github.com/ecofleet/carbon-tracker/core/model"
)

// SQLiteStore implements fleet.Store on a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path, ensures the
// schema and seeds the destination list when it is empty.
func NewSQLiteStore(path string, seedDestinations []string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS vehicles (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id INTEGER,
        plate TEXT UNIQUE NOT NULL,
        provider_name TEXT,
        make TEXT,
        model TEXT,
        year TEXT,
        fuel_type TEXT,
        fuel_economy TEXT,
        tire_count INTEGER,
        tires TEXT,
        last_odometer REAL
    );
    CREATE TABLE IF NOT EXISTS inspections (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        id INTEGER,
        date TEXT NOT NULL,
        record TEXT NOT NULL
    );
    CREATE INDEX IF NOT EXISTS idx_inspections_date ON inspections(date);
    CREATE TABLE IF NOT EXISTS destinations (
        seq INTEGER PRIMARY KEY AUTOINCREMENT,
        name TEXT UNIQUE NOT NULL
    );`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	s := &SQLiteStore{db: db}
	if err := s.seed(seedDestinations); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) seed(destinations []string) error {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM destinations`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, d := range destinations {
		if _, err := s.db.Exec(`INSERT OR IGNORE INTO destinations (name) VALUES (?)`, d); err != nil {
			return err
		}
	}
	return nil
}

// AddVehicle inserts the vehicle, rejecting duplicate plates.
func (s *SQLiteStore) AddVehicle(v model.Vehicle) error {
	tires, err := json.Marshal(v.Tires)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO vehicles
        (id, plate, provider_name, make, model, year, fuel_type, fuel_economy, tire_count, tires, last_odometer)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		v.ID, v.Plate, v.ProviderName, v.Make, v.Model, v.Year,
		v.FuelType, v.FuelEconomy, v.TireCount, string(tires), v.LastOdometer)
	if err != nil && strings.Contains(err.Error(), "UNIQUE") {
		return fleet.ErrDuplicatePlate
	}
	return err
}

// Vehicles returns all vehicles in registration order.
func (s *SQLiteStore) Vehicles() ([]model.Vehicle, error) {
	rows, err := s.db.Query(`SELECT id, plate, provider_name, make, model, year,
        fuel_type, fuel_economy, tire_count, tires, last_odometer
        FROM vehicles ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, rows.Err()
}

// VehicleByPlate looks up a vehicle by its plate.
func (s *SQLiteStore) VehicleByPlate(plate string) (model.Vehicle, bool, error) {
	row := s.db.QueryRow(`SELECT id, plate, provider_name, make, model, year,
        fuel_type, fuel_economy, tire_count, tires, last_odometer
        FROM vehicles WHERE plate = ?`, plate)
	v, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return model.Vehicle{}, false, nil
	}
	if err != nil {
		return model.Vehicle{}, false, err
	}
	return v, true, nil
}

// UpdateVehicleBaseline rolls the vehicle's tires and odometer forward
// after a trip. Unknown plates are a no-op.
func (s *SQLiteStore) UpdateVehicleBaseline(plate string, tires []model.Tire, odometer float64) error {
	b, err := json.Marshal(tires)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`UPDATE vehicles SET tires = ?, last_odometer = ? WHERE plate = ?`,
		string(b), odometer, plate)
	return err
}

// AddInspection appends the inspection record.
func (s *SQLiteStore) AddInspection(i model.Inspection) error {
	b, err := json.Marshal(i)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO inspections (id, date, record) VALUES (?, ?, ?)`,
		i.ID, i.Date, string(b))
	return err
}

// Inspections returns all inspections in recording order.
func (s *SQLiteStore) Inspections() ([]model.Inspection, error) {
	rows, err := s.db.Query(`SELECT record FROM inspections ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []model.Inspection
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var i model.Inspection
		if err := json.Unmarshal([]byte(data), &i); err != nil {
			return nil, fmt.Errorf("unmarshal inspection: %w", err)
		}
		res = append(res, i)
	}
	return res, rows.Err()
}

// ReplaceInspection rewrites a stored inspection in place, keyed by id.
// Used by the recalculation job only; the service never edits records.
func (s *SQLiteStore) ReplaceInspection(i model.Inspection) error {
	b, err := json.Marshal(i)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`UPDATE inspections SET date = ?, record = ? WHERE id = ?`,
		i.Date, string(b), i.ID)
	return err
}

// Destinations returns the destination catalog in insertion order.
func (s *SQLiteStore) Destinations() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM destinations ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		res = append(res, name)
	}
	return res, rows.Err()
}

// AddDestination appends a destination, ignoring duplicates.
func (s *SQLiteStore) AddDestination(name string) error {
	_, err := s.db.Exec(`INSERT OR IGNORE INTO destinations (name) VALUES (?)`, name)
	return err
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVehicle(row rowScanner) (model.Vehicle, error) {
	var v model.Vehicle
	var tires string
	if err := row.Scan(&v.ID, &v.Plate, &v.ProviderName, &v.Make, &v.Model, &v.Year,
		&v.FuelType, &v.FuelEconomy, &v.TireCount, &tires, &v.LastOdometer); err != nil {
		return model.Vehicle{}, err
	}
	if err := json.Unmarshal([]byte(tires), &v.Tires); err != nil {
		return model.Vehicle{}, fmt.Errorf("unmarshal tires: %w", err)
	}
	return v, nil
}
