// Defines the arrival record that drives the simulation and its CSV
// table format (ship_id, arrival_time_minutes, cargo_containers).

package sim

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Arrival is one row of the externally supplied arrival schedule.
type Arrival struct {
	ShipID      int
	ArrivalTime int64 // minutes, non-negative
	CargoSize   int   // containers, positive
}

// arrivalsHeader is the canonical schedule column layout.
var arrivalsHeader = []string{"ship_id", "arrival_time_minutes", "cargo_containers"}

// LoadArrivalsCSV reads an arrival schedule from a CSV file with a header
// row. Malformed rows are hard errors: a schedule is an input contract,
// not a best-effort stream.
func LoadArrivalsCSV(path string) ([]Arrival, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open arrivals file: %w", err)
	}
	defer file.Close() //nolint:errcheck // read-only file; close error is not actionable

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	var arrivals []Arrival
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv at row %d: %w", row, err)
		}
		if len(record) < 3 {
			return nil, fmt.Errorf("csv row %d has %d columns, expected 3", row, len(record))
		}
		id, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid ship_id at row %d: %w", row, err)
		}
		at, err := strconv.ParseInt(record[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid arrival_time_minutes at row %d: %w", row, err)
		}
		cargo, err := strconv.Atoi(record[2])
		if err != nil {
			return nil, fmt.Errorf("invalid cargo_containers at row %d: %w", row, err)
		}
		arrivals = append(arrivals, Arrival{ShipID: id, ArrivalTime: at, CargoSize: cargo})
		row++
	}
	return arrivals, nil
}

// SaveArrivalsCSV writes a schedule in the canonical column layout.
func SaveArrivalsCSV(path string, arrivals []Arrival) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create arrivals file: %w", err)
	}
	defer file.Close() //nolint:errcheck // flushed and checked via writer below

	w := csv.NewWriter(file)
	if err := w.Write(arrivalsHeader); err != nil {
		return err
	}
	for _, a := range arrivals {
		row := []string{
			strconv.Itoa(a.ShipID),
			strconv.FormatInt(a.ArrivalTime, 10),
			strconv.Itoa(a.CargoSize),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
