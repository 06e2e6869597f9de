package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// resultsHeader mirrors the detailed results table of the reporting
// pipeline: raw milestones plus the derived wait and turnaround columns.
var resultsHeader = []string{
	"ship_id", "cargo_containers",
	"time_arrived_port", "time_docked", "time_crane_secured",
	"time_unloading_complete", "time_departed_port",
	"wait_time_for_berth", "wait_time_for_crane", "turnaround_time",
}

// WriteCSV writes timing records with derived KPI columns to w.
func WriteCSV(w io.Writer, records []TimingRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(resultsHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ShipID),
			strconv.Itoa(r.CargoSize),
			strconv.FormatInt(r.TimeArrived, 10),
			strconv.FormatInt(r.TimeDocked, 10),
			strconv.FormatInt(r.TimeCraneSecured, 10),
			strconv.FormatInt(r.TimeUnloadingComplete, 10),
			strconv.FormatInt(r.TimeDeparted, 10),
			strconv.FormatInt(r.BerthWait(), 10),
			strconv.FormatInt(r.CraneWait(), 10),
			strconv.FormatInt(r.Turnaround(), 10),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes timing records to a file.
func SaveCSV(path string, records []TimingRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create results file: %w", err)
	}
	defer file.Close() //nolint:errcheck // flushed and checked via writer below
	return WriteCSV(file, records)
}
