package sim

import (
	"fmt"
	"math"
)

// Config holds the per-scenario constants of a simulation run.
type Config struct {
	BerthCapacity             int     // number of docking berths (must be > 0)
	CraneCapacity             int     // number of unloading cranes (must be > 0)
	UnloadMinutesPerContainer float64 // unloading time per container (must be > 0)
}

// Validate checks the configuration before a run is constructed.
func (c Config) Validate() error {
	if c.BerthCapacity <= 0 {
		return fmt.Errorf("berth capacity must be positive, got %d", c.BerthCapacity)
	}
	if c.CraneCapacity <= 0 {
		return fmt.Errorf("crane capacity must be positive, got %d", c.CraneCapacity)
	}
	if c.UnloadMinutesPerContainer <= 0 {
		return fmt.Errorf("unload time per container must be positive, got %v", c.UnloadMinutesPerContainer)
	}
	return nil
}

// UnloadDuration returns the unloading delay in whole minutes for a cargo
// of the given size: cargo * perContainer, rounded to the nearest minute.
// Any positive product takes at least one minute, so a ship never unloads
// for free.
func UnloadDuration(cargoSize int, perContainer float64) int64 {
	product := float64(cargoSize) * perContainer
	duration := int64(math.Round(product))
	if duration < 1 && product > 0 {
		return 1
	}
	return duration
}
