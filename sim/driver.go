// The arrival driver validates the externally supplied schedule and
// spawns one ship process per record at its scheduled arrival time.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ArrivalDriver injects an arrival schedule into the scheduler. Records
// failing cargo validation are skipped and reported; the rest of the
// schedule still runs.
type ArrivalDriver struct {
	sim      *Simulation
	rejected []Arrival
}

// NewArrivalDriver creates a driver bound to one simulation run.
func NewArrivalDriver(s *Simulation) *ArrivalDriver {
	return &ArrivalDriver{sim: s}
}

// validateSchedule enforces the input contract: non-negative times sorted
// non-decreasing. Violations are fatal and surfaced before the run
// starts.
func validateSchedule(arrivals []Arrival) error {
	prev := int64(0)
	for i, a := range arrivals {
		if a.ArrivalTime < 0 {
			return fmt.Errorf("%w: record %d (ship %d) has negative arrival time %d",
				ErrUnsortedArrivals, i, a.ShipID, a.ArrivalTime)
		}
		if a.ArrivalTime < prev {
			return fmt.Errorf("%w: record %d (ship %d) arrives at %d after a record at %d",
				ErrUnsortedArrivals, i, a.ShipID, a.ArrivalTime, prev)
		}
		prev = a.ArrivalTime
	}
	return nil
}

// Inject schedules a spawn event for every valid record at its absolute
// arrival time. Records sharing an arrival time spawn in input order: the
// scheduler's creation-sequence tie-break preserves it.
func (d *ArrivalDriver) Inject(arrivals []Arrival) error {
	if err := validateSchedule(arrivals); err != nil {
		return err
	}
	if len(arrivals) == 0 {
		logrus.Warn("arrival schedule is empty; the run will produce no records")
		return nil
	}
	for _, a := range arrivals {
		if a.CargoSize <= 0 {
			logrus.Warnf("ship %d rejected: %v (got %d)", a.ShipID, ErrInvalidCargoSize, a.CargoSize)
			d.rejected = append(d.rejected, a)
			continue
		}
		a := a
		d.sim.sched.ScheduleAt(a.ArrivalTime, func() {
			d.sim.spawn(a)
		})
	}
	return nil
}

// Rejected returns the records skipped by cargo validation, in input
// order.
func (d *ArrivalDriver) Rejected() []Arrival {
	return d.rejected
}
