// Package trace holds the timing records emitted by completed ship
// processes, plus their aggregation into port KPIs. It has no dependency
// on sim/ — pure data and arithmetic.
package trace

// TimingRecord is an immutable snapshot of one ship's milestone clock
// times, emitted exactly once when the ship departs. All times are in
// simulation minutes.
type TimingRecord struct {
	ShipID                int
	CargoSize             int
	TimeArrived           int64
	TimeDocked            int64
	TimeCraneSecured      int64
	TimeUnloadingComplete int64
	TimeDeparted          int64
}

// BerthWait is the time spent waiting for a berth after arrival.
func (r TimingRecord) BerthWait() int64 {
	return r.TimeDocked - r.TimeArrived
}

// CraneWait is the time spent docked waiting for a crane.
func (r TimingRecord) CraneWait() int64 {
	return r.TimeCraneSecured - r.TimeDocked
}

// Turnaround is the total time in the system, arrival to departure.
func (r TimingRecord) Turnaround() int64 {
	return r.TimeDeparted - r.TimeArrived
}
