// Models the lifecycle of a single ship as an explicit state machine:
// arrive → acquire berth → acquire crane → unload → release crane →
// release berth → depart. Each transition stamps the current virtual
// clock time. Suspension happens only at pool acquisition and at the
// unloading delay; resumption always comes through the scheduler.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/harbor-sim/harbor-sim/sim/trace"
)

// ShipState is the lifecycle state of a ship process.
type ShipState string

const (
	StateArrived      ShipState = "arrived"
	StateWaitingBerth ShipState = "waiting_berth"
	StateDocked       ShipState = "docked"
	StateWaitingCrane ShipState = "waiting_crane"
	StateUnloading    ShipState = "unloading"
	StateDeparted     ShipState = "departed"
)

// Ship walks one vessel through the berth/crane lifecycle. A ship, once
// spawned, always runs to completion; there is no abort path.
type Ship struct {
	ID        int
	CargoSize int
	State     ShipState

	TimeArrived           int64
	TimeDocked            int64
	TimeCraneSecured      int64
	TimeUnloadingComplete int64
	TimeDeparted          int64

	sim *Simulation
}

func (sh *Ship) String() string {
	return fmt.Sprintf("Ship: (ID: %d, State: %s, Cargo: %d)", sh.ID, sh.State, sh.CargoSize)
}

// key identifies the ship as a pool holder.
func (sh *Ship) key() string {
	return fmt.Sprintf("ship_%d", sh.ID)
}

// Start stamps the arrival and requests a berth. Called by the arrival
// driver at the ship's scheduled arrival time.
func (sh *Ship) Start() {
	now := sh.sim.sched.Now()
	sh.TimeArrived = now
	sh.State = StateArrived
	logrus.Infof("[t=%05d] %v arrived at the port", now, sh)

	sh.State = StateWaitingBerth
	sh.sim.Berths.Acquire(sh.key(), sh.docked)
}

// docked runs once the berth is granted; the crane is requested next
// while the berth stays held.
func (sh *Ship) docked() {
	now := sh.sim.sched.Now()
	sh.TimeDocked = now
	sh.State = StateDocked
	logrus.Infof("[t=%05d] ship %d docked", now, sh.ID)

	sh.State = StateWaitingCrane
	sh.sim.Cranes.Acquire(sh.key(), sh.craneSecured)
}

// craneSecured runs once the crane is granted and suspends the ship for
// the unloading duration.
func (sh *Ship) craneSecured() {
	now := sh.sim.sched.Now()
	sh.TimeCraneSecured = now
	sh.State = StateUnloading
	logrus.Infof("[t=%05d] ship %d secured a crane", now, sh.ID)

	delay := UnloadDuration(sh.CargoSize, sh.sim.cfg.UnloadMinutesPerContainer)
	if err := sh.sim.sched.ScheduleAfter(delay, sh.unloadingComplete); err != nil {
		sh.sim.fail(err)
	}
}

// unloadingComplete releases the crane first, then the berth, stamps the
// departure and emits the timing record. The crane must be freed before
// the berth: a ship leaves the crane's service before vacating the berth,
// and reversing the order changes the waits measured by trailing ships.
func (sh *Ship) unloadingComplete() {
	now := sh.sim.sched.Now()
	sh.TimeUnloadingComplete = now
	logrus.Infof("[t=%05d] ship %d finished unloading", now, sh.ID)

	if err := sh.sim.Cranes.Release(sh.key()); err != nil {
		sh.sim.fail(err)
		return
	}
	if err := sh.sim.Berths.Release(sh.key()); err != nil {
		sh.sim.fail(err)
		return
	}

	sh.TimeDeparted = sh.sim.sched.Now()
	sh.State = StateDeparted
	logrus.Infof("[t=%05d] ship %d is departing", sh.TimeDeparted, sh.ID)

	sh.sim.complete(sh)
}

// record snapshots the ship's milestone times as an immutable record.
func (sh *Ship) record() trace.TimingRecord {
	return trace.TimingRecord{
		ShipID:                sh.ID,
		CargoSize:             sh.CargoSize,
		TimeArrived:           sh.TimeArrived,
		TimeDocked:            sh.TimeDocked,
		TimeCraneSecured:      sh.TimeCraneSecured,
		TimeUnloadingComplete: sh.TimeUnloadingComplete,
		TimeDeparted:          sh.TimeDeparted,
	}
}
