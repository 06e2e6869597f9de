// sim/simulator.go
//
// Wires the scheduler, the two resource pools and the results sink into a
// single simulation run.

package sim

import (
	"fmt"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"

	"github.com/harbor-sim/harbor-sim/sim/trace"
)

// Simulation is one port-congestion run: a virtual-time scheduler, the
// berth and crane pools, and a fresh results sink. Create a new
// Simulation per run; it must not be reused.
type Simulation struct {
	// RunID tags log lines and summaries of this run.
	RunID  string
	Berths *Pool
	Cranes *Pool

	cfg    Config
	sched  *Scheduler
	sink   *trace.Sink
	driver *ArrivalDriver
	live   map[int]*Ship
	err    error
}

// NewSimulation validates the configuration and builds an idle run.
func NewSimulation(cfg Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	sched := NewScheduler()
	berths, err := NewPool(sched, "berths", cfg.BerthCapacity)
	if err != nil {
		return nil, err
	}
	cranes, err := NewPool(sched, "cranes", cfg.CraneCapacity)
	if err != nil {
		return nil, err
	}
	s := &Simulation{
		RunID:  xid.New().String(),
		Berths: berths,
		Cranes: cranes,
		cfg:    cfg,
		sched:  sched,
		sink:   trace.NewSink(),
		live:   make(map[int]*Ship),
	}
	s.driver = NewArrivalDriver(s)
	return s, nil
}

// Clock returns the current virtual time of the run.
func (s *Simulation) Clock() int64 {
	return s.sched.Now()
}

// Run injects the arrival schedule and drains the event queue. It
// returns the completed timing records in departure order. The queue
// empties deterministically once every ship has departed, so no horizon
// or timeout is needed.
func (s *Simulation) Run(arrivals []Arrival) ([]trace.TimingRecord, error) {
	logrus.Infof("run %s: %d berths, %d cranes, %.2f min/container, %d arrival records",
		s.RunID, s.cfg.BerthCapacity, s.cfg.CraneCapacity, s.cfg.UnloadMinutesPerContainer, len(arrivals))

	if err := s.driver.Inject(arrivals); err != nil {
		return nil, err
	}
	s.sched.Run()
	if s.err != nil {
		return nil, s.err
	}

	logrus.Infof("run %s: simulation ended at t=%d with %d ships processed",
		s.RunID, s.sched.Now(), s.sink.Len())
	return s.sink.Records(), nil
}

// Rejected returns the arrival records skipped by cargo validation.
func (s *Simulation) Rejected() []Arrival {
	return s.driver.Rejected()
}

// Live returns the number of ships spawned but not yet departed.
func (s *Simulation) Live() int {
	return len(s.live)
}

// spawn creates the ship process for one arrival record and starts it.
func (s *Simulation) spawn(a Arrival) {
	sh := &Ship{ID: a.ShipID, CargoSize: a.CargoSize, sim: s}
	s.live[sh.ID] = sh
	sh.Start()
}

// complete emits the ship's timing record and drops it from live-process
// tracking.
func (s *Simulation) complete(sh *Ship) {
	s.sink.Record(sh.record())
	delete(s.live, sh.ID)
}

// fail records the first internal error and halts dispatch. Engine bugs
// abort the run rather than produce a corrupt result set.
func (s *Simulation) fail(err error) {
	if s.err == nil {
		s.err = err
		s.sched.Halt()
		logrus.Errorf("run %s aborted: %v", s.RunID, err)
	}
}
