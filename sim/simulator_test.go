package sim

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbor-sim/harbor-sim/sim/trace"
)

func newTestSimulation(t *testing.T, cfg Config) *Simulation {
	t.Helper()
	s, err := NewSimulation(cfg)
	require.NoError(t, err)
	return s
}

func TestSimulation_SingleBerthSingleCrane_Scenario(t *testing.T) {
	// GIVEN one berth, one crane, 2 minutes per container and two ships
	// arriving at the same instant
	s := newTestSimulation(t, Config{BerthCapacity: 1, CraneCapacity: 1, UnloadMinutesPerContainer: 2})
	arrivals := []Arrival{
		{ShipID: 1, ArrivalTime: 0, CargoSize: 5},
		{ShipID: 2, ArrivalTime: 0, CargoSize: 3},
	}

	// WHEN the run completes
	records, err := s.Run(arrivals)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// THEN ship 1 sails straight through and ship 2 waits out ship 1's
	// full berth occupancy
	ship1 := records[0]
	assert.Equal(t, 1, ship1.ShipID)
	assert.Equal(t, int64(0), ship1.TimeArrived)
	assert.Equal(t, int64(0), ship1.TimeDocked)
	assert.Equal(t, int64(0), ship1.TimeCraneSecured)
	assert.Equal(t, int64(10), ship1.TimeUnloadingComplete)
	assert.Equal(t, int64(10), ship1.TimeDeparted)

	ship2 := records[1]
	assert.Equal(t, 2, ship2.ShipID)
	assert.Equal(t, int64(0), ship2.TimeArrived)
	assert.Equal(t, int64(10), ship2.TimeDocked)
	assert.Equal(t, int64(10), ship2.TimeCraneSecured)
	assert.Equal(t, int64(16), ship2.TimeUnloadingComplete)
	assert.Equal(t, int64(16), ship2.TimeDeparted)

	assert.Equal(t, int64(10), ship2.BerthWait())
	assert.Equal(t, int64(0), ship2.CraneWait())
}

func TestSimulation_EmptyArrivalSet_CompletesImmediately(t *testing.T) {
	// GIVEN no arrivals
	s := newTestSimulation(t, Config{BerthCapacity: 2, CraneCapacity: 2, UnloadMinutesPerContainer: 2})

	// WHEN the run completes
	records, err := s.Run(nil)

	// THEN there is no error, no records, and the clock never moved
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, int64(0), s.Clock())
}

func TestSimulation_ExcessCapacity_NoWaits(t *testing.T) {
	// GIVEN far more berths and cranes than ships, with spread-out arrivals
	s := newTestSimulation(t, Config{BerthCapacity: 10, CraneCapacity: 10, UnloadMinutesPerContainer: 2})
	var arrivals []Arrival
	for i := 0; i < 5; i++ {
		arrivals = append(arrivals, Arrival{ShipID: i + 1, ArrivalTime: int64(i * 1000), CargoSize: 20})
	}

	// WHEN the run completes
	records, err := s.Run(arrivals)
	require.NoError(t, err)
	require.Len(t, records, 5)

	// THEN every ship docks and secures a crane with zero wait
	for _, r := range records {
		assert.Equal(t, int64(0), r.BerthWait(), "ship %d berth wait", r.ShipID)
		assert.Equal(t, int64(0), r.CraneWait(), "ship %d crane wait", r.ShipID)
		assert.Equal(t, int64(40), r.Turnaround(), "ship %d turnaround", r.ShipID)
	}
}

func TestSimulation_InvalidCargo_RejectedWithoutHaltingRun(t *testing.T) {
	// GIVEN a schedule with one zero-cargo and one negative-cargo record
	s := newTestSimulation(t, Config{BerthCapacity: 1, CraneCapacity: 1, UnloadMinutesPerContainer: 1})
	arrivals := []Arrival{
		{ShipID: 1, ArrivalTime: 0, CargoSize: 4},
		{ShipID: 2, ArrivalTime: 5, CargoSize: 0},
		{ShipID: 3, ArrivalTime: 6, CargoSize: -7},
		{ShipID: 4, ArrivalTime: 9, CargoSize: 2},
	}

	// WHEN the run completes
	records, err := s.Run(arrivals)
	require.NoError(t, err)

	// THEN only the valid records produce timing records (conservation)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].ShipID)
	assert.Equal(t, 4, records[1].ShipID)

	rejected := s.Rejected()
	require.Len(t, rejected, 2)
	assert.Equal(t, 2, rejected[0].ShipID)
	assert.Equal(t, 3, rejected[1].ShipID)
}

func TestSimulation_UnsortedArrivals_FailBeforeRun(t *testing.T) {
	// GIVEN a schedule that is not sorted by arrival time
	s := newTestSimulation(t, Config{BerthCapacity: 1, CraneCapacity: 1, UnloadMinutesPerContainer: 1})
	arrivals := []Arrival{
		{ShipID: 1, ArrivalTime: 10, CargoSize: 3},
		{ShipID: 2, ArrivalTime: 5, CargoSize: 3},
	}

	// WHEN the run is attempted
	records, err := s.Run(arrivals)

	// THEN it aborts with ErrUnsortedArrivals before anything executes
	require.ErrorIs(t, err, ErrUnsortedArrivals)
	assert.Nil(t, records)
	assert.Equal(t, int64(0), s.Clock())
}

func TestSimulation_NegativeArrivalTime_Rejected(t *testing.T) {
	// GIVEN a schedule with a negative arrival time
	s := newTestSimulation(t, Config{BerthCapacity: 1, CraneCapacity: 1, UnloadMinutesPerContainer: 1})
	arrivals := []Arrival{{ShipID: 1, ArrivalTime: -4, CargoSize: 3}}

	// WHEN the run is attempted
	_, err := s.Run(arrivals)

	// THEN the input contract violation surfaces to the caller
	require.ErrorIs(t, err, ErrUnsortedArrivals)
}

// contendedSchedule builds a deterministic schedule that keeps a small
// port saturated: tight arrivals with mixed cargo sizes.
func contendedSchedule(n int) []Arrival {
	arrivals := make([]Arrival, 0, n)
	for i := 0; i < n; i++ {
		arrivals = append(arrivals, Arrival{
			ShipID:      i + 1,
			ArrivalTime: int64(i * 3),
			CargoSize:   5 + (i*7)%40,
		})
	}
	return arrivals
}

func TestSimulation_PerShipMilestoneOrdering(t *testing.T) {
	// GIVEN a saturated two-berth, one-crane port
	s := newTestSimulation(t, Config{BerthCapacity: 2, CraneCapacity: 1, UnloadMinutesPerContainer: 2})
	arrivals := contendedSchedule(50)

	// WHEN the run completes
	records, err := s.Run(arrivals)
	require.NoError(t, err)
	require.Len(t, records, 50)
	assert.Equal(t, 0, s.Live())

	// THEN every record's milestones are non-decreasing
	for _, r := range records {
		assert.LessOrEqual(t, r.TimeArrived, r.TimeDocked, "ship %d", r.ShipID)
		assert.LessOrEqual(t, r.TimeDocked, r.TimeCraneSecured, "ship %d", r.ShipID)
		assert.LessOrEqual(t, r.TimeCraneSecured, r.TimeUnloadingComplete, "ship %d", r.ShipID)
		assert.LessOrEqual(t, r.TimeUnloadingComplete, r.TimeDeparted, "ship %d", r.ShipID)
	}
}

func TestSimulation_FIFOFairness_SingleBerth(t *testing.T) {
	// GIVEN a single berth under contention
	s := newTestSimulation(t, Config{BerthCapacity: 1, CraneCapacity: 1, UnloadMinutesPerContainer: 2})
	arrivals := contendedSchedule(20)

	// WHEN the run completes
	records, err := s.Run(arrivals)
	require.NoError(t, err)
	require.Len(t, records, 20)

	// THEN docking order follows arrival (enqueue) order: a ship that
	// arrived earlier never docks after a later one
	byID := make(map[int]trace.TimingRecord, len(records))
	for _, r := range records {
		byID[r.ShipID] = r
	}
	for i := 2; i <= 20; i++ {
		earlier, later := byID[i-1], byID[i]
		assert.LessOrEqual(t, earlier.TimeDocked, later.TimeDocked,
			"ship %d docked before ship %d", i, i-1)
	}
}

func TestSimulation_Determinism_IdenticalRecordSets(t *testing.T) {
	// GIVEN the same schedule and configuration twice
	cfg := Config{BerthCapacity: 2, CraneCapacity: 2, UnloadMinutesPerContainer: 2}
	arrivals := contendedSchedule(40)

	run := func() []trace.TimingRecord {
		s := newTestSimulation(t, cfg)
		records, err := s.Run(arrivals)
		require.NoError(t, err)
		return records
	}

	// WHEN both runs complete
	first := run()
	second := run()

	// THEN the record sets are identical, element for element
	require.Equal(t, first, second)
	require.Equal(t, fmt.Sprintf("%#v", first), fmt.Sprintf("%#v", second))
}

func TestNewSimulation_InvalidConfig_Fails(t *testing.T) {
	cases := []Config{
		{BerthCapacity: 0, CraneCapacity: 1, UnloadMinutesPerContainer: 2},
		{BerthCapacity: 1, CraneCapacity: -1, UnloadMinutesPerContainer: 2},
		{BerthCapacity: 1, CraneCapacity: 1, UnloadMinutesPerContainer: 0},
	}
	for i, cfg := range cases {
		if _, err := NewSimulation(cfg); err == nil {
			t.Errorf("case %d: config %+v accepted, want error", i, cfg)
		}
	}
}

func TestUnloadDuration_RoundsToNearestMinute(t *testing.T) {
	if got := UnloadDuration(5, 2); got != 10 {
		t.Errorf("UnloadDuration(5, 2): got %d, want 10", got)
	}
	if got := UnloadDuration(3, 1.5); got != 5 {
		t.Errorf("UnloadDuration(3, 1.5): got %d, want 5", got)
	}
}

func TestUnloadDuration_PositiveProductTakesAtLeastOneMinute(t *testing.T) {
	// GIVEN cargo small enough that rounding alone would reach zero
	// THEN the one-minute floor applies: unloading anything takes time
	if got := UnloadDuration(1, 0.2); got != 1 {
		t.Errorf("UnloadDuration(1, 0.2): got %d, want 1", got)
	}
	if got := UnloadDuration(2, 0.1); got != 1 {
		t.Errorf("UnloadDuration(2, 0.1): got %d, want 1", got)
	}
	// rounding still wins once the product clears a full minute
	if got := UnloadDuration(3, 0.5); got != 2 {
		t.Errorf("UnloadDuration(3, 0.5): got %d, want 2", got)
	}
}

func TestSimulation_ReleaseErrorSurfaces(t *testing.T) {
	// GIVEN a run whose crane pool is corrupted mid-flight to force a
	// release-without-hold (an engine-bug condition)
	s := newTestSimulation(t, Config{BerthCapacity: 1, CraneCapacity: 1, UnloadMinutesPerContainer: 1})

	// sabotage: drop ship 1's crane hold behind the engine's back
	s.sched.ScheduleAt(1, func() {
		require.NoError(t, s.Cranes.Release("ship_1"))
	})

	// WHEN the run executes
	_, err := s.Run([]Arrival{{ShipID: 1, ArrivalTime: 0, CargoSize: 5}})

	// THEN the invariant violation aborts the run
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrReleaseWithoutHold))
}
