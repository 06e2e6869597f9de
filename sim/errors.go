// Defines the sentinel error kinds surfaced by the engine. Contract
// violations (delay, ordering, release) abort a run; cargo validation is
// reported per record without halting the simulation.

package sim

import "errors"

var (
	// ErrInvalidDelay is returned when a timed wait is requested with a
	// negative delay. This is a programming error, never a run-time
	// condition.
	ErrInvalidDelay = errors.New("negative scheduling delay")

	// ErrInvalidCargoSize marks an arrival record whose cargo size is not
	// a positive integer. The offending record is skipped; the rest of the
	// schedule still runs.
	ErrInvalidCargoSize = errors.New("cargo size must be positive")

	// ErrUnsortedArrivals is returned when the arrival schedule is not
	// sorted non-decreasing by arrival time. Callers must pre-sort.
	ErrUnsortedArrivals = errors.New("arrivals not sorted by arrival time")

	// ErrReleaseWithoutHold indicates a pool release by a process that
	// holds no unit. It signals an engine bug and aborts the run.
	ErrReleaseWithoutHold = errors.New("release without matching hold")
)
