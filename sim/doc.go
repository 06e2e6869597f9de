// Package sim provides the discrete-event simulation engine for the port
// congestion model.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - scheduler.go: the virtual clock and the (time, sequence) dispatch loop
//   - resource.go: capacity-bounded pools with FIFO wait queues (berths, cranes)
//   - ship.go: the per-vessel lifecycle state machine and its continuations
//
// # Architecture
//
// A Simulation owns one Scheduler, the berth and crane Pools and a fresh
// results sink per run. The ArrivalDriver turns the external schedule into
// spawn events; each Ship then chains through berth acquisition, crane
// acquisition and a timed unloading delay, suspending by registering a
// continuation and resuming only through scheduler dispatch. Supporting
// sub-packages:
//   - sim/trace/: timing records, the results sink and KPI aggregation
//   - sim/workload/: synthetic arrival-schedule generation
//
// There is no real concurrency: many ships are logically in flight at a
// virtual instant, but every transition executes inside the scheduler's
// single dispatch path, so pool state needs no locking.
package sim
