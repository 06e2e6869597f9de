// Implements the capacity-bounded resource pool with a FIFO wait queue.
// Berths and cranes are two independent Pool instances; a ship chains
// through both before departing.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// waiter pairs a requester with the continuation to run once a unit is
// granted.
type waiter struct {
	id      string
	granted func()
}

// Pool is a capacity-bounded shared resource. Units are granted to
// waiters strictly in enqueue order; capacity is fixed at construction.
// All mutation happens inside scheduler dispatch, so no locking is
// needed.
type Pool struct {
	name     string
	capacity int
	inUse    int
	waiters  []waiter
	holders  map[string]int
	sched    *Scheduler
}

// NewPool creates a pool with the given unit capacity.
func NewPool(sched *Scheduler, name string, capacity int) (*Pool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("pool %s: capacity must be positive, got %d", name, capacity)
	}
	return &Pool{
		name:     name,
		capacity: capacity,
		holders:  make(map[string]int),
		sched:    sched,
	}, nil
}

// Acquire hands a unit to id. If capacity is available the grant resolves
// synchronously within the current dispatch step; otherwise id joins the
// tail of the wait queue and granted runs later, through the scheduler,
// once a holder releases. granted runs exactly once either way.
func (p *Pool) Acquire(id string, granted func()) {
	if p.inUse < p.capacity {
		p.inUse++
		p.holders[id]++
		granted()
		return
	}
	p.waiters = append(p.waiters, waiter{id: id, granted: granted})
	logrus.Debugf("[t=%05d] %s: %s queued, %d waiting", p.sched.Now(), p.name, id, len(p.waiters))
}

// Release returns id's unit to the pool. If anyone is waiting, the head
// waiter takes the unit immediately and its resumption is scheduled at
// the current clock time. A release by a non-holder returns
// ErrReleaseWithoutHold; that never happens under correct use.
func (p *Pool) Release(id string) error {
	if p.holders[id] == 0 {
		return fmt.Errorf("%w: %s holds no %s unit", ErrReleaseWithoutHold, id, p.name)
	}
	p.holders[id]--
	if p.holders[id] == 0 {
		delete(p.holders, id)
	}
	p.inUse--

	if len(p.waiters) > 0 {
		next := p.waiters[0]
		p.waiters = p.waiters[1:]
		// The unit transfers to the head waiter within this dispatch step;
		// only its continuation is deferred.
		p.inUse++
		p.holders[next.id]++
		if err := p.sched.ScheduleAfter(0, next.granted); err != nil {
			return err
		}
	}
	return nil
}

// Name returns the pool's name.
func (p *Pool) Name() string { return p.name }

// Capacity returns the fixed unit capacity.
func (p *Pool) Capacity() int { return p.capacity }

// InUse returns the number of units currently held.
func (p *Pool) InUse() int { return p.inUse }

// Waiting returns the number of queued waiters.
func (p *Pool) Waiting() int { return len(p.waiters) }
