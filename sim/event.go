package sim

// event is one pending wake-up in virtual time. fn is the continuation of
// a suspended ship process (or an arrival spawn) and runs exactly once
// when the scheduler dispatches the event.
type event struct {
	time int64  // dispatch time in simulation minutes
	seq  uint64 // creation sequence, tie-breaks equal times
	fn   func()
}

// eventHeap implements heap.Interface with deterministic ordering.
// Ordering: time → creation sequence, so events scheduled for the same
// instant dispatch in the order they were created. An unordered tie-break
// would make equal-time interleavings irreproducible across runs.
type eventHeap []*event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	if h[i].time != h[j].time {
		return h[i].time < h[j].time
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(*event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
