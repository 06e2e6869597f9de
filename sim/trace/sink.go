package trace

// Sink collects the timing records of one simulation run, in departure
// order. Create a fresh Sink per run; it is never reused across runs.
type Sink struct {
	records []TimingRecord
}

// NewSink creates an empty sink ready for recording.
func NewSink() *Sink {
	return &Sink{records: make([]TimingRecord, 0)}
}

// Record appends a completed ship's timing record.
func (s *Sink) Record(r TimingRecord) {
	s.records = append(s.records, r)
}

// Records returns the collected records in departure order. The caller
// owns the returned slice; the sink keeps its own copy.
func (s *Sink) Records() []TimingRecord {
	out := make([]TimingRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records collected so far.
func (s *Sink) Len() int {
	return len(s.records)
}
