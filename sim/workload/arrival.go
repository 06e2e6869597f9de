package workload

import "math/rand"

// ArrivalSampler generates inter-arrival gaps for the schedule generator.
type ArrivalSampler interface {
	// SampleGap returns the next inter-arrival gap in minutes (>= 0).
	SampleGap(rng *rand.Rand) float64
}

// ExponentialSampler generates exponentially distributed gaps, i.e. a
// Poisson arrival process with the given mean interval.
type ExponentialSampler struct {
	MeanInterval float64 // minutes between arrivals on average
}

func (s ExponentialSampler) SampleGap(rng *rand.Rand) float64 {
	return rng.ExpFloat64() * s.MeanInterval
}

// FixedSampler emits a constant gap. Useful for evenly spaced schedules
// in tests and capacity sizing.
type FixedSampler struct {
	Interval float64
}

func (s FixedSampler) SampleGap(_ *rand.Rand) float64 {
	return s.Interval
}
