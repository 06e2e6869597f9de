package trace

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates port KPIs over a completed run.
type Summary struct {
	ShipsProcessed int

	MeanBerthWait float64
	MaxBerthWait  float64
	MeanCraneWait float64
	MaxCraneWait  float64

	MeanTurnaround float64
	TurnaroundP50  float64
	TurnaroundP90  float64
	TurnaroundP99  float64
}

// Summarize computes aggregate KPIs from a run's timing records.
// Safe for an empty record set (returns zero-value fields).
func Summarize(records []TimingRecord) *Summary {
	summary := &Summary{ShipsProcessed: len(records)}
	if len(records) == 0 {
		return summary
	}

	berthWaits := make([]float64, len(records))
	craneWaits := make([]float64, len(records))
	turnarounds := make([]float64, len(records))
	for i, r := range records {
		berthWaits[i] = float64(r.BerthWait())
		craneWaits[i] = float64(r.CraneWait())
		turnarounds[i] = float64(r.Turnaround())
	}

	summary.MeanBerthWait = stat.Mean(berthWaits, nil)
	summary.MeanCraneWait = stat.Mean(craneWaits, nil)
	summary.MeanTurnaround = stat.Mean(turnarounds, nil)
	for i := range records {
		if berthWaits[i] > summary.MaxBerthWait {
			summary.MaxBerthWait = berthWaits[i]
		}
		if craneWaits[i] > summary.MaxCraneWait {
			summary.MaxCraneWait = craneWaits[i]
		}
	}

	// stat.Quantile requires sorted input.
	sort.Float64s(turnarounds)
	summary.TurnaroundP50 = stat.Quantile(0.50, stat.Empirical, turnarounds, nil)
	summary.TurnaroundP90 = stat.Quantile(0.90, stat.Empirical, turnarounds, nil)
	summary.TurnaroundP99 = stat.Quantile(0.99, stat.Empirical, turnarounds, nil)

	return summary
}

// Print displays the KPI block at the end of a run.
func (s *Summary) Print() {
	fmt.Println("========================================")
	fmt.Println("           PORT PERFORMANCE KPIs")
	fmt.Println("========================================")
	fmt.Printf("Total Ships Processed    : %d\n", s.ShipsProcessed)
	if s.ShipsProcessed > 0 {
		fmt.Printf("Average Berth Wait Time  : %.2f minutes\n", s.MeanBerthWait)
		fmt.Printf("Maximum Berth Wait Time  : %.2f minutes\n", s.MaxBerthWait)
		fmt.Printf("Average Crane Wait Time  : %.2f minutes\n", s.MeanCraneWait)
		fmt.Printf("Maximum Crane Wait Time  : %.2f minutes\n", s.MaxCraneWait)
		fmt.Printf("Average Turnaround Time  : %.2f minutes\n", s.MeanTurnaround)
		fmt.Printf("Turnaround p50/p90/p99   : %.2f / %.2f / %.2f minutes\n",
			s.TurnaroundP50, s.TurnaroundP90, s.TurnaroundP99)
	}
	fmt.Println("========================================")
}
