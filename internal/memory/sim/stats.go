package sim

import (
	"github.com/bietkhonhungvandi212/pagesim/internal/memory/replacer"
)

// Run is the finalized result of one algorithm over one trace.
type Run struct {
	Algorithm          replacer.Algorithm
	TotalFaults        int
	IntervalFaultRates []float64
	References         int
	Evictions          int
	Warnings           int
}

// Recorder accumulates fault statistics for a single run. Samples are
// append-only: one fault rate per completed interval.
type Recorder struct {
	interval   int
	references int
	faults     int
	evictions  int
	warnings   int
	samples    []float64
}

func NewRecorder(interval int) *Recorder {
	if interval <= 0 {
		panic("[stats] interval must be positive")
	}
	return &Recorder{interval: interval}
}

// Reference records one processed reference and samples at interval boundaries.
func (r *Recorder) Reference(fault bool) {
	r.references++
	if fault {
		r.faults++
	}
	if r.references%r.interval == 0 {
		r.samples = append(r.samples, float64(r.faults)/float64(r.references))
	}
}

func (r *Recorder) Eviction() {
	r.evictions++
}

func (r *Recorder) Warning() {
	r.warnings++
}

func (r *Recorder) Faults() int {
	return r.faults
}

func (r *Recorder) References() int {
	return r.references
}

// Samples returns a copy of the fault-rate samples recorded so far.
func (r *Recorder) Samples() []float64 {
	out := make([]float64, len(r.samples))
	copy(out, r.samples)
	return out
}

// Finalize freezes the statistics into a Run.
func (r *Recorder) Finalize(alg replacer.Algorithm) Run {
	return Run{
		Algorithm:          alg,
		TotalFaults:        r.faults,
		IntervalFaultRates: r.Samples(),
		References:         r.references,
		Evictions:          r.evictions,
		Warnings:           r.warnings,
	}
}
