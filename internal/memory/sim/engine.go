package sim

import (
	"fmt"
	"log/slog"

	"github.com/bietkhonhungvandi212/pagesim/internal/memory/frame"
	"github.com/bietkhonhungvandi212/pagesim/internal/memory/page"
	"github.com/bietkhonhungvandi212/pagesim/internal/memory/replacer"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
)

// State of one algorithm run
type State int

const (
	NotStarted State = iota
	Running
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// frameTable is the part of *frame.Table a simulation drives.
type frameTable interface {
	replacer.Frames
	Contains(number util.PageNumber) bool
	Full() bool
	Insert(p page.Page) error
	UpdateMetadata(number util.PageNumber, field page.Field, value int) error
	EvictAndInsert(victim util.PageNumber, p page.Page) error
}

// Engine replays a reference trace under each replacement policy.
type Engine struct {
	opts   util.Options
	logger *slog.Logger
}

// NewEngine validates opts. A nil logger means slog.Default().
func NewEngine(opts util.Options, logger *slog.Logger) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{opts: opts, logger: logger}, nil
}

func (e *Engine) Options() util.Options {
	return e.opts
}

// RunAll runs FIFO, LRU, MFU and Optimal in that order. On error no run is returned.
func (e *Engine) RunAll(trace []util.PageNumber) ([]Run, error) {
	runs := make([]Run, 0, len(replacer.All()))
	for _, alg := range replacer.All() {
		run, err := e.RunAlgorithm(alg, trace)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// RunAlgorithm replays trace under alg from an empty frame table.
func (e *Engine) RunAlgorithm(alg replacer.Algorithm, trace []util.PageNumber) (Run, error) {
	if !alg.Valid() {
		return Run{}, fmt.Errorf("[engine] %v: %w", alg, util.ErrUnknownAlgorithm)
	}

	e.logger.Info("working on algorithm", "algorithm", alg.String(), "frames", e.opts.FrameCapacity, "references", len(trace))
	s := e.newSimulation(alg, frame.NewTable(e.opts.FrameCapacity), trace)
	run, err := s.run()
	if err != nil {
		return Run{}, err
	}

	e.logger.Debug("algorithm finished", "algorithm", alg.String(), "faults", run.TotalFaults, "evictions", run.Evictions)
	return run, nil
}

type simulation struct {
	alg    replacer.Algorithm
	frames frameTable
	trace  []util.PageNumber
	future replacer.Future
	counts map[util.PageNumber]int // MFU references over the whole trace
	rec    *Recorder
	state  State
	logger *slog.Logger
}

func (e *Engine) newSimulation(alg replacer.Algorithm, frames frameTable, trace []util.PageNumber) *simulation {
	s := &simulation{
		alg:    alg,
		frames: frames,
		trace:  trace,
		counts: make(map[util.PageNumber]int),
		rec:    NewRecorder(e.opts.IntervalSize),
		state:  NotStarted,
		logger: e.logger.With("algorithm", alg.String()),
	}
	if alg == replacer.Optimal {
		s.future = replacer.NewFuture(trace)
	}
	return s
}

func (s *simulation) run() (Run, error) {
	if s.state != NotStarted {
		return Run{}, fmt.Errorf("[engine] [%v] state %v: %w", s.alg, s.state, util.ErrEngineFinished)
	}
	s.state = Running

	progressStep := max(len(s.trace)/10, 1)
	for i, number := range s.trace {
		if s.alg == replacer.Optimal && i%progressStep == 0 {
			s.logger.Debug("progress", "percent", i*100/len(s.trace))
		}
		if err := s.step(util.Tick(i), number); err != nil {
			return Run{}, err
		}
	}

	s.state = Finished
	return s.rec.Finalize(s.alg), nil
}

func (s *simulation) step(tick util.Tick, number util.PageNumber) error {
	requested := page.New(number)
	switch s.alg {
	case replacer.LRU:
		requested.LastUseTime = tick
	case replacer.MFU:
		s.counts[number]++
		requested.References = s.counts[number]
	}

	if s.frames.Contains(number) {
		s.hit(tick, requested)
		s.rec.Reference(false)
		return nil
	}

	if s.alg == replacer.FIFO {
		requested.ArrivalTime = tick
	}
	if err := s.fault(tick, requested); err != nil {
		return err
	}
	s.rec.Reference(true)
	return nil
}

func (s *simulation) hit(tick util.Tick, requested page.Page) {
	var err error
	switch s.alg {
	case replacer.LRU:
		err = s.frames.UpdateMetadata(requested.Number, page.FieldLastUse, int(requested.LastUseTime))
	case replacer.MFU:
		err = s.frames.UpdateMetadata(requested.Number, page.FieldReferences, requested.References)
	}
	if err == nil {
		return
	}

	// Lenient: report and keep simulating.
	s.rec.Warning()
	warning := util.NewSimulationError(util.ErrTypeMetadataConsistency,
		fmt.Sprintf("update of page %d in frame failed", requested.Number), err).
		With("page", requested.Number).
		With("tick", tick)
	s.logger.Warn("metadata update failed", "page", uint64(requested.Number), "tick", int(tick), "error", warning)
}

func (s *simulation) fault(tick util.Tick, requested page.Page) error {
	if !s.frames.Full() {
		if err := s.frames.Insert(requested); err != nil {
			return fmt.Errorf("[engine] [%v] insert at tick %d: %w", s.alg, tick, err)
		}
		return nil
	}

	victim, err := replacer.SelectVictim(s.alg, s.frames, s.future, tick)
	if err != nil {
		return fmt.Errorf("[engine] [%v] select victim at tick %d: %w", s.alg, tick, err)
	}
	if err := s.frames.EvictAndInsert(victim, requested); err != nil {
		return fmt.Errorf("[engine] [%v] replace %d at tick %d: %w", s.alg, victim, tick, err)
	}
	s.rec.Eviction()
	return nil
}
