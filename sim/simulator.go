package sim

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// Simulator drives the shared Clock, invoking every Core once per tick in
// ascending core-id order and collecting completions, until every job is
// DONE. Grounded on the teacher's Simulator.Run/ClusterSimulator.Run tick
// loops (sim/simulator.go, sim/cluster/simulator.go): same "pop/advance,
// execute, check stop condition" shape, adapted from event-heap jumps to a
// fixed one-tick-at-a-time advance since §4.5 requires a single global tick
// per round over all cores rather than jumping to the next event.
type Simulator struct {
	clock Clock
	cores []*Core
	jobs  []*Job
	sink  eventSink
}

// NewSimulator validates cfg and jobs (§4.6, §7) and partitions jobs across
// cores via Dispatch. Static failures — INVALID_CONFIG, INVALID_JOB — abort
// the whole call and are returned as an error, never reaching Run.
func NewSimulator(cfg Config, jobs []*Job) (*Simulator, error) {
	if err := cfg.validate(jobs); err != nil {
		return nil, err
	}

	perCore, err := Dispatch(jobs, cfg.NumCores, cfg.Strategy)
	if err != nil {
		return nil, err
	}

	cores := make([]*Core, cfg.NumCores)
	for id := 0; id < cfg.NumCores; id++ {
		policy, err := buildPolicy(cfg.policyFor(id))
		if err != nil {
			return nil, err
		}
		cores[id] = NewCore(id, policy, perCore[id])
	}

	return &Simulator{cores: cores, jobs: jobs}, nil
}

// Subscribe registers an Observer that receives every SimEvent emitted
// during Run (§6, "observable events").
func (s *Simulator) Subscribe(o Observer) { s.sink.Subscribe(o) }

// Run advances the clock tick by tick until every job completes, ctx is
// canceled, or the INFINITE_IDLE guard trips. ctx may be nil, in which case
// cancellation is never observed — the idiomatic Go rendering of the
// spec's abstract cancel() signal (§5).
func (s *Simulator) Run(ctx context.Context) *Result {
	if len(s.jobs) == 0 {
		return &Result{Status: Status{Kind: StatusOK}}
	}

	var completedJobs []*Job
	var completions []Completion

	logrus.Debugf("simulation starting: %d jobs across %d cores", len(s.jobs), len(s.cores))

	for {
		if allDone(s.cores) {
			break
		}
		if ctx != nil && ctx.Err() != nil {
			kind := StatusCanceled
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				kind = StatusSimulationTimeout
			}
			logrus.Warnf("[tick %07d] simulation stopped: %s", s.clock.Now(), ctx.Err())
			return s.result(completedJobs, completions, Status{Kind: kind, Reason: ctx.Err().Error()})
		}

		now := s.clock.Now()
		progressed := false
		for _, core := range s.cores {
			job, ran := core.tick(now, &s.sink)
			if ran {
				progressed = true
			}
			if job != nil {
				completedJobs = append(completedJobs, job)
				completions = append(completions, completionOf(job))
			}
		}

		s.clock.Advance()

		if !progressed && !anyFutureArrival(s.cores) {
			logrus.Warnf("[tick %07d] no core made progress and no future arrivals remain", s.clock.Now())
			return s.result(completedJobs, completions, Status{
				Kind:   StatusInfiniteIdle,
				Reason: "no core made progress and no future arrivals remain",
			})
		}
	}

	logrus.Debugf("[tick %07d] simulation complete: %d jobs done", s.clock.Now(), len(completedJobs))
	return s.result(completedJobs, completions, Status{Kind: StatusOK})
}

func (s *Simulator) result(jobs []*Job, completions []Completion, status Status) *Result {
	return &Result{
		Completions: completions,
		Aggregates:  computeAggregates(jobs, len(s.cores)),
		Status:      status,
	}
}

func allDone(cores []*Core) bool {
	for _, c := range cores {
		if c.hasPending() {
			return false
		}
	}
	return true
}

func anyFutureArrival(cores []*Core) bool {
	for _, c := range cores {
		if _, ok := c.nextArrival(); ok {
			return true
		}
	}
	return false
}
