package sim

import "sort"

// Policy is the tagged-variant scheduling contract every algorithm in this
// package implements: a single per-tick selection operation plus the
// bookkeeping hooks a Core needs to drive it. Mirrors the teacher's
// InstanceScheduler interface (sim/scheduler.go) generalized from
// "reorder a queue" to "own a ready structure across ticks", since unlike
// the teacher's batch formation this simulator must support preemption
// (Round Robin, MLFQ) in addition to pure reordering (FCFS/SJF/Priority).
type Policy interface {
	// Admit registers a newly-arrived (or re-queued) job as eligible for
	// selection. Called by Core.tick once per admitted arrival, and again
	// by the owning Core/MLFQ level when a preempted job is put back.
	Admit(job *Job)

	// Select returns the job that should run for the upcoming tick, or nil
	// if the policy is idle. Calling Select without an intervening Release
	// for the same job returns the same job (a non-preemptive policy keeps
	// returning it across Releases until the job is done).
	Select(now int64) *Job

	// Release is invoked immediately after the job returned by Select has
	// been run for one tick. done reports whether RemainingTime reached
	// zero. It returns quantumExpired: true if a preemptive policy ended
	// the job's dispatch span without completing it, in which case the
	// caller (Core for a flat policy, MLFQ for a nested one) is
	// responsible for re-admitting the job — at this level (Core) or one
	// level down (MLFQ demotion).
	Release(job *Job, done bool) (quantumExpired bool)

	// HasPending reports whether the policy still owns any incomplete job,
	// running or queued.
	HasPending() bool
}

// orderingRule puts the job to dispatch at the head of a ready slice.
// Mirrors the teacher's InstanceScheduler.OrderQueue contract (sort the
// queue in place for determinism); callers here then pop exactly one job,
// ready[0], at a time.
type orderingRule interface {
	// order stable-sorts ready in place so ready[0] is the job to dispatch.
	order(ready []*Job)
}

type fcfsRule struct{}

func (fcfsRule) order(ready []*Job) {
	sort.SliceStable(ready, func(i, j int) bool {
		if ready[i].ArrivalTime != ready[j].ArrivalTime {
			return ready[i].ArrivalTime < ready[j].ArrivalTime
		}
		return ready[i].PID < ready[j].PID
	})
}

type sjfRule struct{}

func (sjfRule) order(ready []*Job) {
	sort.SliceStable(ready, func(i, j int) bool {
		if ready[i].BurstTime != ready[j].BurstTime {
			return ready[i].BurstTime < ready[j].BurstTime
		}
		if ready[i].ArrivalTime != ready[j].ArrivalTime {
			return ready[i].ArrivalTime < ready[j].ArrivalTime
		}
		return ready[i].PID < ready[j].PID
	})
}

type priorityRule struct{}

func (priorityRule) order(ready []*Job) {
	sort.SliceStable(ready, func(i, j int) bool {
		if ready[i].Priority != ready[j].Priority {
			return ready[i].Priority < ready[j].Priority
		}
		if ready[i].ArrivalTime != ready[j].ArrivalTime {
			return ready[i].ArrivalTime < ready[j].ArrivalTime
		}
		return ready[i].PID < ready[j].PID
	})
}

// nonPreemptivePolicy implements FCFS, SJF and Priority scheduling: a single
// shared engine parameterized by an orderingRule, since all three pick one
// job from the ready set by a comparator and then run it to completion
// without preemption.
type nonPreemptivePolicy struct {
	rule    orderingRule
	ready   []*Job
	running *Job
}

func newNonPreemptivePolicy(rule orderingRule) *nonPreemptivePolicy {
	return &nonPreemptivePolicy{rule: rule}
}

func (p *nonPreemptivePolicy) Admit(job *Job) {
	job.markReady()
	p.ready = append(p.ready, job)
}

func (p *nonPreemptivePolicy) Select(now int64) *Job {
	if p.running != nil {
		return p.running
	}
	if len(p.ready) == 0 {
		return nil
	}
	p.rule.order(p.ready)
	p.running = p.ready[0]
	p.ready = p.ready[1:]
	return p.running
}

func (p *nonPreemptivePolicy) Release(job *Job, done bool) (quantumExpired bool) {
	if done {
		p.running = nil
	}
	// Non-preemptive: an unfinished job simply stays "running" and Select
	// returns it again next tick. No quantum exists to expire.
	return false
}

func (p *nonPreemptivePolicy) HasPending() bool {
	return p.running != nil || len(p.ready) > 0
}

// NewFCFS returns a First-Come-First-Served non-preemptive policy.
func NewFCFS() Policy { return newNonPreemptivePolicy(fcfsRule{}) }

// NewSJF returns a Shortest-Job-First non-preemptive policy.
func NewSJF() Policy { return newNonPreemptivePolicy(sjfRule{}) }

// NewPriority returns a smaller-value-runs-first non-preemptive policy.
func NewPriority() Policy { return newNonPreemptivePolicy(priorityRule{}) }
