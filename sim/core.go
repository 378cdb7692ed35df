package sim

import "sort"

// Core owns one local ready queue (via its Policy) and the slice of jobs the
// Dispatcher assigned to it. Cores never share queues and never reach back
// into the Simulator — the Simulator passes `now` and an event sink into
// tick instead (design note #9, "break the cycle"). Grounded on the
// teacher's InstanceSimulator (sim/cluster/instance.go), which plays the
// same "owns one Policy/Simulator and exposes Step" role for one replica.
type Core struct {
	ID     int
	Policy Policy

	owned       []*Job // assigned by the Dispatcher, sorted by (ArrivalTime, PID)
	admitCursor int
	lastPID     int // PID of the job dispatched on the previous tick, 0 if none
}

// NewCore creates a core with the given id and policy, owning jobs (already
// assigned to it by the Dispatcher).
func NewCore(id int, policy Policy, jobs []*Job) *Core {
	owned := append([]*Job(nil), jobs...)
	sort.SliceStable(owned, func(i, j int) bool {
		if owned[i].ArrivalTime != owned[j].ArrivalTime {
			return owned[i].ArrivalTime < owned[j].ArrivalTime
		}
		return owned[i].PID < owned[j].PID
	})
	for _, j := range owned {
		j.AssignedCore = id
	}
	return &Core{ID: id, Policy: policy, owned: owned}
}

// tick admits any job arriving exactly now, asks the Policy for a
// selection, executes it for one tick, and reports whether a job actually
// ran this tick (ran) and, if one just completed, the completed job.
// Implements §4.3 of SPEC_FULL.md.
func (c *Core) tick(now int64, sink *eventSink) (completed *Job, ran bool) {
	for c.admitCursor < len(c.owned) && c.owned[c.admitCursor].ArrivalTime <= now {
		job := c.owned[c.admitCursor]
		c.admitCursor++
		c.Policy.Admit(job)
		sink.emit(SimEvent{Tick: now, CoreID: c.ID, Kind: EventAdmit, PID: job.PID})
	}

	job := c.Policy.Select(now)
	if job == nil {
		c.lastPID = 0
		sink.emit(SimEvent{Tick: now, CoreID: c.ID, Kind: EventIdle})
		return nil, false
	}

	if job.PID != c.lastPID {
		c.lastPID = job.PID
		sink.emit(SimEvent{Tick: now, CoreID: c.ID, Kind: EventDispatch, PID: job.PID})
	}

	job.run(now)
	done := job.RemainingTime == 0
	quantumExpired := c.Policy.Release(job, done)

	if done {
		job.complete(now + 1)
		c.lastPID = 0
		sink.emit(SimEvent{Tick: now, CoreID: c.ID, Kind: EventComplete, PID: job.PID})
		return job, true
	}

	if quantumExpired {
		job.requeue()
		c.Policy.Admit(job)
		c.lastPID = 0
		sink.emit(SimEvent{Tick: now, CoreID: c.ID, Kind: EventPreempt, PID: job.PID})
	}
	return nil, true
}

// hasPending reports whether this core still owns an incomplete job: either
// not yet admitted, or admitted and held by its Policy.
func (c *Core) hasPending() bool {
	return c.admitCursor < len(c.owned) || c.Policy.HasPending()
}

// nextArrival returns the arrival time of the earliest not-yet-admitted
// owned job, and whether one exists. Used by the Simulator's INFINITE_IDLE
// guard.
func (c *Core) nextArrival() (int64, bool) {
	if c.admitCursor >= len(c.owned) {
		return 0, false
	}
	return c.owned[c.admitCursor].ArrivalTime, true
}

// retired reports whether this core has no owned jobs remaining and an
// empty local queue (§4.3).
func (c *Core) retired() bool { return !c.hasPending() }
