package sim

// RoundRobinPolicy runs the head of a FIFO queue for up to Quantum ticks (or
// until completion), then requeues it at the tail. Grounded on
// original_source/Assignments/P02/scheduler.py's round_robin, generalized
// from "run a whole slice at once" to "one tick at a time" to fit the
// Core.tick(now) contract (§4.2/§4.3 of SPEC_FULL.md).
type RoundRobinPolicy struct {
	Quantum int64

	queue       []*Job
	running     *Job
	ticksInSpan int64
}

// NewRoundRobin returns a RR policy with the given quantum. The caller is
// responsible for rejecting quantum <= 0 as INVALID_CONFIG before
// constructing a simulation (see sim/config.go); NewRoundRobin itself does
// not validate, since MLFQ levels share this same type for each queue.
func NewRoundRobin(quantum int64) *RoundRobinPolicy {
	return &RoundRobinPolicy{Quantum: quantum}
}

func (p *RoundRobinPolicy) Admit(job *Job) {
	job.markReady()
	p.queue = append(p.queue, job)
}

func (p *RoundRobinPolicy) Select(now int64) *Job {
	if p.running == nil {
		if len(p.queue) == 0 {
			return nil
		}
		p.running = p.queue[0]
		p.queue = p.queue[1:]
		p.ticksInSpan = 0
	}
	return p.running
}

func (p *RoundRobinPolicy) Release(job *Job, done bool) (quantumExpired bool) {
	p.ticksInSpan++
	if done {
		p.running = nil
		p.ticksInSpan = 0
		return false
	}
	if p.ticksInSpan >= p.Quantum {
		p.running = nil
		p.ticksInSpan = 0
		return true
	}
	return false
}

func (p *RoundRobinPolicy) HasPending() bool {
	return p.running != nil || len(p.queue) > 0
}
