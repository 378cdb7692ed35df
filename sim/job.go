package sim

import "fmt"

// State is a job's position in the NEW -> READY -> RUNNING -> DONE lifecycle.
type State int

const (
	StateNew State = iota
	StateReady
	StateRunning
	StateDone
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateReady:
		return "READY"
	case StateRunning:
		return "RUNNING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// unset marks RunState fields that have not yet been latched by the
// simulator (StartTime, CompletionTime). Ticks are never negative, so -1 is
// an unambiguous sentinel.
const unset = -1

// Job is a unit of work submitted to the simulator. PID, ArrivalTime,
// BurstTime and Priority are fixed at construction; every other field is
// run-state set by the simulator: NewCore assigns AssignedCore, the policies
// mark the job READY on admission, and Core.tick drives the rest.
type Job struct {
	PID         int
	ArrivalTime int64
	BurstTime   int64
	Priority    int

	RemainingTime  int64
	StartTime      int64
	CompletionTime int64
	AssignedCore   int
	State          State
}

// NewJob constructs a job in the NEW state with RemainingTime initialized to
// BurstTime and StartTime/CompletionTime unset.
func NewJob(pid int, arrivalTime, burstTime int64, priority int) *Job {
	return &Job{
		PID:            pid,
		ArrivalTime:    arrivalTime,
		BurstTime:      burstTime,
		Priority:       priority,
		RemainingTime:  burstTime,
		StartTime:      unset,
		CompletionTime: unset,
		State:          StateNew,
	}
}

// Validate checks the static per-job invariants from the job input boundary.
// It never mutates the job.
func (j *Job) Validate() error {
	if j.BurstTime <= 0 {
		return fmt.Errorf("burst_time must be > 0, got %d", j.BurstTime)
	}
	if j.ArrivalTime < 0 {
		return fmt.Errorf("arrival_time must be >= 0, got %d", j.ArrivalTime)
	}
	return nil
}

// HasStarted reports whether the job has ever been dispatched.
func (j *Job) HasStarted() bool { return j.StartTime != unset }

// HasCompleted reports whether the job has reached RemainingTime == 0.
func (j *Job) HasCompleted() bool { return j.RemainingTime == 0 }

// markReady transitions a NEW or READY job into READY; no-op once RUNNING or
// DONE, since arrivals are only admitted once.
func (j *Job) markReady() {
	if j.State == StateNew {
		j.State = StateReady
	}
}

// run latches StartTime (once) and decrements RemainingTime by one tick.
// It is the single authority for mutating RemainingTime (design note #9).
func (j *Job) run(now int64) {
	if !j.HasStarted() {
		j.StartTime = now
	}
	j.State = StateRunning
	j.RemainingTime--
}

// requeue returns a still-incomplete job to READY after a quantum expiry.
func (j *Job) requeue() {
	if j.State != StateDone {
		j.State = StateReady
	}
}

// TurnaroundTime returns completion_time - arrival_time. Only meaningful once
// the job has completed.
func (j *Job) TurnaroundTime() int64 { return j.CompletionTime - j.ArrivalTime }

// WaitingTime returns turnaround_time - burst_time. Only meaningful once the
// job has completed.
func (j *Job) WaitingTime() int64 { return j.TurnaroundTime() - j.BurstTime }

// complete latches CompletionTime and transitions the job to DONE. finishAt
// is now+1, matching §4.3: the tick that drives RemainingTime to zero
// completes the job at the start of the next tick.
func (j *Job) complete(finishAt int64) {
	j.CompletionTime = finishAt
	j.State = StateDone
}
