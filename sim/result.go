package sim

// StatusKind is the error taxonomy from §7 of SPEC_FULL.md: static errors
// (InvalidConfig, InvalidJob) are returned from NewSimulator and never reach
// a Result; dynamic ones (InfiniteIdle, Canceled, SimulationTimeout) are
// only ever observed in a Result returned by Run.
type StatusKind string

const (
	StatusOK                StatusKind = "OK"
	StatusInfiniteIdle      StatusKind = "INFINITE_IDLE"
	StatusCanceled          StatusKind = "CANCELED"
	StatusSimulationTimeout StatusKind = "SIMULATION_TIMEOUT"
)

// Status reports how a Run call ended.
type Status struct {
	Kind   StatusKind
	Reason string
}

// Completion is one job's external-boundary record, in completion order.
type Completion struct {
	PID            int
	CoreID         int
	StartTime      int64
	CompletionTime int64
	WaitingTime    int64
	TurnaroundTime int64
}

// Aggregates are the simulation-wide performance metrics (§4.7).
type Aggregates struct {
	AvgWaitingTime      float64
	AvgTurnaroundTime   float64
	CPUUtilization      float64
	Throughput          float64
	TotalSimulationTime int64
}

// Result is the full output of a simulation run (§6).
type Result struct {
	Completions []Completion
	Aggregates  Aggregates
	Status      Status
}

func completionOf(j *Job) Completion {
	return Completion{
		PID:            j.PID,
		CoreID:         j.AssignedCore,
		StartTime:      j.StartTime,
		CompletionTime: j.CompletionTime,
		WaitingTime:    j.WaitingTime(),
		TurnaroundTime: j.TurnaroundTime(),
	}
}
