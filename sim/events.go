package sim

// EventKind tags the kind of thing that happened to a job on a core during
// one tick. Mirrors the teacher's cluster.EventType tagging (sim/cluster/types.go)
// adapted from a heap-ordering key into a plain observation tag: this
// simulator's tick/core loop is already the deterministic ordering
// authority (§5 of SPEC_FULL.md), so no second priority-ordered heap is
// needed to keep the event stream reproducible.
type EventKind string

const (
	EventAdmit    EventKind = "ADMIT"
	EventDispatch EventKind = "DISPATCH"
	EventPreempt  EventKind = "PREEMPT"
	EventComplete EventKind = "COMPLETE"
	EventIdle     EventKind = "IDLE"
)

// eventKindOrder mirrors the teacher's EventTypePriority map (sim/cluster/types.go):
// kept for documentation of intra-tick precedence even though the emitting
// loop already produces events in this order by construction.
var eventKindOrder = map[EventKind]int{
	EventAdmit:    0,
	EventDispatch: 1,
	EventPreempt:  2,
	EventComplete: 3,
	EventIdle:     4,
}

// SimEvent is one observable (tick, core, kind) occurrence, optionally
// carrying the PID it concerns. IDLE events carry PID == 0.
type SimEvent struct {
	Tick   int64
	CoreID int
	Kind   EventKind
	PID    int
}

// Observer receives SimEvents as they occur. Observers are called
// synchronously from within Simulator.Run and must not block or mutate
// simulator state; they exist purely for presentation-layer subscription
// (§6 of SPEC_FULL.md).
type Observer func(SimEvent)

// eventSink fans a SimEvent out to zero or more observers.
type eventSink struct {
	observers []Observer
}

func (s *eventSink) Subscribe(o Observer) {
	if o != nil {
		s.observers = append(s.observers, o)
	}
}

func (s *eventSink) emit(ev SimEvent) {
	for _, o := range s.observers {
		o(ev)
	}
}
