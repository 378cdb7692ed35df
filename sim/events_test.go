package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventSink_FansOutToAllObservers(t *testing.T) {
	var sink eventSink
	var gotA, gotB []SimEvent
	sink.Subscribe(func(ev SimEvent) { gotA = append(gotA, ev) })
	sink.Subscribe(func(ev SimEvent) { gotB = append(gotB, ev) })

	ev := SimEvent{Tick: 3, CoreID: 0, Kind: EventDispatch, PID: 7}
	sink.emit(ev)

	assert.Equal(t, []SimEvent{ev}, gotA)
	assert.Equal(t, []SimEvent{ev}, gotB)
}

func TestEventSink_NilObserverIgnored(t *testing.T) {
	var sink eventSink
	sink.Subscribe(nil)
	assert.NotPanics(t, func() { sink.emit(SimEvent{Kind: EventIdle}) })
}
