// cmd/trace.go
package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/schedsim/cpu-scheduler-sim/sim"
)

// newTraceObserver returns a sim.Observer that logs every SimEvent at debug
// level, one line per tick/core/kind. Enabled by run's --trace flag.
func newTraceObserver() sim.Observer {
	return func(ev sim.SimEvent) {
		if ev.Kind == sim.EventIdle {
			logrus.Debugf("[tick %07d] core %d idle", ev.Tick, ev.CoreID)
			return
		}
		logrus.Debugf("[tick %07d] core %d %s pid=%d", ev.Tick, ev.CoreID, ev.Kind, ev.PID)
	}
}
