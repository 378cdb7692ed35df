package sim

// Clock is the non-negative integer tick counter shared across all cores in
// a simulation run. It is owned and advanced exclusively by the Simulator;
// one tick represents one unit of CPU time on one core.
type Clock struct {
	now int64
}

// Now returns the current tick.
func (c *Clock) Now() int64 { return c.now }

// Advance moves the clock forward by one tick.
func (c *Clock) Advance() { c.now++ }
