package sim

import "fmt"

// PolicyKind tags which scheduling algorithm a PolicyConfig describes.
type PolicyKind string

const (
	FCFS       PolicyKind = "FCFS"
	SJFNP      PolicyKind = "SJF_NP"
	RR         PolicyKind = "RR"
	PriorityNP PolicyKind = "PRIORITY_NP"
	MLFQ       PolicyKind = "MLFQ"
)

// PolicyConfig is the tagged-variant boundary representation of a Policy
// (§6 of SPEC_FULL.md): Kind selects which fields are meaningful.
//   - RR uses Quantum.
//   - MLFQ uses Quanta and SubPolicies, which must be the same length.
type PolicyConfig struct {
	Kind        PolicyKind
	Quantum     int64
	Quanta      []int64
	SubPolicies []PolicyConfig
}

// Config is the simulation-wide configuration: core count, dispatch
// strategy, and the policy (or per-core policy map) each core runs.
type Config struct {
	NumCores int
	Strategy Strategy

	// Policy is used by every core unless overridden in PerCore.
	Policy PolicyConfig
	// PerCore overrides Policy for specific core ids.
	PerCore map[int]PolicyConfig
}

// ConfigError reports a static INVALID_CONFIG failure (§4.6, §7).
type ConfigError struct{ Reason string }

func (e *ConfigError) Error() string { return "invalid config: " + e.Reason }

// JobError reports a static INVALID_JOB failure for a specific job (§4.6, §7).
type JobError struct {
	PID    int
	Reason string
}

func (e *JobError) Error() string {
	return fmt.Sprintf("invalid job %d: %s", e.PID, e.Reason)
}

// buildPolicy constructs a Policy tree from a PolicyConfig, validating
// quantum and MLFQ shape invariants as it goes (§4.6: RR/MLFQ quantum <= 0,
// or |quanta| != num_queues, are INVALID_CONFIG).
func buildPolicy(cfg PolicyConfig) (Policy, error) {
	switch cfg.Kind {
	case FCFS:
		return NewFCFS(), nil
	case SJFNP:
		return NewSJF(), nil
	case PriorityNP:
		return NewPriority(), nil
	case RR:
		if cfg.Quantum <= 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("RR quantum must be > 0, got %d", cfg.Quantum)}
		}
		return NewRoundRobin(cfg.Quantum), nil
	case MLFQ:
		return buildMLFQ(cfg)
	default:
		return nil, &ConfigError{Reason: fmt.Sprintf("unknown policy kind %q", cfg.Kind)}
	}
}

func buildMLFQ(cfg PolicyConfig) (Policy, error) {
	n := len(cfg.Quanta)
	if n == 0 {
		return nil, &ConfigError{Reason: "MLFQ requires at least one queue"}
	}
	if len(cfg.SubPolicies) != n {
		return nil, &ConfigError{Reason: fmt.Sprintf(
			"MLFQ quanta/sub_policies length mismatch: %d quanta, %d sub_policies", n, len(cfg.SubPolicies))}
	}
	levels := make([]Policy, n)
	for i, sub := range cfg.SubPolicies {
		if sub.Kind == RR && sub.Quantum == 0 {
			// The queue-level quantum doubles as the RR sub-policy's
			// quantum when not explicitly set, so callers can write
			// {Kind: RR} per level and supply Quanta separately.
			sub.Quantum = cfg.Quanta[i]
		}
		if cfg.Quanta[i] <= 0 {
			return nil, &ConfigError{Reason: fmt.Sprintf("MLFQ level %d quantum must be > 0, got %d", i, cfg.Quanta[i])}
		}
		level, err := buildPolicy(sub)
		if err != nil {
			return nil, err
		}
		levels[i] = level
	}
	return NewMLFQ(levels), nil
}

// policyFor resolves the PolicyConfig that applies to coreID, per-core
// override taking precedence over the shared Policy.
func (c Config) policyFor(coreID int) PolicyConfig {
	if c.PerCore != nil {
		if p, ok := c.PerCore[coreID]; ok {
			return p
		}
	}
	return c.Policy
}

// validate checks the static, pre-simulation invariants of Config and the
// job set (§4.6, §7): NumCores, Strategy, every core's policy, every job's
// fields. Returns the first failure encountered.
func (c Config) validate(jobs []*Job) error {
	if c.NumCores < 1 {
		return &ConfigError{Reason: fmt.Sprintf("num_cores must be >= 1, got %d", c.NumCores)}
	}
	if c.Strategy != RoundRobinStrategy && c.Strategy != LeastLoadedStrategy {
		return &ConfigError{Reason: fmt.Sprintf("unknown strategy %q", c.Strategy)}
	}
	for coreID := 0; coreID < c.NumCores; coreID++ {
		if _, err := buildPolicy(c.policyFor(coreID)); err != nil {
			return err
		}
	}
	seen := make(map[int]bool, len(jobs))
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return &JobError{PID: j.PID, Reason: err.Error()}
		}
		if seen[j.PID] {
			return &JobError{PID: j.PID, Reason: "duplicate pid"}
		}
		seen[j.PID] = true
	}
	return nil
}
