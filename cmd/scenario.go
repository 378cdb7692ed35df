// cmd/scenario.go
package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/cpu-scheduler-sim/sim"
)

// policyYAML is the on-disk shape of a sim.PolicyConfig. Mirrors the
// teacher's WorkloadConfig pattern (cmd/workload_config.go): a plain struct
// decoded with yaml.v3 and then translated into the package's real types.
type policyYAML struct {
	Kind        string       `yaml:"kind"`
	Quantum     int64        `yaml:"quantum"`
	Quanta      []int64      `yaml:"quanta"`
	SubPolicies []policyYAML `yaml:"sub_policies"`
}

func (p policyYAML) toConfig() sim.PolicyConfig {
	subs := make([]sim.PolicyConfig, len(p.SubPolicies))
	for i, s := range p.SubPolicies {
		subs[i] = s.toConfig()
	}
	return sim.PolicyConfig{
		Kind:        sim.PolicyKind(p.Kind),
		Quantum:     p.Quantum,
		Quanta:      p.Quanta,
		SubPolicies: subs,
	}
}

type jobYAML struct {
	PID         int   `yaml:"pid"`
	ArrivalTime int64 `yaml:"arrival_time"`
	BurstTime   int64 `yaml:"burst_time"`
	Priority    int   `yaml:"priority"`
}

// scenarioYAML is the full shape of a scenario file: the simulation-wide
// config plus the job set it runs.
type scenarioYAML struct {
	NumCores int                `yaml:"num_cores"`
	Strategy string             `yaml:"strategy"`
	Policy   policyYAML         `yaml:"policy"`
	PerCore  map[int]policyYAML `yaml:"per_core"`
	Jobs     []jobYAML          `yaml:"jobs"`
}

// loadScenario reads and strictly decodes a YAML scenario file into a
// sim.Config and job slice. Strict decoding (KnownFields) rejects typoed
// keys instead of silently ignoring them, matching the teacher's general
// preference for failing loud over a service that drifts from its config.
func loadScenario(path string) (sim.Config, []*sim.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return sim.Config{}, nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var raw scenarioYAML
	if err := dec.Decode(&raw); err != nil {
		return sim.Config{}, nil, fmt.Errorf("parsing scenario file: %w", err)
	}

	cfg := sim.Config{
		NumCores: raw.NumCores,
		Strategy: sim.Strategy(raw.Strategy),
		Policy:   raw.Policy.toConfig(),
	}
	if len(raw.PerCore) > 0 {
		cfg.PerCore = make(map[int]sim.PolicyConfig, len(raw.PerCore))
		for coreID, p := range raw.PerCore {
			cfg.PerCore[coreID] = p.toConfig()
		}
	}

	jobs := make([]*sim.Job, len(raw.Jobs))
	for i, j := range raw.Jobs {
		jobs[i] = sim.NewJob(j.PID, j.ArrivalTime, j.BurstTime, j.Priority)
	}

	return cfg, jobs, nil
}
