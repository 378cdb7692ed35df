package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPolicy_RR_RejectsNonPositiveQuantum(t *testing.T) {
	// S6: RR{quantum=0} -> INVALID_CONFIG.
	_, err := buildPolicy(PolicyConfig{Kind: RR, Quantum: 0})
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestBuildPolicy_MLFQ_RequiresMatchingQuantaAndSubPolicies(t *testing.T) {
	_, err := buildPolicy(PolicyConfig{
		Kind:        MLFQ,
		Quanta:      []int64{2, 4},
		SubPolicies: []PolicyConfig{{Kind: RR}},
	})
	assert.Error(t, err)
}

func TestBuildPolicy_MLFQ_PropagatesQueueQuantumIntoRRSubPolicy(t *testing.T) {
	p, err := buildPolicy(PolicyConfig{
		Kind:        MLFQ,
		Quanta:      []int64{2, 4},
		SubPolicies: []PolicyConfig{{Kind: RR}, {Kind: RR}},
	})
	require.NoError(t, err)

	mlfq, ok := p.(*MLFQPolicy)
	require.True(t, ok)
	require.Len(t, mlfq.levels, 2)

	level0, ok := mlfq.levels[0].(*RoundRobinPolicy)
	require.True(t, ok)
	assert.Equal(t, int64(2), level0.Quantum)

	level1, ok := mlfq.levels[1].(*RoundRobinPolicy)
	require.True(t, ok)
	assert.Equal(t, int64(4), level1.Quantum)
}

func TestBuildPolicy_UnknownKind_IsConfigError(t *testing.T) {
	_, err := buildPolicy(PolicyConfig{Kind: PolicyKind("NOPE")})
	assert.Error(t, err)
}

func TestConfig_Validate_RejectsZeroCores(t *testing.T) {
	cfg := Config{NumCores: 0, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: FCFS}}
	err := cfg.validate(nil)
	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestConfig_Validate_RejectsDuplicatePIDs(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: FCFS}}
	jobs := []*Job{NewJob(1, 0, 1, 0), NewJob(1, 1, 1, 0)}

	err := cfg.validate(jobs)
	require.Error(t, err)
	var jobErr *JobError
	assert.ErrorAs(t, err, &jobErr)
}

func TestConfig_Validate_RejectsInvalidJob(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: FCFS}}
	jobs := []*Job{NewJob(1, 0, 0, 0)}

	err := cfg.validate(jobs)
	require.Error(t, err)
}

func TestConfig_PolicyFor_PerCoreOverridesDefault(t *testing.T) {
	cfg := Config{
		NumCores: 2,
		Policy:   PolicyConfig{Kind: FCFS},
		PerCore:  map[int]PolicyConfig{1: {Kind: RR, Quantum: 3}},
	}

	assert.Equal(t, FCFS, cfg.policyFor(0).Kind)
	assert.Equal(t, RR, cfg.policyFor(1).Kind)
}
