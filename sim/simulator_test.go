package sim

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRun(t *testing.T, cfg Config, jobs []*Job) *Result {
	t.Helper()
	s, err := NewSimulator(cfg, jobs)
	require.NoError(t, err)
	return s.Run(context.Background())
}

func completionFor(t *testing.T, result *Result, pid int) Completion {
	t.Helper()
	for _, c := range result.Completions {
		if c.PID == pid {
			return c
		}
	}
	t.Fatalf("no completion found for pid %d", pid)
	return Completion{}
}

func TestSimulator_S1_FCFSSingleCore(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: FCFS}}
	jobs := []*Job{
		NewJob(1, 0, 5, 1),
		NewJob(2, 1, 3, 1),
		NewJob(3, 2, 8, 1),
	}

	result := mustRun(t, cfg, jobs)

	require.Equal(t, StatusOK, result.Status.Kind)
	assert.Equal(t, int64(5), completionFor(t, result, 1).CompletionTime)
	assert.Equal(t, int64(8), completionFor(t, result, 2).CompletionTime)
	assert.Equal(t, int64(16), completionFor(t, result, 3).CompletionTime)
	assert.InDelta(t, 3.33, result.Aggregates.AvgWaitingTime, 0.01)
	assert.InDelta(t, 8.67, result.Aggregates.AvgTurnaroundTime, 0.01)
}

func TestSimulator_S2_SJFNonPreemptive(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: SJFNP}}
	jobs := []*Job{
		NewJob(1, 0, 7, 0),
		NewJob(2, 2, 4, 0),
		NewJob(3, 4, 1, 0),
		NewJob(4, 5, 4, 0),
	}

	result := mustRun(t, cfg, jobs)

	assert.Equal(t, int64(7), completionFor(t, result, 1).CompletionTime)
	assert.Equal(t, int64(8), completionFor(t, result, 3).CompletionTime)
	assert.Equal(t, int64(12), completionFor(t, result, 2).CompletionTime)
	assert.Equal(t, int64(16), completionFor(t, result, 4).CompletionTime)
	assert.InDelta(t, 4.0, result.Aggregates.AvgWaitingTime, 0.01)
}

func TestSimulator_S3_RoundRobinQuantumFour(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: RR, Quantum: 4}}
	jobs := []*Job{
		NewJob(1, 0, 5, 0),
		NewJob(2, 0, 4, 0),
		NewJob(3, 0, 2, 0),
	}

	result := mustRun(t, cfg, jobs)

	assert.Equal(t, int64(8), completionFor(t, result, 2).CompletionTime)
	assert.Equal(t, int64(10), completionFor(t, result, 3).CompletionTime)
	assert.Equal(t, int64(11), completionFor(t, result, 1).CompletionTime)
}

func TestSimulator_S4_PriorityNonPreemptive(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: PriorityNP}}
	jobs := []*Job{
		NewJob(1, 0, 4, 2),
		NewJob(2, 1, 3, 1),
		NewJob(3, 2, 2, 3),
	}

	result := mustRun(t, cfg, jobs)

	assert.Equal(t, int64(4), completionFor(t, result, 1).CompletionTime)
	assert.Equal(t, int64(7), completionFor(t, result, 2).CompletionTime)
	assert.Equal(t, int64(9), completionFor(t, result, 3).CompletionTime)
}

func TestSimulator_S5_MultiCoreRoundRobinStrategy(t *testing.T) {
	cfg := Config{NumCores: 2, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: RR, Quantum: 2}}
	jobs := []*Job{
		NewJob(1, 0, 4, 0),
		NewJob(2, 0, 4, 0),
		NewJob(3, 0, 4, 0),
		NewJob(4, 0, 4, 0),
	}

	result := mustRun(t, cfg, jobs)

	assert.Equal(t, int64(8), result.Aggregates.TotalSimulationTime)
	assert.InDelta(t, 100.0, result.Aggregates.CPUUtilization, 0.01)
}

func TestSimulator_S6_InvalidConfig_RejectedBeforeRun(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: RR, Quantum: 0}}
	_, err := NewSimulator(cfg, []*Job{NewJob(1, 0, 1, 0)})

	require.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestSimulator_S10_CancellationYieldsPartialCausalCompletions(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: FCFS}}
	jobs := []*Job{
		NewJob(1, 0, 2, 0),
		NewJob(2, 2, 1000, 0),
	}
	s, err := NewSimulator(cfg, jobs)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	s.Subscribe(func(ev SimEvent) {
		if ev.Kind == EventComplete && ev.PID == 1 {
			cancel()
		}
	})

	result := s.Run(ctx)

	assert.Equal(t, StatusCanceled, result.Status.Kind)
	require.NotEmpty(t, result.Completions)
	for _, c := range result.Completions {
		assert.LessOrEqual(t, int64(0), c.WaitingTime)
		assert.GreaterOrEqual(t, c.CompletionTime-1, c.StartTime)
	}
}

func TestSimulator_DeadlineExceeded_ReportsSimulationTimeout(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: FCFS}}
	jobs := []*Job{NewJob(1, 0, 5, 0)}
	s, err := NewSimulator(cfg, jobs)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()
	time.Sleep(time.Millisecond)

	result := s.Run(ctx)
	assert.Equal(t, StatusSimulationTimeout, result.Status.Kind)
}

func TestSimulator_EmptyJobSet_ReturnsOKImmediately(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: FCFS}}
	s, err := NewSimulator(cfg, nil)
	require.NoError(t, err)

	result := s.Run(context.Background())
	assert.Equal(t, StatusOK, result.Status.Kind)
	assert.Empty(t, result.Completions)
}

func TestSimulator_Invariant_WaitingPlusBurstEqualsTurnaround(t *testing.T) {
	cfg := Config{NumCores: 1, Strategy: RoundRobinStrategy, Policy: PolicyConfig{Kind: RR, Quantum: 3}}
	jobs := []*Job{
		NewJob(1, 0, 5, 0),
		NewJob(2, 1, 7, 0),
		NewJob(3, 3, 2, 0),
	}

	result := mustRun(t, cfg, jobs)

	require.Len(t, result.Completions, 3)
	for _, c := range result.Completions {
		assert.Equal(t, c.TurnaroundTime, c.WaitingTime+jobBurstByPID(jobs, c.PID))
		assert.GreaterOrEqual(t, c.StartTime, jobArrivalByPID(jobs, c.PID))
	}
}

func jobBurstByPID(jobs []*Job, pid int) int64 {
	for _, j := range jobs {
		if j.PID == pid {
			return j.BurstTime
		}
	}
	return 0
}

func jobArrivalByPID(jobs []*Job, pid int) int64 {
	for _, j := range jobs {
		if j.PID == pid {
			return j.ArrivalTime
		}
	}
	return 0
}
