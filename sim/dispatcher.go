package sim

import "sort"

// Strategy selects how the Dispatcher partitions an incoming job set across
// cores.
type Strategy string

const (
	RoundRobinStrategy  Strategy = "ROUND_ROBIN"
	LeastLoadedStrategy Strategy = "LEAST_LOADED"
)

// Dispatch partitions jobs across numCores under strategy, once, before the
// simulation starts — there is no mid-run rebalancing (§4.4). Grounded
// directly on original_source/Assignments/P02/multicore.py's
// assign_processes_to_cores, translated from "index into a slice of
// per-core queues" to "return one slice of jobs per core".
func Dispatch(jobs []*Job, numCores int, strategy Strategy) ([][]*Job, error) {
	ordered := append([]*Job(nil), jobs...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].ArrivalTime != ordered[j].ArrivalTime {
			return ordered[i].ArrivalTime < ordered[j].ArrivalTime
		}
		return ordered[i].PID < ordered[j].PID
	})

	perCore := make([][]*Job, numCores)
	for i := range perCore {
		perCore[i] = []*Job{}
	}

	switch strategy {
	case RoundRobinStrategy:
		for i, job := range ordered {
			coreID := i % numCores
			perCore[coreID] = append(perCore[coreID], job)
		}
	case LeastLoadedStrategy:
		load := make([]int64, numCores)
		for _, job := range ordered {
			coreID := leastLoadedCore(load)
			perCore[coreID] = append(perCore[coreID], job)
			load[coreID] += job.BurstTime
		}
	default:
		return nil, &ConfigError{Reason: "unknown dispatch strategy: " + string(strategy)}
	}

	return perCore, nil
}

// leastLoadedCore returns the index of the smallest load value, ties broken
// by smaller core id (ascending scan already guarantees this).
func leastLoadedCore(load []int64) int {
	best := 0
	for i := 1; i < len(load); i++ {
		if load[i] < load[best] {
			best = i
		}
	}
	return best
}
