package sim

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// computeAggregates is a pure function from a completed-job set (plus the
// core count) to the five aggregate metrics of §4.7. It never mutates jobs.
// Mirrors the teacher's Metrics.Print summary (sim/metrics.go) and
// original_source simulation.py's analyze_metrics, including the
// min(cpu_utilization, 100) clamp. avg_waiting_time/avg_turnaround_time use
// gonum's stat.Mean rather than a hand-rolled sum/len loop.
func computeAggregates(jobs []*Job, numCores int) Aggregates {
	if len(jobs) == 0 {
		return Aggregates{}
	}

	waiting := make([]float64, len(jobs))
	turnaround := make([]float64, len(jobs))
	var totalBurst int64
	minArrival := jobs[0].ArrivalTime
	maxCompletion := jobs[0].CompletionTime

	for i, j := range jobs {
		waiting[i] = float64(j.WaitingTime())
		turnaround[i] = float64(j.TurnaroundTime())
		totalBurst += j.BurstTime
		if j.ArrivalTime < minArrival {
			minArrival = j.ArrivalTime
		}
		if j.CompletionTime > maxCompletion {
			maxCompletion = j.CompletionTime
		}
	}

	totalSimTime := maxCompletion - minArrival
	agg := Aggregates{
		AvgWaitingTime:      stat.Mean(waiting, nil),
		AvgTurnaroundTime:   stat.Mean(turnaround, nil),
		TotalSimulationTime: totalSimTime,
	}
	if totalSimTime > 0 {
		utilization := 100 * float64(totalBurst) / (float64(totalSimTime) * float64(numCores))
		agg.CPUUtilization = min(utilization, 100)
		agg.Throughput = float64(len(jobs)) / float64(totalSimTime)
	}
	return agg
}

// Summary renders the aggregates as the multi-line report the teacher's
// Metrics.Print produces, so cmd/run.go can print it directly.
func (a Aggregates) Summary() string {
	return fmt.Sprintf(
		"Average Waiting Time   : %.2f ticks\nAverage Turnaround Time: %.2f ticks\nCPU Utilization        : %.2f%%\nThroughput             : %.4f jobs/tick\nTotal Simulation Time  : %d ticks\n",
		a.AvgWaitingTime, a.AvgTurnaroundTime, a.CPUUtilization, a.Throughput, a.TotalSimulationTime)
}
