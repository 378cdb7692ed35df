// Package sim implements a discrete-event CPU scheduling simulator: a set of
// jobs is partitioned across one or more cores, each core advances under a
// selectable scheduling policy, and a shared clock ticks forward one unit at
// a time until every job has completed.
package sim
