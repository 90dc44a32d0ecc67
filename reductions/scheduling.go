package reductions

import (
	"context"
	"sort"

	"github.com/arlov/algokit/flow"
)

// Job is one candidate interval: occupying [Start, End) earns Profit if
// selected. Profit must be non-negative; the scheduling reduction below
// relies on every job edge being a cost-reducing (or neutral) choice.
type Job struct {
	Start, End int
	Profit     int64
}

// ScheduleJobs selects a profit-maximising subset of jobs schedulable
// on k identical machines, where two selected jobs may run
// concurrently only if fewer than k other selected jobs overlap them
// at every instant (spec.md §4.9, supplemented from
// original_source/9_flows_advanced/task3's k-machine scheduling task).
//
// This is the timeline-flow reduction: every distinct Start/End value
// becomes a node on a chain of capacity-k, cost-0 edges (representing
// "k machines idle through this interval"); each job adds a
// capacity-1 edge from its Start node to its End node with cost
// -Profit. A virtual super-source/super-sink pair, each joined to the
// timeline's first/last node by a single capacity-k edge, is what
// actually enforces the "at most k concurrent" bound: job edges and
// backbone edges both add capacity in parallel across a given instant,
// so without a single capacity-k bottleneck at the very start of the
// network nothing would stop more than k overlapping jobs from all
// carrying flow at once. Because every edge in the resulting network
// has cost <= 0, running min-cost flow to its full max value of k
// never pushes a positive-cost augmenting path, so the result already
// is the maximum-profit selection — no separate "stop once cost turns
// positive" logic is needed.
//
// ScheduleJobs does not report machine idleness; IdleAfter computes,
// from the returned selection, how many of the k machines are idle
// immediately after each timeline event in sorted order — a
// diagnostic carried over from the original task, not part of
// spec.md's core interface.
func ScheduleJobs(jobs []Job, k int) (selected []bool, profit int64, err error) {
	selected = make([]bool, len(jobs))
	if len(jobs) == 0 || k <= 0 {
		return selected, 0, nil
	}

	times := make([]int, 0, 2*len(jobs))
	for _, j := range jobs {
		times = append(times, j.Start, j.End)
	}
	sort.Ints(times)
	times = dedupSorted(times)
	index := make(map[int]int, len(times))
	for i, t := range times {
		index[t] = i
	}

	superSource := len(times)
	superSink := len(times) + 1
	net := flow.NewNetwork(len(times) + 2)
	net.Source, net.Sink = superSource, superSink
	if _, e := net.AddDirectedEdge(superSource, 0, int64(k), 0); e != nil {
		return nil, 0, e
	}
	if _, e := net.AddDirectedEdge(len(times)-1, superSink, int64(k), 0); e != nil {
		return nil, 0, e
	}
	for i := 0; i+1 < len(times); i++ {
		if _, e := net.AddDirectedEdge(i, i+1, int64(k), 0); e != nil {
			return nil, 0, e
		}
	}

	jobEdge := make([]struct{ node, idx int }, len(jobs))
	for i, j := range jobs {
		if j.Profit < 0 {
			continue
		}
		u, v := index[j.Start], index[j.End]
		idx, e := net.AddDirectedEdge(u, v, 1, -j.Profit)
		if e != nil {
			return nil, 0, e
		}
		jobEdge[i] = struct{ node, idx int }{u, idx}
	}

	_, cost, err := net.MaxFlowMinCostBF(context.Background(), flow.DefaultOptions())
	if err != nil {
		return nil, 0, err
	}
	profit = -cost

	for i, j := range jobs {
		if j.Profit < 0 {
			continue
		}
		loc := jobEdge[i]
		if net.Adjacency(loc.node)[loc.idx].Flow > 0 {
			selected[i] = true
		}
	}

	return selected, profit, nil
}

// IdleAfter reports, for a selection already produced by ScheduleJobs,
// how many of the k machines are free immediately after each distinct
// timeline event in sorted order — the diagnostic original_source's
// task3 printed alongside its schedule.
func IdleAfter(jobs []Job, selected []bool, k int) []int {
	times := make([]int, 0, 2*len(jobs))
	for _, j := range jobs {
		times = append(times, j.Start, j.End)
	}
	sort.Ints(times)
	times = dedupSorted(times)

	inUse := make([]int, len(times))
	for i, j := range jobs {
		if !selected[i] {
			continue
		}
		startIdx := sort.SearchInts(times, j.Start)
		endIdx := sort.SearchInts(times, j.End)
		for t := startIdx; t < endIdx; t++ {
			inUse[t]++
		}
	}

	idle := make([]int, len(times))
	for i := range idle {
		idle[i] = k - inUse[i]
	}

	return idle
}

func dedupSorted(s []int) []int {
	out := make([]int, 0, len(s))
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			out = append(out, v)
		}
	}

	return out
}
