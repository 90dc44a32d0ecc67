package reductions

import (
	"context"

	"github.com/arlov/algokit/flow"
)

// Assignment solves the square assignment problem — pair each of n
// workers with exactly one of n tasks minimising total cost — as a
// bipartite min-cost max-flow instance (spec.md §4.9): a source feeds
// every worker node at capacity 1, every worker connects to every task
// at capacity 1 and cost cost[worker][task], and every task drains to
// a sink at capacity 1. Since all n unit source-edges must saturate for
// a perfect assignment, and the network's max flow is exactly n by
// construction, the resulting min-cost max flow is the optimal
// assignment. assign[i] is the task index paired with worker i.
func Assignment(cost [][]int64) (total int64, assign []int, err error) {
	n := len(cost)
	for _, row := range cost {
		if len(row) != n {
			return 0, nil, ErrDimensionMismatch
		}
	}
	if n == 0 {
		return 0, nil, nil
	}

	source := 0
	workerBase := 1
	taskBase := 1 + n
	sink := 1 + 2*n

	net := flow.NewNetwork(2 + 2*n)
	net.Source, net.Sink = source, sink

	workerEdgeIdx := make([][]int, n) // workerEdgeIdx[i][j] = adjacency index, within node workerBase+i, of the edge to task j
	for i := 0; i < n; i++ {
		if _, e := net.AddDirectedEdge(source, workerBase+i, 1, 0); e != nil {
			return 0, nil, e
		}
		workerEdgeIdx[i] = make([]int, n)
		for j := 0; j < n; j++ {
			idx, e := net.AddDirectedEdge(workerBase+i, taskBase+j, 1, cost[i][j])
			if e != nil {
				return 0, nil, e
			}
			workerEdgeIdx[i][j] = idx
		}
	}
	for j := 0; j < n; j++ {
		if _, e := net.AddDirectedEdge(taskBase+j, sink, 1, 0); e != nil {
			return 0, nil, e
		}
	}

	_, totalCost, err := net.MaxFlowMinCostBF(context.Background(), flow.DefaultOptions())
	if err != nil {
		return 0, nil, err
	}

	assign = make([]int, n)
	for i := 0; i < n; i++ {
		assign[i] = -1
		adj := net.Adjacency(workerBase + i)
		for j := 0; j < n; j++ {
			if adj[workerEdgeIdx[i][j]].Flow > 0 {
				assign[i] = j

				break
			}
		}
	}

	return totalCost, assign, nil
}
