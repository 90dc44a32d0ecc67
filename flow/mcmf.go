package flow

import (
	"context"
	"fmt"
	"math"
)

// ReduceCostMaxFlow assumes a maximum flow is already present on n and
// eliminates negative-cost cycles in the residual graph until none
// remain (spec.md §4.1), returning the resulting total cost. This turns
// "any max flow" into "the min-cost max flow" without changing the flow
// value, since pushing flow around a cycle leaves every node's net
// inflow/outflow unchanged.
//
// Detection uses Bellman-Ford seeded with distance 0 at every node
// (equivalent to a virtual super-source with 0-cost edges to all
// nodes), so any negative cycle reachable from anywhere is found.
func (n *Network) ReduceCostMaxFlow(ctx context.Context, opts Options) (int64, error) {
	opts.normalize()
	for {
		if err := ctx.Err(); err != nil {
			return n.TotalCost(), err
		}

		_, via, witness, hasCycle := n.bellmanFord(-1, true)
		if !hasCycle {
			break
		}
		cycleVertex := findCycleVertex(via, witness)
		cycleEdges := traceCycle(via, cycleVertex)
		bottleneck := n.bottleneckAndPush(cycleEdges)
		if opts.Verbose {
			fmt.Printf("flow[%s]: cancelled negative cycle, pushed %d\n", n.ID, bottleneck)
		}
	}

	return n.TotalCost(), nil
}

// MaxFlowMinCostBF computes min-cost max-flow via successive shortest
// paths: while an s-t path exists in the residual graph, find the
// cheapest one by Bellman-Ford and augment along it by its bottleneck
// (spec.md §4.1). Correct when negative-cost edges are present as long
// as the initial graph has no negative-cost cycle.
func (n *Network) MaxFlowMinCostBF(ctx context.Context, opts Options) (flow, cost int64, err error) {
	opts.normalize()
	for {
		if err := ctx.Err(); err != nil {
			return flow, cost, err
		}

		dist, via, _, _ := n.bellmanFord(n.Source, false)
		if dist[n.Sink] == math.MaxInt64 {
			break
		}
		path := tracePath(via, n.Source, n.Sink)
		pushed := n.bottleneckAndPush(path)
		flow += pushed
		cost += pushed * dist[n.Sink]
		if opts.Verbose {
			fmt.Printf("flow[%s]: bf-ssp pushed %d at cost %d, totals %d/%d\n", n.ID, pushed, dist[n.Sink], flow, cost)
		}
	}

	return flow, cost, nil
}
