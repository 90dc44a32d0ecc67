// Package flow implements directed and undirected capacitated flow
// networks over an indexed adjacency representation (spec.md §3-4.1):
// every edge stores the adjacency-list index of its paired residual
// edge rather than a pointer, so the node/edge arenas can grow during
// construction without invalidating any reference held elsewhere.
//
// Four maximum/min-cost-flow algorithms are provided on top of the same
// Network:
//
//   - MaxFlowDinic        — level graph + blocking flow via DFS with a
//     per-node edge cursor (O(E*sqrt(V)) on unit networks).
//   - ReduceCostMaxFlow    — negative-cycle cancellation on the residual
//     graph of an existing max flow, turning "a" max flow into the
//     min-cost max flow.
//   - MaxFlowMinCostBF     — successive shortest paths via Bellman-Ford,
//     correct with negative edge costs as long as the initial graph has
//     no negative-cost cycle.
//   - MaxFlowMinCostDijkstraJohnson — successive shortest paths via
//     Dijkstra with Johnson potentials, requiring non-negative initial
//     costs (or a Bellman-Ford potential-seeding phase).
//
// KargerMinCut implements Karger's randomised contraction algorithm for
// global minimum cut on an undirected network.
//
// All algorithms accept a context.Context for cooperative cancellation
// of long-running construction or search; none spawns goroutines, so a
// single Network is not safe for concurrent mutation but independent
// Networks share no state.
package flow
