package flow

import (
	"context"
	"fmt"
	"math"
)

// MaxFlowDinic computes the maximum flow from n.Source to n.Sink using
// Dinic's algorithm: repeated BFS level-graph construction followed by
// DFS blocking flow with a per-node edge cursor (spec.md §4.1).
//
// Steps, repeated until the sink is unreachable in the level graph:
//  1. BFS from Source over edges with positive residual capacity,
//     labelling each node with its level.
//  2. Reset every node's edge cursor to 0.
//  3. Repeatedly DFS from Source, advancing each node's cursor past
//     edges that don't lead to the next level or are exhausted; push
//     min(bottleneck, residual) along the first edge that reaches Sink.
func (n *Network) MaxFlowDinic(ctx context.Context, opts Options) (int64, error) {
	opts.normalize()
	var maxFlow int64

	level := make([]int, len(n.adj))
	cursor := make([]int, len(n.adj))

	for {
		if err := ctx.Err(); err != nil {
			return maxFlow, err
		}

		if !n.bfsLevels(level) {
			break
		}
		for i := range cursor {
			cursor[i] = 0
		}

		for {
			if err := ctx.Err(); err != nil {
				return maxFlow, err
			}
			pushed := n.dfsBlockingFlow(n.Source, math.MaxInt64, level, cursor)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			if opts.Verbose {
				fmt.Printf("flow[%s]: dinic pushed %d, total %d\n", n.ID, pushed, maxFlow)
			}
		}
	}

	return maxFlow, nil
}

// bfsLevels labels every node reachable from Source with its BFS depth
// in level, and reports whether Sink was reached.
func (n *Network) bfsLevels(level []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[n.Source] = 0
	queue := []int{n.Source}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range n.adj[u] {
			if e.Residual() > 0 && level[e.To] < 0 {
				level[e.To] = level[u] + 1
				queue = append(queue, e.To)
			}
		}
	}

	return level[n.Sink] >= 0
}

// dfsBlockingFlow pushes up to bottleneck units of flow from u to Sink
// along edges that strictly increase level, advancing cursor[u] past
// every edge that cannot currently contribute (Dinic's amortised bound).
func (n *Network) dfsBlockingFlow(u int, bottleneck int64, level, cursor []int) int64 {
	if u == n.Sink {
		return bottleneck
	}
	for ; cursor[u] < len(n.adj[u]); cursor[u]++ {
		e := n.adj[u][cursor[u]]
		if e.Residual() <= 0 || level[e.To] != level[u]+1 {
			continue
		}
		send := bottleneck
		if e.Residual() < send {
			send = e.Residual()
		}
		pushed := n.dfsBlockingFlow(e.To, send, level, cursor)
		if pushed > 0 {
			n.pushFlow(u, cursor[u], pushed)

			return pushed
		}
	}

	return 0
}
