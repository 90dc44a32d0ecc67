package flow

import (
	"container/heap"
	"context"
	"fmt"
	"math"
)

// pqItem is one entry of the Dijkstra priority queue.
type pqItem struct {
	node int
	dist int64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// dijkstraReduced runs Dijkstra from n.Source over residual edges using
// the Johnson-reduced cost c(u,v) + h[u] - h[v], which potentials h make
// non-negative by induction (spec.md §4.1). Returns real-cost distances
// (dist[v] is the true shortest-path cost, recovered by undoing the
// potential shift) and the via-path used to reach each reached node.
func (n *Network) dijkstraReduced(h []int64) (dist []int64, via []bfPath, reached []bool, err error) {
	numNodes := len(n.adj)
	dist = make([]int64, numNodes)
	via = make([]bfPath, numNodes)
	reached = make([]bool, numNodes)
	for i := range dist {
		dist[i] = math.MaxInt64
		via[i] = bfPath{node: -1, edge: -1}
	}
	dist[n.Source] = 0
	reached[n.Source] = true

	pq := &priorityQueue{{node: n.Source, dist: 0}}
	heap.Init(pq)
	visited := make([]bool, numNodes)

	for pq.Len() > 0 {
		top := heap.Pop(pq).(pqItem)
		u := top.node
		if visited[u] {
			continue
		}
		visited[u] = true

		for idx, e := range n.adj[u] {
			if e.Residual() <= 0 || visited[e.To] {
				continue
			}
			reduced := e.Cost + h[u] - h[e.To]
			if reduced < 0 {
				return nil, nil, nil, ErrNegativeReducedCost
			}
			nd := dist[u] + reduced
			if nd < dist[e.To] {
				dist[e.To] = nd
				via[e.To] = bfPath{node: u, edge: idx}
				reached[e.To] = true
				heap.Push(pq, pqItem{node: e.To, dist: nd})
			}
		}
	}

	// Undo the potential shift: true_cost(Source,v) = reduced_cost + h[v] - h[Source].
	for v := 0; v < numNodes; v++ {
		if reached[v] && dist[v] != math.MaxInt64 {
			dist[v] = dist[v] + h[v] - h[n.Source]
		}
	}

	return dist, via, reached, nil
}

// MaxFlowMinCostDijkstraJohnson computes min-cost max-flow via
// successive shortest paths, using Dijkstra with Johnson potentials
// instead of Bellman-Ford per iteration (spec.md §4.1). Requires every
// original edge cost to be non-negative, or it seeds potentials with one
// Bellman-Ford pass from Source first.
func (n *Network) MaxFlowMinCostDijkstraJohnson(ctx context.Context, opts Options) (flow, cost int64, err error) {
	opts.normalize()
	numNodes := len(n.adj)
	h := make([]int64, numNodes)

	needsSeed := false
	for _, adjList := range n.adj {
		for _, e := range adjList {
			if e.Cost < 0 {
				needsSeed = true
			}
		}
	}
	if needsSeed {
		dist, _, _, hasCycle := n.bellmanFord(n.Source, false)
		if hasCycle {
			return 0, 0, fmt.Errorf("flow: MaxFlowMinCostDijkstraJohnson: %w", ErrNegativeReducedCost)
		}
		for v := 0; v < numNodes; v++ {
			if dist[v] != math.MaxInt64 {
				h[v] = dist[v]
			}
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return flow, cost, err
		}

		dist, via, reached, derr := n.dijkstraReduced(h)
		if derr != nil {
			return flow, cost, derr
		}
		if !reached[n.Sink] {
			break
		}
		for v := 0; v < numNodes; v++ {
			if reached[v] {
				h[v] = dist[v]
			}
		}

		path := tracePath(via, n.Source, n.Sink)
		pathCost := n.pathRealCost(path)
		pushed := n.bottleneckAndPush(path)
		flow += pushed
		cost += pushed * pathCost
		if opts.Verbose {
			fmt.Printf("flow[%s]: dijkstra-johnson pushed %d at cost %d, totals %d/%d\n", n.ID, pushed, pathCost, flow, cost)
		}
	}

	return flow, cost, nil
}

func (n *Network) pathRealCost(path []bfPath) int64 {
	var total int64
	for _, p := range path {
		total += n.adj[p.node][p.edge].Cost
	}

	return total
}
