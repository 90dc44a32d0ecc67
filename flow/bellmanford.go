package flow

import "math"

// bfPath records, for each node reached by Bellman-Ford, the edge used
// to reach it: via[v] = (u, index of the edge u->v inside n.adj[u]).
type bfPath struct {
	node, edge int
}

// bellmanFord relaxes every residual edge up to len(n.adj) times from
// source. When allNodesAsSource is true every node starts at distance 0
// (the virtual super-source trick spec.md §4.1 uses for negative-cycle
// detection); otherwise only source starts at 0 and unreached nodes
// keep math.MaxInt64.
//
// If a relaxation still occurs on the final (len(n.adj)-th) pass, a
// negative-cost cycle is reachable; cycleWitness is a node on or
// downstream of that cycle and hasCycle is true.
func (n *Network) bellmanFord(source int, allNodesAsSource bool) (dist []int64, via []bfPath, cycleWitness int, hasCycle bool) {
	numNodes := len(n.adj)
	dist = make([]int64, numNodes)
	via = make([]bfPath, numNodes)
	for i := range dist {
		via[i] = bfPath{node: -1, edge: -1}
		if allNodesAsSource {
			dist[i] = 0
		} else {
			dist[i] = math.MaxInt64
		}
	}
	if !allNodesAsSource {
		dist[source] = 0
	}

	witness := -1
	for iter := 0; iter < numNodes; iter++ {
		relaxed := false
		for u := 0; u < numNodes; u++ {
			if dist[u] == math.MaxInt64 {
				continue
			}
			for idx, e := range n.adj[u] {
				if e.Residual() <= 0 {
					continue
				}
				nd := dist[u] + e.Cost
				if nd < dist[e.To] {
					dist[e.To] = nd
					via[e.To] = bfPath{node: u, edge: idx}
					relaxed = true
					witness = e.To
				}
			}
		}
		if !relaxed {
			return dist, via, -1, false
		}
		if iter == numNodes-1 {
			return dist, via, witness, true
		}
	}

	return dist, via, -1, false
}

// findCycleVertex walks via numNodes steps back from witness, landing
// on a vertex guaranteed to lie on the negative cycle (spec.md §4.1).
func findCycleVertex(via []bfPath, witness int) int {
	v := witness
	for i := 0; i < len(via); i++ {
		v = via[v].node
	}

	return v
}

// traceCycle follows via from a confirmed cycle vertex back to itself,
// returning the (node, edgeIndex) pairs to push flow along.
func traceCycle(via []bfPath, start int) []bfPath {
	var edges []bfPath
	cur := start
	for {
		p := via[cur]
		edges = append(edges, p)
		cur = p.node
		if cur == start {
			break
		}
	}

	return edges
}

// tracePath follows via from target back to source, returning the
// (node, edgeIndex) pairs in source-to-target order.
func tracePath(via []bfPath, source, target int) []bfPath {
	var edges []bfPath
	cur := target
	for cur != source {
		p := via[cur]
		edges = append(edges, p)
		cur = p.node
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return edges
}

// bottleneckAndPush finds the minimum residual capacity along path
// (a slice of (node, edgeIndex) pairs already in traversal order) and
// pushes that much flow along every edge, returning the bottleneck.
func (n *Network) bottleneckAndPush(path []bfPath) int64 {
	bottleneck := int64(math.MaxInt64)
	for _, p := range path {
		r := n.adj[p.node][p.edge].Residual()
		if r < bottleneck {
			bottleneck = r
		}
	}
	for _, p := range path {
		n.pushFlow(p.node, p.edge, bottleneck)
	}

	return bottleneck
}

// TotalCost sums Flow*Cost over every edge with positive flow. Because
// a paired forward/reverse edge never both carry positive flow at once
// (flow(e) == -flow(rev(e))), this counts each physical edge's cost
// contribution exactly once.
func (n *Network) TotalCost() int64 {
	var total int64
	for _, adjList := range n.adj {
		for _, e := range adjList {
			if e.Flow > 0 {
				total += e.Flow * e.Cost
			}
		}
	}

	return total
}
