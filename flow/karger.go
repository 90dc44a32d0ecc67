package flow

import (
	"context"
	"math"
	"math/rand"
	"sort"
)

// kargerEdge is a lightweight undirected edge used only during
// contraction: (u, v, weight, externalID). An edge whose endpoints
// already share a supernode is dropped when it is picked; parallel
// edges stay as separate entries, each picked in proportion to its own
// weight.
type kargerEdge struct {
	u, v     int
	weight   int64
	external int
}

// KargerMinCut estimates the global minimum cut of an undirected,
// weighted graph by repeated random-edge contraction (spec.md §4.2):
// each trial contracts random edges, weighted by capacity, until two
// supernodes remain; the surviving edges between them are a candidate
// cut. Running trials independent attempts and keeping the best is
// required for a high-probability guarantee since any single trial
// only succeeds with probability >= 2/n(n-1) (spec.md §9 Open
// Question: trial count is left to the caller rather than fixed here).
//
// The network's Source/Sink fields are ignored; KargerMinCut treats
// every AddUndirectedEdge call as contributing one graph edge and
// every AddDirectedEdge call as contributing an edge of the same
// capacity in both directions (a directed edge still bounds an
// undirected cut from above). cutEdges holds the External ids of the
// physical edges crossing the best cut found, in ascending order.
func KargerMinCut(ctx context.Context, n *Network, trials int) (cutValue int64, cutEdges []int, err error) {
	if trials < 1 {
		trials = 1
	}
	base := collectEdges(n)
	if len(base) == 0 {
		return 0, nil, nil
	}

	best := int64(math.MaxInt64)
	var bestEdges []int

	for t := 0; t < trials; t++ {
		if err := ctx.Err(); err != nil {
			return best, bestEdges, err
		}

		value, edges := kargerTrial(n.NodeCount(), base)
		if value < best {
			best = value
			bestEdges = edges
		}
	}

	return best, bestEdges, nil
}

// collectEdges flattens a Network's adjacency lists into one
// undirected edge per physical connection, skipping zero-capacity
// reverse edges created by AddDirectedEdge so each physical edge is
// counted exactly once regardless of which Add*Edge call created it.
func collectEdges(n *Network) []kargerEdge {
	seen := make(map[int]bool)
	var edges []kargerEdge
	for u, adjList := range n.adj {
		for _, e := range adjList {
			if e.Cap <= 0 || seen[e.External] {
				continue
			}
			seen[e.External] = true
			edges = append(edges, kargerEdge{u: u, v: e.To, weight: e.Cap, external: e.External})
		}
	}

	return edges
}

// kargerTrial runs one contraction trial to completion, returning the
// weight of the final 2-supernode cut and the External ids of the
// physical edges that crossed it.
func kargerTrial(numNodes int, base []kargerEdge) (int64, []int) {
	parent := make([]int, numNodes)
	size := make([]int, numNodes)
	for i := range parent {
		parent[i] = i
		size[i] = 1
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	edges := make([]kargerEdge, len(base))
	copy(edges, base)

	remaining := numNodes
	for remaining > 2 {
		idx := weightedPick(edges)
		e := edges[idx]
		ru, rv := find(e.u), find(e.v)
		if ru == rv {
			edges = removeAt(edges, idx)
			continue
		}
		if size[ru] < size[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		size[ru] += size[rv]
		remaining--
		edges = removeAt(edges, idx)
	}

	var cutValue int64
	var cutEdges []int
	for _, e := range base {
		if find(e.u) != find(e.v) {
			cutValue += e.weight
			cutEdges = append(cutEdges, e.external)
		}
	}
	sort.Ints(cutEdges)

	return cutValue, cutEdges
}

// weightedPick selects an edge index with probability proportional to
// its weight, matching the spec's requirement that a capacity-k edge
// behaves like k parallel unit edges for contraction purposes.
func weightedPick(edges []kargerEdge) int {
	var total int64
	for _, e := range edges {
		total += e.weight
	}
	target := rand.Int63n(total)
	var running int64
	for i, e := range edges {
		running += e.weight
		if target < running {
			return i
		}
	}

	return len(edges) - 1
}

func removeAt(edges []kargerEdge, idx int) []kargerEdge {
	edges[idx] = edges[len(edges)-1]

	return edges[:len(edges)-1]
}
