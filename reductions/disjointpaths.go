package reductions

import (
	"context"

	"github.com/arlov/algokit/flow"
)

// TwoDisjointPaths reports whether net (treated as unit-capacity for
// this check, spec.md §4.9) admits two edge-disjoint paths from s to
// t, returning both if so. It copies net's arcs of positive capacity
// into a fresh network with capacity 1 on each, sets that copy's
// Source/Sink to s/t and runs MaxFlowDinic on it; net itself is left
// unchanged. Two or more units of unit-capacity flow decompose into
// edge-disjoint s-t paths by the flow decomposition theorem, and the
// first two such paths are returned.
func TwoDisjointPaths(net *flow.Network, s, t int) ([][]int, bool, error) {
	unit := flow.NewNetwork(net.NodeCount())
	for u := 0; u < net.NodeCount(); u++ {
		for _, e := range net.Adjacency(u) {
			if e.Cap > 0 {
				_, _ = unit.AddDirectedEdge(u, e.To, 1, 0)
			}
		}
	}
	net = unit
	net.Source, net.Sink = s, t
	maxFlow, err := net.MaxFlowDinic(context.Background(), flow.DefaultOptions())
	if err != nil {
		return nil, false, err
	}
	if maxFlow < 2 {
		return nil, false, nil
	}

	remaining := make([][]int64, net.NodeCount())
	for u := 0; u < net.NodeCount(); u++ {
		remaining[u] = make([]int64, len(net.Adjacency(u)))
		for i, e := range net.Adjacency(u) {
			if e.Flow > 0 {
				remaining[u][i] = e.Flow
			}
		}
	}

	var paths [][]int
	for len(paths) < 2 {
		path, ok := decomposeOnePath(net, remaining, s, t)
		if !ok {
			break
		}
		paths = append(paths, path)
	}

	return paths, len(paths) >= 2, nil
}

// decomposeOnePath walks one unit of flow from s to t using whatever
// positive-remaining edge is available at each node, decrementing as
// it goes. Flow conservation guarantees this never gets stuck short of
// t as long as remaining[s] has an outgoing unit to spend.
func decomposeOnePath(net *flow.Network, remaining [][]int64, s, t int) ([]int, bool) {
	path := []int{s}
	cur := s
	visited := make(map[int]bool)
	for cur != t {
		if visited[cur] {
			return nil, false
		}
		visited[cur] = true

		found := -1
		for i := range net.Adjacency(cur) {
			if remaining[cur][i] > 0 {
				found = i

				break
			}
		}
		if found == -1 {
			return nil, false
		}
		remaining[cur][found]--
		cur = net.Adjacency(cur)[found].To
		path = append(path, cur)
	}

	return path, true
}
