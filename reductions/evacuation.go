package reductions

import (
	"context"

	"github.com/arlov/algokit/flow"
)

// CheckEvacuationOptimal judges a proposed evacuation/transportation
// plan against the true optimum of net (spec.md §4.9). plan is indexed
// by External id minus one, so plan[i] is the net flow claimed to pass
// along the physical edge with External == i+1, in that edge's
// canonical orientation (see collectByExternal: the forward direction
// for an AddDirectedEdge edge, from the lower-indexed endpoint for an
// AddUndirectedEdge edge); a negative value means flow is claimed to
// run against that orientation (meaningful only for undirected edges).
//
// The plan is validated for capacity and flow-conservation feasibility
// on its own terms before net is touched. Only once the plan is
// confirmed feasible does this run the network's own min-cost max-flow
// algorithm (which mutates net's internal Flow bookkeeping, same as
// calling it directly would) to obtain the true optimum for comparison.
// improvedCost is the saving still available by switching to the true
// optimum: the plan's cost minus the true minimum cost, zero when
// optimal is true, positive whenever the plan overspends.
func CheckEvacuationOptimal(net *flow.Network, plan []int64) (optimal bool, improvedCost int64, err error) {
	byExternal := collectByExternal(net)
	if len(plan) != len(byExternal) {
		return false, 0, ErrPlanLengthMismatch
	}

	balance := make([]int64, net.NodeCount())
	var planFlow, planCost int64
	for extID, loc := range byExternal {
		claimed := plan[extID-1]
		if claimed < -loc.cap || claimed > loc.cap {
			return false, 0, ErrPlanInfeasible
		}
		balance[loc.u] -= claimed
		balance[loc.v] += claimed
		planCost += claimed * loc.cost
		if loc.u == net.Source {
			planFlow += claimed
		}
	}
	for v := 0; v < net.NodeCount(); v++ {
		if v == net.Source || v == net.Sink {
			continue
		}
		if balance[v] != 0 {
			return false, 0, ErrPlanInfeasible
		}
	}

	trueFlow, trueCost, err := net.MaxFlowMinCostBF(context.Background(), flow.DefaultOptions())
	if err != nil {
		return false, 0, err
	}

	optimal = planFlow == trueFlow && planCost == trueCost
	improvedCost = planCost - trueCost

	return optimal, improvedCost, nil
}

type edgeLoc struct {
	u, v int
	cap  int64
	cost int64
}

// collectByExternal maps each physical edge's External id to its
// endpoints, forward capacity, and cost. The canonical orientation is
// the first Cap > 0 entry met when scanning nodes in index order: the
// forward direction of a directed edge (its reverse has Cap 0), and
// the lower-indexed endpoint's side of an undirected edge.
func collectByExternal(net *flow.Network) map[int]edgeLoc {
	out := make(map[int]edgeLoc)
	for u := 0; u < net.NodeCount(); u++ {
		for _, e := range net.Adjacency(u) {
			if e.Cap <= 0 {
				continue
			}
			if _, ok := out[e.External]; ok {
				continue
			}
			out[e.External] = edgeLoc{u: u, v: e.To, cap: e.Cap, cost: e.Cost}
		}
	}

	return out
}
