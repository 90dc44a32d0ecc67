package flow

import "errors"

var (
	// ErrNegativeCapacity indicates AddDirectedEdge/AddUndirectedEdge was
	// given a negative capacity (zero is a silent no-op, not an error).
	ErrNegativeCapacity = errors.New("flow: negative capacity")
	// ErrNodeOutOfRange indicates an edge referenced a node index outside
	// [0, len(nodes)).
	ErrNodeOutOfRange = errors.New("flow: node index out of range")
	// ErrNegativeReducedCost indicates MaxFlowMinCostDijkstraJohnson found
	// a negative reduced cost, violating its precondition (spec.md §4.1:
	// "the result is undefined" — we surface it as an error instead of
	// silently producing a wrong answer).
	ErrNegativeReducedCost = errors.New("flow: negative reduced cost, Dijkstra+Johnson precondition violated")
)
