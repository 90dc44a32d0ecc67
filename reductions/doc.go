// Package reductions expresses four classic combinatorial problems as
// instances of the flow package rather than as standalone algorithms
// (spec.md §4.9): the assignment problem, evacuation-plan optimality
// checking, weighted interval scheduling on k machines, and two
// edge-disjoint paths. Each function builds a flow.Network internally
// (TwoDisjointPaths builds a unit-capacity copy of a caller-supplied
// one; CheckEvacuationOptimal runs an algorithm on a caller-supplied
// one directly), so correctness here rests on
// the flow package's invariants rather than on re-deriving them.
package reductions
