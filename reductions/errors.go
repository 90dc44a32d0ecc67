package reductions

import "errors"

var (
	// ErrDimensionMismatch indicates Assignment received a non-square or
	// ragged cost matrix.
	ErrDimensionMismatch = errors.New("reductions: cost matrix must be square")
	// ErrPlanLengthMismatch indicates CheckEvacuationOptimal received a
	// plan whose length does not match the network's edge count.
	ErrPlanLengthMismatch = errors.New("reductions: plan length does not match network edge count")
	// ErrPlanInfeasible indicates a proposed evacuation plan violates
	// capacity or flow-conservation constraints on its own terms, before
	// any comparison against the optimum is attempted.
	ErrPlanInfeasible = errors.New("reductions: plan violates capacity or conservation constraints")
)
