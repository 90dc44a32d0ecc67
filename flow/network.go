package flow

import "github.com/google/uuid"

// Edge is one directed arc of the residual graph. Rev is the index,
// inside the adjacency list of nodes[To], of this edge's paired reverse
// edge — edges refer to peers by index rather than pointer so that
// appending new edges (which may reallocate a node's adjacency slice)
// never invalidates a reference held elsewhere (spec.md §3, §9).
type Edge struct {
	To       int
	Rev      int
	Cap      int64
	Cost     int64
	Flow     int64
	External int // 1-indexed, shared by a directed/undirected pair's forward edge; matches "input order" edge numbering used by witnesses such as min-cut edge lists.
}

// Residual returns the remaining forward capacity of the edge.
func (e Edge) Residual() int64 { return e.Cap - e.Flow }

// Options configures every algorithm in this package.
//   - Epsilon: a tolerance setting, filled in by normalize; capacities,
//     flows, costs and potentials here are all int64, and no algorithm
//     in this package reads it.
//   - Verbose: if true, prints one line per augmentation / cancelled
//     cycle.
type Options struct {
	Epsilon float64
	Verbose bool
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{Epsilon: 1e-9, Verbose: false}
}

func (o *Options) normalize() {
	if o.Epsilon == 0 {
		o.Epsilon = 1e-9
	}
}

// Network is a capacitated directed graph with paired residual edges,
// identified by a UUID so that Verbose logging from several networks
// solved concurrently (e.g. in a caller's own goroutines) can be told
// apart.
type Network struct {
	ID     uuid.UUID
	adj    [][]Edge
	Source int
	Sink   int

	edgeCounter int
}

// NewNetwork returns a Network with n nodes (indices 0..n-1) and no
// edges. Source and Sink default to 0; set them explicitly before
// running any flow algorithm if that default does not fit.
func NewNetwork(n int) *Network {
	return &Network{
		ID:  uuid.New(),
		adj: make([][]Edge, n),
	}
}

// AddNode appends one node and returns its index.
func (n *Network) AddNode() int {
	n.adj = append(n.adj, nil)

	return len(n.adj) - 1
}

// AddNodes appends k nodes and returns their indices.
func (n *Network) AddNodes(k int) []int {
	idx := make([]int, k)
	for i := 0; i < k; i++ {
		idx[i] = n.AddNode()
	}

	return idx
}

// NodeCount returns the number of nodes in the network.
func (n *Network) NodeCount() int { return len(n.adj) }

// Adjacency returns the adjacency list of node u (read-only use
// expected; mutate only via the Add*Edge / algorithm methods so that
// every edge's Rev bookkeeping stays consistent).
func (n *Network) Adjacency(u int) []Edge { return n.adj[u] }

func (n *Network) validate(u, v int) error {
	if u < 0 || u >= len(n.adj) || v < 0 || v >= len(n.adj) {
		return ErrNodeOutOfRange
	}

	return nil
}

// AddDirectedEdge appends a forward edge u->v with the given capacity
// and cost, and its zero-capacity reverse v->u with the opposite cost.
// Self-loops (u==v) and zero capacity are silent no-ops
// (spec.md §4.1), returning edgeIdx=-1. A negative capacity is
// malformed input and returns ErrNegativeCapacity. initialFlow, if
// given, pre-loads both the forward and reverse edge consistently.
func (n *Network) AddDirectedEdge(u, v int, cap, cost int64, initialFlow ...int64) (int, error) {
	if err := n.validate(u, v); err != nil {
		return -1, err
	}
	if u == v || cap == 0 {
		return -1, nil
	}
	if cap < 0 {
		return -1, ErrNegativeCapacity
	}

	var flow int64
	if len(initialFlow) > 0 {
		flow = initialFlow[0]
	}

	n.edgeCounter++
	extIdx := n.edgeCounter

	fwdIdx := len(n.adj[u])
	revIdx := len(n.adj[v])
	n.adj[u] = append(n.adj[u], Edge{To: v, Rev: revIdx, Cap: cap, Cost: cost, Flow: flow, External: extIdx})
	n.adj[v] = append(n.adj[v], Edge{To: u, Rev: fwdIdx, Cap: 0, Cost: -cost, Flow: -flow, External: extIdx})

	return fwdIdx, nil
}

// AddUndirectedEdge appends a pair of edges u<->v each carrying the full
// capacity cap (spec.md §4.1), used by Karger and by problems where
// flow may traverse the physical edge in either direction. cost, if
// given, applies symmetrically to both directions (a genuinely
// undirected cost); it defaults to 0.
func (n *Network) AddUndirectedEdge(u, v int, cap int64, cost ...int64) (int, error) {
	if err := n.validate(u, v); err != nil {
		return -1, err
	}
	if u == v || cap == 0 {
		return -1, nil
	}
	if cap < 0 {
		return -1, ErrNegativeCapacity
	}
	var c int64
	if len(cost) > 0 {
		c = cost[0]
	}

	n.edgeCounter++
	extIdx := n.edgeCounter

	fwdIdx := len(n.adj[u])
	revIdx := len(n.adj[v])
	n.adj[u] = append(n.adj[u], Edge{To: v, Rev: revIdx, Cap: cap, Cost: c, External: extIdx})
	n.adj[v] = append(n.adj[v], Edge{To: u, Rev: fwdIdx, Cap: cap, Cost: c, External: extIdx})

	return fwdIdx, nil
}

// pushFlow sends delta units of flow along edge (u, idx), updating both
// it and its paired reverse edge so flow(e) == -flow(rev(e)) always
// holds (spec.md §3 invariant).
func (n *Network) pushFlow(u, idx int, delta int64) {
	e := &n.adj[u][idx]
	e.Flow += delta
	rev := &n.adj[e.To][e.Rev]
	rev.Flow -= delta
}
