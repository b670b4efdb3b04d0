package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations. Wrap with errors.Is to discriminate.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("graph: multi-edges not allowed")

	// ErrMixedEdgesNotAllowed indicates a per-edge directedness override when mixed-edges are disabled.
	ErrMixedEdgesNotAllowed = errors.New("graph: mixed-mode per-edge overrides not allowed")
)

// Vertex is a node in the graph.
//
// ID uniquely identifies the Vertex within its Graph. Metadata stores
// arbitrary user data and is shared (not deep-copied) on Clone/CloneEmpty.
type Vertex struct {
	ID       string
	Metadata map[string]interface{}
}

// Edge connects From to To.
//
// Attrs carries named numeric attributes — capacity among them, under a
// caller-selected key (default "capacity"). An edge with no entry for the
// requested key is interpreted by the flow package as having infinite
// capacity along that attribute; Attrs itself has no notion of "default".
type Edge struct {
	ID       string
	From, To string
	Directed bool
	Attrs    map[string]float64
}

// Capacity returns the edge's value for attr and whether it was present.
// A false ok means the attribute is absent — infinite capacity, per spec §3.
func (e *Edge) Capacity(attr string) (value float64, ok bool) {
	if e.Attrs == nil {
		return 0, false
	}
	value, ok = e.Attrs[attr]
	return value, ok
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for new edges.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithMultiEdges permits parallel edges between the same ordered pair of vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loop edges (From == To).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMixedEdges lets individual edges override the graph's default
// directedness via WithEdgeDirected.
func WithMixedEdges() GraphOption {
	return func(g *Graph) { g.allowMixed = true }
}

// EdgeOption configures an individual edge at AddEdge time.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph's default directedness for one edge.
// Only legal when the graph was built WithMixedEdges(); see AddEdge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the in-memory labelled multigraph consumed by package flow.
//
// It supports directed/undirected edges, parallel edges, self-loops, and
// per-edge directedness overrides. muVert guards the vertex catalog;
// muEdgeAdj guards the edge catalog and adjacency index. Lock order is
// always muVert -> muEdgeAdj to avoid inversion.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	directed   bool
	allowMulti bool
	allowLoops bool
	allowMixed bool

	nextEdgeID uint64
	vertices   map[string]*Vertex
	edges      map[string]*Edge

	// byPair[from][to] holds edge IDs for one ordered pair — existence and
	// multi-edge bookkeeping only; its own key order is an unordered Go map
	// and must never be used for traversal.
	byPair map[string]map[string][]string

	// order[v] lists, in the exact order edges were inserted, every edge ID
	// that a walk starting at v should consider — spec §5 requires residual
	// traversal to visit neighbours in insertion order, so this index tracks
	// arrival order directly rather than re-deriving it from edge IDs (the
	// teacher's approach of sorting by "e<n>" string lexicographically is
	// itself wrong past nine edges: "e10" sorts before "e2").
	order map[string][]string
}

// NewGraph creates an empty Graph. By default it is undirected, disallows
// loops, multi-edges, and mixed-mode; apply GraphOptions to change that.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices: make(map[string]*Vertex),
		edges:    make(map[string]*Edge),
		byPair:   make(map[string]map[string][]string),
		order:    make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Directed reports the graph's default edge orientation.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.directed
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.allowLoops
}

// MixedEdges reports whether per-edge directedness overrides are permitted.
func (g *Graph) MixedEdges() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	return g.allowMixed
}
