// File: methods_edges.go
// Role: edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount.
// Determinism: Edges() returns edges sorted by Edge.ID asc (monotonic "e<n>" IDs).
package graph

import (
	"sort"
	"strconv"
	"sync/atomic"
)

const edgeIDPrefix = 'e'

// AddEdge creates a new edge from -> to carrying attrs, optionally directed
// in a mixed graph. Returns the new edge's ID.
//
//   - Looped()==false and from==to               -> ErrLoopNotAllowed
//   - Multigraph()==false and (from,to) occupied  -> ErrMultiEdgeNotAllowed
//   - len(opts) > 0 and MixedEdges()==false        -> ErrMixedEdgesNotAllowed
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, attrs map[string]float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if len(g.byPair[from][to]) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	e := &Edge{ID: eid, From: from, To: to, Directed: g.directed, Attrs: attrs}
	for _, opt := range opts {
		opt(e)
	}
	if e.From == e.To && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.byPair[from][to] = append(g.byPair[from][to], eid)
	recordOrder(g, from, eid)
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.byPair[to][from] = append(g.byPair[to][from], eid)
		recordOrder(g, to, eid)
	}

	return eid, nil
}

// RemoveEdge deletes one edge and its undirected mirror, if any.
// Complexity: O(deg) for adjacency slice compaction.
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether at least one edge from->to exists. Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.byPair[from][to]) > 0
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	return e, nil
}

// Edges returns all edges sorted by Edge.ID. Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeIDLess(out[i].ID, out[j].ID) })
	return out
}

// edgeIDLess compares "e<n>" IDs numerically rather than lexicographically,
// so that "e10" sorts after "e9" — the naive string comparison the teacher's
// Edges() used breaks past nine edges (spec §5 wants stable, arrival-ordered
// golden output for tests, not an ID ordering that flips past single digits).
func edgeIDLess(a, b string) bool {
	na, errA := strconv.ParseUint(a[1:], 10, 64)
	nb, errB := strconv.ParseUint(b[1:], 10, 64)
	if errA != nil || errB != nil {
		return a < b
	}
	return na < nb
}

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	return len(g.edges)
}

// nextEdgeID returns a new unique "e<n>" edge ID from a monotonic counter.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)
	return string(buf)
}
