// File: methods_clone.go
// Role: cloning graph instances. CloneEmpty gives a fresh graph with the
// same configuration and vertex set but no edges; Clone gives a deep copy.
// Package flow's builder does not use either: it reads the caller's Graph
// without mutating it and builds its own residual arc arena.
package graph

import "sync/atomic"

// CloneEmpty returns a new Graph with identical configuration and vertices,
// but no edges. nextEdgeID is carried over so IDs minted on the clone never
// collide with the source's. Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMixed {
		opts = append(opts, WithMixedEdges())
	}
	clone := NewGraph(opts...)
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		clone.byPair[id] = make(map[string][]string)
	}

	return clone
}

// Clone returns a deep copy: configuration, vertices, edges, and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid, e := range g.edges {
		attrs := make(map[string]float64, len(e.Attrs))
		for k, v := range e.Attrs {
			attrs[k] = v
		}
		ne := &Edge{ID: eid, From: e.From, To: e.To, Directed: e.Directed, Attrs: attrs}
		clone.edges[eid] = ne
		ensureAdjacency(clone, e.From, e.To)
		clone.byPair[e.From][e.To] = append(clone.byPair[e.From][e.To], eid)
		recordOrder(clone, e.From, eid)
		if !e.Directed && e.From != e.To {
			ensureAdjacency(clone, e.To, e.From)
			clone.byPair[e.To][e.From] = append(clone.byPair[e.To][e.From], eid)
			recordOrder(clone, e.To, eid)
		}
	}

	return clone
}
