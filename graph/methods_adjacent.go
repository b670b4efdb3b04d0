// File: methods_adjacent.go
// Role: neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList) and the
// adjacency-index helpers AddEdge/RemoveVertex/RemoveEdge rely on.
//
// Determinism: Neighbors preserves edge insertion order via Graph.order,
// which is what package flow's solvers rely on for deterministic tie-breaks
// (spec §5: "neighbour traversal order follows the residual adjacency's
// insertion order"). Graph.byPair is bookkeeping only (existence checks,
// multi-edge detection, removal) and must never be iterated for traversal —
// its key order is an ordinary unordered Go map.
package graph

import "sort"

// ensureAdjacency makes sure byPair[from] and byPair[from][to] exist.
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, from, to string) {
	if g.byPair[from] == nil {
		g.byPair[from] = make(map[string][]string)
	}
	if _, ok := g.byPair[from][to]; !ok {
		g.byPair[from][to] = nil
	}
}

// recordOrder appends eid to v's insertion-order traversal log.
func recordOrder(g *Graph, v, eid string) {
	g.order[v] = append(g.order[v], eid)
}

// removeAdjacency strips e's ID from byPair and order, mirroring for
// undirected edges. Caller must hold muEdgeAdj.
func removeAdjacency(g *Graph, e *Edge) {
	stripPair(g, e.From, e.To, e.ID)
	stripOrder(g, e.From, e.ID)
	if !e.Directed && e.From != e.To {
		stripPair(g, e.To, e.From, e.ID)
		stripOrder(g, e.To, e.ID)
	}
}

func stripPair(g *Graph, from, to, eid string) {
	bucket, ok := g.byPair[from]
	if !ok {
		return
	}
	ids, ok := bucket[to]
	if !ok {
		return
	}
	for i, id := range ids {
		if id == eid {
			bucket[to] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(bucket[to]) == 0 {
		delete(bucket, to)
	}
}

func stripOrder(g *Graph, v, eid string) {
	ids := g.order[v]
	for i, id := range ids {
		if id == eid {
			g.order[v] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// Neighbors lists all edges touching id, in the order their edges were
// inserted:
//   - directed edges are included only when e.From == id,
//   - undirected edges appear once regardless of which endpoint id is.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.order[id]))
	for _, eid := range g.order[id] {
		e, ok := g.edges[eid]
		if !ok {
			continue // removed since order was recorded but not yet compacted
		}
		if e.Directed && e.From != id {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// NeighborIDs returns the unique, sorted vertex IDs adjacent to id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(edges))
	for _, e := range edges {
		if e.From == id {
			seen[e.To] = struct{}{}
		} else if !e.Directed && e.To == id {
			seen[e.From] = struct{}{}
		}
	}
	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)
	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to the IDs of its
// out-neighbours, each appearing once, in edge-insertion order. The returned
// top-level map's own key order is an unordered Go map as usual; callers
// needing determinism over vertices should iterate Vertices() and index in.
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[string][]string, len(g.order))
	for from, ids := range g.order {
		var neigh []string
		seen := make(map[string]bool, len(ids))
		for _, eid := range ids {
			e, ok := g.edges[eid]
			if !ok || (e.Directed && e.From != from) {
				continue
			}
			to := e.To
			if e.From != from {
				to = e.From // undirected edge visited from its To endpoint
			}
			if !seen[to] {
				seen[to] = true
				neigh = append(neigh, to)
			}
		}
		out[from] = neigh
	}
	return out
}
