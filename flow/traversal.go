package flow

// forwardResidualBFS runs a BFS from source, following any arc with
// residual capacity > eps, visiting each vertex's outgoing arcs in
// Residual.adj's insertion order for deterministic tie-breaks (spec §5).
// It returns per-vertex parent arc indices (-1 for source/unreached) and
// the visited set; callers needing only reachability (cut.go) read
// visited, callers needing a path (edmonds_karp.go) walk parentArc.
func forwardResidualBFS(r *Residual, source int, eps float64) (parentArc []int, visited []bool) {
	n := r.numVertices()
	parentArc = make([]int, n)
	visited = make([]bool, n)
	for i := range parentArc {
		parentArc[i] = -1
	}
	visited[source] = true
	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, ai := range r.adj[u] {
			if r.residualCap(ai) <= eps {
				continue
			}
			v := r.arcs[ai].to
			if visited[v] {
				continue
			}
			visited[v] = true
			parentArc[v] = ai
			queue = append(queue, v)
		}
	}
	return parentArc, visited
}

// reverseResidualBFS computes, for every vertex v, the length of the
// shortest path v -> ... -> target using arcs with residual capacity >
// eps, by walking the residual graph backwards from target. Unreached
// vertices get distance n (numVertices), matching SAP's and Preflow-Push's
// "n if unreachable" convention.
//
// Backward traversal without a separate incoming-arc index: for frontier
// vertex v, each arc j in adj[v] (v -> w) has a twin arcs[j].rev living in
// adj[w] that represents w -> v; residual(arcs[j].rev) is therefore the
// residual capacity of the forward step w -> v, so w is v's predecessor
// whenever that twin has positive residual.
func reverseResidualBFS(r *Residual, target int, eps float64) []int {
	n := r.numVertices()
	dist := make([]int, n)
	for i := range dist {
		dist[i] = n
	}
	dist[target] = 0
	queue := []int{target}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, j := range r.adj[v] {
			w := r.arcs[j].to
			twin := r.arcs[j].rev
			if r.residualCap(twin) <= eps {
				continue
			}
			if dist[w] != n {
				continue
			}
			dist[w] = dist[v] + 1
			queue = append(queue, w)
		}
	}
	return dist
}

func pathBottleneck(r *Residual, parentArc []int, target int) float64 {
	bottleneck := r.inf
	for v := target; parentArc[v] != -1; {
		ai := parentArc[v]
		if c := r.residualCap(ai); c < bottleneck {
			bottleneck = c
		}
		v = arcTail(r, ai)
	}
	return bottleneck
}

// pathAllInfinite reports whether every arc on the parentArc-encoded path
// to target originated with infinite capacity — the only condition under
// which an augmenting path is genuinely unbounded. Never inferred from the
// path's bottleneck value: a bottleneck equal to, or even exceeding, some
// numeric threshold proves nothing on its own, since INF is only an upper
// bound, not a value disjoint from finite arc capacities.
func pathAllInfinite(r *Residual, parentArc []int, target int) bool {
	for v := target; parentArc[v] != -1; {
		ai := parentArc[v]
		if !r.isInfArc(ai) {
			return false
		}
		v = arcTail(r, ai)
	}
	return true
}

// arcTail returns the vertex an arc departs from, found via its twin's
// destination (arcs don't store their own "from" — adjacency is keyed by
// the departing vertex instead).
func arcTail(r *Residual, arcIdx int) int {
	return r.arcs[r.arcs[arcIdx].rev].to
}

func augmentPath(r *Residual, parentArc []int, target int, delta float64) {
	for v := target; parentArc[v] != -1; {
		ai := parentArc[v]
		r.push(ai, delta)
		v = arcTail(r, ai)
	}
}
