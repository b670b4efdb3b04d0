package flow

// checkUnbounded reports ErrUnbounded when an s->t path exists in r made
// up entirely of arcs that started with infinite capacity (spec §7:
// "Infinite-capacity detection occurs at residual-build time"). Called by
// every solver immediately after BuildResidual, before any flow is pushed.
// isInfArc reads each arc's explicit infinite flag, so this is exact
// regardless of how INF itself was computed.
func checkUnbounded(r *Residual) error {
	n := r.numVertices()
	visited := make([]bool, n)
	queue := []int{r.source}
	visited[r.source] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == r.sink {
			return unboundedf("s-%s-t path of infinite-capacity arcs exists", r.idOf(u))
		}
		for _, ai := range r.adj[u] {
			a := &r.arcs[ai]
			if !r.isInfArc(ai) {
				continue
			}
			v := a.to
			if visited[v] {
				continue
			}
			visited[v] = true
			queue = append(queue, v)
		}
	}
	return nil
}
