package core

// CountCores returns the number of vertices currently flagged Core.
func (g *Graph) CountCores() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, v := range g.vertices {
		if v.Core {
			n++
		}
	}

	return n
}

// CountNonCores returns VertexCount() - CountCores().
func (g *Graph) CountNonCores() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, v := range g.vertices {
		if !v.Core {
			n++
		}
	}

	return n
}

// CountUniqueEdges returns the number of vertices with a non-nil Uniq.
func (g *Graph) CountUniqueEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, v := range g.vertices {
		if v.Uniq != nil {
			n++
		}
	}

	return n
}

// CountSelfUniqueEdges returns the number of vertices i whose Uniq == i
// (a degenerate self-unique edge).
func (g *Graph) CountSelfUniqueEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for i, v := range g.vertices {
		if v.Uniq != nil && *v.Uniq == i {
			n++
		}
	}

	return n
}

// RemoveSelfUniqueEdges clears Uniq on every vertex whose Uniq points at
// itself.
func (g *Graph) RemoveSelfUniqueEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.vertices {
		if v := g.vertices[i].Uniq; v != nil && *v == i {
			g.vertices[i].Uniq = nil
		}
	}
}

// CountSelfEdges returns the number of edges (a, a).
func (g *Graph) CountSelfEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, e := range g.edges {
		if e.A == e.B {
			n++
		}
	}

	return n
}

// RemoveSelfEdges deletes every edge (a, a) from the graph.
func (g *Graph) RemoveSelfEdges() {
	g.mu.Lock()
	defer g.mu.Unlock()

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.A != e.B {
			kept = append(kept, e)
		}
	}
	g.edges = kept

	g.rebuildAdjacencyLocked()
}
