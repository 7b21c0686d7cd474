// Package core: Graph method implementations.
//
// This file provides O(1) (amortized) operations for vertex and edge
// management on the Graph type defined in types.go. Adjacency is stored as
// a nested map adjacency[from][to] = *Edge, allowing constant-time
// existence checks, insertion, and overwrite of edges.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a new vertex with the given ID into the Graph.
// Returns ErrEmptyVertexID if id is empty.
// If the vertex already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyVertexID
	}
	// Idempotent insert
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	_, exists := g.vertices[id]

	return exists
}

// AddEdge creates a directed edge from 'from' to 'to' with the given weight
// and options. Both endpoints are added implicitly if absent. If an edge
// with the same ordered endpoint pair already exists, it is replaced.
//
// Returns ErrEmptyVertexID if either endpoint is empty, or ErrNegativeWeight
// if weight < 0; in both cases the graph is left unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) error {
	// 1) Input validation — fail before any mutation so the graph stays intact.
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2) Weight constraint: negative weights break shortest-path guarantees.
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
	}

	// 3) Ensure both endpoints exist (idempotent).
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}

	// 4) Construct the Edge and apply any per-edge options.
	e := &Edge{From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}

	// 5) Insert into adjacency[from][to], counting only genuinely new pairs.
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]*Edge)
	}
	if _, exists := g.adjacency[from][to]; !exists {
		g.edgeCount++
	}
	g.adjacency[from][to] = e

	return nil
}

// HasEdge reports whether an edge from 'from' to 'to' exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	_, exists := g.adjacency[from][to]

	return exists
}

// EdgeWeight returns the weight of the edge from 'from' to 'to'.
// Returns ErrVertexNotFound if either endpoint is absent,
// or ErrEdgeNotFound if the endpoints exist but the edge does not.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return 0, ErrVertexNotFound
	}
	e, exists := g.adjacency[from][to]
	if !exists {
		return 0, fmt.Errorf("%w: %s→%s", ErrEdgeNotFound, from, to)
	}

	return e.Weight, nil
}

// Neighbors returns all edges outgoing from vertex 'id', sorted by
// destination ID for reproducible ordering. A vertex with no outgoing edges
// yields an empty slice. Returns ErrVertexNotFound if the vertex was never
// added.
// Complexity: O(d log d), where d is the out-degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if _, exists := g.vertices[id]; !exists {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, e := range g.adjacency[id] {
		out = append(out, e)
	}
	// Sort by destination to ensure reproducible ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Vertices returns all vertex IDs in sorted order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E log E)
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edgeCount)
	for _, nbrs := range g.adjacency {
		for _, e := range nbrs {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}

// VertexCount returns the total number of vertices. O(1).
func (g *Graph) VertexCount() int {
	return len(g.vertices)
}

// EdgeCount returns the total number of edges. O(1).
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// Clone returns a deep copy of the Graph: vertices, edges, and adjacency.
// Mutating the clone never affects the original.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	for id := range g.vertices {
		clone.vertices[id] = struct{}{}
	}
	for from, nbrs := range g.adjacency {
		clone.adjacency[from] = make(map[string]*Edge, len(nbrs))
		for to, e := range nbrs {
			// Duplicate the Edge struct so callers can mutate independently.
			ne := *e
			clone.adjacency[from][to] = &ne
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Clear resets the graph to the empty state.
func (g *Graph) Clear() {
	g.vertices = make(map[string]struct{})
	g.adjacency = make(map[string]map[string]*Edge)
	g.edgeCount = 0
}
