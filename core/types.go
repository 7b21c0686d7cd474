// Package core: type declarations, sentinel errors, and the NewGraph
// constructor. Method implementations live in methods.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that an operation received an empty vertex ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative weight was supplied to AddEdge.
	// Shortest-path guarantees do not hold for negative weights, so they are
	// rejected at insertion time rather than producing silently wrong results.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Edge represents a directed connection between two vertices.
//
// Each Edge runs From→To with a non-negative Weight. Kind is an optional
// free-form label (e.g. a road category) that algorithms may use to filter
// or re-cost edges; it does not affect core semantics.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the cost of traversing the edge. Always >= 0.
	Weight float64

	// Kind is an optional category label for the edge. Empty by default.
	Kind string
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeKind sets the Kind label for this edge.
func WithEdgeKind(kind string) EdgeOption {
	return func(e *Edge) { e.Kind = kind }
}

// Graph is the core in-memory weighted directed graph.
//
// Storage is a vertex set plus a nested adjacency map
// adjacency[from][to] = *Edge, which makes edge existence, insertion and
// overwrite constant-time. Neighbor enumeration sorts by destination ID
// for deterministic output.
type Graph struct {
	vertices  map[string]struct{}         // vertex ID → present
	adjacency map[string]map[string]*Edge // from → to → edge
	edgeCount int                         // total number of edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]*Edge),
	}
}
