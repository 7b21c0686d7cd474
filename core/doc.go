// Package core defines the central Graph and Edge types and provides
// primitives for building and querying weighted directed graphs.
//
// A Graph owns a set of vertices (opaque string IDs) and a set of directed,
// non-negatively weighted edges between them. At most one edge exists per
// ordered endpoint pair: inserting a duplicate replaces the prior weight.
// Endpoints are added implicitly on first edge reference, so the invariant
// "every edge references existing vertices" holds by construction.
//
// All query methods return deterministic results: Vertices, Edges and
// Neighbors enumerate in sorted order, so downstream algorithms are
// reproducible across runs for a fixed insertion sequence.
//
// Graphs are not safe for concurrent mutation. Callers must not mutate a
// Graph while a computation that reads it is in flight; no internal locking
// is provided.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - negative weight supplied to AddEdge.
package core
