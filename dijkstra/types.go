// Package dijkstra: core types, sentinel errors, and configuration options
// for the shortest-path finder. The algorithm itself lives in dijkstra.go.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/vialath/vialath/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not
	// exist in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	// Dijkstra's correctness guarantee does not hold for negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrUnreachable indicates that the requested destination has no path
	// from the source.
	ErrUnreachable = errors.New("dijkstra: destination unreachable from source")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex ID (must be non-empty and present in the graph).
// MaxDistance – optional cap on distances to explore; vertices beyond it are
// skipped. Must be ≥ 0. Default is +Inf (no cap).
// EdgeFilter  – optional predicate; edges for which it returns false are
// treated as absent. Default accepts every edge.
// WeightFunc  – optional per-edge effective cost; lets callers re-cost edges
// (e.g. traffic multipliers) without mutating the graph. Must never return a
// negative value. Default returns the stored edge weight.
type Options struct {
	Source      string                     // the ID of the source vertex
	MaxDistance float64                    // maximum distance to explore
	EdgeFilter  func(e *core.Edge) bool    // skip edges failing the predicate
	WeightFunc  func(e *core.Edge) float64 // effective traversal cost per edge
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be called to specify the source.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value; the default is +Inf.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithEdgeFilter skips any edge for which fn returns false, as if the edge
// were absent from the graph. A nil fn leaves the default (accept all).
func WithEdgeFilter(fn func(e *core.Edge) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.EdgeFilter = fn
		}
	}
}

// WithWeightFunc replaces the stored edge weight with fn(e) during
// relaxation. fn must never return a negative value; a negative effective
// weight aborts the computation with ErrNegativeWeight.
// A nil fn leaves the default (stored weight).
func WithWeightFunc(fn func(e *core.Edge) float64) Option {
	return func(o *Options) {
		if fn != nil {
			o.WeightFunc = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults for the given source vertex ID:
//   - MaxDistance: +Inf (explore everything reachable)
//   - EdgeFilter:  accept every edge
//   - WeightFunc:  stored edge weight
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
		EdgeFilter:  func(*core.Edge) bool { return true },
		WeightFunc:  func(e *core.Edge) float64 { return e.Weight },
	}
}

// Result holds the outcome of one Dijkstra run from a fixed source.
//
// Dist maps each reachable vertex to its minimum cumulative distance from
// Source; a vertex is reachable iff it has an entry. Prev maps each
// reachable vertex to its predecessor on a shortest path; the source maps
// to "". A Result is computed fresh per invocation and never mutated
// afterward.
type Result struct {
	Source string
	Dist   map[string]float64
	Prev   map[string]string
}

// Reachable reports whether dest was reached from the source.
func (r *Result) Reachable(dest string) bool {
	_, ok := r.Dist[dest]

	return ok
}

// PathTo reconstructs the shortest path from the source to dest by walking
// predecessor links backward, returning the ordered vertex sequence from
// source to dest plus the total distance.
// Returns ErrUnreachable if dest has no recorded distance.
// PathTo(source) yields ([source], 0).
func (r *Result) PathTo(dest string) ([]string, float64, error) {
	total, ok := r.Dist[dest]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnreachable, dest)
	}

	// Walk predecessors back to the source (the vertex whose Prev is "").
	path := []string{}
	for cur := dest; cur != ""; cur = r.Prev[cur] {
		path = append(path, cur)
	}
	// Reverse in place to get source → dest.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, total, nil
}

// Reached returns the IDs of all reachable vertices in sorted order.
func (r *Result) Reached() []string {
	ids := make([]string, 0, len(r.Dist))
	for id := range r.Dist {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
