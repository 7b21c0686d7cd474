// Package roadmap: travel-time route planning over a RoadMap.
package roadmap

import (
	"fmt"

	"github.com/vialath/vialath/core"
	"github.com/vialath/vialath/dijkstra"
)

// Route is the outcome of a successful plan: the ordered location sequence
// from start to end and the total travel time under the given constraints.
type Route struct {
	Path []string
	Time float64
}

// PlanOptions holds the planning constraints.
type PlanOptions struct {
	avoid   map[string]struct{} // road kinds excluded from routes
	traffic bool                // apply per-road traffic multipliers
}

// PlanOption configures a Plan call via functional arguments.
type PlanOption func(*PlanOptions)

// Avoid excludes the given road kinds from consideration, as if those roads
// were absent from the map.
func Avoid(kinds ...string) PlanOption {
	return func(o *PlanOptions) {
		for _, k := range kinds {
			o.avoid[k] = struct{}{}
		}
	}
}

// WithTraffic multiplies every road's travel time by its traffic multiplier
// before comparison, modeling congested conditions.
func WithTraffic() PlanOption {
	return func(o *PlanOptions) { o.traffic = true }
}

// Distances computes minimum travel times from start to every reachable
// location under the given constraints.
//
// Returns core.ErrVertexNotFound if start is not on the map.
func (rm *RoadMap) Distances(start string, opts ...PlanOption) (*dijkstra.Result, error) {
	cfg := PlanOptions{avoid: make(map[string]struct{})}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !rm.g.HasVertex(start) {
		return nil, fmt.Errorf("%w: start %q", core.ErrVertexNotFound, start)
	}

	dopts := []dijkstra.Option{
		dijkstra.Source(start),
		dijkstra.WithEdgeFilter(func(e *core.Edge) bool {
			_, banned := cfg.avoid[e.Kind]

			return !banned
		}),
	}
	if cfg.traffic {
		dopts = append(dopts, dijkstra.WithWeightFunc(func(e *core.Edge) float64 {
			return e.Weight * rm.Multiplier(e.From, e.To)
		}))
	}

	return dijkstra.Dijkstra(rm.g, dopts...)
}

// Plan finds the minimum-travel-time route from start to end that uses no
// avoided road kind, following traffic conditions when requested.
//
// Returns core.ErrVertexNotFound if either endpoint is not on the map, and
// ErrNoRoute (wrapping dijkstra.ErrUnreachable) if no admissible route
// exists. start == end yields a single-location route with time 0.
func (rm *RoadMap) Plan(start, end string, opts ...PlanOption) (*Route, error) {
	if !rm.g.HasVertex(end) {
		return nil, fmt.Errorf("%w: destination %q", core.ErrVertexNotFound, end)
	}

	// Trivial trip: already there. Distances still validates the start.
	if start == end {
		if !rm.g.HasVertex(start) {
			return nil, fmt.Errorf("%w: start %q", core.ErrVertexNotFound, start)
		}

		return &Route{Path: []string{start}, Time: 0}, nil
	}

	res, err := rm.Distances(start, opts...)
	if err != nil {
		return nil, err
	}

	path, total, err := res.PathTo(end)
	if err != nil {
		// Reachability failure becomes the domain-level "no route".
		return nil, fmt.Errorf("%w: from %q to %q", ErrNoRoute, start, end)
	}

	return &Route{Path: path, Time: total}, nil
}
