// Package dijkstra implements Dijkstra's shortest-path algorithm on
// weighted directed graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap
// priority queue, relaxing edges and updating distances accordingly.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is extracted at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Each heap operation costs O(log N), where N ≤ V + E. Simplified to O(log V).
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under "lazy decrease-key".
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative
//     stored weights and fail fast; effective weights produced by a custom
//     WeightFunc are re-checked during relaxation.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries via the visited set.
//   - Neighbor enumeration is sorted (core.Neighbors), so tie-breaking
//     between equal tentative distances is deterministic for a fixed input.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/vialath/vialath/core"
)

// Dijkstra computes shortest distances from the source vertex
// (Options.Source) to all reachable vertices in the directed weighted
// graph g, together with predecessor links for path reconstruction.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No stored edge weight may be negative (ErrNegativeWeight).
//
// The returned Result covers exactly the reachable set: Dist has an entry
// per reached vertex, the source at distance 0 with no predecessor.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source is provided.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph.
	if !g.HasVertex(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 5) Pre-scan all stored edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 6) Prepare the runner: distance/predecessor maps sized for V, the
	//    visited set, and the min-heap frontier seeded below.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]float64, V),
			Prev:   make(map[string]string, V),
		},
		visited: make(map[string]bool, V),
		pq:      make(vertexPQ, 0, V),
	}

	// 7) Initialize state and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph     // the input graph; read-only within Dijkstra
	options Options         // configuration (Source, MaxDistance, filter, cost)
	res     *Result         // distances and predecessors under construction
	visited map[string]bool // tracks if a vertex's distance is finalized
	pq      vertexPQ        // min-heap of *vertexItem for the lazy frontier
}

// init seeds the frontier: the source enters at distance 0 with no
// predecessor; every other vertex is discovered lazily during relaxation.
func (r *runner) init() {
	r.res.Dist[r.options.Source] = 0
	r.res.Prev[r.options.Source] = ""

	heap.Init(&r.pq)
	heap.Push(&r.pq, &vertexItem{id: r.options.Source, dist: 0})
}

// process is the core loop. It repeatedly extracts the unvisited vertex with
// the minimum tentative distance and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable vertices processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//
// Once a vertex is extracted and marked visited its distance is final and it
// is never revisited; this is valid only because all weights are non-negative.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*vertexItem)

		// 2) Skip stale heap entries for already-finalized vertices.
		if r.visited[item.id] {
			continue
		}

		// 3) Stop exploring once the frontier minimum exceeds MaxDistance.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Mark visited; item.dist is now final.
		r.visited[item.id] = true

		// 5) Relax all outgoing edges.
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from vertex u and attempts to improve
// distances to its neighbors, honoring the EdgeFilter and WeightFunc options.
//
// Assumes r.res.Dist[u] is finalized before calling relax(u).
func (r *runner) relax(u string) error {
	// core.Neighbors returns outgoing edges sorted by destination, which
	// keeps heap insertion order (and therefore tie-breaking) reproducible.
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		// Edges rejected by the filter are treated as absent.
		if !r.options.EdgeFilter(e) {
			continue
		}
		// Skip neighbors whose distance is already final.
		if r.visited[e.To] {
			continue
		}

		// Effective traversal cost; custom WeightFunc output is validated
		// here because the upfront scan only covers stored weights.
		w := r.options.WeightFunc(e)
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s effective weight=%g", ErrNegativeWeight, e.From, e.To, w)
		}

		// Candidate distance via Source → … → u → e.To.
		cand := r.res.Dist[u] + w
		if cand > r.options.MaxDistance {
			continue
		}

		// Relax only on strict improvement (or first discovery), so equal
		// candidates never displace an earlier predecessor.
		old, seen := r.res.Dist[e.To]
		if seen && cand >= old {
			continue
		}

		r.res.Dist[e.To] = cand
		r.res.Prev[e.To] = u

		// Lazy decrease-key: push a fresh entry, stale ones are ignored on pop.
		heap.Push(&r.pq, &vertexItem{id: e.To, dist: cand})
	}

	return nil
}

// vertexItem represents a vertex and its tentative distance from the source.
// It is stored in the priority queue to order vertices by increasing distance.
type vertexItem struct {
	id   string  // vertex ID
	dist float64 // tentative distance from source
}

// vertexPQ is a min-heap (priority queue) of *vertexItem, ordered by dist
// ascending. Under the lazy-decrease-key approach, finding a shorter
// distance to an existing vertex pushes a new item; the outdated entry
// remains but is ignored when popped (checked via the visited set).
type vertexPQ []*vertexItem

// Len returns the number of items in the heap.
func (pq vertexPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq vertexPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq vertexPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *vertexItem.
func (pq *vertexPQ) Push(x interface{}) { *pq = append(*pq, x.(*vertexItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *vertexPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
