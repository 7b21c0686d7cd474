// Package roadmap: the RoadMap type and road insertion primitives.
package roadmap

import (
	"errors"
	"fmt"

	"github.com/vialath/vialath/core"
	"github.com/vialath/vialath/dijkstra"
)

// Well-known road kinds. Kind is an open set: unknown kinds are stored and
// matched verbatim, but only KindHill changes loader behavior.
const (
	KindHighway = "highway"
	KindLocal   = "local"
	KindToll    = "toll"
	KindHill    = "hill"
)

// Sentinel errors for road map construction and planning.
var (
	// ErrBadRoadLine indicates a malformed line in a road map file.
	ErrBadRoadLine = errors.New("roadmap: malformed road map line")

	// ErrBadMultiplier indicates a traffic multiplier below 1. Traffic can
	// only slow a road down, never speed it up.
	ErrBadMultiplier = errors.New("roadmap: traffic multiplier must be >= 1")

	// ErrNoRoute indicates that no admissible route connects the requested
	// endpoints. It wraps dijkstra.ErrUnreachable, so errors.Is works with
	// either sentinel.
	ErrNoRoute = fmt.Errorf("roadmap: no admissible route: %w", dijkstra.ErrUnreachable)
)

// Road describes a single directed road segment.
type Road struct {
	// From and To are location IDs.
	From, To string

	// Time is the travel time From→To in free-flowing traffic.
	Time float64

	// Kind is the road category (highway, local, toll, hill, ...).
	Kind string

	// Multiplier scales Time when planning WithTraffic. Always >= 1.
	Multiplier float64
}

// endpoints keys per-road attributes by ordered endpoint pair.
type endpoints struct{ from, to string }

// RoadMap is a directed road network: a core.Graph carrying travel times
// and road kinds, plus per-road traffic multipliers.
type RoadMap struct {
	g    *core.Graph
	mult map[endpoints]float64
}

// New creates an empty RoadMap.
func New() *RoadMap {
	return &RoadMap{
		g:    core.NewGraph(),
		mult: make(map[endpoints]float64),
	}
}

// AddRoad inserts a single directed road. Both endpoints are added
// implicitly. Re-adding a road with the same ordered endpoints replaces the
// prior one. Returns core.ErrNegativeWeight for a negative travel time,
// core.ErrEmptyVertexID for empty endpoints, or ErrBadMultiplier for a
// multiplier below 1.
func (rm *RoadMap) AddRoad(r Road) error {
	if r.Multiplier < 1 {
		return fmt.Errorf("%w: road %s→%s multiplier=%g", ErrBadMultiplier, r.From, r.To, r.Multiplier)
	}
	if err := rm.g.AddEdge(r.From, r.To, r.Time, core.WithEdgeKind(r.Kind)); err != nil {
		return err
	}
	rm.mult[endpoints{r.From, r.To}] = r.Multiplier

	return nil
}

// Multiplier returns the traffic multiplier of the road from→to,
// or 1 if no such road exists.
func (rm *RoadMap) Multiplier(from, to string) float64 {
	if m, ok := rm.mult[endpoints{from, to}]; ok {
		return m
	}

	return 1
}

// HasLocation reports whether the given location exists in the network.
func (rm *RoadMap) HasLocation(id string) bool { return rm.g.HasVertex(id) }

// LocationCount returns the number of locations in the network.
func (rm *RoadMap) LocationCount() int { return rm.g.VertexCount() }

// RoadCount returns the number of directed roads in the network.
func (rm *RoadMap) RoadCount() int { return rm.g.EdgeCount() }

// Locations returns all location IDs in sorted order.
func (rm *RoadMap) Locations() []string { return rm.g.Vertices() }

// Graph exposes the underlying core.Graph for read-only algorithm use.
// Callers must not mutate it concurrently with an in-flight Plan.
func (rm *RoadMap) Graph() *core.Graph { return rm.g }
