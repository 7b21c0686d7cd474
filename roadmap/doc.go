// Package roadmap builds travel-time road networks on top of core and
// dijkstra: locations are vertices, roads are directed weighted edges, and
// planning a trip is a shortest-path query under optional constraints.
//
// Map file format — one road per non-empty line, five space-separated fields:
//
//	source destination travelTime kind trafficMultiplier
//
// e.g.
//
//	N0 N1 10 highway 1
//	N2 N3 7 hill 2
//
// Each entry becomes two directed roads, one per direction. Hill roads are
// always uphill in the source→destination direction; downhill travel takes
// half as long, so the reverse road gets half the listed time. All other
// kinds mirror at the listed time. Lines starting with '#' are ignored.
//
// Planning supports two constraints, combinable freely:
//
//   - Avoid(kinds...): restricted road kinds are excluded from routes.
//   - WithTraffic():   each road's time is multiplied by its traffic
//     multiplier before comparison.
//
// Scenarios (source, destination, avoided kinds, traffic flag) can also be
// loaded from YAML files via LoadPlanConfig and executed with PlanScenario.
package roadmap
