// Package vialath is an in-memory toolkit for weighted directed graphs
// and minimum-cost route finding.
//
// What lives here:
//
//	core/     — fundamental Graph and Edge types: directed, weighted,
//	            deterministic neighbor enumeration
//	dijkstra/ — single-source shortest paths (Dijkstra) with path
//	            reconstruction, edge filtering and custom cost functions
//	roadmap/  — a road-network layer on top of core+dijkstra: map files,
//	            road kinds (highway, local, toll, hill), traffic-aware
//	            travel-time planning
//	cmd/shortpath — a small CLI that loads a graph or road map and prints
//	            distance tables or reconstructed routes
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      5   2
//	       \  │
//	        ──C
//
//	The cheapest way from A to C is A→B→C at total cost 3,
//	not the direct edge at cost 5.
//
// All computation is synchronous and deterministic: for a fixed graph and
// source, every run yields identical distances, predecessors and paths.
package vialath
