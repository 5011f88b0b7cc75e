// Package pathing implements the Dijkstra distance-scan engine shared
// by movement, AI targeting, safety maps, auto-explore, and the
// item-spawn heat map (spec 4.C).
//
// The relaxation core is grounded on the teacher package's BFS
// traversal idiom (pkg/graph.Graph.GetPath/GetReachable), generalized
// from unweighted shortest-path-by-hops to a cost-weighted scan. In
// place of the source implementation's in-place sorted doubly-linked
// list, this package uses a container/heap priority queue keyed by
// (distance, insertion index): the spec explicitly permits any
// priority structure provided the output distances — not internal tie
// order — are what the rest of the engine observes.
package pathing
