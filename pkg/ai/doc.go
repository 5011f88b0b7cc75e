// Package ai drives a creature's turn: waking, state selection
// (Sleeping, Wandering, TrackingScent, Fleeing, Ally), safety-map and
// scent-gradient following, leader/ally-follow, and the
// attack-or-move decision (spec 4.H). AI consumes package pathing's
// distance maps but never imports package scheduler, the same
// interface-segregation this module uses throughout to keep the
// package graph acyclic: scheduler declares MonsterTurnRunner locally
// and this package's *AI satisfies it structurally.
//
// Grounded on pkg/validation/agent.go's Agent: a simulated explorer
// that tracks discovered/visited rooms and capability state and walks
// the dungeon graph toward a goal. Here the goal is a live creature's
// turn rather than "is this dungeon solvable," and the walk is over
// pathing.CalculateDistances grids instead of graph.Graph edges, but
// the shape — a small stateful driver holding an RNG and stepping one
// decision per call — carries over directly.
package ai
