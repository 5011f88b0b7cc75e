// Package levelgen builds one dungeon level's pmap: room design and
// attachment, corridor carving, blueprint/machine placement, item
// population, horde population, and stairs placement.
//
// Generation proceeds as a single-threaded pipeline driven by a
// per-level RNG stream (package rng), producing a *model.Level ready
// to hand to the scheduler. Every stage is deterministic: the same
// (dungeon seed, depth, catalog) always carves the same level.
package levelgen
