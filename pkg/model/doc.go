// Package model holds the mutable entities of the simulation: cells,
// items, creatures, levels, and the run-wide state that ties a play
// session together (spec §3).
//
// The layered-cell shape is grounded on the teacher package's Layer/
// TileMap design (pkg/carving/types.go), generalized from named
// renderer layers to the fixed Dungeon/Liquid/Surface/Gas stack a
// Brogue-lineage cell needs.
package model
