// Package grid provides the DCOLS×DROWS integer grid primitives shared
// by level generation, pathfinding, and the environment simulation.
//
// Grid generalizes the teacher package's Point/Rect/TileMap shapes
// (pkg/carving) from a renderer-facing tile map into the plain integer
// grids that Dijkstra scans and cost maps operate over.
package grid
