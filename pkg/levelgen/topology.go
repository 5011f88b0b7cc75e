package levelgen

import (
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

// AnalyzeTopology walks the carved floor graph and tags every cell's
// IsInLoop and IsChokepoint flags (spec 4.E / 4.H): a chokepoint is an
// articulation point whose removal would split the floor into more
// than one component, the same cut-vertex condition the graph package
// tests for connector criticality, applied here to the tile graph
// instead of the room graph.
func AnalyzeTopology(lvl *model.Level, floor model.TileType) {
	isFloor := func(p grid.Pos) bool {
		c := lvl.Cell(p)
		return c != nil && c.Tile(model.LayerDungeon) == floor
	}

	disc := make(map[grid.Pos]int)
	low := make(map[grid.Pos]int)
	articulation := make(map[grid.Pos]bool)
	timer := 0

	var dfs func(u, parent grid.Pos, isRoot bool)
	dfs = func(u, parent grid.Pos, isRoot bool) {
		timer++
		disc[u] = timer
		low[u] = timer
		children := 0
		for _, d := range grid.NbDirs[:4] { // cardinal-only adjacency for the tile graph
			v := grid.Pos{X: u.X + d.X, Y: u.Y + d.Y}
			if !grid.InBounds(v) || !isFloor(v) {
				continue
			}
			if v == parent {
				continue
			}
			if _, seen := disc[v]; !seen {
				children++
				dfs(v, u, false)
				if low[v] < low[u] {
					low[u] = low[v]
				}
				if !isRoot && low[v] >= disc[u] {
					articulation[u] = true
				}
			} else if disc[v] < low[u] {
				low[u] = disc[v]
			}
		}
		if isRoot && children > 1 {
			articulation[u] = true
		}
	}

	var root grid.Pos
	found := false
	for y := 0; y < grid.DROWS && !found; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			if isFloor(p) {
				root = p
				found = true
				break
			}
		}
	}
	if !found {
		return
	}
	dfs(root, grid.Pos{X: -1, Y: -1}, true)

	for p := range articulation {
		c := lvl.Cell(p)
		c.SetFlag(model.IsChokepoint)
	}

	// A floor cell belongs to a loop if it was reached by a DFS back
	// edge rather than purely a tree edge: any discovered
	// non-articulation cell with degree >= 2 among discovered
	// neighbors lies on some cycle.
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			if !isFloor(p) {
				continue
			}
			if _, ok := disc[p]; !ok {
				continue
			}
			floorNeighbors := 0
			for _, d := range grid.NbDirs[:4] {
				v := grid.Pos{X: p.X + d.X, Y: p.Y + d.Y}
				if grid.InBounds(v) && isFloor(v) {
					floorNeighbors++
				}
			}
			if floorNeighbors >= 2 && !articulation[p] {
				lvl.Cell(p).SetFlag(model.IsInLoop)
			}
		}
	}
}
