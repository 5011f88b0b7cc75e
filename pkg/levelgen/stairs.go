package levelgen

import (
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/pathing"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// PlaceStairs sets the level's up-stairs at the entrance room and
// places the down-stairs at the floor cell with the greatest
// Dijkstra travel distance from it, so descending always requires
// crossing a meaningful span of the level (spec 4.E).
func PlaceStairs(lvl *model.Level, entrance grid.Pos, floor model.TileType, r *rng.RNG) {
	lvl.UpStairsLoc = entrance
	if c := lvl.Cell(entrance); c != nil {
		c.SetFlag(model.HasStairs)
	}

	dist := pathing.CalculateDistances(lvl, entrance, 0, nil, false, true)

	far := entrance
	farDist := int32(-1)
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			if lvl.Cell(p).Tile(model.LayerDungeon) != floor {
				continue
			}
			d := dist.Get(p)
			if d > 0 && d < grid.PDSMaxDistance && d > farDist {
				farDist = d
				far = p
			}
		}
	}

	lvl.DownStairsLoc = far
	if c := lvl.Cell(far); c != nil {
		c.SetFlag(model.HasStairs)
	}
}
