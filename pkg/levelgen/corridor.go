package levelgen

import (
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// carveCorridor walks from a door site's wall tile outward along Dir,
// carving floor tiles, until it has gone length steps or left the
// map. Returns the final cell reached, the spot the next room should
// try to attach to.
func carveCorridor(lvl *model.Level, site DoorSite, length int, floor model.TileType) grid.Pos {
	p := site.Pos
	for i := 0; i < length; i++ {
		if !grid.InBounds(p) || grid.IsBorder(p) {
			break
		}
		carveFloor(lvl, p, floor)
		p = grid.Pos{X: p.X + site.Dir.X, Y: p.Y + site.Dir.Y}
	}
	return p
}

// corridorLength rolls a corridor length in spec's 1..9 tile range,
// modulated by the profile's corridorChance: a lower chance biases
// toward longer corridors (sparser, more distinct rooms), a higher
// chance biases toward short direct attachments.
func corridorLength(r *rng.RNG, corridorChance int) int {
	if corridorChance >= 100 {
		return 1
	}
	if r.RandPercent(corridorChance) {
		return r.IntRange(1, 2)
	}
	return r.IntRange(2, 9)
}

// roomFitsAt reports whether stamping a room of footprint w x h with
// its top-left corner at origin would collide with any already-carved
// floor or leave the map, leaving a 1-tile buffer on every side so
// rooms never touch without an explicit corridor between them.
func roomFitsAt(lvl *model.Level, origin grid.Pos, w, h int) bool {
	for y := -1; y <= h; y++ {
		for x := -1; x <= w; x++ {
			p := grid.Pos{X: origin.X + x, Y: origin.Y + y}
			if !grid.InBounds(p) {
				return false
			}
			if grid.IsBorder(p) {
				return false
			}
			c := lvl.Cell(p)
			if c.Tile(model.LayerDungeon) != 0 {
				return false
			}
		}
	}
	return true
}

// originForDoorSite computes where a new room's top-left corner would
// land if it attaches via the given door site and footprint, centered
// on the corridor's terminal cell.
func originForDoorSite(end grid.Pos, dir grid.Pos, w, h int) grid.Pos {
	switch {
	case dir.Y < 0: // attaching northward: room sits above, bottom edge at end.Y-1
		return grid.Pos{X: end.X - w/2, Y: end.Y - h}
	case dir.Y > 0:
		return grid.Pos{X: end.X - w/2, Y: end.Y + 1}
	case dir.X < 0:
		return grid.Pos{X: end.X - w, Y: end.Y - h/2}
	default:
		return grid.Pos{X: end.X + 1, Y: end.Y - h/2}
	}
}
