package levelgen

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// PlaceMachines walks the catalog's blueprints in catalog order,
// skipping those outside their depth band, rolls each one's frequency
// and builds it into the first room whose area falls in the
// blueprint's room-size band (spec 4.E). Vestibule blueprints
// (BPVestibule) instead carve a new chamber via buildVestibule rather
// than reusing an existing room.
func PlaceMachines(lvl *model.Level, cat *catalog.Catalog, rooms []PlacedRoom, depth int, r *rng.RNG, floor model.TileType, nextMachineNumber *int) {
	for _, bp := range cat.Blueprints {
		if depth < bp.MinDepth || depth > bp.MaxDepth {
			continue
		}
		if !r.RandPercent(bp.Frequency) {
			continue
		}
		if bp.Flags&catalog.BPVestibule != 0 {
			buildVestibule(lvl, bp, rooms, r, floor, nextMachineNumber)
			continue
		}
		for i := range rooms {
			room := &rooms[i]
			area := room.Width * room.Height
			if area < bp.RoomSizeMin || area > bp.RoomSizeMax {
				continue
			}
			buildBlueprintInRoom(lvl, bp, room, r, nextMachineNumber)
			break
		}
	}
}

func buildBlueprintInRoom(lvl *model.Level, bp catalog.Blueprint, room *PlacedRoom, r *rng.RNG, nextMachineNumber *int) {
	*nextMachineNumber++
	machineNum := *nextMachineNumber
	origin := grid.Pos{X: room.Origin.X + room.Width/2, Y: room.Origin.Y + room.Height/2}

	for _, feat := range bp.Features {
		count := feat.MinInstances
		if feat.MaxInstances > feat.MinInstances {
			count = r.IntRange(feat.MinInstances, feat.MaxInstances)
		}
		for n := 0; n < count; n++ {
			p := featurePlacement(feat, origin, room, r)
			c := lvl.Cell(p)
			if c == nil {
				continue
			}
			c.MachineNumber = machineNum
			c.SetFlag(model.IsInRoomMachine)
		}
	}
}

// featurePlacement resolves one feature instance's target cell from
// its flags: MFBuildAtOrigin pins it to the machine's anchor cell,
// MFBuildInWalls scatters it along the room's top or left wall, MFNearOrigin
// scatters it within a small radius of the anchor, and the zero value
// falls back to a uniform-random interior cell.
func featurePlacement(feat catalog.BlueprintFeature, origin grid.Pos, room *PlacedRoom, r *rng.RNG) grid.Pos {
	switch {
	case feat.Flags&catalog.MFBuildAtOrigin != 0:
		return origin
	case feat.Flags&catalog.MFBuildInWalls != 0:
		if r.Bool() {
			return grid.Pos{X: room.Origin.X + r.IntRange(0, room.Width-1), Y: room.Origin.Y - 1}
		}
		return grid.Pos{X: room.Origin.X - 1, Y: room.Origin.Y + r.IntRange(0, room.Height-1)}
	case feat.Flags&catalog.MFNearOrigin != 0:
		return grid.Pos{X: origin.X + r.IntRange(-2, 2), Y: origin.Y + r.IntRange(-2, 2)}
	default:
		return grid.Pos{X: room.Origin.X + r.IntRange(0, room.Width-1), Y: room.Origin.Y + r.IntRange(0, room.Height-1)}
	}
}

// buildVestibule takes the first door site of a randomly chosen room,
// carves a 2-tile corridor from it and stamps a 3-wide rectangular
// chamber (height = target area / 3, at least 3) at its end, with the
// target area rolled in the blueprint's room-size band. The chamber's
// cells get their own machine number, so the machine's contents are
// their own space rather than folded into the parent room. Nothing is
// built when the chamber does not fit.
func buildVestibule(lvl *model.Level, bp catalog.Blueprint, rooms []PlacedRoom, r *rng.RNG, floor model.TileType, nextMachineNumber *int) {
	if len(rooms) == 0 {
		return
	}
	host := rooms[r.IntRange(0, len(rooms)-1)]
	if len(host.Doors) == 0 {
		return
	}
	site := host.Doors[0]
	targetArea := bp.RoomSizeMin
	if bp.RoomSizeMax > bp.RoomSizeMin {
		targetArea = r.IntRange(bp.RoomSizeMin, bp.RoomSizeMax)
	}
	w := 3
	h := targetArea / w
	if h < 3 {
		h = 3
	}
	origin := originForDoorSite(carveCorridorDryRun(site, 2), site.Dir, w, h)
	if !roomFitsAt(lvl, origin, w, h) {
		return
	}
	carveCorridor(lvl, site, 2, floor)
	stampRectangle(lvl, origin, w, h, floor)

	*nextMachineNumber++
	num := *nextMachineNumber
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := lvl.Cell(grid.Pos{X: origin.X + x, Y: origin.Y + y})
			if c != nil {
				c.MachineNumber = num
				c.SetFlag(model.IsInAreaMachine)
			}
		}
	}
}
