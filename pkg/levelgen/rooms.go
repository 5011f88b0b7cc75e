package levelgen

import (
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// RoomType is one of the six room shapes the attachment loop can stamp.
type RoomType int

const (
	RoomCavern RoomType = iota
	RoomEntrance
	RoomCross
	RoomSmall
	RoomCircular
	RoomChunky
)

var roomTypeNames = map[RoomType]string{
	RoomCavern:   "cavern",
	RoomEntrance: "entrance",
	RoomCross:    "cross",
	RoomSmall:    "small",
	RoomCircular: "circular",
	RoomChunky:   "chunky",
}

// DoorSite is a candidate attachment point on a room's perimeter: Pos
// is the wall tile the corridor would punch through, and Dir is the
// outward-facing unit step a corridor extends along from it.
type DoorSite struct {
	Pos grid.Pos
	Dir grid.Pos
}

// designRandomRoom picks a room type by weighted choice against the
// active depth profile's RoomFrequency table, the same weighted-table
// pattern used for catalog selection elsewhere in the pipeline.
func designRandomRoom(r *rng.RNG, freq map[string]int) RoomType {
	if len(freq) == 0 {
		return RoomSmall
	}
	total := 0
	for _, w := range freq {
		total += w
	}
	if total <= 0 {
		return RoomSmall
	}
	roll := r.IntRange(0, total-1)
	for rt := RoomCavern; rt <= RoomChunky; rt++ {
		name := roomTypeNames[rt]
		w, ok := freq[name]
		if !ok {
			continue
		}
		if roll < w {
			return rt
		}
		roll -= w
	}
	return RoomSmall
}

// roomDimensions returns the (width, height) footprint for a room
// type, randomized within the type's size band.
func roomDimensions(rt RoomType, r *rng.RNG) (int, int) {
	switch rt {
	case RoomEntrance:
		return 3, 3
	case RoomCross:
		arm := r.IntRange(2, 4)
		return arm*2 + 3, arm*2 + 3
	case RoomSmall:
		return r.IntRange(3, 6), r.IntRange(3, 4)
	case RoomCircular:
		d := r.IntRange(5, 9) | 1 // force odd so the circle has a true center
		return d, d
	case RoomChunky:
		return r.IntRange(6, 10), r.IntRange(5, 8)
	case RoomCavern:
		return r.IntRange(8, 16), r.IntRange(8, 16)
	default:
		return 5, 5
	}
}

// StampRoom carves a room of the given type with its top-left corner
// at origin, writing floor into the dungeon layer and returning up to
// four door-site candidates on the room's perimeter (spec 4.E).
func StampRoom(lvl *model.Level, rt RoomType, origin grid.Pos, r *rng.RNG, floor, wall model.TileType) []DoorSite {
	w, h := roomDimensions(rt, r)
	switch rt {
	case RoomCross:
		return stampCross(lvl, origin, w, h, r, floor)
	case RoomCircular:
		return stampOval(lvl, origin, w, h, floor)
	case RoomChunky:
		return stampChunky(lvl, origin, w, h, r, floor)
	case RoomCavern:
		return stampCavernCA(lvl, origin, w, h, r, floor)
	default:
		return stampRectangle(lvl, origin, w, h, floor)
	}
}

func carveFloor(lvl *model.Level, p grid.Pos, floor model.TileType) {
	c := lvl.Cell(p)
	if c == nil {
		return
	}
	c.SetTile(model.LayerDungeon, floor)
}

// stampRectangle carves a filled rectangle; used for entrance and
// small rooms. Door sites are the midpoints of each of the four edges.
func stampRectangle(lvl *model.Level, origin grid.Pos, w, h int, floor model.TileType) []DoorSite {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			carveFloor(lvl, grid.Pos{X: origin.X + x, Y: origin.Y + y}, floor)
		}
	}
	return rectDoorSites(origin, w, h)
}

func rectDoorSites(origin grid.Pos, w, h int) []DoorSite {
	return []DoorSite{
		{Pos: grid.Pos{X: origin.X + w/2, Y: origin.Y - 1}, Dir: grid.Pos{X: 0, Y: -1}},
		{Pos: grid.Pos{X: origin.X + w/2, Y: origin.Y + h}, Dir: grid.Pos{X: 0, Y: 1}},
		{Pos: grid.Pos{X: origin.X - 1, Y: origin.Y + h/2}, Dir: grid.Pos{X: -1, Y: 0}},
		{Pos: grid.Pos{X: origin.X + w, Y: origin.Y + h/2}, Dir: grid.Pos{X: 1, Y: 0}},
	}
}

// stampOval carves an ellipse inscribed in the w x h bounding box.
func stampOval(lvl *model.Level, origin grid.Pos, w, h int, floor model.TileType) []DoorSite {
	cx, cy := float64(w-1)/2, float64(h-1)/2
	rx, ry := float64(w)/2, float64(h)/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx, dy := (float64(x)-cx)/rx, (float64(y)-cy)/ry
			if dx*dx+dy*dy <= 1.0 {
				carveFloor(lvl, grid.Pos{X: origin.X + x, Y: origin.Y + y}, floor)
			}
		}
	}
	return rectDoorSites(origin, w, h)
}

// stampCross carves a plus-shaped room: a horizontal bar and a
// vertical bar of equal arm length crossing at the center.
func stampCross(lvl *model.Level, origin grid.Pos, w, h int, r *rng.RNG, floor model.TileType) []DoorSite {
	armW := r.IntRange(1, 2)
	midY := h / 2
	midX := w / 2
	for x := 0; x < w; x++ {
		for dy := -armW; dy <= armW; dy++ {
			carveFloor(lvl, grid.Pos{X: origin.X + x, Y: origin.Y + midY + dy}, floor)
		}
	}
	for y := 0; y < h; y++ {
		for dx := -armW; dx <= armW; dx++ {
			carveFloor(lvl, grid.Pos{X: origin.X + midX + dx, Y: origin.Y + y}, floor)
		}
	}
	return []DoorSite{
		{Pos: grid.Pos{X: origin.X + midX, Y: origin.Y - 1}, Dir: grid.Pos{X: 0, Y: -1}},
		{Pos: grid.Pos{X: origin.X + midX, Y: origin.Y + h}, Dir: grid.Pos{X: 0, Y: 1}},
		{Pos: grid.Pos{X: origin.X - 1, Y: origin.Y + midY}, Dir: grid.Pos{X: -1, Y: 0}},
		{Pos: grid.Pos{X: origin.X + w, Y: origin.Y + midY}, Dir: grid.Pos{X: 1, Y: 0}},
	}
}

// stampChunky unions two overlapping rectangles for an irregular
// silhouette, the L-shape analogue for the chunky room type.
func stampChunky(lvl *model.Level, origin grid.Pos, w, h int, r *rng.RNG, floor model.TileType) []DoorSite {
	stampRectangle(lvl, origin, w, h, floor)
	subW, subH := w/2+1, h/2+1
	offX := r.IntRange(0, w-subW)
	offY := r.IntRange(0, h-subH)
	extra := grid.Pos{X: origin.X + w/2, Y: origin.Y + h/2}
	if r.Bool() {
		extra = grid.Pos{X: origin.X + offX, Y: origin.Y - subH/2}
	} else {
		extra = grid.Pos{X: origin.X - subW/2, Y: origin.Y + offY}
	}
	stampRectangle(lvl, extra, subW, subH, floor)
	return rectDoorSites(origin, w, h)
}

// stampCavernCA runs a short cellular-automaton smoothing pass over a
// random fill to produce an organic cave silhouette.
func stampCavernCA(lvl *model.Level, origin grid.Pos, w, h int, r *rng.RNG, floor model.TileType) []DoorSite {
	live := make([][]bool, h)
	for y := range live {
		live[y] = make([]bool, w)
		for x := range live[y] {
			live[y][x] = r.RandPercent(45)
		}
	}
	for pass := 0; pass < 4; pass++ {
		next := make([][]bool, h)
		for y := range next {
			next[y] = make([]bool, w)
			for x := range next[y] {
				n := liveNeighbors(live, x, y, w, h)
				if live[y][x] {
					next[y][x] = n >= 3
				} else {
					next[y][x] = n >= 5
				}
			}
		}
		live = next
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if live[y][x] {
				carveFloor(lvl, grid.Pos{X: origin.X + x, Y: origin.Y + y}, floor)
			}
		}
	}
	return rectDoorSites(origin, w, h)
}

func liveNeighbors(live [][]bool, x, y, w, h int) int {
	n := 0
	for _, d := range grid.NbDirs {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || ny < 0 || nx >= w || ny >= h {
			n++ // treat out-of-bounds as solid, biasing the silhouette inward
			continue
		}
		if live[ny][nx] {
			n++
		}
	}
	return n
}
