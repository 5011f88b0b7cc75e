package levelgen

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// PlacedRoom records a stamped room's shape and perimeter for the
// topology pass and content placement that follow attachment.
type PlacedRoom struct {
	Type   RoomType
	Origin grid.Pos
	Width  int
	Height int
	Doors  []DoorSite
}

// AttachRooms runs the iterative room-design-and-attachment loop:
// stamp an entrance room at the map center, then repeatedly pick an
// unused door site from the frontier, design a random room against
// the depth profile, and try to fit it via a corridor of random
// length until cfg.MaxRoomsPerLevel rooms are placed or the attempt
// budget is exhausted (spec 4.E).
func AttachRooms(lvl *model.Level, cfg Config, profile catalog.DungeonProfile, r *rng.RNG, floor, wall model.TileType) []PlacedRoom {
	entranceOrigin := grid.Pos{X: grid.DCOLS/2 - 1, Y: grid.DROWS/2 - 1}
	entranceDoors := StampRoom(lvl, RoomEntrance, entranceOrigin, r, floor, wall)
	rooms := []PlacedRoom{{Type: RoomEntrance, Origin: entranceOrigin, Width: 3, Height: 3, Doors: entranceDoors}}

	type frontierSite struct {
		site DoorSite
		used bool
	}
	frontier := make([]frontierSite, 0, cfg.MaxRoomsPerLevel*4)
	for _, d := range entranceDoors {
		frontier = append(frontier, frontierSite{site: d})
	}

	attempts := 0
	for len(rooms) < cfg.MaxRoomsPerLevel && attempts < cfg.MaxRoomAttempts*cfg.MaxRoomsPerLevel {
		attempts++
		if len(frontier) == 0 {
			break
		}
		idx := r.IntRange(0, len(frontier)-1)
		fs := &frontier[idx]
		if fs.used {
			continue
		}

		rt := designRandomRoom(r, profile.RoomFrequency)
		w, h := roomDimensions(rt, r)
		length := corridorLength(r, profile.CorridorChance)
		end := carveCorridorDryRun(fs.site, length)
		origin := originForDoorSite(end, fs.site.Dir, w, h)

		if !roomFitsAt(lvl, origin, w, h) {
			fs.used = true
			continue
		}

		carveCorridor(lvl, fs.site, length, floor)
		doors := StampRoom(lvl, rt, origin, r, floor, wall)
		rooms = append(rooms, PlacedRoom{Type: rt, Origin: origin, Width: w, Height: h, Doors: doors})
		fs.used = true

		remaining := cfg.DoorSitesPerRoom
		for _, d := range doors {
			if remaining <= 0 {
				break
			}
			frontier = append(frontier, frontierSite{site: d})
			remaining--
		}
	}

	return rooms
}

// carveCorridorDryRun computes where a corridor of the given length
// would terminate without writing any tiles, used to test fit before
// committing a room.
func carveCorridorDryRun(site DoorSite, length int) grid.Pos {
	p := site.Pos
	for i := 0; i < length; i++ {
		if !grid.InBounds(p) || grid.IsBorder(p) {
			break
		}
		p = grid.Pos{X: p.X + site.Dir.X, Y: p.Y + site.Dir.Y}
	}
	return p
}
