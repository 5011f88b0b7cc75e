package levelgen

import (
	"context"
	"fmt"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// Generate builds one complete level at the given depth, orchestrating
// the staged pipeline: room design and attachment, topology analysis,
// machine placement, item population, horde population, and stairs
// placement (spec 4.E). The level's own RNG stream is derived from the
// run's master seed and depth via rng.NewRNG, so the same seed always
// carves the same level regardless of how many other levels have been
// visited first.
func Generate(ctx context.Context, cfg Config, cat *catalog.Catalog, masterSeed uint64, depth int, metered *catalog.MeteredTable) (*model.Level, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, fmt.Errorf("levelgen: catalog is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	depthTag := []byte(fmt.Sprintf("depth-%d", depth))
	levelSeed := rng.NewRNG(masterSeed, "levelgen-seed", depthTag).Uint64()
	r := rng.NewRNG(levelSeed, "levelgen", depthTag)

	lvl := &model.Level{
		Catalog:   cat,
		LevelSeed: levelSeed,
		Depth:     depth,
	}
	lvl.BuildTileIndex()

	floor, ok := lvl.TileTypeByName("floor")
	if !ok {
		return nil, fmt.Errorf("levelgen: catalog has no %q tile", "floor")
	}
	wall, _ := lvl.TileTypeByName("wall")

	profile := cat.ProfileForDepth(depth)
	if profile == nil {
		return nil, fmt.Errorf("levelgen: no dungeon profile covers depth %d", depth)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rooms := AttachRooms(lvl, cfg, *profile, r, floor, wall)
	AnalyzeTopology(lvl, floor)

	nextMachine := 0
	PlaceMachines(lvl, cat, rooms, depth, r, floor, &nextMachine)

	isPostAmulet := depth > model.AmuletLevel
	items := PopulateItems(lvl, cat, metered, depth, r, floor, isPostAmulet)
	lvl.FloorItems = items

	entrance := rooms[0].Origin
	creatures := PopulateHordes(lvl, cat, depth, r, floor, entrance)
	lvl.Monsters = append(lvl.Monsters, creatures...)

	PlaceStairs(lvl, entranceCenter(rooms[0]), floor, r)

	return lvl, nil
}

func entranceCenter(room PlacedRoom) grid.Pos {
	return grid.Pos{X: room.Origin.X + room.Width/2, Y: room.Origin.Y + room.Height/2}
}
