package levelgen

import (
	"context"
	"testing"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Tiles: map[string]*catalog.TileInfo{
			"floor": {Name: "floor"},
			"wall":  {Name: "wall", Flags: catalog.TileObstructsPassability | catalog.TileObstructsDiagonal},
		},
		Monsters: map[string]*catalog.MonsterInfo{
			"rat": {Name: "rat", Glyph: 'r', MaxHP: 6},
		},
		Hordes: []catalog.Horde{
			{Name: "rat pack", LeaderType: "rat", Frequency: 10,
				Members: []catalog.HordeMember{{MemberType: "rat", Count: catalog.CountRange{Lower: 1, Upper: 2, ClumpFactor: 1}}}},
		},
		Profiles: []catalog.DungeonProfile{
			{Name: "shallow", MinDepth: 1, MaxDepth: 10,
				RoomFrequency:  map[string]int{"small": 40, "circular": 20, "cross": 20, "chunky": 20},
				CorridorChance: 50},
		},
		ItemGenWeights: map[string]int{"potion": 50, "scroll": 50},
	}
}

func TestGenerateProducesLevelWithDistinctStairs(t *testing.T) {
	cat := testCatalog()
	metered := catalog.NewMeteredTable(nil)
	lvl, err := Generate(context.Background(), DefaultConfig(), cat, 12345, 3, metered)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if lvl.UpStairsLoc == lvl.DownStairsLoc {
		t.Fatal("up and down stairs must not coincide")
	}
	if !lvl.Cell(lvl.UpStairsLoc).HasFlag(model.HasStairs) {
		t.Fatal("up stairs cell must carry HasStairs")
	}
	if !lvl.Cell(lvl.DownStairsLoc).HasFlag(model.HasStairs) {
		t.Fatal("down stairs cell must carry HasStairs")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	cat := testCatalog()
	m1 := catalog.NewMeteredTable(nil)
	m2 := catalog.NewMeteredTable(nil)

	l1, err := Generate(context.Background(), DefaultConfig(), cat, 999, 5, m1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	l2, err := Generate(context.Background(), DefaultConfig(), cat, 999, 5, m2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if l1.UpStairsLoc != l2.UpStairsLoc || l1.DownStairsLoc != l2.DownStairsLoc {
		t.Fatal("same seed and depth must produce identical stair placement")
	}
	if len(l1.Monsters) != len(l2.Monsters) {
		t.Fatal("same seed and depth must produce identical monster count")
	}
}

func TestGenerateRejectsMissingFloorTile(t *testing.T) {
	cat := &catalog.Catalog{
		Tiles:    map[string]*catalog.TileInfo{"wall": {Name: "wall"}},
		Profiles: []catalog.DungeonProfile{{Name: "p", MinDepth: 1, MaxDepth: 10}},
	}
	_, err := Generate(context.Background(), DefaultConfig(), cat, 1, 1, catalog.NewMeteredTable(nil))
	if err == nil {
		t.Fatal("expected error when catalog has no floor tile")
	}
}

func TestAnalyzeTopologyFlagsChokepoint(t *testing.T) {
	lvl := &model.Level{}
	const floor model.TileType = 1
	// Carve two rooms joined by a one-tile-wide, 12-tile corridor:
	// every corridor tile is an articulation point.
	for y := 2; y <= 4; y++ {
		for x := 2; x <= 4; x++ {
			lvl.Tiles[y][x].SetTile(model.LayerDungeon, floor)
		}
	}
	for y := 10; y <= 12; y++ {
		for x := 10; x <= 12; x++ {
			lvl.Tiles[y][x].SetTile(model.LayerDungeon, floor)
		}
	}
	x, y := 5, 3
	for x <= 9 {
		lvl.Tiles[y][x].SetTile(model.LayerDungeon, floor)
		x++
	}
	for y <= 10 {
		lvl.Tiles[y][9].SetTile(model.LayerDungeon, floor)
		y++
	}

	AnalyzeTopology(lvl, floor)

	if !lvl.Tiles[3][7].HasFlag(model.IsChokepoint) {
		t.Fatal("expected corridor tile to be flagged as a chokepoint")
	}
	if lvl.Tiles[3][3].HasFlag(model.IsChokepoint) {
		t.Fatal("interior room tile should not be a chokepoint")
	}
}
