package environment

import (
	"testing"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

func testCatalog() *catalog.Catalog {
	cat := &catalog.Catalog{
		Tiles: map[string]*catalog.TileInfo{
			"floor": {Name: "floor"},
			"wall":  {Name: "wall", Flags: catalog.TileObstructsPassability | catalog.TileObstructsDiagonal},
			"grass": {
				Name:           "grass",
				Flags:          catalog.TileIsFlammable,
				ChanceToIgnite: 100,
				FireType:       "burningGrass",
			},
			"bogTile": {Name: "bogTile"},
			"vent": {
				Name:  "vent",
				Flags: catalog.TileIsWired,
			},
			"breaker": {
				Name:  "breaker",
				Flags: catalog.TileIsCircuitBreaker,
			},
			"gasTile": {Name: "gasTile"},
			"obstructsGasTile": {Name: "obstructsGasTile", Flags: catalog.TileObstructsGas},
		},
		Features: map[string]*catalog.DungeonFeature{
			"burningGrass": {Name: "burningGrass", Layer: int(model.LayerSurface), TileType: "floor"},
			"spark":        {Name: "spark", Layer: int(model.LayerSurface), TileType: "floor"},
		},
	}
	return cat
}

func buildLevel(cat *catalog.Catalog) *model.Level {
	lvl := &model.Level{Catalog: cat}
	lvl.BuildTileIndex()
	floor, _ := lvl.TileTypeByName("floor")
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			lvl.Tiles[y][x].SetTile(model.LayerDungeon, floor)
			lvl.Tiles[y][x].SetTile(model.LayerLiquid, noTile)
			lvl.Tiles[y][x].SetTile(model.LayerSurface, noTile)
			lvl.Tiles[y][x].SetTile(model.LayerGas, noTile)
		}
	}
	return lvl
}

func TestExposeTileToFireIgnitesFlammableTile(t *testing.T) {
	cat := testCatalog()
	lvl := buildLevel(cat)
	grassType, _ := lvl.TileTypeByName("grass")
	lvl.Tiles[10][10].SetTile(model.LayerSurface, grassType)

	sim := NewSimulator(rng.NewRNG(1, "test", nil))
	sim.exposeTileToFire(lvl, grid.Pos{X: 10, Y: 10}, nil)

	floorType, _ := lvl.TileTypeByName("floor")
	if got := lvl.Tiles[10][10].Tile(model.LayerSurface); got != floorType {
		t.Fatalf("surface tile = %d, want feature spawn result (floor=%d)", got, floorType)
	}
	if !lvl.Tiles[10][10].HasFlag(model.CaughtFireThisTurn) {
		t.Fatal("expected CaughtFireThisTurn to be set")
	}
}

func TestExposeTileToFireStopsAtExposureLimit(t *testing.T) {
	cat := testCatalog()
	lvl := buildLevel(cat)
	grassType, _ := lvl.TileTypeByName("grass")
	lvl.Tiles[10][10].SetTile(model.LayerSurface, grassType)
	lvl.Tiles[10][10].ExposedToFire = fireExposureLimit

	sim := NewSimulator(rng.NewRNG(1, "test", nil))
	sim.exposeTileToFire(lvl, grid.Pos{X: 10, Y: 10}, nil)

	if lvl.Tiles[10][10].Tile(model.LayerSurface) != grassType {
		t.Fatal("expected tile past the exposure limit not to ignite")
	}
}

func TestDiffuseGasSpreadsVolumeToNeighbors(t *testing.T) {
	cat := testCatalog()
	lvl := buildLevel(cat)
	gasType, _ := lvl.TileTypeByName("gasTile")
	lvl.Tiles[10][10].SetTile(model.LayerGas, gasType)
	lvl.Tiles[10][10].Volume = 90

	sim := NewSimulator(rng.NewRNG(2, "test", nil))
	sim.diffuseGas(lvl)

	total := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			total += lvl.Tiles[10+dy][10+dx].Volume
		}
	}
	if total == 0 {
		t.Fatal("expected volume to spread to the 3x3 neighborhood")
	}
	if lvl.Tiles[10][10].Volume >= 90 {
		t.Fatal("expected source cell's volume to have been redistributed")
	}
}

func TestDiffuseGasObstructedNeighborLosesVolume(t *testing.T) {
	cat := testCatalog()
	lvl := buildLevel(cat)
	gasType, _ := lvl.TileTypeByName("gasTile")
	obstructType, _ := lvl.TileTypeByName("obstructsGasTile")
	lvl.Tiles[10][10].SetTile(model.LayerGas, gasType)
	lvl.Tiles[10][10].Volume = 90
	lvl.Tiles[10][11].SetTile(model.LayerDungeon, obstructType)

	sim := NewSimulator(rng.NewRNG(3, "test", nil))
	sim.diffuseGas(lvl)

	if lvl.Tiles[10][11].Volume != 0 {
		t.Fatalf("obstructed neighbor volume = %d, want 0", lvl.Tiles[10][11].Volume)
	}
}

func TestPromoteKeylessTilesSkipsCellWithKey(t *testing.T) {
	cat := testCatalog()
	cat.Tiles["lever"] = &catalog.TileInfo{Name: "lever", Flags: catalog.TilePromotesWithoutKey, PromoteType: "spark"}
	lvl := buildLevel(cat)
	leverType, _ := lvl.TileTypeByName("lever")
	lvl.Tiles[5][5].SetTile(model.LayerDungeon, leverType)
	lvl.FloorItems = append(lvl.FloorItems, &model.Item{Category: model.CategoryKey, Location: grid.Pos{X: 5, Y: 5}, OnMap: true})

	sim := NewSimulator(rng.NewRNG(4, "test", nil))
	sim.promoteKeylessTiles(lvl, nil)

	if lvl.Tiles[5][5].Tile(model.LayerDungeon) != leverType {
		t.Fatal("expected keyed cell not to promote")
	}
}

func TestActivateMachineGivesFreeTurnAndPowersOff(t *testing.T) {
	cat := testCatalog()
	lvl := buildLevel(cat)
	ventType, _ := lvl.TileTypeByName("vent")
	lvl.Tiles[6][6].SetTile(model.LayerDungeon, ventType)
	lvl.Tiles[6][6].MachineNumber = 1

	activated := &model.Creature{ID: 1, CurrentHP: 5, MachineHome: 1, Flags: model.MonstGetsTurnOnActivation}
	lvl.Monsters = []*model.Creature{activated}

	sim := NewSimulator(rng.NewRNG(5, "test", nil))
	runner := &recordingActivator{}
	sim.Activator = runner
	sim.activateMachine(lvl, 1, nil)

	if len(runner.calls) != 1 || runner.calls[0] != activated.ID {
		t.Fatalf("expected activated monster to get a free turn, calls=%v", runner.calls)
	}
	if lvl.Tiles[6][6].HasFlag(model.IsPowered) {
		t.Fatal("expected machine to be powered back off after activation")
	}
}

func TestActivateMachineVetoedByCircuitBreaker(t *testing.T) {
	cat := testCatalog()
	lvl := buildLevel(cat)
	ventType, _ := lvl.TileTypeByName("vent")
	breakerType, _ := lvl.TileTypeByName("breaker")
	lvl.Tiles[6][6].SetTile(model.LayerDungeon, ventType)
	lvl.Tiles[6][6].MachineNumber = 2
	lvl.Tiles[6][7].SetTile(model.LayerDungeon, breakerType)
	lvl.Tiles[6][7].MachineNumber = 2

	sim := NewSimulator(rng.NewRNG(6, "test", nil))
	sim.activateMachine(lvl, 2, nil)

	if lvl.Tiles[6][6].HasFlag(model.IsPowered) {
		t.Fatal("expected circuit breaker to veto activation")
	}
}

type recordingActivator struct{ calls []model.CreatureID }

func (r *recordingActivator) MonstersTurn(rs *model.RunState, lvl *model.Level, c *model.Creature) {
	r.calls = append(r.calls, c.ID)
}

func TestReleasePressurePlatesClearsUnoccupiedCell(t *testing.T) {
	cat := testCatalog()
	lvl := buildLevel(cat)
	lvl.Tiles[3][3].SetFlag(model.PressurePlateDepressed)

	sim := NewSimulator(rng.NewRNG(7, "test", nil))
	sim.releasePressurePlates(lvl)

	if lvl.Tiles[3][3].HasFlag(model.PressurePlateDepressed) {
		t.Fatal("expected unoccupied pressure plate to release")
	}
}

func TestMonstersFallSetsFallingFlag(t *testing.T) {
	cat := testCatalog()
	cat.Tiles["pit"] = &catalog.TileInfo{Name: "pit", Flags: catalog.TileAutoDescent}
	lvl := buildLevel(cat)
	pitType, _ := lvl.TileTypeByName("pit")
	lvl.Tiles[8][8].SetTile(model.LayerDungeon, pitType)

	c := &model.Creature{ID: 1, CurrentHP: 5, Loc: grid.Pos{X: 8, Y: 8}}
	lvl.Monsters = []*model.Creature{c}

	rs := model.NewRunState()
	rs.Player.Loc = grid.Pos{X: 0, Y: 0}
	rs.Levels[1] = lvl

	sim := NewSimulator(rng.NewRNG(8, "test", nil))
	sim.monstersFall(rs, lvl)

	if !c.HasFlag(model.MBIsFalling) {
		t.Fatal("expected creature standing on an auto-descent tile to be flagged falling")
	}
	if rs.Player.HasFlag(model.MBIsFalling) {
		t.Fatal("expected player not standing on the pit to stay unflagged")
	}
}
