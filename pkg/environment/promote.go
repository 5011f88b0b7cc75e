package environment

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

// promoteKeylessTiles promotes any cell with TM_PROMOTES_WITHOUT_KEY
// that has no key item resting on it (spec 4.G step 4).
func (s *Simulator) promoteKeylessTiles(lvl *model.Level, rs *model.RunState) {
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			info := tileInfo(lvl, p, model.LayerDungeon)
			if info == nil || !info.HasFlag(catalog.TilePromotesWithoutKey) {
				continue
			}
			if keyAt(lvl, p) {
				continue
			}
			s.promoteTile(lvl, p, model.LayerDungeon, false, rs)
		}
	}
}

func keyAt(lvl *model.Level, p grid.Pos) bool {
	for _, it := range lvl.FloorItems {
		if it.OnMap && it.Location == p && it.Category == model.CategoryKey {
			return true
		}
	}
	return false
}

// promoteTile is the polymorphic terrain-transition engine (spec
// 4.G): vanish-on-promotion tiles clear to floor/nothing, a nonzero
// promoteType (or fireType under useFireDF) spawns a dungeon feature,
// and a wired, unpowered tile activates its machine.
func (s *Simulator) promoteTile(lvl *model.Level, p grid.Pos, layer model.Layer, useFireDF bool, rs *model.RunState) {
	info := tileInfo(lvl, p, layer)
	if info == nil {
		return
	}
	cell := lvl.Cell(p)

	if info.HasFlag(catalog.TileVanishesUponPromotion) {
		if layer == model.LayerDungeon {
			if floor, ok := lvl.TileTypeByName("floor"); ok {
				cell.SetTile(model.LayerDungeon, floor)
			}
			if info.HasFlag(catalog.TileObstructsPassability) {
				lvl.TopologyStale = true
			}
		} else {
			cell.SetTile(layer, noTile)
			if layer == model.LayerGas {
				cell.Volume = 0
			}
		}
	}

	featureName := info.PromoteType
	if useFireDF && info.FireType != "" {
		featureName = info.FireType
	}
	if featureName != "" {
		spawnFeature(lvl, p, featureName)
	}

	if info.HasFlag(catalog.TileIsWired) && cell.MachineNumber != 0 && !cell.HasFlag(model.IsPowered) {
		s.activateMachine(lvl, cell.MachineNumber, rs)
	}
}

// spawnFeature stamps the named catalog dungeon feature's tile onto
// p's declared layer.
func spawnFeature(lvl *model.Level, p grid.Pos, name string) {
	if lvl.Catalog == nil {
		return
	}
	feature, ok := lvl.Catalog.Features[name]
	if !ok {
		return
	}
	tt, ok := lvl.TileTypeByName(feature.TileType)
	if !ok {
		return
	}
	lvl.Cell(p).SetTile(model.Layer(feature.Layer), tt)
}

// activateMachine powers on every cell belonging to machine n, spawns
// each wired tile's feature, gives a free turn to its
// activation-triggered monsters, then powers back off (spec 4.G's
// activateMachine). A circuit breaker tile anywhere in the machine
// vetoes activation entirely — this port treats an intact (not yet
// promoted away) breaker tile as always blocking, since the spec
// gives no separate trigger condition for disarming one.
func (s *Simulator) activateMachine(lvl *model.Level, n int, rs *model.RunState) {
	cells := machineCells(lvl, n)
	if len(cells) == 0 {
		return
	}
	if hasCircuitBreaker(lvl, cells) {
		return
	}

	for _, p := range cells {
		lvl.Cell(p).SetFlag(model.IsPowered)
	}

	for _, p := range cells {
		for layer := model.Layer(0); layer < model.NumLayers; layer++ {
			info := tileInfo(lvl, p, layer)
			if info == nil || !info.HasFlag(catalog.TileIsWired) || info.PromoteType == "" {
				continue
			}
			spawnFeature(lvl, p, info.PromoteType)
		}
	}

	for _, c := range lvl.Monsters {
		if c.MachineHome != n || !c.HasFlag(model.MonstGetsTurnOnActivation) || c.HasFlag(model.MBIsDying) {
			continue
		}
		if s.Activator != nil {
			s.Activator.MonstersTurn(rs, lvl, c)
		}
	}

	for _, p := range cells {
		lvl.Cell(p).ClearFlag(model.IsPowered)
	}
}

func machineCells(lvl *model.Level, n int) []grid.Pos {
	var cells []grid.Pos
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			if lvl.Cell(p).MachineNumber == n {
				cells = append(cells, p)
			}
		}
	}
	return cells
}

func hasCircuitBreaker(lvl *model.Level, cells []grid.Pos) bool {
	for _, p := range cells {
		for layer := model.Layer(0); layer < model.NumLayers; layer++ {
			if info := tileInfo(lvl, p, layer); info != nil && info.HasFlag(catalog.TileIsCircuitBreaker) {
				return true
			}
		}
	}
	return false
}
