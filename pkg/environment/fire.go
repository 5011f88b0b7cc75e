package environment

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

// fireExposureLimit is the exposedToFire count at which a flammable
// tile is considered too damp/exhausted to catch (spec 4.G step 2).
const fireExposureLimit = 12

// propagateFire sweeps every burning cell, exposing itself and its
// four cardinal neighbors to ignition (spec 4.G step 2).
func (s *Simulator) propagateFire(lvl *model.Level, rs *model.RunState) {
	burning := make([]grid.Pos, 0)
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			if info := tileInfo(lvl, p, model.LayerSurface); info != nil && info.HasFlag(catalog.TileIsFire) {
				burning = append(burning, p)
				continue
			}
			if info := tileInfo(lvl, p, model.LayerDungeon); info != nil && info.HasFlag(catalog.TileIsFire) {
				burning = append(burning, p)
			}
		}
	}

	for _, p := range burning {
		s.exposeTileToFire(lvl, p, rs)
		for _, d := range grid.NbDirs[:4] {
			s.exposeTileToFire(lvl, grid.Pos{X: p.X + d.X, Y: p.Y + d.Y}, rs)
		}
	}

	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			cell := lvl.Cell(p)
			cell.ExposedToFire = 0
			cell.ClearFlag(model.CaughtFireThisTurn)
		}
	}
}

// exposeTileToFire increments the cell's exposure counter and may
// ignite it: a tile past the exposure limit is too spent to catch;
// otherwise an ignition roll against the tile's chanceToIgnite may
// promote it (spec 4.G step 2).
func (s *Simulator) exposeTileToFire(lvl *model.Level, p grid.Pos, rs *model.RunState) {
	if !grid.InBounds(p) {
		return
	}
	cell := lvl.Cell(p)

	layer, info := flammableLayer(lvl, p)
	if info == nil {
		return
	}

	cell.ExposedToFire++
	if cell.ExposedToFire >= fireExposureLimit {
		return
	}

	if !s.RNG.RandPercent(info.ChanceToIgnite) {
		return
	}

	if layer == model.LayerGas && info.HasFlag(catalog.TileIsFlammable) {
		cell.Volume = 0
	}

	s.promoteTile(lvl, p, layer, true, rs)
	cell.SetFlag(model.CaughtFireThisTurn)
}

// flammableLayer returns the first flammable layer at p, checked
// Surface then Gas then Dungeon (surface kindling catches before the
// floor itself, gas clouds catch before solid terrain).
func flammableLayer(lvl *model.Level, p grid.Pos) (model.Layer, *catalog.TileInfo) {
	for _, layer := range []model.Layer{model.LayerSurface, model.LayerGas, model.LayerDungeon} {
		if info := tileInfo(lvl, p, layer); info != nil && info.HasFlag(catalog.TileIsFlammable) {
			return layer, info
		}
	}
	return model.LayerDungeon, nil
}
