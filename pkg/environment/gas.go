package environment

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

// diffuseGas splits each gas-bearing cell's volume evenly among
// itself and its eight neighbors, distributing the remainder by
// stochastic rounding (spec 4.G step 3). Destinations flagged
// TileObstructsGas lose whatever volume reaches them.
func (s *Simulator) diffuseGas(lvl *model.Level) {
	type source struct {
		pos    grid.Pos
		volume int
		tile   model.TileType
	}
	var sources []source
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			cell := lvl.Cell(p)
			if cell.Volume > 0 && cell.Tile(model.LayerGas) != noTile {
				sources = append(sources, source{pos: p, volume: cell.Volume, tile: cell.Tile(model.LayerGas)})
			}
		}
	}

	delta := make(map[grid.Pos]int, len(sources)*9)
	clearedSourceVolume := make(map[grid.Pos]bool, len(sources))

	for _, src := range sources {
		share := src.volume / 9
		remainder := src.volume % 9

		targets := make([]grid.Pos, 0, 9)
		targets = append(targets, src.pos)
		for _, d := range grid.NbDirs {
			targets = append(targets, grid.Pos{X: src.pos.X + d.X, Y: src.pos.Y + d.Y})
		}

		for _, t := range targets {
			if !grid.InBounds(t) {
				continue
			}
			amt := share
			if remainder > 0 && s.RNG.RandRange(0, 8) < remainder {
				amt++
			}
			if amt <= 0 {
				continue
			}
			if obstructsGas(lvl, t) {
				continue
			}
			delta[t] += amt
		}
		clearedSourceVolume[src.pos] = true
	}

	for _, src := range sources {
		cell := lvl.Cell(src.pos)
		if clearedSourceVolume[src.pos] {
			cell.Volume = 0
			cell.SetTile(model.LayerGas, noTile)
		}
	}

	for p, amt := range delta {
		cell := lvl.Cell(p)
		if cell.Tile(model.LayerGas) == noTile {
			// Pick up whichever source's gas reached this cell first;
			// deterministic scan order over sources keeps this stable.
			for _, src := range sources {
				if src.pos == p || isNeighbor(src.pos, p) {
					cell.SetTile(model.LayerGas, src.tile)
					break
				}
			}
		}
		cell.Volume += amt
		if cell.Volume <= 0 {
			cell.Volume = 0
			cell.SetTile(model.LayerGas, noTile)
		}
	}
}

func isNeighbor(a, b grid.Pos) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 1 && dy <= 1
}

func obstructsGas(lvl *model.Level, p grid.Pos) bool {
	info := tileInfo(lvl, p, model.LayerDungeon)
	return info != nil && info.HasFlag(catalog.TileObstructsGas)
}
