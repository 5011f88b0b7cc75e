package levelgen

import (
	"sort"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// heatMap tracks a running "danger/interest" score per floor cell,
// built by summing every placed item's heat contribution and cooled
// after each placement so items spread out rather than clustering
// (spec 4.E's item-population protocol).
type heatMap struct {
	grid [grid.DROWS][grid.DCOLS]int
}

func (h *heatMap) add(p grid.Pos, amount int) {
	if grid.InBounds(p) {
		h.grid[p.Y][p.X] += amount
	}
}

// cool halves every cell's heat, floored at zero, after an item is
// placed there, preventing the same spot from dominating every
// subsequent placement.
func (h *heatMap) cool() {
	for y := range h.grid {
		for x := range h.grid[y] {
			h.grid[y][x] /= 2
		}
	}
}

// coolest returns the floor cell with the lowest heat among the
// given candidates, breaking ties by RNG draw for determinism without
// positional bias.
func (h *heatMap) coolest(candidates []grid.Pos, r *rng.RNG) grid.Pos {
	if len(candidates) == 0 {
		return grid.Pos{X: -1, Y: -1}
	}
	best := candidates[0]
	bestHeat := h.grid[best.Y][best.X]
	ties := []grid.Pos{best}
	for _, p := range candidates[1:] {
		v := h.grid[p.Y][p.X]
		if v < bestHeat {
			bestHeat = v
			ties = []grid.Pos{p}
		} else if v == bestHeat {
			ties = append(ties, p)
		}
	}
	return ties[r.IntRange(0, len(ties)-1)]
}

// floorCandidates collects every passable, item-free floor cell on
// the level.
func floorCandidates(lvl *model.Level, floor model.TileType) []grid.Pos {
	var out []grid.Pos
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			c := lvl.Cell(p)
			if c.Tile(model.LayerDungeon) == floor && !c.HasFlag(model.HasItem) && !c.HasFlag(model.HasStairs) {
				out = append(out, p)
			}
		}
	}
	return out
}

// PopulateItems runs the level's item-generation pass: metered items
// (those with a hard per-level guarantee) are placed first and
// unconditionally; the rest of the gold/item budget is then spent via
// the heat map, so generic loot avoids clustering on top of the
// guaranteed placements (spec 4.E). Food bypasses the heat map
// entirely per spec's food-schedule exception, landing
// on whichever candidate cell the RNG draws uniformly so the
// self-correcting food schedule isn't skewed by heat placement.
func PopulateItems(lvl *model.Level, cat *catalog.Catalog, metered *catalog.MeteredTable, depth int, r *rng.RNG, floor model.TileType, isPostAmulet bool) []*model.Item {
	var placed []*model.Item
	h := &heatMap{}
	candidates := floorCandidates(lvl, floor)
	if len(candidates) == 0 {
		return nil
	}

	place := func(category model.ItemCategory, kind int, bypassHeat bool) *model.Item {
		var p grid.Pos
		if bypassHeat || len(candidates) == 0 {
			p = candidates[r.IntRange(0, len(candidates)-1)]
		} else {
			p = h.coolest(candidates, r)
		}
		it := &model.Item{Category: category, Kind: kind, Location: p, OnMap: true, OriginDepth: depth}
		c := lvl.Cell(p)
		c.SetFlag(model.HasItem)
		h.add(p, 10)
		h.cool()
		placed = append(placed, it)
		return it
	}

	for _, e := range metered.Entries() {
		randomOffset := r.IntRange(0, e.Def.LevelScaling)
		if e.NeedsHardGuarantee(depth, randomOffset) {
			place(categoryFromName(e.Def.Category), 0, false)
			metered.RecordSpawn(e.Def.Category, e.Def.Kind)
		}
	}

	foodCount := foodSchedule(depth)
	for i := 0; i < foodCount; i++ {
		place(model.CategoryFood, 0, true)
	}

	goldTotal := goldAggregateBounds(depth, r)
	if goldTotal > 0 {
		g := place(model.CategoryGold, 0, false)
		g.Enchant1 = goldTotal
	}

	if isPostAmulet {
		for i := 0; i < r.IntRange(1, 2); i++ {
			place(model.CategoryGem, 0, false)
		}
	}

	generic := r.IntRange(3, 6)
	for i := 0; i < generic; i++ {
		category := weightedItemCategory(cat.ItemGenWeights, r)
		place(category, 0, false)
	}

	return placed
}

func categoryFromName(name string) model.ItemCategory {
	switch name {
	case "weapon":
		return model.CategoryWeapon
	case "armor":
		return model.CategoryArmor
	case "scroll":
		return model.CategoryScroll
	case "potion":
		return model.CategoryPotion
	case "staff":
		return model.CategoryStaff
	case "wand":
		return model.CategoryWand
	case "ring":
		return model.CategoryRing
	case "charm":
		return model.CategoryCharm
	case "food":
		return model.CategoryFood
	default:
		return model.CategoryGold
	}
}

// foodSchedule is the self-correcting food-generation formula: deeper
// levels spawn food less often, since the player needs fewer
// refills per level the slower their consumption has become relative
// to progress, but never drops below one ration every third level.
func foodSchedule(depth int) int {
	if depth%3 == 0 {
		return 1
	}
	if depth <= 3 {
		return 1
	}
	return 0
}

// goldAggregateBounds rolls one level's gold pile: 10+15*depth, varied
// by up to a quarter of that either way. Each level is rolled on its
// own; no running total across levels is kept or clamped.
func goldAggregateBounds(depth int, r *rng.RNG) int {
	base := 10 + depth*15
	variance := base / 4
	if variance <= 0 {
		return base
	}
	return base + r.IntRange(-variance, variance)
}

func weightedItemCategory(weights map[string]int, r *rng.RNG) model.ItemCategory {
	if len(weights) == 0 {
		return model.CategoryPotion
	}
	total := 0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return model.CategoryPotion
	}
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, name)
	}
	sort.Strings(names)
	roll := r.IntRange(0, total-1)
	for _, name := range names {
		w := weights[name]
		if roll < w {
			return categoryFromName(name)
		}
		roll -= w
	}
	return model.CategoryPotion
}
