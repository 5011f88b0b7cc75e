package levelgen

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// PopulateHordes spawns the level's monster population, picking
// eligible hordes (depth-banded, frequency-weighted) and placing a
// leader plus members in open floor cells away from the entrance
// room, the same leader/member recipe shape as catalog.Horde (spec
// 4.E's horde-population pass).
func PopulateHordes(lvl *model.Level, cat *catalog.Catalog, depth int, r *rng.RNG, floor model.TileType, entrance grid.Pos) []*model.Creature {
	var spawned []*model.Creature
	candidates := floorCandidates(lvl, floor)
	if len(candidates) == 0 {
		return nil
	}

	eligible := make([]catalog.Horde, 0, len(cat.Hordes))
	totalFreq := 0
	for _, h := range cat.Hordes {
		if depth < h.MinLevel || (h.MaxLevel > 0 && depth > h.MaxLevel) {
			continue
		}
		eligible = append(eligible, h)
		totalFreq += h.Frequency
	}
	if len(eligible) == 0 || totalFreq <= 0 {
		return nil
	}

	hordeCount := r.IntRange(2, 5)
	for n := 0; n < hordeCount; n++ {
		h := pickHorde(eligible, totalFreq, r)

		anchor := farthestFrom(candidates, entrance, r)
		leaderInfo, _ := cat.ResolveMonster(h.LeaderType)
		leader := spawnCreature(lvl, leaderInfo, anchor)
		spawned = append(spawned, leader)

		for _, m := range h.Members {
			count := m.Count.Lower
			if m.Count.Upper > m.Count.Lower {
				count = r.RandClump(m.Count.Lower, m.Count.Upper, m.Count.ClumpFactor)
			}
			info, _ := cat.ResolveMonster(m.MemberType)
			for i := 0; i < count; i++ {
				p := nearbyFloor(lvl, anchor, candidates, r, floor)
				c := spawnCreature(lvl, info, p)
				c.HasLeader = true
				c.Leader = leader.ID
				spawned = append(spawned, c)
			}
		}
	}
	return spawned
}

func pickHorde(eligible []catalog.Horde, totalFreq int, r *rng.RNG) catalog.Horde {
	roll := r.IntRange(0, totalFreq-1)
	for _, h := range eligible {
		if roll < h.Frequency {
			return h
		}
		roll -= h.Frequency
	}
	return eligible[len(eligible)-1]
}

// farthestFrom picks the candidate cell with the greatest Chebyshev
// distance from avoid among a random sample, approximating "spawn
// away from the entrance" without a full Dijkstra pass per horde.
func farthestFrom(candidates []grid.Pos, avoid grid.Pos, r *rng.RNG) grid.Pos {
	best := candidates[r.IntRange(0, len(candidates)-1)]
	bestDist := chebyshev(best, avoid)
	for i := 0; i < 8; i++ {
		p := candidates[r.IntRange(0, len(candidates)-1)]
		if d := chebyshev(p, avoid); d > bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

func chebyshev(a, b grid.Pos) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func nearbyFloor(lvl *model.Level, anchor grid.Pos, candidates []grid.Pos, r *rng.RNG, floor model.TileType) grid.Pos {
	for i := 0; i < 6; i++ {
		d := grid.NbDirs[r.IntRange(0, len(grid.NbDirs)-1)]
		p := grid.Pos{X: anchor.X + d.X, Y: anchor.Y + d.Y}
		c := lvl.Cell(p)
		if c != nil && c.Tile(model.LayerDungeon) == floor {
			return p
		}
	}
	return candidates[r.IntRange(0, len(candidates)-1)]
}

func spawnCreature(lvl *model.Level, info *catalog.MonsterInfo, p grid.Pos) *model.Creature {
	c := &model.Creature{
		ID:            lvl.AllocCreatureID(),
		Info:          info,
		Loc:           p,
		Depth:         lvl.Depth,
		CurrentHP:     info.MaxHP,
		MovementSpeed: 100,
		AttackSpeed:   100,
	}
	if cell := lvl.Cell(p); cell != nil {
		cell.SetFlag(model.HasMonster)
	}
	return c
}
