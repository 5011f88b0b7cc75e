package environment

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// MonsterActivator gives a free turn to a machine-activated monster
// (spec 4.G's activateMachine step c). Declared locally rather than
// importing package ai, mirroring pkg/scheduler's MonsterTurnRunner.
type MonsterActivator interface {
	MonstersTurn(rs *model.RunState, lvl *model.Level, c *model.Creature)
}

// noTile marks an empty non-Dungeon layer: Liquid/Surface/Gas default
// to "nothing", distinct from TileType 0 which is a valid Dungeon-layer
// index into the catalog's sorted tile list.
const noTile model.TileType = -1

// Simulator runs one updateEnvironment pass. It owns the RNG stream
// fire ignition and gas diffusion draw from, and an optional
// MonsterActivator to run free turns for machine-activated monsters.
type Simulator struct {
	RNG       *rng.RNG
	Activator MonsterActivator
}

// NewSimulator returns a Simulator drawing from r.
func NewSimulator(r *rng.RNG) *Simulator {
	return &Simulator{RNG: r}
}

// UpdateEnvironment runs the fixed-interval environment sweep (spec
// 4.G), implementing scheduler.EnvironmentUpdater.
func (s *Simulator) UpdateEnvironment(rs *model.RunState, lvl *model.Level) {
	s.monstersFall(rs, lvl)
	s.propagateFire(lvl, rs)
	s.diffuseGas(lvl)
	s.promoteKeylessTiles(lvl, rs)
	s.releasePressurePlates(lvl)
	s.decayFloorItems(lvl)
	s.trackYendorWarden(rs, lvl)
}

// monstersFall queues the player and every non-levitating creature
// standing on an auto-descent tile to fall to the next level (spec
// 4.G step 1). The actual depth transition belongs to the run
// orchestration layer, which consults MBIsFalling on its next turn
// boundary; this sweep only sets the flag.
func (s *Simulator) monstersFall(rs *model.RunState, lvl *model.Level) {
	if rs.Player != nil && onAutoDescent(lvl, rs.Player.Loc) && rs.Player.Status[model.StatusLevitating] == 0 {
		rs.Player.SetFlag(model.MBIsFalling)
	}
	for _, c := range lvl.Monsters {
		if !c.IsAlive() {
			continue
		}
		if onAutoDescent(lvl, c.Loc) && c.Status[model.StatusLevitating] == 0 {
			c.SetFlag(model.MBIsFalling)
		}
	}
}

func onAutoDescent(lvl *model.Level, p grid.Pos) bool {
	info := tileInfo(lvl, p, model.LayerDungeon)
	return info != nil && info.HasFlag(catalog.TileAutoDescent)
}

// releasePressurePlates clears PressurePlateDepressed on any cell no
// longer holding a creature or item (spec 4.G step 5).
func (s *Simulator) releasePressurePlates(lvl *model.Level) {
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			cell := lvl.Cell(p)
			if !cell.HasFlag(model.PressurePlateDepressed) {
				continue
			}
			if cell.HasFlag(model.HasMonster) || cell.HasFlag(model.HasPlayer) || cell.HasFlag(model.HasItem) {
				continue
			}
			cell.ClearFlag(model.PressurePlateDepressed)
		}
	}
}

// decayFloorItems rusts and volume-decays items left on corrosive
// terrain (spec 4.G step 6). The catalog has no dedicated "corrosive"
// tile flag, so this is limited to items resting on a Liquid-layer
// tile whose name marks it caustic; a positively-enchanted weapon or
// suit of armor loses one point of enchantment per sweep there.
func (s *Simulator) decayFloorItems(lvl *model.Level) {
	for _, it := range lvl.FloorItems {
		if !it.OnMap {
			continue
		}
		if it.Category != model.CategoryWeapon && it.Category != model.CategoryArmor {
			continue
		}
		info := tileInfo(lvl, it.Location, model.LayerLiquid)
		if info == nil || !isCaustic(info.Name) {
			continue
		}
		if it.Enchant1 > 0 {
			it.Enchant1--
		}
	}
}

func isCaustic(name string) bool {
	return name == "bog" || name == "acid" || name == "causticGas"
}

// trackYendorWarden steps the Yendor Warden one depth toward the
// player's current depth and restarts its EntersLevelIn timer (spec
// 4.G step 7), when it exists and is not already on the player's
// level.
func (s *Simulator) trackYendorWarden(rs *model.RunState, lvl *model.Level) {
	for depth, visited := range rs.Levels {
		if depth == rs.DepthLevel {
			continue
		}
		for i := 0; i < len(visited.Monsters); i++ {
			c := visited.Monsters[i]
			if !isYendorWarden(c) || !c.IsAlive() {
				continue
			}
			nextDepth := depth + 1
			if depth > rs.DepthLevel {
				nextDepth = depth - 1
			}
			dest, ok := rs.Levels[nextDepth]
			if !ok {
				continue
			}
			visited.Monsters = append(visited.Monsters[:i], visited.Monsters[i+1:]...)
			i--
			c.Depth = nextDepth
			c.Status[model.StatusEntersLevelIn] = c.MaxStatus[model.StatusEntersLevelIn]
			dest.Monsters = append(dest.Monsters, c)
		}
	}
}

func isYendorWarden(c *model.Creature) bool {
	return c.Info != nil && c.Info.ClassName == "yendorWarden"
}

func tileInfo(lvl *model.Level, p grid.Pos, layer model.Layer) *catalog.TileInfo {
	if lvl.Catalog == nil || len(lvl.TileIndex) == 0 {
		return nil
	}
	cell := lvl.Cell(p)
	if cell == nil {
		return nil
	}
	tt := int(cell.Tile(layer))
	if tt < 0 || tt >= len(lvl.TileIndex) {
		return nil
	}
	return lvl.Catalog.Tiles[lvl.TileIndex[tt]]
}
