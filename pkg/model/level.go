package model

import (
	"sort"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/pathing"
)

// ScentMap tracks per-cell scent age for scent-gradient tracking AI
// (spec 4.H). Lower values are "fresher" scent; cells never visited by
// the player carry the zero value.
type ScentMap struct {
	cells [grid.DROWS][grid.DCOLS]int32
}

// Get returns the scent age at p.
func (s *ScentMap) Get(p grid.Pos) int32 {
	if !grid.InBounds(p) {
		return 0
	}
	return s.cells[p.Y][p.X]
}

// Set writes the scent age at p.
func (s *ScentMap) Set(p grid.Pos, v int32) {
	if !grid.InBounds(p) {
		return
	}
	s.cells[p.Y][p.X] = v
}

// DecayBy subtracts delta from every scent-map entry, floored at zero;
// used both for per-turn exponential decay and for the scentTurnNumber
// overflow-avoidance rebase in spec 4.F step 4.
func (s *ScentMap) DecayBy(delta int32) {
	for y := range s.cells {
		row := &s.cells[y]
		for x := range row {
			if row[x] > delta {
				row[x] -= delta
			} else {
				row[x] = 0
			}
		}
	}
}

// Level owns one floor's terrain, creatures, and items for its
// lifetime (generation to session end); spec §3's ownership rule.
type Level struct {
	Tiles     [grid.DROWS][grid.DCOLS]Cell
	Scent     ScentMap
	Catalog   *catalog.Catalog
	TileIndex []string // TileType -> catalog tile name, built once at level entry

	Monsters         []*Creature // active
	DormantMonsters  []*Creature
	FloorItems       []*Item

	UpStairsLoc   grid.Pos
	DownStairsLoc grid.Pos

	LevelSeed uint64
	Visited   bool
	Depth     int

	// TicksTillUpdateEnvironment and MonsterSpawnFuse are the
	// scheduler's per-level countdown timers (spec 4.F): the
	// environment sim and periodic monster spawns run on their own
	// cadence, independent of any single creature's ticksUntilTurn.
	TicksTillUpdateEnvironment int
	MonsterSpawnFuse           int

	// dfMessageShown tracks which dungeon-feature flavor messages have
	// already fired this turn, so a feature triggered by several
	// creatures in the same turn only announces once (spec 4.F step 2).
	dfMessageShown map[grid.Pos]bool

	// TopologyStale marks that a vanished tile removed a pathing
	// blocker, so AnalyzeTopology's chokepoint/loop tags need
	// recomputing before the next AI turn consults them.
	TopologyStale bool

	nextCreatureID CreatureID
}

// ResetDFMessages clears this turn's dungeon-feature message
// eligibility, called once at the start of playerTurnEnded.
func (l *Level) ResetDFMessages() {
	l.dfMessageShown = nil
}

// DFMessageFired reports whether the flavor message at p has already
// fired this turn, marking it fired if not.
func (l *Level) DFMessageFired(p grid.Pos) bool {
	if l.dfMessageShown == nil {
		l.dfMessageShown = make(map[grid.Pos]bool)
	}
	if l.dfMessageShown[p] {
		return true
	}
	l.dfMessageShown[p] = true
	return false
}

var _ pathing.TerrainQuery = (*Level)(nil)

// Cell returns a pointer to the cell at p, or nil out of bounds.
func (l *Level) Cell(p grid.Pos) *Cell {
	if !grid.InBounds(p) {
		return nil
	}
	return &l.Tiles[p.Y][p.X]
}

// AllocCreatureID hands out the next unique creature ID for this level.
func (l *Level) AllocCreatureID() CreatureID {
	l.nextCreatureID++
	return l.nextCreatureID
}

// CreatureByID resolves a CreatureID to its Creature, scanning both
// the active and dormant lists. Returns nil, false for a dangling ID
// (a dead creature already swept) rather than a stale pointer — this
// is how leader/ally weak references are resolved per spec §9.
func (l *Level) CreatureByID(id CreatureID) (*Creature, bool) {
	for _, c := range l.Monsters {
		if c.ID == id {
			return c, true
		}
	}
	for _, c := range l.DormantMonsters {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// CreatureAt returns the creature occupying p, if any.
func (l *Level) CreatureAt(p grid.Pos) (*Creature, bool) {
	for _, c := range l.Monsters {
		if c.Loc == p && c.IsAlive() {
			return c, true
		}
	}
	return nil, false
}

// RemoveCreature removes id from the active list (the scheduler's
// dying-creature sweep, spec 4.F step 4's "remove dying creatures").
func (l *Level) RemoveCreature(id CreatureID) {
	for i, c := range l.Monsters {
		if c.ID == id {
			l.Monsters = append(l.Monsters[:i], l.Monsters[i+1:]...)
			return
		}
	}
}

// ValidateOccupancyInvariant checks, across the whole pmap, that
// HasMonster is set on a cell if and only if some active creature
// occupies it (spec §8's invariant), and that HasPlayer is set on at
// most one cell.
func (l *Level) ValidateOccupancyInvariant() bool {
	playerCells := 0
	monsterLocs := make(map[grid.Pos]bool, len(l.Monsters))
	for _, c := range l.Monsters {
		if c.IsAlive() {
			monsterLocs[c.Loc] = true
		}
	}
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			cell := l.Cell(p)
			if cell.HasFlag(HasPlayer) {
				playerCells++
			}
			if cell.HasFlag(HasMonster) != monsterLocs[p] {
				return false
			}
		}
	}
	return playerCells <= 1
}

// TileInfoAt returns the catalog entry for the tile occupying p at
// layer, or nil if the cell, catalog, or tile index is unavailable.
// Exported for packages outside model (ai, action, environment
// already have their own copy; this is the canonical one new callers
// should use) that need read-only tile-flag queries without
// reimplementing the TileIndex lookup.
func (l *Level) TileInfoAt(p grid.Pos, layer Layer) *catalog.TileInfo {
	return l.tileInfo(p, layer)
}

// --- pathing.TerrainQuery implementation ---

// BlocksPassability reports whether the dungeon-layer tile at p
// obstructs ordinary movement.
func (l *Level) BlocksPassability(p grid.Pos) bool {
	info := l.tileInfo(p, LayerDungeon)
	return info != nil && info.HasFlag(catalog.TileObstructsPassability)
}

// ObstructsDiagonal reports whether the tile at p also blocks
// diagonal cutting through it.
func (l *Level) ObstructsDiagonal(p grid.Pos) bool {
	info := l.tileInfo(p, LayerDungeon)
	return info != nil && info.HasFlag(catalog.TileObstructsDiagonal)
}

// IsSecretDoor reports whether p is a secret door tile.
func (l *Level) IsSecretDoor(p grid.Pos) bool {
	info := l.tileInfo(p, LayerDungeon)
	return info != nil && info.HasFlag(catalog.TileIsSecretDoor)
}

// InvulnerableStationaryMonsterAt reports whether p is occupied by a
// creature with no movement ability and immunity flags set.
func (l *Level) InvulnerableStationaryMonsterAt(p grid.Pos) bool {
	c, ok := l.CreatureAt(p)
	if !ok || c.Info == nil {
		return false
	}
	const behaviorStationary = 1 << 0
	const abilityInvulnerable = 1 << 0
	return c.Info.BehaviorFlags&behaviorStationary != 0 && c.Info.AbilityFlags&abilityInvulnerable != 0
}

// TravelerAvoids reports whether the given traveler refuses to enter
// p, consulting terrain hazard flags against the traveler's immunity.
func (l *Level) TravelerAvoids(p grid.Pos, traveler pathing.TravelerInfo) bool {
	// Non-creature-specific queries (nil traveler) never avoid terrain
	// on their own, and neither do concrete travelers: this always
	// returns false. Per-creature avoidance is evaluated by package ai's
	// MonsterAvoids, one candidate step at a time.
	return false
}

// Flagged reports whether p's dungeon-layer tile carries any of
// blockingFlags.
func (l *Level) Flagged(p grid.Pos, blockingFlags uint64) bool {
	info := l.tileInfo(p, LayerDungeon)
	return info != nil && uint64(info.Flags)&blockingFlags != 0
}

// BuildTileIndex populates TileIndex from the level's catalog, giving
// every TileType a stable, deterministic ordinal (sorted by name) so
// the same catalog always yields the same TileType->name mapping.
// Call once when the catalog is attached, before carving begins.
func (l *Level) BuildTileIndex() {
	names := make([]string, 0, len(l.Catalog.Tiles))
	for name := range l.Catalog.Tiles {
		names = append(names, name)
	}
	sort.Strings(names)
	l.TileIndex = names
}

// TileTypeByName resolves a catalog tile name to its TileType ordinal,
// or (-1, false) if the index hasn't been built or the name is unknown.
func (l *Level) TileTypeByName(name string) (TileType, bool) {
	for i, n := range l.TileIndex {
		if n == name {
			return TileType(i), true
		}
	}
	return -1, false
}

func (l *Level) tileInfo(p grid.Pos, layer Layer) *catalog.TileInfo {
	if l.Catalog == nil || len(l.TileIndex) == 0 {
		return nil
	}
	cell := l.Cell(p)
	if cell == nil {
		return nil
	}
	tt := int(cell.Tile(layer))
	if tt < 0 || tt >= len(l.TileIndex) {
		return nil
	}
	return l.Catalog.Tiles[l.TileIndex[tt]]
}
