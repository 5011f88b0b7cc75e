package ai

import (
	"github.com/hollowcrawl/dungeoncore/pkg/action"
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/pathing"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// wakeSightRadius bounds how far a sleeping creature can notice the
// player without being directly damaged or alerted (spec 4.H step 1).
const wakeSightRadius = 6

// AI drives one level's worth of monster turns. It owns the RNG
// stream creature decisions draw from — a single shared stream so
// replay determinism holds across every creature's turn in a fixed
// order, matching the active-list iteration order spec 4.F's
// scheduler already guarantees.
type AI struct {
	RNG *rng.RNG
}

// New returns an AI drawing decisions from r.
func New(r *rng.RNG) *AI {
	return &AI{RNG: r}
}

// MonstersTurn runs one creature's AI turn (spec 4.H), implementing
// scheduler.MonsterTurnRunner and environment.MonsterActivator without
// importing either package.
func (a *AI) MonstersTurn(rs *model.RunState, lvl *model.Level, c *model.Creature) {
	if !c.IsAlive() {
		return
	}

	maybeWake(a.RNG, rs, lvl, c)

	if c.State == model.StateSleeping {
		c.TicksUntilTurn = c.MovementSpeed
		return
	}

	if enemy, ok := adjacentEnemy(rs, lvl, c); ok {
		action.ResolveMonsterAttack(a.RNG, c, enemy)
		c.TicksUntilTurn = c.AttackSpeed
		return
	}

	dir, moved := a.chooseDirection(rs, lvl, c)
	if moved {
		move(lvl, c, dir)
	}
	c.TicksUntilTurn = c.MovementSpeed
}

// maybeWake transitions a sleeping creature to Wandering when the
// player is close enough and a perception roll succeeds, or
// immediately when the creature has already taken damage this turn
// (PreviousHealthPoints having dropped is the damage signal; a true
// "alerted by noise" event is a UI/message-log concern out of this
// port's scope).
func maybeWake(r *rng.RNG, rs *model.RunState, lvl *model.Level, c *model.Creature) {
	if c.State != model.StateSleeping {
		return
	}
	if c.CurrentHP < c.PreviousHealthPoints {
		c.State = model.StateWandering
		return
	}
	if rs.Player == nil {
		return
	}
	dist := chebyshev(c.Loc, rs.Player.Loc)
	if dist > wakeSightRadius {
		return
	}
	perception := 50 - dist*5
	if perception < 5 {
		perception = 5
	}
	if r.RandPercent(perception) {
		c.State = model.StateWandering
	}
}

func chebyshev(a, b grid.Pos) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func adjacentEnemy(rs *model.RunState, lvl *model.Level, c *model.Creature) (*model.Creature, bool) {
	if c.State == model.StateAlly {
		return nil, false
	}
	for _, d := range grid.NbDirs {
		if rs.Player != nil && c.Loc.Add(d) == rs.Player.Loc {
			return rs.Player, true
		}
		if other, ok := lvl.CreatureAt(c.Loc.Add(d)); ok && other != c && other.State == model.StateAlly {
			return other, true
		}
	}
	return nil, false
}

// chooseDirection implements the spec 4.H state dispatch (Fleeing,
// Ally, TrackingScent, Wandering) and returns the direction to step
// plus whether a legal step was found.
func (a *AI) chooseDirection(rs *model.RunState, lvl *model.Level, c *model.Creature) (grid.Pos, bool) {
	switch c.State {
	case model.StateFleeing:
		return stepAlongGradient(lvl, c, ensureSafetyMap(rs, lvl, c), true)
	case model.StateAlly:
		if rs.Player == nil {
			return grid.Pos{}, false
		}
		return stepAlongGradient(lvl, c, ensureMapToMe(rs.Player, lvl), false)
	case model.StateTrackingScent:
		return stepAlongScent(lvl, c)
	default: // Wandering
		return stepRandom(a.RNG, lvl, c)
	}
}

// ensureSafetyMap recomputes c's safety map — the distance field away
// from the player — only when stale (spec 4.H: "recomputed lazily on
// invalidation").
func ensureSafetyMap(rs *model.RunState, lvl *model.Level, c *model.Creature) *grid.Grid {
	if !c.SafetyMapStale() {
		return c.SafetyMap
	}
	dest := c.Loc
	if rs.Player != nil {
		dest = rs.Player.Loc
	}
	c.SafetyMap = pathing.CalculateDistances(lvl, dest, 0, c, c.CanPassSecretDoors(), true)
	c.MarkSafetyMapFresh()
	return c.SafetyMap
}

// ensureMapToMe recomputes leader's distance field for allies to
// follow, only when stale.
func ensureMapToMe(leader *model.Creature, lvl *model.Level) *grid.Grid {
	if !leader.MapToMeStale() {
		return leader.MapToMe
	}
	leader.MapToMe = pathing.CalculateDistances(lvl, leader.Loc, 0, leader, leader.CanPassSecretDoors(), true)
	leader.MarkMapToMeFresh()
	return leader.MapToMe
}

// stepAlongGradient picks the neighbor of c.Loc with the extreme value
// in dist: maximal when away (fleeing, away from the player) or
// minimal when toward (ally following its leader).
func stepAlongGradient(lvl *model.Level, c *model.Creature, dist *grid.Grid, away bool) (grid.Pos, bool) {
	if dist == nil {
		return grid.Pos{}, false
	}
	best := grid.Pos{}
	found := false
	var bestVal int32
	for _, d := range grid.NbDirs {
		next := c.Loc.Add(d)
		if !grid.InBounds(next) || lvl.BlocksPassability(next) {
			continue
		}
		if occupant, ok := lvl.CreatureAt(next); ok && occupant != c {
			continue
		}
		v := dist.Get(next)
		if v >= grid.PDSMaxDistance {
			continue
		}
		if !found || (away && v > bestVal) || (!away && v < bestVal) {
			bestVal = v
			best = d
			found = true
		}
	}
	return best, found
}

// stepAlongScent walks toward the freshest (lowest-age) scent cell
// among c's neighbors (spec 4.H's TrackingScent state).
func stepAlongScent(lvl *model.Level, c *model.Creature) (grid.Pos, bool) {
	best := grid.Pos{}
	found := false
	var bestAge int32 = 1<<31 - 1
	for _, d := range grid.NbDirs {
		next := c.Loc.Add(d)
		if !grid.InBounds(next) || lvl.BlocksPassability(next) {
			continue
		}
		if occupant, ok := lvl.CreatureAt(next); ok && occupant != c {
			continue
		}
		age := lvl.Scent.Get(next)
		if age == 0 {
			continue
		}
		if !found || age < bestAge {
			bestAge = age
			best = d
			found = true
		}
	}
	return best, found
}

// stepRandom picks a uniformly random neighbor direction among the
// in-bounds neighbors that do not block passability, are not rejected
// by MonsterAvoids, and are unoccupied (spec 4.H step 7).
func stepRandom(r *rng.RNG, lvl *model.Level, c *model.Creature) (grid.Pos, bool) {
	var candidates []grid.Pos
	for _, d := range grid.NbDirs {
		next := c.Loc.Add(d)
		if !grid.InBounds(next) || lvl.BlocksPassability(next) {
			continue
		}
		if MonsterAvoids(lvl, c, next) {
			continue
		}
		if _, occupied := lvl.CreatureAt(next); occupied {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return grid.Pos{}, false
	}
	return candidates[r.RandRange(0, len(candidates)-1)], true
}

// MonsterAvoids reports whether c refuses to step onto p: water,
// fire, or a chasm, unless c is levitating or immune (spec 4.H step 7
// and pathing.TravelerAvoids's contract, evaluated here with a
// concrete creature rather than through the terrain-query interface
// since wandering/fleeing steps are already one-hop candidate lists).
func MonsterAvoids(lvl *model.Level, c *model.Creature, p grid.Pos) bool {
	if c.Status[model.StatusLevitating] > 0 {
		return false
	}
	info := lvl.TileInfoAt(p, model.LayerDungeon)
	if info != nil && info.HasFlag(catalog.TileAutoDescent) {
		return true
	}
	liquid := lvl.TileInfoAt(p, model.LayerLiquid)
	if liquid != nil && liquid.HasFlag(catalog.TileObstructsPassability) {
		return true
	}
	surface := lvl.TileInfoAt(p, model.LayerSurface)
	if surface != nil && surface.HasFlag(catalog.TileIsFire) && c.Status[model.StatusImmuneToFire] == 0 {
		return true
	}
	return false
}

// move relocates c to c.Loc.Add(d), updating HAS_MONSTER cell flags
// and invalidating its own MapToMe so followers recompute against its
// new position.
func move(lvl *model.Level, c *model.Creature, d grid.Pos) {
	target := c.Loc.Add(d)
	if src := lvl.Cell(c.Loc); src != nil {
		src.ClearFlag(model.HasMonster)
	}
	c.Loc = target
	if dst := lvl.Cell(target); dst != nil {
		dst.SetFlag(model.HasMonster)
	}
	c.InvalidateMapToMe()
}
