package scheduler

import (
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

// XPXPNeededForTelepathicBond is the ally experience threshold that
// triggers a telepathic bond announcement (spec 4.F step 1).
const XPXPNeededForTelepathicBond = 100

// scentRebaseThreshold is the point at which scentTurnNumber and every
// visited level's scent map are rebased by the same amount, avoiding
// u32/i32 overflow while preserving relative scent age (spec 4.F step
// 4's final bullet).
const scentRebaseThreshold = 15000

// MonsterTurnRunner resolves one creature's AI turn. Declared here,
// rather than importing package ai directly, the same interface-
// segregation the teacher's pkg/dungeon uses for its own Validator
// interface to avoid an import cycle with pkg/validation: scheduler
// must not depend on ai, since ai in turn consults scheduler-owned
// state like ticksUntilTurn.
type MonsterTurnRunner interface {
	MonstersTurn(rs *model.RunState, lvl *model.Level, c *model.Creature)
}

// EnvironmentUpdater runs one environment-sim pass (package
// environment), injected for the same import-cycle-avoidance reason.
// It takes the whole run state, not just the active level, since the
// Yendor Warden sweep (spec 4.G step 7) tracks the player across
// depths.
type EnvironmentUpdater interface {
	UpdateEnvironment(rs *model.RunState, lvl *model.Level)
}

// PlayerTurnEnded runs the full playerTurnEnded protocol (spec 4.F):
// the only entry point that advances the simulation clock. Callers
// pass xpxpThisTurn accumulated during the action that just resolved.
func PlayerTurnEnded(rs *model.RunState, lvl *model.Level, xpxpThisTurn int, monsters MonsterTurnRunner, env EnvironmentUpdater) {
	// Step 1: allies earn XPXP.
	awardAllyXPXP(lvl, xpxpThisTurn)

	// Step 2: reset DF message eligibility.
	lvl.ResetDFMessages()

	// Step 3: handle player falling.
	if rs.Player != nil && rs.Player.HasFlag(model.MBIsFalling) {
		handlePlayerFalling(rs)
	}

	// Step 4: the tick-advance loop.
	for !rs.GameHasEnded && (rs.Player == nil || rs.Player.TicksUntilTurn > 0) {
		delta := nextDelta(rs, lvl)
		advanceCounters(rs, lvl, delta)
		rs.AbsoluteTurnNumber += delta

		runMonsterTurns(rs, lvl, monsters)

		if lvl.TicksTillUpdateEnvironment <= 0 {
			if env != nil {
				env.UpdateEnvironment(rs, lvl)
			}
			if rs.Player != nil {
				lvl.TicksTillUpdateEnvironment = rs.Player.TicksUntilTurn
			}
		}

		decayStatuses(rs.Player, delta)
		for _, c := range lvl.Monsters {
			decayStatuses(c, delta)
		}

		lvl.Scent.DecayBy(int32(delta))

		sweepDyingCreatures(lvl)

		rs.ScentTurnNumber += delta
		if rs.ScentTurnNumber > scentRebaseThreshold {
			rs.ScentTurnNumber -= scentRebaseThreshold
			for _, visited := range rs.Levels {
				visited.Scent.DecayBy(scentRebaseThreshold)
			}
		}
	}

	// Step 5.
	rs.JustRested = false
	rs.JustSearched = false
	rs.PlayerTurnNumber++
}

func awardAllyXPXP(lvl *model.Level, amount int) {
	if amount <= 0 {
		return
	}
	for _, c := range lvl.Monsters {
		if c.State != model.StateAlly || c.HasFlag(model.MonstInanimate) {
			continue
		}
		before := c.XPXP
		c.XPXP += amount
		if before < XPXPNeededForTelepathicBond && c.XPXP >= XPXPNeededForTelepathicBond {
			c.SetFlag(model.MBTelepathicallyRevealed)
		}
	}
}

// handlePlayerFalling clears the player's MBIsFalling flag so the
// scheduler doesn't re-trigger the fall next turn. It applies no fall
// damage and does not change the player's depth; nothing in the
// action package computes fall damage either.
func handlePlayerFalling(rs *model.RunState) {
	rs.Player.ClearFlag(model.MBIsFalling)
}

// nextDelta picks the minimum ticksUntilTurn across the player and
// every active creature, clamped to at least 1 (spec 4.F step 4).
func nextDelta(rs *model.RunState, lvl *model.Level) int {
	delta := -1
	if rs.Player != nil {
		delta = rs.Player.TicksUntilTurn
	}
	for _, c := range lvl.Monsters {
		if !c.IsAlive() {
			continue
		}
		if delta < 0 || c.TicksUntilTurn < delta {
			delta = c.TicksUntilTurn
		}
	}
	if delta < 1 {
		delta = 1
	}
	return delta
}

func advanceCounters(rs *model.RunState, lvl *model.Level, delta int) {
	if rs.Player != nil {
		rs.Player.TicksUntilTurn -= delta
	}
	for _, c := range lvl.Monsters {
		c.TicksUntilTurn -= delta
	}
	lvl.TicksTillUpdateEnvironment -= delta
	lvl.MonsterSpawnFuse -= delta
}

// runMonsterTurns calls MonstersTurn for every creature whose counter
// has reached zero, in the active list's insertion order (spec 4.F
// step 4's determinism requirement).
func runMonsterTurns(rs *model.RunState, lvl *model.Level, monsters MonsterTurnRunner) {
	if monsters == nil {
		return
	}
	for _, c := range lvl.Monsters {
		if c.IsAlive() && c.TicksUntilTurn <= 0 {
			monsters.MonstersTurn(rs, lvl, c)
		}
	}
}

// decayStatuses applies per-turn status-effect decay and damage for
// one creature over delta ticks: starvation, burning, poison, and
// passive regeneration (spec 4.F step 4).
func decayStatuses(c *model.Creature, delta int) {
	if c == nil || !c.IsAlive() {
		return
	}

	if c.IsPlayer {
		if c.Status[model.StatusNutrition] > 0 {
			c.Status[model.StatusNutrition] -= delta
			if c.Status[model.StatusNutrition] < 0 {
				c.Status[model.StatusNutrition] = 0
			}
		} else {
			c.CurrentHP -= delta
		}
	}

	if c.Status[model.StatusBurning] > 0 {
		c.CurrentHP -= delta * 3
		decayStatus(c, model.StatusBurning, delta)
	}

	if c.PoisonAmount > 0 {
		c.CurrentHP -= c.PoisonAmount * delta
	}

	if c.Status[model.StatusPoisoned] > 0 {
		decayStatus(c, model.StatusPoisoned, delta)
	}

	for _, st := range []model.Status{
		model.StatusHallucinating, model.StatusConfused, model.StatusSlowed,
		model.StatusHasted, model.StatusEntranced, model.StatusParalyzed,
		model.StatusNauseous, model.StatusInvisible, model.StatusLevitating,
		model.StatusImmuneToFire, model.StatusTelepathic, model.StatusDiscordant,
		model.StatusDarkness, model.StatusShielded, model.StatusWeakened,
		model.StatusEntersLevelIn,
	} {
		decayStatus(c, st, delta)
	}

	if c.Info != nil && c.CurrentHP < c.Info.MaxHP {
		c.CurrentHP += c.Info.Regen * delta
		if c.CurrentHP > c.Info.MaxHP {
			c.CurrentHP = c.Info.MaxHP
		}
	}

	if c.CurrentHP <= 0 {
		c.SetFlag(model.MBIsDying)
	}
}

func decayStatus(c *model.Creature, st model.Status, delta int) {
	if c.Status[st] <= 0 {
		return
	}
	c.Status[st] -= delta
	if c.Status[st] < 0 {
		c.Status[st] = 0
	}
}

// sweepDyingCreatures removes creatures flagged MBIsDying from the
// active list, dropping their carried item and carried monster onto
// the floor (spec 4.F step 4's dying-creature sweep).
func sweepDyingCreatures(lvl *model.Level) {
	alive := make([]*model.Creature, 0, len(lvl.Monsters))
	var released []*model.Creature
	for _, c := range lvl.Monsters {
		if !c.HasFlag(model.MBIsDying) {
			alive = append(alive, c)
			continue
		}
		c.SetFlag(model.MBHasDied)
		if c.CarriedItem != nil {
			c.CarriedItem.Location = c.Loc
			c.CarriedItem.OnMap = true
			lvl.FloorItems = append(lvl.FloorItems, c.CarriedItem)
			c.CarriedItem = nil
		}
		if c.CarriedMonster != nil {
			c.CarriedMonster.Loc = c.Loc
			released = append(released, c.CarriedMonster)
			c.CarriedMonster = nil
		}
		if cell := lvl.Cell(c.Loc); cell != nil {
			cell.ClearFlag(model.HasMonster)
		}
	}
	lvl.Monsters = append(alive, released...)
}
