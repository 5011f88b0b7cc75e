package action

import (
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// xpxpPerKill is the ally-experience award for a kill the player
// lands, accumulated into the turn's xpxpThisTurn per spec 4.F step 1.
const xpxpPerKill = 10

// resolveAttack rolls accuracy, applies damage, resolves the
// attacker's weapon runic and the defender's armor runic, and returns
// the xpxp earned this attack (spec 4.I step 6, 4.I's combat-damage
// and runic-effect rules).
func resolveAttack(r *rng.RNG, rs *model.RunState, lvl *model.Level, attacker, defender *model.Creature) int {
	weapon := rs.Weapon
	armor := rs.Armor
	xpxp := 0

	for _, target := range BuildHitList(lvl, attacker.Loc, weapon, defender) {
		if !attackHits(r, attacker, target, weapon) {
			continue
		}

		dmg := rollDamage(r, weapon, attacker)
		if armor != nil && target == rs.Player {
			dmg, _ = ApplyArmorRunicEffect(r, attacker, target, armor, dmg, true, false)
		}

		killed := InflictDamage(attacker, target, dmg, false)

		if weapon != nil {
			backstab := target.State == model.StateSleeping
			if MagicWeaponHit(r, attacker, target, weapon, backstab, killed) {
				weapon.SetFlag(model.RunicIdentified)
			}
		}

		if killed {
			target.SetFlag(model.MBIsDying)
			xpxp += xpxpPerKill
		}
	}
	return xpxp
}

// ResolveMonsterAttack runs a melee attack by a monster (no weapon,
// no armor lookup by reference — monsters carry their catalog damage
// directly) against defender, returning true if the defender was
// killed. Used by package ai for the "attempt to attack an adjacent
// enemy" step of spec 4.H.
func ResolveMonsterAttack(r *rng.RNG, attacker, defender *model.Creature) bool {
	if !attackHits(r, attacker, defender, nil) {
		return false
	}
	dmg := rollDamage(r, nil, attacker)
	return InflictDamage(attacker, defender, dmg, false)
}

// attackHits rolls the attacker's accuracy against the defender's
// defense, both catalog-driven for monsters and a flat baseline for
// the player (the player's accuracy/defense catalog entry is the
// out-of-scope static-table concern spec §1 names).
func attackHits(r *rng.RNG, attacker, defender *model.Creature, weapon *model.Item) bool {
	accuracy := 70
	if attacker.Info != nil {
		accuracy = attacker.Info.Accuracy
	}
	defense := 0
	if defender.Info != nil {
		defense = defender.Info.Defense
	}
	chance := accuracy - defense
	if chance < 5 {
		chance = 5
	}
	if chance > 95 {
		chance = 95
	}
	return r.RandPercent(chance)
}

// rollDamage rolls the equipped weapon's damage range, falling back
// to the attacker's innate catalog damage when unarmed.
func rollDamage(r *rng.RNG, weapon *model.Item, attacker *model.Creature) int {
	if weapon != nil {
		return r.RandClump(weapon.Damage.Lower, weapon.Damage.Upper, weapon.Damage.ClumpFactor)
	}
	if attacker.Info != nil {
		d := attacker.Info.Damage
		return r.RandClump(d.Lower, d.Upper, d.ClumpFactor)
	}
	return r.RandRange(1, 3)
}

// BuildHitList returns every defender the attack should strike: the
// primary target, plus every other creature adjacent to attackerLoc
// when the weapon carries AttacksAllAdjacent (spec 4.I step 6).
func BuildHitList(lvl *model.Level, attackerLoc grid.Pos, weapon *model.Item, primary *model.Creature) []*model.Creature {
	list := []*model.Creature{primary}
	if weapon == nil || !weapon.HasFlag(model.AttacksAllAdjacent) {
		return list
	}
	for _, d := range grid.NbDirs {
		c, ok := lvl.CreatureAt(attackerLoc.Add(d))
		if !ok || c == primary {
			continue
		}
		list = append(list, c)
	}
	return list
}
