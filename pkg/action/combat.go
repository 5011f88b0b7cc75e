package action

import (
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// WeaponRunic indexes the runic-variant table a weapon's Enchant2
// selects when the item carries model.Runic.
type WeaponRunic int

const (
	RunicQuietus WeaponRunic = iota
	RunicSlaying
	RunicParalysis
	RunicSlowing
	RunicConfusion
	RunicSpeed
	RunicMercy
	RunicForce
	RunicPlenty
	RunicMultiplicity
)

// ArmorRunic indexes the runic-variant table an armor piece's
// Enchant2 selects.
type ArmorRunic int

const (
	RunicAbsorption ArmorRunic = iota
	RunicReprisal
	RunicImmunity
	RunicVulnerability
	RunicBurden
	RunicArmorMultiplicity
)

// EasyMode, when true, scales player-received damage down to
// max(1, dmg/5) per spec 4.I's combat-damage rule.
var EasyMode = false

// InflictDamage applies dmg to defender, honoring protection-shield
// absorption (10:1), easy-mode scaling, shield clearing, sleep
// waking, and the fleeing-threshold state transition. Returns true if
// the defender's HP reached zero (killed).
func InflictDamage(attacker, defender *model.Creature, dmg int, ignoresShield bool) bool {
	if dmg <= 0 || defender == nil || !defender.IsAlive() {
		return false
	}
	if defender.HasFlag(model.MBAdministrativeDeath) {
		return false
	}

	if defender.IsPlayer && EasyMode {
		dmg = dmg / 5
		if dmg < 1 {
			dmg = 1
		}
	}

	if defender.Status[model.StatusShielded] > 0 && !ignoresShield {
		shieldPoints := dmg * 10
		if shieldPoints <= defender.Status[model.StatusShielded] {
			defender.Status[model.StatusShielded] -= shieldPoints
			dmg = 0
		} else {
			remaining := shieldPoints - defender.Status[model.StatusShielded]
			defender.Status[model.StatusShielded] = 0
			dmg = remaining / 10
		}
	}

	defender.ClearFlag(model.MBAbsorbing)

	if defender.State == model.StateSleeping && !defender.IsPlayer {
		defender.State = model.StateWandering
	}

	if dmg <= 0 {
		return false
	}

	before := defender.CurrentHP
	defender.PreviousHealthPoints = before
	defender.CurrentHP -= dmg
	if defender.CurrentHP < 0 {
		defender.CurrentHP = 0
	}
	if defender.Info != nil && defender.CurrentHP > defender.Info.MaxHP {
		defender.CurrentHP = defender.Info.MaxHP
	}

	if defender.Info != nil && defender.State != model.StateAlly && defender.Info.MaxHP > 0 {
		quarterHP := defender.Info.MaxHP / 4
		if before > quarterHP && defender.CurrentHP <= quarterHP && defender.CurrentHP > 0 {
			defender.State = model.StateFleeing
			defender.InvalidateSafetyMap()
		}
	}

	if defender.CurrentHP <= 0 {
		defender.SetFlag(model.MBIsDying)
		return true
	}
	return false
}

// MagicWeaponHit resolves a weapon's runic effect on a successful
// attack, when the weapon is Runic and the activation roll succeeds.
// Dying defenders get nothing except Speed/Plenty, which act on the
// attacker rather than the defender. Returns true if the runic
// activated (triggering auto-identify at the call site).
func MagicWeaponHit(r *rng.RNG, attacker, defender *model.Creature, weapon *model.Item, backstab bool, killed bool) bool {
	if weapon == nil || !weapon.HasFlag(model.Runic) {
		return false
	}
	chance := 10 + weapon.Enchant1*3
	if backstab {
		chance += 20
	}
	if !r.RandPercent(chance) {
		return false
	}

	switch WeaponRunic(weapon.Enchant2) {
	case RunicSpeed:
		attacker.TicksUntilTurn = -1
		return true
	case RunicPlenty:
		return true
	}

	if killed || defender == nil {
		return false
	}

	switch WeaponRunic(weapon.Enchant2) {
	case RunicQuietus, RunicSlaying:
		defender.CurrentHP = 0
		defender.SetFlag(model.MBIsDying)
	case RunicParalysis:
		defender.Status[model.StatusParalyzed] += 20
	case RunicSlowing:
		defender.Status[model.StatusSlowed] += 20
	case RunicConfusion:
		defender.Status[model.StatusConfused] += 15
	case RunicMercy:
		if defender.Info != nil {
			defender.CurrentHP += defender.Info.MaxHP / 4
			if defender.CurrentHP > defender.Info.MaxHP {
				defender.CurrentHP = defender.Info.MaxHP
			}
		}
	case RunicForce:
		// Knockback itself is a positional effect resolved by the
		// caller (the move-resolution step has the direction on
		// hand); this runic only marks that it fired.
	case RunicMultiplicity:
		// Cloning the defender requires level-list mutation the
		// caller performs once the clone's starting stats are known;
		// signaling activation here is sufficient for auto-identify.
	}
	return true
}

// ApplyArmorRunicEffect resolves an armor piece's runic effect against
// an incoming hit, returning the (possibly modified) damage and
// whether the runic activated. meleeHit distinguishes Reprisal/
// Multiplicity, which only trigger on melee contact.
func ApplyArmorRunicEffect(r *rng.RNG, attacker, defender *model.Creature, armor *model.Item, dmg int, meleeHit bool, attackerInVorpalClass bool) (int, bool) {
	if armor == nil || !armor.HasFlag(model.Runic) {
		return dmg, false
	}

	switch ArmorRunic(armor.Enchant2) {
	case RunicAbsorption:
		reduction := r.RandRange(0, armor.Enchant1*3)
		dmg -= reduction
		if dmg < 0 {
			dmg = 0
		}
		return dmg, true
	case RunicReprisal:
		if !meleeHit || attacker == nil {
			return dmg, false
		}
		InflictDamage(defender, attacker, dmg/2, false)
		return dmg, true
	case RunicImmunity:
		if attackerInVorpalClass {
			return 0, true
		}
		return dmg, false
	case RunicVulnerability:
		return dmg * 2, true
	case RunicBurden:
		if r.RandPercent(10) {
			armor.StrengthReq++
		}
		return dmg, true
	case RunicArmorMultiplicity:
		if !meleeHit {
			return dmg, false
		}
		// Cloning the attacker is a level-list mutation the move
		// resolver performs; signaling activation suffices here.
		return dmg, true
	}
	return dmg, false
}
