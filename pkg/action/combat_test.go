package action

import (
	"testing"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

func newDefender(maxHP, currentHP int) *model.Creature {
	return &model.Creature{
		Info:      &catalog.MonsterInfo{MaxHP: maxHP},
		CurrentHP: currentHP,
	}
}

func TestInflictDamageKillsAtZeroHP(t *testing.T) {
	defender := newDefender(10, 5)
	killed := InflictDamage(nil, defender, 5, false)
	if !killed {
		t.Fatal("expected kill")
	}
	if defender.CurrentHP != 0 {
		t.Fatalf("CurrentHP = %d, want 0", defender.CurrentHP)
	}
	if !defender.HasFlag(model.MBIsDying) {
		t.Fatal("expected MBIsDying set")
	}
}

func TestInflictDamageShieldAbsorption(t *testing.T) {
	defender := newDefender(20, 20)
	defender.Status[model.StatusShielded] = 100
	killed := InflictDamage(nil, defender, 5, false)
	if killed {
		t.Fatal("shielded hit should not kill")
	}
	if defender.CurrentHP != 20 {
		t.Fatalf("CurrentHP = %d, want unchanged 20", defender.CurrentHP)
	}
	if defender.Status[model.StatusShielded] != 50 {
		t.Fatalf("Shielded = %d, want 50", defender.Status[model.StatusShielded])
	}
}

func TestInflictDamagePartialShieldOverflow(t *testing.T) {
	defender := newDefender(20, 20)
	defender.Status[model.StatusShielded] = 20
	InflictDamage(nil, defender, 5, false)
	if defender.Status[model.StatusShielded] != 0 {
		t.Fatalf("Shielded = %d, want 0", defender.Status[model.StatusShielded])
	}
	// 5 dmg * 10 = 50 shield points needed; 20 available leaves 30
	// unabsorbed, i.e. 3 dmg gets through.
	if defender.CurrentHP != 17 {
		t.Fatalf("CurrentHP = %d, want 17", defender.CurrentHP)
	}
}

func TestInflictDamageFleeThreshold(t *testing.T) {
	defender := newDefender(20, 20)
	InflictDamage(nil, defender, 15, false)
	if defender.State != model.StateFleeing {
		t.Fatalf("State = %v, want StateFleeing", defender.State)
	}
}

func TestInflictDamageEasyModeScaling(t *testing.T) {
	EasyMode = true
	defer func() { EasyMode = false }()
	defender := newDefender(20, 20)
	defender.IsPlayer = true
	InflictDamage(nil, defender, 10, false)
	if defender.CurrentHP != 18 {
		t.Fatalf("CurrentHP = %d, want 18 (10/5=2 dmg)", defender.CurrentHP)
	}
}

func TestInflictDamageDeadDefenderNoOp(t *testing.T) {
	defender := newDefender(20, 0)
	if InflictDamage(nil, defender, 5, false) {
		t.Fatal("already-dead defender should not report a kill")
	}
}

func TestMagicWeaponHitRequiresRunicFlag(t *testing.T) {
	r := rng.NewRunRNG(1)
	weapon := &model.Item{}
	if MagicWeaponHit(r, nil, newDefender(10, 10), weapon, false, false) {
		t.Fatal("non-runic weapon should never activate")
	}
}

func TestMagicWeaponHitQuietusKills(t *testing.T) {
	r := rng.NewRunRNG(1)
	weapon := &model.Item{Enchant1: 30, Enchant2: int(RunicQuietus)}
	weapon.SetFlag(model.Runic)
	defender := newDefender(20, 20)
	// Enchant1=30 drives chance to 100, guaranteeing activation
	// regardless of the RNG stream.
	if !MagicWeaponHit(r, nil, defender, weapon, false, false) {
		t.Fatal("expected runic activation at 100% chance")
	}
	if defender.CurrentHP != 0 || !defender.HasFlag(model.MBIsDying) {
		t.Fatal("expected RunicQuietus to instakill the defender")
	}
}

func TestApplyArmorRunicEffectNonRunicNoOp(t *testing.T) {
	r := rng.NewRunRNG(1)
	dmg, activated := ApplyArmorRunicEffect(r, nil, nil, &model.Item{}, 10, true, false)
	if activated || dmg != 10 {
		t.Fatalf("non-runic armor should pass damage through unchanged, got dmg=%d activated=%v", dmg, activated)
	}
}

func TestApplyArmorRunicEffectVulnerabilityDoublesDamage(t *testing.T) {
	r := rng.NewRunRNG(1)
	armor := &model.Item{Enchant2: int(RunicVulnerability)}
	armor.SetFlag(model.Runic)
	dmg, activated := ApplyArmorRunicEffect(r, nil, nil, armor, 10, true, false)
	if !activated || dmg != 20 {
		t.Fatalf("dmg=%d activated=%v, want 20/true", dmg, activated)
	}
}
