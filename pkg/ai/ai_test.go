package ai

import (
	"testing"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

func newRunStateWithPlayer(p grid.Pos) *model.RunState {
	rs := model.NewRunState()
	rs.Player.Loc = p
	rs.Player.CurrentHP = 20
	return rs
}

func newMonster(p grid.Pos) *model.Creature {
	return &model.Creature{
		Info:      &catalog.MonsterInfo{MaxHP: 10, Accuracy: 70, Defense: 0, Damage: catalog.DamageRange{Lower: 1, Upper: 3}},
		Loc:       p,
		CurrentHP: 10,
		State:     model.StateWandering,
	}
}

func TestMonstersTurnSleepingDoesNotAct(t *testing.T) {
	a := New(rng.NewRunRNG(1))
	rs := newRunStateWithPlayer(grid.Pos{X: 0, Y: 0})
	lvl := &model.Level{}
	m := newMonster(grid.Pos{X: 20, Y: 20})
	m.State = model.StateSleeping
	lvl.Monsters = []*model.Creature{m}

	a.MonstersTurn(rs, lvl, m)

	if m.Loc != (grid.Pos{X: 20, Y: 20}) {
		t.Fatal("sleeping monster far from player should not move")
	}
	if m.State != model.StateSleeping {
		t.Fatalf("State = %v, want StateSleeping", m.State)
	}
}

func TestMonstersTurnWakesOnDamage(t *testing.T) {
	a := New(rng.NewRunRNG(1))
	rs := newRunStateWithPlayer(grid.Pos{X: 0, Y: 0})
	lvl := &model.Level{}
	m := newMonster(grid.Pos{X: 20, Y: 20})
	m.State = model.StateSleeping
	m.CurrentHP = 5
	m.PreviousHealthPoints = 10
	lvl.Monsters = []*model.Creature{m}

	a.MonstersTurn(rs, lvl, m)

	if m.State == model.StateSleeping {
		t.Fatal("monster that took damage should wake")
	}
}

func TestMonstersTurnDeadCreatureIsNoOp(t *testing.T) {
	a := New(rng.NewRunRNG(1))
	rs := newRunStateWithPlayer(grid.Pos{X: 0, Y: 0})
	lvl := &model.Level{}
	m := newMonster(grid.Pos{X: 5, Y: 5})
	m.CurrentHP = 0
	m.SetFlag(model.MBHasDied)

	a.MonstersTurn(rs, lvl, m)

	if m.Loc != (grid.Pos{X: 5, Y: 5}) {
		t.Fatal("dead creature should never move")
	}
}

func TestMonstersTurnAttacksAdjacentPlayer(t *testing.T) {
	a := New(rng.NewRunRNG(5))
	rs := newRunStateWithPlayer(grid.Pos{X: 10, Y: 10})
	lvl := &model.Level{}
	m := newMonster(grid.Pos{X: 10, Y: 9})
	lvl.Monsters = []*model.Creature{m}

	a.MonstersTurn(rs, lvl, m)

	if m.TicksUntilTurn != m.AttackSpeed {
		t.Fatalf("TicksUntilTurn = %d, want AttackSpeed %d (attacker should use attack speed)", m.TicksUntilTurn, m.AttackSpeed)
	}
}

func TestMonsterAvoidsNoTerrainDataOrLevitating(t *testing.T) {
	lvl := &model.Level{}
	c := &model.Creature{}
	// With no catalog attached, lvl.TileInfoAt always returns nil, so no
	// hazard is ever reported — this exercises the safe default when
	// terrain data is unavailable and the levitation short-circuit path.
	if MonsterAvoids(lvl, c, grid.Pos{X: 1, Y: 1}) {
		t.Fatal("expected no avoidance without catalog-backed terrain data")
	}
	c.Status[model.StatusLevitating] = 1
	if MonsterAvoids(lvl, c, grid.Pos{X: 1, Y: 1}) {
		t.Fatal("levitating creature should never avoid via MonsterAvoids's early return")
	}
}
