package action

import (
	"testing"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

func TestBuildHitListSingleTargetByDefault(t *testing.T) {
	lvl := &model.Level{}
	primary := &model.Creature{ID: 1, Loc: grid.Pos{X: 5, Y: 5}}
	hits := BuildHitList(lvl, grid.Pos{X: 4, Y: 5}, nil, primary)
	if len(hits) != 1 || hits[0] != primary {
		t.Fatalf("hits = %v, want [primary]", hits)
	}
}

func TestBuildHitListAttacksAllAdjacent(t *testing.T) {
	lvl := &model.Level{}
	attackerLoc := grid.Pos{X: 5, Y: 5}
	primary := &model.Creature{ID: 1, CurrentHP: 10, Loc: grid.Pos{X: 6, Y: 5}}
	bystander := &model.Creature{ID: 2, CurrentHP: 10, Loc: grid.Pos{X: 5, Y: 6}}
	lvl.Monsters = []*model.Creature{primary, bystander}

	weapon := &model.Item{}
	weapon.SetFlag(model.AttacksAllAdjacent)

	hits := BuildHitList(lvl, attackerLoc, weapon, primary)
	if len(hits) != 2 {
		t.Fatalf("hits = %v, want 2 creatures", hits)
	}
}

func TestResolveMonsterAttackKillsWeakDefender(t *testing.T) {
	r := rng.NewRunRNG(7)
	attacker := &model.Creature{Info: &catalog.MonsterInfo{Accuracy: 100, Damage: catalog.DamageRange{Lower: 5, Upper: 5}}}
	defender := newDefender(5, 5)
	defender.Info.Defense = 0

	killed := ResolveMonsterAttack(r, attacker, defender)
	if !killed {
		t.Fatal("expected defender to be killed")
	}
}
