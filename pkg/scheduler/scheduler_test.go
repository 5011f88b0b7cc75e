package scheduler

import (
	"testing"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

type stubMonsters struct{ calls []model.CreatureID }

func (s *stubMonsters) MonstersTurn(rs *model.RunState, lvl *model.Level, c *model.Creature) {
	s.calls = append(s.calls, c.ID)
	c.TicksUntilTurn = 100
}

type stubEnv struct{ calls int }

func (s *stubEnv) UpdateEnvironment(rs *model.RunState, lvl *model.Level) { s.calls++ }

func newRunState() *model.RunState {
	rs := model.NewRunState()
	rs.Player.CurrentHP = 20
	rs.Player.TicksUntilTurn = 100
	rs.Player.Status[model.StatusNutrition] = 500
	return rs
}

func TestPlayerTurnEndedAdvancesTurnCounters(t *testing.T) {
	rs := newRunState()
	lvl := &model.Level{}

	PlayerTurnEnded(rs, lvl, 0, &stubMonsters{}, &stubEnv{})

	if rs.PlayerTurnNumber != 1 {
		t.Fatalf("PlayerTurnNumber = %d, want 1", rs.PlayerTurnNumber)
	}
	if rs.AbsoluteTurnNumber != 100 {
		t.Fatalf("AbsoluteTurnNumber = %d, want 100", rs.AbsoluteTurnNumber)
	}
	if rs.Player.TicksUntilTurn != 0 {
		t.Fatalf("Player.TicksUntilTurn = %d, want 0", rs.Player.TicksUntilTurn)
	}
}

func TestPlayerTurnEndedRunsMonsterTurnsInOrder(t *testing.T) {
	rs := newRunState()
	lvl := &model.Level{}
	m1 := &model.Creature{ID: 1, CurrentHP: 10, TicksUntilTurn: 50}
	m2 := &model.Creature{ID: 2, CurrentHP: 10, TicksUntilTurn: 100}
	lvl.Monsters = []*model.Creature{m1, m2}

	mon := &stubMonsters{}
	PlayerTurnEnded(rs, lvl, 0, mon, &stubEnv{})

	if len(mon.calls) == 0 || mon.calls[0] != 1 {
		t.Fatalf("expected creature 1 to act first, got %v", mon.calls)
	}
}

func TestPlayerTurnEndedClampsDeltaToAtLeastOne(t *testing.T) {
	rs := newRunState()
	rs.Player.TicksUntilTurn = 0
	lvl := &model.Level{}

	PlayerTurnEnded(rs, lvl, 0, &stubMonsters{}, &stubEnv{})

	if rs.AbsoluteTurnNumber < 1 {
		t.Fatalf("AbsoluteTurnNumber = %d, want >= 1", rs.AbsoluteTurnNumber)
	}
}

func TestPlayerTurnEndedRunsEnvironmentOnlyWhenDue(t *testing.T) {
	rs := newRunState()
	lvl := &model.Level{TicksTillUpdateEnvironment: 500}

	env := &stubEnv{}
	PlayerTurnEnded(rs, lvl, 0, &stubMonsters{}, env)

	if env.calls != 0 {
		t.Fatalf("UpdateEnvironment called %d times, want 0", env.calls)
	}

	lvl.TicksTillUpdateEnvironment = 0
	rs.Player.TicksUntilTurn = 100
	PlayerTurnEnded(rs, lvl, 0, &stubMonsters{}, env)

	if env.calls != 1 {
		t.Fatalf("UpdateEnvironment called %d times, want 1", env.calls)
	}
}

func TestAwardAllyXPXPCrossesTelepathicBondThreshold(t *testing.T) {
	lvl := &model.Level{}
	ally := &model.Creature{ID: 1, CurrentHP: 10, State: model.StateAlly, XPXP: 90}
	lvl.Monsters = []*model.Creature{ally}

	awardAllyXPXP(lvl, 20)

	if ally.XPXP != 110 {
		t.Fatalf("XPXP = %d, want 110", ally.XPXP)
	}
	if !ally.HasFlag(model.MBTelepathicallyRevealed) {
		t.Fatal("expected MBTelepathicallyRevealed to be set")
	}
}

func TestAwardAllyXPXPSkipsInanimateAndNonAllies(t *testing.T) {
	lvl := &model.Level{}
	wanderer := &model.Creature{ID: 1, CurrentHP: 10, State: model.StateWandering}
	statue := &model.Creature{ID: 2, CurrentHP: 10, State: model.StateAlly, Flags: model.MonstInanimate}
	lvl.Monsters = []*model.Creature{wanderer, statue}

	awardAllyXPXP(lvl, 50)

	if wanderer.XPXP != 0 || statue.XPXP != 0 {
		t.Fatalf("expected no XPXP awarded, got wanderer=%d statue=%d", wanderer.XPXP, statue.XPXP)
	}
}

func TestDecayStatusesStarvesPlayerAtZeroNutrition(t *testing.T) {
	c := &model.Creature{IsPlayer: true, CurrentHP: 10}
	c.Status[model.StatusNutrition] = 0

	decayStatuses(c, 3)

	if c.CurrentHP != 7 {
		t.Fatalf("CurrentHP = %d, want 7", c.CurrentHP)
	}
}

func TestDecayStatusesBurningAndPoison(t *testing.T) {
	c := &model.Creature{CurrentHP: 50}
	c.Status[model.StatusBurning] = 5
	c.PoisonAmount = 2

	decayStatuses(c, 1)

	if c.CurrentHP != 50-3-2 {
		t.Fatalf("CurrentHP = %d, want %d", c.CurrentHP, 50-3-2)
	}
	if c.Status[model.StatusBurning] != 4 {
		t.Fatalf("StatusBurning = %d, want 4", c.Status[model.StatusBurning])
	}
}

func TestDecayStatusesRegeneratesTowardMaxHP(t *testing.T) {
	c := &model.Creature{CurrentHP: 5, Info: &catalog.MonsterInfo{MaxHP: 10, Regen: 3}}

	decayStatuses(c, 1)

	if c.CurrentHP != 8 {
		t.Fatalf("CurrentHP = %d, want 8", c.CurrentHP)
	}

	decayStatuses(c, 5)

	if c.CurrentHP != 10 {
		t.Fatalf("CurrentHP = %d, want clamped to 10", c.CurrentHP)
	}
}

func TestDecayStatusesFlagsDyingAtZeroHP(t *testing.T) {
	c := &model.Creature{CurrentHP: 2}
	c.PoisonAmount = 5

	decayStatuses(c, 1)

	if !c.HasFlag(model.MBIsDying) {
		t.Fatal("expected MBIsDying to be set once HP reaches zero or below")
	}
}

func TestSweepDyingCreaturesDropsCarriedItemAndMonster(t *testing.T) {
	lvl := &model.Level{}
	carried := &model.Item{Category: model.CategoryGold}
	passenger := &model.Creature{ID: 2, CurrentHP: 5}
	dying := &model.Creature{ID: 1, Loc: grid.Pos{X: 3, Y: 4}, CarriedItem: carried, CarriedMonster: passenger}
	dying.SetFlag(model.MBIsDying)
	survivor := &model.Creature{ID: 3, CurrentHP: 5}
	lvl.Monsters = []*model.Creature{dying, survivor}
	lvl.Tiles[4][3].SetFlag(model.HasMonster)

	sweepDyingCreatures(lvl)

	if len(lvl.Monsters) != 2 {
		t.Fatalf("len(Monsters) = %d, want 2 (survivor + released passenger)", len(lvl.Monsters))
	}
	if len(lvl.FloorItems) != 1 || lvl.FloorItems[0] != carried {
		t.Fatalf("expected carried item dropped to floor, got %v", lvl.FloorItems)
	}
	if !carried.OnMap {
		t.Fatal("expected dropped item to be marked OnMap")
	}
	if lvl.Tiles[4][3].HasFlag(model.HasMonster) {
		t.Fatal("expected HasMonster cleared at dying creature's location")
	}
	if !dying.HasFlag(model.MBHasDied) {
		t.Fatal("expected MBHasDied to be set")
	}
}

func TestScentTurnNumberRebasesPast15000(t *testing.T) {
	rs := newRunState()
	rs.ScentTurnNumber = scentRebaseThreshold - 50
	rs.Player.TicksUntilTurn = 100
	lvl := &model.Level{}
	rs.Levels[1] = lvl

	PlayerTurnEnded(rs, lvl, 0, &stubMonsters{}, &stubEnv{})

	if rs.ScentTurnNumber >= scentRebaseThreshold {
		t.Fatalf("ScentTurnNumber = %d, want rebased below %d", rs.ScentTurnNumber, scentRebaseThreshold)
	}
}
