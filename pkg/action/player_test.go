package action

import (
	"testing"

	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

type fakeRecorder struct {
	recorded []Keystroke
	canceled int
}

func (f *fakeRecorder) RecordKeystroke(k Keystroke) { f.recorded = append(f.recorded, k) }
func (f *fakeRecorder) CancelKeystroke()            { f.canceled++ }

func newRunStateAt(p grid.Pos) (*model.RunState, *model.Level) {
	rs := model.NewRunState()
	rs.Player.Loc = p
	rs.Player.CurrentHP = 20
	rs.Player.MovementSpeed = 100
	rs.Player.AttackSpeed = 100
	lvl := &model.Level{}
	return rs, lvl
}

func TestPlayerMovesIntoOpenSpace(t *testing.T) {
	rs, lvl := newRunStateAt(grid.Pos{X: 10, Y: 10})
	r := rng.NewRunRNG(1)
	rec := &fakeRecorder{}

	res := PlayerMoves(rs, lvl, r, rec, grid.Pos{X: 1, Y: 0})

	if !res.TurnEnded {
		t.Fatalf("expected move to end the turn, got %+v", res)
	}
	if rs.Player.Loc != (grid.Pos{X: 11, Y: 10}) {
		t.Fatalf("Player.Loc = %v, want {11 10}", rs.Player.Loc)
	}
	if len(rec.recorded) != 1 {
		t.Fatalf("expected one recorded keystroke, got %d", len(rec.recorded))
	}
	if rec.canceled != 0 {
		t.Fatalf("expected no cancellation, got %d", rec.canceled)
	}
}

func TestPlayerMovesOutOfBoundsIsRejectedWithoutRecording(t *testing.T) {
	rs, lvl := newRunStateAt(grid.Pos{X: 0, Y: 0})
	r := rng.NewRunRNG(1)
	rec := &fakeRecorder{}

	res := PlayerMoves(rs, lvl, r, rec, grid.Pos{X: -1, Y: 0})

	if res.TurnEnded {
		t.Fatal("expected out-of-bounds move to not end the turn")
	}
	if len(rec.recorded) != 0 {
		t.Fatalf("expected no keystroke recorded for an out-of-bounds move, got %d", len(rec.recorded))
	}
}

func TestPlayerMovesIntoDefenderAttacks(t *testing.T) {
	rs, lvl := newRunStateAt(grid.Pos{X: 10, Y: 10})
	defender := newDefender(10, 10)
	defender.Loc = grid.Pos{X: 11, Y: 10}
	lvl.Monsters = []*model.Creature{defender}
	r := rng.NewRunRNG(3)
	rec := &fakeRecorder{}

	res := PlayerMoves(rs, lvl, r, rec, grid.Pos{X: 1, Y: 0})

	if !res.TurnEnded {
		t.Fatal("expected attack to end the turn")
	}
	if rs.Player.Loc != (grid.Pos{X: 10, Y: 10}) {
		t.Fatal("expected player to stay in place when attacking")
	}
	if rs.Player.TicksUntilTurn != rs.Player.AttackSpeed {
		t.Fatalf("TicksUntilTurn = %d, want AttackSpeed %d", rs.Player.TicksUntilTurn, rs.Player.AttackSpeed)
	}
}

func TestPlayerMovesStuckConsumesTurnWithoutMoving(t *testing.T) {
	rs, lvl := newRunStateAt(grid.Pos{X: 10, Y: 10})
	rs.Player.Status[model.StatusStuck] = 3
	r := rng.NewRunRNG(1)
	rec := &fakeRecorder{}

	res := PlayerMoves(rs, lvl, r, rec, grid.Pos{X: 1, Y: 0})

	if !res.TurnEnded {
		t.Fatal("expected stuck turn to still end")
	}
	if rs.Player.Loc != (grid.Pos{X: 10, Y: 10}) {
		t.Fatal("expected stuck player to not move")
	}
	if rs.Player.Status[model.StatusStuck] != 2 {
		t.Fatalf("Stuck = %d, want 2", rs.Player.Status[model.StatusStuck])
	}
}
