package action

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// Keystroke is the compressed-keycode type a Recorder consumes;
// defined here rather than imported from package recording so this
// package has no dependency on the codec, mirroring the
// interface-segregation pattern used throughout (scheduler's
// MonsterTurnRunner, environment's MonsterActivator).
type Keystroke byte

// Recorder is the minimal slice of the recording buffer's API a
// player action needs: append the keystroke that caused it, and
// cancel that append if the action is aborted before it takes effect
// (spec 4.J: "recordKeystroke followed by cancelKeystroke if the
// action declines").
type Recorder interface {
	RecordKeystroke(k Keystroke)
	CancelKeystroke()
}

// Result reports what PlayerMoves/PlayerRuns actually did, for the
// caller to feed into scheduler.PlayerTurnEnded.
type Result struct {
	TurnEnded bool
	XPXPThisTurn int
	Message   string
}

// directionKeystroke maps a direction to the keystroke PlayerMoves
// records for it, in grid.NbDirs order.
var directionKeystroke = [8]Keystroke{'k', 'j', 'h', 'l', 'y', 'b', 'u', 'n'}

func keystrokeForDir(dir grid.Pos) Keystroke {
	for i, d := range grid.NbDirs {
		if d == dir {
			return directionKeystroke[i]
		}
	}
	return 0
}

// DirectionForKeystroke is keystrokeForDir's inverse, exported for
// callers replaying a recorded keystroke stream (spec 4.J) back into
// the direction PlayerMoves expects. Reports false for a keystroke
// that isn't one of the eight movement keys.
func DirectionForKeystroke(k Keystroke) (grid.Pos, bool) {
	for i, ks := range directionKeystroke {
		if ks == k {
			return grid.NbDirs[i], true
		}
	}
	return grid.Pos{}, false
}

// PlayerMoves is the canonical turn-consuming action (spec 4.I).
// It validates the target cell, applies confusion direction
// substitution, handles terrain-promotion-on-entry, tests whether the
// move is blocked, dispatches to an attack if a defender occupies the
// target, decrements Stuck, rolls nausea, and otherwise performs the
// move (swap with an ally, pick up an item, trigger falling). Returns
// a Result the caller passes to scheduler.PlayerTurnEnded.
func PlayerMoves(rs *model.RunState, lvl *model.Level, r *rng.RNG, rec Recorder, dir grid.Pos) Result {
	player := rs.Player
	target := player.Loc.Add(dir)

	if !grid.InBounds(target) {
		return Result{}
	}

	if rec != nil {
		rec.RecordKeystroke(keystrokeForDir(dir))
	}
	cancel := func() Result {
		if rec != nil {
			rec.CancelKeystroke()
		}
		return Result{}
	}

	// Step 2: confusion substitutes a random valid direction.
	if player.Status[model.StatusConfused] > 0 {
		dir = randomValidDirection(r, dir)
		target = player.Loc.Add(dir)
		if !grid.InBounds(target) {
			return cancel()
		}
	}

	// Step 10: Stuck consumes the turn without moving.
	if player.Status[model.StatusStuck] > 0 {
		player.Status[model.StatusStuck]--
		player.TicksUntilTurn = player.MovementSpeed
		return Result{TurnEnded: true}
	}

	targetCell := lvl.Cell(target)
	if targetCell == nil {
		return cancel()
	}

	obstructed := lvl.BlocksPassability(target)

	// Step 3: terrain promotion on entry, when unobstructed-by-defender.
	if _, hasDefender := lvl.CreatureAt(target); !hasDefender {
		if info := lvl.TileInfoAt(target, model.LayerDungeon); info != nil &&
			info.HasFlag(catalog.TilePromotesOnPlayerEntry) {
			promoteOnEntry(lvl, target, info)
			player.TicksUntilTurn = player.MovementSpeed
			return Result{TurnEnded: true}
		}
	}

	// Step 4: move-not-blocked test.
	if obstructed && !canAutoUnlock(rs, lvl, target) {
		return cancel()
	}

	// Step 6: defender present (a non-discordant ally is swapped with
	// by performMove instead).
	if defender, ok := lvl.CreatureAt(target); ok && (defender.State != model.StateAlly || defender.Status[model.StatusDiscordant] > 0) {
		if defender.HasFlag(model.MBCaptive) {
			freeCaptive(rs, defender)
			player.TicksUntilTurn = player.MovementSpeed
			return Result{TurnEnded: true}
		}
		xpxp := resolveAttack(r, rs, lvl, player, defender)
		player.TicksUntilTurn = player.AttackSpeed
		return Result{TurnEnded: true, XPXPThisTurn: xpxp}
	}

	// Step 11: nausea vomit roll.
	if player.Status[model.StatusNauseous] > 0 {
		r.RandPercent(25) // roll consumed; vomiting itself is a message/UI concern
	}

	// Step 12: stairs.
	if targetCell.HasFlag(model.HasStairs) {
		useStairs(rs, lvl, target)
		return Result{TurnEnded: true}
	}

	// Step 13: the move itself.
	performMove(rs, lvl, player, target)
	player.TicksUntilTurn = player.MovementSpeed
	return Result{TurnEnded: true}
}

// PlayerRuns repeats PlayerMoves in dir until disturbed: a visible
// threat, taking damage, or a change in the cardinal-passability
// shape around the player (spec 4.I's isDisturbed predicate).
func PlayerRuns(rs *model.RunState, lvl *model.Level, r *rng.RNG, rec Recorder, dir grid.Pos) []Result {
	var results []Result
	shape := cardinalShape(lvl, rs.Player.Loc)
	for {
		hpBefore := rs.Player.CurrentHP
		res := PlayerMoves(rs, lvl, r, rec, dir)
		results = append(results, res)
		if !res.TurnEnded {
			break
		}
		if rs.Disturbed || rs.Player.CurrentHP < hpBefore || !rs.Player.IsAlive() {
			break
		}
		newShape := cardinalShape(lvl, rs.Player.Loc)
		if newShape != shape {
			break
		}
		shape = newShape
	}
	return results
}

// cardinalShape samples passability of the four cardinal neighbors,
// used to detect a junction/doorway opening or closing mid-run.
func cardinalShape(lvl *model.Level, p grid.Pos) [4]bool {
	var s [4]bool
	for i, d := range grid.NbDirs[:4] {
		s[i] = !lvl.BlocksPassability(p.Add(d))
	}
	return s
}

func randomValidDirection(r *rng.RNG, preferred grid.Pos) grid.Pos {
	idx := r.RandRange(0, 3)
	return grid.NbDirs[idx]
}

func canAutoUnlock(rs *model.RunState, lvl *model.Level, target grid.Pos) bool {
	if lvl.TileInfoAt(target, model.LayerDungeon) == nil {
		return false
	}
	for _, it := range rs.Pack.Items() {
		if it.Category == model.CategoryKey {
			return true
		}
	}
	return false
}

func promoteOnEntry(lvl *model.Level, p grid.Pos, info *catalog.TileInfo) {
	cell := lvl.Cell(p)
	if cell == nil {
		return
	}
	if info.HasFlag(catalog.TileVanishesUponPromotion) {
		cell.SetTile(model.LayerDungeon, 0)
	}
}

func freeCaptive(rs *model.RunState, captive *model.Creature) {
	captive.ClearFlag(model.MBCaptive)
	captive.State = model.StateAlly
	captive.HasLeader = true
	if rs.Player != nil {
		captive.Leader = rs.Player.ID
	}
}

func useStairs(rs *model.RunState, lvl *model.Level, p grid.Pos) {
	if p == lvl.DownStairsLoc {
		rs.DepthLevel++
	} else if p == lvl.UpStairsLoc {
		rs.DepthLevel--
	}
}

// performMove updates HAS_PLAYER flags, swaps with an occupying ally,
// and picks up a floor item at the destination.
func performMove(rs *model.RunState, lvl *model.Level, player *model.Creature, target grid.Pos) {
	if ally, ok := lvl.CreatureAt(target); ok && ally.State == model.StateAlly {
		ally.Loc = player.Loc
	}
	if src := lvl.Cell(player.Loc); src != nil {
		src.ClearFlag(model.HasPlayer)
	}
	player.Loc = target
	if dst := lvl.Cell(target); dst != nil {
		dst.SetFlag(model.HasPlayer)
		if dst.HasFlag(model.HasItem) {
			pickUpItem(rs, lvl, target)
		}
	}
	if info := lvl.TileInfoAt(target, model.LayerDungeon); info != nil && info.HasFlag(catalog.TileAutoDescent) {
		player.SetFlag(model.MBIsFalling)
	}
}

func pickUpItem(rs *model.RunState, lvl *model.Level, p grid.Pos) {
	for i, it := range lvl.FloorItems {
		if it.Location != p || !it.OnMap {
			continue
		}
		if !rs.Pack.Add(it) {
			return // pack full; item stays on the floor
		}
		lvl.FloorItems = append(lvl.FloorItems[:i], lvl.FloorItems[i+1:]...)
		if cell := lvl.Cell(p); cell != nil {
			cell.ClearFlag(model.HasItem)
		}
		return
	}
}
