// Package action resolves a player's turn-consuming actions —
// movement, attack, item use — and the combat-damage math shared by
// player and monster attacks (spec 4.I). PlayerMoves is the canonical
// entry point; on success it reports the ticks consumed and the
// xpxpThisTurn earned, which the caller (the run-orchestration layer)
// feeds into scheduler.PlayerTurnEnded.
//
// Grounded on pkg/synthesis/grammar.go's rule-dispatch idiom: named
// rule functions, each checked and applied in a fixed order against a
// single mutable state value, each returning an applied/not-applied
// signal the caller uses to decide whether to keep trying the next
// rule. Here the "rules" are the player-move steps of spec 4.I
// (confusion substitution, terrain promotion, move-blocked test,
// defender-present dispatch, stuck/seized handling, stairs, the final
// move) instead of dungeon-graph production rules, but the shape — an
// ordered sequence of small functions over mutable state, each
// returning whether it fired — carries over directly.
package action
