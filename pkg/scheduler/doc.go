// Package scheduler drives the simulation clock: the tick-based loop
// that advances creatures' ticksUntilTurn counters, calls monster
// turns and environment updates in deterministic order, and decays
// per-turn status effects (spec 4.F). The only entry point that
// advances the clock is PlayerTurnEnded, called once after the
// player's action has been resolved (package action).
package scheduler
