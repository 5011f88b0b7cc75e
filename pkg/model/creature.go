package model

import (
	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/pathing"
)

// CreatureID is an opaque handle into a level's creature arena. Weak
// references (leader, seizedBy, ...) are stored as CreatureID and
// resolved through Level.CreatureByID, never as raw pointers: a creature
// that has died and been swept leaves behind a dangling ID that
// simply fails to resolve, rather than a use-after-free (design note
// in spec §9).
type CreatureID uint32

// Status indexes the per-creature status-effect array.
type Status int

const (
	StatusNutrition Status = iota
	StatusPoisoned
	StatusHallucinating
	StatusConfused
	StatusSlowed
	StatusHasted
	StatusBurning
	StatusEntranced
	StatusStuck
	StatusParalyzed
	StatusNauseous
	StatusInvisible
	StatusLevitating
	StatusImmuneToFire
	StatusTelepathic
	StatusDiscordant
	StatusDarkness
	StatusShielded
	StatusWeakened
	StatusEntersLevelIn
	NumStatuses
)

// CreatureFlag is a bit in a creature's bookkeeping flag word.
type CreatureFlag uint32

const (
	MBIsDying CreatureFlag = 1 << iota
	MBHasDied
	MBCaptive
	MBSeized
	MBSeizing
	MBIsDormant
	MBIsFalling
	MBAdministrativeDeath
	MBApproachingUpstairs
	MBApproachingDownstairs
	MBPreplaced
	MBTelepathicallyRevealed
	MBWillFlash
	MBAbsorbing
	MonstInanimate
	MonstGetsTurnOnActivation
	MonstAttackableThruWalls
)

// CreatureState is the AI state driving per-turn behavior (spec 4.H).
type CreatureState int

const (
	StateSleeping CreatureState = iota
	StateWandering
	StateTrackingScent
	StateFleeing
	StateAlly
)

// Creature is a monster or the player.
type Creature struct {
	ID       CreatureID
	Info     *catalog.MonsterInfo
	IsPlayer bool

	Loc                grid.Pos
	Depth              int
	CurrentHP          int
	PreviousHealthPoints int

	Status    [NumStatuses]int
	MaxStatus [NumStatuses]int

	Flags         CreatureFlag
	State         CreatureState
	TicksUntilTurn int
	MovementSpeed int
	AttackSpeed   int

	CarriedItem    *Item
	CarriedMonster *Creature

	Leader      CreatureID
	HasLeader   bool
	MachineHome int
	SpawnDepth  int

	PoisonAmount   int
	WeaknessAmount int
	XPXP           int

	TargetCorpseLoc  grid.Pos
	TargetCorpseName string

	FlashStrength int
	FlashColor    Color

	// MapToMe and SafetyMap are per-creature Dijkstra distance grids,
	// recomputed lazily on invalidation (spec 4.H). Nil until first
	// computed.
	MapToMe   *grid.Grid
	SafetyMap *grid.Grid

	mapToMeStale   bool
	safetyMapStale bool
}

// HasFlag reports whether f is set.
func (c *Creature) HasFlag(f CreatureFlag) bool { return c.Flags&f != 0 }

// SetFlag sets f.
func (c *Creature) SetFlag(f CreatureFlag) { c.Flags |= f }

// ClearFlag clears f.
func (c *Creature) ClearFlag(f CreatureFlag) { c.Flags &^= f }

// InvalidateMapToMe marks the per-creature distance map stale; it is
// recomputed the next time it's consulted (package ai).
func (c *Creature) InvalidateMapToMe() { c.mapToMeStale = true }

// MapToMeStale reports whether MapToMe needs recomputation.
func (c *Creature) MapToMeStale() bool { return c.mapToMeStale || c.MapToMe == nil }

// InvalidateSafetyMap marks the safety map stale.
func (c *Creature) InvalidateSafetyMap() { c.safetyMapStale = true }

// SafetyMapStale reports whether SafetyMap needs recomputation.
func (c *Creature) SafetyMapStale() bool { return c.safetyMapStale || c.SafetyMap == nil }

// MarkMapToMeFresh clears the stale flag after recomputation.
func (c *Creature) MarkMapToMeFresh() { c.mapToMeStale = false }

// MarkSafetyMapFresh clears the stale flag after recomputation.
func (c *Creature) MarkSafetyMapFresh() { c.safetyMapStale = false }

// IsAlive reports whether the creature is neither dying nor dead.
func (c *Creature) IsAlive() bool {
	return !c.HasFlag(MBIsDying) && !c.HasFlag(MBHasDied) && c.CurrentHP > 0
}

var _ pathing.TravelerInfo = (*Creature)(nil)

// CanPassSecretDoors reports whether this creature may path through a
// secret door once discovered. No monster in this port's scope has
// that ability, so this is unconditionally false; a creature-specific
// ability flag could override it if the catalog ever defines one.
func (c *Creature) CanPassSecretDoors() bool {
	return false
}
