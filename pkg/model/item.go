package model

import "github.com/hollowcrawl/dungeoncore/pkg/grid"

// ItemCategory is a bitmask over the thirteen item categories, so an
// item-generation probability vector or a prompt filter can name a
// set of categories at once.
type ItemCategory uint32

const (
	CategoryFood ItemCategory = 1 << iota
	CategoryWeapon
	CategoryArmor
	CategoryScroll
	CategoryPotion
	CategoryStaff
	CategoryWand
	CategoryGem
	CategoryRing
	CategoryCharm
	CategoryKey
	CategoryGold
	CategoryAmulet
)

// ItemFlag is a bit in an item's flag word.
type ItemFlag uint32

const (
	Identified ItemFlag = 1 << iota
	Cursed
	Runic
	RunicIdentified
	MagicDetected
	Protected
	Flammable
	AttacksStagger
	AttacksQuickly
	AttacksExtend
	AttacksPenetrate
	AttacksAllAdjacent
	LungeAttacks
	PassAttacks
	SneakAttackBonus
	Equipped
)

// DamageRange is a (lower, upper, clumpFactor) triple fed to
// rng.RNG.RandClump to roll damage.
type DamageRange struct {
	Lower, Upper, ClumpFactor int
}

// Item is an instance of an item in play: on the map, in a pack, or
// nested inside a monster's stomach.
type Item struct {
	Category ItemCategory
	Kind     int // index into the category's catalog
	Flags    ItemFlag

	Damage         DamageRange
	ArmorValue     int
	Enchant1       int // integer magnitude; cursed <=0, positively enchanted >0
	Enchant2       int // runic/secondary kind index
	Charges        int
	StrengthReq    int
	QuiverNumber   int
	InventoryLetter byte // 'a'..'z', 0 if not in a pack
	Inscription    string

	Location    grid.Pos // (-1,-1) when not on the map
	OnMap       bool
	OriginDepth int
	SpawnTurn   int
}

// HasFlag reports whether f is set.
func (it *Item) HasFlag(f ItemFlag) bool { return it.Flags&f != 0 }

// SetFlag sets f.
func (it *Item) SetFlag(f ItemFlag) { it.Flags |= f }

// IsCursed reports the cursed invariant: enchant1 <= 0.
func (it *Item) IsCursed() bool { return it.Enchant1 <= 0 && it.HasFlag(Cursed) }

// IsPositivelyEnchanted reports enchant1 > 0.
func (it *Item) IsPositivelyEnchanted() bool { return it.Enchant1 > 0 }

// Pack is a player's inventory: up to 26 items keyed by inventory
// letter a-z, enforcing the uniqueness invariant from spec §8.
type Pack struct {
	items map[byte]*Item
}

// NewPack returns an empty pack.
func NewPack() *Pack {
	return &Pack{items: make(map[byte]*Item)}
}

// Add assigns the next free inventory letter to it and stores it.
// Returns false if the pack is full (all 26 letters in use).
func (p *Pack) Add(it *Item) bool {
	for c := byte('a'); c <= 'z'; c++ {
		if _, used := p.items[c]; !used {
			it.InventoryLetter = c
			it.OnMap = false
			p.items[c] = it
			return true
		}
	}
	return false
}

// Remove drops the item at the given letter from the pack.
func (p *Pack) Remove(letter byte) *Item {
	it := p.items[letter]
	delete(p.items, letter)
	return it
}

// Get returns the item at the given letter, or nil.
func (p *Pack) Get(letter byte) *Item {
	return p.items[letter]
}

// Items returns all packed items, sorted by inventory letter.
func (p *Pack) Items() []*Item {
	out := make([]*Item, 0, len(p.items))
	for c := byte('a'); c <= 'z'; c++ {
		if it, ok := p.items[c]; ok {
			out = append(out, it)
		}
	}
	return out
}

// LettersUnique reports the invariant that no two items share an
// inventory letter; true by construction for a *Pack, included for
// property tests that construct packs by hand.
func LettersUnique(items []*Item) bool {
	seen := make(map[byte]bool)
	for _, it := range items {
		if it.InventoryLetter == 0 {
			continue
		}
		if seen[it.InventoryLetter] {
			return false
		}
		seen[it.InventoryLetter] = true
	}
	return true
}
