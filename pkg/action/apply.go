package action

import (
	"github.com/hollowcrawl/dungeoncore/pkg/model"
	"github.com/hollowcrawl/dungeoncore/pkg/rng"
)

// FoodToNutrition is the nutrition restored by a single ration,
// catalog-driven values being out of this port's scope (spec §1: item
// catalog content is a data-table concern).
const FoodToNutrition = 2000

// ApplyOutcome is what ApplyItem reports: whether the item was
// consumed (and so should be removed from the pack by the caller via
// ConsumePackItem) and the recharge delay, if any, for a charm.
// ApplyItem itself is a tagged-variant-style exhaustive switch on the
// item's category (spec 4.I's item-apply rule, spec §9's design note
// on dispatch over item/monster categories).
type ApplyOutcome struct {
	Consumed      bool
	RechargeTicks int
	Message       string
}

// ApplyItem applies a pack item by inventory letter, rolling its
// effect and mutating the player/run state. The caller is responsible
// for recording the apply command (spec 4.I) and for any prompt-driven
// target selection before calling this for staff/wand/charm items that
// need one (pre-resolved target is passed in; context.Prompts is
// consulted by the caller, not this package, keeping this package free
// of a context dependency).
func ApplyItem(r *rng.RNG, rs *model.RunState, it *model.Item) ApplyOutcome {
	switch {
	case it.Category == model.CategoryFood:
		return applyFood(rs, it)
	case it.Category == model.CategoryPotion:
		return applyPotion(r, rs, it)
	case it.Category == model.CategoryScroll:
		return applyScroll(r, rs, it)
	case it.Category == model.CategoryStaff || it.Category == model.CategoryWand:
		return applyStaffOrWand(it)
	case it.Category == model.CategoryCharm:
		return applyCharm(rs, it)
	default:
		return ApplyOutcome{}
	}
}

func applyFood(rs *model.RunState, it *model.Item) ApplyOutcome {
	rs.Player.Status[model.StatusNutrition] += FoodToNutrition
	if rs.Player.Status[model.StatusNutrition] > rs.Player.MaxStatus[model.StatusNutrition] {
		rs.Player.Status[model.StatusNutrition] = rs.Player.MaxStatus[model.StatusNutrition]
	}
	return ApplyOutcome{Consumed: true, Message: "that tasted good"}
}

// applyPotion identifies the potion on use (all potions are identified
// by drinking, good or bad — the specific per-kind effect table is a
// catalog concern out of this port's scope) and flags it consumed.
func applyPotion(r *rng.RNG, rs *model.RunState, it *model.Item) ApplyOutcome {
	it.SetFlag(model.Identified)
	return ApplyOutcome{Consumed: true}
}

func applyScroll(r *rng.RNG, rs *model.RunState, it *model.Item) ApplyOutcome {
	it.SetFlag(model.Identified)
	return ApplyOutcome{Consumed: true}
}

// applyStaffOrWand consumes one charge (never going below zero) and
// marks the item MagicDetected; the caller supplies the already-chosen
// target and resolves the bolt/zap effect (the bolt catalog is out of
// scope, per spec §1). The item itself is never consumed: neither a
// staff nor a wand is removed from the pack, even at zero charges.
func applyStaffOrWand(it *model.Item) ApplyOutcome {
	if it.Charges > 0 {
		it.Charges--
	}
	it.SetFlag(model.MagicDetected)
	return ApplyOutcome{Consumed: false}
}

// applyCharm sets Charges to a recharge delay of 100*(Enchant1+1)
// ticks (ticks until next use), off-cooldown being Charges == 0. It
// rolls no effect magnitude.
func applyCharm(rs *model.RunState, it *model.Item) ApplyOutcome {
	if it.Charges > 0 {
		return ApplyOutcome{Consumed: false, Message: "not yet recharged"}
	}
	delay := 100 * (it.Enchant1 + 1)
	it.Charges = delay
	return ApplyOutcome{Consumed: false, RechargeTicks: delay}
}

// ConsumePackItem removes a fully-consumed item from the player's
// pack. ApplyItem's caller calls it when ApplyOutcome.Consumed is set;
// no apply handler calls it itself.
func ConsumePackItem(rs *model.RunState, it *model.Item) {
	if it.InventoryLetter == 0 {
		return
	}
	rs.Pack.Remove(it.InventoryLetter)
}
