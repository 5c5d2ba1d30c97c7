package game

import (
	"slices"

	"github.com/pixil98/go-deadwood/internal/dice"
)

// Payout is the wrap bonus paid to one actor.
type Payout struct {
	Actor string `json:"actor"`
	Role  string `json:"role"`
	Extra bool   `json:"extra,omitempty"`
	Slot  int    `json:"slot,omitempty"`
	Cash  int    `json:"cash"`
}

// WrapResult describes a scene wrap.
type WrapResult struct {
	Scene     string   `json:"scene"`
	SceneName string   `json:"scene_name"`
	Dice      []int    `json:"dice,omitempty"`  // bonus dice, highest first
	Slots     []int    `json:"slots,omitempty"` // slot totals, slot 1 first
	Payouts   []Payout `json:"payouts"`
}

// rollBonus rolls one die per point of budget, highest first.
func rollBonus(r dice.Roller, budget int) []int {
	rolls := dice.RollN(r, budget)
	slices.SortFunc(rolls, func(a, b int) int {
		return b - a
	})
	return rolls
}

// DistributeDice deals dice round-robin across numSlots payout slots: the
// die at position i goes to slot i mod numSlots. With dice sorted high to
// low the lowest numbered slots get the best dice and any remainder. The
// returned slice holds slot totals, index 0 being slot 1.
func DistributeDice(rolls []int, numSlots int) []int {
	if numSlots <= 0 {
		return nil
	}
	slots := make([]int, numSlots)
	for i, r := range rolls {
		slots[i%numSlots] += r
	}
	return slots
}
