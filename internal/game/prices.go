package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// UpgradePrices is the casting office price list. Entry i is the price of
// buying i+1 ranks in one purchase, so a jump from rank 1 to rank 4 costs
// entry 2.
type UpgradePrices struct {
	Cash   []int `json:"cash"`
	Credit []int `json:"credit"`
}

// priceEntries is one entry per possible rank jump.
const priceEntries = MaxRank - MinRank

// Validate satisfies storage.ValidatingSpec.
func (p *UpgradePrices) Validate() error {
	el := errors.NewErrorList()

	check := func(name string, prices []int) {
		if len(prices) != priceEntries {
			el.Add(fmt.Errorf("%s: expected %d prices, found %d", name, priceEntries, len(prices)))
		}
		for i, v := range prices {
			if v < 0 {
				el.Add(fmt.Errorf("%s: price %d is negative", name, i))
			}
		}
	}
	check("cash", p.Cash)
	check("credit", p.Credit)

	return el.Err()
}

// Cost prices an upgrade from current to target rank. Validation and the
// charge both go through here so they can never disagree.
func (p *UpgradePrices) Cost(current, target int, pay Payment) (int, error) {
	if target <= current {
		return 0, ruleErrorf(ReasonInvalidUpgradeTarget, "rank %d is not above your current rank of %d", target, current)
	}
	if target > MaxRank {
		return 0, ruleErrorf(ReasonInvalidUpgradeTarget, "rank %d is beyond the top rank of %d", target, MaxRank)
	}

	var table []int
	switch pay {
	case PaymentCash:
		table = p.Cash
	case PaymentCredit:
		table = p.Credit
	default:
		return 0, ruleErrorf(ReasonInvalidUpgradeTarget, "unknown payment type, pay with cash or credit")
	}

	idx := target - current - 1
	if idx < 0 || idx >= len(table) {
		return 0, ruleErrorf(ReasonInvalidUpgradeTarget, "the casting office has no price for rank %d", target)
	}
	return table[idx], nil
}

// UpgradeOption is one row of the price list as seen by an actor.
type UpgradeOption struct {
	Rank   int `json:"rank"`
	Cash   int `json:"cash"`
	Credit int `json:"credit"`
}

// Options lists every rank an actor at rank current could buy.
func (p *UpgradePrices) Options(current int) []UpgradeOption {
	var opts []UpgradeOption
	for target := current + 1; target <= MaxRank; target++ {
		cash, cashErr := p.Cost(current, target, PaymentCash)
		credit, creditErr := p.Cost(current, target, PaymentCredit)
		if cashErr != nil || creditErr != nil {
			continue
		}
		opts = append(opts, UpgradeOption{Rank: target, Cash: cash, Credit: credit})
	}
	return opts
}
