package game

import "strings"

const (
	MinRank = 1
	MaxRank = 6

	// RankScore is what each rank is worth in the final tally.
	RankScore = 5

	starringCredit = 2
	extraCash      = 1
	extraCredit    = 1
)

// Payment selects the currency used to pay for an upgrade.
type Payment int

const (
	PaymentCash Payment = iota + 1
	PaymentCredit
)

func (p Payment) String() string {
	switch p {
	case PaymentCash:
		return "cash"
	case PaymentCredit:
		return "credit"
	default:
		return "unknown"
	}
}

// ParsePayment accepts the usual spellings of the two currencies.
func ParsePayment(s string) (Payment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cash", "$", "dollar", "dollars", "money":
		return PaymentCash, nil
	case "credit", "credits", "cr", "fame":
		return PaymentCredit, nil
	default:
		return 0, ruleErrorf(ReasonInvalidUpgradeTarget, "unknown payment type %q, pay with cash or credit", s)
	}
}

// PointTracker is an actor's ledger: money, fame credits and the rehearsal
// bonus for the role currently being worked. No balance ever goes negative.
type PointTracker struct {
	cash      int
	credit    int
	rehearsal int
}

func NewPointTracker(cash, credit int) *PointTracker {
	return &PointTracker{
		cash:   max(cash, 0),
		credit: max(credit, 0),
	}
}

func (p *PointTracker) Cash() int           { return p.cash }
func (p *PointTracker) Credit() int         { return p.credit }
func (p *PointTracker) RehearsalBonus() int { return p.rehearsal }

// AddCash adds n dollars. Non-positive amounts are ignored.
func (p *PointTracker) AddCash(n int) {
	if n > 0 {
		p.cash += n
	}
}

// AddCredit adds n credits. Non-positive amounts are ignored.
func (p *PointTracker) AddCredit(n int) {
	if n > 0 {
		p.credit += n
	}
}

// Balance returns the funds available in the given currency.
func (p *PointTracker) Balance(pay Payment) int {
	switch pay {
	case PaymentCash:
		return p.cash
	case PaymentCredit:
		return p.credit
	default:
		return 0
	}
}

// Pay debits amount from the chosen currency. Nothing changes on error.
func (p *PointTracker) Pay(pay Payment, amount int) error {
	if amount < 0 {
		return ruleErrorf(ReasonInvalidUpgradeTarget, "cannot pay a negative amount")
	}

	switch pay {
	case PaymentCash:
		if p.cash < amount {
			return ruleErrorf(ReasonInsufficientFunds, "that costs $%d and you only have $%d", amount, p.cash)
		}
		p.cash -= amount
	case PaymentCredit:
		if p.credit < amount {
			return ruleErrorf(ReasonInsufficientFunds, "that costs %d credits and you only have %d", amount, p.credit)
		}
		p.credit -= amount
	default:
		return ruleErrorf(ReasonInvalidUpgradeTarget, "unknown payment type")
	}

	return nil
}

// Rehearse raises the rehearsal bonus by one, provided it stays within limit.
func (p *PointTracker) Rehearse(limit int) (int, error) {
	if p.rehearsal >= limit {
		return p.rehearsal, ruleErrorf(ReasonRehearsalLimitReached,
			"you are as rehearsed as you can be (+%d); time to act", p.rehearsal)
	}
	p.rehearsal++
	return p.rehearsal, nil
}

func (p *PointTracker) ResetRehearsal() {
	p.rehearsal = 0
}

// Score is the end-of-game total for an actor of the given rank.
func (p *PointTracker) Score(rank int) int {
	return p.cash + p.credit + rank*RankScore
}
