package game

import "github.com/pixil98/go-deadwood/internal/dice"

type GameBoardOpt func(*GameBoard)

// WithDice sets the source of every roll and shuffle on the board.
func WithDice(src dice.Source) GameBoardOpt {
	return func(b *GameBoard) {
		b.dice = src
	}
}

// WithPublisher sends board events to pub.
func WithPublisher(pub Publisher) GameBoardOpt {
	return func(b *GameBoard) {
		b.pub = pub
	}
}

// WithRoundsPerDay makes each day last n trips around the table instead of
// one.
func WithRoundsPerDay(n int) GameBoardOpt {
	return func(b *GameBoard) {
		if n > 0 {
			b.turns.roundsPerDay = n
		}
	}
}
