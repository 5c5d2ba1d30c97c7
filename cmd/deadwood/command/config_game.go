package command

import (
	"fmt"
	"log/slog"

	"github.com/pixil98/go-deadwood/internal/dice"
	"github.com/pixil98/go-deadwood/internal/display"
	"github.com/pixil98/go-deadwood/internal/game"
	"github.com/pixil98/go-deadwood/internal/player"
	"github.com/pixil98/go-errors"
)

// minWidth keeps wrapped output readable.
const minWidth = 20

// GameConfig sets up the table. With no players listed the session runs a
// casting call on the console.
type GameConfig struct {
	Players      []string `json:"players"`
	Seed         int64    `json:"seed"`
	Width        int      `json:"width"`
	RoundsPerDay int      `json:"rounds_per_day"`
}

func (c *GameConfig) validate() error {
	el := errors.NewErrorList()

	if n := len(c.Players); n > 0 && (n < game.MinPlayers || n > game.MaxPlayers) {
		el.Add(fmt.Errorf("players: expected %d to %d names, found %d", game.MinPlayers, game.MaxPlayers, n))
	}
	seen := map[string]bool{}
	for i, name := range c.Players {
		k := game.Key(name)
		if k == "" {
			el.Add(fmt.Errorf("players: name %d is blank", i))
			continue
		}
		if seen[k] {
			el.Add(fmt.Errorf("players: %q is listed twice", name))
		}
		seen[k] = true
	}

	if c.Width != 0 && c.Width < minWidth {
		el.Add(fmt.Errorf("width must be at least %d", minWidth))
	}
	if c.RoundsPerDay < 0 {
		el.Add(fmt.Errorf("rounds_per_day cannot be negative"))
	}

	return el.Err()
}

func (c *GameConfig) width() int {
	if c.Width == 0 {
		return display.DefaultWidth
	}
	return c.Width
}

// boardBuilder deals a fresh board for the seated players. A zero seed draws
// a new one for every game.
func (c *GameConfig) boardBuilder(dict *game.Dictionary, pub game.Publisher) player.BoardBuilder {
	return func(players []string) (*game.GameBoard, error) {
		seed := c.Seed
		if seed == 0 {
			var err error
			seed, err = dice.NewSeed()
			if err != nil {
				return nil, fmt.Errorf("drawing seed: %w", err)
			}
		}

		opts := []game.GameBoardOpt{game.WithDice(dice.NewRandom(seed))}
		if pub != nil {
			opts = append(opts, game.WithPublisher(pub))
		}
		if c.RoundsPerDay > 0 {
			opts = append(opts, game.WithRoundsPerDay(c.RoundsPerDay))
		}

		slog.Info("dealing board", "seed", seed, "players", len(players))
		return game.NewGameBoard(dict, players, opts...)
	}
}
