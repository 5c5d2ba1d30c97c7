package player

import (
	"testing"

	"github.com/pixil98/go-deadwood/internal/commands"
	"github.com/pixil98/go-deadwood/internal/dice"
	"github.com/pixil98/go-deadwood/internal/display"
	"github.com/pixil98/go-deadwood/internal/game"
	"github.com/pixil98/go-deadwood/internal/storage"
)

func testDictionary(t *testing.T) *game.Dictionary {
	t.Helper()

	rooms, err := storage.NewMemoryStore(map[string]*game.Room{
		"trailer": {
			Name:     "Trailer",
			Kind:     game.RoomKindTrailer,
			Adjacent: []string{"saloon", "office"},
		},
		"office": {
			Name:     "Casting Office",
			Kind:     game.RoomKindCastingOffice,
			Adjacent: []string{"trailer"},
			Prices:   storage.NewSmartIdentifier[*game.UpgradePrices]("standard"),
		},
		"saloon": {
			Name:     "Saloon",
			Kind:     game.RoomKindFilmSet,
			Adjacent: []string{"trailer"},
			Shots:    2,
		},
	})
	if err != nil {
		t.Fatalf("rooms: %v", err)
	}

	scenes, err := storage.NewMemoryStore(map[string]*game.RoleCard{
		"scene-a": {
			Scene:  1,
			Name:   "The Long Wait",
			Budget: 3,
			Roles:  []game.Role{{Name: "Drifter", Level: 1}},
		},
	})
	if err != nil {
		t.Fatalf("scenes: %v", err)
	}

	upgrades, err := storage.NewMemoryStore(map[string]*game.UpgradePrices{
		"standard": {
			Cash:   []int{4, 10, 18, 28, 40},
			Credit: []int{5, 10, 15, 20, 25},
		},
	})
	if err != nil {
		t.Fatalf("upgrades: %v", err)
	}

	return &game.Dictionary{Rooms: rooms, Scenes: scenes, Upgrades: upgrades}
}

func testBuilder(t *testing.T) BoardBuilder {
	dict := testDictionary(t)
	return func(players []string) (*game.GameBoard, error) {
		return game.NewGameBoard(dict, players,
			game.WithDice(dice.NewSequence(1)),
			game.WithRoundsPerDay(5),
		)
	}
}

func testHandler(t *testing.T, pub commands.Publisher) *commands.Handler {
	t.Helper()

	store, err := storage.NewMemoryStore(map[string]*commands.Command{
		"look": {Handler: "look"},
		"who":  {Handler: "who"},
		"move": {
			Handler:  "move",
			Aliases:  []string{"go"},
			EndsTurn: true,
			Inputs: []commands.InputSpec{
				{Name: "room", Type: commands.InputTypeString, Required: true, Rest: true},
			},
			Config: map[string]any{"room": "{{ .Inputs.room }}"},
		},
		"end":  {Handler: "end"},
		"quit": {Handler: "quit"},
	})
	if err != nil {
		t.Fatalf("commands: %v", err)
	}

	h := commands.NewHandler(store, pub, display.NewRenderer(120))
	if err := h.CompileAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return h
}
