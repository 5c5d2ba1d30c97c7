package commands

import (
	"testing"

	"github.com/pixil98/go-deadwood/internal/dice"
	"github.com/pixil98/go-deadwood/internal/display"
	"github.com/pixil98/go-deadwood/internal/game"
	"github.com/pixil98/go-deadwood/internal/storage"
)

// A one-set board: the trailer sits between the casting office and the
// saloon, and the saloon shoots "The Long Wait" in a single take.
func newTestBoard(t *testing.T, rolls ...int) *game.GameBoard {
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
			Shots:    1,
			Extras: &game.RoleCard{
				Roles: []game.Role{{Name: "Barkeep", Level: 1}},
			},
		},
	})
	if err != nil {
		t.Fatalf("rooms: %v", err)
	}

	scenes, err := storage.NewMemoryStore(map[string]*game.RoleCard{
		"scene-a": {
			Scene:  1,
			Name:   "The Long Wait",
			Budget: 2,
			Roles:  []game.Role{{Name: "Drifter", Level: 1, Line: "Anybody seen my horse?"}},
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

	dict := &game.Dictionary{Rooms: rooms, Scenes: scenes, Upgrades: upgrades}
	b, err := game.NewGameBoard(dict, []string{"Alice", "Bob"},
		game.WithDice(dice.NewSequence(rolls...)),
		game.WithRoundsPerDay(10),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func testCommands() map[string]*Command {
	return map[string]*Command{
		"move": {
			Handler:     "move",
			Category:    "game",
			Description: "Walk to an adjacent room.",
			Aliases:     []string{"go"},
			EndsTurn:    true,
			Inputs: []InputSpec{
				{Name: "room", Type: InputTypeString, Required: true, Rest: true, Missing: "Move where?"},
			},
			Config: map[string]any{"room": "{{ .Inputs.room }}"},
		},
		"work": {
			Handler:  "work",
			Category: "game",
			EndsTurn: true,
			Inputs: []InputSpec{
				{Name: "role", Type: InputTypeString, Required: true, Rest: true},
			},
			Config: map[string]any{"role": "{{ .Inputs.role }}"},
		},
		"act":      {Handler: "act", Category: "game", EndsTurn: true},
		"rehearse": {Handler: "rehearse", Category: "game", EndsTurn: true},
		"upgrade": {
			Handler:  "upgrade",
			Category: "game",
			EndsTurn: true,
			Inputs: []InputSpec{
				{Name: "rank", Type: InputTypeNumber, Required: true},
				{Name: "payment", Type: InputTypeString, Required: true},
			},
			Config: map[string]any{
				"rank":    "{{ .Inputs.rank }}",
				"payment": "{{ .Inputs.payment }}",
			},
		},
		"end":   {Handler: "end", Category: "game", Aliases: []string{"pass"}},
		"look":  {Handler: "look", Category: "info", Aliases: []string{"where"}},
		"roles": {Handler: "roles", Category: "info"},
		"who": {
			Handler:  "who",
			Category: "info",
			Message:  "{{ len .Result }} actors, {{ .Actor.Name }} to play",
		},
		"rules": {
			Handler: "message",
			Config:  map[string]any{"text": "Shoot every scene before the last day ends."},
		},
		"help": {
			Handler:  "help",
			Category: "info",
			Inputs: []InputSpec{
				{Name: "command", Type: InputTypeString},
			},
			Config: map[string]any{"command": "{{ .Inputs.command }}"},
		},
		"quit": {Handler: "quit", Priority: 10},
	}
}

type published struct {
	subject string
	text    string
}

type recordingPublisher struct {
	msgs []published
}

func (p *recordingPublisher) Publish(subject string, data []byte) error {
	p.msgs = append(p.msgs, published{subject: subject, text: string(data)})
	return nil
}

// newTestHandler compiles testCommands against a recording publisher.
func newTestHandler(t *testing.T) (*Handler, *recordingPublisher) {
	t.Helper()

	store, err := storage.NewMemoryStore(testCommands())
	if err != nil {
		t.Fatalf("commands: %v", err)
	}

	pub := &recordingPublisher{}
	h := NewHandler(store, pub, display.NewRenderer(200))
	if err := h.CompileAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return h, pub
}
