package game

import (
	"testing"

	"github.com/pixil98/go-deadwood/internal/dice"
	"github.com/pixil98/go-deadwood/internal/storage"
)

// A small board:
//
//	trailer ── main-street ── office
//	   │           ↑
//	   └──────── saloon
//
// The saloon can reach main street but not the other way around.
// Film sets are dealt in id order (main-street, then saloon), and with a
// dice.Sequence the deck deals scene-a, scene-b, scene-c in order.

func testRooms() map[string]*Room {
	return map[string]*Room{
		"trailer": {
			Name:     "Trailer",
			Kind:     RoomKindTrailer,
			Adjacent: []string{"main-street", "saloon"},
		},
		"office": {
			Name:     "Casting Office",
			Kind:     RoomKindCastingOffice,
			Adjacent: []string{"main-street"},
			Prices:   storage.NewSmartIdentifier[*UpgradePrices]("standard"),
		},
		"main-street": {
			Name:     "Main Street",
			Kind:     RoomKindFilmSet,
			Adjacent: []string{"trailer", "office"},
			Shots:    3,
			Extras: &RoleCard{
				Roles: []Role{
					{Name: "Railroad Worker", Level: 1},
					{Name: "Falls off Roof", Level: 2},
				},
			},
		},
		"saloon": {
			Name:     "Saloon",
			Kind:     RoomKindFilmSet,
			Adjacent: []string{"trailer", "main-street"},
			Shots:    2,
			Extras: &RoleCard{
				Budget: 3,
				Roles: []Role{
					{Name: "Woman in Black Dress", Level: 2},
					{Name: "Reluctant Farmer", Level: 1},
				},
			},
		},
	}
}

func testScenes() map[string]*RoleCard {
	return map[string]*RoleCard{
		"scene-a": {
			Scene:  1,
			Name:   "A Hat Full of Dust",
			Budget: 4,
			Roles: []Role{
				{Name: "Gambler", Level: 1},
				{Name: "Marshal", Level: 3},
			},
		},
		"scene-b": {
			Scene:  2,
			Name:   "The Long Wait",
			Budget: 2,
			Roles: []Role{
				{Name: "Drifter", Level: 1},
			},
		},
		"scene-c": {
			Scene:  3,
			Name:   "Showdown at Noon",
			Budget: 5,
			Roles: []Role{
				{Name: "Outlaw", Level: 2},
				{Name: "Deputy", Level: 1},
				{Name: "Widow", Level: 4},
			},
		},
	}
}

func testPrices() *UpgradePrices {
	return &UpgradePrices{
		Cash:   []int{4, 10, 18, 28, 40},
		Credit: []int{5, 10, 15, 20, 25},
	}
}

func newTestDictionary(t *testing.T, rooms map[string]*Room, scenes map[string]*RoleCard) *Dictionary {
	t.Helper()

	rs, err := storage.NewMemoryStore(rooms)
	if err != nil {
		t.Fatalf("rooms: %v", err)
	}
	ss, err := storage.NewMemoryStore(scenes)
	if err != nil {
		t.Fatalf("scenes: %v", err)
	}
	us, err := storage.NewMemoryStore(map[string]*UpgradePrices{"standard": testPrices()})
	if err != nil {
		t.Fatalf("upgrades: %v", err)
	}

	return &Dictionary{Rooms: rs, Scenes: ss, Upgrades: us}
}

var testPlayers = []string{"Alice", "Bob", "Cara", "Dev", "Eve", "Finn", "Gus", "Hal"}

// newTestBoard seats the first n test players on the fixture board with a
// scripted dice sequence.
func newTestBoard(t *testing.T, n int, rolls ...int) *GameBoard {
	t.Helper()

	dict := newTestDictionary(t, testRooms(), testScenes())
	b, err := NewGameBoard(dict, testPlayers[:n], WithDice(dice.NewSequence(rolls...)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

// place puts an actor straight into a room, skipping movement rules.
func place(t *testing.T, b *GameBoard, a *Actor, room string) {
	t.Helper()

	ri := b.Room(room)
	if ri == nil {
		t.Fatalf("no room %q", room)
	}
	a.relocate(ri)
}

// endRound ends every seated actor's turn once.
func endRound(t *testing.T, b *GameBoard) *TurnResult {
	t.Helper()

	var res *TurnResult
	for range b.actors {
		var err error
		res, err = b.EndTurn()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return res
}

type recordingPublisher struct {
	events []Event
	err    error
}

func (p *recordingPublisher) Publish(ev Event) error {
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) types() []EventType {
	var types []EventType
	for _, ev := range p.events {
		types = append(types, ev.Type)
	}
	return types
}
