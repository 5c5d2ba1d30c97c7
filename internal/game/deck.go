package game

import (
	"slices"

	"github.com/pixil98/go-deadwood/internal/dice"
)

// SceneCard is a dealt scene: the card and the id it was loaded under.
type SceneCard struct {
	ID   string
	Card *RoleCard
}

// Deck deals scene cards to film sets. Cards leaving the board go to the
// discard pile, which is reshuffled into the deck only when it runs dry.
type Deck struct {
	draw     []SceneCard
	discard  []SceneCard
	shuffler dice.Shuffler
}

// NewDeck shuffles cards into a fresh deck. Cards are ordered by id before
// shuffling so a seeded shuffler always deals the same game.
func NewDeck(cards map[string]*RoleCard, s dice.Shuffler) *Deck {
	ids := make([]string, 0, len(cards))
	for id := range cards {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	d := &Deck{shuffler: s}
	for _, id := range ids {
		d.draw = append(d.draw, SceneCard{ID: id, Card: cards[id]})
	}
	d.shuffle(d.draw)
	return d
}

// Draw takes the top card. It returns false only when both the deck and the
// discard pile are empty.
func (d *Deck) Draw() (SceneCard, bool) {
	if len(d.draw) == 0 {
		if len(d.discard) == 0 {
			return SceneCard{}, false
		}
		d.draw, d.discard = d.discard, nil
		d.shuffle(d.draw)
	}

	c := d.draw[0]
	d.draw = d.draw[1:]
	return c, true
}

// Discard puts a card on the discard pile.
func (d *Deck) Discard(c SceneCard) {
	d.discard = append(d.discard, c)
}

// Remaining is the number of cards left before a reshuffle.
func (d *Deck) Remaining() int {
	return len(d.draw)
}

func (d *Deck) shuffle(cards []SceneCard) {
	if d.shuffler == nil {
		return
	}
	d.shuffler.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
