package game

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"github.com/pixil98/go-deadwood/internal/dice"
)

const (
	MinPlayers = 2
	MaxPlayers = 8
)

// StartingStats returns the rank and credits every actor starts with in a
// game of the given size.
func StartingStats(players int) (rank, credit int, err error) {
	switch {
	case players < MinPlayers || players > MaxPlayers:
		return 0, 0, fmt.Errorf("a game needs %d to %d players, got %d", MinPlayers, MaxPlayers, players)
	case players <= 4:
		return 1, 0, nil
	case players == 5:
		return 1, 2, nil
	case players == 6:
		return 1, 4, nil
	default:
		return 2, 0, nil
	}
}

// GameBoard owns a game in progress: the rooms, the actors, and the turn and
// day counters. It is not safe for concurrent use; one command runs at a time
// on behalf of the current actor.
type GameBoard struct {
	Id uuid.UUID

	rooms   map[string]*RoomInstance // keyed by folded id
	order   []*RoomInstance          // by id
	trailer *RoomInstance
	office  *RoomInstance
	actors  []*Actor
	turns   *TurnTracker
	days    *DayTracker
	deck    *Deck
	dice    dice.Source
	pub     Publisher
	scores  []Score
}

// NewGameBoard builds a board from resolved static data and seats the named
// players in order. Every actor starts in the trailer and day one's scenes
// are dealt. Bad board data is an error; the game never starts half built.
func NewGameBoard(dict *Dictionary, players []string, opts ...GameBoardOpt) (*GameBoard, error) {
	rank, credit, err := StartingStats(len(players))
	if err != nil {
		return nil, err
	}
	if err := dict.Resolve(); err != nil {
		return nil, fmt.Errorf("resolving board: %w", err)
	}

	b := &GameBoard{
		Id:    uuid.New(),
		rooms: map[string]*RoomInstance{},
		turns: NewTurnTracker(len(players)),
		days:  NewDayTracker(len(players)),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.dice == nil {
		seed, err := dice.NewSeed()
		if err != nil {
			return nil, err
		}
		b.dice = dice.NewRandom(seed)
	}

	defs := dict.Rooms.GetAll()
	for _, id := range sortedIds(defs) {
		ri, err := NewRoomInstance(id, defs[id])
		if err != nil {
			return nil, err
		}
		b.rooms[Key(id)] = ri
		b.order = append(b.order, ri)

		switch ri.Kind.(type) {
		case *Trailer:
			b.trailer = ri
		case *CastingOffice:
			b.office = ri
		case *FilmSet:
		}
	}

	seen := map[string]bool{}
	for _, name := range players {
		id := Key(name)
		if id == "" {
			return nil, fmt.Errorf("player names cannot be blank")
		}
		if seen[id] {
			return nil, fmt.Errorf("duplicate player %q", name)
		}
		seen[id] = true

		a := NewActor(id, name, rank, credit)
		a.relocate(b.trailer)
		b.actors = append(b.actors, a)
	}

	b.deck = NewDeck(dict.Scenes.GetAll(), b.dice)
	b.dealScenes()

	return b, nil
}

// Room finds a room by id or display name, ignoring case.
func (b *GameBoard) Room(name string) *RoomInstance {
	if ri, ok := b.rooms[Key(name)]; ok {
		return ri
	}
	for _, ri := range b.order {
		if sameName(ri.Name, name) {
			return ri
		}
	}
	return nil
}

func (b *GameBoard) Day() int    { return b.days.Current() }
func (b *GameBoard) MaxDay() int { return b.days.Max() }
func (b *GameBoard) Over() bool  { return b.days.Over() }

// Actor returns the actor with the given id.
func (b *GameBoard) Actor(id string) (*Actor, error) {
	for _, a := range b.actors {
		if a.Id == Key(id) {
			return a, nil
		}
	}
	return nil, ErrActorNotFound
}

func (b *GameBoard) current() *Actor {
	return b.actors[b.turns.Current()]
}

// MoveResult reports a completed move.
type MoveResult struct {
	Actor ActorSnapshot `json:"actor"`
	From  string        `json:"from"`
	To    RoomSnapshot  `json:"to"`
}

// Move walks the current actor to an adjacent room.
func (b *GameBoard) Move(dest string) (*MoveResult, error) {
	a, err := b.playing()
	if err != nil {
		return nil, err
	}

	from := a.room.Name
	to, err := a.Move(b, dest)
	if err != nil {
		return nil, err
	}

	res := &MoveResult{Actor: snapshotActor(a), From: from, To: snapshotRoom(to)}
	b.publish(EventMoved, a, res)
	return res, nil
}

// TakeRoleResult reports a role signed for.
type TakeRoleResult struct {
	Actor ActorSnapshot `json:"actor"`
	Role  RoleSnapshot  `json:"role"`
	Scene string        `json:"scene"`
}

// TakeRole signs the current actor up for a role in their room.
func (b *GameBoard) TakeRole(name string) (*TakeRoleResult, error) {
	a, err := b.playing()
	if err != nil {
		return nil, err
	}

	if _, _, err := a.TakeRole(name); err != nil {
		return nil, err
	}

	res := &TakeRoleResult{
		Actor: snapshotActor(a),
		Role:  snapshotRole(a.role.set, a.role.ref),
		Scene: a.role.set.Card().Name,
	}
	b.publish(EventRoleTaken, a, res)
	return res, nil
}

// Act has the current actor attempt their shot.
func (b *GameBoard) Act() (*ActResult, error) {
	a, err := b.playing()
	if err != nil {
		return nil, err
	}

	room := a.room
	res, err := a.Act(b.dice)
	if err != nil {
		return nil, err
	}

	b.publish(EventActed, a, res)
	if res.Wrap != nil {
		slog.Info("scene wrapped", "board", b.Id, "room", room.Id, "scene", res.Wrap.Scene, "payouts", len(res.Wrap.Payouts))
		b.publish(EventSceneWrapped, a, res.Wrap)
	}
	return res, nil
}

// RehearseResult reports a rehearsal.
type RehearseResult struct {
	Actor ActorSnapshot `json:"actor"`
	Bonus int           `json:"bonus"`
	Limit int           `json:"limit"`
}

// Rehearse has the current actor rehearse their role.
func (b *GameBoard) Rehearse() (*RehearseResult, error) {
	a, err := b.playing()
	if err != nil {
		return nil, err
	}

	bonus, err := a.Rehearse()
	if err != nil {
		return nil, err
	}

	res := &RehearseResult{
		Actor: snapshotActor(a),
		Bonus: bonus,
		Limit: a.role.set.Budget(a.role.ref) - 1,
	}
	b.publish(EventRehearsed, a, res)
	return res, nil
}

// AbandonResult reports a role given up.
type AbandonResult struct {
	Actor ActorSnapshot `json:"actor"`
	Role  string        `json:"role"`
}

// AbandonRole has the current actor give up a completed role.
func (b *GameBoard) AbandonRole() (*AbandonResult, error) {
	a, err := b.playing()
	if err != nil {
		return nil, err
	}

	role, err := a.AbandonRole()
	if err != nil {
		return nil, err
	}

	res := &AbandonResult{Actor: snapshotActor(a), Role: role.Name}
	b.publish(EventRoleAbandoned, a, res)
	return res, nil
}

// UpgradeResult reports a rank bought.
type UpgradeResult struct {
	Actor   ActorSnapshot `json:"actor"`
	From    int           `json:"from"`
	Rank    int           `json:"rank"`
	Cost    int           `json:"cost"`
	Payment string        `json:"payment"`
}

// Upgrade buys the current actor a new rank at the casting office.
func (b *GameBoard) Upgrade(rank int, pay Payment) (*UpgradeResult, error) {
	a, err := b.playing()
	if err != nil {
		return nil, err
	}

	from := a.rank
	cost, err := a.Upgrade(rank, pay)
	if err != nil {
		return nil, err
	}

	res := &UpgradeResult{
		Actor:   snapshotActor(a),
		From:    from,
		Rank:    a.rank,
		Cost:    cost,
		Payment: pay.String(),
	}
	b.publish(EventUpgraded, a, res)
	return res, nil
}

// TurnResult reports the end of a turn and anything it set off.
type TurnResult struct {
	Previous ActorSnapshot  `json:"previous"`
	Next     *ActorSnapshot `json:"next,omitempty"`
	Day      int            `json:"day"`
	DayEnded bool           `json:"day_ended,omitempty"`
	GameOver bool           `json:"game_over,omitempty"`
	Scores   []Score        `json:"scores,omitempty"`
}

// EndTurn passes play to the next actor. When the last actor finishes, the
// day ends: either the game is over, or everyone goes back to the trailer
// and new scenes are dealt.
func (b *GameBoard) EndTurn() (*TurnResult, error) {
	a, err := b.playing()
	if err != nil {
		return nil, err
	}

	res := &TurnResult{Previous: snapshotActor(a)}
	if b.turns.EndTurn() {
		res.DayEnded = true
		b.endDay()
	}

	res.Day = b.days.Current()
	res.GameOver = b.Over()
	if res.GameOver {
		res.Scores = b.Scores()
	} else {
		next := snapshotActor(b.current())
		res.Next = &next
	}

	b.publish(EventTurnEnded, a, res)
	return res, nil
}

// Score is an actor's place in the final standings.
type Score struct {
	Place  int    `json:"place"`
	Actor  string `json:"actor"`
	Name   string `json:"name"`
	Rank   int    `json:"rank"`
	Cash   int    `json:"cash"`
	Credit int    `json:"credit"`
	Total  int    `json:"total"`
}

// Scores ranks the actors by cash + credit + 5 per rank, best first. Tied
// actors share a place.
func (b *GameBoard) Scores() []Score {
	if b.scores != nil {
		return slices.Clone(b.scores)
	}
	return tally(b.actors)
}

func tally(actors []*Actor) []Score {
	scores := make([]Score, 0, len(actors))
	for _, a := range actors {
		scores = append(scores, Score{
			Actor:  a.Id,
			Name:   a.Name,
			Rank:   a.rank,
			Cash:   a.points.Cash(),
			Credit: a.points.Credit(),
			Total:  a.Score(),
		})
	}
	slices.SortStableFunc(scores, func(x, y Score) int {
		return cmp.Compare(y.Total, x.Total)
	})
	for i := range scores {
		if i > 0 && scores[i].Total == scores[i-1].Total {
			scores[i].Place = scores[i-1].Place
		} else {
			scores[i].Place = i + 1
		}
	}
	return scores
}

// playing returns the current actor, or ErrGameOver once the game has ended.
func (b *GameBoard) playing() (*Actor, error) {
	if b.Over() {
		return nil, ErrGameOver
	}
	return b.current(), nil
}

// endDay closes the current day in one step. Everyone is sent back to the
// trailer, unfinished work is dropped, and every film set gets a new scene.
func (b *GameBoard) endDay() {
	finished := b.days.Current()
	if b.days.UpdateDay() {
		b.scores = tally(b.actors)
		slog.Info("game over", "board", b.Id, "days", finished, "winner", b.scores[0].Name)
		b.publish(EventGameOver, nil, b.scores)
		return
	}

	for _, a := range b.actors {
		a.ForceClearRole()
		a.relocate(b.trailer)
	}
	b.dealScenes()

	slog.Info("day ended", "board", b.Id, "day", finished, "next", b.days.Current())
	b.publish(EventDayEnded, nil, map[string]int{"ended": finished, "day": b.days.Current()})
}

// dealScenes replaces the scene in every film set. Outgoing cards are
// discarded first so they only return once the deck is exhausted.
func (b *GameBoard) dealScenes() {
	sets := b.filmSets()
	for _, fs := range sets {
		if fs.set != nil {
			b.deck.Discard(fs.set.scene)
			fs.set = nil
		}
	}

	for i, fs := range sets {
		card, ok := b.deck.Draw()
		if !ok {
			slog.Warn("out of scene cards", "board", b.Id, "undealt", len(sets)-i)
			return
		}
		fs.set = NewSet(card, fs.Extras, fs.Shots)
	}
}

func (b *GameBoard) filmSets() []*FilmSet {
	var sets []*FilmSet
	for _, ri := range b.order {
		if fs, ok := ri.Kind.(*FilmSet); ok {
			sets = append(sets, fs)
		}
	}
	return sets
}

func (b *GameBoard) publish(typ EventType, a *Actor, data any) {
	if b.pub == nil {
		return
	}

	ev := Event{
		Id:      uuid.New(),
		BoardId: b.Id,
		Type:    typ,
		Day:     b.days.Current(),
		Data:    data,
	}
	if a != nil {
		ev.Actor = a.Id
	}

	if err := b.pub.Publish(ev); err != nil {
		slog.Warn("failed to publish game event", "board", b.Id, "type", typ, "error", err)
	}
}
