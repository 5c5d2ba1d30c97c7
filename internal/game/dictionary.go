package game

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-deadwood/internal/storage"
	"github.com/pixil98/go-errors"
)

// Dictionary holds the static board data a game is built from.
type Dictionary struct {
	Rooms    storage.Storer[*Room]
	Scenes   storage.Storer[*RoleCard]
	Upgrades storage.Storer[*UpgradePrices]
}

// Resolve links cross references and checks the board as a whole: every
// adjacent room exists, there is exactly one trailer and one casting office,
// and there are enough scene cards to fill every film set.
func (d *Dictionary) Resolve() error {
	if d == nil || d.Rooms == nil || d.Scenes == nil || d.Upgrades == nil {
		return fmt.Errorf("dictionary is incomplete")
	}

	rooms := d.Rooms.GetAll()
	if len(rooms) == 0 {
		return fmt.Errorf("no rooms defined")
	}

	el := errors.NewErrorList()

	known := map[string]string{}
	for _, id := range sortedIds(rooms) {
		if prev, ok := known[Key(id)]; ok {
			el.Add(fmt.Errorf("room ids %q and %q differ only by case", prev, id))
		}
		known[Key(id)] = id
	}

	kinds := map[string]int{}
	for _, id := range sortedIds(rooms) {
		r := rooms[id]
		kinds[r.Kind]++

		if err := r.Resolve(d); err != nil {
			el.Add(fmt.Errorf("room %s: %w", id, err))
		}
		for _, adj := range r.Adjacent {
			if _, ok := known[Key(adj)]; !ok {
				el.Add(fmt.Errorf("room %s: adjacent room %q not found", id, adj))
			}
		}
	}

	if n := kinds[RoomKindTrailer]; n != 1 {
		el.Add(fmt.Errorf("exactly one trailer is required, found %d", n))
	}
	if n := kinds[RoomKindCastingOffice]; n != 1 {
		el.Add(fmt.Errorf("exactly one casting office is required, found %d", n))
	}
	sets := kinds[RoomKindFilmSet]
	if sets == 0 {
		el.Add(fmt.Errorf("at least one film set is required"))
	}
	if n := len(d.Scenes.GetAll()); n < sets {
		el.Add(fmt.Errorf("need at least %d scene cards to fill every film set, found %d", sets, n))
	}

	return el.Err()
}

func sortedIds[T any](m map[string]T) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
