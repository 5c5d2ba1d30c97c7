package game

import (
	"fmt"
	"slices"

	"github.com/pixil98/go-deadwood/internal/dice"
	"github.com/pixil98/go-deadwood/internal/storage"
	"github.com/pixil98/go-errors"
)

const (
	RoomKindTrailer       = "trailer"        // Where every day starts
	RoomKindCastingOffice = "casting-office" // Where ranks are bought
	RoomKindFilmSet       = "film-set"       // Hosts a scene
)

// Room is the static definition of a board location.
type Room struct {
	Name     string    `json:"name"`
	Kind     string    `json:"kind"`
	Adjacent []string  `json:"adjacent"`        // room ids, matched ignoring case
	Shots    int       `json:"shots,omitempty"` // film sets only
	Extras   *RoleCard `json:"extras,omitempty"`

	// Prices is the casting office price list.
	Prices storage.SmartIdentifier[*UpgradePrices] `json:"prices"`
}

// Validate satisfies storage.ValidatingSpec. References to other rooms and to
// price lists are checked by Dictionary.Resolve.
func (r *Room) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("room name is required"))
	}

	switch r.Kind {
	case RoomKindTrailer, RoomKindCastingOffice, RoomKindFilmSet:
	case "":
		el.Add(fmt.Errorf("kind is required (must be %s, %s, or %s)",
			RoomKindTrailer, RoomKindCastingOffice, RoomKindFilmSet))
	default:
		el.Add(fmt.Errorf("invalid kind: %s (must be %s, %s, or %s)",
			r.Kind, RoomKindTrailer, RoomKindCastingOffice, RoomKindFilmSet))
	}

	if len(r.Adjacent) == 0 {
		el.Add(fmt.Errorf("at least one adjacent room is required"))
	}
	for i, adj := range r.Adjacent {
		if adj == "" {
			el.Add(fmt.Errorf("adjacent %d: room id is required", i))
		}
	}

	if r.Kind == RoomKindFilmSet {
		if r.Shots < 1 {
			el.Add(fmt.Errorf("film set needs at least one shot"))
		}
		if r.Extras != nil {
			if err := r.Extras.validate(false); err != nil {
				el.Add(fmt.Errorf("extras: %w", err))
			}
		}
	} else {
		if r.Shots != 0 {
			el.Add(fmt.Errorf("only film sets have shots"))
		}
		if r.Extras != nil {
			el.Add(fmt.Errorf("only film sets have extras"))
		}
	}

	if r.Kind == RoomKindCastingOffice {
		el.Add(r.Prices.Validate())
	} else if r.Prices.Id() != "" {
		el.Add(fmt.Errorf("only the casting office has prices"))
	}

	return el.Err()
}

// Resolve links the room to the assets it references.
func (r *Room) Resolve(d *Dictionary) error {
	if r.Kind != RoomKindCastingOffice {
		return nil
	}
	return r.Prices.Resolve(d.Upgrades)
}

// RoomKind is what a room does. The set of kinds is closed: *Trailer,
// *CastingOffice and *FilmSet.
type RoomKind interface {
	kind() string
}

// Trailer is where every actor starts the day.
type Trailer struct{}

// CastingOffice sells ranks.
type CastingOffice struct {
	Prices *UpgradePrices
}

// FilmSet hosts at most one scene at a time.
type FilmSet struct {
	Shots  int
	Extras *RoleCard

	set *Set
}

func (*Trailer) kind() string       { return RoomKindTrailer }
func (*CastingOffice) kind() string { return RoomKindCastingOffice }
func (*FilmSet) kind() string       { return RoomKindFilmSet }

// RoomInstance is a location on a running board.
type RoomInstance struct {
	Id       string
	Name     string
	Adjacent []string
	Kind     RoomKind

	// occupants in arrival order
	occupants []*Actor
}

// NewRoomInstance builds the runtime room for a resolved definition.
func NewRoomInstance(id string, def *Room) (*RoomInstance, error) {
	if def == nil {
		return nil, fmt.Errorf("room %q: no definition", id)
	}

	ri := &RoomInstance{
		Id:       id,
		Name:     def.Name,
		Adjacent: slices.Clone(def.Adjacent),
	}

	switch def.Kind {
	case RoomKindTrailer:
		ri.Kind = &Trailer{}
	case RoomKindCastingOffice:
		prices := def.Prices.Get()
		if prices == nil {
			return nil, fmt.Errorf("room %q: unresolved prices %q", id, def.Prices.Id())
		}
		ri.Kind = &CastingOffice{Prices: prices}
	case RoomKindFilmSet:
		ri.Kind = &FilmSet{Shots: def.Shots, Extras: def.Extras}
	default:
		return nil, fmt.Errorf("room %q: invalid kind %q", id, def.Kind)
	}

	return ri, nil
}

// IsAdjacent reports whether the room with the given id is one step away.
// Adjacency is exactly as defined; it is not assumed to be symmetric.
func (r *RoomInstance) IsAdjacent(id string) bool {
	return slices.ContainsFunc(r.Adjacent, func(adj string) bool {
		return sameName(adj, id)
	})
}

// Set returns the scene loaded in the room, wrapped or not. Only film sets
// ever have one.
func (r *RoomInstance) Set() *Set {
	if fs, ok := r.Kind.(*FilmSet); ok {
		return fs.set
	}
	return nil
}

// ActiveSet returns the room's scene if it is still shooting.
func (r *RoomInstance) ActiveSet() *Set {
	if s := r.Set(); s != nil && s.Active() {
		return s
	}
	return nil
}

// Occupants returns the actors in the room in arrival order.
func (r *RoomInstance) Occupants() []*Actor {
	return slices.Clone(r.occupants)
}

func (r *RoomInstance) enter(a *Actor) {
	if !slices.Contains(r.occupants, a) {
		r.occupants = append(r.occupants, a)
	}
}

func (r *RoomInstance) leave(a *Actor) {
	r.occupants = slices.DeleteFunc(r.occupants, func(o *Actor) bool {
		return o == a
	})
}

// wrapScene pays out and closes the room's scene after trigger shot the last
// take. Everyone in the room with a role on the scene is paid, trigger first;
// every role is then marked complete and the scene goes inactive.
func (r *RoomInstance) wrapScene(trigger *Actor, roller dice.Roller) *WrapResult {
	set := r.Set()
	res := &WrapResult{Scene: set.SceneID(), SceneName: set.Card().Name}

	participants := []*Actor{trigger}
	for _, a := range r.occupants {
		if a != trigger && a.role != nil && a.role.set == set {
			participants = append(participants, a)
		}
	}

	starring := slices.ContainsFunc(participants, func(a *Actor) bool {
		return !a.role.ref.Extra
	})
	if starring {
		res.Dice = rollBonus(roller, set.Card().Budget)
		res.Slots = DistributeDice(res.Dice, set.NumStarringRoles())
	}

	for _, a := range participants {
		p := Payout{
			Actor: a.Id,
			Role:  a.role.role.Name,
			Extra: a.role.ref.Extra,
		}
		if p.Extra {
			p.Cash = a.role.role.Level
		} else {
			p.Slot = a.role.role.Level
			if p.Slot > 0 && p.Slot <= len(res.Slots) {
				p.Cash = res.Slots[p.Slot-1]
			}
		}
		a.points.AddCash(p.Cash)
		a.points.ResetRehearsal()
		res.Payouts = append(res.Payouts, p)
	}

	set.wrap()
	trigger.releaseRole()

	return res
}
