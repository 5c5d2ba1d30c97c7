package game

import "slices"

// The snapshot types are plain copies of board state for presentation.
// Nothing in them points back into the engine.

type ActorSnapshot struct {
	Id             string `json:"id"`
	Name           string `json:"name"`
	Rank           int    `json:"rank"`
	Cash           int    `json:"cash"`
	Credit         int    `json:"credit"`
	RehearsalBonus int    `json:"rehearsal_bonus"`
	Score          int    `json:"score"`
	Room           string `json:"room"`
	RoomName       string `json:"room_name"`
	Role           string `json:"role,omitempty"`
	Extra          bool   `json:"extra,omitempty"`
	RoleCompleted  bool   `json:"role_completed,omitempty"`
	Current        bool   `json:"current,omitempty"`
}

type RoleSnapshot struct {
	Name      string `json:"name"`
	Level     int    `json:"level"`
	Line      string `json:"line,omitempty"`
	Extra     bool   `json:"extra,omitempty"`
	Holder    string `json:"holder,omitempty"`
	Completed bool   `json:"completed,omitempty"`
	Slot      int    `json:"slot,omitempty"`
}

type SceneSnapshot struct {
	Id             string         `json:"id"`
	Number         int            `json:"number,omitempty"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Budget         int            `json:"budget"`
	ExtrasBudget   int            `json:"extras_budget"`
	ShotsRemaining int            `json:"shots_remaining"`
	TotalShots     int            `json:"total_shots"`
	Active         bool           `json:"active"`
	Roles          []RoleSnapshot `json:"roles"`
}

type RoomSnapshot struct {
	Id        string         `json:"id"`
	Name      string         `json:"name"`
	Kind      string         `json:"kind"`
	Adjacent  []string       `json:"adjacent"`
	Occupants []string       `json:"occupants,omitempty"`
	Scene     *SceneSnapshot `json:"scene,omitempty"`
}

type BoardSnapshot struct {
	Id      string          `json:"id"`
	Day     int             `json:"day"`
	MaxDay  int             `json:"max_day"`
	Over    bool            `json:"over"`
	Current string          `json:"current,omitempty"`
	Deck    int             `json:"deck"`
	Actors  []ActorSnapshot `json:"actors"`
	Rooms   []RoomSnapshot  `json:"rooms"`
}

func snapshotActor(a *Actor) ActorSnapshot {
	s := ActorSnapshot{
		Id:             a.Id,
		Name:           a.Name,
		Rank:           a.rank,
		Cash:           a.points.Cash(),
		Credit:         a.points.Credit(),
		RehearsalBonus: a.points.RehearsalBonus(),
		Score:          a.Score(),
	}
	if a.room != nil {
		s.Room = a.room.Id
		s.RoomName = a.room.Name
	}
	if a.role != nil {
		s.Role = a.role.role.Name
		s.Extra = a.role.ref.Extra
		s.RoleCompleted = a.RoleCompleted()
	}
	return s
}

func snapshotRoom(r *RoomInstance) RoomSnapshot {
	s := RoomSnapshot{
		Id:       r.Id,
		Name:     r.Name,
		Kind:     r.Kind.kind(),
		Adjacent: slices.Clone(r.Adjacent),
	}
	for _, a := range r.occupants {
		s.Occupants = append(s.Occupants, a.Id)
	}
	if set := r.Set(); set != nil {
		scene := snapshotScene(set)
		s.Scene = &scene
	}
	return s
}

func snapshotScene(set *Set) SceneSnapshot {
	card := set.Card()
	s := SceneSnapshot{
		Id:             set.SceneID(),
		Number:         card.Scene,
		Name:           card.Name,
		Description:    card.Description,
		Budget:         card.Budget,
		ExtrasBudget:   set.Budget(RoleRef{Extra: true}),
		ShotsRemaining: set.ShotsRemaining(),
		TotalShots:     set.TotalShots(),
		Active:         set.Active(),
	}
	for _, ref := range set.Refs() {
		s.Roles = append(s.Roles, snapshotRole(set, ref))
	}
	return s
}

func snapshotRole(set *Set, ref RoleRef) RoleSnapshot {
	role, _ := set.roleFor(ref)
	s := RoleSnapshot{
		Name:      role.Name,
		Level:     role.Level,
		Line:      role.Line,
		Extra:     ref.Extra,
		Completed: set.IsActed(ref),
	}
	if id, ok := set.Holder(ref); ok {
		s.Holder = id
	}
	if !ref.Extra {
		s.Slot = set.Card().Slot(role.Name)
	}
	return s
}
