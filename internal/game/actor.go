package game

import "github.com/pixil98/go-deadwood/internal/dice"

// RoomLookup finds a room by id or name, ignoring case.
type RoomLookup interface {
	Room(name string) *RoomInstance
}

// Actor is a player's piece on the board.
type Actor struct {
	Id   string
	Name string

	rank   int
	room   *RoomInstance
	role   *heldRole
	points *PointTracker
}

// heldRole is the role an actor is working and the set it belongs to.
type heldRole struct {
	set  *Set
	ref  RoleRef
	role Role
}

// NewActor creates an actor who is not yet on the board.
func NewActor(id, name string, rank, credit int) *Actor {
	return &Actor{
		Id:     id,
		Name:   name,
		rank:   min(max(rank, MinRank), MaxRank),
		points: NewPointTracker(0, credit),
	}
}

func (a *Actor) Rank() int           { return a.rank }
func (a *Actor) Room() *RoomInstance { return a.room }
func (a *Actor) Cash() int           { return a.points.Cash() }
func (a *Actor) Credit() int         { return a.points.Credit() }
func (a *Actor) RehearsalBonus() int { return a.points.RehearsalBonus() }
func (a *Actor) Score() int          { return a.points.Score(a.rank) }
func (a *Actor) IsExtraRole() bool   { return a.role != nil && a.role.ref.Extra }
func (a *Actor) HasRole() bool       { return a.role != nil }

// Role returns the role the actor is working, if any.
func (a *Actor) Role() (Role, bool) {
	if a.role == nil {
		return Role{}, false
	}
	return a.role.role, true
}

// RoleCompleted reports whether the held role has been shot.
func (a *Actor) RoleCompleted() bool {
	return a.role != nil && a.role.set.IsActed(a.role.ref)
}

// Move walks the actor to an adjacent room. An actor working a role may only
// leave once the role is complete; the role is given up on the way out.
func (a *Actor) Move(rooms RoomLookup, dest string) (*RoomInstance, error) {
	if a.room == nil {
		return nil, ruleErrorf(ReasonInvalidLocation, "you are not in a room")
	}

	to := rooms.Room(dest)
	if to == nil {
		return nil, ruleErrorf(ReasonInvalidLocation, "there is no room called %q", dest)
	}
	if !a.room.IsAdjacent(to.Id) {
		return nil, ruleErrorf(ReasonInvalidLocation, "you cannot get to %s from %s", to.Name, a.room.Name)
	}

	if a.role != nil {
		if !a.RoleCompleted() {
			return nil, ruleErrorf(ReasonIllegalRoleTransition,
				"you are still working %s; finish the shot before leaving", a.role.role.Name)
		}
		a.releaseRole()
	}

	a.relocate(to)
	a.points.ResetRehearsal()
	return to, nil
}

// TakeRole signs the actor up for a role on the scene in the current room.
func (a *Actor) TakeRole(name string) (Role, bool, error) {
	set := a.activeSet()
	if set == nil {
		return Role{}, false, ruleErrorf(ReasonRoleUnavailable, "there is no scene shooting here")
	}
	if a.role != nil && !a.RoleCompleted() {
		return Role{}, false, ruleErrorf(ReasonIllegalRoleTransition, "you are already working %s", a.role.role.Name)
	}

	ref, role, ok := set.Lookup(name)
	if !ok {
		return Role{}, false, ruleErrorf(ReasonRoleUnavailable, "there is no role called %q here", name)
	}
	if a.rank < role.Level {
		return Role{}, false, ruleErrorf(ReasonRoleUnavailable,
			"%s needs rank %d and you are rank %d", role.Name, role.Level, a.rank)
	}
	if err := set.claim(ref, a.Id); err != nil {
		return Role{}, false, err
	}

	if a.role != nil {
		a.releaseRole()
	}
	a.role = &heldRole{set: set, ref: ref, role: role}
	return role, ref.Extra, nil
}

// ActResult is the outcome of one attempt at a shot.
type ActResult struct {
	Role           string      `json:"role"`
	Extra          bool        `json:"extra,omitempty"`
	Roll           int         `json:"roll"`
	Bonus          int         `json:"bonus"`
	Total          int         `json:"total"`
	Budget         int         `json:"budget"`
	Success        bool        `json:"success"`
	ShotsRemaining int         `json:"shots_remaining"`
	Wrap           *WrapResult `json:"wrap,omitempty"`
}

// Act attempts the actor's role. A roll plus rehearsal bonus that meets the
// budget completes the role and takes a shot off the counter; taking the
// last shot wraps the scene. A missed roll changes nothing.
func (a *Actor) Act(roller dice.Roller) (*ActResult, error) {
	set, err := a.workableSet()
	if err != nil {
		return nil, err
	}

	res := &ActResult{
		Role:   a.role.role.Name,
		Extra:  a.role.ref.Extra,
		Bonus:  a.points.RehearsalBonus(),
		Budget: set.Budget(a.role.ref),
	}
	res.Roll = roller.Roll()
	res.Total = res.Roll + res.Bonus

	if res.Total < res.Budget {
		res.ShotsRemaining = set.ShotsRemaining()
		return res, nil
	}

	res.Success = true
	set.complete(a.role.ref)
	if a.role.ref.Extra {
		a.points.AddCash(extraCash)
		a.points.AddCredit(extraCredit)
		a.points.ResetRehearsal()
	} else {
		a.points.AddCredit(starringCredit)
	}

	res.ShotsRemaining = set.shoot()
	if res.ShotsRemaining == 0 {
		res.Wrap = a.room.wrapScene(a, roller)
	}

	return res, nil
}

// Rehearse adds one to the rehearsal bonus. The bonus tops out one below the
// role's budget, at which point a roll of 1 already succeeds.
func (a *Actor) Rehearse() (int, error) {
	set, err := a.workableSet()
	if err != nil {
		return 0, err
	}
	return a.points.Rehearse(set.Budget(a.role.ref) - 1)
}

// AbandonRole gives up a completed role.
func (a *Actor) AbandonRole() (Role, error) {
	if a.role == nil {
		return Role{}, ruleErrorf(ReasonIllegalRoleTransition, "you are not working a role")
	}
	if !a.RoleCompleted() {
		return Role{}, ruleErrorf(ReasonIllegalRoleTransition,
			"%s is not finished; you cannot walk out on it", a.role.role.Name)
	}

	role := a.role.role
	a.releaseRole()
	return role, nil
}

// Upgrade buys a higher rank at the casting office. Nothing is charged
// unless the whole purchase goes through.
func (a *Actor) Upgrade(target int, pay Payment) (int, error) {
	var office *CastingOffice
	if a.room != nil {
		office, _ = a.room.Kind.(*CastingOffice)
	}
	if office == nil {
		return 0, ruleErrorf(ReasonInvalidLocation, "ranks are only sold at the casting office")
	}
	if a.role != nil {
		return 0, ruleErrorf(ReasonIllegalRoleTransition, "you cannot upgrade while working %s", a.role.role.Name)
	}

	cost, err := office.Prices.Cost(a.rank, target, pay)
	if err != nil {
		return 0, err
	}
	if err := a.points.Pay(pay, cost); err != nil {
		return 0, err
	}

	a.rank = target
	return cost, nil
}

// ForceClearRole drops the actor's role whether or not it was completed.
// Only the end of a day may do this.
func (a *Actor) ForceClearRole() {
	if a.role != nil {
		a.releaseRole()
	}
	a.points.ResetRehearsal()
}

// workableSet returns the set the actor can still act or rehearse on.
func (a *Actor) workableSet() (*Set, error) {
	if a.role == nil {
		return nil, ruleErrorf(ReasonRoleUnavailable, "you are not working a role")
	}
	set := a.role.set
	if !set.Active() || a.activeSet() != set {
		return nil, ruleErrorf(ReasonRoleUnavailable, "%s has wrapped", set.Card().Name)
	}
	if set.IsActed(a.role.ref) {
		return nil, ruleErrorf(ReasonRoleUnavailable, "you have already shot %s", a.role.role.Name)
	}
	return set, nil
}

func (a *Actor) activeSet() *Set {
	if a.room == nil {
		return nil
	}
	return a.room.ActiveSet()
}

func (a *Actor) releaseRole() {
	a.role.set.release(a.role.ref, a.Id)
	a.role = nil
	a.points.ResetRehearsal()
}

func (a *Actor) relocate(to *RoomInstance) {
	if a.room == to {
		return
	}
	if a.room != nil {
		a.room.leave(a)
	}
	to.enter(a)
	a.room = to
}
