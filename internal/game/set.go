package game

// RoleRef names a role on a set. Starring and extra roles live in separate
// namespaces, so the same name may appear once in each.
type RoleRef struct {
	Name  string
	Extra bool
}

// Set is one scene being shot in a film set room. It is created when a card
// is dealt to the room and replaced, never reused, on the next deal.
//
// A set is Open while active with shots remaining and Wrapped once the last
// shot is taken. A wrapped set accepts no new roles, acting or rehearsing.
type Set struct {
	scene      SceneCard
	extras     *RoleCard
	shots      int
	totalShots int

	taken  map[RoleRef]string // role -> actor id
	acted  map[RoleRef]bool
	active bool
}

// NewSet opens a scene with a full shot counter.
func NewSet(scene SceneCard, extras *RoleCard, shots int) *Set {
	return &Set{
		scene:      scene,
		extras:     extras,
		shots:      shots,
		totalShots: shots,
		taken:      map[RoleRef]string{},
		acted:      map[RoleRef]bool{},
		active:     shots > 0,
	}
}

func (s *Set) SceneID() string     { return s.scene.ID }
func (s *Set) Card() *RoleCard     { return s.scene.Card }
func (s *Set) Extras() *RoleCard   { return s.extras }
func (s *Set) Active() bool        { return s.active }
func (s *Set) ShotsRemaining() int { return s.shots }
func (s *Set) TotalShots() int     { return s.totalShots }

// NumStarringRoles is the number of payout slots on the scene card.
func (s *Set) NumStarringRoles() int {
	return len(s.scene.Card.Roles)
}

// Lookup finds a role by name, ignoring case. Starring roles win over
// extras with the same name.
func (s *Set) Lookup(name string) (RoleRef, Role, bool) {
	if r, ok := s.scene.Card.Role(name); ok {
		return RoleRef{Name: r.Name}, r, true
	}
	if r, ok := s.extras.Role(name); ok {
		return RoleRef{Name: r.Name, Extra: true}, r, true
	}
	return RoleRef{}, Role{}, false
}

// roleFor resolves a ref back to its role, searching only its own card.
func (s *Set) roleFor(ref RoleRef) (Role, bool) {
	card := s.scene.Card
	if ref.Extra {
		card = s.extras
	}
	return card.Role(ref.Name)
}

// Budget is the acting target for the role: the scene budget for starring
// roles, and the extras budget for extras when the room sets one.
func (s *Set) Budget(ref RoleRef) int {
	if ref.Extra && s.extras != nil && s.extras.Budget > 0 {
		return s.extras.Budget
	}
	return s.scene.Card.Budget
}

// Holder returns the id of the actor working the role.
func (s *Set) Holder(ref RoleRef) (string, bool) {
	id, ok := s.taken[ref]
	return id, ok
}

// IsActed reports whether the role has been completed.
func (s *Set) IsActed(ref RoleRef) bool {
	return s.acted[ref]
}

// Refs lists every role on the set, starring roles first, in card order.
func (s *Set) Refs() []RoleRef {
	var refs []RoleRef
	for _, r := range s.scene.Card.Roles {
		refs = append(refs, RoleRef{Name: r.Name})
	}
	if s.extras != nil {
		for _, r := range s.extras.Roles {
			refs = append(refs, RoleRef{Name: r.Name, Extra: true})
		}
	}
	return refs
}

func (s *Set) claim(ref RoleRef, actorId string) error {
	if !s.active {
		return ruleErrorf(ReasonRoleUnavailable, "%s has wrapped", s.scene.Card.Name)
	}
	if s.acted[ref] {
		return ruleErrorf(ReasonRoleUnavailable, "%s has already been shot", ref.Name)
	}
	if _, ok := s.taken[ref]; ok {
		return ruleErrorf(ReasonRoleUnavailable, "%s is already taken", ref.Name)
	}
	s.taken[ref] = actorId
	return nil
}

func (s *Set) release(ref RoleRef, actorId string) {
	if s.taken[ref] == actorId {
		delete(s.taken, ref)
	}
}

func (s *Set) complete(ref RoleRef) {
	s.acted[ref] = true
}

// shoot takes one shot off the counter and returns how many are left.
func (s *Set) shoot() int {
	if s.shots > 0 {
		s.shots--
	}
	return s.shots
}

// wrap closes the scene: every role counts as shot and the set goes inactive.
func (s *Set) wrap() {
	for _, ref := range s.Refs() {
		s.acted[ref] = true
	}
	s.shots = 0
	s.active = false
}
