package game

// CurrentActor describes the actor whose turn it is.
func (b *GameBoard) CurrentActor() ActorSnapshot {
	s := snapshotActor(b.current())
	s.Current = !b.Over()
	return s
}

// CurrentRoom describes the room the current actor is standing in.
func (b *GameBoard) CurrentRoom() RoomSnapshot {
	return snapshotRoom(b.current().room)
}

// AvailableRoles lists the roles the current actor could take right now:
// free, not yet shot, and within their rank.
func (b *GameBoard) AvailableRoles() []RoleSnapshot {
	a := b.current()
	set := a.activeSet()
	if set == nil {
		return nil
	}

	var roles []RoleSnapshot
	for _, ref := range set.Refs() {
		rs := snapshotRole(set, ref)
		if rs.Holder != "" || rs.Completed || rs.Level > a.rank {
			continue
		}
		roles = append(roles, rs)
	}
	return roles
}

// Roster describes every actor in seating order.
func (b *GameBoard) Roster() []ActorSnapshot {
	roster := make([]ActorSnapshot, 0, len(b.actors))
	for i, a := range b.actors {
		s := snapshotActor(a)
		s.Current = !b.Over() && i == b.turns.Current()
		roster = append(roster, s)
	}
	return roster
}

// UpgradeOptions is the casting office price list for the current actor.
func (b *GameBoard) UpgradeOptions() []UpgradeOption {
	office := b.office.Kind.(*CastingOffice)
	return office.Prices.Options(b.current().rank)
}

// Snapshot describes the whole board: day, actors, rooms and shot counters.
func (b *GameBoard) Snapshot() BoardSnapshot {
	s := BoardSnapshot{
		Id:     b.Id.String(),
		Day:    b.days.Current(),
		MaxDay: b.days.Max(),
		Over:   b.Over(),
		Deck:   b.deck.Remaining(),
		Actors: b.Roster(),
	}
	if !s.Over {
		s.Current = b.current().Id
	}
	for _, ri := range b.order {
		s.Rooms = append(s.Rooms, snapshotRoom(ri))
	}
	return s
}
