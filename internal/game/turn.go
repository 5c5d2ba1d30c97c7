package game

// TurnTracker cycles through the actors in seating order. A day lasts
// roundsPerDay trips around the table.
type TurnTracker struct {
	current      int
	count        int
	round        int
	roundsPerDay int
}

func NewTurnTracker(count int) *TurnTracker {
	return &TurnTracker{count: count, roundsPerDay: 1}
}

// Round is the zero-based round within the current day.
func (t *TurnTracker) Round() int {
	return t.round
}

// Current is the index of the actor whose turn it is.
func (t *TurnTracker) Current() int {
	return t.current
}

// EndTurn passes play to the next actor and reports whether the day is
// done: the order wrapped back to the first seat on the day's last round.
func (t *TurnTracker) EndTurn() bool {
	if t.count == 0 {
		return false
	}
	t.current = (t.current + 1) % t.count
	if t.current != 0 {
		return false
	}
	t.round++
	if t.round < t.roundsPerDay {
		return false
	}
	t.round = 0
	return true
}

const (
	FirstDay = 1

	shortGameDays    = 3
	longGameDays     = 4
	shortGamePlayers = 3
)

// MaxDays is the length of a game for the given number of players.
func MaxDays(players int) int {
	if players <= shortGamePlayers {
		return shortGameDays
	}
	return longGameDays
}

// DayTracker counts days from FirstDay to the last day of the game.
type DayTracker struct {
	current int
	max     int
	over    bool
}

func NewDayTracker(players int) *DayTracker {
	return &DayTracker{
		current: FirstDay,
		max:     MaxDays(players),
	}
}

func (d *DayTracker) Current() int    { return d.current }
func (d *DayTracker) Max() int        { return d.max }
func (d *DayTracker) Over() bool      { return d.over }
func (d *DayTracker) IsLastDay() bool { return d.current >= d.max }

// UpdateDay closes the current day. It returns true when that was the last
// day and the game is over; otherwise the counter moves on to the next day.
func (d *DayTracker) UpdateDay() bool {
	if d.over {
		return true
	}
	if d.current >= d.max {
		d.over = true
		return true
	}
	d.current++
	return false
}
