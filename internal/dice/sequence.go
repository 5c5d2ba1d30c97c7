package dice

// Sequence is a deterministic Source that replays a fixed list of rolls,
// starting over when it runs out. Shuffle leaves the order untouched.
type Sequence struct {
	rolls []int
	next  int
}

// NewSequence returns a Sequence replaying rolls. Values outside 1..6 are
// clamped so a Sequence always behaves like a real die.
func NewSequence(rolls ...int) *Sequence {
	s := &Sequence{rolls: make([]int, len(rolls))}
	for i, r := range rolls {
		s.rolls[i] = clamp(r)
	}
	return s
}

// Roll returns the next value in the sequence. An empty Sequence always rolls 1.
func (s *Sequence) Roll() int {
	if len(s.rolls) == 0 {
		return 1
	}
	r := s.rolls[s.next%len(s.rolls)]
	s.next++
	return r
}

// Shuffle is a no-op; dealt order matches insertion order.
func (s *Sequence) Shuffle(int, func(i, j int)) {}

// Rolled returns how many values have been drawn so far.
func (s *Sequence) Rolled() int {
	return s.next
}

func clamp(r int) int {
	switch {
	case r < 1:
		return 1
	case r > Sides:
		return Sides
	default:
		return r
	}
}
