package player

type SessionOpt func(*Session)

// WithPlayers seats the named players and skips the casting call.
func WithPlayers(names []string) SessionOpt {
	return func(s *Session) {
		s.players = names
	}
}

// WithWaitFor holds the session back until ready is closed.
func WithWaitFor(ready <-chan struct{}) SessionOpt {
	return func(s *Session) {
		s.ready = ready
	}
}

// WithOnDone registers a function to call once play has finished.
func WithOnDone(fn func()) SessionOpt {
	return func(s *Session) {
		s.onDone = fn
	}
}
