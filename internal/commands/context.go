package commands

import (
	"github.com/pixil98/go-deadwood/internal/game"
)

// State is the console session state a command may change.
type State struct {
	Quit bool
}

// CommandContext is what a compiled command runs against: the board, the
// actor whose turn it is, parsed inputs and the expanded config.
type CommandContext struct {
	Board   *game.GameBoard
	Actor   game.ActorSnapshot
	Inputs  map[string]any
	Config  map[string]string
	Session *State
}

// InputContext is used for Pass 1 expansion (config templates that reference inputs).
type InputContext struct {
	Inputs map[string]any // Parsed input values keyed by input name
}

// RuntimeContext is used for Pass 2 expansion (message templates with the
// command's result).
type RuntimeContext struct {
	Actor  game.ActorSnapshot
	Inputs map[string]any
	Result any
}
