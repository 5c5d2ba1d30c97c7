package commands

import (
	"context"
	"fmt"
)

// MoveHandlerFactory creates handlers that walk the current actor to an
// adjacent room.
// Config:
//   - room (required): the destination room, usually "{{ .Inputs.room }}"
type MoveHandlerFactory struct{}

func (f *MoveHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "room", Required: true},
		},
	}
}

func (f *MoveHandlerFactory) ValidateConfig(config map[string]any) error {
	return requireString(config, "room")
}

func (f *MoveHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		room := cmdCtx.Config["room"]
		if room == "" {
			return nil, NewUserError("Move where?")
		}
		return cmdCtx.Board.Move(room)
	}, nil
}

// requireString checks that key holds a non-empty string.
func requireString(config map[string]any, key string) error {
	v, ok := config[key].(string)
	if !ok || v == "" {
		return fmt.Errorf("%s is required", key)
	}
	return nil
}
