package commands

import (
	"context"
)

// LookHandlerFactory creates handlers that display the current room.
type LookHandlerFactory struct{}

func (f *LookHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *LookHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *LookHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.CurrentRoom(), nil
	}, nil
}

// RolesHandlerFactory creates handlers that list the roles the current actor
// could take.
type RolesHandlerFactory struct{}

func (f *RolesHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *RolesHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *RolesHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.AvailableRoles(), nil
	}, nil
}
