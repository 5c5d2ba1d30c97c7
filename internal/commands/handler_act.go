package commands

import (
	"context"
)

// ActHandlerFactory creates handlers that roll for the current role.
type ActHandlerFactory struct{}

func (f *ActHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *ActHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *ActHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.Act()
	}, nil
}

// RehearseHandlerFactory creates handlers that bank a rehearsal bonus.
type RehearseHandlerFactory struct{}

func (f *RehearseHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *RehearseHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *RehearseHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.Rehearse()
	}, nil
}
