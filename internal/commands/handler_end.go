package commands

import (
	"context"
)

// EndHandlerFactory creates handlers that pass the turn without acting.
type EndHandlerFactory struct{}

func (f *EndHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *EndHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *EndHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.EndTurn()
	}, nil
}
