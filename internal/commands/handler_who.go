package commands

import (
	"context"
)

// WhoHandlerFactory creates handlers that list every actor at the table.
type WhoHandlerFactory struct{}

func (f *WhoHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *WhoHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *WhoHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.Roster(), nil
	}, nil
}

// BoardHandlerFactory creates handlers that show the whole board.
type BoardHandlerFactory struct{}

func (f *BoardHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *BoardHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *BoardHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.Snapshot(), nil
	}, nil
}

// ScoresHandlerFactory creates handlers that show the standings.
type ScoresHandlerFactory struct{}

func (f *ScoresHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *ScoresHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *ScoresHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.Scores(), nil
	}, nil
}
