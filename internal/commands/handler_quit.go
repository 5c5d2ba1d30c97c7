package commands

import (
	"context"
)

// QuitHandlerFactory creates handlers that leave the console.
type QuitHandlerFactory struct{}

func (f *QuitHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *QuitHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *QuitHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		cmdCtx.Session.Quit = true
		return "Goodbye!", nil
	}, nil
}
