package commands

import (
	"context"
)

// MessageHandlerFactory creates handlers that show a fixed piece of text,
// such as the rules summary.
// Config:
//   - text (required): the text to show, may reference .Inputs
type MessageHandlerFactory struct{}

func (f *MessageHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "text", Required: true},
		},
	}
}

func (f *MessageHandlerFactory) ValidateConfig(config map[string]any) error {
	return requireString(config, "text")
}

func (f *MessageHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Config["text"], nil
	}, nil
}
