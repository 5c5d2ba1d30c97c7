package commands

import (
	"context"
)

// WorkHandlerFactory creates handlers that take a role on the current set.
// Config:
//   - role (required): the role name, usually "{{ .Inputs.role }}"
type WorkHandlerFactory struct{}

func (f *WorkHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "role", Required: true},
		},
	}
}

func (f *WorkHandlerFactory) ValidateConfig(config map[string]any) error {
	return requireString(config, "role")
}

func (f *WorkHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		role := cmdCtx.Config["role"]
		if role == "" {
			return nil, NewUserError("Work which role?")
		}
		return cmdCtx.Board.TakeRole(role)
	}, nil
}

// AbandonHandlerFactory creates handlers that leave a finished role.
type AbandonHandlerFactory struct{}

func (f *AbandonHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *AbandonHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *AbandonHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.AbandonRole()
	}, nil
}
