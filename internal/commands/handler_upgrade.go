package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pixil98/go-deadwood/internal/game"
)

// UpgradeHandlerFactory creates handlers that buy a rank at the casting office.
// Config:
//   - rank (required): the target rank, usually "{{ .Inputs.rank }}"
//   - payment (required): "cash" or "credit"
type UpgradeHandlerFactory struct{}

func (f *UpgradeHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "rank", Required: true},
			{Name: "payment", Required: true},
		},
	}
}

func (f *UpgradeHandlerFactory) ValidateConfig(config map[string]any) error {
	if err := requireString(config, "rank"); err != nil {
		return err
	}
	return requireString(config, "payment")
}

func (f *UpgradeHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		rank, err := strconv.Atoi(cmdCtx.Config["rank"])
		if err != nil {
			return nil, NewUserError(fmt.Sprintf("%q is not a rank.", cmdCtx.Config["rank"]))
		}

		pay, err := game.ParsePayment(cmdCtx.Config["payment"])
		if err != nil {
			return nil, err
		}

		return cmdCtx.Board.Upgrade(rank, pay)
	}, nil
}

// PricesHandlerFactory creates handlers that list the ranks the current
// actor could buy.
type PricesHandlerFactory struct{}

func (f *PricesHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *PricesHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *PricesHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		return cmdCtx.Board.UpgradeOptions(), nil
	}, nil
}
