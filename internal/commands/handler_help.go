package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/pixil98/go-deadwood/internal/display"
	"github.com/pixil98/go-deadwood/internal/storage"
)

// HelpHandlerFactory creates handlers that display command help.
// Config:
//   - command (optional): show details for one command instead of the list
type HelpHandlerFactory struct {
	commands storage.Storer[*Command]
}

// NewHelpHandlerFactory creates a new HelpHandlerFactory.
func NewHelpHandlerFactory(commands storage.Storer[*Command]) *HelpHandlerFactory {
	return &HelpHandlerFactory{commands: commands}
}

func (f *HelpHandlerFactory) Spec() *HandlerSpec {
	return &HandlerSpec{
		Config: []ConfigRequirement{
			{Name: "command", Required: false},
		},
	}
}

func (f *HelpHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *HelpHandlerFactory) Create() (CommandFunc, error) {
	return func(ctx context.Context, cmdCtx *CommandContext) (any, error) {
		command := cmdCtx.Config["command"]
		if command != "" {
			return f.showCommand(command)
		}

		return f.listCommands(), nil
	}, nil
}

// listCommands lists all commands grouped by category.
func (f *HelpHandlerFactory) listCommands() string {
	all := f.commands.GetAll()

	// Group commands by category
	groups := make(map[string][]string)
	for id, cmd := range all {
		category := cmd.Category
		if category == "" {
			category = "other"
		}
		groups[category] = append(groups[category], id)
	}

	// Sort categories and commands within each category
	categories := make([]string, 0, len(groups))
	for cat := range groups {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	lines := []string{"Available commands:"}
	for _, cat := range categories {
		cmds := groups[cat]
		sort.Strings(cmds)
		lines = append(lines, fmt.Sprintf("  %s: %s", display.Capitalize(cat), strings.Join(cmds, ", ")))
	}

	return strings.Join(lines, "\n")
}

// showCommand describes a single command.
func (f *HelpHandlerFactory) showCommand(name string) (string, error) {
	name = strings.ToLower(name)
	cmd := f.commands.Get(name)
	if cmd == nil {
		return "", NewUserError(fmt.Sprintf("Command %q is unknown.", name))
	}

	lines := []string{fmt.Sprintf("%s: %s", name, cmd.Description)}
	lines = append(lines, fmt.Sprintf("Usage: %s", cmd.Usage(name)))
	if len(cmd.Aliases) > 0 {
		lines = append(lines, fmt.Sprintf("Also: %s", strings.Join(cmd.Aliases, ", ")))
	}
	if cmd.EndsTurn {
		lines = append(lines, "Ends your turn.")
	}

	return strings.Join(lines, "\n"), nil
}
