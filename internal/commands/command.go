package commands

import (
	"fmt"
	"strings"
)

// InputType represents the type of a command input parameter.
type InputType string

const (
	InputTypeString InputType = "string" // Text input (single word if rest=false, multi-word if rest=true)
	InputTypeNumber InputType = "number" // Integer
)

// InputSpec defines an input parameter that a command accepts from user input.
type InputSpec struct {
	Name     string    `json:"name"`
	Type     InputType `json:"type"`
	Required bool      `json:"required"`
	Rest     bool      `json:"rest"`              // If true, captures all remaining input
	Missing  string    `json:"missing,omitempty"` // Shown instead of the generic message when a required input is absent
}

// Command defines a console verb loaded from JSON.
type Command struct {
	Handler     string         `json:"handler"`
	Category    string         `json:"category,omitempty"`
	Description string         `json:"description,omitempty"`
	Aliases     []string       `json:"aliases,omitempty"`
	Priority    int            `json:"priority,omitempty"`  // Breaks ties when an abbreviation matches several commands
	EndsTurn    bool           `json:"ends_turn,omitempty"` // End the actor's turn after a successful run
	Config      map[string]any `json:"config,omitempty"`    // Config passed to handler, may reference .Inputs
	Message     string         `json:"message,omitempty"`   // Template for the output, replaces the default display
	Inputs      []InputSpec    `json:"inputs,omitempty"`
}

func (c *Command) Validate() error {
	if c.Handler == "" {
		return fmt.Errorf("command handler not set")
	}

	for i, alias := range c.Aliases {
		if strings.TrimSpace(alias) == "" || strings.ContainsAny(alias, " \t") {
			return fmt.Errorf("alias %d: must be a single word", i)
		}
	}

	for i, input := range c.Inputs {
		if input.Name == "" {
			return fmt.Errorf("input %d: name is required", i)
		}
		if input.Type == "" {
			return fmt.Errorf("input %q: type is required", input.Name)
		}
		// Validate input type is a known primitive
		switch input.Type {
		case InputTypeString, InputTypeNumber:
			// Valid
		default:
			return fmt.Errorf("input %q: unknown type %q", input.Name, input.Type)
		}
		// Only the last input can have rest=true
		if input.Rest && i != len(c.Inputs)-1 {
			return fmt.Errorf("input %q: only the last input can have rest=true", input.Name)
		}
	}

	return nil
}

// Usage is the one-line synopsis shown by help.
func (c *Command) Usage(name string) string {
	parts := []string{name}
	for _, input := range c.Inputs {
		if input.Required {
			parts = append(parts, fmt.Sprintf("<%s>", input.Name))
		} else {
			parts = append(parts, fmt.Sprintf("[%s]", input.Name))
		}
	}
	return strings.Join(parts, " ")
}
