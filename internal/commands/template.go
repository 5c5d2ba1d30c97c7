package commands

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/pixil98/go-deadwood/internal/display"
)

// expandInputTemplate expands a template string using InputContext (Pass 1).
// This substitutes input values into config strings before handler execution.
func expandInputTemplate(tmplStr string, ctx *InputContext) (string, error) {
	// Quick check: if no template markers, return as-is
	if !strings.Contains(tmplStr, "{{") {
		return tmplStr, nil
	}
	return display.ExpandTemplate(tmplStr, ctx)
}

// expandConfig runs Pass 1 over every config value. Non-string values are
// formatted as text first.
func expandConfig(config map[string]any, inputs map[string]any) (map[string]string, error) {
	ctx := &InputContext{Inputs: inputs}
	out := make(map[string]string, len(config))

	for _, k := range slices.Sorted(maps.Keys(config)) {
		var raw string
		switch v := config[k].(type) {
		case string:
			raw = v
		case nil:
		default:
			raw = fmt.Sprint(v)
		}

		s, err := expandInputTemplate(raw, ctx)
		if err != nil {
			return nil, fmt.Errorf("config %q: %w", k, err)
		}
		out[k] = strings.TrimSpace(s)
	}

	return out, nil
}

// expandMessage runs Pass 2 over a command's message template.
func expandMessage(tmplStr string, ctx *RuntimeContext) (string, error) {
	return display.ExpandTemplate(tmplStr, ctx)
}
