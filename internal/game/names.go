package game

import (
	"strings"

	"golang.org/x/text/cases"
)

// Key folds a room, role or actor name so lookups ignore case and surrounding space.
func Key(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func sameName(a, b string) bool {
	return Key(a) == Key(b)
}
