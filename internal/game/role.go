package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// MaxBudget is the highest budget a card can carry.
const MaxBudget = 6

// Role is a part that can be worked on a scene, either on the scene card
// (a starring role) or on a room's extras board.
type Role struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Line  string `json:"line,omitempty"`
}

// RoleCard is a scene card, or the extras board printed beside a film set.
type RoleCard struct {
	Scene       int    `json:"scene,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Budget      int    `json:"budget"`
	Roles       []Role `json:"roles"`
}

// Validate satisfies storage.ValidatingSpec.
func (c *RoleCard) Validate() error {
	return c.validate(true)
}

// validate checks the card. Scene cards must name themselves and carry a
// budget; an extras board may leave the budget at 0 to borrow the scene's.
func (c *RoleCard) validate(sceneCard bool) error {
	el := errors.NewErrorList()

	if sceneCard {
		if c.Name == "" {
			el.Add(fmt.Errorf("name is required"))
		}
		if c.Budget < 1 || c.Budget > MaxBudget {
			el.Add(fmt.Errorf("budget must be between 1 and %d", MaxBudget))
		}
	} else if c.Budget < 0 || c.Budget > MaxBudget {
		el.Add(fmt.Errorf("budget must be between 0 and %d", MaxBudget))
	}

	if len(c.Roles) == 0 {
		el.Add(fmt.Errorf("at least one role is required"))
	}

	seen := map[string]bool{}
	for i, r := range c.Roles {
		if r.Name == "" {
			el.Add(fmt.Errorf("role %d: name is required", i))
			continue
		}
		if r.Level < MinRank || r.Level > MaxRank {
			el.Add(fmt.Errorf("role %q: level must be between %d and %d", r.Name, MinRank, MaxRank))
		}
		k := Key(r.Name)
		if seen[k] {
			el.Add(fmt.Errorf("role %q: duplicate name", r.Name))
		}
		seen[k] = true
	}

	return el.Err()
}

// Role finds a role by name, ignoring case.
func (c *RoleCard) Role(name string) (Role, bool) {
	if c == nil {
		return Role{}, false
	}
	for _, r := range c.Roles {
		if sameName(r.Name, name) {
			return r, true
		}
	}
	return Role{}, false
}

// Slot returns the 1-based payout slot for the named role, which is the
// role's level, or 0 if the role is not on the card. A slot beyond the
// number of roles on the card is never dealt a die.
func (c *RoleCard) Slot(name string) int {
	if r, ok := c.Role(name); ok {
		return r.Level
	}
	return 0
}
