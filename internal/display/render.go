package display

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pixil98/go-deadwood/internal/game"
)

// Renderer turns engine results and snapshots into console text.
type Renderer struct {
	width int
	tmpl  *template.Template
}

func NewRenderer(width int) *Renderer {
	return &Renderer{
		width: width,
		tmpl:  template.Must(template.New("board").Funcs(templateFuncs).Parse(boardTemplates)),
	}
}

// Render formats v for display. Strings pass through wrapped; nil renders
// as nothing.
func (r *Renderer) Render(v any) (string, error) {
	var name string
	switch v := v.(type) {
	case nil:
		return "", nil
	case string:
		return WrapWidth(v, r.width), nil
	case *game.MoveResult:
		name = "move"
	case *game.TakeRoleResult:
		name = "work"
	case *game.ActResult:
		name = "act"
	case *game.RehearseResult:
		name = "rehearse"
	case *game.AbandonResult:
		name = "abandon"
	case *game.UpgradeResult:
		name = "upgrade"
	case *game.TurnResult:
		name = "turn"
	case game.RoomSnapshot:
		name = "room"
	case game.BoardSnapshot:
		name = "board"
	case []game.ActorSnapshot:
		name = "roster"
	case []game.RoleSnapshot:
		name = "roles"
	case []game.UpgradeOption:
		name = "prices"
	case []game.Score:
		name = "scores"
	default:
		return "", fmt.Errorf("no display for %T", v)
	}

	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, v); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	return WrapWidth(strings.TrimRight(buf.String(), "\n"), r.width), nil
}
