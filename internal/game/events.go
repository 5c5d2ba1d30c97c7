package game

import "github.com/google/uuid"

type EventType string

const (
	EventMoved         EventType = "moved"
	EventRoleTaken     EventType = "role-taken"
	EventActed         EventType = "acted"
	EventRehearsed     EventType = "rehearsed"
	EventRoleAbandoned EventType = "role-abandoned"
	EventUpgraded      EventType = "upgraded"
	EventSceneWrapped  EventType = "scene-wrapped"
	EventTurnEnded     EventType = "turn-ended"
	EventDayEnded      EventType = "day-ended"
	EventGameOver      EventType = "game-over"
)

// Event records something that happened on the board.
type Event struct {
	Id      uuid.UUID `json:"id"`
	BoardId uuid.UUID `json:"board_id"`
	Type    EventType `json:"type"`
	Actor   string    `json:"actor,omitempty"`
	Day     int       `json:"day"`
	Data    any       `json:"data,omitempty"`
}

// Publisher receives board events as they happen.
type Publisher interface {
	Publish(Event) error
}
