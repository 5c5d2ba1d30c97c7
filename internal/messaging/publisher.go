package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/pixil98/go-deadwood/internal/game"
)

// SubjectPrefix starts every board event subject.
const SubjectPrefix = "deadwood"

// Conn is the part of a NATS connection the publisher needs.
type Conn interface {
	Publish(subject string, data []byte) error
}

// EventPublisher forwards board events as JSON, one subject per board and
// event type: deadwood.<board>.<type>.
type EventPublisher struct {
	conn Conn
}

func NewEventPublisher(conn Conn) *EventPublisher {
	return &EventPublisher{conn: conn}
}

// Publish satisfies game.Publisher.
func (p *EventPublisher) Publish(ev game.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", ev.Type, err)
	}
	return p.conn.Publish(EventSubject(ev), data)
}

// EventSubject is the subject an event is published on.
func EventSubject(ev game.Event) string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, ev.BoardId, ev.Type)
}
