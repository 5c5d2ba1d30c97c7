package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Subscriber is the part of the server the event logger needs.
type Subscriber interface {
	Ready() <-chan struct{}
	Subscribe(subject string, handler func(subject string, data []byte)) (func(), error)
}

// EventLogger is a worker that follows every board's event feed and logs
// each event, the same way a spectator client would.
type EventLogger struct {
	sub Subscriber
}

func NewEventLogger(sub Subscriber) *EventLogger {
	return &EventLogger{sub: sub}
}

func (l *EventLogger) Start(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	case <-l.sub.Ready():
	}

	unsubscribe, err := l.sub.Subscribe(SubjectPrefix+".>", func(subject string, data []byte) {
		l.log(ctx, subject, data)
	})
	if err != nil {
		return err
	}
	defer unsubscribe()

	<-ctx.Done()
	return nil
}

func (l *EventLogger) log(ctx context.Context, subject string, data []byte) {
	var ev struct {
		Type  string `json:"type"`
		Actor string `json:"actor"`
		Day   int    `json:"day"`
	}
	if err := json.Unmarshal(data, &ev); err != nil {
		slog.WarnContext(ctx, "unreadable board event", "subject", subject, "error", err)
		return
	}
	slog.InfoContext(ctx, "board event", "subject", subject, "type", ev.Type, "actor", ev.Actor, "day", ev.Day)
}
