package player

import (
	"io"
	"sync"
)

// Console is the shared terminal everyone at the table reads. It receives
// command output for every channel.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w.Write(p)
}

// Publish satisfies commands.Publisher.
func (c *Console) Publish(subject string, data []byte) error {
	return c.writeLine(string(data))
}

func (c *Console) writeLine(msg string) error {
	_, err := c.Write([]byte(msg + "\n\n"))
	return err
}
