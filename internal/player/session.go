package player

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/pixil98/go-deadwood/internal/commands"
	"github.com/pixil98/go-deadwood/internal/game"
)

// BoardBuilder creates the board once the players are known.
type BoardBuilder func(players []string) (*game.GameBoard, error)

// Session is a hot-seat game at one console: players take turns typing
// commands until someone quits, input runs out, or the game ends.
type Session struct {
	in         *bufio.Reader
	console    *Console
	cmdHandler *commands.Handler
	build      BoardBuilder

	players []string
	ready   <-chan struct{}
	onDone  func()

	board *game.GameBoard
	state *commands.State
}

func NewSession(in io.Reader, console *Console, cmdHandler *commands.Handler, build BoardBuilder, opts ...SessionOpt) *Session {
	s := &Session{
		in:         bufio.NewReader(in),
		console:    console,
		cmdHandler: cmdHandler,
		build:      build,
		state:      &commands.State{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Board is the game being played, nil until the players are seated.
func (s *Session) Board() *game.GameBoard {
	return s.board
}

// Start seats the players, builds the board and plays until the session ends.
func (s *Session) Start(ctx context.Context) error {
	if s.onDone != nil {
		defer s.onDone()
	}

	if s.ready != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.ready:
		}
	}

	players := s.players
	if len(players) == 0 {
		var err error
		players, err = Seat(s.in, s.console)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("seating players: %w", err)
		}
	}

	board, err := s.build(players)
	if err != nil {
		return fmt.Errorf("building board: %w", err)
	}
	s.board = board

	slog.InfoContext(ctx, "game started", "board", board.Id, "players", len(players), "days", board.MaxDay())

	return s.Play(ctx)
}

func (s *Session) Play(ctx context.Context) error {
	if s.board == nil {
		return fmt.Errorf("no board to play on")
	}

	// Start goroutine to read input lines into a channel
	inputChan := make(chan string)
	inputErrChan := make(chan error, 1)
	stopped := make(chan struct{})
	defer close(stopped)
	go func() {
		defer close(inputChan)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case inputChan <- scanner.Text():
			case <-stopped:
				return
			}
		}
		inputErrChan <- scanner.Err()
	}()

	// Show the first player where they are
	err := s.exec(ctx, "look")
	if err != nil {
		return fmt.Errorf("initial look failed: %w", err)
	}

	err = s.prompt()
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case line, ok := <-inputChan:
			if !ok {
				// Input closed.
				select {
				case err := <-inputErrChan:
					return err
				default:
					return nil
				}
			}

			line = strings.TrimSpace(line)
			if line == "" {
				err = s.prompt()
				if err != nil {
					return err
				}
				continue
			}

			// Parse command and arguments
			parts := strings.Fields(line)
			err = s.exec(ctx, parts[0], parts[1:]...)
			if err != nil {
				return err
			}

			if s.state.Quit {
				return nil
			}

			if s.board.Over() {
				slog.InfoContext(ctx, "game finished", "board", s.board.Id)
				return nil
			}

			err = s.prompt()
			if err != nil {
				return err
			}
		}
	}
}

// exec runs one command. Errors meant for the player are shown to them;
// anything else ends the session.
func (s *Session) exec(ctx context.Context, cmdName string, args ...string) error {
	err := s.cmdHandler.Exec(ctx, s.board, s.state, cmdName, args...)
	if err == nil {
		return nil
	}

	var userErr *commands.UserError
	if errors.As(err, &userErr) {
		return s.console.writeLine(userErr.Message)
	}

	// System error - log and end the session
	return fmt.Errorf("command execution failed: %w", err)
}

func (s *Session) prompt() error {
	actor := s.board.CurrentActor()
	prompt := fmt.Sprintf("[Day %d/%d] %s> ", s.board.Day(), s.board.MaxDay(), actor.Name)
	_, err := s.console.Write([]byte(prompt))
	return err
}
