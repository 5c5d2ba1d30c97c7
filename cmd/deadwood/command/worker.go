package command

import (
	"fmt"
	"io"

	"github.com/pixil98/go-deadwood/internal/commands"
	"github.com/pixil98/go-deadwood/internal/display"
	"github.com/pixil98/go-deadwood/internal/game"
	"github.com/pixil98/go-deadwood/internal/messaging"
	"github.com/pixil98/go-deadwood/internal/player"
	"github.com/pixil98/go-service"
)

// NewWorkerBuilder wires a console session on in/out. done is called once
// the session ends so the rest of the app can shut down.
func NewWorkerBuilder(in io.Reader, out io.Writer, done func()) func(config interface{}) (service.WorkerList, error) {
	return func(config interface{}) (service.WorkerList, error) {
		cfg, ok := config.(*Config)
		if !ok {
			return nil, fmt.Errorf("unable to cast config")
		}

		dict, err := cfg.Storage.BuildDictionary()
		if err != nil {
			return nil, fmt.Errorf("building dictionary: %w", err)
		}

		cmds, err := cfg.Storage.Commands.BuildFileStore()
		if err != nil {
			return nil, fmt.Errorf("creating command store: %w", err)
		}

		console := player.NewConsole(out)
		handler := commands.NewHandler(cmds, console, display.NewRenderer(cfg.Game.width()))
		if err := handler.CompileAll(); err != nil {
			return nil, fmt.Errorf("compiling commands: %w", err)
		}

		workers := service.WorkerList{}
		sessionOpts := []player.SessionOpt{player.WithOnDone(done)}
		if len(cfg.Game.Players) > 0 {
			sessionOpts = append(sessionOpts, player.WithPlayers(cfg.Game.Players))
		}

		var pub game.Publisher
		if cfg.Nats.Enabled {
			ns, err := cfg.Nats.buildNatsServer()
			if err != nil {
				return nil, fmt.Errorf("creating nats server: %w", err)
			}
			workers["nats"] = ns
			pub = messaging.NewEventPublisher(ns)
			sessionOpts = append(sessionOpts, player.WithWaitFor(ns.Ready()))

			if cfg.Nats.LogEvents {
				workers["events"] = messaging.NewEventLogger(ns)
			}
		}

		workers["session"] = player.NewSession(in, console, handler, cfg.Game.boardBuilder(dict, pub), sessionOpts...)

		return workers, nil
	}
}
