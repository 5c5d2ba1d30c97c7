package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/pixil98/go-deadwood/internal/display"
	"github.com/pixil98/go-deadwood/internal/game"
	"github.com/pixil98/go-deadwood/internal/storage"
)

// BoardChannel carries announcements every player at the table should see.
const BoardChannel = "board"

// PlayerChannel is the subject a single actor's command output goes to.
func PlayerChannel(actorId string) string {
	return fmt.Sprintf("player-%s", actorId)
}

// ParsedInput represents a validated and parsed command input.
type ParsedInput struct {
	Spec  *InputSpec
	Raw   string // Original player input
	Value any    // Parsed value: int for number, string for string
}

// CommandFunc is the signature for compiled command functions. The returned
// value is what gets displayed to the player.
type CommandFunc func(ctx context.Context, cmdCtx *CommandContext) (any, error)

// ConfigRequirement names a config key a handler reads.
type ConfigRequirement struct {
	Name     string
	Required bool
}

// HandlerSpec declares what a handler expects from its command definition.
type HandlerSpec struct {
	Config []ConfigRequirement
}

// HandlerFactory creates CommandFuncs from command configurations.
// Implementations should expose their expected config structure.
type HandlerFactory interface {
	// Spec returns the handler's requirements, or nil if it has none.
	Spec() *HandlerSpec
	// ValidateConfig validates that the config contains required fields.
	ValidateConfig(config map[string]any) error
	// Create creates a CommandFunc from the validated config.
	Create() (CommandFunc, error)
}

// compiledCommand holds a command that's been validated and compiled.
type compiledCommand struct {
	id      storage.Identifier
	cmd     *Command
	cmdFunc CommandFunc
}

// Publisher provides the ability to publish messages to subjects
type Publisher interface {
	Publish(subject string, data []byte) error
}

type Handler struct {
	store     storage.Storer[*Command]
	factories map[string]HandlerFactory
	compiled  map[storage.Identifier]*compiledCommand
	publisher Publisher
	renderer  *display.Renderer
}

func NewHandler(c storage.Storer[*Command], publisher Publisher, r *display.Renderer) *Handler {
	if r == nil {
		r = display.NewRenderer(display.DefaultWidth)
	}

	h := &Handler{
		store:     c,
		factories: make(map[string]HandlerFactory),
		compiled:  make(map[storage.Identifier]*compiledCommand),
		publisher: publisher,
		renderer:  r,
	}

	// Register built-in handlers
	h.factories["move"] = &MoveHandlerFactory{}
	h.factories["work"] = &WorkHandlerFactory{}
	h.factories["act"] = &ActHandlerFactory{}
	h.factories["rehearse"] = &RehearseHandlerFactory{}
	h.factories["abandon"] = &AbandonHandlerFactory{}
	h.factories["upgrade"] = &UpgradeHandlerFactory{}
	h.factories["end"] = &EndHandlerFactory{}
	h.factories["look"] = &LookHandlerFactory{}
	h.factories["who"] = &WhoHandlerFactory{}
	h.factories["board"] = &BoardHandlerFactory{}
	h.factories["roles"] = &RolesHandlerFactory{}
	h.factories["prices"] = &PricesHandlerFactory{}
	h.factories["scores"] = &ScoresHandlerFactory{}
	h.factories["message"] = &MessageHandlerFactory{}
	h.factories["help"] = NewHelpHandlerFactory(c)
	h.factories["quit"] = &QuitHandlerFactory{}

	return h
}

// RegisterFactory registers a handler factory by name.
// The name must match the "handler" field in command JSON definitions.
func (h *Handler) RegisterFactory(name string, factory HandlerFactory) error {
	if name == "" {
		return fmt.Errorf("handler name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("handler factory cannot be nil")
	}
	if _, exists := h.factories[name]; exists {
		return fmt.Errorf("handler factory %q already registered", name)
	}
	h.factories[name] = factory
	return nil
}

// CompileAll compiles all commands from the store.
// Call this after all handler factories have been registered.
func (h *Handler) CompileAll() error {
	all := h.store.GetAll()
	for _, id := range slices.Sorted(maps.Keys(all)) {
		err := h.compile(storage.Identifier(id), all[id])
		if err != nil {
			return fmt.Errorf("compiling command %q: %w", id, err)
		}
	}
	return nil
}

func (h *Handler) compile(id storage.Identifier, cmd *Command) error {
	factory, ok := h.factories[cmd.Handler]
	if !ok {
		return fmt.Errorf("unknown handler %q", cmd.Handler)
	}

	if spec := factory.Spec(); spec != nil {
		for _, req := range spec.Config {
			if _, ok := cmd.Config[req.Name]; req.Required && !ok {
				return fmt.Errorf("config %q is required by handler %q", req.Name, cmd.Handler)
			}
		}
	}

	if err := factory.ValidateConfig(cmd.Config); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	cmdFunc, err := factory.Create()
	if err != nil {
		return fmt.Errorf("creating handler: %w", err)
	}

	name := storage.Identifier(strings.ToLower(id.String()))
	if _, exists := h.compiled[name]; exists {
		return fmt.Errorf("command %q conflicts with an existing command or alias", name)
	}

	cc := &compiledCommand{
		id:      name,
		cmd:     cmd,
		cmdFunc: cmdFunc,
	}
	h.compiled[name] = cc

	for _, alias := range cmd.Aliases {
		a := storage.Identifier(strings.ToLower(alias))
		if _, exists := h.compiled[a]; exists {
			return fmt.Errorf("alias %q conflicts with an existing command or alias", a)
		}
		h.compiled[a] = cc
	}

	return nil
}

// resolve finds the command a player meant. An exact name or alias wins;
// otherwise the name is treated as an abbreviation and the highest priority
// match is used.
func (h *Handler) resolve(input string) (*compiledCommand, error) {
	name := strings.ToLower(input)
	if cc, ok := h.compiled[storage.Identifier(name)]; ok {
		return cc, nil
	}

	var matches []*compiledCommand
	for key, cc := range h.compiled {
		if strings.HasPrefix(key.String(), name) && !slices.Contains(matches, cc) {
			matches = append(matches, cc)
		}
	}

	if len(matches) == 0 {
		return nil, NewUserError(fmt.Sprintf("Command %q is unknown.", input))
	}

	best := slices.MaxFunc(matches, func(a, b *compiledCommand) int {
		return a.cmd.Priority - b.cmd.Priority
	})

	var tied []string
	for _, cc := range matches {
		if cc.cmd.Priority == best.cmd.Priority {
			tied = append(tied, cc.id.String())
		}
	}
	if len(tied) > 1 {
		slices.Sort(tied)
		return nil, NewUserError(fmt.Sprintf("Did you mean: %s?", strings.Join(tied, ", ")))
	}

	return best, nil
}

// Exec runs a command for the actor whose turn it is. Output goes to that
// actor's channel; turn changes go to the board channel.
func (h *Handler) Exec(ctx context.Context, board *game.GameBoard, state *State, cmdName string, rawArgs ...string) error {
	compiled, err := h.resolve(cmdName)
	if err != nil {
		return err
	}

	parsed, err := h.parseInputs(compiled.cmd.Inputs, rawArgs)
	if err != nil {
		return err
	}

	// Omitted optional inputs read as their zero value in templates.
	inputs := make(map[string]any, len(compiled.cmd.Inputs))
	for _, spec := range compiled.cmd.Inputs {
		if spec.Type == InputTypeNumber {
			inputs[spec.Name] = 0
		} else {
			inputs[spec.Name] = ""
		}
	}
	for _, in := range parsed {
		inputs[in.Spec.Name] = in.Value
	}

	config, err := expandConfig(compiled.cmd.Config, inputs)
	if err != nil {
		return fmt.Errorf("expanding config for %q: %w", compiled.id, err)
	}

	if state == nil {
		state = &State{}
	}

	cmdCtx := &CommandContext{
		Board:   board,
		Actor:   board.CurrentActor(),
		Inputs:  inputs,
		Config:  config,
		Session: state,
	}

	result, err := compiled.cmdFunc(ctx, cmdCtx)
	if err != nil {
		return asUserError(err)
	}

	if err := h.respond(cmdCtx, compiled.cmd, result); err != nil {
		return err
	}

	if compiled.cmd.EndsTurn && !board.Over() {
		turn, err := board.EndTurn()
		if err != nil {
			return asUserError(err)
		}
		return h.announce(turn)
	}

	return nil
}

// respond sends a command's result to the acting player, through the
// command's message template if it has one.
func (h *Handler) respond(cmdCtx *CommandContext, cmd *Command, result any) error {
	var out string
	var err error
	if cmd.Message != "" {
		out, err = expandMessage(cmd.Message, &RuntimeContext{
			Actor:  cmdCtx.Actor,
			Inputs: cmdCtx.Inputs,
			Result: result,
		})
		if err == nil {
			out = display.Wrap(out)
		}
	} else {
		out, err = h.renderer.Render(result)
	}
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}

	return h.publish(PlayerChannel(cmdCtx.Actor.Id), out)
}

// announce tells the table whose turn it is now.
func (h *Handler) announce(turn *game.TurnResult) error {
	out, err := h.renderer.Render(turn)
	if err != nil {
		return fmt.Errorf("rendering turn: %w", err)
	}
	return h.publish(BoardChannel, out)
}

func (h *Handler) publish(subject string, out string) error {
	if h.publisher == nil || out == "" {
		return nil
	}
	if err := h.publisher.Publish(subject, []byte(out)); err != nil {
		slog.Warn("publishing command output", "subject", subject, "error", err)
	}
	return nil
}

// asUserError turns a rule refusal into something the player can read.
// Anything else is passed through untouched.
func asUserError(err error) error {
	var re *game.RuleError
	if errors.As(err, &re) {
		return &UserError{Message: display.Capitalize(re.Message) + ".", Err: err}
	}
	return err
}

// parseInputs validates raw string arguments against input specs.
func (h *Handler) parseInputs(specs []InputSpec, rawArgs []string) ([]ParsedInput, error) {
	// Count required inputs (rest inputs only need 1 word minimum)
	requiredCount := 0
	for _, spec := range specs {
		if spec.Required {
			requiredCount++
		}
	}

	if len(rawArgs) < requiredCount {
		if missing := specs[len(rawArgs)].Missing; missing != "" {
			return nil, NewUserError(missing)
		}
		return nil, NewUserError(fmt.Sprintf("Expected at least %d argument(s), got %d.", requiredCount, len(rawArgs)))
	}

	// If no rest input, check we don't have too many args
	hasRest := len(specs) > 0 && specs[len(specs)-1].Rest
	if !hasRest && len(rawArgs) > len(specs) {
		return nil, NewUserError(fmt.Sprintf("Expected at most %d argument(s), got %d.", len(specs), len(rawArgs)))
	}

	inputs := make([]ParsedInput, 0, len(specs))
	argIndex := 0

	for i := range specs {
		spec := &specs[i]

		if argIndex >= len(rawArgs) {
			// No more input - this input must be optional
			if spec.Required {
				return nil, NewUserError(fmt.Sprintf("Missing required input: %s.", spec.Name))
			}
			continue
		}

		var raw string
		if spec.Rest {
			// Consume all remaining args joined with spaces
			raw = strings.Join(rawArgs[argIndex:], " ")
			argIndex = len(rawArgs)
		} else {
			raw = rawArgs[argIndex]
			argIndex++
		}

		value, err := h.parseValue(spec.Type, raw)
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, ParsedInput{
			Spec:  spec,
			Raw:   raw,
			Value: value,
		})
	}

	return inputs, nil
}

// parseValue parses a raw string into the appropriate type.
func (h *Handler) parseValue(inputType InputType, raw string) (any, error) {
	switch inputType {
	case InputTypeString:
		return raw, nil

	case InputTypeNumber:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, NewUserError(fmt.Sprintf("%q is not a valid number.", raw))
		}
		return n, nil

	default:
		return nil, fmt.Errorf("unknown input type %q", inputType)
	}
}
