package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-deadwood/internal/game"
	"github.com/pixil98/go-deadwood/internal/storage"
	"github.com/pixil98/go-testutil"
)

func TestHandler_parseValue(t *testing.T) {
	h := &Handler{}

	tests := map[string]struct {
		inputType InputType
		raw       string
		exp       any
		expErr    string
	}{
		"string type": {
			inputType: InputTypeString,
			raw:       "main street",
			exp:       "main street",
		},
		"number type valid": {
			inputType: InputTypeNumber,
			raw:       "4",
			exp:       4,
		},
		"number type negative": {
			inputType: InputTypeNumber,
			raw:       "-2",
			exp:       -2,
		},
		"number type invalid": {
			inputType: InputTypeNumber,
			raw:       "abc",
			expErr:    `"abc" is not a valid number.`,
		},
		"number type float rejected": {
			inputType: InputTypeNumber,
			raw:       "3.5",
			expErr:    `"3.5" is not a valid number.`,
		},
		"unknown type": {
			inputType: InputType("bogus"),
			raw:       "test",
			expErr:    `unknown input type "bogus"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := h.parseValue(tt.inputType, tt.raw)

			if tt.expErr != "" {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.expErr)
					return
				}
				if err.Error() != tt.expErr {
					t.Errorf("error = %q, expected %q", err.Error(), tt.expErr)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if got != tt.exp {
				t.Errorf("got %v, expected %v", got, tt.exp)
			}
		})
	}
}

func TestHandler_parseInputs(t *testing.T) {
	h := &Handler{}

	tests := map[string]struct {
		specs   []InputSpec
		rawArgs []string
		exp     []ParsedInput
		expErr  string
	}{
		"no inputs no args": {
			specs:   nil,
			rawArgs: nil,
			exp:     []ParsedInput{},
		},
		"no inputs with args rejected": {
			specs:   nil,
			rawArgs: []string{"extra"},
			expErr:  "Expected at most 0 argument(s), got 1.",
		},
		"required input missing": {
			specs: []InputSpec{
				{Name: "rank", Type: InputTypeNumber, Required: true},
			},
			rawArgs: nil,
			expErr:  "Expected at least 1 argument(s), got 0.",
		},
		"required input provided": {
			specs: []InputSpec{
				{Name: "rank", Type: InputTypeNumber, Required: true},
			},
			rawArgs: []string{"3"},
			exp: []ParsedInput{
				{
					Spec:  &InputSpec{Name: "rank", Type: InputTypeNumber, Required: true},
					Raw:   "3",
					Value: 3,
				},
			},
		},
		"optional input omitted": {
			specs: []InputSpec{
				{Name: "command", Type: InputTypeString},
			},
			rawArgs: nil,
			exp:     []ParsedInput{},
		},
		"rest input captures remaining": {
			specs: []InputSpec{
				{Name: "role", Type: InputTypeString, Required: true, Rest: true},
			},
			rawArgs: []string{"woman", "in", "black", "dress"},
			exp: []ParsedInput{
				{
					Spec:  &InputSpec{Name: "role", Type: InputTypeString, Required: true, Rest: true},
					Raw:   "woman in black dress",
					Value: "woman in black dress",
				},
			},
		},
		"mixed inputs": {
			specs: []InputSpec{
				{Name: "rank", Type: InputTypeNumber, Required: true},
				{Name: "payment", Type: InputTypeString, Required: true},
			},
			rawArgs: []string{"2", "credit"},
			exp: []ParsedInput{
				{
					Spec:  &InputSpec{Name: "rank", Type: InputTypeNumber, Required: true},
					Raw:   "2",
					Value: 2,
				},
				{
					Spec:  &InputSpec{Name: "payment", Type: InputTypeString, Required: true},
					Raw:   "credit",
					Value: "credit",
				},
			},
		},
		"too many args without rest": {
			specs: []InputSpec{
				{Name: "rank", Type: InputTypeNumber, Required: true},
			},
			rawArgs: []string{"2", "cash", "now"},
			expErr:  "Expected at most 1 argument(s), got 3.",
		},
		"number parse error": {
			specs: []InputSpec{
				{Name: "rank", Type: InputTypeNumber, Required: true},
			},
			rawArgs: []string{"six"},
			expErr:  `"six" is not a valid number.`,
		},
		"required input missing with custom message": {
			specs: []InputSpec{
				{Name: "room", Type: InputTypeString, Required: true, Missing: "Move where?"},
			},
			rawArgs: nil,
			expErr:  "Move where?",
		},
		"required input missing custom message second arg": {
			specs: []InputSpec{
				{Name: "rank", Type: InputTypeNumber, Required: true},
				{Name: "payment", Type: InputTypeString, Required: true, Missing: "Pay with cash or credit?"},
			},
			rawArgs: []string{"2"},
			expErr:  "Pay with cash or credit?",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := h.parseInputs(tt.specs, tt.rawArgs)

			if tt.expErr != "" {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.expErr)
					return
				}
				var userErr *UserError
				if errors.As(err, &userErr) {
					if userErr.Message != tt.expErr {
						t.Errorf("error = %q, expected %q", userErr.Message, tt.expErr)
					}
				} else if err.Error() != tt.expErr {
					t.Errorf("error = %q, expected %q", err.Error(), tt.expErr)
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if len(got) != len(tt.exp) {
				t.Errorf("returned %d inputs, expected %d", len(got), len(tt.exp))
				return
			}

			for i, input := range got {
				expected := tt.exp[i]
				if input.Raw != expected.Raw {
					t.Errorf("input[%d].Raw = %q, expected %q", i, input.Raw, expected.Raw)
				}
				if input.Value != expected.Value {
					t.Errorf("input[%d].Value = %v, expected %v", i, input.Value, expected.Value)
				}
				if input.Spec.Name != expected.Spec.Name {
					t.Errorf("input[%d].Spec.Name = %q, expected %q", i, input.Spec.Name, expected.Spec.Name)
				}
			}
		})
	}
}

func TestHandler_resolve(t *testing.T) {
	mkCmd := func(id string, priority int) *compiledCommand {
		return &compiledCommand{id: storage.Identifier(id), cmd: &Command{Priority: priority}}
	}

	// move has an alias "go"; both keys share the same compiledCommand.
	moveCmd := mkCmd("move", 0)

	h := &Handler{
		compiled: map[storage.Identifier]*compiledCommand{
			"act":      mkCmd("act", 10),
			"abandon":  mkCmd("abandon", 0),
			"rehearse": mkCmd("rehearse", 5),
			"roles":    mkCmd("roles", 5),
			"upgrade":  mkCmd("upgrade", 0),
			"move":     moveCmd,
			"go":       moveCmd,
		},
	}

	tests := map[string]struct {
		input  string
		expCmd *compiledCommand
		expErr string
	}{
		"exact match": {
			input:  "upgrade",
			expCmd: h.compiled["upgrade"],
		},
		"exact match case insensitive": {
			input:  "UPGRADE",
			expCmd: h.compiled["upgrade"],
		},
		"exact match wins over higher priority prefix": {
			input:  "abandon",
			expCmd: h.compiled["abandon"],
		},
		"prefix single match": {
			input:  "up",
			expCmd: h.compiled["upgrade"],
		},
		"prefix with priority tiebreak": {
			input:  "a",
			expCmd: h.compiled["act"],
		},
		"prefix ambiguous same priority": {
			input:  "r",
			expErr: "Did you mean: rehearse, roles?",
		},
		"no match": {
			input:  "dance",
			expErr: `Command "dance" is unknown.`,
		},
		"alias exact match": {
			input:  "go",
			expCmd: moveCmd,
		},
		"alias and name share a prefix": {
			input:  "mo",
			expCmd: moveCmd,
		},
		"alias case insensitive": {
			input:  "GO",
			expCmd: moveCmd,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := h.resolve(tt.input)

			if tt.expErr != "" {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.expErr)
				}
				var userErr *UserError
				if errors.As(err, &userErr) {
					if userErr.Message != tt.expErr {
						t.Errorf("error = %q, expected %q", userErr.Message, tt.expErr)
					}
				} else {
					t.Errorf("expected UserError, got %T: %v", err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tt.expCmd {
				t.Errorf("resolved to wrong command")
			}
		})
	}
}

type mockHandlerFactory struct{}

func (f *mockHandlerFactory) Spec() *HandlerSpec {
	return nil
}

func (f *mockHandlerFactory) ValidateConfig(config map[string]any) error {
	return nil
}

func (f *mockHandlerFactory) Create() (CommandFunc, error) {
	return nil, nil
}

func TestHandler_compile(t *testing.T) {
	type precompiled struct {
		id  string
		cmd *Command
	}

	tests := map[string]struct {
		preCompile []precompiled
		id         string
		cmd        *Command
		expErr     string
		expIds     []string // IDs expected in compiled map after success
	}{
		"basic command": {
			id:     "act",
			cmd:    &Command{Handler: "mock"},
			expIds: []string{"act"},
		},
		"command with aliases": {
			id:     "move",
			cmd:    &Command{Handler: "mock", Aliases: []string{"go", "Walk"}},
			expIds: []string{"move", "go", "walk"},
		},
		"alias conflicts with existing command": {
			preCompile: []precompiled{
				{id: "go", cmd: &Command{Handler: "mock"}},
			},
			id:     "move",
			cmd:    &Command{Handler: "mock", Aliases: []string{"go"}},
			expErr: `alias "go" conflicts`,
		},
		"alias conflicts with earlier alias": {
			preCompile: []precompiled{
				{id: "move", cmd: &Command{Handler: "mock", Aliases: []string{"go"}}},
			},
			id:     "travel",
			cmd:    &Command{Handler: "mock", Aliases: []string{"go"}},
			expErr: `alias "go" conflicts`,
		},
		"command name conflicts with earlier alias": {
			preCompile: []precompiled{
				{id: "end", cmd: &Command{Handler: "mock", Aliases: []string{"pass"}}},
			},
			id:     "pass",
			cmd:    &Command{Handler: "mock"},
			expErr: `command "pass" conflicts`,
		},
		"unknown handler": {
			id:     "act",
			cmd:    &Command{Handler: "nonexistent"},
			expErr: `unknown handler "nonexistent"`,
		},
		"required config missing": {
			id:     "move",
			cmd:    &Command{Handler: "move"},
			expErr: `config "room" is required by handler "move"`,
		},
		"config fails validation": {
			id:     "move",
			cmd:    &Command{Handler: "move", Config: map[string]any{"room": 7}},
			expErr: "validating config: room is required",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := &Handler{
				factories: map[string]HandlerFactory{
					"mock": &mockHandlerFactory{},
					"move": &MoveHandlerFactory{},
				},
				compiled: make(map[storage.Identifier]*compiledCommand),
			}

			for _, pre := range tt.preCompile {
				if err := h.compile(storage.Identifier(pre.id), pre.cmd); err != nil {
					t.Fatalf("pre-compile %q failed: %v", pre.id, err)
				}
			}

			err := h.compile(storage.Identifier(tt.id), tt.cmd)

			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			for _, expId := range tt.expIds {
				if _, ok := h.compiled[storage.Identifier(expId)]; !ok {
					t.Errorf("expected %q in compiled map", expId)
				}
			}
		})
	}
}

func TestHandler_RegisterFactory(t *testing.T) {
	dummyFactory := &mockHandlerFactory{}

	tests := map[string]struct {
		factoryFn  HandlerFactory
		regName    string
		preRegName string
		expErr     string
	}{
		"empty name": {
			factoryFn: dummyFactory,
			regName:   "",
			expErr:    "handler name cannot be empty",
		},
		"nil factory": {
			factoryFn: nil,
			regName:   "test",
			expErr:    "handler factory cannot be nil",
		},
		"duplicate registration": {
			factoryFn:  dummyFactory,
			regName:    "test",
			preRegName: "test",
			expErr:     `handler factory "test" already registered`,
		},
		"valid registration": {
			factoryFn: dummyFactory,
			regName:   "newhandler",
			expErr:    "",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := &Handler{
				factories: make(map[string]HandlerFactory),
			}

			if tt.preRegName != "" {
				h.factories[tt.preRegName] = dummyFactory
			}

			err := h.RegisterFactory(tt.regName, tt.factoryFn)

			if tt.expErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Errorf("expected error %q, got nil", tt.expErr)
				return
			}

			if err.Error() != tt.expErr {
				t.Errorf("error = %q, expected %q", err.Error(), tt.expErr)
			}
		})
	}
}

func TestHandler_Exec(t *testing.T) {
	tests := map[string]struct {
		line       string
		expErr     string
		expReason  game.Reason
		expSubject []string
		expText    []string // each published message must contain the matching entry
		expCurrent string
	}{
		"move ends the turn": {
			line:       "go saloon",
			expSubject: []string{"player-alice", BoardChannel},
			expText: []string{
				"Alice walks from Trailer to Saloon.\nSALOON\nScene 1: The Long Wait (budget 2)",
				"Alice ends the turn.\nIt is Bob's turn.",
			},
			expCurrent: "bob",
		},
		"abbreviated command": {
			line:       "mov SALOON",
			expSubject: []string{"player-alice", BoardChannel},
			expText:    []string{"Alice walks from Trailer to Saloon.", "It is Bob's turn."},
			expCurrent: "bob",
		},
		"look does not end the turn": {
			line:       "where",
			expSubject: []string{"player-alice"},
			expText:    []string{"TRAILER\nExits: saloon, office\nHere: alice, bob"},
			expCurrent: "alice",
		},
		"pass": {
			line:       "pass",
			expSubject: []string{"player-alice"},
			expText:    []string{"Alice ends the turn.\nIt is Bob's turn."},
			expCurrent: "bob",
		},
		"message template": {
			line:       "who",
			expSubject: []string{"player-alice"},
			expText:    []string{"2 actors, Alice to play"},
			expCurrent: "alice",
		},
		"static text": {
			line:       "rules",
			expSubject: []string{"player-alice"},
			expText:    []string{"Shoot every scene before the last day ends."},
			expCurrent: "alice",
		},
		"no roles outside a set": {
			line:       "roles",
			expSubject: []string{"player-alice"},
			expText:    []string{"There are no roles you can take here."},
			expCurrent: "alice",
		},
		"unknown command": {
			line:       "dance",
			expErr:     `Command "dance" is unknown.`,
			expCurrent: "alice",
		},
		"ambiguous abbreviation": {
			line:       "r",
			expErr:     "Did you mean: rehearse, roles, rules?",
			expCurrent: "alice",
		},
		"missing input": {
			line:       "move",
			expErr:     "Move where?",
			expCurrent: "alice",
		},
		"no such room": {
			line:       "go nowhere",
			expErr:     `There is no room called "nowhere".`,
			expReason:  game.ReasonInvalidLocation,
			expCurrent: "alice",
		},
		"refused action keeps the turn": {
			line:       "rehearse",
			expErr:     "You are not working a role.",
			expReason:  game.ReasonRoleUnavailable,
			expCurrent: "alice",
		},
		"bad number": {
			line:       "upgrade two cash",
			expErr:     `"two" is not a valid number.`,
			expCurrent: "alice",
		},
		"bad payment": {
			line:       "upgrade 2 gold",
			expErr:     `Unknown payment type "gold", pay with cash or credit.`,
			expReason:  game.ReasonInvalidUpgradeTarget,
			expCurrent: "alice",
		},
		"upgrade away from the office": {
			line:       "upgrade 2 cash",
			expErr:     "Ranks are only sold at the casting office.",
			expReason:  game.ReasonInvalidLocation,
			expCurrent: "alice",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, pub := newTestHandler(t)
			b := newTestBoard(t)

			fields := strings.Fields(tt.line)
			err := h.Exec(context.Background(), b, &State{}, fields[0], fields[1:]...)

			if tt.expErr != "" {
				var userErr *UserError
				if !errors.As(err, &userErr) {
					t.Fatalf("expected UserError, got %T: %v", err, err)
				}
				testutil.AssertEqual(t, "message", userErr.Message, tt.expErr)
				if tt.expReason != 0 {
					reason, ok := game.ReasonOf(err)
					testutil.AssertEqual(t, "has reason", ok, true)
					testutil.AssertEqual(t, "reason", reason, tt.expReason)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			var subjects []string
			for _, m := range pub.msgs {
				subjects = append(subjects, m.subject)
			}
			testutil.AssertEqual(t, "subjects", subjects, tt.expSubject)
			for i, exp := range tt.expText {
				if i < len(pub.msgs) && !strings.Contains(pub.msgs[i].text, exp) {
					t.Errorf("message %d = %q, expected it to contain %q", i, pub.msgs[i].text, exp)
				}
			}

			testutil.AssertEqual(t, "current", b.CurrentActor().Id, tt.expCurrent)
		})
	}
}

func TestHandler_ExecShootsAScene(t *testing.T) {
	h, pub := newTestHandler(t)
	b := newTestBoard(t, 2)
	ctx := context.Background()

	steps := []string{"go saloon", "pass", "work drifter", "pass", "act"}
	for _, step := range steps {
		fields := strings.Fields(step)
		if err := h.Exec(ctx, b, &State{}, fields[0], fields[1:]...); err != nil {
			t.Fatalf("%s: unexpected error: %v", step, err)
		}
	}

	if len(pub.msgs) < 2 {
		t.Fatalf("expected act output and a turn change, got %d messages", len(pub.msgs))
	}
	act := pub.msgs[len(pub.msgs)-2]
	testutil.AssertEqual(t, "act subject", act.subject, "player-alice")
	exp := "Rolled 2 = 2 against a budget of 2.\nThat's a take! 0 shot(s) left.\n" +
		"That's a wrap on The Long Wait!\nBonus dice: 2 2\n  alice (Drifter) earns $4"
	testutil.AssertEqual(t, "act output", act.text, exp)

	turn := pub.msgs[len(pub.msgs)-1]
	testutil.AssertEqual(t, "turn subject", turn.subject, BoardChannel)
	testutil.AssertEqual(t, "turn output", turn.text, "Alice ends the turn.\nIt is Bob's turn.")

	alice, err := b.Actor("alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "cash", alice.Cash(), 4)
	testutil.AssertEqual(t, "credit", alice.Credit(), 2)
	testutil.AssertEqual(t, "has role", alice.HasRole(), false)
}

func TestHandler_ExecHelp(t *testing.T) {
	tests := map[string]struct {
		args   []string
		exp    string
		expErr string
	}{
		"list": {
			exp: "Available commands:\n" +
				"  Game: act, end, move, rehearse, upgrade, work\n" +
				"  Info: help, look, roles, who\n" +
				"  Other: quit, rules",
		},
		"one command": {
			args: []string{"move"},
			exp:  "move: Walk to an adjacent room.\nUsage: move <room>\nAlso: go\nEnds your turn.",
		},
		"unknown command": {
			args:   []string{"dance"},
			expErr: `Command "dance" is unknown.`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h, pub := newTestHandler(t)
			b := newTestBoard(t)

			err := h.Exec(context.Background(), b, &State{}, "help", tt.args...)
			if tt.expErr != "" {
				testutil.AssertErrorContains(t, err, tt.expErr)
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(pub.msgs) != 1 {
				t.Fatalf("expected 1 message, got %d", len(pub.msgs))
			}
			testutil.AssertEqual(t, "help", pub.msgs[0].text, tt.exp)
		})
	}
}

func TestHandler_ExecQuit(t *testing.T) {
	h, pub := newTestHandler(t)
	b := newTestBoard(t)
	state := &State{}

	if err := h.Exec(context.Background(), b, state, "q"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "quit", state.Quit, true)
	testutil.AssertEqual(t, "messages", len(pub.msgs), 1)
	testutil.AssertEqual(t, "goodbye", pub.msgs[0].text, "Goodbye!")
}
