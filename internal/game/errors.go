package game

import (
	"errors"
	"fmt"
)

// Reason classifies why the rules refused an action.
type Reason int

const (
	ReasonInvalidLocation Reason = iota + 1
	ReasonRoleUnavailable
	ReasonIllegalRoleTransition
	ReasonInsufficientFunds
	ReasonInvalidUpgradeTarget
	ReasonRehearsalLimitReached
	ReasonGameOver
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidLocation:
		return "invalid location"
	case ReasonRoleUnavailable:
		return "role unavailable"
	case ReasonIllegalRoleTransition:
		return "illegal role transition"
	case ReasonInsufficientFunds:
		return "insufficient funds"
	case ReasonInvalidUpgradeTarget:
		return "invalid upgrade target"
	case ReasonRehearsalLimitReached:
		return "rehearsal limit reached"
	case ReasonGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// RuleError is returned when an action breaks the rules of the game. These
// are expected outcomes: the action had no effect and Message can be shown
// to the player as-is.
type RuleError struct {
	Reason  Reason
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Is matches any RuleError with the same Reason, so
// errors.Is(err, ErrRoleUnavailable) works regardless of the message.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Reason == e.Reason
}

var (
	ErrInvalidLocation       = &RuleError{Reason: ReasonInvalidLocation, Message: ReasonInvalidLocation.String()}
	ErrRoleUnavailable       = &RuleError{Reason: ReasonRoleUnavailable, Message: ReasonRoleUnavailable.String()}
	ErrIllegalRoleTransition = &RuleError{Reason: ReasonIllegalRoleTransition, Message: ReasonIllegalRoleTransition.String()}
	ErrInsufficientFunds     = &RuleError{Reason: ReasonInsufficientFunds, Message: ReasonInsufficientFunds.String()}
	ErrInvalidUpgradeTarget  = &RuleError{Reason: ReasonInvalidUpgradeTarget, Message: ReasonInvalidUpgradeTarget.String()}
	ErrRehearsalLimitReached = &RuleError{Reason: ReasonRehearsalLimitReached, Message: ReasonRehearsalLimitReached.String()}
	ErrGameOver              = &RuleError{Reason: ReasonGameOver, Message: "the game is over"}
)

var ErrActorNotFound = errors.New("actor not found")

func ruleErrorf(r Reason, format string, args ...any) *RuleError {
	return &RuleError{Reason: r, Message: fmt.Sprintf(format, args...)}
}

// ReasonOf returns the Reason carried by err, if err is a RuleError.
func ReasonOf(err error) (Reason, bool) {
	var re *RuleError
	if errors.As(err, &re) {
		return re.Reason, true
	}
	return 0, false
}
