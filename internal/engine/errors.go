package engine

import (
	"errors"
	"fmt"
)

// Business-rule rejections. These are expected outcomes surfaced to the
// caller, not failures.
var (
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrRedemptionLimit        = errors.New("redemption limit reached")
	ErrChallengesRemaining    = errors.New("dungeon has unfinished challenges")
	ErrDungeonNotStarted      = errors.New("dungeon has not been started")
	ErrDungeonAlreadyStarted  = errors.New("dungeon is already in progress")
	ErrDungeonAlreadyComplete = errors.New("dungeon is already complete")
)

// NotFoundError reports a missing aggregate by kind and id.
type NotFoundError struct {
	Kind string
	ID   int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}
