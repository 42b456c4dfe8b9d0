package session

import "errors"

var (
	// ErrNoInput means the prompt was dismissed or left blank. Callers treat
	// it as a no-op.
	ErrNoInput = errors.New("no input")

	// ErrInvalidAmount means a quantity was not positive or exceeded MaxAmount.
	ErrInvalidAmount = errors.New("amount must be a positive number of kg up to 1000000")

	// ErrUnknownFriend means the friend choice is not in the directory.
	ErrUnknownFriend = errors.New("invalid choice")

	// ErrNotStarted means no participant has been created yet.
	ErrNotStarted = errors.New("session not started")

	// ErrUnknownAction means an action name or value is not recognized.
	ErrUnknownAction = errors.New("unknown action")
)

// InvalidChoiceMessage is shown when the friend picker gets a bad number.
const InvalidChoiceMessage = "Invalid choice."
