package game

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the kind shared by the loud failures of the core. Callers
// driving the round normally never see it.
var ErrPrecondition = errors.New("precondition violated")

var (
	ErrInvalidAlphabet   = fmt.Errorf("%w: target word outside alphabet", ErrPrecondition)
	ErrNotActive         = fmt.Errorf("%w: round is not active", ErrPrecondition)
	ErrInvalidTransition = errors.New("invalid phase transition")
	ErrEmptyDictionary   = errors.New("dictionary has no long words")
)
