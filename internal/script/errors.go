package script

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyScript indicates a script with no steps.
	ErrEmptyScript = errors.New("script: no steps")

	// ErrAmbiguousStep indicates a step that sets both a component and a variable.
	ErrAmbiguousStep = errors.New("script: step sets both component and variable")

	// ErrUnknownPreset indicates a preset name with no built-in script.
	ErrUnknownPreset = errors.New("script: unknown preset")
)

// StepError wraps a failure with the step it came from.
type StepError struct {
	Index   int
	BlockID string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (block %q): %v", e.Index, e.BlockID, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
