package tutor

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrMissingCredential indicates no API key was available. Generators
	// wrap it when they fail before any network I/O for that reason.
	ErrMissingCredential = errors.New("tutor: missing API credential")

	// ErrServiceCall indicates a network, timeout or remote failure.
	ErrServiceCall = errors.New("tutor: generation service call failed")
)

// Classify maps a generator error onto the two failure kinds.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrMissingCredential), errors.Is(err, ErrServiceCall):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: timed out: %w", ErrServiceCall, err)
	default:
		return fmt.Errorf("%w: %w", ErrServiceCall, err)
	}
}
