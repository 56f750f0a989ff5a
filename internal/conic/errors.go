package conic

import "errors"

var (
	// ErrUnknownTopic indicates a topic outside the closed enumeration.
	ErrUnknownTopic = errors.New("conic: unknown topic")

	// ErrParameterBounds indicates a parameter value is outside its UI range.
	ErrParameterBounds = errors.New("conic: parameter out of valid bounds")

	// ErrUnknownParam indicates a parameter name that no topic uses.
	ErrUnknownParam = errors.New("conic: unknown parameter")
)
