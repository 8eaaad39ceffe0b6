package engine

import "errors"

var (
	// ErrUnknownParam indicates a sweep parameter name that no setter handles.
	ErrUnknownParam = errors.New("engine: unknown sweep parameter")

	// ErrUnknownWorkBasis indicates a work basis name other than "shaft" or "exit-energy".
	ErrUnknownWorkBasis = errors.New("engine: unknown work basis")
)
