package stage

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain indicates an algebraic precondition of a stage formula was violated
	// (negative Mach number, unrealizable fuel-air balance, non-positive temperature).
	ErrDomain = errors.New("stage: domain violation")

	// ErrParameterRange indicates an input outside its physical range
	// (efficiency outside (0,1], non-positive Mach number, gamma <= 1).
	ErrParameterRange = errors.New("stage: parameter out of range")

	// ErrInvalidState indicates the upstream State was non-positive or non-finite.
	ErrInvalidState = errors.New("stage: invalid upstream state")
)

// Error identifies the stage and the precondition that failed.
type Error struct {
	Stage  Station
	Param  string
	Value  float64
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s=%g: %v", e.Stage, e.Param, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %s=%g (%s): %v", e.Stage, e.Param, e.Value, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func domainErr(st Station, param string, v float64, reason string) error {
	return &Error{Stage: st, Param: param, Value: v, Reason: reason, Err: ErrDomain}
}
