package stage

import "github.com/ja7ad/jetcycle/pkg/util"

// check records the first failed parameter precondition of a stage.
type check struct {
	stage Station
	err   error
}

func (c *check) fail(name string, v float64, reason string) {
	if c.err != nil {
		return
	}
	c.err = &Error{Stage: c.stage, Param: name, Value: v, Reason: reason, Err: ErrParameterRange}
}

func (c *check) positive(name string, v float64) {
	if !util.Finite(v) || v <= 0 {
		c.fail(name, v, "must be > 0")
	}
}

func (c *check) nonNegative(name string, v float64) {
	if !util.Finite(v) || v < 0 {
		c.fail(name, v, "must be >= 0")
	}
}

// efficiency accepts (0,1].
func (c *check) efficiency(name string, v float64) {
	if !util.Finite(v) || v <= 0 || v > 1 {
		c.fail(name, v, "must be in (0,1]")
	}
}

// fraction accepts [0,1).
func (c *check) fraction(name string, v float64) {
	if !util.Finite(v) || v < 0 || v >= 1 {
		c.fail(name, v, "must be in [0,1)")
	}
}

func (c *check) gamma(name string, v float64) {
	if !util.Finite(v) || v <= 1 {
		c.fail(name, v, "must be > 1")
	}
}

func (c *check) atLeast(name string, v, min float64) {
	if !util.Finite(v) || v < min {
		c.fail(name, v, "below minimum")
	}
}
