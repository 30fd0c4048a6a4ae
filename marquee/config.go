package marquee

import (
	"errors"
	"fmt"
	"time"
)

//go:generate go tool stringer -type=StartSide,State -trimprefix=State -output=enum_string.go

// StartSide selects the edge a run starts from.
type StartSide int

const (
	StartLeft  StartSide = iota // text starts flush at offset 0
	StartRight                  // text starts fully off-screen past the right edge
)

// Unbounded is the RepeatCount sentinel for a run that only ends on Stop.
const Unbounded = 0

// Defaults used when a host supplies no configuration.
const (
	DefaultFirstDelay = 1000 * time.Millisecond
	DefaultSpeed      = 3
	DefaultTickPeriod = 20 * time.Millisecond
)

// ScrollConfig holds the settings of one scroll run.
type ScrollConfig struct {
	FirstDelay  time.Duration // delay before the first tick after Start
	Speed       int           // pixels (or cells) advanced per tick
	RepeatCount int           // traversals before auto-stop, or Unbounded
	StartSide   StartSide
}

// DefaultScrollConfig returns the configuration a freshly created widget uses.
func DefaultScrollConfig() ScrollConfig {
	return ScrollConfig{
		FirstDelay:  DefaultFirstDelay,
		Speed:       DefaultSpeed,
		RepeatCount: Unbounded,
		StartSide:   StartRight,
	}
}

// Bounded reports whether the run stops by itself after RepeatCount traversals.
func (c ScrollConfig) Bounded() bool {
	return c.RepeatCount != Unbounded
}

// Validate returns every problem found in c joined into one error.
func (c ScrollConfig) Validate() error {
	var errs []error
	if c.FirstDelay < 0 {
		errs = append(errs, fmt.Errorf("first delay must not be negative (got %v)", c.FirstDelay))
	}
	if c.Speed <= 0 {
		errs = append(errs, fmt.Errorf("speed must be positive (got %d)", c.Speed))
	}
	if c.RepeatCount < 0 {
		errs = append(errs, fmt.Errorf("repeat count must be %d (unbounded) or positive (got %d)", Unbounded, c.RepeatCount))
	}
	if c.StartSide != StartLeft && c.StartSide != StartRight {
		errs = append(errs, fmt.Errorf("unknown start side %d", int(c.StartSide)))
	}
	return errors.Join(errs...)
}
