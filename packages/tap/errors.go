package tap

import "errors"

// Usage errors. They mark defects in the calling test program, not
// failed assertions, and are raised via panic at the point of misuse.
var (
	// ErrAlreadyPlanned is raised when a plan line was emitted already
	// but a change to it is requested.
	ErrAlreadyPlanned = errors.New("tap: plan line emitted already")

	// ErrSessionClosed is raised when DoneTesting or Bail has been
	// called already but more state-changing operations are requested.
	ErrSessionClosed = errors.New("tap: session closed already")

	// ErrLatePlan is raised when a plan is requested after the first
	// result line was printed. TAP only allows the plan line at the
	// beginning or the end; the trailing plan is handled by
	// DoneTesting.
	ErrLatePlan = errors.New("tap: too late to plan tests now")
)
