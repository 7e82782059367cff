package godual

import "errors"

var (
	// ErrDivisionByZero is raised by exact-field scalars on a zero divisor.
	ErrDivisionByZero = errors.New("godual: division by zero")

	// ErrUnknownFunction is returned when a catalog has no rule for a name.
	ErrUnknownFunction = errors.New("godual: unknown elementary function")

	// ErrDuplicateFunction is returned when registering a name twice.
	ErrDuplicateFunction = errors.New("godual: elementary function already registered")

	// ErrInvalidFunction is returned for a rule with an empty name or a nil
	// value or derivative.
	ErrInvalidFunction = errors.New("godual: invalid elementary function")
)
