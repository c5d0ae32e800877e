package rcc

import "errors"

// Validation errors. They are returned before any register is written.
var (
	ErrDLLFrequency      = errors.New("rcc: dll output outside 24..384 MHz")
	ErrDLL2OverLimit     = errors.New("rcc: dll2 above the limit of the target mode")
	ErrUnsupportedSource = errors.New("rcc: unsupported clock source")
	ErrSourceDisabled    = errors.New("rcc: selected clock source is disabled")
	ErrFieldRange        = errors.New("rcc: field value out of range")
	ErrNoCoreClock       = errors.New("rcc: core clock not running")
	ErrUnknownNode       = errors.New("rcc: unknown clock node")
)

// FieldError names the request field a validation error refers to.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return e.Field + ": " + e.Err.Error() }
func (e *FieldError) Unwrap() error { return e.Err }

func fieldErr(field string, err error) error { return &FieldError{Field: field, Err: err} }

// FatalError reports a hardware handshake that never completed part way
// through a sequence. The clock tree is in an intermediate state and the
// operation must not be retried; the device needs a reset.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return "rcc: " + e.Op + ": " + e.Err.Error() + " (reset required)"
}

func (e *FatalError) Unwrap() error { return e.Err }

// IsFatal reports whether err carries a FatalError.
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
