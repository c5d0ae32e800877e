package errcode

import (
	"errors"

	"clocktree-go/drivers/sf32lb52/dvfs"
	"clocktree-go/drivers/sf32lb52/rcc"
	"clocktree-go/x/critical"
	"clocktree-go/x/timex"
)

// Code is a stable, bus-facing error identifier.
type Code string

func (c Code) Error() string { return string(c) }

const (
	OK             Code = "ok"
	Busy           Code = "busy"
	InvalidParams  Code = "invalid_params"
	InvalidPayload Code = "invalid_payload"
	InvalidTopic   Code = "invalid_topic"
	UnknownNode    Code = "unknown_node"
	UnknownPeriph  Code = "unknown_peripheral"

	DLLFrequency      Code = "invalid_dll_freq"
	DLL2OverLimit     Code = "dll2_over_limit"
	UnsupportedSource Code = "unsupported_source"
	SourceDisabled    Code = "source_disabled"
	OutOfRange        Code = "out_of_range"
	FieldRange        Code = "field_out_of_range"
	NoCoreClock       Code = "no_core_clock"
	NoSection         Code = "no_critical_section"
	Timeout           Code = "timeout"
	ResetRequired     Code = "reset_required"

	Error Code = "error"
)

// E keeps an operation name and cause next to a Code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}

func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap attaches the mapped code of err and the operation name.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: Map(err), Op: op, Msg: err.Error(), Err: err}
}

// Of extracts a Code from an error chain, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	var x coder
	if errors.As(err, &x) {
		return x.Code()
	}
	var c Code
	if errors.As(err, &c) {
		return c
	}
	return Map(err)
}

// Map classifies clock-engine errors. A fatal sequence failure maps to
// ResetRequired whatever its cause.
func Map(err error) Code {
	switch {
	case err == nil:
		return OK
	case rcc.IsFatal(err):
		return ResetRequired
	case errors.Is(err, rcc.ErrDLLFrequency):
		return DLLFrequency
	case errors.Is(err, rcc.ErrDLL2OverLimit):
		return DLL2OverLimit
	case errors.Is(err, rcc.ErrUnsupportedSource):
		return UnsupportedSource
	case errors.Is(err, rcc.ErrSourceDisabled):
		return SourceDisabled
	case errors.Is(err, dvfs.ErrOutOfRange):
		return OutOfRange
	case errors.Is(err, rcc.ErrFieldRange):
		return FieldRange
	case errors.Is(err, rcc.ErrNoCoreClock):
		return NoCoreClock
	case errors.Is(err, rcc.ErrUnknownNode):
		return UnknownNode
	case errors.Is(err, critical.ErrNoSection):
		return NoSection
	case errors.Is(err, timex.ErrTimeout):
		return Timeout
	}
	return Error
}
