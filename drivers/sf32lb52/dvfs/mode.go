// Package dvfs classifies the HPSYS core clock into voltage/frequency
// operating modes and sequences the regulator changes that move the core
// between them.
package dvfs

import (
	"errors"

	"clocktree-go/x/hz"
)

var ErrOutOfRange = errors.New("dvfs: frequency out of range")

// Mode is a DVFS operating point. D modes run from the LDO rail, S modes
// from the buck rail.
type Mode uint8

const (
	D0 Mode = iota
	D1
	S0
	S1
)

// Upper band edges in MHz; each band starts one above the previous edge.
const (
	LimitD0MHz = 24
	LimitD1MHz = 48
	LimitS0MHz = 144
	LimitS1MHz = 240
)

// Modes lists all modes in ascending order.
var Modes = [...]Mode{D0, D1, S0, S1}

// FromMHz bands an integer-MHz core frequency.
func FromMHz(mhz uint32) (Mode, error) {
	switch {
	case mhz <= LimitD0MHz:
		return D0, nil
	case mhz <= LimitD1MHz:
		return D1, nil
	case mhz <= LimitS0MHz:
		return S0, nil
	case mhz <= LimitS1MHz:
		return S1, nil
	}
	return 0, ErrOutOfRange
}

// FromHertz truncates to whole MHz, matching the register granularity, and
// bands the result.
func FromHertz(f hz.Hertz) (Mode, error) { return FromMHz(f.WholeMHz()) }

// High reports whether m runs from the buck (S) rail.
func (m Mode) High() bool { return m >= S0 }

// Limit is the highest core frequency allowed in m.
func (m Mode) Limit() hz.Hertz {
	switch m {
	case D0:
		return hz.MHzOf(LimitD0MHz)
	case D1:
		return hz.MHzOf(LimitD1MHz)
	case S0:
		return hz.MHzOf(LimitS0MHz)
	}
	return hz.MHzOf(LimitS1MHz)
}

// DLL2Limit is the highest DLL2 output allowed in m; zero means DLL2 may not
// run at all.
func (m Mode) DLL2Limit() hz.Hertz {
	if m.High() {
		return hz.MHzOf(288)
	}
	return 0
}

func (m Mode) String() string {
	switch m {
	case D0:
		return "D0"
	case D1:
		return "D1"
	case S0:
		return "S0"
	case S1:
		return "S1"
	}
	return "invalid"
}
