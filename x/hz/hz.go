package hz

// Hertz is a clock frequency. Zero means the clock is disabled or its
// source is not ready.
type Hertz uint32

const (
	KHz Hertz = 1_000
	MHz Hertz = 1_000_000
)

// MHzOf builds a frequency from whole megahertz.
func MHzOf(n uint32) Hertz { return Hertz(n) * MHz }

// WholeMHz truncates to integer megahertz.
func (f Hertz) WholeMHz() uint32 { return uint32(f / MHz) }

// FracKHz is the kilohertz remainder below the whole megahertz (0..999).
func (f Hertz) FracKHz() uint32 { return uint32(f/KHz) % 1000 }

// Enabled reports whether the clock is running.
func (f Hertz) Enabled() bool { return f != 0 }

// Div divides by a programmed divisor. Divisors 0 and 1 both leave the
// frequency unchanged.
func (f Hertz) Div(d uint32) Hertz {
	if d <= 1 {
		return f
	}
	return f / Hertz(d)
}

// Shr divides by 2^shift.
func (f Hertz) Shr(shift uint8) Hertz { return f >> shift }
