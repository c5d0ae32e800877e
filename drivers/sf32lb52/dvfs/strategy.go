package dvfs

// Strategy is the hardware sequence used to move between two modes.
type Strategy uint8

const (
	// Direct reconfigures the clock without touching the regulators.
	Direct Strategy = iota
	// RaiseRail moves from the LDO rail to the buck rail: voltage first.
	RaiseRail
	// LowerRail moves from the buck rail to the LDO rail: clock first, rail
	// switch last.
	LowerRail
	// WithinHigh retrims the buck rail between S modes.
	WithinHigh
	// WithinLow moves between D modes. It runs the LowerRail sequence; that
	// routing is inherited from the vendor SDK and has not been confirmed
	// against hardware documentation.
	WithinLow
)

func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case RaiseRail:
		return "raise_rail"
	case LowerRail:
		return "lower_rail"
	case WithinHigh:
		return "within_high"
	case WithinLow:
		return "within_low"
	}
	return "invalid"
}

// Select picks the strategy for a cur -> tgt transition. Every ordered pair
// of modes maps to exactly one strategy.
func Select(cur, tgt Mode) Strategy {
	switch {
	case cur == tgt:
		return Direct
	case !cur.High() && tgt.High():
		return RaiseRail
	case cur.High() && !tgt.High():
		return LowerRail
	case cur.High() && tgt.High():
		return WithinHigh
	}
	return WithinLow
}
