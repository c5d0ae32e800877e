package mathx

import "golang.org/x/exp/constraints"

// Between reports lo <= v && v <= hi (order-insensitive).
func Between[T constraints.Ordered](v, lo, hi T) bool {
	if hi < lo {
		lo, hi = hi, lo
	}
	return v >= lo && v <= hi
}

// FitsBits reports whether v is representable in an n-bit unsigned field.
func FitsBits[T constraints.Unsigned](v T, n uint) bool {
	if n >= 64 {
		return true
	}
	return uint64(v) < uint64(1)<<n
}
