package rcc

// Option is one overlay cell: either a new value or "keep whatever the
// hardware holds now". The zero value keeps.
type Option[T any] struct {
	v   T
	set bool
}

func Update[T any](v T) Option[T] { return Option[T]{v: v, set: true} }

func Keep[T any]() Option[T] { return Option[T]{} }

func (o Option[T]) IsUpdate() bool { return o.set }

// Value returns the carried value and whether there is one.
func (o Option[T]) Value() (T, bool) { return o.v, o.set }

// ApplyTo resolves the cell against the current value.
func (o Option[T]) ApplyTo(current T) T {
	if o.set {
		return o.v
	}
	return current
}
