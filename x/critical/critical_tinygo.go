//go:build tinygo

package critical

import "runtime/interrupt"

// Single-core parts only: masking interrupts is the whole section.

type state = interrupt.State

func enter() state { return interrupt.Disable() }

func exit(s state) { interrupt.Restore(s) }
