// Package critical provides the process-wide mutual-exclusion scope that
// guards the clock-control and power-management register blocks.
//
// A multi-step register sequence is only safe while no other caller (or
// interrupt handler) can interleave its own sequence. Code that touches
// those blocks either runs inside With or is handed the Token that With
// minted.
package critical

import (
	"errors"
	"sync/atomic"
)

var ErrNoSection = errors.New("critical: token used outside its section")

// Token is proof that the holder runs inside the critical section. The zero
// value is never valid. A token belongs to the goroutine that With handed it
// to; checking one from elsewhere is safe but only ever reports false once
// its section has ended.
type Token struct {
	gen uint32
}

// Written only inside the section; read from anywhere by Valid.
var (
	active atomic.Bool
	gen    atomic.Uint32
)

// With runs fn inside the critical section. Sections do not nest: calling
// With from inside fn deadlocks on host builds and is undefined on MCU
// builds. Pass the token down instead.
func With(fn func(Token) error) error {
	st := enter()
	defer func() {
		active.Store(false)
		exit(st)
	}()

	g := gen.Add(1)
	if g == 0 {
		g = gen.Add(1)
	}
	active.Store(true)
	return fn(Token{gen: g})
}

// Valid reports whether t belongs to the section currently held.
func (t Token) Valid() bool {
	return t.gen != 0 && active.Load() && gen.Load() == t.gen
}

// Check returns ErrNoSection unless t is valid.
func (t Token) Check() error {
	if !t.Valid() {
		return ErrNoSection
	}
	return nil
}
