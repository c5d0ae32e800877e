package rcc

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
)

// Peripheral is one HPSYS peripheral's gate: the same bit position in
// ENRn and RSTRn.
type Peripheral struct {
	Name string
	Bank uint8 // 1 or 2
	Bit  uint8
}

func (p Peripheral) mask() uint32 { return 1 << p.Bit }

func (p Peripheral) enr() uint32 {
	if p.Bank == 2 {
		return regs.RCC_ENR2
	}
	return regs.RCC_ENR1
}

func (p Peripheral) rstr() uint32 {
	if p.Bank == 2 {
		return regs.RCC_RSTR2
	}
	return regs.RCC_RSTR1
}

func (p Peripheral) valid() bool { return (p.Bank == 1 || p.Bank == 2) && p.Bit < 32 }

// EnableAndReset gates p's clock on and pulses its reset.
func (c *Controller) EnableAndReset(p Peripheral) error {
	return critical.With(func(cs critical.Token) error { return c.EnableAndResetCS(cs, p) })
}

// EnableAndResetCS sets the enable bit, asserts reset, waits for the reset
// line to read back asserted and releases it.
func (c *Controller) EnableAndResetCS(cs critical.Token, p Peripheral) error {
	if err := cs.Check(); err != nil {
		return err
	}
	if !p.valid() {
		return fieldErr(p.Name, ErrFieldRange)
	}

	m := p.mask()
	regs.At(c.regs, p.enr()).SetBits(m)

	rst := regs.At(c.regs, p.rstr())
	rst.SetBits(m)
	if err := c.wait.Until(func() bool { return rst.HasBits(m) }); err != nil {
		return &FatalError{Op: p.Name + " reset", Err: err}
	}
	rst.ClearBits(m)
	return nil
}

// Disable gates p's clock off.
func (c *Controller) Disable(p Peripheral) error {
	return critical.With(func(cs critical.Token) error { return c.DisableCS(cs, p) })
}

func (c *Controller) DisableCS(cs critical.Token, p Peripheral) error {
	if err := cs.Check(); err != nil {
		return err
	}
	if !p.valid() {
		return fieldErr(p.Name, ErrFieldRange)
	}
	regs.At(c.regs, p.enr()).ClearBits(p.mask())
	return nil
}

// Enabled reports whether p's clock gate is on.
func (c *Controller) Enabled(p Peripheral) (on bool, err error) {
	if !p.valid() {
		return false, fieldErr(p.Name, ErrFieldRange)
	}
	err = critical.With(func(cs critical.Token) error {
		on = regs.At(c.regs, p.enr()).HasBits(p.mask())
		return nil
	})
	return on, err
}
