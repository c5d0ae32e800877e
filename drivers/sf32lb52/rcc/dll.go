package rcc

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
)

// DLLSettleMicros is the wait between programming a DLL and polling it.
const DLLSettleMicros = 10

// ConfigureDLL programs DLL idx (1 or 2) alone. It goes through the same
// validation as Apply, including the DLL2 limit of the current mode.
func (c *Controller) ConfigureDLL(idx int, d DLLConfig) error {
	return critical.With(func(cs critical.Token) error { return c.ConfigureDLLCS(cs, idx, d) })
}

func (c *Controller) ConfigureDLLCS(cs critical.Token, idx int, d DLLConfig) error {
	switch idx {
	case 1:
		return c.ApplyCS(cs, Config{DLL1: Update(d)})
	case 2:
		return c.ApplyCS(cs, Config{DLL2: Update(d)})
	}
	return fieldErr("dll", ErrFieldRange)
}

func (c *Controller) programDLL(idx int, d DLLConfig) error {
	cr := regs.At(c.regs, regs.DLLCR(idx))
	if !d.Enable {
		cr.SetFlag(regs.DLLCR_EN, false)
		return nil
	}

	// The crystal buffer and bandgap are shared with other users; only turn
	// them on.
	hxt := regs.At(c.regs, regs.PMUC_HXT_CR1)
	if !hxt.Flag(regs.HXT_CR1_BUF_DLL_EN) {
		hxt.SetFlag(regs.HXT_CR1_BUF_DLL_EN, true)
	}
	cau := regs.At(c.regs, regs.CFG_CAU2_CR)
	bg := regs.CAU2_HPBG_EN.Bit() | regs.CAU2_HPBG_VDDPSW_EN.Bit()
	if !cau.HasBits(bg) {
		cau.SetBits(bg)
	}

	cr.Set(encodeDLL(cr.Get(), d))
	c.delay.DelayMicros(DLLSettleMicros)

	if err := c.wait.Until(func() bool { return cr.Flag(regs.DLLCR_READY) }); err != nil {
		return &FatalError{Op: "dll" + string(rune('0'+idx)) + " ready", Err: err}
	}
	return nil
}
