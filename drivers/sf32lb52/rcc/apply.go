package rcc

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
)

// Apply validates cfg against the live registers and, if it passes, moves
// the clock tree there in one critical section.
func (c *Controller) Apply(cfg Config) error {
	return critical.With(func(cs critical.Token) error { return c.ApplyCS(cs, cfg) })
}

// ApplyCS is Apply for a caller already inside the critical section.
//
// Order: oscillators that come up, bus dividers and the peripheral-side
// muxes, DLL1 when it is not yet feeding the core, the core clock change
// wrapped in its DVFS sequence, DLL1 when the core just left it, DLL2, and
// last the oscillators that go down.
func (c *Controller) ApplyCS(cs critical.Token, cfg Config) error {
	if err := cs.Check(); err != nil {
		return err
	}
	p, err := NewPlan(cfg, readState(c.regs))
	if err != nil {
		return err
	}

	if err := c.oscillators(cfg, true); err != nil {
		return err
	}
	c.busClocks(cfg)

	if p.dll1 == dllBefore {
		if err := c.programDLL(1, p.Final.DLL1); err != nil {
			return err
		}
	}

	if p.CoreChange {
		c.log("[rcc] hclk " + FormatMHz(p.CurrentHCLK) + " -> " + FormatMHz(p.FinalHCLK) +
			" (" + p.CurMode.String() + "->" + p.TgtMode.String() + ")")
		err := c.seq.Transition(cs, p.CurMode, p.TgtMode, func() error { return c.switchCore(cfg, p) })
		if err != nil {
			return err
		}
	} else if p.dll1 == dllWithCore {
		if err := c.programDLL(1, p.Final.DLL1); err != nil {
			return err
		}
	}

	if p.dll1 == dllAfter {
		if err := c.programDLL(1, p.Final.DLL1); err != nil {
			return err
		}
	}
	if d, ok := cfg.DLL2.Value(); ok {
		if err := c.programDLL(2, d); err != nil {
			return err
		}
	}

	return c.oscillators(cfg, false)
}

// oscillators handles every oscillator request whose target is on.
func (c *Controller) oscillators(cfg Config, on bool) error {
	for _, o := range []struct {
		osc oscillator
		opt Option[bool]
	}{{oscHXT48, cfg.HXT48}, {oscHRC48, cfg.HRC48}} {
		if v, ok := o.opt.Value(); ok && v == on {
			if err := c.setOscillator(o.osc, on); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Controller) busClocks(cfg Config) {
	cfgr := regs.At(c.regs, regs.RCC_CFGR)
	csr := regs.At(c.regs, regs.RCC_CSR)

	if v, ok := cfg.PDiv1.Value(); ok {
		cfgr.SetField(regs.CFGR_PDIV1, uint32(v))
	}
	if v, ok := cfg.PDiv2.Value(); ok {
		cfgr.SetField(regs.CFGR_PDIV2, uint32(v))
	}
	if v, ok := cfg.USB.Value(); ok {
		csr.SetField(regs.CSR_SEL_USBC, uint32(v.Sel))
		regs.At(c.regs, regs.RCC_USBCR).SetField(regs.USBCR_DIV, uint32(v.Div))
	}
	if v, ok := cfg.Tick.Value(); ok {
		csr.SetField(regs.CSR_SEL_TICK, uint32(v.Sel))
		cfgr.SetField(regs.CFGR_TICKDIV, uint32(v.Div))
	}
	if v, ok := cfg.PeriSel.Value(); ok {
		csr.SetField(regs.CSR_SEL_PERI, uint32(v))
	}
}

// switchCore is the clock step of a DVFS transition. A growing divider is
// written before DLL1 is retuned or the source switches, a shrinking one
// after, so hclk never passes through a frequency above both endpoints.
func (c *Controller) switchCore(cfg Config, p Plan) error {
	cfgr := regs.At(c.regs, regs.RCC_CFGR)
	csr := regs.At(c.regs, regs.RCC_CSR)
	writeDiv := func() {
		if v, ok := cfg.HDiv.Value(); ok {
			cfgr.SetField(regs.CFGR_HDIV, uint32(v))
		}
	}

	grow := divisor(p.Final.HDiv) > divisor(p.Current.HDiv)
	if grow {
		writeDiv()
	}
	if p.dll1 == dllWithCore {
		if err := c.programDLL(1, p.Final.DLL1); err != nil {
			return err
		}
	}
	if v, ok := cfg.SysSel.Value(); ok {
		csr.SetField(regs.CSR_SEL_SYS, uint32(v))
	}
	if !grow {
		writeDiv()
	}
	return nil
}

func divisor(hdiv uint8) uint32 {
	if hdiv == 0 {
		return 1
	}
	return uint32(hdiv)
}
