package dvfs

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
	"clocktree-go/x/timex"
)

// SettleMicros is the buck settle time after a voltage change.
const SettleMicros = 250

// Sequencer drives the regulator registers around a clock change.
type Sequencer struct {
	Regs  regs.File
	Delay timex.Delayer
	Log   func(string)
}

// Transition moves the core from cur to tgt, calling reconfigure exactly
// once at the point in the sequence where the clock may change. An error
// from reconfigure aborts the sequence before any later voltage step, so
// the rail is never lowered under a clock that failed to come down.
func (s *Sequencer) Transition(cs critical.Token, cur, tgt Mode, reconfigure func() error) error {
	if err := cs.Check(); err != nil {
		return err
	}
	st := Select(cur, tgt)
	if st != Direct && s.Log != nil {
		s.Log("[dvfs] " + cur.String() + "->" + tgt.String() + " strategy=" + st.String())
	}

	switch st {
	case RaiseRail:
		s.highTrims(tgt)
		regs.At(s.Regs, regs.CFG_SYSCR).SetFlag(regs.SYSCR_LDO_VSEL, false)
		s.Delay.DelayMicros(SettleMicros)
		return reconfigure()
	case LowerRail, WithinLow:
		return s.lowerRail(tgt, reconfigure)
	case WithinHigh:
		s.highTrims(tgt)
		s.Delay.DelayMicros(SettleMicros)
		return reconfigure()
	}
	return reconfigure()
}

// highTrims programs the S-mode buck and LDO outputs.
func (s *Sequencer) highTrims(tgt Mode) {
	p := tgt.Profile()
	regs.At(s.Regs, regs.PMUC_BUCK_VOUT).SetField(regs.BUCK_VOUT_VOUT, uint32(p.Buck))
	// TODO: use the per-die LDO reference from eFuse once its layout is known.
	regs.At(s.Regs, regs.PMUC_HPSYS_VOUT).SetField(regs.HPSYS_VOUT_VOUT, uint32(p.LDO))
}

func (s *Sequencer) lowerRail(tgt Mode, reconfigure func() error) error {
	p := tgt.Profile()
	regs.At(s.Regs, regs.PMUC_BUCK_CR2).SetField(regs.BUCK_CR2_SET_VOUT_M, uint32(p.Buck))
	regs.At(s.Regs, regs.PMUC_HPSYS_LDO).SetField(regs.HPSYS_LDO_VREF, p.LDORef())

	if err := reconfigure(); err != nil {
		return err
	}

	regs.At(s.Regs, regs.CFG_ULPMCR).Set(p.ULPMCR)
	regs.At(s.Regs, regs.CFG_SYSCR).SetFlag(regs.SYSCR_LDO_VSEL, true)
	return nil
}
