package rcc

import (
	"clocktree-go/drivers/sf32lb52/dvfs"
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/hz"
	"clocktree-go/x/mathx"
)

// Where DLL1 gets reprogrammed relative to the core clock change.
type dllStep uint8

const (
	dllNone dllStep = iota
	// dllBefore: DLL1 does not feed the core yet, program it first so it is
	// ready before the mux can select it.
	dllBefore
	// dllWithCore: DLL1 feeds the core and keeps feeding it; retuning it is
	// the clock change itself.
	dllWithCore
	// dllAfter: the core moves off DLL1 first.
	dllAfter
)

// Plan is the resolved outcome of a request against a live snapshot.
type Plan struct {
	Current State
	Final   State

	CurrentHCLK hz.Hertz
	FinalHCLK   hz.Hertz
	CurMode     dvfs.Mode
	TgtMode     dvfs.Mode
	Strategy    dvfs.Strategy

	// CoreChange is set when hclk's source, divider or frequency moves. Only
	// then are the regulators sequenced.
	CoreChange bool

	dll1 dllStep
}

// NewPlan resolves cfg against live and validates the result. It touches no
// hardware, so every rejection leaves the clock tree as it was.
func NewPlan(cfg Config, live State) (Plan, error) {
	if err := checkFields(cfg); err != nil {
		return Plan{}, err
	}

	final := cfg.ApplyTo(live)
	if err := checkSource(final); err != nil {
		return Plan{}, err
	}

	cur, err := live.Freq(HCLK)
	if err != nil {
		return Plan{}, err
	}
	if cur == 0 {
		return Plan{}, ErrNoCoreClock
	}
	tgt, err := final.Freq(HCLK)
	if err != nil {
		return Plan{}, err
	}

	p := Plan{Current: live, Final: final, CurrentHCLK: cur, FinalHCLK: tgt}
	if p.CurMode, err = dvfs.FromHertz(cur); err != nil {
		return Plan{}, fieldErr("current hclk", err)
	}
	if p.TgtMode, err = dvfs.FromHertz(tgt); err != nil {
		return Plan{}, fieldErr("hclk", err)
	}

	if d, ok := cfg.DLL2.Value(); ok && d.Enable && d.Freq() > p.TgtMode.DLL2Limit() {
		return Plan{}, fieldErr("dll2", ErrDLL2OverLimit)
	}

	p.CoreChange = cfg.SysSel.IsUpdate() || cfg.HDiv.IsUpdate() || tgt != cur
	p.Strategy = dvfs.Select(p.CurMode, p.TgtMode)

	if cfg.DLL1.IsUpdate() {
		switch {
		case live.SysSel != regs.SysDLL1:
			p.dll1 = dllBefore
		case final.SysSel == regs.SysDLL1:
			p.dll1 = dllWithCore
		default:
			p.dll1 = dllAfter
		}
	}
	return p, nil
}

func checkFields(cfg Config) error {
	for _, d := range []struct {
		name string
		opt  Option[DLLConfig]
	}{{"dll1", cfg.DLL1}, {"dll2", cfg.DLL2}} {
		v, ok := d.opt.Value()
		if !ok {
			continue
		}
		if !mathx.FitsBits(v.Stage, uint(regs.DLLCR_STG.Width)) {
			return fieldErr(d.name+".stage", ErrFieldRange)
		}
		if v.Enable && !mathx.Between(v.Freq(), DLLMin, DLLMax) {
			return fieldErr(d.name, ErrDLLFrequency)
		}
	}

	if v, ok := cfg.SysSel.Value(); ok {
		switch v {
		case regs.SysHRC48, regs.SysHXT48, regs.SysDLL1:
		case regs.SysDBL96:
			return fieldErr("sys_sel", ErrUnsupportedSource)
		default:
			return fieldErr("sys_sel", ErrFieldRange)
		}
	}
	if v, ok := cfg.PDiv1.Value(); ok && !mathx.FitsBits(v, uint(regs.CFGR_PDIV1.Width)) {
		return fieldErr("pdiv1", ErrFieldRange)
	}
	if v, ok := cfg.PDiv2.Value(); ok && !mathx.FitsBits(v, uint(regs.CFGR_PDIV2.Width)) {
		return fieldErr("pdiv2", ErrFieldRange)
	}
	if v, ok := cfg.USB.Value(); ok {
		if v.Sel > regs.USBDLL2 {
			return fieldErr("usb.sel", ErrFieldRange)
		}
		if !mathx.FitsBits(v.Div, uint(regs.USBCR_DIV.Width)) {
			return fieldErr("usb.div", ErrFieldRange)
		}
	}
	if v, ok := cfg.Tick.Value(); ok {
		if v.Sel > regs.TickHXT48 {
			return fieldErr("tick.sel", ErrFieldRange)
		}
		if !mathx.FitsBits(v.Div, uint(regs.CFGR_TICKDIV.Width)) {
			return fieldErr("tick.div", ErrFieldRange)
		}
	}
	if v, ok := cfg.PeriSel.Value(); ok && v > regs.PeriHXT48 {
		return fieldErr("peri_sel", ErrFieldRange)
	}
	return nil
}

// checkSource rejects a final state whose clk_sys source would not be
// running.
func checkSource(s State) error {
	var on bool
	switch s.SysSel {
	case regs.SysHRC48:
		on = s.HRC48
	case regs.SysHXT48:
		on = s.HXT48
	case regs.SysDLL1:
		on = s.DLL1.Enable
	default:
		return fieldErr("sys_sel", ErrUnsupportedSource)
	}
	if !on {
		return fieldErr("sys_sel", ErrSourceDisabled)
	}
	return nil
}
