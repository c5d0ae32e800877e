package rcc

import (
	"errors"
	"testing"

	"clocktree-go/drivers/sf32lb52/dvfs"
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/hz"
)

func s1State() State {
	s := bootState()
	s.DLL1 = DLLConfig{Enable: true, Stage: 9}
	s.SysSel = regs.SysDLL1
	s.HDiv = 0
	return s
}

func TestPlanValidation(t *testing.T) {
	cases := []struct {
		name string
		live State
		cfg  Config
		want error
	}{
		{"dll below 24", bootState(), Config{DLL1: Update(DLLConfig{Enable: true, Stage: 0, Div2: true})}, ErrDLLFrequency},
		{"dll stage overflow", bootState(), Config{DLL1: Update(DLLConfig{Enable: true, Stage: 16})}, ErrFieldRange},
		{"dll2 in d mode", bootState(), Config{DLL2: Update(DLLConfig{Enable: true, Stage: 1})}, ErrDLL2OverLimit},
		{"dll2 above 288", s1State(), Config{DLL2: Update(DLLConfig{Enable: true, Stage: 12})}, ErrDLL2OverLimit},
		{"dll2 checked against target", s1State(), Config{
			SysSel: Update(regs.SysHXT48),
			DLL2:   Update(DLLConfig{Enable: true, Stage: 1}),
		}, ErrDLL2OverLimit},
		{"reserved source", bootState(), Config{SysSel: Update(regs.SysDBL96)}, ErrUnsupportedSource},
		{"invalid source", bootState(), Config{SysSel: Update(regs.SysSel(7))}, ErrFieldRange},
		{"source disabled", bootState(), Config{SysSel: Update(regs.SysHXT48), HXT48: Update(false)}, ErrSourceDisabled},
		{"dll1 selected but off", bootState(), Config{SysSel: Update(regs.SysDLL1)}, ErrSourceDisabled},
		{"core too fast", bootState(), Config{
			DLL1:   Update(DLLConfig{Enable: true, Stage: 15}),
			SysSel: Update(regs.SysDLL1),
			HDiv:   Update[uint8](0),
		}, dvfs.ErrOutOfRange},
		{"pdiv1", bootState(), Config{PDiv1: Update[uint8](8)}, ErrFieldRange},
		{"pdiv2", bootState(), Config{PDiv2: Update[uint8](9)}, ErrFieldRange},
		{"usb div", bootState(), Config{USB: Update(USBConfig{Div: 8})}, ErrFieldRange},
		{"tick div", bootState(), Config{Tick: Update(TickConfig{Div: 64})}, ErrFieldRange},
		{"tick sel", bootState(), Config{Tick: Update(TickConfig{Sel: 3})}, ErrFieldRange},
		{"peri sel", bootState(), Config{PeriSel: Update(regs.PeriSel(2))}, ErrFieldRange},
	}
	for _, c := range cases {
		_, err := NewPlan(c.cfg, c.live)
		if !errors.Is(err, c.want) {
			t.Fatalf("%s: err = %v, want %v", c.name, err, c.want)
		}
	}
}

func TestPlanDLLBoundaries(t *testing.T) {
	ok := []DLLConfig{
		{Enable: true, Stage: 1, Div2: true}, // 24 MHz
		{Enable: true, Stage: 15},            // 384 MHz
		{Enable: false, Stage: 0, Div2: true},
	}
	for _, d := range ok {
		if _, err := NewPlan(Config{DLL1: Update(d)}, bootState()); err != nil {
			t.Fatalf("%+v: %v", d, err)
		}
	}
	if _, err := NewPlan(Config{DLL2: Update(DLLConfig{Enable: true, Stage: 11})}, s1State()); err != nil {
		t.Fatalf("dll2 at 288 MHz in S1: %v", err)
	}
}

func TestPlanRejectsStoppedCore(t *testing.T) {
	live := bootState()
	live.HRC48 = false
	if _, err := NewPlan(KeepAll(), live); !errors.Is(err, ErrSourceDisabled) {
		t.Fatalf("err = %v", err)
	}
	live.SysSel = regs.SysHXT48
	live.HXT48 = true
	live.HDiv = 1
	if _, err := NewPlan(KeepAll(), live); err != nil {
		t.Fatalf("err = %v", err)
	}
}

func TestPlanRaiseRail(t *testing.T) {
	p, err := NewPlan(Config{
		DLL1:   Update(DLLConfig{Enable: true, Stage: 9}),
		SysSel: Update(regs.SysDLL1),
		HDiv:   Update[uint8](0),
	}, bootState())
	if err != nil {
		t.Fatal(err)
	}
	if p.CurMode != dvfs.D1 || p.TgtMode != dvfs.S1 || p.Strategy != dvfs.RaiseRail {
		t.Fatalf("plan %s->%s %s", p.CurMode, p.TgtMode, p.Strategy)
	}
	if p.FinalHCLK != 240*hz.MHz || !p.CoreChange || p.dll1 != dllBefore {
		t.Fatalf("plan = %+v", p)
	}
}

func TestPlanCoreChange(t *testing.T) {
	cases := []struct {
		name string
		live State
		cfg  Config
		core bool
		dll1 dllStep
	}{
		{"bus only", bootState(), Config{PDiv1: Update[uint8](1)}, false, dllNone},
		{"same source rewritten", bootState(), Config{SysSel: Update(regs.SysHRC48)}, true, dllNone},
		{"idle dll1", bootState(), Config{DLL1: Update(DLLConfig{Enable: true, Stage: 3})}, false, dllBefore},
		{"retune running dll1", s1State(), Config{DLL1: Update(DLLConfig{Enable: true, Stage: 5})}, true, dllWithCore},
		{"rewrite running dll1", s1State(), Config{DLL1: Update(DLLConfig{Enable: true, Stage: 9})}, false, dllWithCore},
		{"leave dll1", s1State(), Config{SysSel: Update(regs.SysHXT48), DLL1: Update(DLLConfig{})}, true, dllAfter},
	}
	for _, c := range cases {
		p, err := NewPlan(c.cfg, c.live)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if p.CoreChange != c.core || p.dll1 != c.dll1 {
			t.Fatalf("%s: core %v dll1 %d, want %v %d", c.name, p.CoreChange, p.dll1, c.core, c.dll1)
		}
	}
}
