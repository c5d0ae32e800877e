package rcc

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/hz"
)

// DLLStep is the DLL output per stage.
const DLLStep = 24 * hz.MHz

// DLL output limits for an enabled DLL.
const (
	DLLMin = 24 * hz.MHz
	DLLMax = 384 * hz.MHz
)

// DLLConfig is the programmable state of one DLL.
type DLLConfig struct {
	Enable bool
	Stage  uint8 // 0..15
	Div2   bool
}

// Freq is (Stage+1)*24 MHz, halved when Div2 is set, or 0 when disabled.
func (d DLLConfig) Freq() hz.Hertz {
	if !d.Enable {
		return 0
	}
	f := hz.Hertz(uint32(d.Stage)+1) * DLLStep
	if d.Div2 {
		f /= 2
	}
	return f
}

type USBConfig struct {
	Sel regs.USBSel
	Div uint8 // 0..7
}

type TickConfig struct {
	Sel regs.TickSel
	Div uint8 // 0..63
}

// Config is a partial reconfiguration request. Every field left as Keep
// takes its value from the hardware at apply time. The zero Config changes
// nothing.
type Config struct {
	HXT48 Option[bool]
	HRC48 Option[bool]
	DLL1  Option[DLLConfig]
	DLL2  Option[DLLConfig]

	SysSel Option[regs.SysSel]
	HDiv   Option[uint8]
	PDiv1  Option[uint8]
	PDiv2  Option[uint8]

	USB     Option[USBConfig]
	Tick    Option[TickConfig]
	PeriSel Option[regs.PeriSel]
}

// KeepAll returns a request that leaves every field alone.
func KeepAll() Config { return Config{} }

// DefaultConfig is the boot configuration: crystal on, RC oscillator off,
// clk_sys on DLL1 at 144 MHz, nothing divided.
func DefaultConfig() Config {
	return Config{
		HXT48:   Update(true),
		HRC48:   Update(false),
		DLL1:    Update(DLLConfig{Enable: true, Stage: 5}),
		DLL2:    Keep[DLLConfig](),
		SysSel:  Update(regs.SysDLL1),
		HDiv:    Update[uint8](0),
		PDiv1:   Update[uint8](0),
		PDiv2:   Update[uint8](0),
		USB:     Update(USBConfig{Sel: regs.USBClkSys}),
		Tick:    Update(TickConfig{Sel: regs.TickRTC}),
		PeriSel: Update(regs.PeriHXT48),
	}
}

// ApplyTo resolves every cell of c against s, field by field.
func (c Config) ApplyTo(s State) State {
	return State{
		HXT48:   c.HXT48.ApplyTo(s.HXT48),
		HRC48:   c.HRC48.ApplyTo(s.HRC48),
		DLL1:    c.DLL1.ApplyTo(s.DLL1),
		DLL2:    c.DLL2.ApplyTo(s.DLL2),
		SysSel:  c.SysSel.ApplyTo(s.SysSel),
		HDiv:    c.HDiv.ApplyTo(s.HDiv),
		PDiv1:   c.PDiv1.ApplyTo(s.PDiv1),
		PDiv2:   c.PDiv2.ApplyTo(s.PDiv2),
		USB:     c.USB.ApplyTo(s.USB),
		Tick:    c.Tick.ApplyTo(s.Tick),
		PeriSel: c.PeriSel.ApplyTo(s.PeriSel),
	}
}
