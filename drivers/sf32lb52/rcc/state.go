package rcc

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/critical"
)

// State is a decoded, point-in-time view of every clock register. It is
// never cached: each query takes a fresh one.
type State struct {
	HXT48 bool // ready observed
	HRC48 bool // ready observed
	DLL1  DLLConfig
	DLL2  DLLConfig

	SysSel regs.SysSel
	HDiv   uint8
	PDiv1  uint8
	PDiv2  uint8

	USB     USBConfig
	Tick    TickConfig
	PeriSel regs.PeriSel
}

// ReadState decodes the live registers of f.
func ReadState(cs critical.Token, f regs.File) (State, error) {
	if err := cs.Check(); err != nil {
		return State{}, err
	}
	return readState(f), nil
}

func readState(f regs.File) State {
	acr := regs.At(f, regs.AON_ACR).Get()
	csr := regs.At(f, regs.RCC_CSR).Get()
	cfgr := regs.At(f, regs.RCC_CFGR).Get()
	usbcr := regs.At(f, regs.RCC_USBCR).Get()

	return State{
		HXT48: regs.ACR_HXT48_RDY.Get(acr) != 0,
		HRC48: regs.ACR_HRC48_RDY.Get(acr) != 0,
		DLL1:  decodeDLL(regs.At(f, regs.RCC_DLL1CR).Get()),
		DLL2:  decodeDLL(regs.At(f, regs.RCC_DLL2CR).Get()),

		SysSel: regs.SysSel(regs.CSR_SEL_SYS.Get(csr)),
		HDiv:   uint8(regs.CFGR_HDIV.Get(cfgr)),
		PDiv1:  uint8(regs.CFGR_PDIV1.Get(cfgr)),
		PDiv2:  uint8(regs.CFGR_PDIV2.Get(cfgr)),

		USB: USBConfig{
			Sel: regs.USBSel(regs.CSR_SEL_USBC.Get(csr)),
			Div: uint8(regs.USBCR_DIV.Get(usbcr)),
		},
		Tick: TickConfig{
			Sel: regs.TickSel(regs.CSR_SEL_TICK.Get(csr)),
			Div: uint8(regs.CFGR_TICKDIV.Get(cfgr)),
		},
		PeriSel: regs.PeriSel(regs.CSR_SEL_PERI.Get(csr)),
	}
}

func decodeDLL(v uint32) DLLConfig {
	return DLLConfig{
		Enable: regs.DLLCR_EN.Get(v) != 0,
		Stage:  uint8(regs.DLLCR_STG.Get(v)),
		Div2:   regs.DLLCR_OUT_DIV2_EN.Get(v) != 0,
	}
}

func encodeDLL(v uint32, d DLLConfig) uint32 {
	v = regs.DLLCR_EN.Put(v, b2u(d.Enable))
	v = regs.DLLCR_STG.Put(v, uint32(d.Stage))
	return regs.DLLCR_OUT_DIV2_EN.Put(v, b2u(d.Div2))
}

func b2u(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
