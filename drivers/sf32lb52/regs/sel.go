package regs

// SysSel is the clk_sys mux selection (CSR.SEL_SYS).
type SysSel uint8

const (
	SysHRC48 SysSel = 0
	SysHXT48 SysSel = 1
	SysDBL96 SysSel = 2 // reserved on this part
	SysDLL1  SysSel = 3
)

func (s SysSel) String() string {
	switch s {
	case SysHRC48:
		return "hrc48"
	case SysHXT48:
		return "hxt48"
	case SysDBL96:
		return "dbl96"
	case SysDLL1:
		return "dll1"
	}
	return "invalid"
}

// PeriSel is the clk_peri mux selection (CSR.SEL_PERI).
type PeriSel uint8

const (
	PeriHRC48 PeriSel = 0
	PeriHXT48 PeriSel = 1
)

func (s PeriSel) String() string {
	if s == PeriHXT48 {
		return "hxt48"
	}
	return "hrc48"
}

// USBSel is the clk_usb mux selection (CSR.SEL_USBC).
type USBSel uint8

const (
	USBClkSys USBSel = 0
	USBDLL2   USBSel = 1
)

func (s USBSel) String() string {
	if s == USBDLL2 {
		return "dll2"
	}
	return "clk_sys"
}

// TickSel is the system tick source (CSR.SEL_TICK).
type TickSel uint8

const (
	TickRTC   TickSel = 0
	TickHRC48 TickSel = 1
	TickHXT48 TickSel = 2
)

func (s TickSel) String() string {
	switch s {
	case TickRTC:
		return "rtc"
	case TickHRC48:
		return "hrc48"
	case TickHXT48:
		return "hxt48"
	}
	return "invalid"
}
