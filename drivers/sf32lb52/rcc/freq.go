package rcc

import (
	"clocktree-go/drivers/sf32lb52/regs"
	"clocktree-go/x/hz"
)

// Node is a point in the clock tree whose frequency can be queried.
type Node uint8

const (
	ClkSys Node = iota
	ClkPeri
	ClkPeriDiv2
	HCLK
	PCLK1
	PCLK2
	HXT48
	HRC48
	ClkDLL1
	ClkDLL2
	ClkUSB
	ClkAudPLL
)

// Nodes lists every node in dump order.
var Nodes = [...]Node{
	ClkSys, ClkPeri, ClkPeriDiv2, HCLK, PCLK1, PCLK2,
	HXT48, HRC48, ClkDLL1, ClkDLL2, ClkUSB, ClkAudPLL,
}

var nodeNames = [...]string{
	ClkSys:      "clk_sys",
	ClkPeri:     "clk_peri",
	ClkPeriDiv2: "clk_peri_div2",
	HCLK:        "hclk",
	PCLK1:       "pclk1",
	PCLK2:       "pclk2",
	HXT48:       "hxt48",
	HRC48:       "hrc48",
	ClkDLL1:     "clk_dll1",
	ClkDLL2:     "clk_dll2",
	ClkUSB:      "clk_usb",
	ClkAudPLL:   "clk_aud_pll",
}

func (n Node) String() string {
	if int(n) < len(nodeNames) {
		return nodeNames[n]
	}
	return "invalid"
}

// ParseNode maps a node name back to its Node.
func ParseNode(name string) (Node, bool) {
	for _, n := range Nodes {
		if nodeNames[n] == name {
			return n, true
		}
	}
	return 0, false
}

const (
	oscFreq    = 48 * hz.MHz
	audPLLFreq = hz.Hertz(49_152_000)
)

// Freq derives the frequency of n from s. Zero means the node is not
// running. A node fed by the reserved DBL96 source fails with
// ErrUnsupportedSource.
func (s State) Freq(n Node) (hz.Hertz, error) {
	switch n {
	case HXT48:
		return oscIf(s.HXT48), nil
	case HRC48:
		return oscIf(s.HRC48), nil
	case ClkDLL1:
		return s.DLL1.Freq(), nil
	case ClkDLL2:
		return s.DLL2.Freq(), nil
	case ClkAudPLL:
		return audPLLFreq, nil

	case ClkSys:
		switch s.SysSel {
		case regs.SysHRC48:
			return s.Freq(HRC48)
		case regs.SysHXT48:
			return s.Freq(HXT48)
		case regs.SysDLL1:
			return s.Freq(ClkDLL1)
		}
		return 0, ErrUnsupportedSource

	case ClkPeri:
		if s.PeriSel == regs.PeriHXT48 {
			return s.Freq(HXT48)
		}
		return s.Freq(HRC48)
	case ClkPeriDiv2:
		f, err := s.Freq(ClkPeri)
		return f / 2, err

	case HCLK:
		f, err := s.Freq(ClkSys)
		return f.Div(uint32(s.HDiv)), err
	case PCLK1:
		f, err := s.Freq(HCLK)
		return f.Shr(s.PDiv1), err
	case PCLK2:
		f, err := s.Freq(HCLK)
		return f.Shr(s.PDiv2), err

	case ClkUSB:
		// The USB divider is not part of the reported frequency.
		if s.USB.Sel == regs.USBDLL2 {
			return s.Freq(ClkDLL2)
		}
		return s.Freq(ClkSys)
	}
	return 0, ErrUnknownNode
}

func oscIf(ready bool) hz.Hertz {
	if ready {
		return oscFreq
	}
	return 0
}
