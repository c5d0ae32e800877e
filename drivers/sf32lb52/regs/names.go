package regs

var names = map[uint32]string{
	RCC_RSTR1:       "HPSYS_RCC.RSTR1",
	RCC_RSTR2:       "HPSYS_RCC.RSTR2",
	RCC_ENR1:        "HPSYS_RCC.ENR1",
	RCC_ENR2:        "HPSYS_RCC.ENR2",
	RCC_CSR:         "HPSYS_RCC.CSR",
	RCC_CFGR:        "HPSYS_RCC.CFGR",
	RCC_USBCR:       "HPSYS_RCC.USBCR",
	RCC_DLL1CR:      "HPSYS_RCC.DLL1CR",
	RCC_DLL2CR:      "HPSYS_RCC.DLL2CR",
	CFG_SYSCR:       "HPSYS_CFG.SYSCR",
	CFG_IDR:         "HPSYS_CFG.IDR",
	CFG_ULPMCR:      "HPSYS_CFG.ULPMCR",
	CFG_CAU2_CR:     "HPSYS_CFG.CAU2_CR",
	AON_ACR:         "HPSYS_AON.ACR",
	PMUC_BUCK_CR2:   "PMUC.BUCK_CR2",
	PMUC_BUCK_VOUT:  "PMUC.BUCK_VOUT",
	PMUC_HPSYS_LDO:  "PMUC.HPSYS_LDO",
	PMUC_HPSYS_VOUT: "PMUC.HPSYS_VOUT",
	PMUC_HXT_CR1:    "PMUC.HXT_CR1",
}

// Name returns the symbolic name of a known register, or "".
func Name(addr uint32) string { return names[addr] }

// Known lists every defined register address.
func Known() []uint32 {
	out := make([]uint32, 0, len(names))
	for a := range names {
		out = append(out, a)
	}
	return out
}

// Blocks lists the base address of every block the engine touches.
func Blocks() []uint32 { return []uint32{BaseRCC, BaseCFG, BaseAON, BasePMUC} }
