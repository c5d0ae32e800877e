// Package regs provides register addresses and bitfields for the SF32LB52x
// HPSYS clock-control (RCC), always-on (AON), system configuration (CFG) and
// power-management (PMUC) blocks, and the register-file backends that reach
// them.
package regs

// Block base addresses.
const (
	BaseRCC  = 0x5000_0000
	BaseCFG  = 0x5000_B000
	BaseAON  = 0x500C_0000
	BasePMUC = 0x500C_A000

	// BlockSize is the mapped window per block.
	BlockSize = 0x1000
)

const (
	// --- HPSYS_RCC ---
	RCC_RSTR1  = BaseRCC + 0x00 // R/W peripheral reset, bank 1
	RCC_RSTR2  = BaseRCC + 0x04 // R/W peripheral reset, bank 2
	RCC_ENR1   = BaseRCC + 0x08 // R/W peripheral clock enable, bank 1
	RCC_ENR2   = BaseRCC + 0x0C // R/W peripheral clock enable, bank 2
	RCC_CSR    = BaseRCC + 0x18 // R/W clock source selection
	RCC_CFGR   = BaseRCC + 0x1C // R/W dividers
	RCC_USBCR  = BaseRCC + 0x20 // R/W USB clock divider
	RCC_DLL1CR = BaseRCC + 0x24 // R/W DLL1 control, READY is R
	RCC_DLL2CR = BaseRCC + 0x28 // R/W DLL2 control, READY is R

	// --- HPSYS_CFG ---
	CFG_SYSCR   = BaseCFG + 0x00 // R/W
	CFG_IDR     = BaseCFG + 0x04 // R chip identification
	CFG_ULPMCR  = BaseCFG + 0x10 // R/W memory timing parameters
	CFG_CAU2_CR = BaseCFG + 0x28 // R/W analog bias

	// --- HPSYS_AON ---
	AON_ACR = BaseAON + 0x00 // R/W oscillator requests, ready is R

	// --- PMUC ---
	PMUC_BUCK_CR2   = BasePMUC + 0x1C // R/W buck target for D mode
	PMUC_BUCK_VOUT  = BasePMUC + 0x24 // R/W buck output for S mode
	PMUC_HPSYS_LDO  = BasePMUC + 0x30 // R/W LDO reference for D mode
	PMUC_HPSYS_VOUT = BasePMUC + 0x34 // R/W LDO output for S mode
	PMUC_HXT_CR1    = BasePMUC + 0x40 // R/W crystal buffers
)

// DLLCR returns the control register of DLL idx (1 or 2).
func DLLCR(idx int) uint32 {
	if idx == 2 {
		return RCC_DLL2CR
	}
	return RCC_DLL1CR
}

// Field is a contiguous bitfield inside a 32-bit register.
type Field struct {
	Pos   uint8
	Width uint8
}

// Mask returns the unshifted mask of the field.
func (f Field) Mask() uint32 {
	if f.Width >= 32 {
		return 0xFFFF_FFFF
	}
	return (uint32(1) << f.Width) - 1
}

// Bit returns the shifted mask of a single-bit field.
func (f Field) Bit() uint32 { return f.Mask() << f.Pos }

// Get extracts the field from a raw register value.
func (f Field) Get(v uint32) uint32 { return (v >> f.Pos) & f.Mask() }

// Put returns v with the field replaced by x.
func (f Field) Put(v, x uint32) uint32 {
	m := f.Mask() << f.Pos
	return (v &^ m) | ((x << f.Pos) & m)
}

var (
	// CSR
	CSR_SEL_SYS  = Field{Pos: 0, Width: 2}
	CSR_SEL_PERI = Field{Pos: 4, Width: 1}
	CSR_SEL_TICK = Field{Pos: 5, Width: 2}
	CSR_SEL_USBC = Field{Pos: 8, Width: 1}

	// CFGR
	CFGR_HDIV    = Field{Pos: 0, Width: 8}
	CFGR_PDIV1   = Field{Pos: 8, Width: 3}
	CFGR_PDIV2   = Field{Pos: 12, Width: 3}
	CFGR_TICKDIV = Field{Pos: 16, Width: 6}

	// USBCR
	USBCR_DIV = Field{Pos: 0, Width: 3}

	// DLLxCR
	DLLCR_EN          = Field{Pos: 0, Width: 1}
	DLLCR_STG         = Field{Pos: 4, Width: 4}
	DLLCR_OUT_DIV2_EN = Field{Pos: 8, Width: 1}
	DLLCR_READY       = Field{Pos: 31, Width: 1}

	// ACR
	ACR_HRC48_REQ = Field{Pos: 0, Width: 1}
	ACR_HXT48_REQ = Field{Pos: 1, Width: 1}
	ACR_HRC48_RDY = Field{Pos: 30, Width: 1}
	ACR_HXT48_RDY = Field{Pos: 31, Width: 1}

	// SYSCR: LDO_VSEL set = D mode (LDO rail), clear = S mode (buck rail).
	SYSCR_LDO_VSEL = Field{Pos: 10, Width: 1}

	// IDR
	IDR_REVID = Field{Pos: 0, Width: 8}
	IDR_PID   = Field{Pos: 8, Width: 8}

	// CAU2_CR
	CAU2_HPBG_EN        = Field{Pos: 0, Width: 1}
	CAU2_HPBG_VDDPSW_EN = Field{Pos: 1, Width: 1}

	// PMUC
	BUCK_CR2_SET_VOUT_M = Field{Pos: 0, Width: 4}
	BUCK_VOUT_VOUT      = Field{Pos: 0, Width: 4}
	HPSYS_LDO_VREF      = Field{Pos: 0, Width: 4}
	HPSYS_VOUT_VOUT     = Field{Pos: 0, Width: 4}
	HXT_CR1_BUF_DLL_EN  = Field{Pos: 17, Width: 1}
)
