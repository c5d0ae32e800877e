// Package sim is a behavioural model of the SF32LB52x clock and power
// register blocks for host builds and tests. Oscillator and DLL ready bits
// follow their request bits, reset bits read back as written, and any
// handshake can be held off to exercise timeout paths.
package sim

import (
	"sync"

	"clocktree-go/drivers/sf32lb52/regs"
)

// Boot identification values.
const (
	BootPID   = 0x52
	BootRevID = 0x03
)

type held struct {
	addr uint32
	f    regs.Field
}

// Regs implements regs.File.
type Regs struct {
	mu    sync.Mutex
	mem   map[uint32]uint32
	holds map[held]bool
	reads int
}

// New returns the state the ROM bootloader leaves behind: both 48 MHz
// oscillators running, clk_sys on HRC48 undivided, DLLs off, D-mode rail
// with the D1 trims.
func New() *Regs {
	r := &Regs{mem: map[uint32]uint32{}, holds: map[held]bool{}}
	r.Reset()
	return r
}

// Reset restores the boot state and clears all holds.
func (r *Regs) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.mem)
	clear(r.holds)
	r.reads = 0

	acr := regs.ACR_HRC48_REQ.Bit() | regs.ACR_HXT48_REQ.Bit() |
		regs.ACR_HRC48_RDY.Bit() | regs.ACR_HXT48_RDY.Bit()
	r.mem[regs.AON_ACR] = acr

	csr := regs.CSR_SEL_SYS.Put(0, uint32(regs.SysHRC48))
	csr = regs.CSR_SEL_PERI.Put(csr, uint32(regs.PeriHXT48))
	r.mem[regs.RCC_CSR] = csr
	r.mem[regs.RCC_CFGR] = regs.CFGR_HDIV.Put(0, 1)

	r.mem[regs.CFG_SYSCR] = regs.SYSCR_LDO_VSEL.Bit()
	r.mem[regs.CFG_IDR] = regs.IDR_PID.Put(0, BootPID) | regs.IDR_REVID.Put(0, BootRevID)
	r.mem[regs.CFG_ULPMCR] = 0x0011_0331

	r.mem[regs.PMUC_BUCK_CR2] = 0xA
	r.mem[regs.PMUC_HPSYS_LDO] = 0x5
}

// Hold keeps the ready/ack field f of addr from ever asserting.
func (r *Regs) Hold(addr uint32, f regs.Field) {
	r.mu.Lock()
	r.holds[held{addr, f}] = true
	r.mu.Unlock()
}

// Poke stores a raw value without applying any hardware behaviour.
func (r *Regs) Poke(addr, v uint32) {
	r.mu.Lock()
	r.mem[addr] = v
	r.mu.Unlock()
}

// Peek returns the raw stored value.
func (r *Regs) Peek(addr uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mem[addr]
}

// Reads returns the number of Read32 calls since the last Reset.
func (r *Regs) Reads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

func (r *Regs) Read32(addr uint32) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	return r.mem[addr]
}

func (r *Regs) Write32(addr uint32, v uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch addr {
	case regs.CFG_IDR:
		return
	case regs.AON_ACR:
		v = r.follow(addr, v, regs.ACR_HRC48_REQ, regs.ACR_HRC48_RDY)
		v = r.follow(addr, v, regs.ACR_HXT48_REQ, regs.ACR_HXT48_RDY)
	case regs.RCC_DLL1CR, regs.RCC_DLL2CR:
		v = r.follow(addr, v, regs.DLLCR_EN, regs.DLLCR_READY)
	case regs.RCC_RSTR1, regs.RCC_RSTR2:
		// A held reset line never reflects the asserted state.
		for h := range r.holds {
			if h.addr == addr {
				v = h.f.Put(v, 0)
			}
		}
	}
	r.mem[addr] = v
}

// follow derives a read-only status field from its request field. While
// held, the status bit keeps its previous value.
func (r *Regs) follow(addr, v uint32, req, status regs.Field) uint32 {
	if r.holds[held{addr, status}] {
		return status.Put(v, status.Get(r.mem[addr]))
	}
	return status.Put(v, req.Get(v))
}
