package regs

import "tinygo.org/x/drivers"

// Debug-bridge opcodes. A write frame is op|addr(4, BE)|value(4, BE); a read
// frame is op|addr(4, BE) followed by a 4-byte BE read.
const (
	BridgeAddressDefault = 0x3A

	bridgeOpRead  = 'R'
	bridgeOpWrite = 'W'
)

// I2CBridge reaches a target's register file through an I2C debug bridge.
// File has no error path, so bus failures are sticky: the first one is kept
// in Err and later reads return zero.
type I2CBridge struct {
	bus  drivers.I2C
	addr uint16
	err  error

	// Fixed buffers to avoid per-call heap allocations.
	w [9]byte
	r [4]byte
}

// NewI2CBridge binds a bridge at addr (BridgeAddressDefault if zero).
func NewI2CBridge(bus drivers.I2C, addr uint16) *I2CBridge {
	if addr == 0 {
		addr = BridgeAddressDefault
	}
	return &I2CBridge{bus: bus, addr: addr}
}

// Err returns the first bus error seen.
func (b *I2CBridge) Err() error { return b.err }

func (b *I2CBridge) frame(op byte, addr uint32) {
	b.w[0] = op
	b.w[1] = byte(addr >> 24)
	b.w[2] = byte(addr >> 16)
	b.w[3] = byte(addr >> 8)
	b.w[4] = byte(addr)
}

func (b *I2CBridge) Read32(addr uint32) uint32 {
	if b.err != nil {
		return 0
	}
	b.frame(bridgeOpRead, addr)
	if err := b.bus.Tx(b.addr, b.w[:5], b.r[:4]); err != nil {
		b.err = err
		return 0
	}
	return uint32(b.r[0])<<24 | uint32(b.r[1])<<16 | uint32(b.r[2])<<8 | uint32(b.r[3])
}

func (b *I2CBridge) Write32(addr uint32, v uint32) {
	if b.err != nil {
		return
	}
	b.frame(bridgeOpWrite, addr)
	b.w[5] = byte(v >> 24)
	b.w[6] = byte(v >> 16)
	b.w[7] = byte(v >> 8)
	b.w[8] = byte(v)
	if err := b.bus.Tx(b.addr, b.w[:9], nil); err != nil {
		b.err = err
	}
}
